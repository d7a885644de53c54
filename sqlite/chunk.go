package sqlite

import (
	"context"
	"strings"

	"github.com/akraszewski/webdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ webdoc.ChunkService = (*ChunkService)(nil)

// ChunkService implements webdoc.ChunkService using SQLite.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// headingsSeparator joins the heading trail into a single column.
// Headings come from markdown heading text so a newline never appears
// inside one.
const headingsSeparator = "\n"

// CreateChunks creates multiple chunks in a batch. IDs are assigned to
// the passed chunks so callers can index them afterwards.
func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*webdoc.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return err
		}
	}

	for _, chunk := range chunks {
		chunk.ID = uuid.New().String()

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO chunks (id, document_id, collection_id, content, position, headings, source_url)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, chunk.ID, chunk.DocumentID, chunk.CollectionID, chunk.Content, chunk.Position,
			strings.Join(chunk.Metadata.Headings, headingsSeparator), chunk.Metadata.SourceURL)
		if err != nil {
			return err
		}
	}

	return nil
}

// FindChunks retrieves chunks matching the filter, ordered by document
// and position.
func (s *ChunkService) FindChunks(ctx context.Context, filter webdoc.ChunkFilter) ([]*webdoc.Chunk, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, document_id, collection_id, content, position, headings, source_url FROM chunks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}
	if filter.CollectionID != nil {
		query.WriteString(" AND collection_id = ?")
		args = append(args, *filter.CollectionID)
	}

	query.WriteString(" ORDER BY document_id ASC, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*webdoc.Chunk
	for rows.Next() {
		var c webdoc.Chunk
		var headings string

		if err := rows.Scan(&c.ID, &c.DocumentID, &c.CollectionID, &c.Content, &c.Position, &headings, &c.Metadata.SourceURL); err != nil {
			return nil, err
		}

		if headings != "" {
			c.Metadata.Headings = strings.Split(headings, headingsSeparator)
		}

		chunks = append(chunks, &c)
	}

	return chunks, rows.Err()
}

// DeleteChunksByDocument removes all chunks for a document.
func (s *ChunkService) DeleteChunksByDocument(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chunks WHERE document_id = ?", documentID)
	return err
}

// DeleteChunksByCollection removes all chunks for a collection.
func (s *ChunkService) DeleteChunksByCollection(ctx context.Context, collectionID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chunks WHERE collection_id = ?", collectionID)
	return err
}
