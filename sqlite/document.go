package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/akraszewski/webdoc"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ webdoc.DocumentService = (*DocumentService)(nil)
	_ webdoc.DocumentWriter  = (*DocumentService)(nil)
)

// DocumentService implements webdoc.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent returns a hex-encoded xxhash of the content, used to
// detect unchanged pages on re-crawl.
func hashContent(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *webdoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	if doc.ContentHash == "" {
		doc.ContentHash = hashContent(doc.Content)
	}
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, collection_id, source_url, title, content, content_hash, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.CollectionID, doc.SourceURL, doc.Title, doc.Content, doc.ContentHash,
		doc.Position, formatTime(doc.FetchedAt))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*webdoc.Document, error) {
	var d webdoc.Document
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, collection_id, source_url, title, content, content_hash, position, fetched_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&d.ID, &d.CollectionID, &d.SourceURL, &d.Title, &d.Content, &d.ContentHash, &d.Position, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, webdoc.Errorf(webdoc.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	if d.FetchedAt, err = parseTime(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &d, nil
}

// FindDocuments retrieves documents matching the filter, ordered by
// position within their collection unless the filter says otherwise.
func (s *DocumentService) FindDocuments(ctx context.Context, filter webdoc.DocumentFilter) ([]*webdoc.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, collection_id, source_url, title, content, content_hash, position, fetched_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CollectionID != nil {
		query.WriteString(" AND collection_id = ?")
		args = append(args, *filter.CollectionID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	switch filter.SortBy {
	case webdoc.SortByFetchedAt:
		query.WriteString(" ORDER BY fetched_at ASC, position ASC")
	default:
		query.WriteString(" ORDER BY position ASC")
	}
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*webdoc.Document
	for rows.Next() {
		var d webdoc.Document
		var fetchedAt string

		if err := rows.Scan(&d.ID, &d.CollectionID, &d.SourceURL, &d.Title, &d.Content, &d.ContentHash, &d.Position, &fetchedAt); err != nil {
			return nil, err
		}

		if d.FetchedAt, err = parseTime(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &d)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document. Chunks cascade via
// foreign key.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return webdoc.Errorf(webdoc.ENOTFOUND, "document not found")
	}

	return nil
}

// DeleteDocumentsByCollection removes all documents for a collection.
// Deleting zero documents is not an error.
func (s *DocumentService) DeleteDocumentsByCollection(ctx context.Context, collectionID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE collection_id = ?", collectionID)
	return err
}
