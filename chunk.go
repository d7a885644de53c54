package webdoc

import "context"

// Chunk represents a retrieval-sized section of a document.
type Chunk struct {
	ID           string        `json:"id"`
	DocumentID   string        `json:"documentId"`
	CollectionID string        `json:"collectionId"` // Denormalized for efficient filtering
	Content      string        `json:"content"`
	Position     int           `json:"position"`
	Metadata     ChunkMetadata `json:"metadata"`
}

// ChunkMetadata contains contextual information about a chunk.
type ChunkMetadata struct {
	// Heading trail from the document (e.g., ["API", "Auth"]).
	Headings []string `json:"headings,omitempty"`

	// Source URL for citation.
	SourceURL string `json:"sourceUrl,omitempty"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.DocumentID == "" {
		return Errorf(EINVALID, "chunk document ID required")
	}
	if c.CollectionID == "" {
		return Errorf(EINVALID, "chunk collection ID required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	return nil
}

// ChunkService represents a service for managing chunks.
type ChunkService interface {
	// CreateChunks creates multiple chunks in a batch.
	CreateChunks(ctx context.Context, chunks []*Chunk) error

	// FindChunks retrieves chunks matching the filter.
	FindChunks(ctx context.Context, filter ChunkFilter) ([]*Chunk, error)

	// DeleteChunksByDocument removes all chunks for a document.
	DeleteChunksByDocument(ctx context.Context, documentID string) error

	// DeleteChunksByCollection removes all chunks for a collection.
	DeleteChunksByCollection(ctx context.Context, collectionID string) error
}

// ChunkFilter represents a filter for FindChunks.
type ChunkFilter struct {
	ID           *string `json:"id"`
	DocumentID   *string `json:"documentId"`
	CollectionID *string `json:"collectionId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Searcher provides relevance search over indexed chunks.
type Searcher interface {
	// Search returns chunks ordered by relevance to the query.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// ChunkIndexer maintains the search index alongside chunk storage.
// Deletions must mirror the chunk store: dropping chunk rows without
// the matching index delete leaves stale entries that search keeps
// serving.
type ChunkIndexer interface {
	// IndexChunks adds chunks to the search index.
	IndexChunks(ctx context.Context, chunks []*Chunk) error

	// DeleteDocument removes all indexed chunks for a document.
	DeleteDocument(ctx context.Context, documentID string) error

	// DeleteCollection removes all indexed chunks for a collection.
	DeleteCollection(ctx context.Context, collectionID string) error
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Filter results to specific collection(s).
	CollectionIDs []string `json:"collectionIds,omitempty"`

	// Maximum number of results to return.
	Limit int `json:"limit,omitempty"`
}

// SearchResult represents a search match.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float64 `json:"score"`
}
