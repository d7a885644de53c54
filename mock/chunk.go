package mock

import (
	"context"

	"github.com/akraszewski/webdoc"
)

var _ webdoc.ChunkService = (*ChunkService)(nil)

// ChunkService is a mock implementation of webdoc.ChunkService.
type ChunkService struct {
	CreateChunksFn             func(ctx context.Context, chunks []*webdoc.Chunk) error
	FindChunksFn               func(ctx context.Context, filter webdoc.ChunkFilter) ([]*webdoc.Chunk, error)
	DeleteChunksByDocumentFn   func(ctx context.Context, documentID string) error
	DeleteChunksByCollectionFn func(ctx context.Context, collectionID string) error
}

func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*webdoc.Chunk) error {
	return s.CreateChunksFn(ctx, chunks)
}

func (s *ChunkService) FindChunks(ctx context.Context, filter webdoc.ChunkFilter) ([]*webdoc.Chunk, error) {
	return s.FindChunksFn(ctx, filter)
}

func (s *ChunkService) DeleteChunksByDocument(ctx context.Context, documentID string) error {
	return s.DeleteChunksByDocumentFn(ctx, documentID)
}

func (s *ChunkService) DeleteChunksByCollection(ctx context.Context, collectionID string) error {
	return s.DeleteChunksByCollectionFn(ctx, collectionID)
}

var _ webdoc.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of webdoc.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, opts webdoc.SearchOptions) ([]webdoc.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, opts webdoc.SearchOptions) ([]webdoc.SearchResult, error) {
	return s.SearchFn(ctx, query, opts)
}

var _ webdoc.ChunkIndexer = (*ChunkIndexer)(nil)

// ChunkIndexer is a mock implementation of webdoc.ChunkIndexer.
type ChunkIndexer struct {
	IndexChunksFn      func(ctx context.Context, chunks []*webdoc.Chunk) error
	DeleteDocumentFn   func(ctx context.Context, documentID string) error
	DeleteCollectionFn func(ctx context.Context, collectionID string) error
}

func (i *ChunkIndexer) IndexChunks(ctx context.Context, chunks []*webdoc.Chunk) error {
	return i.IndexChunksFn(ctx, chunks)
}

func (i *ChunkIndexer) DeleteDocument(ctx context.Context, documentID string) error {
	return i.DeleteDocumentFn(ctx, documentID)
}

func (i *ChunkIndexer) DeleteCollection(ctx context.Context, collectionID string) error {
	return i.DeleteCollectionFn(ctx, collectionID)
}
