package mock

import (
	"context"

	"github.com/akraszewski/webdoc"
)

var _ webdoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of webdoc.DocumentService.
type DocumentService struct {
	CreateDocumentFn              func(ctx context.Context, doc *webdoc.Document) error
	FindDocumentByIDFn            func(ctx context.Context, id string) (*webdoc.Document, error)
	FindDocumentsFn               func(ctx context.Context, filter webdoc.DocumentFilter) ([]*webdoc.Document, error)
	DeleteDocumentFn              func(ctx context.Context, id string) error
	DeleteDocumentsByCollectionFn func(ctx context.Context, collectionID string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *webdoc.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*webdoc.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter webdoc.DocumentFilter) ([]*webdoc.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

func (s *DocumentService) DeleteDocumentsByCollection(ctx context.Context, collectionID string) error {
	return s.DeleteDocumentsByCollectionFn(ctx, collectionID)
}

var _ webdoc.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of webdoc.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *webdoc.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *webdoc.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}
