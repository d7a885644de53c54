package mock

import (
	"context"

	"github.com/akraszewski/webdoc"
)

var _ webdoc.CollectionService = (*CollectionService)(nil)

// CollectionService is a mock implementation of webdoc.CollectionService.
type CollectionService struct {
	CreateCollectionFn   func(ctx context.Context, collection *webdoc.Collection) error
	FindCollectionByIDFn func(ctx context.Context, id string) (*webdoc.Collection, error)
	FindCollectionsFn    func(ctx context.Context, filter webdoc.CollectionFilter) ([]*webdoc.Collection, error)
	UpdateCollectionFn   func(ctx context.Context, id string, upd webdoc.CollectionUpdate) (*webdoc.Collection, error)
	DeleteCollectionFn   func(ctx context.Context, id string) error
}

func (s *CollectionService) CreateCollection(ctx context.Context, collection *webdoc.Collection) error {
	return s.CreateCollectionFn(ctx, collection)
}

func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*webdoc.Collection, error) {
	return s.FindCollectionByIDFn(ctx, id)
}

func (s *CollectionService) FindCollections(ctx context.Context, filter webdoc.CollectionFilter) ([]*webdoc.Collection, error) {
	return s.FindCollectionsFn(ctx, filter)
}

func (s *CollectionService) UpdateCollection(ctx context.Context, id string, upd webdoc.CollectionUpdate) (*webdoc.Collection, error) {
	return s.UpdateCollectionFn(ctx, id, upd)
}

func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	return s.DeleteCollectionFn(ctx, id)
}
