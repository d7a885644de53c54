package mock

import (
	"context"

	"github.com/akraszewski/webdoc"
)

var _ webdoc.Loader = (*Loader)(nil)

// Loader is a mock implementation of webdoc.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, url string, opts webdoc.LoadOptions) ([]*webdoc.Document, error)
}

func (l *Loader) Load(ctx context.Context, url string, opts webdoc.LoadOptions) ([]*webdoc.Document, error) {
	return l.LoadFn(ctx, url, opts)
}
