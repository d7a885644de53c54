package mock

import (
	"context"

	"github.com/akraszewski/webdoc"
)

var _ webdoc.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of webdoc.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *webdoc.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *webdoc.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
