package mock

import (
	"context"

	"github.com/akraszewski/webdoc"
)

var _ webdoc.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of webdoc.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]webdoc.DiscoveredLink, error)
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]webdoc.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}

var _ webdoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of webdoc.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
