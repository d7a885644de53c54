package webdoc

import (
	"context"
	"regexp"
)

// SitemapService discovers the URLs a site publishes.
type SitemapService interface {
	// DiscoverURLs lists page URLs for baseURL's site. Sitemap
	// locations from robots.txt are consulted first, then the
	// conventional /sitemap.xml; sitemap indexes are followed
	// recursively. A nil filter passes every URL.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter restricts which discovered URLs are kept.
type URLFilter struct {
	// Include keeps only URLs matching at least one pattern, when any
	// patterns are present.
	Include []*regexp.Regexp

	// Exclude drops URLs matching any pattern. Applied after Include.
	Exclude []*regexp.Regexp
}

// Match reports whether url passes the filter. A nil filter passes
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}
