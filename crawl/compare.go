package crawl

import (
	"context"

	"github.com/akraszewski/webdoc"
)

// ContentDiffers compares content extracted from HTTP-fetched HTML vs
// browser-rendered HTML. Returns true if the rendered content is
// significantly longer (>50%), suggesting JavaScript rendering adds
// meaningful content. Also returns true on extraction errors (assumes
// JS needed).
func ContentDiffers(httpHTML, renderedHTML string, extractor webdoc.Extractor) bool {
	httpResult, err := extractor.Extract(httpHTML)
	if err != nil {
		return true
	}

	renderedResult, err := extractor.Extract(renderedHTML)
	if err != nil {
		return true
	}

	httpLen := len(httpResult.ContentHTML)
	renderedLen := len(renderedResult.ContentHTML)

	if httpLen == 0 && renderedLen > 0 {
		return true
	}

	threshold := float64(httpLen) * 1.5
	return float64(renderedLen) > threshold
}

// pickFetcher probes probeURL with both fetchers and returns the one to
// use for the rest of the crawl. The fast fetcher wins unless the
// rendered page carries materially more content, which indicates the
// site needs JavaScript.
func (c *Crawler) pickFetcher(ctx context.Context, probeURL string) webdoc.Fetcher {
	if c.FastFetcher == nil {
		return c.Fetcher
	}

	httpHTML, err := c.FastFetcher.Fetch(ctx, probeURL)
	if err != nil {
		return c.Fetcher
	}

	renderedHTML, err := c.Fetcher.Fetch(ctx, probeURL)
	if err != nil {
		return c.FastFetcher
	}

	if ContentDiffers(httpHTML, renderedHTML, c.Extractor) {
		return c.Fetcher
	}
	return c.FastFetcher
}
