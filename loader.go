package webdoc

import "context"

// LoadOptions configures a single Load call.
type LoadOptions struct {
	// Selector is an optional CSS selector. When set, only the text of
	// matching elements is returned, one document per match. When empty,
	// the whole page's textual content becomes a single document.
	Selector string
}

// Loader fetches a web page and materializes it as text documents.
// A load issues exactly one outbound request; failures (unreachable
// host, non-success status, invalid selector) propagate to the caller
// rather than yielding empty content.
type Loader interface {
	Load(ctx context.Context, url string, opts LoadOptions) ([]*Document, error)
}

// Fetcher retrieves raw HTML from URLs.
// Implementations may use plain HTTP or browser automation for
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the HTML at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	Close() error
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into
	// its Markdown representation.
	Convert(html string) (string, error)
}
