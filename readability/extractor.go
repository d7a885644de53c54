// Package readability extracts main content from HTML using the
// go-shiori readability port. It suits article-shaped pages and is a
// lighter alternative to the trafilatura extractor.
package readability

import (
	"strings"

	"github.com/akraszewski/webdoc"
	"github.com/go-shiori/go-readability"
)

var _ webdoc.Extractor = (*Extractor)(nil)

// Extractor strips boilerplate from raw HTML, keeping the article body.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and main content HTML. Empty input is
// rejected with EINVALID.
func (e *Extractor) Extract(rawHTML string) (*webdoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webdoc.Errorf(webdoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &webdoc.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
