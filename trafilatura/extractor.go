// Package trafilatura extracts the main content of a web page,
// stripping navigation, footers and other boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/akraszewski/webdoc"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ webdoc.Extractor = (*Extractor)(nil)

// Extractor implements webdoc.Extractor on top of go-trafilatura.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and main content of rawHTML as clean
// HTML. The readability/dom-distiller fallback is enabled so pages that
// defeat the primary heuristics still yield content.
func (e *Extractor) Extract(rawHTML string) (*webdoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webdoc.Errorf(webdoc.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, err
	}

	extracted := &webdoc.ExtractResult{Title: result.Metadata.Title}
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		extracted.ContentHTML = buf.String()
	}
	return extracted, nil
}
