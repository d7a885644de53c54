// Package goquery implements selector-based text extraction from web
// pages. The Loader composes a webdoc.Fetcher with goquery parsing to
// turn a URL and an optional CSS selector into text documents.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/akraszewski/webdoc"
	"github.com/andybalholm/cascadia"
)

// Ensure Loader implements webdoc.Loader at compile time.
var _ webdoc.Loader = (*Loader)(nil)

// Loader loads web pages as text documents. With a selector it returns
// one document per matching element, in document order; without one it
// returns a single document holding the page's textual content.
type Loader struct {
	fetcher webdoc.Fetcher
}

// NewLoader creates a new Loader using the given fetcher.
func NewLoader(fetcher webdoc.Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load fetches the URL and materializes it as documents.
// Fetch failures propagate unchanged; an invalid selector returns
// EINVALID; a selector matching nothing returns ENOTFOUND rather than
// an empty result.
func (l *Loader) Load(ctx context.Context, url string, opts webdoc.LoadOptions) ([]*webdoc.Document, error) {
	html, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseDocuments(html, url, opts)
}

// ParseDocuments converts already-fetched HTML into documents according
// to opts. It is the parsing half of Load, usable for local HTML.
func ParseDocuments(html string, sourceURL string, opts webdoc.LoadOptions) ([]*webdoc.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webdoc.Errorf(webdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	if opts.Selector == "" {
		// Script and style text is not page content.
		doc.Find("script, style, noscript").Remove()

		body := doc.Find("body")
		if body.Length() == 0 {
			body = doc.Selection
		}

		return []*webdoc.Document{{
			SourceURL: sourceURL,
			Title:     title,
			Content:   strings.TrimSpace(body.Text()),
		}}, nil
	}

	matcher, err := cascadia.Compile(opts.Selector)
	if err != nil {
		return nil, webdoc.Errorf(webdoc.EINVALID, "invalid selector %q: %v", opts.Selector, err)
	}

	var docs []*webdoc.Document
	doc.FindMatcher(matcher).Each(func(i int, sel *goquery.Selection) {
		docs = append(docs, &webdoc.Document{
			SourceURL: sourceURL,
			Title:     title,
			Content:   strings.TrimSpace(sel.Text()),
			Position:  i,
		})
	})

	if len(docs) == 0 {
		return nil, webdoc.Errorf(webdoc.ENOTFOUND, "no elements match selector %q", opts.Selector)
	}

	return docs, nil
}
