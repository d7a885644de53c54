package mock

import "github.com/akraszewski/webdoc"

var _ webdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*webdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*webdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}
