package mock

import "github.com/akraszewski/webdoc"

var _ webdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of webdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
