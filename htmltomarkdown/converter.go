// Package htmltomarkdown converts extracted page HTML into the
// markdown form documents are stored as.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/akraszewski/webdoc"
)

var _ webdoc.Converter = (*Converter)(nil)

// Converter implements webdoc.Converter using html-to-markdown with
// commonmark and table support.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter. The converter is reusable and
// safe for concurrent use.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert renders html as markdown. Whitespace-only input is EINVALID
// rather than an empty document.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", webdoc.Errorf(webdoc.EINVALID, "empty HTML input")
	}
	return c.conv.ConvertString(html)
}
