package htmltomarkdown_test

import (
	"testing"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Title</h1><p>Some <strong>bold</strong> text.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "**bold**")
	})

	t.Run("converts code blocks", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<pre><code>func main() {}</code></pre>`)

		require.NoError(t, err)
		assert.Contains(t, md, "func main() {}")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<table><tr><th>Name</th><th>Type</th></tr><tr><td>id</td><td>string</td></tr></table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "| Name | Type |")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<a href="https://example.com">example</a>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[example](https://example.com)")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, webdoc.EINVALID, webdoc.ErrorCode(err))
	})
}
