package readability_test

import (
	"testing"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Release Notes</title></head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Release Notes</h1>
<p>Version 2.0 introduces incremental crawling and a reworked search index.
The release also fixes several issues with sitemap discovery on sites that
publish nested sitemap indexes.</p>
<p>Upgrading requires no schema changes.</p>
</article>
<footer>Footer</footer>
</body>
</html>`

		ext := readability.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Release Notes", result.Title)
		assert.Contains(t, result.ContentHTML, "incremental crawling")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := readability.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, webdoc.EINVALID, webdoc.ErrorCode(err))
	})
}
