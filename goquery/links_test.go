package goquery_test

import (
	"testing"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts prioritized links from page regions", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<nav><a href="/guide">Guide</a></nav>
			<main><a href="/reference">Reference</a></main>
			<footer><a href="/legal">Legal</a></footer>
		</body></html>`

		links, err := goquery.NewLinkSelector().ExtractLinks(html, "https://example.com")
		require.NoError(t, err)
		require.Len(t, links, 3)

		byURL := make(map[string]webdoc.DiscoveredLink)
		for _, l := range links {
			byURL[l.URL] = l
		}

		assert.Equal(t, webdoc.PriorityNavigation, byURL["https://example.com/guide"].Priority)
		assert.Equal(t, "nav", byURL["https://example.com/guide"].Source)
		assert.Equal(t, webdoc.PriorityContent, byURL["https://example.com/reference"].Priority)
		assert.Equal(t, webdoc.PriorityFooter, byURL["https://example.com/legal"].Priority)
	})

	t.Run("deduplicates keeping highest priority", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<footer><a href="/guide">Guide</a></footer>
			<nav><a href="/guide">Guide</a></nav>
		</body></html>`

		links, err := goquery.NewLinkSelector().ExtractLinks(html, "https://example.com")
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, webdoc.PriorityNavigation, links[0].Priority)
	})

	t.Run("filters external hosts and non-HTTP links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><nav>
			<a href="https://other.example.org/x">External</a>
			<a href="mailto:team@example.com">Mail</a>
			<a href="javascript:void(0)">JS</a>
			<a href="/ok">OK</a>
		</nav></body></html>`

		links, err := goquery.NewLinkSelector().ExtractLinks(html, "https://example.com")
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/ok", links[0].URL)
	})

	t.Run("fallback sweep catches links outside known regions", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="custom-layout">
			<a href="/hidden">Hidden</a>
		</div></body></html>`

		links, err := goquery.NewLinkSelector().ExtractLinks(html, "https://example.com")
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, webdoc.PriorityFallback, links[0].Priority)
		assert.Equal(t, "fallback", links[0].Source)
	})

	t.Run("strips fragments and drops self-referential anchors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><nav>
			<a href="#section">Here</a>
			<a href="/page#intro">Page</a>
		</nav></body></html>`

		links, err := goquery.NewLinkSelector().ExtractLinks(html, "https://example.com")
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/page", links[0].URL)
	})

	t.Run("invalid base URL returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewLinkSelector().ExtractLinks("<html></html>", "://bad")
		require.Error(t, err)
		assert.Equal(t, webdoc.EINVALID, webdoc.ErrorCode(err))
	})
}
