package webdoc_test

import (
	"regexp"
	"testing"

	"github.com/akraszewski/webdoc"
	"github.com/stretchr/testify/assert"
)

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter passes everything", func(t *testing.T) {
		t.Parallel()

		var f *webdoc.URLFilter
		assert.True(t, f.Match("https://example.com/anything"))
	})

	t.Run("include requires at least one match", func(t *testing.T) {
		t.Parallel()

		f := &webdoc.URLFilter{
			Include: []*regexp.Regexp{
				regexp.MustCompile(`/docs/`),
				regexp.MustCompile(`/guides/`),
			},
		}

		assert.True(t, f.Match("https://example.com/docs/install"))
		assert.True(t, f.Match("https://example.com/guides/setup"))
		assert.False(t, f.Match("https://example.com/blog/news"))
	})

	t.Run("exclude rejects on any match", func(t *testing.T) {
		t.Parallel()

		f := &webdoc.URLFilter{
			Exclude: []*regexp.Regexp{regexp.MustCompile(`\.pdf$`)},
		}

		assert.True(t, f.Match("https://example.com/docs/install"))
		assert.False(t, f.Match("https://example.com/docs/manual.pdf"))
	})

	t.Run("exclude applies after include", func(t *testing.T) {
		t.Parallel()

		f := &webdoc.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/docs/archive/`)},
		}

		assert.True(t, f.Match("https://example.com/docs/current"))
		assert.False(t, f.Match("https://example.com/docs/archive/v1"))
	})
}
