package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"root becomes index", "https://example.com", "index.md"},
		{"root slash becomes index", "https://example.com/", "index.md"},
		{"page gets md suffix", "https://example.com/docs/intro", "docs/intro.md"},
		{"trailing slash becomes index in dir", "https://example.com/docs/", "docs/index.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	doc := &webdoc.Document{
		SourceURL: "https://example.com/intro",
		Title:     "Introduction",
		Content:   "# Welcome",
		FetchedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	content := fs.FormatDocument(doc)

	assert.Contains(t, content, "---\n")
	assert.Contains(t, content, "source: https://example.com/intro")
	assert.Contains(t, content, "title: Introduction")
	assert.Contains(t, content, "crawled: 2026-03-14")
	assert.Contains(t, content, "# Welcome")
}

func TestWriter_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown file mirroring URL path", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writer := fs.NewWriter(base)

		doc := &webdoc.Document{
			CollectionID: "col-1",
			SourceURL:    "https://example.com/docs/api",
			Title:        "API Reference",
			Content:      "# API\n\nWelcome to the API.",
		}
		require.NoError(t, writer.CreateDocument(context.Background(), doc))

		content, err := os.ReadFile(filepath.Join(base, "docs", "api.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "source: https://example.com/docs/api")
		assert.Contains(t, string(content), "# API")
	})

	t.Run("rejects invalid document", func(t *testing.T) {
		t.Parallel()

		writer := fs.NewWriter(t.TempDir())

		err := writer.CreateDocument(context.Background(), &webdoc.Document{})
		require.Error(t, err)
		assert.Equal(t, webdoc.EINVALID, webdoc.ErrorCode(err))
	})
}

func TestWriter_WriteAll(t *testing.T) {
	t.Parallel()

	t.Run("writes every document", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writer := fs.NewWriter(base)

		docs := []*webdoc.Document{
			{CollectionID: "col-1", SourceURL: "https://example.com/a", Content: "# A"},
			{CollectionID: "col-1", SourceURL: "https://example.com/b", Content: "# B"},
		}
		require.NoError(t, writer.WriteAll(context.Background(), docs))

		_, err := os.Stat(filepath.Join(base, "a.md"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "b.md"))
		require.NoError(t, err)
	})

	t.Run("collects failures without aborting", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writer := fs.NewWriter(base)

		docs := []*webdoc.Document{
			{}, // invalid
			{CollectionID: "col-1", SourceURL: "https://example.com/ok", Content: "# OK"},
		}
		err := writer.WriteAll(context.Background(), docs)
		require.Error(t, err)

		// The valid document was still written.
		_, statErr := os.Stat(filepath.Join(base, "ok.md"))
		require.NoError(t, statErr)
	})
}
