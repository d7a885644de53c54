package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/akraszewski/webdoc"
	main "github.com/akraszewski/webdoc/cmd/webdoc"
	"github.com/akraszewski/webdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCmd_Run(t *testing.T) {
	t.Parallel()

	collectionsWith := func(id, name string) *mock.CollectionService {
		return &mock.CollectionService{
			FindCollectionsFn: func(_ context.Context, filter webdoc.CollectionFilter) ([]*webdoc.Collection, error) {
				if filter.Name != nil && *filter.Name == name {
					return []*webdoc.Collection{{ID: id, Name: name}}, nil
				}
				return []*webdoc.Collection{}, nil
			},
		}
	}

	t.Run("lists documents in position order", func(t *testing.T) {
		t.Parallel()

		var gotFilter webdoc.DocumentFilter
		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter webdoc.DocumentFilter) ([]*webdoc.Document, error) {
				gotFilter = filter
				return []*webdoc.Document{
					{ID: "doc-1", Title: "Getting Started", SourceURL: "https://example.com/docs/start"},
					{ID: "doc-2", Title: "", SourceURL: "https://example.com/docs/api"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Collections: collectionsWith("col-123", "example"),
			Documents:   documents,
		}

		cmd := &main.DocsCmd{Name: "example"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.CollectionID)
		assert.Equal(t, "col-123", *gotFilter.CollectionID)
		assert.Equal(t, webdoc.SortByPosition, gotFilter.SortBy)

		output := stdout.String()
		assert.Contains(t, output, "Getting Started")
		// Untitled documents fall back to their source URL
		assert.Contains(t, output, "https://example.com/docs/api")
	})

	t.Run("full flag prints formatted content", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ webdoc.DocumentFilter) ([]*webdoc.Document, error) {
				return []*webdoc.Document{
					{ID: "doc-1", Title: "Guide", SourceURL: "https://example.com/guide", Content: "Full body text here"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Collections: collectionsWith("col-123", "example"),
			Documents:   documents,
		}

		cmd := &main.DocsCmd{Name: "example", Full: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Full body text here")
	})

	t.Run("unknown collection returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      &bytes.Buffer{},
			Stderr:      stderr,
			Collections: collectionsWith("col-123", "example"),
		}

		cmd := &main.DocsCmd{Name: "missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, webdoc.ENOTFOUND, webdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})

	t.Run("empty collection returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ webdoc.DocumentFilter) ([]*webdoc.Document, error) {
				return []*webdoc.Document{}, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      &bytes.Buffer{},
			Stderr:      stderr,
			Collections: collectionsWith("col-123", "example"),
			Documents:   documents,
		}

		cmd := &main.DocsCmd{Name: "example"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, webdoc.ENOTFOUND, webdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "has no documents")
	})
}
