package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/akraszewski/webdoc"
	main "github.com/akraszewski/webdoc/cmd/webdoc"
	"github.com/akraszewski/webdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints results with source and section", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		var gotOpts webdoc.SearchOptions
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, query string, opts webdoc.SearchOptions) ([]webdoc.SearchResult, error) {
				gotQuery = query
				gotOpts = opts
				return []webdoc.SearchResult{
					{
						Chunk: &webdoc.Chunk{
							ID:      "chunk-1",
							Content: "Tokens are issued on login and expire after an hour.",
							Metadata: webdoc.ChunkMetadata{
								Headings:  []string{"API", "Auth"},
								SourceURL: "https://example.com/docs/auth",
							},
						},
						Score: 1.42,
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Searcher: searcher,
		}

		cmd := &main.SearchCmd{Query: "auth tokens", Limit: 5}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "auth tokens", gotQuery)
		assert.Equal(t, 5, gotOpts.Limit)
		assert.Empty(t, gotOpts.CollectionIDs)

		output := stdout.String()
		assert.Contains(t, output, "https://example.com/docs/auth")
		assert.Contains(t, output, "API > Auth")
		assert.Contains(t, output, "Tokens are issued on login")
	})

	t.Run("collection flag scopes the search", func(t *testing.T) {
		t.Parallel()

		name := "example"
		collections := &mock.CollectionService{
			FindCollectionsFn: func(_ context.Context, filter webdoc.CollectionFilter) ([]*webdoc.Collection, error) {
				if filter.Name != nil && *filter.Name == name {
					return []*webdoc.Collection{{ID: "col-123", Name: name}}, nil
				}
				return []*webdoc.Collection{}, nil
			},
		}

		var gotOpts webdoc.SearchOptions
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, _ string, opts webdoc.SearchOptions) ([]webdoc.SearchResult, error) {
				gotOpts = opts
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Collections: collections,
			Searcher:    searcher,
		}

		cmd := &main.SearchCmd{Query: "tokens", Collection: name, Limit: 10}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"col-123"}, gotOpts.CollectionIDs)
		assert.Contains(t, stdout.String(), "No results.")
	})

	t.Run("returns error when search fails", func(t *testing.T) {
		t.Parallel()

		searchErr := errors.New("index unavailable")
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, _ string, _ webdoc.SearchOptions) ([]webdoc.SearchResult, error) {
				return nil, searchErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Searcher: searcher,
		}

		cmd := &main.SearchCmd{Query: "tokens"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, searchErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
