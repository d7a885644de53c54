package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akraszewski/webdoc"
	main "github.com/akraszewski/webdoc/cmd/webdoc"
	"github.com/akraszewski/webdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists collections with ID, name, and URL", func(t *testing.T) {
		t.Parallel()

		collections := &mock.CollectionService{
			FindCollectionsFn: func(_ context.Context, _ webdoc.CollectionFilter) ([]*webdoc.Collection, error) {
				return []*webdoc.Collection{
					{
						ID:        "col-123",
						Name:      "react-docs",
						SourceURL: "https://react.dev/docs",
						CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:        "col-456",
						Name:      "go-docs",
						SourceURL: "https://go.dev/doc",
						CreatedAt: time.Date(2026, 1, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Collections: collections,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "col-123")
		assert.Contains(t, output, "col-456")
		assert.Contains(t, output, "react-docs")
		assert.Contains(t, output, "go-docs")
		assert.Contains(t, output, "https://react.dev/docs")
		assert.Contains(t, output, "https://go.dev/doc")
	})

	t.Run("shows helpful message when no collections exist", func(t *testing.T) {
		t.Parallel()

		collections := &mock.CollectionService{
			FindCollectionsFn: func(_ context.Context, _ webdoc.CollectionFilter) ([]*webdoc.Collection, error) {
				return []*webdoc.Collection{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Collections: collections,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No collections")
	})

	t.Run("returns error when FindCollections fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		collections := &mock.CollectionService{
			FindCollectionsFn: func(_ context.Context, _ webdoc.CollectionFilter) ([]*webdoc.Collection, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      &bytes.Buffer{},
			Stderr:      stderr,
			Collections: collections,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
