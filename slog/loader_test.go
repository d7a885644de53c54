package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/mock"
	webslog "github.com/akraszewski/webdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs url, selector and document count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Loader{
			LoadFn: func(ctx context.Context, url string, opts webdoc.LoadOptions) ([]*webdoc.Document, error) {
				return []*webdoc.Document{
					{SourceURL: url, Content: "first"},
					{SourceURL: url, Content: "second"},
				}, nil
			},
		}

		l := webslog.NewLoggingLoader(inner, logger)
		docs, err := l.Load(context.Background(), "https://example.com", webdoc.LoadOptions{Selector: "h1"})

		require.NoError(t, err)
		assert.Len(t, docs, 2)
		output := buf.String()
		assert.Contains(t, output, "load")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "selector=h1")
		assert.Contains(t, output, "documents=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Loader{
			LoadFn: func(ctx context.Context, url string, opts webdoc.LoadOptions) ([]*webdoc.Document, error) {
				return nil, errors.New("fetch failed")
			},
		}

		l := webslog.NewLoggingLoader(inner, logger)
		_, err := l.Load(context.Background(), "https://example.com", webdoc.LoadOptions{})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "err=\"fetch failed\"")
	})
}
