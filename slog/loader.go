package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/akraszewski/webdoc"
)

// Ensure LoggingLoader implements webdoc.Loader.
var _ webdoc.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with debug logging.
type LoggingLoader struct {
	next   webdoc.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next webdoc.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, url string, opts webdoc.LoadOptions) (docs []*webdoc.Document, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load",
			"url", url,
			"selector", opts.Selector,
			"documents", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, url, opts)
}
