package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/akraszewski/webdoc"
)

var _ webdoc.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService decorates a SitemapService, logging each
// discovery with its URL count and duration.
type LoggingSitemapService struct {
	next   webdoc.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService wraps next with logging to logger.
func NewLoggingSitemapService(next webdoc.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *webdoc.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}
