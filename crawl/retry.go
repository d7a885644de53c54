package crawl

import (
	"context"
	"time"
)

// FetchFunc fetches the HTML at url.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc receives retry notices in printf style.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the standard backoff schedule: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays fetches url, retrying once per delay in the
// schedule. A canceled context interrupts the backoff sleep; the last
// fetch error is returned when every attempt fails. The logger, if
// provided, is told about each retry.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= len(delays) {
			return "", lastErr
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
}
