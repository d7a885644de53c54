// Package rod fetches pages with headless Chrome for sites whose
// content only exists after JavaScript runs.
package rod

import (
	"context"
	"fmt"

	"github.com/akraszewski/webdoc"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

var _ webdoc.Fetcher = (*Fetcher)(nil)

// Fetcher returns fully rendered HTML by driving a shared headless
// browser. Each Fetch opens its own page, so a Fetcher may be used from
// multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher launches headless Chrome and connects to it. The caller
// must Close the Fetcher to shut the browser down. Fails when no
// Chrome or Chromium binary can be found.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // the launched process would otherwise outlive us
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates a fresh page to url, waits for the load event, and
// returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close shuts down the browser.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
