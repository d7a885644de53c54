// Package crawl provides collection crawling orchestration.
// It coordinates sitemap discovery, fetching, extraction, chunking and
// storage of web pages.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// Crawler orchestrates the crawling of web sites into collections.
type Crawler struct {
	Sitemaps webdoc.SitemapService

	// Fetcher retrieves pages, typically with a headless browser.
	// FastFetcher, when set, is a plain HTTP fetcher tried first: the
	// first page is probed with both and the cheaper one is used for
	// the whole crawl unless rendering adds meaningful content.
	Fetcher      webdoc.Fetcher
	FastFetcher  webdoc.Fetcher
	Extractor    webdoc.Extractor
	Converter    webdoc.Converter
	Documents    webdoc.DocumentService
	Chunks       webdoc.ChunkService
	Index        webdoc.ChunkIndexer
	TokenCounter webdoc.TokenCounter
	LinkSelector webdoc.LinkSelector
	RateLimiter  webdoc.DomainLimiter
	SplitConfig  webdoc.SplitConfig
	Concurrency  int
	RetryDelays  []time.Duration
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
	Tokens int
	Chunks int

	// Err aggregates per-URL failures. A non-nil Err does not mean the
	// crawl as a whole failed; successfully crawled pages are saved.
	Err error
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single URL.
type crawlResult struct {
	position int
	url      string
	title    string
	markdown string
	hash     string
	err      error
}

// CrawlCollection crawls all pages for a collection and saves them as
// documents. Each saved document is split into chunks for retrieval.
// The progress callback, if provided, receives events as crawling
// proceeds.
func (c *Crawler) CrawlCollection(ctx context.Context, collection *webdoc.Collection, progress ProgressFunc) (*Result, error) {
	urlFilter, err := ParseFilter(collection.Filter)
	if err != nil {
		return nil, err
	}
	if collection.Selector != "" {
		if _, err := cascadia.Compile(collection.Selector); err != nil {
			return nil, webdoc.Errorf(webdoc.EINVALID, "invalid selector %q: %v", collection.Selector, err)
		}
	}

	// Discover URLs from sitemap
	urls, err := c.Sitemaps.DiscoverURLs(ctx, collection.SourceURL, urlFilter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	if len(urls) == 0 {
		// Fall back to recursive crawling if LinkSelector is configured
		if c.LinkSelector != nil && c.RateLimiter != nil {
			return c.recursiveCrawl(ctx, collection, urlFilter, progress)
		}
		return &Result{}, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	fetcher := c.pickFetcher(ctx, urls[0])

	resultCh := make(chan crawlResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, pageURL := range urls {
			i, pageURL := i, pageURL
			g.Go(func() error {
				result := c.processURL(gctx, i, pageURL, fetcher, collection.Selector)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]crawlResult, len(urls))
	var failures *multierror.Error
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failedCount++
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", result.url, result.err))
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       result.url,
					Error:     result.err,
				})
			}
		} else if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		}
	}

	// Save documents and accumulate stats
	res := Result{Failed: failedCount}
	for _, result := range results {
		if result.err != nil {
			continue
		}

		if err := c.saveDocument(ctx, collection, result, &res); err != nil {
			res.Failed++
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", result.url, err))
		}
	}
	res.Err = failures.ErrorOrNil()

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &res, nil
}

// saveDocument persists one crawled page, replacing any previous
// version, and splits it into indexed chunks. Pages whose content hash
// is unchanged since the last crawl are left untouched.
func (c *Crawler) saveDocument(ctx context.Context, collection *webdoc.Collection, result crawlResult, res *Result) error {
	existing, err := c.Documents.FindDocuments(ctx, webdoc.DocumentFilter{
		CollectionID: &collection.ID,
		SourceURL:    &result.url,
	})
	if err != nil {
		return err
	}
	for _, prev := range existing {
		if prev.ContentHash == result.hash {
			return nil // unchanged since last crawl
		}
		if c.Chunks != nil {
			if err := c.Chunks.DeleteChunksByDocument(ctx, prev.ID); err != nil {
				return err
			}
		}
		if c.Index != nil {
			if err := c.Index.DeleteDocument(ctx, prev.ID); err != nil {
				return err
			}
		}
		if err := c.Documents.DeleteDocument(ctx, prev.ID); err != nil {
			return err
		}
	}

	doc := &webdoc.Document{
		CollectionID: collection.ID,
		SourceURL:    result.url,
		Title:        result.title,
		Content:      result.markdown,
		ContentHash:  result.hash,
		Position:     result.position,
	}
	if err := c.Documents.CreateDocument(ctx, doc); err != nil {
		return err
	}

	res.Saved++
	res.Bytes += len(result.markdown)
	if c.TokenCounter != nil {
		if tokens, err := c.TokenCounter.CountTokens(ctx, result.markdown); err == nil {
			res.Tokens += tokens
		}
	}

	chunks, err := c.splitDocument(ctx, doc)
	if err != nil {
		return err
	}
	res.Chunks += len(chunks)
	return nil
}

// splitDocument splits a saved document into chunks and indexes them.
func (c *Crawler) splitDocument(ctx context.Context, doc *webdoc.Document) ([]*webdoc.Chunk, error) {
	if c.Chunks == nil {
		return nil, nil
	}

	cfg := c.SplitConfig
	if cfg.ChunkSize <= 0 {
		cfg = webdoc.DefaultSplitConfig()
	}

	parts := webdoc.SplitMarkdown(doc.Content, cfg)
	chunks := make([]*webdoc.Chunk, 0, len(parts))
	for i, part := range parts {
		chunks = append(chunks, &webdoc.Chunk{
			DocumentID:   doc.ID,
			CollectionID: doc.CollectionID,
			Content:      part.Content,
			Position:     i,
			Metadata: webdoc.ChunkMetadata{
				Headings:  part.Headings,
				SourceURL: doc.SourceURL,
			},
		})
	}

	if err := c.Chunks.CreateChunks(ctx, chunks); err != nil {
		return nil, err
	}
	if c.Index != nil {
		if err := c.Index.IndexChunks(ctx, chunks); err != nil {
			return nil, err
		}
	}
	return chunks, nil
}

// processURL fetches and processes a single URL. A non-empty selector
// narrows the page to the matching region before extraction.
func (c *Crawler) processURL(ctx context.Context, position int, pageURL string, fetcher webdoc.Fetcher, selector string) crawlResult {
	result := crawlResult{
		position: position,
		url:      pageURL,
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, fetchFn, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	if selector != "" {
		html, err = goquery.SelectRegion(html, selector)
		if err != nil {
			result.err = err
			return result
		}
	}

	extracted, err := c.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	markdown, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.err = err
		return result
	}

	result.title = extracted.Title
	result.markdown = markdown
	result.hash = ComputeHash(markdown)

	return result
}

// ParseFilter compiles a collection's newline-separated filter patterns
// into a URLFilter. An empty filter string yields a nil filter, which
// passes every URL.
func ParseFilter(filter string) (*webdoc.URLFilter, error) {
	if filter == "" {
		return nil, nil
	}

	urlFilter := &webdoc.URLFilter{}
	for _, pattern := range strings.Split(filter, "\n") {
		if pattern == "" {
			continue
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, webdoc.Errorf(webdoc.EINVALID, "invalid filter pattern %q: %v", pattern, err)
		}
		urlFilter.Include = append(urlFilter.Include, re)
	}
	return urlFilter, nil
}

// Frontier configuration for recursive crawling.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// maxRecursiveCrawlURLs limits the number of URLs processed to prevent runaway crawls.
	maxRecursiveCrawlURLs = 1000
)

// recursiveCrawl performs recursive link-following when sitemap discovery
// finds nothing. It starts from the collection's source URL and follows
// links within the path prefix scope.
//
// Note: URLs are processed sequentially (not concurrently) to simplify
// rate limiting and frontier management. For sites requiring high
// throughput, use sitemap-based crawling.
func (c *Crawler) recursiveCrawl(ctx context.Context, collection *webdoc.Collection, urlFilter *webdoc.URLFilter, progress ProgressFunc) (*Result, error) {
	sourceURL, err := url.Parse(collection.SourceURL)
	if err != nil {
		return nil, webdoc.Errorf(webdoc.EINVALID, "invalid source URL: %v", err)
	}
	pathPrefix := sourceURL.Path

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(webdoc.DiscoveredLink{
		URL:      collection.SourceURL,
		Priority: webdoc.PriorityNavigation,
	})

	fetcher := c.pickFetcher(ctx, collection.SourceURL)

	var res Result
	var failures *multierror.Error
	position := 0
	processedCount := 0

	for {
		link, ok := frontier.Pop()
		if !ok {
			break // Frontier empty
		}

		// Safety limit to prevent runaway crawls
		if processedCount >= maxRecursiveCrawlURLs {
			break
		}
		processedCount++

		if ctx.Err() != nil {
			break
		}

		linkURL, err := url.Parse(link.URL)
		if err != nil {
			res.Failed++
			continue
		}
		if err := c.RateLimiter.Wait(ctx, linkURL.Host); err != nil {
			break // Context canceled
		}

		delays := c.RetryDelays
		if delays == nil {
			delays = DefaultRetryDelays()
		}
		fetchFn := func(ctx context.Context, url string) (string, error) {
			return fetcher.Fetch(ctx, url)
		}
		html, err := FetchWithRetryDelays(ctx, link.URL, fetchFn, nil, delays)
		if err != nil {
			res.Failed++
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", link.URL, err))
			if progress != nil {
				progress(ProgressEvent{
					Type:  ProgressFailed,
					URL:   link.URL,
					Error: err,
				})
			}
			continue
		}

		// Extract links and add to frontier
		links, err := c.LinkSelector.ExtractLinks(html, link.URL)
		if err == nil {
			for _, discovered := range links {
				// Scope: same host, within path prefix
				discoveredURL, err := url.Parse(discovered.URL)
				if err != nil {
					continue
				}
				if discoveredURL.Host != sourceURL.Host {
					continue
				}
				if !strings.HasPrefix(discoveredURL.Path, pathPrefix) {
					continue
				}
				if !urlFilter.Match(discovered.URL) {
					continue
				}
				frontier.Push(discovered)
			}
		}

		// Links come from the full page; the selector scopes content only.
		pageHTML := html
		if collection.Selector != "" {
			pageHTML, err = goquery.SelectRegion(html, collection.Selector)
			if err != nil {
				res.Failed++
				failures = multierror.Append(failures, fmt.Errorf("%s: %w", link.URL, err))
				if progress != nil {
					progress(ProgressEvent{
						Type:  ProgressFailed,
						URL:   link.URL,
						Error: err,
					})
				}
				continue
			}
		}

		extracted, err := c.Extractor.Extract(pageHTML)
		if err != nil {
			res.Failed++
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", link.URL, err))
			if progress != nil {
				progress(ProgressEvent{
					Type:  ProgressFailed,
					URL:   link.URL,
					Error: err,
				})
			}
			continue
		}

		markdown, err := c.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			res.Failed++
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", link.URL, err))
			if progress != nil {
				progress(ProgressEvent{
					Type:  ProgressFailed,
					URL:   link.URL,
					Error: err,
				})
			}
			continue
		}

		result := crawlResult{
			position: position,
			url:      link.URL,
			title:    extracted.Title,
			markdown: markdown,
			hash:     ComputeHash(markdown),
		}
		position++

		if err := c.saveDocument(ctx, collection, result, &res); err != nil {
			res.Failed++
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", link.URL, err))
			continue
		}

		if progress != nil {
			progress(ProgressEvent{
				Type: ProgressCompleted,
				URL:  link.URL,
			})
		}
	}
	res.Err = failures.ErrorOrNil()

	if progress != nil {
		progress(ProgressEvent{
			Type: ProgressFinished,
		})
	}

	return &res, nil
}

// ComputeHash computes a hex-encoded xxhash of the content, used to
// detect unchanged pages between crawls.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
