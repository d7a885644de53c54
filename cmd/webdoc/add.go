package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/crawl"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	// Compile filters to URLFilter (validates regex patterns early)
	var urlFilter *webdoc.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &webdoc.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	// Preview mode: show URLs without creating the collection
	if c.Preview {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, urlFilter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webdoc.ErrorMessage(err))
			return err
		}
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	// Force mode: delete existing collection first
	if c.Force {
		existing, err := deps.Collections.FindCollections(deps.Ctx, webdoc.CollectionFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webdoc.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deleteCollection(deps, existing[0]); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", webdoc.ErrorMessage(err))
				return err
			}
		}
	}

	collection := &webdoc.Collection{
		Name:      c.Name,
		SourceURL: c.URL,
		Selector:  c.Selector,
		Filter:    strings.Join(c.Filter, "\n"),
	}

	if err := deps.Collections.CreateCollection(deps.Ctx, collection); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added collection %q (%s)\n", c.Name, collection.ID)

	// Crawl documents if Crawler is provided
	if deps.Crawler != nil {
		if c.Concurrency > 0 {
			deps.Crawler.Concurrency = c.Concurrency
		}

		progress := func(event crawl.ProgressEvent) {
			switch event.Type {
			case crawl.ProgressStarted:
				fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
			case crawl.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 60), event.Error)
			case crawl.ProgressFinished:
				// Summary printed after crawl completes
			}
		}

		result, err := deps.Crawler.CrawlCollection(deps.Ctx, collection, progress)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
			return err
		}

		fmt.Fprintf(deps.Stdout, "  Saved %d pages, %d chunks (%s, %s)\n",
			result.Saved, result.Chunks, crawl.FormatBytes(result.Bytes), crawl.FormatTokens(result.Tokens))
	}

	return nil
}

// deleteCollection removes a collection along with its indexed chunks.
func deleteCollection(deps *Dependencies, collection *webdoc.Collection) error {
	if deps.Indexer != nil {
		if err := deps.Indexer.DeleteCollection(deps.Ctx, collection.ID); err != nil {
			return err
		}
	}
	return deps.Collections.DeleteCollection(deps.Ctx, collection.ID)
}
