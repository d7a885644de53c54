package main

import (
	"fmt"
	"strings"

	"github.com/akraszewski/webdoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	opts := webdoc.SearchOptions{Limit: c.Limit}

	if c.Collection != "" {
		collection, err := findCollection(deps, c.Collection)
		if err != nil {
			return err
		}
		opts.CollectionIDs = []string{collection.ID}
	}

	results, err := deps.Searcher.Search(deps.Ctx, c.Query, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdoc.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}

	for i, res := range results {
		section := strings.Join(res.Chunk.Metadata.Headings, " > ")
		if section != "" {
			fmt.Fprintf(deps.Stdout, "%d. [%.2f] %s — %s\n", i+1, res.Score, res.Chunk.Metadata.SourceURL, section)
		} else {
			fmt.Fprintf(deps.Stdout, "%d. [%.2f] %s\n", i+1, res.Score, res.Chunk.Metadata.SourceURL)
		}
		fmt.Fprintf(deps.Stdout, "   %s\n", excerpt(res.Chunk.Content, 200))
	}

	return nil
}

// excerpt returns content trimmed to at most max runes on a single line.
func excerpt(content string, max int) string {
	content = strings.Join(strings.Fields(content), " ")
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "..."
}
