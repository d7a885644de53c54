package main

import (
	"fmt"

	"github.com/akraszewski/webdoc"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	collection, err := findCollection(deps, c.Name)
	if err != nil {
		return err
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, webdoc.DocumentFilter{
		CollectionID: &collection.ID,
		SortBy:       webdoc.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdoc.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: collection %q has no documents. To re-add, first run 'webdoc delete %s --force', then run 'webdoc add %s <url>'.\n", c.Name, c.Name, c.Name)
		return webdoc.Errorf(webdoc.ENOTFOUND, "collection %q has no documents", c.Name)
	}

	if c.Full {
		// Print full formatted content (same as what ask sends to the model)
		fmt.Fprintln(deps.Stdout, webdoc.FormatDocuments(docs))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents for %s (%d total):\n\n", c.Name, len(docs))
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.SourceURL
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, title, doc.SourceURL)
	}

	return nil
}
