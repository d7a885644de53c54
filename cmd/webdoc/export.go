package main

import (
	"fmt"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
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
		fmt.Fprintf(deps.Stderr, "error: collection %q has no documents\n", c.Name)
		return webdoc.Errorf(webdoc.ENOTFOUND, "collection %q has no documents", c.Name)
	}

	writer := fs.NewWriter(c.Dir)
	if err := writer.WriteAll(deps.Ctx, docs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d documents to %s\n", len(docs), c.Dir)
	return nil
}
