package main

import (
	"fmt"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/ingest"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	collection, err := findCollection(deps, c.Name)
	if err != nil {
		return err
	}

	// Ingested files are appended after existing documents.
	existing, err := deps.Documents.FindDocuments(deps.Ctx, webdoc.DocumentFilter{
		CollectionID: &collection.ID,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdoc.ErrorMessage(err))
		return err
	}
	position := len(existing)

	saved := 0
	for _, path := range c.Paths {
		if !ingest.IsSupported(path) {
			fmt.Fprintf(deps.Stderr, "  skip %s: unsupported file type\n", path)
			continue
		}

		doc, err := deps.Ingester.IngestFile(deps.Ctx, collection, path, position)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", path, webdoc.ErrorMessage(err))
			continue
		}

		fmt.Fprintf(deps.Stdout, "  Ingested %s (%s)\n", path, doc.ID)
		position++
		saved++
	}

	fmt.Fprintf(deps.Stdout, "Ingested %d of %d files into %q\n", saved, len(c.Paths), c.Name)
	return nil
}
