package main

import (
	"encoding/json"
	"fmt"

	"github.com/akraszewski/webdoc"
)

// Run executes the load command.
func (c *LoadCmd) Run(deps *Dependencies) error {
	docs, err := deps.Loader.Load(deps.Ctx, c.URL, webdoc.LoadOptions{Selector: c.Selector})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}

	for i, doc := range docs {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, doc.Content)
	}

	return nil
}
