package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/akraszewski/webdoc/api"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := api.NewServer(api.Config{
		Log:         slog.New(slog.NewTextHandler(deps.Stderr, nil)),
		Collections: deps.Collections,
		Documents:   deps.Documents,
		Loader:      deps.Loader,
		Searcher:    deps.Searcher,
		Indexer:     deps.Indexer,
		Asker:       deps.Asker,
	})

	httpServer := &http.Server{
		Addr:              c.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
