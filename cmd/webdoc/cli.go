package main

import (
	"context"
	"fmt"
	"io"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/crawl"
	"github.com/akraszewski/webdoc/ingest"
	"github.com/akraszewski/webdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Collections webdoc.CollectionService
	Documents   webdoc.DocumentService
	Chunks      webdoc.ChunkService
	Indexer     webdoc.ChunkIndexer
	Searcher    webdoc.Searcher
	Sitemaps    webdoc.SitemapService
	Loader      webdoc.Loader
	Crawler     *crawl.Crawler
	Ingester    *ingest.Ingester
	Asker       webdoc.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service calls to stderr"`

	Add    AddCmd    `cmd:"" help:"Add a collection and crawl its pages"`
	Load   LoadCmd   `cmd:"" help:"Load a single page and print extracted text"`
	Ingest IngestCmd `cmd:"" help:"Ingest local files into a collection"`
	List   ListCmd   `cmd:"" help:"List all collections"`
	Docs   DocsCmd   `cmd:"" help:"List documents in a collection"`
	Search SearchCmd `cmd:"" help:"Search indexed chunks"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about a collection"`
	Export ExportCmd `cmd:"" help:"Export collection documents as markdown files"`
	Delete DeleteCmd `cmd:"" help:"Delete a collection and its documents"`
	Serve  ServeCmd  `cmd:"" help:"Run the HTTP API server"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name        string   `arg:"" help:"Collection name"`
	URL         string   `arg:"" help:"Source URL"`
	Selector    string   `short:"s" help:"CSS selector scoping extraction for loaded pages"`
	Preview     bool     `short:"p" help:"Show URLs without creating the collection"`
	Force       bool     `short:"f" help:"Delete existing collection first"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
}

// LoadCmd is the "load" subcommand.
type LoadCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Selector string `short:"s" help:"CSS selector; one document per match"`
	JSON     bool   `help:"Print documents as JSON"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	Name  string   `arg:"" help:"Collection name"`
	Paths []string `arg:"" type:"existingfile" help:"Files to ingest (.txt, .md, .pdf)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Name string `arg:"" help:"Collection name"`
	Full bool   `help:"Show full document content"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query      string `arg:"" help:"Search query"`
	Collection string `short:"C" help:"Restrict to a collection by name"`
	Limit      int    `short:"n" default:"10" help:"Maximum number of results"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Name     string `arg:"" help:"Collection name"`
	Question string `arg:"" help:"Question to ask about the collection"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Collection name"`
	Dir  string `short:"d" default:"." help:"Output directory"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Collection name"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}

// findCollection resolves a collection by name, reporting a uniform
// error when it does not exist.
func findCollection(deps *Dependencies, name string) (*webdoc.Collection, error) {
	collections, err := deps.Collections.FindCollections(deps.Ctx, webdoc.CollectionFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdoc.ErrorMessage(err))
		return nil, err
	}
	if len(collections) == 0 {
		fmt.Fprintf(deps.Stderr, "error: collection %q not found. Use 'webdoc list' to see available collections.\n", name)
		return nil, webdoc.Errorf(webdoc.ENOTFOUND, "collection %q not found", name)
	}
	return collections[0], nil
}
