package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/bleve"
	"github.com/akraszewski/webdoc/crawl"
	"github.com/akraszewski/webdoc/gemini"
	"github.com/akraszewski/webdoc/goquery"
	webhttp "github.com/akraszewski/webdoc/http"
	"github.com/akraszewski/webdoc/ingest"
	"github.com/akraszewski/webdoc/rod"
	webslog "github.com/akraszewski/webdoc/slog"
	"github.com/akraszewski/webdoc/sqlite"
	"github.com/akraszewski/webdoc/trafilatura"

	"github.com/akraszewski/webdoc/htmltomarkdown"
	"google.golang.org/genai"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database and search index paths. Set before calling Run().
	DBPath    string
	IndexPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Full-text index used for chunk search.
	Index *bleve.ChunkIndex

	// Services for end-to-end testing.
	CollectionService webdoc.CollectionService
	DocumentService   webdoc.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultDBPath(),
		IndexPath: defaultIndexPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Index != nil {
		_ = m.Index.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webdoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WEBDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Open search index
	m.Index, err = bleve.NewChunkIndex(m.IndexPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set WEBDOC_INDEX to use a different index path\n")
		return fmt.Errorf("failed to open search index at %q: %w", m.IndexPath, err)
	}

	// Wire core services into dependencies
	m.CollectionService = sqlite.NewCollectionService(m.DB)
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Collections = m.CollectionService
	deps.Documents = m.DocumentService
	deps.Chunks = sqlite.NewChunkService(m.DB)
	deps.Indexer = m.Index
	deps.Sitemaps = webhttp.NewSitemapService(nil)

	var searcher webdoc.Searcher = m.Index
	var pageFetcher webdoc.Fetcher = webhttp.NewFetcher()
	if cli.Verbose {
		searcher = webslog.NewLoggingSearcher(searcher, logger)
		pageFetcher = webslog.NewLoggingFetcher(pageFetcher, logger)
		deps.Sitemaps = webslog.NewLoggingSitemapService(deps.Sitemaps, logger)
	}
	deps.Searcher = searcher

	var loader webdoc.Loader = goquery.NewLoader(pageFetcher)
	if cli.Verbose {
		loader = webslog.NewLoggingLoader(loader, logger)
	}
	deps.Loader = loader

	deps.Ingester = &ingest.Ingester{
		Documents:   deps.Documents,
		Chunks:      deps.Chunks,
		Index:       deps.Indexer,
		SplitConfig: webdoc.DefaultSplitConfig(),
	}

	// Wire command-specific dependencies based on command
	if cmd == "add" && !cli.Add.Preview {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		var crawlFetcher webdoc.Fetcher = fetcher
		if cli.Verbose {
			crawlFetcher = webslog.NewLoggingFetcher(crawlFetcher, logger)
		}

		tokenCounter, err := gemini.NewTokenCounter(gemini.DefaultModel())
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		deps.Crawler = &crawl.Crawler{
			Sitemaps:     deps.Sitemaps,
			Fetcher:      crawlFetcher,
			FastFetcher:  pageFetcher,
			Extractor:    trafilatura.NewExtractor(),
			Converter:    htmltomarkdown.NewConverter(),
			Documents:    deps.Documents,
			Chunks:       deps.Chunks,
			Index:        deps.Indexer,
			TokenCounter: tokenCounter,
			LinkSelector: goquery.NewLinkSelector(),
			RateLimiter:  crawl.NewDomainLimiter(1.0),
			SplitConfig:  webdoc.DefaultSplitConfig(),
			Concurrency:  cli.Add.Concurrency,
		}
	}

	if cmd == "ask" || cmd == "serve" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" && cmd == "ask" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		if apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}

			deps.Asker = gemini.NewAsker(client, m.DocumentService, searcher)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("WEBDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webdoc.db"
	}
	dir := filepath.Join(home, ".webdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "webdoc.db")
}

func defaultIndexPath() string {
	if path := os.Getenv("WEBDOC_INDEX"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webdoc.bleve"
	}
	dir := filepath.Join(home, ".webdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "index.bleve")
}
