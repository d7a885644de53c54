// Package ingest loads local files into collections as documents.
package ingest

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/akraszewski/webdoc"
)

// SupportedExtensions lists file extensions the ingester can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".pdf":      true,
}

// IsSupported checks if a file extension is supported.
func IsSupported(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Ingester reads local files and stores them as collection documents,
// splitting each into indexed chunks the same way crawled pages are.
type Ingester struct {
	Documents   webdoc.DocumentService
	Chunks      webdoc.ChunkService
	Index       webdoc.ChunkIndexer
	SplitConfig webdoc.SplitConfig
}

// IngestFile reads a single file into the collection. The document's
// source URL is the file path as a file:// URL; its title is the file
// name without extension.
func (in *Ingester) IngestFile(ctx context.Context, collection *webdoc.Collection, path string, position int) (*webdoc.Document, error) {
	content, err := in.readFile(path)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	sourceURL := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()

	base := filepath.Base(path)
	title := strings.TrimSuffix(base, filepath.Ext(base))

	doc := &webdoc.Document{
		CollectionID: collection.ID,
		SourceURL:    sourceURL,
		Title:        title,
		Content:      content,
		Position:     position,
	}
	if err := in.Documents.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}

	if err := in.chunkDocument(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// readFile extracts text content from a supported file type.
func (in *Ingester) readFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md", ".markdown":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case ".pdf":
		return extractPDFText(path)
	default:
		return "", webdoc.Errorf(webdoc.EINVALID, "unsupported file extension: %s", ext)
	}
}

func (in *Ingester) chunkDocument(ctx context.Context, doc *webdoc.Document) error {
	if in.Chunks == nil {
		return nil
	}

	cfg := in.SplitConfig
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

	if err := in.Chunks.CreateChunks(ctx, chunks); err != nil {
		return err
	}
	if in.Index != nil {
		return in.Index.IndexChunks(ctx, chunks)
	}
	return nil
}
