// Package bleve provides full-text chunk search backed by a bleve index.
package bleve

import (
	"context"

	"github.com/akraszewski/webdoc"
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Compile-time interface verification.
var (
	_ webdoc.Searcher     = (*ChunkIndex)(nil)
	_ webdoc.ChunkIndexer = (*ChunkIndex)(nil)
)

const defaultSearchLimit = 10

// deleteBatchSize bounds how many hits a single deletion pass requests.
const deleteBatchSize = 500

// chunkDoc is the indexed representation of a webdoc.Chunk. All fields
// are stored so results can be reconstructed without a second lookup.
type chunkDoc struct {
	DocumentID   string   `json:"documentId"`
	CollectionID string   `json:"collectionId"`
	Content      string   `json:"content"`
	Position     float64  `json:"position"`
	Headings     []string `json:"headings"`
	SourceURL    string   `json:"sourceUrl"`
}

// ChunkIndex implements webdoc.Searcher and webdoc.ChunkIndexer using a
// bleve full-text index.
type ChunkIndex struct {
	idx bleve.Index
}

// NewChunkIndex opens (or creates) a bleve index at path. An empty path
// creates a memory-only index, useful for tests.
func NewChunkIndex(path string) (*ChunkIndex, error) {
	if path == "" {
		idx, err := bleve.NewMemOnly(buildMapping())
		if err != nil {
			return nil, webdoc.Errorf(webdoc.EINTERNAL, "open memory index: %v", err)
		}
		return &ChunkIndex{idx: idx}, nil
	}

	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, buildMapping())
	}
	if err != nil {
		return nil, webdoc.Errorf(webdoc.EINTERNAL, "open index %s: %v", path, err)
	}
	return &ChunkIndex{idx: idx}, nil
}

// Close releases the underlying index.
func (ci *ChunkIndex) Close() error {
	return ci.idx.Close()
}

func buildMapping() mapping.IndexMapping {
	chunkMapping := bleve.NewDocumentMapping()

	contentField := bleve.NewTextFieldMapping()
	chunkMapping.AddFieldMappingsAt("content", contentField)
	chunkMapping.AddFieldMappingsAt("headings", contentField)

	// Exact-match fields must not be tokenized.
	keywordField := bleve.NewTextFieldMapping()
	keywordField.Analyzer = keyword.Name
	chunkMapping.AddFieldMappingsAt("collectionId", keywordField)
	chunkMapping.AddFieldMappingsAt("documentId", keywordField)

	storedField := bleve.NewTextFieldMapping()
	storedField.Index = false
	chunkMapping.AddFieldMappingsAt("sourceUrl", storedField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = chunkMapping
	return indexMapping
}

// IndexChunks adds chunks to the search index. Chunks must already have
// IDs assigned by the chunk store.
func (ci *ChunkIndex) IndexChunks(ctx context.Context, chunks []*webdoc.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	batch := ci.idx.NewBatch()
	for _, chunk := range chunks {
		if chunk.ID == "" {
			return webdoc.Errorf(webdoc.EINVALID, "chunk has no ID")
		}
		doc := chunkDoc{
			DocumentID:   chunk.DocumentID,
			CollectionID: chunk.CollectionID,
			Content:      chunk.Content,
			Position:     float64(chunk.Position),
			Headings:     chunk.Metadata.Headings,
			SourceURL:    chunk.Metadata.SourceURL,
		}
		if err := batch.Index(chunk.ID, doc); err != nil {
			return webdoc.Errorf(webdoc.EINTERNAL, "batch chunk %s: %v", chunk.ID, err)
		}
	}

	if err := ci.idx.Batch(batch); err != nil {
		return webdoc.Errorf(webdoc.EINTERNAL, "index batch: %v", err)
	}
	return nil
}

// Search returns chunks ordered by relevance to the query.
func (ci *ChunkIndex) Search(ctx context.Context, queryText string, opts webdoc.SearchOptions) ([]webdoc.SearchResult, error) {
	if queryText == "" {
		return nil, webdoc.Errorf(webdoc.EINVALID, "search query required")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	match := bleve.NewMatchQuery(queryText)
	var q query.Query = match
	if len(opts.CollectionIDs) > 0 {
		scope := bleve.NewDisjunctionQuery()
		for _, id := range opts.CollectionIDs {
			term := bleve.NewTermQuery(id)
			term.SetField("collectionId")
			scope.AddQuery(term)
		}
		q = bleve.NewConjunctionQuery(match, scope)
	}

	req := bleve.NewSearchRequest(q)
	req.Size = limit
	req.Fields = []string{"*"}

	rs, err := ci.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, webdoc.Errorf(webdoc.EINTERNAL, "search: %v", err)
	}

	results := make([]webdoc.SearchResult, 0, len(rs.Hits))
	for _, hit := range rs.Hits {
		results = append(results, webdoc.SearchResult{
			Chunk: chunkFromFields(hit.ID, hit.Fields),
			Score: hit.Score,
		})
	}
	return results, nil
}

// chunkFromFields reconstructs a chunk from stored hit fields. Bleve
// returns a bare string for single-element arrays, so headings need
// both shapes handled.
func chunkFromFields(id string, fields map[string]interface{}) *webdoc.Chunk {
	chunk := &webdoc.Chunk{ID: id}

	if v, ok := fields["documentId"].(string); ok {
		chunk.DocumentID = v
	}
	if v, ok := fields["collectionId"].(string); ok {
		chunk.CollectionID = v
	}
	if v, ok := fields["content"].(string); ok {
		chunk.Content = v
	}
	if v, ok := fields["position"].(float64); ok {
		chunk.Position = int(v)
	}
	if v, ok := fields["sourceUrl"].(string); ok {
		chunk.Metadata.SourceURL = v
	}

	switch v := fields["headings"].(type) {
	case string:
		chunk.Metadata.Headings = []string{v}
	case []interface{}:
		for _, h := range v {
			if s, ok := h.(string); ok {
				chunk.Metadata.Headings = append(chunk.Metadata.Headings, s)
			}
		}
	}

	return chunk
}

// DeleteDocument removes all indexed chunks for a document.
func (ci *ChunkIndex) DeleteDocument(ctx context.Context, documentID string) error {
	return ci.deleteByField(ctx, "documentId", documentID)
}

// DeleteCollection removes all indexed chunks for a collection.
func (ci *ChunkIndex) DeleteCollection(ctx context.Context, collectionID string) error {
	return ci.deleteByField(ctx, "collectionId", collectionID)
}

// deleteByField removes every indexed chunk whose field matches value,
// in batches until no hits remain.
func (ci *ChunkIndex) deleteByField(ctx context.Context, field, value string) error {
	term := bleve.NewTermQuery(value)
	term.SetField(field)

	for {
		req := bleve.NewSearchRequest(term)
		req.Size = deleteBatchSize

		rs, err := ci.idx.SearchInContext(ctx, req)
		if err != nil {
			return webdoc.Errorf(webdoc.EINTERNAL, "delete search: %v", err)
		}
		if len(rs.Hits) == 0 {
			return nil
		}

		batch := ci.idx.NewBatch()
		for _, hit := range rs.Hits {
			batch.Delete(hit.ID)
		}
		if err := ci.idx.Batch(batch); err != nil {
			return webdoc.Errorf(webdoc.EINTERNAL, "delete batch: %v", err)
		}
	}
}
