package gemini_test

import (
	"context"
	"testing"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/gemini"
	"github.com/akraszewski/webdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_Ask_ReturnsErrorWhenNoDocuments(t *testing.T) {
	t.Parallel()

	docs := &mock.DocumentService{
		FindDocumentsFn: func(context.Context, webdoc.DocumentFilter) ([]*webdoc.Document, error) {
			return []*webdoc.Document{}, nil
		},
	}

	asker := gemini.NewAsker(nil, docs, nil) // nil client ok for this test

	_, err := asker.Ask(context.Background(), "col-1", "what is this?")

	require.Error(t, err)
	assert.Equal(t, webdoc.ENOTFOUND, webdoc.ErrorCode(err))
	assert.Contains(t, webdoc.ErrorMessage(err), "no documents")
}

func TestAsker_Ask_PropagatesDocumentServiceError(t *testing.T) {
	t.Parallel()

	expectedErr := webdoc.Errorf(webdoc.EINTERNAL, "database error")
	docs := &mock.DocumentService{
		FindDocumentsFn: func(context.Context, webdoc.DocumentFilter) ([]*webdoc.Document, error) {
			return nil, expectedErr
		},
	}

	asker := gemini.NewAsker(nil, docs, nil)

	_, err := asker.Ask(context.Background(), "col-1", "what is this?")

	require.Error(t, err)
	assert.Equal(t, webdoc.EINTERNAL, webdoc.ErrorCode(err))
	assert.Contains(t, webdoc.ErrorMessage(err), "database error")
}

func TestAsker_Ask_PropagatesSearchError(t *testing.T) {
	t.Parallel()

	searcher := &mock.Searcher{
		SearchFn: func(context.Context, string, webdoc.SearchOptions) ([]webdoc.SearchResult, error) {
			return nil, webdoc.Errorf(webdoc.EINTERNAL, "index error")
		},
	}

	asker := gemini.NewAsker(nil, nil, searcher)

	_, err := asker.Ask(context.Background(), "col-1", "what is this?")

	require.Error(t, err)
	assert.Equal(t, webdoc.EINTERNAL, webdoc.ErrorCode(err))
}

func TestAsker_Ask_FallsBackToDocumentsWhenNoChunks(t *testing.T) {
	t.Parallel()

	searcher := &mock.Searcher{
		SearchFn: func(context.Context, string, webdoc.SearchOptions) ([]webdoc.SearchResult, error) {
			return nil, nil
		},
	}
	docs := &mock.DocumentService{
		FindDocumentsFn: func(context.Context, webdoc.DocumentFilter) ([]*webdoc.Document, error) {
			return []*webdoc.Document{}, nil
		},
	}

	asker := gemini.NewAsker(nil, docs, searcher)

	_, err := asker.Ask(context.Background(), "col-1", "what is this?")

	// Reaching ENOTFOUND proves the document fallback ran.
	require.Error(t, err)
	assert.Equal(t, webdoc.ENOTFOUND, webdoc.ErrorCode(err))
}

func TestAsker_Ask_ReturnsErrorWhenCollectionIDEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, nil, nil)

	_, err := asker.Ask(context.Background(), "", "what is this?")

	require.Error(t, err)
	assert.Equal(t, webdoc.EINVALID, webdoc.ErrorCode(err))
	assert.Contains(t, webdoc.ErrorMessage(err), "collection ID required")
}

func TestAsker_Ask_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, nil, nil)

	_, err := asker.Ask(context.Background(), "col-1", "")

	require.Error(t, err)
	assert.Equal(t, webdoc.EINVALID, webdoc.ErrorCode(err))
	assert.Contains(t, webdoc.ErrorMessage(err), "question required")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "helpful assistant")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildUserPrompt_ContainsDocumentation(t *testing.T) {
	t.Parallel()

	docs := []*webdoc.Document{
		{Title: "Getting Started", Content: "HTMX is a library."},
	}

	prompt := gemini.BuildUserPrompt(docs, "What is HTMX?")

	assert.Contains(t, prompt, "<documents>")
	assert.Contains(t, prompt, "Getting Started")
	assert.Contains(t, prompt, "HTMX is a library.")
	assert.Contains(t, prompt, "Question: What is HTMX?")
}

func TestBuildUserPrompt_UsesSourceURLWhenTitleMissing(t *testing.T) {
	t.Parallel()

	docs := []*webdoc.Document{
		{SourceURL: "https://example.com/docs/page", Content: "content"},
	}

	prompt := gemini.BuildUserPrompt(docs, "question")

	assert.Contains(t, prompt, "<title>https://example.com/docs/page</title>")
}

func TestBuildChunkPrompt_ContainsSectionTrail(t *testing.T) {
	t.Parallel()

	results := []webdoc.SearchResult{
		{
			Chunk: &webdoc.Chunk{
				Content: "Tokens expire after one hour.",
				Metadata: webdoc.ChunkMetadata{
					Headings:  []string{"API Reference", "Authentication"},
					SourceURL: "https://example.com/docs/auth",
				},
			},
			Score: 1.2,
		},
	}

	prompt := gemini.BuildChunkPrompt(results, "When do tokens expire?")

	assert.Contains(t, prompt, "<excerpts>")
	assert.Contains(t, prompt, "<section>API Reference > Authentication</section>")
	assert.Contains(t, prompt, "<source>https://example.com/docs/auth</source>")
	assert.Contains(t, prompt, "Tokens expire after one hour.")
	assert.Contains(t, prompt, "Question: When do tokens expire?")
}

func TestBuildChunkPrompt_OmitsEmptyMetadata(t *testing.T) {
	t.Parallel()

	results := []webdoc.SearchResult{
		{Chunk: &webdoc.Chunk{Content: "content"}},
	}

	prompt := gemini.BuildChunkPrompt(results, "question")

	assert.NotContains(t, prompt, "<section>")
	assert.NotContains(t, prompt, "<source>")
}
