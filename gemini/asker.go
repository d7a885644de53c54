package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/akraszewski/webdoc"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// retrievalLimit bounds how many chunks a single question retrieves.
const retrievalLimit = 8

// Ensure Asker implements webdoc.Asker at compile time.
var _ webdoc.Asker = (*Asker)(nil)

// Asker implements webdoc.Asker using Google Gemini. Questions are
// grounded on the collection's indexed chunks when a searcher is
// available, otherwise on the collection's full documents.
type Asker struct {
	client   *genai.Client
	docs     webdoc.DocumentService
	searcher webdoc.Searcher
}

// NewAsker creates a new Asker. The searcher may be nil, in which case
// every question is answered against the full document set.
func NewAsker(client *genai.Client, docs webdoc.DocumentService, searcher webdoc.Searcher) *Asker {
	return &Asker{client: client, docs: docs, searcher: searcher}
}

// Ask answers a natural language question about a collection.
func (a *Asker) Ask(ctx context.Context, collectionID, question string) (string, error) {
	if collectionID == "" {
		return "", webdoc.Errorf(webdoc.EINVALID, "collection ID required")
	}
	if question == "" {
		return "", webdoc.Errorf(webdoc.EINVALID, "question required")
	}

	prompt, err := a.buildPrompt(ctx, collectionID, question)
	if err != nil {
		return "", err
	}

	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", webdoc.Errorf(webdoc.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// buildPrompt assembles the context for a question. Chunk retrieval is
// preferred; the full document set is the fallback when no searcher is
// configured or nothing has been indexed yet.
func (a *Asker) buildPrompt(ctx context.Context, collectionID, question string) (string, error) {
	if a.searcher != nil {
		results, err := a.searcher.Search(ctx, question, webdoc.SearchOptions{
			CollectionIDs: []string{collectionID},
			Limit:         retrievalLimit,
		})
		if err != nil {
			return "", err
		}
		if len(results) > 0 {
			return BuildChunkPrompt(results, question), nil
		}
	}

	docs, err := a.docs.FindDocuments(ctx, webdoc.DocumentFilter{CollectionID: &collectionID})
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", webdoc.Errorf(webdoc.ENOTFOUND, "no documents found for collection %q", collectionID)
	}

	return BuildUserPrompt(docs, question), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about software library documentation. Answer based only on the documentation provided. If the answer is not in the documentation, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing full documents and
// the question.
func BuildUserPrompt(docs []*webdoc.Document, question string) string {
	var sb strings.Builder
	sb.WriteString("<documents>\n")
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.SourceURL
		}
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		fmt.Fprintf(&sb, "<source>%s</source>\n", doc.SourceURL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", doc.Content)
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}

// BuildChunkPrompt builds the user prompt from retrieved chunks and the
// question. Heading trails give the model section context.
func BuildChunkPrompt(results []webdoc.SearchResult, question string) string {
	var sb strings.Builder
	sb.WriteString("<excerpts>\n")
	for i, result := range results {
		chunk := result.Chunk
		sb.WriteString("<excerpt>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		if len(chunk.Metadata.Headings) > 0 {
			fmt.Fprintf(&sb, "<section>%s</section>\n", strings.Join(chunk.Metadata.Headings, " > "))
		}
		if chunk.Metadata.SourceURL != "" {
			fmt.Fprintf(&sb, "<source>%s</source>\n", chunk.Metadata.SourceURL)
		}
		fmt.Fprintf(&sb, "<content>%s</content>\n", chunk.Content)
		sb.WriteString("</excerpt>\n")
	}
	sb.WriteString("</excerpts>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
