package gemini

import (
	"context"

	"github.com/akraszewski/webdoc"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ webdoc.TokenCounter = (*TokenCounter)(nil)

// TokenCounter measures text length in Gemini tokens using the local
// tokenizer, without making API calls.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter builds a TokenCounter for model. The tokenizer data
// is downloaded and cached on first use.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// DefaultModel returns the model name used for generation, so callers
// can construct a matching tokenizer.
func DefaultModel() string {
	return model
}

// CountTokens returns the token count of text. Empty text counts as
// zero without consulting the tokenizer.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, "user"),
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
