package mock

import (
	"context"

	"github.com/akraszewski/webdoc"
)

var _ webdoc.Asker = (*Asker)(nil)

// Asker is a mock implementation of webdoc.Asker.
type Asker struct {
	AskFn func(ctx context.Context, collectionID string, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, collectionID string, question string) (string, error) {
	return a.AskFn(ctx, collectionID, question)
}

var _ webdoc.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of webdoc.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
