package webdoc

import "context"

// Asker provides natural language question answering over a
// collection's documents.
type Asker interface {
	// Ask answers a natural language question about a collection.
	// Returns ENOTFOUND if the collection has no documents.
	Ask(ctx context.Context, collectionID string, question string) (string, error)
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
