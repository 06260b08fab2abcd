package domain

import "context"

// WorkSource provides access to the remote book catalog.
// Implementations return raw catalog errors; graceful degradation to
// sample data is the service layer's responsibility.
type WorkSource interface {
	// Search returns one page of normalized records for a free-text query.
	Search(ctx context.Context, query string, offset, limit int) ([]Book, error)

	// GetWork returns one fully resolved record for a work identifier,
	// including author details.
	GetWork(ctx context.Context, id string) (*Book, error)
}

// Answerer generates free-form text for a prompt. Backends wrap either the
// generative-language REST endpoint or the Gemini SDK.
type Answerer interface {
	// Generate submits the prompt and returns the first candidate's text.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name returns a short backend label for logs and the status bar.
	Name() string
}

// Favorites is the persisted set of favorited work identifiers.
// Single-writer, single-reader: no synchronization beyond the store's own.
type Favorites interface {
	// Toggle flips membership for id and returns the new state.
	Toggle(id string) (bool, error)

	// Contains reports whether id is favorited.
	Contains(id string) bool

	// All returns the favorited identifiers in insertion order.
	All() []string
}
