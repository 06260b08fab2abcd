package tui

import (
	"github.com/ncmnjgf/ai-book-explore/internal/catalog"
	"github.com/ncmnjgf/ai-book-explore/internal/qa"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// SearchResultsMsg signals that a search page is ready. Seq carries the
// request tag assigned when the search was issued; stale responses are
// discarded so only the most recent search updates the view.
type SearchResultsMsg struct {
	Result catalog.SearchResult
	Seq    int
	Append bool
}

// WorkLoadedMsg signals that a detail record is ready
type WorkLoadedMsg struct {
	Result catalog.WorkResult
	ID     string
}

// AnswerMsg signals that a question has been answered
type AnswerMsg struct {
	Answer   qa.Answer
	BookID   string
	Question string
}

// FavoriteToggledMsg signals a favorite membership change
type FavoriteToggledMsg struct {
	ID        string
	Favorited bool
}

// StatusMsg sets a temporary status bar message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// TickMsg drives the loading spinner
type TickMsg struct{}
