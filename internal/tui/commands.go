package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ncmnjgf/ai-book-explore/internal/catalog"
	"github.com/ncmnjgf/ai-book-explore/internal/domain"
	"github.com/ncmnjgf/ai-book-explore/internal/qa"
)

// Command factories for async operations

// SearchCmd issues one search page. The service degrades internally, so
// this command never produces an ErrMsg.
func SearchCmd(svc *catalog.Service, query string, offset, limit, seq int, appendPage bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result := svc.Search(ctx, query, offset, limit)
		return SearchResultsMsg{Result: result, Seq: seq, Append: appendPage}
	}
}

// LoadWorkCmd fetches the detail record for a work
func LoadWorkCmd(svc *catalog.Service, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result := svc.GetWork(ctx, id)
		return WorkLoadedMsg{Result: result, ID: id}
	}
}

// AskCmd submits a question about a book
func AskCmd(svc *qa.Service, book domain.Book, question string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		answer := svc.Answer(ctx, book, question)
		return AnswerMsg{Answer: answer, BookID: book.ID, Question: question}
	}
}

// LoadFavoritesCmd resolves each favorited work id to a full record.
// Lookups that fall back to sample data still produce a book, so the
// favorites view is never empty because the catalog is down.
func LoadFavoritesCmd(svc *catalog.Service, ids []string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		books := make([]domain.Book, 0, len(ids))
		degraded := false
		for _, id := range ids {
			result := svc.GetWork(ctx, id)
			degraded = degraded || result.Degraded
			books = append(books, result.Book)
		}
		return SearchResultsMsg{
			Result: catalog.SearchResult{Books: books, Query: "favorites", Degraded: degraded},
			Seq:    seq,
		}
	}
}

// ToggleFavoriteCmd flips favorite membership for a work
func ToggleFavoriteCmd(favs domain.Favorites, id string) tea.Cmd {
	return func() tea.Msg {
		favorited, err := favs.Toggle(id)
		if err != nil {
			return ErrMsg{Err: err, Context: "saving favorite"}
		}
		return FavoriteToggledMsg{ID: id, Favorited: favorited}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd clears the status bar after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
