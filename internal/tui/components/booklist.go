package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ncmnjgf/ai-book-explore/internal/domain"
	"github.com/ncmnjgf/ai-book-explore/internal/tui/styles"
)

// BookList renders the search result column with cursor, scrolling, and
// local fuzzy filtering of the loaded page set.
type BookList struct {
	items   []domain.Book
	visible []int // indexes into items after filtering
	cursor  int   // cursor position within visible
	offset  int   // scroll offset within visible
	filter  string

	width  int
	height int

	isFavorite func(string) bool
}

// titleSource adapts the item titles for fuzzy matching
type titleSource []domain.Book

func (s titleSource) String(i int) string { return strings.ToLower(s[i].Title) }
func (s titleSource) Len() int            { return len(s) }

// NewBookList creates a new result list. isFavorite may be nil.
func NewBookList(isFavorite func(string) bool) BookList {
	if isFavorite == nil {
		isFavorite = func(string) bool { return false }
	}
	return BookList{isFavorite: isFavorite}
}

// SetItems replaces the list contents and resets cursor and filter
func (l *BookList) SetItems(items []domain.Book) {
	l.items = items
	l.filter = ""
	l.cursor = 0
	l.offset = 0
	l.rebuild()
}

// Append adds a further page of results, keeping cursor and filter
func (l *BookList) Append(items []domain.Book) {
	l.items = append(l.items, items...)
	l.rebuild()
}

// SetSize updates the component dimensions
func (l *BookList) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// SetFilter applies a local fuzzy filter over the loaded items
func (l *BookList) SetFilter(filter string) {
	l.filter = filter
	l.cursor = 0
	l.offset = 0
	l.rebuild()
}

// Filter returns the active local filter
func (l *BookList) Filter() string { return l.filter }

// rebuild recomputes the visible index set
func (l *BookList) rebuild() {
	if l.filter == "" {
		l.visible = make([]int, len(l.items))
		for i := range l.items {
			l.visible[i] = i
		}
	} else {
		matches := fuzzy.FindFrom(strings.ToLower(l.filter), titleSource(l.items))
		l.visible = make([]int, len(matches))
		for i, m := range matches {
			l.visible[i] = m.Index
		}
	}
	if l.cursor >= len(l.visible) {
		l.cursor = len(l.visible) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// Len returns the number of currently visible items
func (l BookList) Len() int { return len(l.visible) }

// Total returns the number of loaded items, ignoring the filter
func (l BookList) Total() int { return len(l.items) }

// Selected returns the book under the cursor
func (l BookList) Selected() (domain.Book, bool) {
	if len(l.visible) == 0 || l.cursor >= len(l.visible) {
		return domain.Book{}, false
	}
	return l.items[l.visible[l.cursor]], true
}

// Cursor movement

func (l *BookList) CursorUp()   { l.moveCursor(-1) }
func (l *BookList) CursorDown() { l.moveCursor(1) }

func (l *BookList) HalfPageUp()   { l.moveCursor(-l.pageSize() / 2) }
func (l *BookList) HalfPageDown() { l.moveCursor(l.pageSize() / 2) }

func (l *BookList) CursorTop()    { l.cursor = 0; l.clampScroll() }
func (l *BookList) CursorBottom() { l.cursor = len(l.visible) - 1; l.clampScroll() }

func (l *BookList) moveCursor(delta int) {
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= len(l.visible) {
		l.cursor = len(l.visible) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampScroll()
}

// pageSize returns the number of rows available for items
func (l BookList) pageSize() int {
	// Each item renders as two lines plus a blank separator
	rows := (l.height - 2) / 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (l *BookList) clampScroll() {
	page := l.pageSize()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+page {
		l.offset = l.cursor - page + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the component
func (l BookList) View() string {
	contentWidth := l.width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	var b strings.Builder

	header := fmt.Sprintf("Results (%d)", len(l.visible))
	if l.filter != "" {
		header = fmt.Sprintf("Results (%d/%d) %s", len(l.visible), len(l.items),
			styles.FilterPromptStyle.Render("filter: "+l.filter))
	}
	b.WriteString(styles.AccentStyle.Render(styles.Truncate(header, contentWidth)))
	b.WriteString("\n\n")

	if len(l.visible) == 0 {
		b.WriteString(styles.DimStyle.Render("No results. Press / to search."))
		return b.String()
	}

	page := l.pageSize()
	end := l.offset + page
	if end > len(l.visible) {
		end = len(l.visible)
	}

	for i := l.offset; i < end; i++ {
		book := l.items[l.visible[i]]
		b.WriteString(l.renderItem(book, i == l.cursor, contentWidth))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < len(l.visible) {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("↓ more"))
	}

	return b.String()
}

// renderItem renders one two-line result entry
func (l BookList) renderItem(book domain.Book, selected bool, width int) string {
	style := styles.NormalItemStyle
	if selected {
		style = styles.SelectedItemStyle
	}

	title := book.Title
	if l.isFavorite(book.ID) {
		title = styles.FavoriteChar + " " + title
	}

	meta := fmt.Sprintf("%s · %s", book.AuthorLine(), book.DisplayYear())

	line1 := style.Render(styles.Pad(styles.Truncate(title, width-2), width-2))
	line2 := style.Foreground(styles.DimGray).Render(styles.Pad(styles.Truncate(meta, width-2), width-2))

	return lipgloss.JoinVertical(lipgloss.Left, line1, line2) + "\n"
}
