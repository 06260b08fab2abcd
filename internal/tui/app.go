package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ncmnjgf/ai-book-explore/internal/catalog"
	"github.com/ncmnjgf/ai-book-explore/internal/domain"
	"github.com/ncmnjgf/ai-book-explore/internal/qa"
	"github.com/ncmnjgf/ai-book-explore/internal/tui/components"
	"github.com/ncmnjgf/ai-book-explore/internal/tui/styles"
)

// ApplicationState represents the current input mode
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearchInput
	StateFilterInput
	StateAsking
	StateHelp
)

// Layout proportions
const (
	ResultsPercent   = 40
	InspectorPercent = 60
	MinColumnWidth   = 24

	// Top search bar + footer status line
	ChromeHeight = 2
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	CatalogSvc *catalog.Service
	QASvc      *qa.Service
	Favorites  domain.Favorites

	// UI components
	SearchInput textinput.Model
	FilterInput textinput.Model
	Results     components.BookList
	Inspector   components.Inspector
	AskModal    components.AskModal

	Keys KeyMap

	// Search state: current query, page offset, loading flag
	Query     string
	Offset    int
	PageSize  int
	Exhausted bool
	Degraded  bool

	// Request tag for discarding stale search responses
	searchSeq int
	// Work id the inspector is waiting for
	pendingWorkID string

	// Favorites view
	FavoritesView bool

	// UI state
	StatusText   string
	StatusIsErr  bool
	Loading      bool
	SpinnerFrame int
	ShowDegraded bool

	// Dimensions
	Width  int
	Height int
}

// NewModel creates a new application model
func NewModel(catalogSvc *catalog.Service, qaSvc *qa.Service, favorites domain.Favorites, pageSize int, showDegraded bool) Model {
	search := textinput.New()
	search.Placeholder = "Search books..."
	search.CharLimit = 120
	search.Prompt = "🔎 "

	filter := textinput.New()
	filter.Placeholder = "filter loaded results"
	filter.CharLimit = 60
	filter.Prompt = "C-f "

	if pageSize <= 0 {
		pageSize = 20
	}

	return Model{
		State:        StateBrowsing,
		CatalogSvc:   catalogSvc,
		QASvc:        qaSvc,
		Favorites:    favorites,
		SearchInput:  search,
		FilterInput:  filter,
		Results:      components.NewBookList(favorites.Contains),
		Inspector:    components.NewInspector(),
		AskModal:     components.NewAskModal(),
		Keys:         DefaultKeyMap(),
		PageSize:     pageSize,
		ShowDegraded: showDegraded,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return TickCmd(100 * time.Millisecond)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case SearchResultsMsg:
		// Only the most recent search's result may update the view
		if msg.Seq != m.searchSeq {
			return m, nil
		}
		return m.handleSearchResults(msg)

	case WorkLoadedMsg:
		if msg.ID != m.pendingWorkID {
			return m, nil
		}
		m.Loading = false
		m.pendingWorkID = ""
		m.Inspector.SetBook(msg.Result.Book, msg.Result.Degraded)
		if msg.Result.Degraded && m.ShowDegraded {
			return m, m.setStatus("Catalog unavailable, showing sample data", true)
		}
		return m, nil

	case AnswerMsg:
		if book, ok := m.Inspector.Book(); !ok || book.ID != msg.BookID {
			return m, nil
		}
		m.Loading = false
		m.Inspector.SetAnswer(msg.Answer.Text, msg.Answer.Degraded)
		if msg.Answer.Degraded && m.ShowDegraded {
			return m, m.setStatus("Assistant unavailable, showing offline answer", true)
		}
		return m, nil

	case FavoriteToggledMsg:
		text := "Added to favorites"
		if !msg.Favorited {
			text = "Removed from favorites"
		}
		return m, m.setStatus(text, false)

	case ErrMsg:
		m.Loading = false
		return m, m.setStatus(msg.Error(), true)

	case StatusMsg:
		m.StatusText = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(4 * time.Second)

	case ClearStatusMsg:
		m.StatusText = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

// handleSearchResults applies a fresh or appended result page
func (m Model) handleSearchResults(msg SearchResultsMsg) (tea.Model, tea.Cmd) {
	m.Loading = false
	m.Degraded = msg.Result.Degraded

	if msg.Append {
		if len(msg.Result.Books) == 0 {
			// A failed page is retryable; an empty one means the
			// catalog has nothing further
			if msg.Result.Degraded {
				m.Offset -= m.PageSize
				return m, m.setStatus("Catalog unavailable, try again", true)
			}
			m.Exhausted = true
			return m, m.setStatus("No more results", false)
		}
		m.Results.Append(msg.Result.Books)
		return m, nil
	}

	m.Results.SetItems(msg.Result.Books)
	if msg.Result.Degraded && m.ShowDegraded {
		return m, m.setStatus("Catalog unavailable, showing sample data", true)
	}
	if len(msg.Result.Books) == 0 {
		return m, m.setStatus("Nothing found for "+msg.Result.Query, false)
	}
	return m, nil
}

// handleKey routes key presses by input mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateSearchInput:
		return m.handleSearchInputKey(msg)
	case StateFilterInput:
		return m.handleFilterInputKey(msg)
	case StateAsking:
		return m.handleAskKey(msg)
	case StateHelp:
		m.State = StateBrowsing
		return m, nil
	}
	return m.handleBrowsingKey(msg)
}

func (m Model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(m.SearchInput.Value())
		m.SearchInput.Blur()
		m.State = StateBrowsing
		if query == "" {
			return m, nil
		}
		return m.startSearch(query)
	case "esc":
		m.SearchInput.Blur()
		m.State = StateBrowsing
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	return m, cmd
}

func (m Model) handleFilterInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.FilterInput.Blur()
		m.State = StateBrowsing
		return m, nil
	case "esc":
		m.FilterInput.Blur()
		m.FilterInput.SetValue("")
		m.Results.SetFilter("")
		m.State = StateBrowsing
		return m, nil
	}

	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	m.Results.SetFilter(strings.TrimSpace(m.FilterInput.Value()))
	return m, cmd
}

func (m Model) handleAskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var submitted bool
	m.AskModal, cmd, submitted = m.AskModal.Update(msg)

	if !m.AskModal.IsVisible() {
		m.State = StateBrowsing
	}
	if !submitted {
		return m, cmd
	}

	question := strings.TrimSpace(m.AskModal.Value())
	m.AskModal.Hide()
	m.State = StateBrowsing
	if question == "" {
		return m, nil
	}

	book, ok := m.Inspector.Book()
	if !ok {
		return m, m.setStatus("Open a book's details first", true)
	}

	m.Loading = true
	m.Inspector.SetAnswerPending(question)
	return m, AskCmd(m.QASvc, book, question)
}

func (m Model) handleBrowsingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.Keys

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, keys.Search):
		m.State = StateSearchInput
		m.SearchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Filter):
		m.State = StateFilterInput
		m.FilterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Up):
		m.Results.CursorUp()
		return m, nil

	case key.Matches(msg, keys.Down):
		m.Results.CursorDown()
		return m, nil

	case key.Matches(msg, keys.HalfUp):
		if _, ok := m.Inspector.Book(); ok {
			m.Inspector.ScrollUp()
		} else {
			m.Results.HalfPageUp()
		}
		return m, nil

	case key.Matches(msg, keys.HalfDown):
		if _, ok := m.Inspector.Book(); ok {
			m.Inspector.ScrollDown()
		} else {
			m.Results.HalfPageDown()
		}
		return m, nil

	case key.Matches(msg, keys.Home):
		m.Results.CursorTop()
		return m, nil

	case key.Matches(msg, keys.End):
		m.Results.CursorBottom()
		return m, nil

	case key.Matches(msg, keys.Enter):
		book, ok := m.Results.Selected()
		if !ok {
			return m, nil
		}
		m.Loading = true
		m.pendingWorkID = book.ID
		m.Inspector.SetLoading()
		return m, LoadWorkCmd(m.CatalogSvc, book.ID)

	case key.Matches(msg, keys.LoadMore):
		return m.loadMore()

	case key.Matches(msg, keys.Ask):
		book, ok := m.Inspector.Book()
		if !ok {
			if sel, selOk := m.Results.Selected(); selOk {
				// Ask directly from the result list; detail fields simply
				// won't be in the prompt
				m.Inspector.SetBook(sel, m.Degraded)
				book = sel
			} else {
				return m, m.setStatus("Nothing selected", true)
			}
		}
		m.State = StateAsking
		m.AskModal.Show(book.Title)
		return m, textinput.Blink

	case key.Matches(msg, keys.Favorite):
		book, ok := m.Results.Selected()
		if !ok {
			return m, nil
		}
		return m, ToggleFavoriteCmd(m.Favorites, book.ID)

	case key.Matches(msg, keys.Favorites):
		return m.toggleFavoritesView()

	case key.Matches(msg, keys.Escape):
		if m.Results.Filter() != "" {
			m.FilterInput.SetValue("")
			m.Results.SetFilter("")
		}
		return m, nil
	}

	return m, nil
}

// startSearch begins a fresh search, resetting paging and tagging the
// request so stale responses are dropped
func (m Model) startSearch(query string) (tea.Model, tea.Cmd) {
	m.Query = query
	m.Offset = 0
	m.Exhausted = false
	m.FavoritesView = false
	m.Loading = true
	m.searchSeq++
	return m, SearchCmd(m.CatalogSvc, query, 0, m.PageSize, m.searchSeq, false)
}

// loadMore requests the next page and appends it. One fetch at a time:
// a second request would retag the sequence and the first page, arriving
// stale, would be discarded and leave a gap in the loaded list.
func (m Model) loadMore() (tea.Model, tea.Cmd) {
	if m.Query == "" || m.FavoritesView || m.Loading {
		return m, nil
	}
	if m.Exhausted {
		return m, m.setStatus("No more results", false)
	}
	m.Offset += m.PageSize
	m.Loading = true
	m.searchSeq++
	return m, SearchCmd(m.CatalogSvc, m.Query, m.Offset, m.PageSize, m.searchSeq, true)
}

// toggleFavoritesView switches between search results and the favorite set
func (m Model) toggleFavoritesView() (tea.Model, tea.Cmd) {
	if m.FavoritesView {
		m.FavoritesView = false
		if m.Query != "" {
			return m.startSearch(m.Query)
		}
		m.Results.SetItems(nil)
		return m, nil
	}

	ids := m.Favorites.All()
	if len(ids) == 0 {
		return m, m.setStatus("No favorites yet, press f on a result", false)
	}

	m.FavoritesView = true
	m.Loading = true
	m.searchSeq++
	return m, LoadFavoritesCmd(m.CatalogSvc, ids, m.searchSeq)
}

func (m Model) setStatus(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: text, IsError: isErr}
	}
}

// updateLayout resizes child components
func (m *Model) updateLayout() {
	resultsWidth := m.Width * ResultsPercent / 100
	if resultsWidth < MinColumnWidth {
		resultsWidth = MinColumnWidth
	}
	inspectorWidth := m.Width - resultsWidth
	bodyHeight := m.Height - ChromeHeight - 2

	m.Results.SetSize(resultsWidth-2, bodyHeight)
	m.Inspector.SetSize(inspectorWidth-2, bodyHeight)
	m.SearchInput.Width = m.Width - 8
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	top := m.renderTopBar()
	body := m.renderBody()
	footer := m.renderFooter()

	view := lipgloss.JoinVertical(lipgloss.Left, top, body, footer)

	if m.AskModal.IsVisible() {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.AskModal.View())
	}

	return view
}

func (m Model) renderTopBar() string {
	if m.State == StateSearchInput {
		return m.SearchInput.View()
	}
	if m.State == StateFilterInput {
		return m.FilterInput.View()
	}

	label := "press / to search"
	if m.Query != "" {
		label = fmt.Sprintf("query: %s", m.Query)
	}
	if m.FavoritesView {
		return styles.FavoriteDot + " " + styles.SubtitleStyle.Render("favorites")
	}
	return styles.SubtitleStyle.Render(styles.Truncate(label, m.Width-2))
}

func (m Model) renderBody() string {
	resultsWidth := m.Width * ResultsPercent / 100
	if resultsWidth < MinColumnWidth {
		resultsWidth = MinColumnWidth
	}
	inspectorWidth := m.Width - resultsWidth
	bodyHeight := m.Height - ChromeHeight - 2

	left := styles.ActiveBorder.
		Width(resultsWidth - 2).
		Height(bodyHeight).
		Render(m.Results.View())

	right := styles.InactiveBorder.
		Width(inspectorWidth - 2).
		Height(bodyHeight).
		Render(m.Inspector.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderFooter() string {
	var left string
	switch {
	case m.Loading:
		frame := styles.SpinnerFrames[m.SpinnerFrame%len(styles.SpinnerFrames)]
		left = styles.SpinnerStyle.Render(frame) + " loading"
	case m.StatusText != "":
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusText)
		} else {
			left = styles.SuccessStyle.Render(m.StatusText)
		}
	default:
		left = styles.DimStyle.Render("/: search  enter: details  a: ask  f: fav  F: favorites  m: more  ?: help")
	}
	return styles.Truncate(left, m.Width-1)
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"/", "search the catalog"},
		{"enter", "load details for the selected book"},
		{"j/k, ↓/↑", "move the cursor"},
		{"C-d/C-u", "scroll the detail pane, or half-page the list"},
		{"g/G", "jump to top/bottom"},
		{"m", "load more results"},
		{"C-f", "filter loaded results"},
		{"a", "ask a question about the open book"},
		{"f", "toggle favorite for the selected book"},
		{"F", "show favorited books"},
		{"esc", "close input / clear filter"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("bookexplore keys"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			styles.AccentStyle.Render(styles.Pad(row[0], 9)),
			styles.SubtitleStyle.Render(row[1])))
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("press any key to close"))

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(b.String()))
}
