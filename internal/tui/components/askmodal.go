package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ncmnjgf/ai-book-explore/internal/tui/styles"
)

// AskModal is the question input modal
type AskModal struct {
	visible bool
	title   string
	input   textinput.Model
}

// NewAskModal creates a new ask modal
func NewAskModal() AskModal {
	ti := textinput.New()
	ti.Placeholder = "Ask anything about this book..."
	ti.CharLimit = 200
	ti.Width = 50
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return AskModal{input: ti}
}

// Show displays the modal titled with the book's name
func (m *AskModal) Show(bookTitle string) {
	m.visible = true
	m.title = "Ask about " + bookTitle
	m.input.SetValue("")
	m.input.Focus()
}

// Hide dismisses the modal
func (m *AskModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m AskModal) IsVisible() bool {
	return m.visible
}

// Value returns the current question text
func (m AskModal) Value() string {
	return m.input.Value()
}

// Update handles input events, returns (modal, cmd, submitted)
func (m AskModal) Update(msg tea.Msg) (AskModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m, nil, true
		case "esc":
			m.Hide()
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, false
}

// View renders the ask modal
func (m AskModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 56

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.White).
		Bold(true).
		Width(modalWidth).
		Background(styles.SlateDark)

	inputStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark)

	spacer := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark).
		Render("")

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(styles.Truncate(m.title, modalWidth)),
		spacer,
		inputStyle.Render(m.input.View()),
	)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Amber).
		Background(styles.SlateDark).
		Padding(1, 2).
		Render(content)

	return modal
}
