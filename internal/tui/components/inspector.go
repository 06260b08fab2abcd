package components

import (
	"fmt"
	"strings"

	"github.com/ncmnjgf/ai-book-explore/internal/domain"
	"github.com/ncmnjgf/ai-book-explore/internal/tui/styles"
)

// Inspector displays the detail record for the selected book, plus the
// answer to the most recent question about it.
type Inspector struct {
	book     *domain.Book
	degraded bool
	loading  bool

	question       string
	answer         string
	answerDegraded bool
	answerPending  bool

	width  int
	height int
	scroll int
}

// NewInspector creates a new inspector component
func NewInspector() Inspector {
	return Inspector{}
}

// SetLoading marks the inspector as waiting for a detail fetch
func (i *Inspector) SetLoading() {
	i.loading = true
}

// SetBook sets the record to display, clearing any previous answer
func (i *Inspector) SetBook(book domain.Book, degraded bool) {
	i.book = &book
	i.degraded = degraded
	i.loading = false
	i.question = ""
	i.answer = ""
	i.answerDegraded = false
	i.answerPending = false
	i.scroll = 0
}

// Book returns the displayed record
func (i Inspector) Book() (domain.Book, bool) {
	if i.book == nil {
		return domain.Book{}, false
	}
	return *i.book, true
}

// SetAnswerPending marks a question as in flight
func (i *Inspector) SetAnswerPending(question string) {
	i.question = question
	i.answer = ""
	i.answerPending = true
}

// SetAnswer sets the answer text for the pending question
func (i *Inspector) SetAnswer(answer string, degraded bool) {
	i.answer = answer
	i.answerDegraded = degraded
	i.answerPending = false
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
}

// ScrollUp scrolls the body up
func (i *Inspector) ScrollUp() {
	if i.scroll > 0 {
		i.scroll--
	}
}

// ScrollDown scrolls the body down
func (i *Inspector) ScrollDown() {
	i.scroll++
}

// View renders the component
func (i Inspector) View() string {
	contentWidth := i.width - 3
	if contentWidth < 10 {
		contentWidth = 10
	}

	var parts []string
	parts = append(parts, styles.AccentStyle.Render("Details"))
	parts = append(parts, "")

	switch {
	case i.loading:
		parts = append(parts, styles.DimStyle.Render("Loading…"))
	case i.book == nil:
		parts = append(parts, styles.DimStyle.Render("Select a book and press enter."))
	default:
		parts = append(parts, i.renderBook(contentWidth)...)
	}

	body := strings.Join(parts, "\n")
	return i.clampHeight(body)
}

// renderBook renders the record body as wrapped lines
func (i Inspector) renderBook(width int) []string {
	b := *i.book
	var lines []string

	lines = append(lines, styles.TitleStyle.Render(styles.Truncate(b.Title, width)))
	lines = append(lines, styles.SubtitleStyle.Render(styles.Truncate(b.AuthorLine(), width)))
	if i.degraded {
		lines = append(lines, styles.WarnStyle.Render("sample data"))
	}
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("%s  %s",
		styles.DimStyle.Render("Published"), b.DisplayYear()))
	lines = append(lines, fmt.Sprintf("%s     %s",
		styles.DimStyle.Render("Rating"), b.RatingStars()))
	if b.PageCount > 0 {
		lines = append(lines, fmt.Sprintf("%s      %d",
			styles.DimStyle.Render("Pages"), b.PageCount))
	}
	if s := b.SubjectLine(5); s != "" {
		lines = append(lines, fmt.Sprintf("%s   %s",
			styles.DimStyle.Render("Subjects"), styles.Truncate(s, width-11)))
	}
	lines = append(lines, "")

	lines = append(lines, wrap(b.ShortDescription(600), width)...)

	if b.FirstSentence != "" {
		lines = append(lines, "")
		lines = append(lines, styles.DimStyle.Render("Opening line"))
		lines = append(lines, wrap("“"+b.FirstSentence+"”", width)...)
	}

	for _, a := range b.AuthorDetails {
		if a.Bio == "" {
			continue
		}
		lines = append(lines, "")
		lines = append(lines, styles.DimStyle.Render("About "+a.Name))
		bio := a.Bio
		if len([]rune(bio)) > 300 {
			bio = strings.TrimSpace(string([]rune(bio)[:300])) + "…"
		}
		lines = append(lines, wrap(bio, width)...)
	}

	if b.PreviewURL != "" {
		lines = append(lines, "")
		lines = append(lines, styles.DimStyle.Render(styles.Truncate(b.PreviewURL, width)))
	}

	if i.question != "" {
		lines = append(lines, "")
		lines = append(lines, styles.AccentStyle.Render("Q: ")+styles.Truncate(i.question, width-3))
		if i.answerPending {
			lines = append(lines, styles.DimStyle.Render("Thinking…"))
		} else {
			if i.answerDegraded {
				lines = append(lines, styles.WarnStyle.Render("offline answer"))
			}
			lines = append(lines, wrap(i.answer, width)...)
		}
	}

	return lines
}

// clampHeight windows the rendered body to the component height,
// honoring the scroll offset
func (i Inspector) clampHeight(body string) string {
	lines := strings.Split(body, "\n")
	maxVisible := i.height - 2
	if maxVisible < 1 {
		maxVisible = 1
	}
	if len(lines) <= maxVisible {
		return body
	}

	maxScroll := len(lines) - maxVisible
	scroll := i.scroll
	if scroll > maxScroll {
		scroll = maxScroll
	}

	window := lines[scroll : scroll+maxVisible]
	out := strings.Join(window, "\n")
	if scroll+maxVisible < len(lines) {
		out += "\n" + styles.DimStyle.Render("↓ more")
	}
	return out
}

// wrap breaks text into lines no wider than width
func wrap(text string, width int) []string {
	if width < 10 {
		width = 10
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if len([]rune(line))+1+len([]rune(word)) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line += " " + word
		}
		lines = append(lines, line)
	}
	return lines
}
