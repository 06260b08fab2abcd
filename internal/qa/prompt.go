package qa

import (
	"fmt"
	"strings"

	"github.com/ncmnjgf/ai-book-explore/internal/domain"
)

// BuildPrompt serializes a book record and a user question into the prompt
// submitted to the generative-language endpoint. It is a pure function of
// its inputs: the same (book, question) pair always yields the same text,
// and empty optional fields are omitted entirely rather than emitted as
// blank sections.
func BuildPrompt(book domain.Book, question string) string {
	var b strings.Builder

	b.WriteString("You are a helpful reading assistant. Answer the question using only the book information below. ")
	b.WriteString("If the information given is not enough to answer, say so plainly.\n\n")

	b.WriteString("Book information:\n")
	fmt.Fprintf(&b, "Title: %s\n", book.Title)
	fmt.Fprintf(&b, "Author(s): %s\n", book.AuthorLine())
	fmt.Fprintf(&b, "Published: %s\n", book.DisplayYear())

	if book.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", book.Description)
	}
	if len(book.Subjects) > 0 {
		fmt.Fprintf(&b, "Subjects: %s\n", strings.Join(book.Subjects, ", "))
	}
	if book.FirstSentence != "" {
		fmt.Fprintf(&b, "First sentence: %s\n", book.FirstSentence)
	}
	if book.PageCount > 0 {
		fmt.Fprintf(&b, "Pages: %d\n", book.PageCount)
	}
	for _, a := range book.AuthorDetails {
		if a.Bio != "" {
			fmt.Fprintf(&b, "About %s: %s\n", a.Name, a.Bio)
		}
	}

	fmt.Fprintf(&b, "\nQuestion: %s\n", strings.TrimSpace(question))

	return b.String()
}

// FallbackAnswer builds the deterministic offline answer used whenever the
// generative endpoint fails. It is assembled directly from the record's
// fields so the caller always receives displayable text.
func FallbackAnswer(book domain.Book, question string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "I couldn't reach the assistant to answer %q, but here is what the catalog says.\n\n", strings.TrimSpace(question))
	fmt.Fprintf(&b, "%s by %s", book.Title, book.AuthorLine())
	if book.DisplayYear() != "Unknown" {
		fmt.Fprintf(&b, ", first published in %s", book.DisplayYear())
	}
	b.WriteString(".\n")

	if book.Description != "" {
		b.WriteString("\n")
		b.WriteString(book.ShortDescription(400))
		b.WriteString("\n")
	}
	if len(book.Subjects) > 0 {
		fmt.Fprintf(&b, "\nIt is shelved under: %s.\n", strings.Join(book.Subjects, ", "))
	}

	return b.String()
}
