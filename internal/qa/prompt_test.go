package qa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ncmnjgf/ai-book-explore/internal/domain"
)

var promptBook = domain.Book{
	ID:            "OL82563W",
	Title:         "Harry Potter and the Philosopher's Stone",
	Authors:       []string{"J.K. Rowling"},
	Year:          "1997",
	Description:   "An orphaned boy discovers he is a wizard.",
	Subjects:      []string{"Fantasy", "Magic"},
	PageCount:     223,
	FirstSentence: "Mr. and Mrs. Dursley were perfectly normal.",
	AuthorDetails: []domain.AuthorDetail{
		{Name: "J.K. Rowling", Bio: "British author."},
	},
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(promptBook, "What is this book about?")

	assert.Contains(t, prompt, "Title: Harry Potter and the Philosopher's Stone")
	assert.Contains(t, prompt, "Author(s): J.K. Rowling")
	assert.Contains(t, prompt, "Published: 1997")
	assert.Contains(t, prompt, "Description: An orphaned boy discovers he is a wizard.")
	assert.Contains(t, prompt, "Subjects: Fantasy, Magic")
	assert.Contains(t, prompt, "First sentence: Mr. and Mrs. Dursley were perfectly normal.")
	assert.Contains(t, prompt, "Pages: 223")
	assert.Contains(t, prompt, "About J.K. Rowling: British author.")
	assert.True(t, strings.HasSuffix(prompt, "Question: What is this book about?\n"))
}

func TestBuildPrompt_OmitsEmptyFields(t *testing.T) {
	bare := domain.Book{Title: "Sparse", Year: "Unknown"}
	prompt := BuildPrompt(bare, "Anything?")

	assert.Contains(t, prompt, "Title: Sparse")
	assert.Contains(t, prompt, "Author(s): Unknown Author")
	assert.NotContains(t, prompt, "Description:")
	assert.NotContains(t, prompt, "Subjects:")
	assert.NotContains(t, prompt, "First sentence:")
	assert.NotContains(t, prompt, "Pages:")
	assert.NotContains(t, prompt, "About ")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := BuildPrompt(promptBook, "Same question")
	b := BuildPrompt(promptBook, "Same question")
	assert.Equal(t, a, b)
}

func TestFallbackAnswer(t *testing.T) {
	answer := FallbackAnswer(promptBook, "Is it any good?")

	assert.Contains(t, answer, `"Is it any good?"`)
	assert.Contains(t, answer, "Harry Potter and the Philosopher's Stone by J.K. Rowling")
	assert.Contains(t, answer, "first published in 1997")
	assert.Contains(t, answer, "An orphaned boy discovers he is a wizard.")
	assert.Contains(t, answer, "shelved under: Fantasy, Magic")

	// Same inputs always yield the same text
	assert.Equal(t, answer, FallbackAnswer(promptBook, "Is it any good?"))
}

func TestFallbackAnswer_SparseRecord(t *testing.T) {
	answer := FallbackAnswer(domain.Book{Title: "Sparse"}, "Hello?")

	assert.NotEmpty(t, answer)
	assert.Contains(t, answer, "Sparse by Unknown Author")
	assert.NotContains(t, answer, "first published")
	assert.NotContains(t, answer, "shelved under")
}
