package domain

import (
	"fmt"
	"strings"
)

// AuthorDetail holds resolved author metadata from the catalog's author endpoint.
type AuthorDetail struct {
	Name      string // Display name
	Bio       string // Biography text (may be empty)
	BirthDate string // Free-form date string as provided by the catalog
}

// Book is the normalized representation of one catalog entry. It is used
// uniformly by search results and detail views: a new fetch produces a new
// record, never a patch of an old one.
type Book struct {
	ID            string         // Work identifier, without the "/works/" prefix
	Title         string         // Display title
	Authors       []string       // Ordered author display names
	Year          string         // Publication year, "Unknown" if the catalog omits it
	Description   string         // Description text
	Subjects      []string       // Category/subject tags
	CoverURL      string         // Cover image URL (empty if no cover id)
	PreviewURL    string         // External preview/read URL
	PageCount     int            // Page count (0 if unknown)
	Rating        float64        // 0-5 scale, defaulted when the catalog has none
	FirstSentence string         // Opening sentence, when the catalog supplies one
	AuthorDetails []AuthorDetail // Resolved author records (detail fetches only)
}

// AuthorLine returns the authors joined for display.
func (b Book) AuthorLine() string {
	if len(b.Authors) == 0 {
		return "Unknown Author"
	}
	return strings.Join(b.Authors, ", ")
}

// DisplayYear returns the publication year, defaulting to "Unknown".
func (b Book) DisplayYear() string {
	if b.Year == "" {
		return "Unknown"
	}
	return b.Year
}

// ShortDescription returns the description truncated to max runes, with an
// ellipsis when truncated.
func (b Book) ShortDescription(max int) string {
	desc := b.Description
	if desc == "" {
		return "No description available."
	}
	runes := []rune(desc)
	if len(runes) <= max {
		return desc
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}

// RatingStars renders the rating as a five-star bar, e.g. "★★★★☆ 4.2".
func (b Book) RatingStars() string {
	full := int(b.Rating + 0.5)
	if full > 5 {
		full = 5
	}
	return fmt.Sprintf("%s%s %.1f",
		strings.Repeat("★", full),
		strings.Repeat("☆", 5-full),
		b.Rating)
}

// SubjectLine returns up to max subjects joined for display.
func (b Book) SubjectLine(max int) string {
	if len(b.Subjects) == 0 {
		return ""
	}
	subjects := b.Subjects
	if len(subjects) > max {
		subjects = subjects[:max]
	}
	return strings.Join(subjects, " · ")
}

// MatchesQuery reports whether the query is a case-insensitive substring of
// the title or any author name. Used for filtering the embedded samples.
func (b Book) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(b.Title), q) {
		return true
	}
	for _, a := range b.Authors {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return false
}
