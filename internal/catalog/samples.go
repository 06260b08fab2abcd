package catalog

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ncmnjgf/ai-book-explore/internal/domain"
)

// sampleBooks is the embedded fallback catalog, served when the remote
// search fails or comes back empty.
var sampleBooks = []domain.Book{
	{
		ID:            "OL82563W",
		Title:         "Harry Potter and the Philosopher's Stone",
		Authors:       []string{"J.K. Rowling"},
		Year:          "1997",
		Description:   "An orphaned boy discovers on his eleventh birthday that he is a wizard, and is whisked away to Hogwarts School of Witchcraft and Wizardry.",
		Subjects:      []string{"Fantasy", "Magic", "Wizards", "Boarding schools"},
		CoverURL:      "https://covers.openlibrary.org/b/id/10521270-M.jpg",
		PageCount:     223,
		Rating:        4.3,
		FirstSentence: "Mr. and Mrs. Dursley, of number four, Privet Drive, were proud to say that they were perfectly normal, thank you very much.",
	},
	{
		ID:          "OL27448W",
		Title:       "The Lord of the Rings",
		Authors:     []string{"J.R.R. Tolkien"},
		Year:        "1954",
		Description: "An epic quest to destroy the One Ring, an artifact of terrible power, before it falls back into the hands of the Dark Lord Sauron.",
		Subjects:    []string{"Fantasy", "Epic", "Middle Earth"},
		CoverURL:    "https://covers.openlibrary.org/b/id/9255566-M.jpg",
		PageCount:   1178,
		Rating:      4.5,
	},
	{
		ID:            "OL1168083W",
		Title:         "Pride and Prejudice",
		Authors:       []string{"Jane Austen"},
		Year:          "1813",
		Description:   "The turbulent courtship of Elizabeth Bennet and the proud Mr. Darcy in Regency England.",
		Subjects:      []string{"Classics", "Romance", "England"},
		CoverURL:      "https://covers.openlibrary.org/b/id/14348537-M.jpg",
		PageCount:     432,
		Rating:        4.2,
		FirstSentence: "It is a truth universally acknowledged, that a single man in possession of a good fortune, must be in want of a wife.",
	},
	{
		ID:          "OL1168007W",
		Title:       "Nineteen Eighty-Four",
		Authors:     []string{"George Orwell"},
		Year:        "1949",
		Description: "Winston Smith rewrites history for the Ministry of Truth under the ever-watchful eye of Big Brother.",
		Subjects:    []string{"Dystopia", "Classics", "Totalitarianism"},
		CoverURL:    "https://covers.openlibrary.org/b/id/9267242-M.jpg",
		PageCount:   328,
		Rating:      4.2,
	},
	{
		ID:          "OL3140834W",
		Title:       "The Hitchhiker's Guide to the Galaxy",
		Authors:     []string{"Douglas Adams"},
		Year:        "1979",
		Description: "Seconds before Earth is demolished to make way for a galactic freeway, Arthur Dent is plucked off the planet by his friend Ford Prefect.",
		Subjects:    []string{"Science fiction", "Humor", "Space"},
		CoverURL:    "https://covers.openlibrary.org/b/id/11464688-M.jpg",
		PageCount:   193,
		Rating:      4.2,
	},
	{
		ID:          "OL2163649W",
		Title:       "Murder on the Orient Express",
		Authors:     []string{"Agatha Christie"},
		Year:        "1934",
		Description: "Hercule Poirot investigates the murder of an American tycoon aboard a snowbound luxury train.",
		Subjects:    []string{"Mystery", "Detective fiction", "Trains"},
		CoverURL:    "https://covers.openlibrary.org/b/id/12811197-M.jpg",
		PageCount:   256,
		Rating:      4.1,
	},
}

// FilterSamples returns the embedded samples whose title or author contains
// the query as a case-insensitive substring, ranked by how closely the
// title matches. An empty query returns everything.
func FilterSamples(query string) []domain.Book {
	var matched []domain.Book
	for _, b := range sampleBooks {
		if b.MatchesQuery(query) {
			matched = append(matched, b)
		}
	}

	if query == "" || len(matched) < 2 {
		return matched
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return sampleRank(query, matched[i].Title) < sampleRank(query, matched[j].Title)
	})
	return matched
}

// sampleRank scores a title against the query; lower is closer. Titles the
// fuzzy matcher rejects outright sort last.
func sampleRank(query, title string) int {
	rank := fuzzy.RankMatchNormalizedFold(query, title)
	if rank < 0 {
		return 1 << 20
	}
	return rank
}

// sampleByID returns the sample matching a work identifier, falling back to
// the first sample so detail fetches always have something to show.
func sampleByID(id string) domain.Book {
	for _, b := range sampleBooks {
		if b.ID == id {
			return b
		}
	}
	return sampleBooks[0]
}

// Samples returns a copy of the embedded sample list.
func Samples() []domain.Book {
	out := make([]domain.Book, len(sampleBooks))
	copy(out, sampleBooks)
	return out
}
