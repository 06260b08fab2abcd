package openlibrary

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncmnjgf/ai-book-explore/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "https://covers.example.org", nil)
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "harry potter", r.URL.Query().Get("q"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.URL.Query().Get("fields"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"numFound": 2,
			"start": 0,
			"docs": [
				{
					"key": "/works/OL82563W",
					"title": "Harry Potter and the Philosopher's Stone",
					"author_name": ["J. K. Rowling"],
					"first_publish_year": 1997,
					"cover_i": 10521270,
					"number_of_pages_median": 223,
					"ratings_average": 4.3,
					"subject": ["Fantasy", "Magic"]
				},
				{
					"key": "/works/OL99999W",
					"title": "Harry Potter and the Chamber of Secrets"
				}
			]
		}`)
	})

	books, err := client.Search(context.Background(), "harry potter", 0, 20)
	require.NoError(t, err)
	require.Len(t, books, 2)

	first := books[0]
	assert.Equal(t, "OL82563W", first.ID)
	assert.Equal(t, "Harry Potter and the Philosopher's Stone", first.Title)
	assert.Equal(t, []string{"J. K. Rowling"}, first.Authors)
	assert.Equal(t, "1997", first.Year)
	assert.Equal(t, "https://covers.example.org/b/id/10521270-M.jpg", first.CoverURL)
	assert.Equal(t, 223, first.PageCount)
	assert.InDelta(t, 4.3, first.Rating, 0.001)
	assert.Equal(t, []string{"Fantasy", "Magic"}, first.Subjects)

	// A bare document still maps to a usable record
	second := books[1]
	assert.Equal(t, "OL99999W", second.ID)
	assert.Equal(t, "Unknown", second.Year)
	assert.Empty(t, second.CoverURL)
	assert.InDelta(t, defaultRating, second.Rating, 0.001)
}

func TestClient_Search_Errors(t *testing.T) {
	t.Run("unreachable server", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "http://covers", nil)
		_, err := client.Search(context.Background(), "anything", 0, 20)
		assert.ErrorIs(t, err, domain.ErrCatalogUnreachable)
	})

	t.Run("server error status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := client.Search(context.Background(), "anything", 0, 20)
		assert.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"docs": not json`)
		})
		_, err := client.Search(context.Background(), "anything", 0, 20)
		assert.ErrorIs(t, err, domain.ErrBadResponse)
	})
}

func TestClient_GetWork(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/works/OL82563W.json":
			fmt.Fprint(w, `{
				"key": "/works/OL82563W",
				"title": "Harry Potter and the Philosopher's Stone",
				"first_publish_date": "1997",
				"description": {"type": "/type/text", "value": "A boy discovers he is a wizard."},
				"first_sentence": {"type": "/type/text", "value": "Mr. and Mrs. Dursley were proud to say that they were perfectly normal."},
				"covers": [10521270],
				"subjects": ["Fantasy", "Magic"],
				"authors": [
					{"author": {"key": "/authors/OL23919A"}},
					{"author": {"key": "/authors/OLBROKENA"}}
				]
			}`)
		case "/authors/OL23919A.json":
			fmt.Fprint(w, `{
				"name": "J. K. Rowling",
				"birth_date": "31 July 1965",
				"bio": {"type": "/type/text", "value": "British author, best known for the Harry Potter series."}
			}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	book, err := client.GetWork(context.Background(), "/works/OL82563W")
	require.NoError(t, err)

	assert.Equal(t, "OL82563W", book.ID)
	assert.Equal(t, "1997", book.Year)
	assert.Equal(t, "A boy discovers he is a wizard.", book.Description)
	assert.Equal(t, "https://covers.example.org/b/id/10521270-L.jpg", book.CoverURL)
	assert.Contains(t, book.FirstSentence, "Dursley")

	// Both author slots are filled in reference order; the failed lookup
	// degrades to a placeholder instead of failing the fetch
	require.Len(t, book.AuthorDetails, 2)
	assert.Equal(t, "J. K. Rowling", book.AuthorDetails[0].Name)
	assert.Contains(t, book.AuthorDetails[0].Bio, "Harry Potter")
	assert.Equal(t, "Unknown Author", book.AuthorDetails[1].Name)
	assert.Equal(t, []string{"J. K. Rowling", "Unknown Author"}, book.Authors)
}

func TestClient_GetWork_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetWork(context.Background(), "OLMISSINGW")
	assert.ErrorIs(t, err, domain.ErrWorkNotFound)
}

func TestClient_GetWork_EmptyID(t *testing.T) {
	client := NewClient("http://unused", "http://covers", nil)
	_, err := client.GetWork(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrWorkNotFound)
}

func TestNormalizeWorkID(t *testing.T) {
	cases := map[string]string{
		"/works/OL82563W":  "OL82563W",
		"OL82563W":         "OL82563W",
		"/works/OL82563W/": "OL82563W",
		"  OL82563W ":      "OL82563W",
		"":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeWorkID(in), "input %q", in)
	}
}
