package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncmnjgf/ai-book-explore/internal/domain"
)

// stubSource scripts the WorkSource behavior for service tests
type stubSource struct {
	searchBooks []domain.Book
	searchErr   error
	work        *domain.Book
	workErr     error
}

func (s *stubSource) Search(ctx context.Context, query string, offset, limit int) ([]domain.Book, error) {
	return s.searchBooks, s.searchErr
}

func (s *stubSource) GetWork(ctx context.Context, id string) (*domain.Book, error) {
	return s.work, s.workErr
}

func TestService_Search(t *testing.T) {
	t.Run("passes through live results untagged", func(t *testing.T) {
		source := &stubSource{searchBooks: []domain.Book{{ID: "OL1W", Title: "Live Result"}}}
		svc := NewService(source, nil)

		result := svc.Search(context.Background(), "anything", 0, 20)
		assert.False(t, result.Degraded)
		require.Len(t, result.Books, 1)
		assert.Equal(t, "Live Result", result.Books[0].Title)
	})

	t.Run("failure serves tagged samples", func(t *testing.T) {
		source := &stubSource{searchErr: domain.ErrCatalogUnreachable}
		svc := NewService(source, nil)

		result := svc.Search(context.Background(), "harry", 0, 20)
		assert.True(t, result.Degraded)
		require.NotEmpty(t, result.Books)
		for _, b := range result.Books {
			matched := strings.Contains(strings.ToLower(b.Title), "harry")
			for _, a := range b.Authors {
				matched = matched || strings.Contains(strings.ToLower(a), "harry")
			}
			assert.True(t, matched, "sample %q does not match the query", b.Title)
		}
	})

	t.Run("empty first page serves samples", func(t *testing.T) {
		source := &stubSource{searchBooks: nil}
		svc := NewService(source, nil)

		result := svc.Search(context.Background(), "", 0, 20)
		assert.True(t, result.Degraded)
		assert.Len(t, result.Books, len(Samples()))
	})

	t.Run("failure past the first page stays empty", func(t *testing.T) {
		source := &stubSource{searchErr: domain.ErrCatalogUnreachable}
		svc := NewService(source, nil)

		result := svc.Search(context.Background(), "harry", 40, 20)
		assert.True(t, result.Degraded)
		assert.Empty(t, result.Books)
	})

	t.Run("empty later page is exhaustion, not degradation", func(t *testing.T) {
		source := &stubSource{searchBooks: nil}
		svc := NewService(source, nil)

		result := svc.Search(context.Background(), "harry", 40, 20)
		assert.False(t, result.Degraded)
		assert.Empty(t, result.Books)
	})
}

func TestService_GetWork(t *testing.T) {
	t.Run("passes through live record", func(t *testing.T) {
		source := &stubSource{work: &domain.Book{ID: "OL1W", Title: "Live Work"}}
		svc := NewService(source, nil)

		result := svc.GetWork(context.Background(), "/works/OL1W")
		assert.False(t, result.Degraded)
		assert.Equal(t, "Live Work", result.Book.Title)
	})

	t.Run("failure serves a matching sample", func(t *testing.T) {
		source := &stubSource{workErr: domain.ErrCatalogUnreachable}
		svc := NewService(source, nil)

		result := svc.GetWork(context.Background(), "OL27448W")
		assert.True(t, result.Degraded)
		assert.Equal(t, "OL27448W", result.Book.ID)
		assert.NotEmpty(t, result.Book.Title)
	})

	t.Run("unknown id still yields a record", func(t *testing.T) {
		source := &stubSource{workErr: domain.ErrWorkNotFound}
		svc := NewService(source, nil)

		result := svc.GetWork(context.Background(), "OLNOSUCHW")
		assert.True(t, result.Degraded)
		assert.NotEmpty(t, result.Book.Title)
	})
}

func TestFilterSamples(t *testing.T) {
	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, FilterSamples(""), len(Samples()))
	})

	t.Run("substring match on author", func(t *testing.T) {
		books := FilterSamples("tolkien")
		require.Len(t, books, 1)
		assert.Equal(t, "The Lord of the Rings", books[0].Title)
	})

	t.Run("title matches rank first", func(t *testing.T) {
		books := FilterSamples("pride")
		require.NotEmpty(t, books)
		assert.Equal(t, "Pride and Prejudice", books[0].Title)
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, FilterSamples("zzzzzz"))
	})
}
