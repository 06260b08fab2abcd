package catalog

import (
	"context"
	"log/slog"

	"github.com/ncmnjgf/ai-book-explore/internal/catalog/openlibrary"
	"github.com/ncmnjgf/ai-book-explore/internal/domain"
)

// SearchResult is one page of search results. Degraded marks substituted
// sample data so callers can distinguish real from placeholder content.
type SearchResult struct {
	Books    []domain.Book
	Query    string
	Offset   int
	Degraded bool
}

// WorkResult is one resolved detail record, tagged like SearchResult.
type WorkResult struct {
	Book     domain.Book
	Degraded bool
}

// Service wraps a WorkSource with the graceful-degradation contract:
// every operation returns displayable data, never an error.
type Service struct {
	source domain.WorkSource
	logger *slog.Logger
}

// NewService creates a new catalog service
func NewService(source domain.WorkSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, logger: logger}
}

// Search issues a remote lookup for one page of results. A transport
// failure, bad status, malformed body, or an empty first page all fall
// back to the filtered sample list. Fallback applies only at offset 0:
// an empty later page means the catalog is exhausted, not broken.
func (s *Service) Search(ctx context.Context, query string, offset, limit int) SearchResult {
	result := SearchResult{Query: query, Offset: offset}

	books, err := s.source.Search(ctx, query, offset, limit)
	if err != nil {
		s.logger.Warn("search failed, serving samples", "query", query, "error", err)
		if offset == 0 {
			result.Books = FilterSamples(query)
		}
		result.Degraded = true
		return result
	}

	if len(books) == 0 && offset == 0 {
		s.logger.Info("search returned nothing, serving samples", "query", query)
		result.Books = FilterSamples(query)
		result.Degraded = true
		return result
	}

	result.Books = books
	return result
}

// GetWork fetches one fully resolved record. Overall failure falls back to
// the best sample match by identifier, or the first sample; the caller
// always receives a non-empty record.
func (s *Service) GetWork(ctx context.Context, id string) WorkResult {
	id = openlibrary.NormalizeWorkID(id)

	book, err := s.source.GetWork(ctx, id)
	if err != nil {
		s.logger.Warn("work fetch failed, serving sample", "id", id, "error", err)
		return WorkResult{Book: sampleByID(id), Degraded: true}
	}
	return WorkResult{Book: *book}
}
