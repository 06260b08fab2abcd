package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ncmnjgf/ai-book-explore/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "bookexplore/1.0"

	// Fields requested from the search endpoint; keeps response bodies small
	searchFields = "key,title,author_name,author_key,first_publish_year,subject,cover_i,number_of_pages_median,isbn,ratings_average"

	// Open Library allows a handful of requests per second for polite clients
	requestsPerSecond = 3
)

// Client implements domain.WorkSource against the Open Library API
type Client struct {
	baseURL    string
	coversURL  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a new Open Library API client
func NewClient(baseURL, coversURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		coversURL: strings.TrimRight(coversURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second/requestsPerSecond), 1),
		logger:  logger,
	}
}

// doRequest performs a paced GET and decodes the JSON body into target
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	reqURL := c.baseURL + path
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		return domain.ErrCatalogUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrWorkNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("catalog request error", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		c.logger.Error("catalog parse error", "error", err)
		return domain.ErrBadResponse
	}
	return nil
}

// Search returns one page of normalized records for a free-text query
func (c *Client) Search(ctx context.Context, query string, offset, limit int) ([]domain.Book, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", searchFields)

	var resp SearchResponse
	if err := c.doRequest(ctx, "/search.json", params, &resp); err != nil {
		return nil, err
	}

	return MapDocs(resp.Docs, c.coversURL), nil
}

// GetWork returns one fully resolved record for a work identifier.
// Author references are resolved concurrently and joined before the record
// is built; a failed author lookup degrades to a placeholder instead of
// failing the whole fetch.
func (c *Client) GetWork(ctx context.Context, id string) (*domain.Book, error) {
	id = NormalizeWorkID(id)
	if id == "" {
		return nil, domain.ErrWorkNotFound
	}

	var work Work
	if err := c.doRequest(ctx, "/works/"+id+".json", nil, &work); err != nil {
		return nil, err
	}

	authors := make([]domain.AuthorDetail, len(work.Authors))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range work.Authors {
		i, key := i, ref.Author.Key
		g.Go(func() error {
			author, err := c.getAuthor(gctx, key)
			if err != nil {
				c.logger.Warn("author lookup failed", "key", key, "error", err)
				authors[i] = placeholderAuthor()
				return nil
			}
			authors[i] = *author
			return nil
		})
	}
	// Goroutines never return errors; Wait is a join point
	_ = g.Wait()

	book := MapWork(id, work, authors, c.baseURL, c.coversURL)
	return &book, nil
}

// getAuthor resolves one author reference to a detail record
func (c *Client) getAuthor(ctx context.Context, key string) (*domain.AuthorDetail, error) {
	key = strings.TrimPrefix(key, "/authors/")
	if key == "" {
		return nil, domain.ErrBadResponse
	}

	var author Author
	if err := c.doRequest(ctx, "/authors/"+key+".json", nil, &author); err != nil {
		return nil, err
	}

	detail := MapAuthor(author)
	return &detail, nil
}

// NormalizeWorkID strips the catalog path prefix from a work identifier
func NormalizeWorkID(id string) string {
	id = strings.TrimPrefix(strings.TrimSpace(id), "/works/")
	return strings.TrimSuffix(id, "/")
}
