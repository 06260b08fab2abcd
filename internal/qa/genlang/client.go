package genlang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ncmnjgf/ai-book-explore/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "bookexplore/1.0"
	apiVersion     = "v1beta"
)

// Fixed sampling parameters; every request uses the same generation config
const (
	temperature     = 0.7
	topK            = 40
	topP            = 0.95
	maxOutputTokens = 1024
)

// Client implements domain.Answerer against the generative-language REST
// endpoint. The base URL is configurable so tests can point it at a local
// server.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new generative-language REST client
func NewClient(baseURL, apiKey, model string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// Generate submits the prompt and returns the first candidate's text
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			TopK:            topK,
			TopP:            topP,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s/models/%s:generateContent?key=%s",
		c.baseURL, apiVersion, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("generate request", "model", c.model, "promptLen", len(prompt))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("generate request failed", "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("generate request error", "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", domain.ErrBadResponse
	}

	return extractText(genResp)
}

// extractText pulls the first candidate's text out of a response
func extractText(resp generateResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", domain.ErrNoAnswer
	}
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Text != "" {
			return p.Text, nil
		}
	}
	return "", domain.ErrNoAnswer
}

// Name returns the backend label for logs and the status bar
func (c *Client) Name() string {
	return fmt.Sprintf("%s (rest)", c.model)
}
