package qa

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ncmnjgf/ai-book-explore/internal/config"
	"github.com/ncmnjgf/ai-book-explore/internal/domain"
	"github.com/ncmnjgf/ai-book-explore/internal/qa/gemini"
	"github.com/ncmnjgf/ai-book-explore/internal/qa/genlang"
)

// NewAnswerer creates the configured generative-language backend.
// Returns (nil, nil) when no API key is configured: the service then
// serves offline answers only.
func NewAnswerer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.Answerer, error) {
	if !cfg.HasAPIKey() {
		return nil, nil
	}

	switch cfg.QA.Backend {
	case config.QABackendSDK:
		return gemini.NewClient(ctx, cfg.QA.APIKey, cfg.QA.Model)
	case config.QABackendREST, "":
		return genlang.NewClient(cfg.QA.BaseURL, cfg.QA.APIKey, cfg.QA.Model, logger), nil
	default:
		return nil, fmt.Errorf("unknown qa backend: %s", cfg.QA.Backend)
	}
}
