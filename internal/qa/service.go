package qa

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ncmnjgf/ai-book-explore/internal/domain"
)

// Answer is the result of one question. Degraded marks the templated
// offline answer so callers can distinguish it from real model output.
type Answer struct {
	Text     string
	Degraded bool
}

// Service turns (book, question) pairs into displayable answer text.
// Any backend failure (no backend configured, transport error, bad
// status, empty candidates) degrades to the deterministic fallback,
// so the caller never sees an error value.
type Service struct {
	answerer domain.Answerer // nil when no API key is configured
	logger   *slog.Logger
}

// NewService creates a new Q&A service. A nil answerer is allowed and
// makes every answer degrade to the offline template.
func NewService(answerer domain.Answerer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{answerer: answerer, logger: logger}
}

// Answer builds the prompt for the book and question, submits it, and
// returns the first candidate's text or the offline fallback.
func (s *Service) Answer(ctx context.Context, book domain.Book, question string) Answer {
	if s.answerer == nil {
		return Answer{Text: FallbackAnswer(book, question), Degraded: true}
	}

	prompt := BuildPrompt(book, question)

	text, err := s.answerer.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("generation failed, serving offline answer",
			"backend", s.answerer.Name(), "error", err)
		return Answer{Text: FallbackAnswer(book, question), Degraded: true}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Answer{Text: FallbackAnswer(book, question), Degraded: true}
	}
	return Answer{Text: text}
}

// Backend returns the active backend label, or "offline" without one.
func (s *Service) Backend() string {
	if s.answerer == nil {
		return "offline"
	}
	return s.answerer.Name()
}
