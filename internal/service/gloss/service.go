// Package gloss orchestrates the glossing pipeline: tokenize the input,
// expand each word into candidate spellings, resolve the batch against the
// configured dictionary backend, and assemble one output entry per token.
package gloss

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/palitools/paligloss/internal/candidate"
	"github.com/palitools/paligloss/internal/domain"
	"github.com/palitools/paligloss/internal/tokenizer"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordResolver interface {
	Resolve(ctx context.Context, candidates map[string][]string) (map[string]domain.Resolution, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service glosses Pali text against a dictionary backend. Both the
// relational store resolver and the flat in-memory dictionary satisfy the
// resolver dependency, so backends swap without touching this package.
type Service struct {
	resolver wordResolver
	log      *slog.Logger
}

// New creates a glossing service.
func New(resolver wordResolver, log *slog.Logger) *Service {
	return &Service{resolver: resolver, log: log}
}

// Gloss tokenizes text and returns exactly one entry per token, in input
// order. Words the backend cannot resolve come back as not-found entries;
// punctuation comes back as separator entries. An error is returned only
// when the backend itself fails.
func (s *Service) Gloss(ctx context.Context, text string) ([]domain.GlossEntry, error) {
	requestID := uuid.New().String()

	tokens := tokenizer.Tokenize(text)
	candidates := collectCandidates(tokens)

	s.log.Debug("glossing text",
		slog.String("request_id", requestID),
		slog.Int("tokens", len(tokens)),
		slog.Int("distinct_words", len(candidates)))

	resolved, err := s.resolver.Resolve(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("resolve batch: %w", err)
	}

	entries := assemble(tokens, resolved)

	if s.log.Enabled(ctx, slog.LevelDebug) {
		for word := range candidates {
			if _, ok := resolved[word]; !ok {
				s.log.Debug("word not found",
					slog.String("request_id", requestID),
					slog.String("word", word))
			}
		}
	}

	st := Collect(entries)
	s.log.Info("text glossed",
		slog.String("request_id", requestID),
		slog.Int("words", st.Words),
		slog.Int("resolved", st.Resolved),
		slog.Int("not_found", st.NotFound),
		slog.Float64("coverage", st.Coverage))

	return entries, nil
}

// collectCandidates builds the resolution batch: every distinct normalized
// word mapped to its candidate spellings in priority order.
func collectCandidates(tokens []domain.Token) map[string][]string {
	out := make(map[string][]string)
	for _, tok := range tokens {
		if !tok.IsWord() {
			continue
		}
		if _, seen := out[tok.Normalized]; seen {
			continue
		}
		out[tok.Normalized] = candidate.Expand(tok.Normalized)
	}
	return out
}
