package flatdict

import (
	"context"
	"fmt"
	"strings"

	"github.com/palitools/paligloss/internal/domain"
	"github.com/palitools/paligloss/internal/resolver"
)

// Source is the relational store the builder flattens.
type Source interface {
	AllHeadwords(ctx context.Context, fn func(domain.Headword) error) error
	AllLookups(ctx context.Context, fn func(domain.LookupRecord) error) error
}

// Build flattens a relational dictionary into the primary-tier flat format:
// one pre-merged entry per normalized base lemma, then one per inflected
// lookup key. Lookup keys that collide with a lemma entry are skipped, so
// the lemma entry keeps its merged senses.
func Build(ctx context.Context, src Source) (map[string]domain.FlatEntry, error) {
	byID := map[int64]domain.Headword{}
	byLemmaKey := map[string][]domain.Headword{}
	var lemmaKeys []string

	err := src.AllHeadwords(ctx, func(hw domain.Headword) error {
		byID[hw.ID] = hw
		key := domain.NormalizeWord(stripDisambiguator(hw.Lemma))
		if key != "" {
			if _, seen := byLemmaKey[key]; !seen {
				lemmaKeys = append(lemmaKeys, key)
			}
			byLemmaKey[key] = append(byLemmaKey[key], hw)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan headwords: %w", err)
	}

	out := make(map[string]domain.FlatEntry, len(byLemmaKey))
	for _, key := range lemmaKeys {
		out[key] = flatten(byLemmaKey[key], nil)
	}

	err = src.AllLookups(ctx, func(rec domain.LookupRecord) error {
		key := domain.NormalizeWord(rec.LookupKey)
		if key == "" {
			return nil
		}
		if _, taken := out[key]; taken {
			return nil
		}
		var hws []domain.Headword
		for _, id := range rec.HeadwordIDs {
			if hw, ok := byID[id]; ok {
				hws = append(hws, hw)
			}
		}
		if len(hws) == 0 {
			return nil
		}
		out[key] = flatten(hws, rec.Grammar)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan lookup keys: %w", err)
	}

	return out, nil
}

// flatten merges senses into one flat entry. Flat entries carry the bare
// root form and fall back to the etymology label when the senses are
// rootless.
func flatten(hws []domain.Headword, triples []domain.GrammarTriple) domain.FlatEntry {
	entry := resolver.AggregateSenses(hws, triples, bareRoot)
	if entry.Root == "" {
		entry.Root = entry.Etymology
	}
	return entry
}

func bareRoot(sign, key string) string {
	return resolver.BuildRootLabel(sign, key, "")
}

// stripDisambiguator removes the trailing numeric sense marker from a lemma,
// e.g. "kata 2.1" becomes "kata". Lemmas without a marker pass through.
func stripDisambiguator(lemma string) string {
	fields := strings.Fields(lemma)
	if len(fields) < 2 {
		return lemma
	}
	last := fields[len(fields)-1]
	for _, r := range last {
		if (r < '0' || r > '9') && r != '.' {
			return lemma
		}
	}
	return strings.Join(fields[:len(fields)-1], " ")
}
