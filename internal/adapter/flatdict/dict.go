// Package flatdict implements the dictionary store as flat JSON files held
// fully in memory. It backs the offline mode where no database file is
// available, and ships a builder that flattens a database into this format.
package flatdict

import (
	"context"

	"github.com/palitools/paligloss/internal/domain"
	"github.com/palitools/paligloss/internal/resolver"
)

// Dict is an immutable two-tier in-memory dictionary. The primary tier holds
// the curated Pali entries; the general tier holds supplementary vocabulary
// consulted only when the primary tier misses. Safe for concurrent reads.
type Dict struct {
	primary map[string]domain.FlatEntry
	general map[string]domain.FlatEntry
}

// NewDict wraps the given tiers. Nil maps are treated as empty.
func NewDict(primary, general map[string]domain.FlatEntry) *Dict {
	if primary == nil {
		primary = map[string]domain.FlatEntry{}
	}
	if general == nil {
		general = map[string]domain.FlatEntry{}
	}
	return &Dict{primary: primary, general: general}
}

// Size returns the entry counts of the primary and general tiers.
func (d *Dict) Size() (primary, general int) {
	return len(d.primary), len(d.general)
}

// Resolve walks each word's candidates in priority order, consulting the
// primary tier before the general one per candidate. Words with no hit are
// absent from the result. The signature mirrors the relational resolver so
// the two backends are interchangeable behind the glossing service.
func (d *Dict) Resolve(_ context.Context, candidates map[string][]string) (map[string]domain.Resolution, error) {
	resolved := make(map[string]domain.Resolution, len(candidates))
	for word, cands := range candidates {
		for _, cand := range cands {
			entry, ok := d.lookup(cand)
			if !ok {
				continue
			}
			resolved[word] = domain.Resolution{
				Meaning:      entry.Meaning,
				Morphology:   entry.Morphology,
				PartOfSpeech: entry.PartOfSpeech,
				Root:         entry.Root,
				SanskritRoot: entry.SanskritRoot,
				Etymology:    entry.Etymology,
				Translation:  entry.Translation,
				MatchType:    resolver.ClassifyMatch(word, cand),
				MatchedForm:  cand,
			}
			break
		}
	}
	return resolved, nil
}

func (d *Dict) lookup(key string) (domain.FlatEntry, bool) {
	if entry, ok := d.primary[key]; ok {
		return entry, true
	}
	entry, ok := d.general[key]
	return entry, ok
}
