// Package resolver answers batched dictionary lookups against a relational
// lexicon. For every word it walks an ordered list of candidate spellings,
// merges the senses of the first spelling that hits, and classifies the
// match quality. All store round-trips are batched across the whole word set
// to avoid per-word query patterns.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/palitools/paligloss/internal/candidate"
	"github.com/palitools/paligloss/internal/domain"
)

// Store is the read-only relational lexicon the resolver queries.
// Implementations must tolerate arbitrarily large key sets by chunking
// IN (...) clauses below the backend's bind-parameter limit.
type Store interface {
	LookupRecords(ctx context.Context, keys []string) ([]domain.LookupRecord, error)
	HeadwordsByID(ctx context.Context, ids []int64) ([]domain.Headword, error)
	HeadwordsByLemma(ctx context.Context, lemmas []string) ([]domain.Headword, error)
	RootsByKey(ctx context.Context, roots []string) ([]domain.Root, error)
}

// Resolver resolves batches of normalized words against a Store.
// It is stateless apart from the shared, read-mostly root-group cache and is
// safe for concurrent use against a static store snapshot.
type Resolver struct {
	store Store
	roots *RootGroupCache
	log   *slog.Logger
}

// New creates a resolver with its own root-group cache.
func New(store Store, log *slog.Logger) *Resolver {
	return &Resolver{
		store: store,
		roots: NewRootGroupCache(),
		log:   log,
	}
}

// RootGroups exposes the resolver's cache for explicit invalidation.
func (r *Resolver) RootGroups() *RootGroupCache {
	return r.roots
}

// Resolve answers every word of the batch in four store round-trips at most:
// one for the union of all lookup keys, one for the union of referenced
// headwords, one bulk root-group prefetch, and (only when some words missed
// the lookup table entirely) one secondary lemma probe. Words that resolve
// through no candidate are absent from the result map; the assembler turns
// absence into the not-found sentinel. Store failures propagate unchanged.
func (r *Resolver) Resolve(ctx context.Context, candidates map[string][]string) (map[string]domain.Resolution, error) {
	resolved := make(map[string]domain.Resolution, len(candidates))
	if len(candidates) == 0 {
		return resolved, nil
	}

	keys := unionValues(candidates)
	records, err := r.store.LookupRecords(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("lookup keys: %w", err)
	}
	recordByKey := make(map[string]domain.LookupRecord, len(records))
	for _, rec := range records {
		recordByKey[rec.LookupKey] = rec
	}

	headwords, err := r.fetchHeadwords(ctx, records)
	if err != nil {
		return nil, err
	}
	if err := r.prefetchRootGroups(ctx, headwords); err != nil {
		return nil, err
	}
	hwByID := make(map[int64]domain.Headword, len(headwords))
	for _, hw := range headwords {
		hwByID[hw.ID] = hw
	}

	// Candidate-priority walk: the first candidate present in the lookup
	// table is the word's resolution point.
	var unresolved []string
	for word, cands := range candidates {
		found := false
		for _, cand := range cands {
			rec, ok := recordByKey[cand]
			if !ok {
				continue
			}
			resolved[word] = r.mergeSenses(word, cand, rec, hwByID)
			found = true
			break
		}
		if !found {
			unresolved = append(unresolved, word)
		}
	}

	if len(unresolved) > 0 {
		if err := r.resolveByLemma(ctx, candidates, unresolved, resolved); err != nil {
			return nil, err
		}
	}

	return resolved, nil
}

// fetchHeadwords loads the union of headwords referenced by the lookup rows
// in one batched query.
func (r *Resolver) fetchHeadwords(ctx context.Context, records []domain.LookupRecord) ([]domain.Headword, error) {
	idSet := make(map[int64]struct{})
	for _, rec := range records {
		for _, id := range rec.HeadwordIDs {
			idSet[id] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	headwords, err := r.store.HeadwordsByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch headwords: %w", err)
	}
	return headwords, nil
}

// resolveByLemma is the secondary fallback for words whose candidates all
// missed the lookup table: their candidates are matched directly against
// headword lemmas, case-insensitively, in one batched query.
func (r *Resolver) resolveByLemma(ctx context.Context, candidates map[string][]string, unresolved []string, resolved map[string]domain.Resolution) error {
	probeSet := make(map[string]struct{})
	for _, word := range unresolved {
		for _, cand := range candidates[word] {
			probeSet[cand] = struct{}{}
		}
	}
	if len(probeSet) == 0 {
		return nil
	}

	probes := make([]string, 0, len(probeSet))
	for p := range probeSet {
		probes = append(probes, p)
	}
	sort.Strings(probes)

	headwords, err := r.store.HeadwordsByLemma(ctx, probes)
	if err != nil {
		return fmt.Errorf("lemma fallback: %w", err)
	}
	if len(headwords) == 0 {
		return nil
	}
	if err := r.prefetchRootGroups(ctx, headwords); err != nil {
		return err
	}

	// First headword per lemma in stored order wins.
	byLemma := make(map[string]domain.Headword, len(headwords))
	for _, hw := range headwords {
		lemma := strings.ToLower(strings.TrimSpace(hw.Lemma))
		if _, dup := byLemma[lemma]; !dup {
			byLemma[lemma] = hw
		}
	}

	for _, word := range unresolved {
		for _, cand := range candidates[word] {
			hw, ok := byLemma[cand]
			if !ok {
				continue
			}
			resolved[word] = r.fromHeadword(word, cand, hw)
			break
		}
	}
	return nil
}

// mergeSenses aggregates every headword behind one lookup key into a single
// Resolution, dropping ids the headword table does not know.
func (r *Resolver) mergeSenses(word, matched string, rec domain.LookupRecord, hwByID map[int64]domain.Headword) domain.Resolution {
	hws := make([]domain.Headword, 0, len(rec.HeadwordIDs))
	for _, id := range rec.HeadwordIDs {
		if hw, ok := hwByID[id]; ok {
			hws = append(hws, hw)
		}
	}
	return r.toResolution(AggregateSenses(hws, rec.Grammar, r.rootLabel), word, matched)
}

// fromHeadword builds a Resolution from a single lemma-matched headword.
func (r *Resolver) fromHeadword(word, matched string, hw domain.Headword) domain.Resolution {
	return r.toResolution(AggregateSenses([]domain.Headword{hw}, nil, r.rootLabel), word, matched)
}

func (r *Resolver) toResolution(flat domain.FlatEntry, word, matched string) domain.Resolution {
	return domain.Resolution{
		Meaning:      flat.Meaning,
		Morphology:   flat.Morphology,
		PartOfSpeech: flat.PartOfSpeech,
		Root:         flat.Root,
		SanskritRoot: flat.SanskritRoot,
		Etymology:    flat.Etymology,
		Translation:  flat.Translation,
		MatchType:    ClassifyMatch(word, matched),
		MatchedForm:  matched,
	}
}

// prefetchRootGroups bulk-loads the root groups referenced by the headwords
// into the cache, so per-word label building never queries the store.
// When several root rows share a key, the row whose sign matches the
// headword's wins; otherwise the first stored row does.
func (r *Resolver) prefetchRootGroups(ctx context.Context, headwords []domain.Headword) error {
	var missing []rootGroupKey
	seen := make(map[rootGroupKey]struct{})
	for _, hw := range headwords {
		if hw.RootKey == "" {
			continue
		}
		k := rootGroupKey{sign: hw.RootSign, root: hw.RootKey}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, cached := r.roots.get(k.sign, k.root); !cached {
			missing = append(missing, k)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	rootSet := make(map[string]struct{}, len(missing))
	for _, k := range missing {
		rootSet[k.root] = struct{}{}
	}
	roots := make([]string, 0, len(rootSet))
	for root := range rootSet {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	rows, err := r.store.RootsByKey(ctx, roots)
	if err != nil {
		return fmt.Errorf("fetch root groups: %w", err)
	}
	byRoot := make(map[string][]domain.Root, len(rows))
	for _, row := range rows {
		byRoot[row.Root] = append(byRoot[row.Root], row)
	}

	for _, k := range missing {
		group := ""
		candidates := byRoot[k.root]
		for _, row := range candidates {
			if row.RootSign == k.sign {
				group = strings.TrimSpace(row.RootGroup)
				break
			}
		}
		if group == "" && len(candidates) > 0 {
			group = strings.TrimSpace(candidates[0].RootGroup)
		}
		r.roots.put(k.sign, k.root, group)
	}

	r.log.Debug("root groups prefetched",
		slog.Int("requested", len(missing)),
		slog.Int("cached_total", r.roots.Len()))
	return nil
}

// rootGroup reads a prefetched root group; a cache miss (possible only after
// eviction or an unknown root) displays as a bare root.
func (r *Resolver) rootGroup(sign, root string) string {
	if root == "" {
		return ""
	}
	group, _ := r.roots.get(sign, root)
	return group
}

// rootLabel builds the group-enriched root label from the prefetched cache.
func (r *Resolver) rootLabel(sign, key string) string {
	return BuildRootLabel(sign, key, r.rootGroup(sign, key))
}

// ClassifyMatch grades a hit: the word itself or its final-long-vowel
// shortened variant is exact; every other hit is a fallback.
func ClassifyMatch(word, matched string) domain.MatchType {
	if matched == word || candidate.IsLongVowelShortening(word, matched) {
		return domain.MatchExact
	}
	return domain.MatchFallback
}

// unionValues flattens the candidate lists into one sorted, deduplicated
// key set for the batched lookup query.
func unionValues(candidates map[string][]string) []string {
	set := make(map[string]struct{})
	for _, cands := range candidates {
		for _, c := range cands {
			set[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
