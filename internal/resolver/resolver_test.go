package resolver

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palitools/paligloss/internal/domain"
)

type storeMock struct {
	LookupRecordsFunc    func(ctx context.Context, keys []string) ([]domain.LookupRecord, error)
	HeadwordsByIDFunc    func(ctx context.Context, ids []int64) ([]domain.Headword, error)
	HeadwordsByLemmaFunc func(ctx context.Context, lemmas []string) ([]domain.Headword, error)
	RootsByKeyFunc       func(ctx context.Context, roots []string) ([]domain.Root, error)
}

func (m *storeMock) LookupRecords(ctx context.Context, keys []string) ([]domain.LookupRecord, error) {
	if m.LookupRecordsFunc == nil {
		return nil, nil
	}
	return m.LookupRecordsFunc(ctx, keys)
}

func (m *storeMock) HeadwordsByID(ctx context.Context, ids []int64) ([]domain.Headword, error) {
	if m.HeadwordsByIDFunc == nil {
		return nil, nil
	}
	return m.HeadwordsByIDFunc(ctx, ids)
}

func (m *storeMock) HeadwordsByLemma(ctx context.Context, lemmas []string) ([]domain.Headword, error) {
	if m.HeadwordsByLemmaFunc == nil {
		return nil, nil
	}
	return m.HeadwordsByLemmaFunc(ctx, lemmas)
}

func (m *storeMock) RootsByKey(ctx context.Context, roots []string) ([]domain.Root, error) {
	if m.RootsByKeyFunc == nil {
		return nil, nil
	}
	return m.RootsByKeyFunc(ctx, roots)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixtureStore() *storeMock {
	lookups := map[string]domain.LookupRecord{
		"dhamma": {
			LookupKey:   "dhamma",
			HeadwordIDs: []int64{1, 2},
			Grammar: []domain.GrammarTriple{
				{Tag: "dhamma 1", POS: "masc", Morphology: "nom sg"},
				{Tag: "dhamma 2", POS: "masc", Morphology: "voc sg"},
			},
		},
		"buddham": {
			LookupKey:   "buddham",
			HeadwordIDs: []int64{3},
			Grammar: []domain.GrammarTriple{
				{Tag: "buddha", POS: "masc", Morphology: "acc sg"},
			},
		},
		"rāja": {
			LookupKey:   "rāja",
			HeadwordIDs: []int64{4},
			Grammar: []domain.GrammarTriple{
				{Tag: "rājā", POS: "masc", Morphology: "nom sg"},
			},
		},
	}
	headwords := map[int64]domain.Headword{
		1: {ID: 1, Lemma: "dhamma 1", POS: "masc", Grammar: "masc noun",
			Meaning1: "nature; character", RootKey: "√dhar 1",
			Sanskrit: "dharma", DerivedFrom: "dharati", Construction: "√dhar + ma"},
		2: {ID: 2, Lemma: "dhamma 2", POS: "masc", Grammar: "masc noun",
			Meaning1: "teaching; doctrine", RootKey: "√dhar 1"},
		3: {ID: 3, Lemma: "buddha 1", POS: "masc", Grammar: "masc pp noun",
			Meaning1: "awakened one", MeaningLit: "one who knows",
			RootKey: "√budh", Sanskrit: "buddha"},
		4: {ID: 4, Lemma: "rājā", POS: "masc", Grammar: "masc noun",
			Meaning1: "king; ruler", RootKey: "√rāj"},
	}
	roots := []domain.Root{
		{Root: "√dhar 1", RootGroup: "1"},
		{Root: "√budh", RootGroup: "4"},
		{Root: "√rāj", RootGroup: "1"},
	}

	return &storeMock{
		LookupRecordsFunc: func(_ context.Context, keys []string) ([]domain.LookupRecord, error) {
			var out []domain.LookupRecord
			for _, k := range keys {
				if rec, ok := lookups[k]; ok {
					out = append(out, rec)
				}
			}
			return out, nil
		},
		HeadwordsByIDFunc: func(_ context.Context, ids []int64) ([]domain.Headword, error) {
			var out []domain.Headword
			for _, id := range ids {
				if hw, ok := headwords[id]; ok {
					out = append(out, hw)
				}
			}
			return out, nil
		},
		RootsByKeyFunc: func(_ context.Context, keys []string) ([]domain.Root, error) {
			var out []domain.Root
			for _, k := range keys {
				for _, row := range roots {
					if row.Root == k {
						out = append(out, row)
					}
				}
			}
			return out, nil
		},
	}
}

func TestResolver_Resolve_ExactMatch(t *testing.T) {
	t.Parallel()

	r := New(fixtureStore(), testLogger())

	got, err := r.Resolve(context.Background(), map[string][]string{
		"dhamma": {"dhamma"},
	})
	require.NoError(t, err)
	require.Contains(t, got, "dhamma")

	res := got["dhamma"]
	assert.Equal(t, domain.MatchExact, res.MatchType)
	assert.Equal(t, "dhamma", res.MatchedForm)
	assert.Equal(t, "nature; character; teaching; doctrine", res.Meaning)
	assert.Equal(t, res.Meaning, res.Translation)
	assert.Equal(t, "masc", res.PartOfSpeech)
	assert.Equal(t, "nom sg; voc sg", res.Morphology)
}

func TestResolver_Resolve_PolysemyMergesWithoutDuplicates(t *testing.T) {
	t.Parallel()

	store := fixtureStore()
	store.LookupRecordsFunc = func(_ context.Context, _ []string) ([]domain.LookupRecord, error) {
		return []domain.LookupRecord{{
			LookupKey:   "dhamma",
			HeadwordIDs: []int64{1, 1, 2},
			Grammar: []domain.GrammarTriple{
				{POS: "masc", Morphology: "nom sg"},
				{POS: "masc", Morphology: "nom sg"},
				{POS: "MASC", Morphology: "voc sg"},
			},
		}}, nil
	}
	r := New(store, testLogger())

	got, err := r.Resolve(context.Background(), map[string][]string{"dhamma": {"dhamma"}})
	require.NoError(t, err)

	res := got["dhamma"]
	assert.Equal(t, "masc", res.PartOfSpeech, "case-insensitive dedupe keeps the first spelling")
	assert.Equal(t, "nom sg; voc sg", res.Morphology)
	assert.Equal(t, "nature; character; teaching; doctrine", res.Meaning)
}

func TestResolver_Resolve_VowelShorteningIsExact(t *testing.T) {
	t.Parallel()

	r := New(fixtureStore(), testLogger())

	got, err := r.Resolve(context.Background(), map[string][]string{
		"rājā": {"rājā", "rāja"},
	})
	require.NoError(t, err)
	require.Contains(t, got, "rājā")

	res := got["rājā"]
	assert.Equal(t, domain.MatchExact, res.MatchType)
	assert.Equal(t, "rāja", res.MatchedForm)
	assert.Equal(t, "king; ruler", res.Meaning)
}

func TestResolver_Resolve_NiggahitaFlipIsFallback(t *testing.T) {
	t.Parallel()

	r := New(fixtureStore(), testLogger())

	got, err := r.Resolve(context.Background(), map[string][]string{
		"buddhaṃ": {"buddhaṃ", "buddham"},
	})
	require.NoError(t, err)
	require.Contains(t, got, "buddhaṃ")

	res := got["buddhaṃ"]
	assert.Equal(t, domain.MatchFallback, res.MatchType)
	assert.Equal(t, "buddham", res.MatchedForm)
	assert.Equal(t, "awakened one (one who knows)", res.Meaning)
	assert.Equal(t, "√budh · 4 (divādi)", res.Root)
}

func TestResolver_Resolve_CandidatePriorityOrder(t *testing.T) {
	t.Parallel()

	store := fixtureStore()
	r := New(store, testLogger())

	// Both candidates hit; the first listed must win.
	got, err := r.Resolve(context.Background(), map[string][]string{
		"x": {"dhamma", "buddham"},
	})
	require.NoError(t, err)
	assert.Equal(t, "dhamma", got["x"].MatchedForm)
}

func TestResolver_Resolve_LemmaFallback(t *testing.T) {
	t.Parallel()

	store := fixtureStore()
	store.LookupRecordsFunc = func(_ context.Context, _ []string) ([]domain.LookupRecord, error) {
		return nil, nil
	}
	var probed []string
	store.HeadwordsByLemmaFunc = func(_ context.Context, lemmas []string) ([]domain.Headword, error) {
		probed = lemmas
		return []domain.Headword{
			{ID: 4, Lemma: "rājā", POS: "masc", Grammar: "masc noun",
				Meaning1: "king; ruler", RootKey: "√rāj"},
		}, nil
	}
	r := New(store, testLogger())

	got, err := r.Resolve(context.Background(), map[string][]string{
		"rājā": {"rājā", "rāja"},
	})
	require.NoError(t, err)
	require.Contains(t, got, "rājā")
	assert.ElementsMatch(t, []string{"rājā", "rāja"}, probed)

	res := got["rājā"]
	assert.Equal(t, "rājā", res.MatchedForm)
	assert.Equal(t, domain.MatchExact, res.MatchType)
	assert.Equal(t, "king; ruler", res.Meaning)
	assert.Equal(t, "√rāj · 1 (bhvādi)", res.Root)
}

func TestResolver_Resolve_UnresolvedWordAbsentFromResult(t *testing.T) {
	t.Parallel()

	store := fixtureStore()
	r := New(store, testLogger())

	got, err := r.Resolve(context.Background(), map[string][]string{
		"xyzzy": {"xyzzy"},
	})
	require.NoError(t, err)
	assert.NotContains(t, got, "xyzzy")
}

func TestResolver_Resolve_EmptyBatch(t *testing.T) {
	t.Parallel()

	store := &storeMock{
		LookupRecordsFunc: func(_ context.Context, _ []string) ([]domain.LookupRecord, error) {
			t.Fatal("store must not be queried for an empty batch")
			return nil, nil
		},
	}
	r := New(store, testLogger())

	got, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolver_Resolve_StoreErrorPropagates(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("disk gone")
	store := &storeMock{
		LookupRecordsFunc: func(_ context.Context, _ []string) ([]domain.LookupRecord, error) {
			return nil, wantErr
		},
	}
	r := New(store, testLogger())

	_, err := r.Resolve(context.Background(), map[string][]string{"a": {"a"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestResolver_Resolve_DanglingHeadwordIDTolerated(t *testing.T) {
	t.Parallel()

	store := fixtureStore()
	store.LookupRecordsFunc = func(_ context.Context, _ []string) ([]domain.LookupRecord, error) {
		return []domain.LookupRecord{{
			LookupKey:   "dhamma",
			HeadwordIDs: []int64{1, 999},
			Grammar:     []domain.GrammarTriple{{POS: "masc", Morphology: "nom sg"}},
		}}, nil
	}
	r := New(store, testLogger())

	got, err := r.Resolve(context.Background(), map[string][]string{"dhamma": {"dhamma"}})
	require.NoError(t, err)
	assert.Equal(t, "nature; character", got["dhamma"].Meaning)
}

func TestResolver_Resolve_RootGroupCachedAcrossCalls(t *testing.T) {
	t.Parallel()

	store := fixtureStore()
	var rootCalls int
	inner := store.RootsByKeyFunc
	store.RootsByKeyFunc = func(ctx context.Context, roots []string) ([]domain.Root, error) {
		rootCalls++
		return inner(ctx, roots)
	}
	r := New(store, testLogger())

	batch := map[string][]string{"dhamma": {"dhamma"}}
	_, err := r.Resolve(context.Background(), batch)
	require.NoError(t, err)
	_, err = r.Resolve(context.Background(), batch)
	require.NoError(t, err)

	assert.Equal(t, 1, rootCalls)
	assert.Equal(t, 1, r.RootGroups().Len())
}

func TestClassifyMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		word    string
		matched string
		want    domain.MatchType
	}{
		{name: "identical", word: "dhamma", matched: "dhamma", want: domain.MatchExact},
		{name: "shortened final ā", word: "rājā", matched: "rāja", want: domain.MatchExact},
		{name: "shortened final ī", word: "bhikkhunī", matched: "bhikkhuni", want: domain.MatchExact},
		{name: "niggahita flip", word: "buddhaṃ", matched: "buddham", want: domain.MatchFallback},
		{name: "unrelated form", word: "dhamma", matched: "dhammā", want: domain.MatchFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyMatch(tt.word, tt.matched))
		})
	}
}
