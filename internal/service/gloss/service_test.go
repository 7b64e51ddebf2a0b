package gloss

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palitools/paligloss/internal/domain"
	"github.com/palitools/paligloss/internal/tokenizer"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockResolver struct {
	ResolveFunc func(ctx context.Context, candidates map[string][]string) (map[string]domain.Resolution, error)
}

func (m *mockResolver) Resolve(ctx context.Context, candidates map[string][]string) (map[string]domain.Resolution, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, candidates)
	}
	return map[string]domain.Resolution{}, nil
}

func resolverFor(table map[string]domain.Resolution) *mockResolver {
	return &mockResolver{
		ResolveFunc: func(_ context.Context, candidates map[string][]string) (map[string]domain.Resolution, error) {
			out := map[string]domain.Resolution{}
			for word, cands := range candidates {
				for _, cand := range cands {
					if res, ok := table[cand]; ok {
						res.MatchedForm = cand
						if cand == word {
							res.MatchType = domain.MatchExact
						} else {
							res.MatchType = domain.MatchFallback
						}
						out[word] = res
						break
					}
				}
			}
			return out, nil
		},
	}
}

func newTestService(table map[string]domain.Resolution) *Service {
	return New(resolverFor(table), slog.New(slog.DiscardHandler))
}

// ===========================================================================
// Gloss
// ===========================================================================

func TestService_Gloss_OneEntryPerToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(map[string]domain.Resolution{
		"buddham": {Meaning: "awakened one", PartOfSpeech: "masc", Translation: "awakened one"},
		"saraṇaṃ": {Meaning: "refuge", PartOfSpeech: "nt", Translation: "refuge"},
	})

	text := "Buddhaṃ saraṇaṃ gacchāmi."
	entries, err := svc.Gloss(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, entries, len(tokenizer.Tokenize(text)))

	assert.Equal(t, "Buddhaṃ", entries[0].Word)
	assert.Equal(t, "awakened one", entries[0].Meaning)
	assert.Equal(t, domain.MatchFallback, entries[0].MatchType)
	assert.Equal(t, "buddham", entries[0].MatchedForm)

	assert.Equal(t, "refuge", entries[1].Meaning)
	assert.Equal(t, domain.MatchExact, entries[1].MatchType)

	assert.Equal(t, domain.NotFoundMeaning, entries[2].Meaning)
	assert.Empty(t, entries[2].MatchType)

	require.True(t, entries[3].IsSeparator())
	assert.Equal(t, "<PUNTO>", entries[3].Word)
	assert.Equal(t, ".", entries[3].SeparatorSymbol)
	assert.Equal(t, domain.SeparatorPOS, entries[3].PartOfSpeech)
}

func TestService_Gloss_RepeatedWordsResolveOnce(t *testing.T) {
	t.Parallel()

	var calls int
	var batch map[string][]string
	resolver := &mockResolver{
		ResolveFunc: func(_ context.Context, candidates map[string][]string) (map[string]domain.Resolution, error) {
			calls++
			batch = candidates
			return map[string]domain.Resolution{}, nil
		},
	}
	svc := New(resolver, slog.New(slog.DiscardHandler))

	entries, err := svc.Gloss(context.Background(), "dhammo dhammo dhammo")
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, 1, calls)
	assert.Len(t, batch, 1, "repeated words collapse into one batch entry")
}

func TestService_Gloss_EmptyText(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)

	entries, err := svc.Gloss(context.Background(), "   \n\t ")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_Gloss_ResolverErrorPropagates(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("backend gone")
	svc := New(&mockResolver{
		ResolveFunc: func(_ context.Context, _ map[string][]string) (map[string]domain.Resolution, error) {
			return nil, wantErr
		},
	}, slog.New(slog.DiscardHandler))

	_, err := svc.Gloss(context.Background(), "dhammo")
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestService_Gloss_NotFoundEntryCarriesPlaceholders(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)

	entries, err := svc.Gloss(context.Background(), "xyzzy")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "xyzzy", e.Word)
	assert.Equal(t, domain.NotFoundMeaning, e.Meaning)
	assert.Equal(t, domain.PlaceholderNA, e.PartOfSpeech)
	assert.False(t, e.HasLexicalData())
}

func TestService_Gloss_EmptyFieldsBecomePlaceholders(t *testing.T) {
	t.Parallel()

	svc := newTestService(map[string]domain.Resolution{
		"ca": {Meaning: "and", PartOfSpeech: "ind", Translation: "and"},
	})

	entries, err := svc.Gloss(context.Background(), "ca")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, domain.PlaceholderNA, e.Root)
	assert.Equal(t, domain.PlaceholderNA, e.SanskritRoot)
	assert.Equal(t, domain.PlaceholderNA, e.Etymology)
	assert.Equal(t, domain.PlaceholderNA, e.Morphology)
	assert.True(t, e.HasLexicalData())
}

// ===========================================================================
// Stats
// ===========================================================================

func TestCollect(t *testing.T) {
	t.Parallel()

	svc := newTestService(map[string]domain.Resolution{
		"buddham": {Meaning: "awakened one", Translation: "awakened one"},
		"dhammo":  {Meaning: "teaching", Translation: "teaching"},
	})

	entries, err := svc.Gloss(context.Background(), "Buddhaṃ dhammo xyzzy, dhammo.")
	require.NoError(t, err)

	st := Collect(entries)
	assert.Equal(t, 6, st.Tokens)
	assert.Equal(t, 4, st.Words)
	assert.Equal(t, 2, st.Separators)
	assert.Equal(t, 3, st.Resolved)
	assert.Equal(t, 1, st.NotFound)
	assert.Equal(t, 2, st.Exact)
	assert.Equal(t, 1, st.Fallback)
	assert.InDelta(t, 75.0, st.Coverage, 1e-9)
}

func TestCollect_Empty(t *testing.T) {
	t.Parallel()

	st := Collect(nil)
	assert.Zero(t, st.Words)
	assert.Zero(t, st.Coverage)
}
