package gloss

import "github.com/palitools/paligloss/internal/domain"

// Stats summarizes one glossing run.
type Stats struct {
	Tokens     int
	Words      int
	Separators int
	Resolved   int
	NotFound   int
	Exact      int
	Fallback   int

	// Coverage is the resolved share of Words as a percentage in [0,100];
	// 0 when the text has no words.
	Coverage float64
}

// Collect computes run statistics from assembled entries.
func Collect(entries []domain.GlossEntry) Stats {
	st := Stats{Tokens: len(entries)}
	for _, e := range entries {
		if e.IsSeparator() {
			st.Separators++
			continue
		}
		st.Words++
		if !e.HasLexicalData() {
			st.NotFound++
			continue
		}
		st.Resolved++
		switch e.MatchType {
		case domain.MatchExact:
			st.Exact++
		case domain.MatchFallback:
			st.Fallback++
		}
	}
	if st.Words > 0 {
		st.Coverage = 100 * float64(st.Resolved) / float64(st.Words)
	}
	return st
}
