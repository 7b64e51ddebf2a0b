// Package format renders assembled gloss entries for terminal output.
package format

import (
	"fmt"
	"strings"

	"github.com/palitools/paligloss/internal/domain"
)

// Func renders a full gloss to text.
type Func func(entries []domain.GlossEntry) string

// ForName maps a format name from config or flags to its renderer.
func ForName(name string) (Func, error) {
	switch name {
	case "compact":
		return Compact, nil
	case "rich":
		return Rich, nil
	default:
		return nil, fmt.Errorf("unknown output format %q: %w", name, domain.ErrValidation)
	}
}

// Compact renders one line per token: the word, its meaning and grammar,
// and a "[≈ form]" marker when the hit came from a fallback spelling.
// Separators render as their bare symbol.
func Compact(entries []domain.GlossEntry) string {
	var b strings.Builder
	for _, e := range entries {
		if e.IsSeparator() {
			fmt.Fprintf(&b, "%s\n", e.SeparatorSymbol)
			continue
		}
		fmt.Fprintf(&b, "%s: %s", e.Word, e.Meaning)
		if grammar := compactGrammar(e); grammar != "" {
			fmt.Fprintf(&b, " (%s)", grammar)
		}
		if e.MatchType == domain.MatchFallback {
			fmt.Fprintf(&b, " [≈ %s]", e.MatchedForm)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func compactGrammar(e domain.GlossEntry) string {
	var parts []string
	if !domain.IsPlaceholder(e.PartOfSpeech) {
		parts = append(parts, e.PartOfSpeech)
	}
	if !domain.IsPlaceholder(e.Morphology) {
		parts = append(parts, e.Morphology)
	}
	return strings.Join(parts, ", ")
}

// Rich renders a labeled block per word with every populated field.
// Placeholder fields are omitted rather than printed as dashes.
func Rich(entries []domain.GlossEntry) string {
	var b strings.Builder
	for i, e := range entries {
		if e.IsSeparator() {
			fmt.Fprintf(&b, "%s  %s\n\n", e.SeparatorSymbol, e.Word)
			continue
		}

		fmt.Fprintf(&b, "%s\n", e.Word)
		writeField(&b, "meaning", e.Meaning)
		writeField(&b, "pos", e.PartOfSpeech)
		writeField(&b, "morphology", e.Morphology)
		writeField(&b, "root", e.Root)
		writeField(&b, "sanskrit", e.SanskritRoot)
		writeField(&b, "etymology", e.Etymology)
		if e.Translation != e.Meaning {
			writeField(&b, "translation", e.Translation)
		}
		if e.MatchType == domain.MatchFallback {
			fmt.Fprintf(&b, "  match:      fallback [≈ %s]\n", e.MatchedForm)
		}
		if i < len(entries)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if domain.IsPlaceholder(value) && value != domain.NotFoundMeaning {
		return
	}
	fmt.Fprintf(b, "  %-11s %s\n", label+":", value)
}
