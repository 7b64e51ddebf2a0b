package domain

import "strings"

// MatchType classifies how a resolved entry relates to the input spelling.
// A final long vowel shortened by sandhi or meter is a natural phonological
// variant of the same lexeme and counts as exact; every other non-identity
// hit is a fallback.
type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchFallback MatchType = "fallback"
)

// Placeholder values used for separator and not-found entries.
const (
	PlaceholderNA   = "N/A"
	PlaceholderLine = "---"

	// SeparatorPOS is the part-of-speech tag carried by separator entries.
	SeparatorPOS = "SEP"

	// NotFoundMeaning is the meaning string of the not-found sentinel.
	NotFoundMeaning = "[not found in dictionary]"
)

// Resolution is the merged dictionary answer for one normalized word.
type Resolution struct {
	Meaning      string
	Morphology   string
	PartOfSpeech string
	Root         string
	SanskritRoot string
	Etymology    string
	Translation  string
	MatchType    MatchType
	MatchedForm  string
}

// GlossEntry is the engine's sole externally visible output unit: one entry
// per input token, created once during assembly and never mutated after.
// Separator entries carry fixed placeholder values in all lexical fields.
type GlossEntry struct {
	Word            string    `json:"word"`
	Meaning         string    `json:"meaning"`
	Morphology      string    `json:"morphology"`
	PartOfSpeech    string    `json:"part_of_speech"`
	Root            string    `json:"root"`
	SanskritRoot    string    `json:"sanskrit_root"`
	Etymology       string    `json:"etymology"`
	Translation     string    `json:"translation"`
	MatchType       MatchType `json:"match_type,omitempty"`
	MatchedForm     string    `json:"matched_form,omitempty"`
	SeparatorSymbol string    `json:"separator_symbol,omitempty"`
}

// IsSeparator reports whether the entry stands for a punctuation token.
func (e GlossEntry) IsSeparator() bool {
	return e.PartOfSpeech == SeparatorPOS
}

// HasLexicalData reports whether the entry carries real dictionary content,
// i.e. at least one lexical field that is not a placeholder.
func (e GlossEntry) HasLexicalData() bool {
	if e.IsSeparator() {
		return false
	}
	for _, v := range []string{
		e.PartOfSpeech,
		e.Morphology,
		e.Meaning,
		e.Root,
		e.SanskritRoot,
		e.Etymology,
	} {
		if v = strings.TrimSpace(v); v != "" && !IsPlaceholder(v) {
			return true
		}
	}
	return false
}

// IsPlaceholder reports whether v is one of the fixed placeholder values.
func IsPlaceholder(v string) bool {
	switch strings.TrimSpace(v) {
	case "", PlaceholderLine, PlaceholderNA, "—", NotFoundMeaning:
		return true
	}
	return false
}
