// Package candidate expands a normalized Pali word into the ordered list of
// fallback spellings to probe against a dictionary. Two phonological rules
// are applied, each at most once and never chained: shortening of a final
// long vowel and flipping of the final niggahita spelling.
package candidate

// RuleKind tags one fallback spelling rule.
type RuleKind int

const (
	// LongVowelShortening shortens a final long vowel (ā→a, ī→i, ū→u).
	// It covers sandhi elongation (ā + ti) and metrical lengthening, so a
	// hit through this rule is still an exact match of the same lexeme.
	LongVowelShortening RuleKind = iota

	// NiggahitaFlip swaps the final nasal spelling (ṃ→m, m→ṃ). Spelling
	// variation here reflects a real morphological alternative, so a hit
	// through this rule is classified as a fallback match.
	NiggahitaFlip
)

// Rules is the fixed evaluation order. Combinations of the two rules (a word
// both vowel-lengthened and niggahita-flipped from its dictionary form) are
// deliberately not explored.
var Rules = []RuleKind{LongVowelShortening, NiggahitaFlip}

var shortVowels = map[rune]rune{
	'ā': 'a',
	'ī': 'i',
	'ū': 'u',
}

// Apply rewrites the final character of word according to the rule.
// It returns the rewritten spelling and whether the rule fired.
func (k RuleKind) Apply(word string) (string, bool) {
	runes := []rune(word)
	if len(runes) == 0 {
		return "", false
	}
	stem := string(runes[:len(runes)-1])

	switch last := runes[len(runes)-1]; k {
	case LongVowelShortening:
		if short, ok := shortVowels[last]; ok {
			return stem + string(short), true
		}
	case NiggahitaFlip:
		switch last {
		case 'ṃ':
			return stem + "m", true
		case 'm':
			return stem + "ṃ", true
		}
	}
	return "", false
}

// Expand returns the ordered, deduplicated candidate list for word: the word
// itself first, then one spelling per rule that fires. Empty input yields an
// empty list.
func Expand(word string) []string {
	if word == "" {
		return nil
	}

	candidates := []string{word}
	seen := map[string]struct{}{word: {}}
	for _, rule := range Rules {
		alt, ok := rule.Apply(word)
		if !ok {
			continue
		}
		if _, dup := seen[alt]; dup {
			continue
		}
		seen[alt] = struct{}{}
		candidates = append(candidates, alt)
	}
	return candidates
}

// IsLongVowelShortening reports whether candidate is word with only its
// final long vowel shortened. Used to classify such hits as exact matches.
func IsLongVowelShortening(word, candidate string) bool {
	alt, ok := LongVowelShortening.Apply(word)
	return ok && alt == candidate
}
