package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord returns the canonical lookup form of a Pali word:
//   - trims leading/trailing whitespace
//   - composes to Unicode NFC
//   - converts to lowercase
//   - unifies the alternative niggahita spelling ṁ to ṃ
//
// All dictionary lookup keys use this form; the original surface is kept
// separately for display.
func NormalizeWord(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "ṁ", "ṃ")
}
