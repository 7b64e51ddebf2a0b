// Package tokenizer splits Pali text into an ordered stream of word and
// separator tokens. It is a pure function over the input: no token is ever
// dropped except whitespace, and token order matches input order exactly.
package tokenizer

import (
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/palitools/paligloss/internal/domain"
)

// separatorLabels is the closed table of known punctuation units. Anything
// outside it (and outside the letter and whitespace classes) is emitted as a
// generic "<SYMBOL:x>" separator.
var separatorLabels = map[string]string{
	",":   "<COMA>",
	".":   "<PUNTO>",
	";":   "<PUNTO_Y_COMA>",
	":":   "<DOS_PUNTOS>",
	"?":   "<INTERROGACION>",
	"!":   "<EXCLAMACION>",
	"...": "<ELIPSIS>",
	"…":   "<ELIPSIS>",
	"'":   "<COMILLA>",
	"’":   "<COMILLA>",
	"‘":   "<COMILLA>",
	"\"":  "<COMILLAS>",
	"“":   "<COMILLAS>",
	"”":   "<COMILLAS>",
	"(":   "<PARENTESIS_ABRE>",
	")":   "<PARENTESIS_CIERRA>",
	"[":   "<CORCHETE_ABRE>",
	"]":   "<CORCHETE_CIERRA>",
	"-":   "<GUION>",
	"–":   "<GUION>",
	"—":   "<GUION>",
}

// Tokenize splits text into word and separator tokens. The input is composed
// to NFC first; word tokens are maximal runs of Unicode letters and carry
// both the original surface and the normalized lookup form. A 3-character
// "..." ellipsis is one separator token. Whitespace is dropped silently.
func Tokenize(text string) []domain.Token {
	runes := []rune(norm.NFC.String(text))

	var tokens []domain.Token
	var word []rune

	flush := func() {
		if len(word) == 0 {
			return
		}
		surface := string(word)
		tokens = append(tokens, domain.Token{
			Kind:       domain.TokenWord,
			Surface:    surface,
			Normalized: domain.NormalizeWord(surface),
		})
		word = word[:0]
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsLetter(r):
			word = append(word, r)

		case unicode.IsSpace(r):
			flush()

		case r == '.' && i+2 < len(runes) && runes[i+1] == '.' && runes[i+2] == '.':
			flush()
			tokens = append(tokens, separator("..."))
			i += 2

		default:
			flush()
			tokens = append(tokens, separator(string(r)))
		}
	}
	flush()

	return tokens
}

func separator(surface string) domain.Token {
	label, ok := separatorLabels[surface]
	if !ok {
		label = "<SYMBOL:" + surface + ">"
	}
	return domain.Token{
		Kind:           domain.TokenSeparator,
		Surface:        surface,
		SeparatorLabel: label,
	}
}
