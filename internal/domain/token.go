package domain

// TokenKind distinguishes lexical words from punctuation separators.
type TokenKind string

const (
	TokenWord      TokenKind = "word"
	TokenSeparator TokenKind = "separator"
)

// Token is one unit of tokenized input. Tokens are immutable once produced
// and keep the order of the input text exactly.
type Token struct {
	Kind TokenKind

	// Surface is the original substring, preserved for display.
	Surface string

	// Normalized is the canonical lookup form (word tokens only).
	Normalized string

	// SeparatorLabel is the symbolic tag for the separator, e.g. "<COMA>"
	// (separator tokens only).
	SeparatorLabel string
}

// IsWord reports whether the token is a lexical word.
func (t Token) IsWord() bool {
	return t.Kind == TokenWord
}
