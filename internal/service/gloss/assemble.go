package gloss

import "github.com/palitools/paligloss/internal/domain"

// assemble maps tokens to output entries one to one, preserving input order.
// Repeated words share the same resolution; the per-token surface spelling
// is kept as the displayed word.
func assemble(tokens []domain.Token, resolved map[string]domain.Resolution) []domain.GlossEntry {
	entries := make([]domain.GlossEntry, 0, len(tokens))
	for _, tok := range tokens {
		switch {
		case !tok.IsWord():
			entries = append(entries, separatorEntry(tok))
		default:
			res, ok := resolved[tok.Normalized]
			if !ok {
				entries = append(entries, notFoundEntry(tok))
				continue
			}
			entries = append(entries, wordEntry(tok, res))
		}
	}
	return entries
}

func wordEntry(tok domain.Token, res domain.Resolution) domain.GlossEntry {
	translation := res.Translation
	if translation == "" {
		translation = res.Meaning
	}
	return domain.GlossEntry{
		Word:         tok.Surface,
		Meaning:      orPlaceholder(res.Meaning, domain.PlaceholderLine),
		Morphology:   orPlaceholder(res.Morphology, domain.PlaceholderNA),
		PartOfSpeech: orPlaceholder(res.PartOfSpeech, domain.PlaceholderNA),
		Root:         orPlaceholder(res.Root, domain.PlaceholderNA),
		SanskritRoot: orPlaceholder(res.SanskritRoot, domain.PlaceholderNA),
		Etymology:    orPlaceholder(res.Etymology, domain.PlaceholderNA),
		Translation:  orPlaceholder(translation, domain.PlaceholderLine),
		MatchType:    res.MatchType,
		MatchedForm:  res.MatchedForm,
	}
}

func notFoundEntry(tok domain.Token) domain.GlossEntry {
	return domain.GlossEntry{
		Word:         tok.Surface,
		Meaning:      domain.NotFoundMeaning,
		Morphology:   domain.PlaceholderNA,
		PartOfSpeech: domain.PlaceholderNA,
		Root:         domain.PlaceholderNA,
		SanskritRoot: domain.PlaceholderNA,
		Etymology:    domain.PlaceholderNA,
		Translation:  domain.NotFoundMeaning,
	}
}

func separatorEntry(tok domain.Token) domain.GlossEntry {
	return domain.GlossEntry{
		Word:            tok.SeparatorLabel,
		Meaning:         domain.PlaceholderLine,
		Morphology:      domain.PlaceholderLine,
		PartOfSpeech:    domain.SeparatorPOS,
		Root:            domain.PlaceholderLine,
		SanskritRoot:    domain.PlaceholderNA,
		Etymology:       domain.PlaceholderNA,
		Translation:     domain.PlaceholderLine,
		SeparatorSymbol: tok.Surface,
	}
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
