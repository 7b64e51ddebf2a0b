package resolver

import (
	"strings"

	"github.com/palitools/paligloss/internal/domain"
)

// AggregateSenses merges a set of senses into one pre-formatted entry.
// Meanings and lemmas merge with order-preserving dedupe joined by "; ";
// grammar-triple pos and morphology win over the headword fields when
// present; for root, Sanskrit cognate, and derivation the first non-empty
// value in stored headword order wins. rootLabel formats the winning
// (sign, key) pair; the relational resolver passes the group-enriched label,
// the flat-dictionary builder the bare form. Shared between both backends so
// they merge identically.
func AggregateSenses(hws []domain.Headword, triples []domain.GrammarTriple, rootLabel func(sign, key string) string) domain.FlatEntry {
	var posList, morphList []string
	for _, g := range triples {
		if g.POS != "" {
			posList = append(posList, g.POS)
		}
		if g.Morphology != "" {
			morphList = append(morphList, g.Morphology)
		}
	}

	var meanings, lemmas, hwPOS, hwMorph []string
	var rootKey, rootSign, sanskrit, etymology string
	for _, hw := range hws {
		if m := hw.DisplayMeaning(); m != "" {
			meanings = append(meanings, m)
		}
		if hw.Lemma != "" {
			lemmas = append(lemmas, hw.Lemma)
		}
		if hw.POS != "" {
			hwPOS = append(hwPOS, hw.POS)
		}
		if hw.Grammar != "" {
			hwMorph = append(hwMorph, hw.Grammar)
		}
		if rootKey == "" && hw.RootKey != "" {
			rootKey = hw.RootKey
			rootSign = hw.RootSign
		}
		if sanskrit == "" {
			sanskrit = strings.TrimSpace(hw.Sanskrit)
		}
		if etymology == "" {
			etymology = BuildEtymologyLabel(hw.DerivedFrom, hw.Construction, hw.Stem, hw.Pattern)
		}
	}

	meaning := JoinDeduped(meanings)
	if meaning == "" {
		meaning = JoinDeduped(lemmas)
	}
	pos := JoinDeduped(posList)
	if pos == "" {
		pos = JoinDeduped(hwPOS)
	}
	morph := JoinDeduped(morphList)
	if morph == "" {
		morph = JoinDeduped(hwMorph)
	}

	return domain.FlatEntry{
		Meaning:      meaning,
		Morphology:   morph,
		PartOfSpeech: pos,
		Root:         rootLabel(rootSign, rootKey),
		SanskritRoot: sanskrit,
		Etymology:    etymology,
		Translation:  meaning,
	}
}
