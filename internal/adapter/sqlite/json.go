package sqlite

import (
	"encoding/json"

	"github.com/palitools/paligloss/internal/domain"
)

// decodeHeadwordIDs parses the lookup table's headwords column, a JSON array
// of integer ids. Malformed or empty content decodes to nil; a bad row must
// degrade to a lookup miss, never fail the whole batch.
func decodeHeadwordIDs(raw string) []int64 {
	if raw == "" {
		return nil
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}

// decodeGrammar parses the lookup table's grammar column, a JSON array of
// [tag, pos, morphology] string triples. Rows shorter than three elements
// are padded with empty strings; malformed content decodes to nil.
func decodeGrammar(raw string) []domain.GrammarTriple {
	if raw == "" {
		return nil
	}
	var rows [][]string
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil
	}

	triples := make([]domain.GrammarTriple, 0, len(rows))
	for _, row := range rows {
		var t domain.GrammarTriple
		if len(row) > 0 {
			t.Tag = row[0]
		}
		if len(row) > 1 {
			t.POS = row[1]
		}
		if len(row) > 2 {
			t.Morphology = row[2]
		}
		triples = append(triples, t)
	}
	return triples
}
