package domain

// Headword is one sense entry of the lexicon, keyed by lemma plus
// disambiguating grammar. Rows are owned by the backing store and are
// read-only to the engine.
type Headword struct {
	ID           int64
	Lemma        string
	POS          string
	Grammar      string
	Meaning1     string
	Meaning2     string
	MeaningLit   string
	RootKey      string
	RootSign     string
	Sanskrit     string
	DerivedFrom  string
	Construction string
	Stem         string
	Pattern      string
}

// DisplayMeaning composes the meaning shown to users: meaning_1, falling
// back to meaning_2, with the literal meaning appended in parentheses.
func (h Headword) DisplayMeaning() string {
	meaning := h.Meaning1
	if meaning == "" {
		meaning = h.Meaning2
	}
	if h.MeaningLit != "" {
		if meaning == "" {
			return h.MeaningLit
		}
		return meaning + " (" + h.MeaningLit + ")"
	}
	return meaning
}

// GrammarTriple is one (tag, pos, morphology) triple stored alongside a
// lookup key, one per contributing sense.
type GrammarTriple struct {
	Tag        string
	POS        string
	Morphology string
}

// LookupRecord maps one surface/inflected spelling to an ordered set of
// headword ids plus a parallel list of grammar triples.
type LookupRecord struct {
	LookupKey   string
	HeadwordIDs []int64
	Grammar     []GrammarTriple
}

// Root is one row of the verbal-root table.
type Root struct {
	Root      string
	RootSign  string
	RootGroup string
}

// FlatEntry is one pre-merged record of a flat (in-memory) dictionary.
type FlatEntry struct {
	Meaning      string `json:"meaning"`
	Morphology   string `json:"morphology"`
	PartOfSpeech string `json:"part_of_speech"`
	Root         string `json:"root"`
	SanskritRoot string `json:"sanskrit_root,omitempty"`
	Etymology    string `json:"etymology,omitempty"`
	Translation  string `json:"translation"`
}
