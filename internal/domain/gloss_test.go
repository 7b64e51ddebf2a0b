package domain

import "testing"

func TestGlossEntry_HasLexicalData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry GlossEntry
		want  bool
	}{
		{
			name: "resolved word",
			entry: GlossEntry{
				Word:         "buddha",
				Meaning:      "awakened one",
				PartOfSpeech: "noun",
			},
			want: true,
		},
		{
			name: "separator never counts",
			entry: GlossEntry{
				Word:         ",",
				Meaning:      "comma",
				PartOfSpeech: SeparatorPOS,
			},
			want: false,
		},
		{
			name: "all placeholders",
			entry: GlossEntry{
				Word:         "xyz",
				Meaning:      NotFoundMeaning,
				Morphology:   PlaceholderLine,
				PartOfSpeech: PlaceholderNA,
				Root:         PlaceholderNA,
				SanskritRoot: PlaceholderNA,
				Etymology:    PlaceholderNA,
			},
			want: false,
		},
		{
			name: "one real field is enough",
			entry: GlossEntry{
				Word:         "dhamma",
				Meaning:      NotFoundMeaning,
				Morphology:   "masc. nom. sg.",
				PartOfSpeech: PlaceholderNA,
			},
			want: true,
		},
		{name: "zero value", entry: GlossEntry{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.entry.HasLexicalData(); got != tt.want {
				t.Errorf("HasLexicalData() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeadword_DisplayMeaning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hw   Headword
		want string
	}{
		{
			name: "meaning_1 preferred",
			hw:   Headword{Meaning1: "awakened", Meaning2: "enlightened"},
			want: "awakened",
		},
		{
			name: "meaning_2 fallback",
			hw:   Headword{Meaning2: "enlightened"},
			want: "enlightened",
		},
		{
			name: "literal appended",
			hw:   Headword{Meaning1: "monk", MeaningLit: "one who begs"},
			want: "monk (one who begs)",
		},
		{
			name: "literal alone",
			hw:   Headword{MeaningLit: "one who begs"},
			want: "one who begs",
		},
		{name: "all empty", hw: Headword{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.hw.DisplayMeaning(); got != tt.want {
				t.Errorf("DisplayMeaning() = %q, want %q", got, tt.want)
			}
		})
	}
}
