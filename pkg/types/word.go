// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WordDefinition is one sense of a word as extracted from the
// vocabulary.com page: part of speech, cleaned definition text, and the
// bounded example/synonym/antonym lists collected from the same list item.
// The definition text is never empty; senses that clean to nothing are
// dropped at extraction time rather than stored as placeholders.
type WordDefinition struct {
	PartOfSpeech string   `json:"part_of_speech" yaml:"part_of_speech"`
	Definition   string   `json:"definition" yaml:"definition"`
	Examples     []string `json:"examples,omitempty" yaml:"examples,omitempty"`
	Synonyms     []string `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	Antonyms     []string `json:"antonyms,omitempty" yaml:"antonyms,omitempty"`
}

// Phonetics holds the US and UK transcriptions, each wrapped in /slashes/.
// Either may be empty.
type Phonetics struct {
	US string `json:"us,omitempty" yaml:"us,omitempty"`
	UK string `json:"uk,omitempty" yaml:"uk,omitempty"`
}

// WordInfo aggregates everything extracted for one word from the
// vocabulary.com pipeline.
type WordInfo struct {
	Word             string           `json:"word" yaml:"word"`
	Phonetics        Phonetics        `json:"phonetics" yaml:"phonetics"`
	Definitions      []WordDefinition `json:"definitions,omitempty" yaml:"definitions,omitempty"`
	WordForms        []string         `json:"word_forms,omitempty" yaml:"word_forms,omitempty"`
	ShortExplanation string           `json:"short_explanation,omitempty" yaml:"short_explanation,omitempty"`
	LongExplanation  string           `json:"long_explanation,omitempty" yaml:"long_explanation,omitempty"`
	Etymology        string           `json:"etymology,omitempty" yaml:"etymology,omitempty"`
	Source           string           `json:"source,omitempty" yaml:"source,omitempty"`
}

// HasContent reports whether the extraction found anything usable: at
// least one definition or one explanation paragraph. Words without content
// are treated as not found.
func (w *WordInfo) HasContent() bool {
	if w == nil {
		return false
	}
	return len(w.Definitions) > 0 || w.ShortExplanation != "" || w.LongExplanation != ""
}

// AudioFiles names the pronunciation files stored for a word, as uploaded
// to the Anki media collection.
type AudioFiles struct {
	US string `json:"us,omitempty" yaml:"us,omitempty"`
	UK string `json:"uk,omitempty" yaml:"uk,omitempty"`
}
