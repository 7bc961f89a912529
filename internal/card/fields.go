// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package card composes flat note-field mappings for vocabulary
// flashcards from extracted and enriched word data.
package card

import "fmt"

// MaxNumberedEntries is the number of numbered entry slots the note
// model declares for each pipeline.
const MaxNumberedEntries = 25

// Scalar field names of the vocabulary note model.
const (
	FieldWord       = "Word"
	FieldUSPhonetic = "USPhonetic"
	FieldUKPhonetic = "UKPhonetic"
	FieldUSAudio    = "USAudio"
	FieldUKAudio    = "UKAudio"

	FieldVocabWordForms        = "VocabWordForms"
	FieldVocabShortExplanation = "VocabShortExplanation"
	FieldVocabLongExplanation  = "VocabLongExplanation"

	FieldMWStems              = "MWStems"
	FieldMWPronunciation      = "MWPronunciation"
	FieldMWWordInflections    = "MWWordInflections"
	FieldMWLearnerDefinitions = "MWLearnerDefinitions"
	FieldMWExamples           = "MWExamples"
	FieldMWSynonyms           = "MWSynonyms"
	FieldMWAntonyms           = "MWAntonyms"
	FieldMWCollegiateSynonyms = "MWCollegiateSynonyms"
	FieldMWEtymology          = "MWEtymology"

	FieldEtymology = "Etymology"
	FieldTags      = "Tags"
)

// VocabEntryField returns the numbered vocabulary entry field name for
// a 1-based index.
func VocabEntryField(i int) string {
	return fmt.Sprintf("VocabEntry%d", i)
}

// MWStructuredEntryField returns the numbered structured entry field
// name for a 1-based index.
func MWStructuredEntryField(i int) string {
	return fmt.Sprintf("MWStructuredEntry%d", i)
}

// AllFields lists every field of the note model in display order. The
// order matters on model creation: AnkiConnect uses the first field as
// the note's sort field.
func AllFields() []string {
	fields := []string{
		FieldWord,
		FieldUSPhonetic,
		FieldUKPhonetic,
		FieldUSAudio,
		FieldUKAudio,
	}
	for i := 1; i <= MaxNumberedEntries; i++ {
		fields = append(fields, VocabEntryField(i))
	}
	fields = append(fields,
		FieldVocabWordForms,
		FieldVocabShortExplanation,
		FieldVocabLongExplanation,
		FieldMWStems,
	)
	for i := 1; i <= MaxNumberedEntries; i++ {
		fields = append(fields, MWStructuredEntryField(i))
	}
	fields = append(fields,
		FieldMWPronunciation,
		FieldMWWordInflections,
		FieldMWLearnerDefinitions,
		FieldMWExamples,
		FieldMWSynonyms,
		FieldMWAntonyms,
		FieldMWCollegiateSynonyms,
		FieldMWEtymology,
		FieldEtymology,
		FieldTags,
	)
	return fields
}

// declaredFields indexes the field vocabulary for Set's validation.
var declaredFields = func() map[string]bool {
	m := make(map[string]bool)
	for _, name := range AllFields() {
		m[name] = true
	}
	return m
}()

// Fields is a flat note-field mapping. Invariant: every key is a
// declared field name, no key maps to an empty value, and numbered
// entry fields are contiguous from 1.
type Fields map[string]string

// Set stores a field value. Empty values and names outside the declared
// vocabulary are dropped, so the mapping never carries placeholder keys
// or fields the note model would reject.
func (f Fields) Set(name, value string) {
	if value == "" || !declaredFields[name] {
		return
	}
	f[name] = value
}

// Merge copies all of other into f.
func (f Fields) Merge(other Fields) {
	for k, v := range other {
		f.Set(k, v)
	}
}
