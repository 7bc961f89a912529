// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package card

import (
	"fmt"
	"strings"

	"github.com/tkoval/anki-vocab/internal/mw"
	"github.com/tkoval/anki-vocab/internal/textutil"
	"github.com/tkoval/anki-vocab/pkg/types"
)

// ComposeVocab flattens extracted word info into note fields. Each
// definition becomes one numbered entry combining the abbreviated part
// of speech, the definition text, the first example (with the word
// bolded), and the synonym/antonym lines.
func ComposeVocab(info *types.WordInfo, limits types.Limits) Fields {
	fields := Fields{}
	if info == nil {
		return fields
	}

	fields.Set(FieldWord, info.Word)
	fields.Set(FieldUSPhonetic, info.Phonetics.US)
	fields.Set(FieldUKPhonetic, info.Phonetics.UK)
	fields.Set(FieldVocabWordForms, strings.Join(info.WordForms, ", "))
	fields.Set(FieldVocabShortExplanation, info.ShortExplanation)
	fields.Set(FieldVocabLongExplanation, info.LongExplanation)
	fields.Set(FieldTags, "vocabulary")

	defs := info.Definitions
	if len(defs) > MaxNumberedEntries {
		defs = defs[:MaxNumberedEntries]
	}
	for i, def := range defs {
		fields.Set(VocabEntryField(i+1), vocabEntry(def, info.Word, limits))
	}
	return fields
}

func vocabEntry(def types.WordDefinition, word string, limits types.Limits) string {
	text := textutil.CleanText(def.Definition)

	if len(def.Examples) > 0 {
		if example := textutil.CleanText(def.Examples[0]); example != "" {
			example = textutil.BoldWord(example, word)
			text += fmt.Sprintf("\n<br><em class=\"example\">%s</em>", example)
		}
	}
	if len(def.Synonyms) > 0 {
		text += fmt.Sprintf("\n<br><span class=\"synonyms\">Synonyms: %s</span>",
			strings.Join(capWords(def.Synonyms, limits.MaxDisplaySynonyms), ", "))
	}
	if len(def.Antonyms) > 0 {
		text += fmt.Sprintf("\n<br><span class=\"antonyms\">Antonyms: %s</span>",
			strings.Join(capWords(def.Antonyms, limits.MaxDisplaySynonyms), ", "))
	}

	if pos := textutil.AbbreviatePartOfSpeech(def.PartOfSpeech); pos != "" {
		return fmt.Sprintf("<span class=\"vocab-part-of-speech\">%s</span> %s", pos, text)
	}
	return text
}

// ComposeMW flattens processed Merriam-Webster data into note fields.
// Each collegiate entry becomes one numbered structured entry headed by
// headword and part of speech; the scalar fields come from the first
// entry only, except stems which union across entries.
func ComposeMW(entries []mw.CollegiateEntry, thesaurus *mw.ThesaurusResult) Fields {
	fields := Fields{}

	if len(entries) > 0 {
		fields.Set(FieldMWStems, strings.Join(unionStems(entries), ", "))

		slot := 0
		for _, entry := range entries {
			if slot >= MaxNumberedEntries {
				break
			}
			block := structuredEntry(entry)
			if block == "" {
				continue
			}
			slot++
			fields.Set(MWStructuredEntryField(slot), block)
		}

		primary := entries[0]
		fields.Set(FieldMWPronunciation, strings.Join(primary.Pronunciations, " | "))
		fields.Set(FieldMWWordInflections, strings.Join(stripAsterisks(primary.Inflections), ", "))
		fields.Set(FieldMWExamples, strings.Join(primary.Examples, " | "))
		fields.Set(FieldMWEtymology, strings.Join(primary.Etymology, " "))
		fields.Set(FieldMWCollegiateSynonyms, primary.SynonymsParagraph)
		fields.Set(FieldMWLearnerDefinitions, strings.Join(primary.LearnerDefinitions, " | "))
	}

	if thesaurus != nil {
		fields.Set(FieldMWSynonyms, strings.Join(thesaurus.Synonyms, ", "))
		fields.Set(FieldMWAntonyms, strings.Join(thesaurus.Antonyms, ", "))
	}
	return fields
}

// structuredEntry renders one collegiate entry block. Entries missing a
// headword, part of speech, or definitions render nothing.
func structuredEntry(entry mw.CollegiateEntry) string {
	if entry.Headword == "" || entry.PartOfSpeech == "" || len(entry.Definitions) == 0 {
		return ""
	}
	parts := []string{
		fmt.Sprintf("<strong>%s</strong> <em>(%s)</em>", entry.Headword, entry.PartOfSpeech),
	}
	parts = append(parts, entry.Definitions...)
	return strings.Join(parts, "<br>")
}

func unionStems(entries []mw.CollegiateEntry) []string {
	seen := map[string]struct{}{}
	var stems []string
	for _, entry := range entries {
		for _, stem := range entry.Stems {
			if _, ok := seen[stem]; ok {
				continue
			}
			seen[stem] = struct{}{}
			stems = append(stems, stem)
		}
	}
	return stems
}

func stripAsterisks(forms []string) []string {
	out := make([]string, len(forms))
	for i, f := range forms {
		out[i] = strings.ReplaceAll(f, "*", "")
	}
	return out
}

func capWords(words []string, n int) []string {
	if n > 0 && len(words) > n {
		return words[:n]
	}
	return words
}
