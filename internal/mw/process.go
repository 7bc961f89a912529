// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mw

import (
	"fmt"
	"strings"

	"github.com/tkoval/anki-vocab/pkg/types"
)

// CollegiateEntry is one processed collegiate entry, ready for field
// composition.
type CollegiateEntry struct {
	Headword           string   `json:"headword,omitempty"`
	PartOfSpeech       string   `json:"part_of_speech,omitempty"`
	Stems              []string `json:"stems,omitempty"`
	Pronunciations     []string `json:"pronunciations,omitempty"`
	Inflections        []string `json:"inflections,omitempty"`
	Definitions        []string `json:"definitions,omitempty"`
	Examples           []string `json:"examples,omitempty"`
	SynonymsParagraph  string   `json:"synonyms_paragraph,omitempty"`
	Etymology          []string `json:"etymology,omitempty"`
	LearnerDefinitions []string `json:"learner_definitions,omitempty"`
}

// IsEmpty reports whether processing produced nothing usable.
func (e *CollegiateEntry) IsEmpty() bool {
	return e.Headword == "" && e.PartOfSpeech == "" &&
		len(e.Stems) == 0 && len(e.Pronunciations) == 0 &&
		len(e.Inflections) == 0 && len(e.Definitions) == 0 &&
		len(e.Examples) == 0 && e.SynonymsParagraph == "" &&
		len(e.Etymology) == 0 && len(e.LearnerDefinitions) == 0
}

// ThesaurusResult holds flattened synonym and antonym lists for one
// word, deduplicated in first-seen order.
type ThesaurusResult struct {
	Synonyms []string `json:"synonyms,omitempty"`
	Antonyms []string `json:"antonyms,omitempty"`
}

// ProcessCollegiate filters and flattens raw collegiate entries.
// Geographic names are always dropped; with mainOnly set, entries that
// are not direct definitions of word (compounds, idioms, run-ons) are
// dropped too.
func ProcessCollegiate(entries []Entry, word string, mainOnly bool, limits types.Limits) []CollegiateEntry {
	var out []CollegiateEntry
	for i := range entries {
		raw := &entries[i]
		if raw.FL == "geographical name" {
			continue
		}
		if mainOnly && !raw.IsMainEntry(word) {
			continue
		}

		entry := CollegiateEntry{
			Headword:     raw.Headword(),
			PartOfSpeech: raw.FL,
			Stems:        raw.Meta.Stems,
			Definitions:  RenderDefinitions(raw.Def, limits.MaxDefinitions),
		}

		for _, pr := range raw.HWI.Prs {
			if pr.MW != "" {
				entry.Pronunciations = append(entry.Pronunciations, pr.MW)
			}
		}
		for _, in := range raw.Ins {
			if in.IF != "" {
				entry.Inflections = append(entry.Inflections, in.IF)
			}
		}

		// Curated examples from the supplement replace the ones mined
		// out of the def structure when present.
		entry.Examples = ExtractExamples(raw.Def)
		if raw.Suppl != nil {
			var curated []string
			for _, ex := range capSlice(raw.Suppl.Examples, limits.MaxSynonymGroups) {
				if t := CleanMarkup(ex.T); t != "" {
					curated = append(curated, t)
				}
			}
			if len(curated) > 0 {
				entry.Examples = curated
			}
			entry.LearnerDefinitions = learnerDefinitions(raw.Suppl.LDQ, limits)
		}

		if len(raw.Syns) > 0 {
			entry.SynonymsParagraph = RenderSynonymsParagraph(raw.Syns[0])
		}
		for _, item := range raw.Et {
			if item.Kind != "text" {
				continue
			}
			if t := CleanMarkup(item.Text); t != "" {
				entry.Etymology = append(entry.Etymology, t)
			}
		}

		if !entry.IsEmpty() {
			out = append(out, entry)
		}
	}
	return out
}

// learnerDefinitions pulls the first sense text of each learner's
// dictionary sense sequence, over at most two def blocks.
func learnerDefinitions(ldq *LearnerData, limits types.Limits) []string {
	if ldq == nil {
		return nil
	}
	var defs []string
	for _, block := range capSlice(ldq.Def, 2) {
		for _, seq := range capSlice(block.Sseq, limits.MaxSensesPerEntry) {
			for _, tuple := range seq {
				if tuple.Kind != "sense" || tuple.Sense == nil {
					continue
				}
				if text := tuple.Sense.Dt.Text(); text != "" {
					defs = append(defs, text)
				}
				break
			}
		}
	}
	return defs
}

// ProcessThesaurus flattens thesaurus entries into synonym and antonym
// lists. Per-sense word lists are preferred; the coarse meta groups are
// a fallback used only for entries whose def structure yielded nothing.
// Returns nil when the entries carry no synonyms or antonyms at all.
func ProcessThesaurus(entries []Entry, limits types.Limits) *ThesaurusResult {
	var synonyms, antonyms []string

	for i := range entries {
		raw := &entries[i]
		senseSeen := false
		for _, block := range raw.Def {
			for _, seq := range capSlice(block.Sseq, limits.MaxSensesPerEntry) {
				for _, tuple := range seq {
					if tuple.Kind != "sense" || tuple.Sense == nil {
						continue
					}
					s := tuple.Sense
					if len(s.SynList) > 0 {
						for _, w := range capSlice(s.SynList[0], limits.MaxSynonyms) {
							if w.WD != "" {
								synonyms = append(synonyms, w.WD)
							}
						}
					}
					if len(s.AntList) > 0 {
						for _, w := range capSlice(s.AntList[0], limits.MaxAntonyms) {
							if w.WD != "" {
								antonyms = append(antonyms, w.WD)
							}
						}
					}
					senseSeen = true
				}
			}
		}

		if !senseSeen {
			for _, group := range capSlice(raw.Meta.Syns, limits.MaxSynonymGroups) {
				synonyms = append(synonyms, capSlice(group, limits.MaxWordsPerGroup)...)
			}
			for _, group := range capSlice(raw.Meta.Ants, limits.MaxSynonymGroups) {
				antonyms = append(antonyms, capSlice(group, limits.MaxWordsPerGroup)...)
			}
		}
	}

	synonyms = dedupe(synonyms)
	antonyms = dedupe(antonyms)
	if len(synonyms) == 0 && len(antonyms) == 0 {
		return nil
	}
	return &ThesaurusResult{Synonyms: synonyms, Antonyms: antonyms}
}

// RenderSynonymsParagraph formats a collegiate synonym-discussion
// paragraph: each text run is followed by its quoted illustrations,
// runs separated by blank lines.
func RenderSynonymsParagraph(para SynonymsPara) string {
	var sections []string
	current := ""

	for _, item := range para.PT {
		switch item.Kind {
		case "text":
			if text := strings.TrimSpace(CleanMarkup(item.Text)); text != "" {
				current = text
			}
		case "vis":
			var quoted []string
			for _, v := range item.Examples {
				if ex := strings.TrimSpace(CleanMarkup(v.T)); ex != "" {
					quoted = append(quoted, fmt.Sprintf(`<em>"%s"</em>`, ex))
				}
			}
			if current == "" {
				continue
			}
			section := current
			if len(quoted) > 0 {
				section += "<br>    " + strings.Join(quoted, " | ")
			}
			sections = append(sections, section)
			current = ""
		}
	}
	if current != "" {
		sections = append(sections, current)
	}
	return strings.Join(sections, "<br><br>")
}

func capSlice[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}

func dedupe(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
