// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package card

import (
	"fmt"
	"strings"
)

// FrontTemplate renders the question side: the word, its phonetics, and
// pronunciation audio.
func FrontTemplate() string {
	return `<div class="word-section">
  <div class="word">{{Word}}</div>
  <div class="phonetics">
    {{#USPhonetic}}<span class="phonetic">US {{USPhonetic}}</span>{{/USPhonetic}}
    {{#UKPhonetic}}<span class="phonetic">UK {{UKPhonetic}}</span>{{/UKPhonetic}}
  </div>
  {{#USAudio}}[sound:{{USAudio}}]{{/USAudio}}
  {{#UKAudio}}[sound:{{UKAudio}}]{{/UKAudio}}
</div>`
}

// BackTemplate renders the answer side: the numbered vocabulary and
// Merriam-Webster entries plus the supporting scalar fields.
func BackTemplate() string {
	var b strings.Builder
	b.WriteString("{{FrontSide}}\n<hr id=\"answer\">\n")

	b.WriteString(`{{#VocabShortExplanation}}<div class="short-explanation">{{VocabShortExplanation}}</div>{{/VocabShortExplanation}}
{{#VocabLongExplanation}}<div class="long-explanation">{{VocabLongExplanation}}</div>{{/VocabLongExplanation}}
<div class="vocab-entries">
`)
	for i := 1; i <= MaxNumberedEntries; i++ {
		name := VocabEntryField(i)
		fmt.Fprintf(&b, "  {{#%s}}<div class=\"vocab-entry\">%d. {{%s}}</div>{{/%s}}\n", name, i, name, name)
	}
	b.WriteString(`</div>
{{#VocabWordForms}}<div class="word-forms">Other forms: {{VocabWordForms}}</div>{{/VocabWordForms}}
<div class="mw-section">
  {{#MWStems}}<div class="mw-stems">{{MWStems}}</div>{{/MWStems}}
`)
	for i := 1; i <= MaxNumberedEntries; i++ {
		name := MWStructuredEntryField(i)
		fmt.Fprintf(&b, "  {{#%s}}<div class=\"mw-entry\">{{%s}}</div>{{/%s}}\n", name, name, name)
	}
	b.WriteString(`  {{#MWPronunciation}}<div class="mw-pronunciation">{{MWPronunciation}}</div>{{/MWPronunciation}}
  {{#MWWordInflections}}<div class="mw-inflections">{{MWWordInflections}}</div>{{/MWWordInflections}}
  {{#MWLearnerDefinitions}}<div class="mw-learner">{{MWLearnerDefinitions}}</div>{{/MWLearnerDefinitions}}
  {{#MWExamples}}<div class="mw-examples">{{MWExamples}}</div>{{/MWExamples}}
  {{#MWSynonyms}}<div class="mw-synonyms">Synonyms: {{MWSynonyms}}</div>{{/MWSynonyms}}
  {{#MWAntonyms}}<div class="mw-antonyms">Antonyms: {{MWAntonyms}}</div>{{/MWAntonyms}}
  {{#MWCollegiateSynonyms}}<div class="mw-collegiate-synonyms">{{MWCollegiateSynonyms}}</div>{{/MWCollegiateSynonyms}}
  {{#MWEtymology}}<div class="mw-etymology">{{MWEtymology}}</div>{{/MWEtymology}}
</div>
{{#Etymology}}<div class="etymology">{{Etymology}}</div>{{/Etymology}}`)
	return b.String()
}

// CSS styles both card sides.
func CSS() string {
	return `.card {
  font-family: -apple-system, "Segoe UI", sans-serif;
  font-size: 18px;
  text-align: left;
  color: #1a1a2e;
  background-color: #fdfdfd;
  padding: 16px;
}
.word { font-size: 32px; font-weight: bold; }
.phonetic { color: #555; margin-right: 12px; }
.vocab-entry, .mw-entry { margin: 8px 0; }
.vocab-part-of-speech { color: #7b2cbf; font-style: italic; margin-right: 4px; }
.example { color: #444; }
.synonyms, .antonyms { font-size: 15px; color: #333; }
.mw-verb-divider { font-style: italic; color: #7b2cbf; }
.mw-sub-definition { display: block; margin-left: 1.5em; }
.mw-sub-marker { font-weight: bold; margin-right: 4px; }
.word-forms, .mw-stems { font-size: 15px; color: #555; margin-top: 8px; }
.short-explanation { font-weight: 500; margin: 8px 0; }
.long-explanation { margin-bottom: 12px; }
.mw-section { border-top: 1px solid #ddd; margin-top: 12px; padding-top: 8px; }`
}
