// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab fetches word pages from vocabulary.com and extracts
// definitions, phonetics, word forms, and usage blurbs from their HTML.
package vocab

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tkoval/anki-vocab/internal/textutil"
	"github.com/tkoval/anki-vocab/pkg/types"
)

var (
	formSplitRe  = regexp.MustCompile(`[;,]\s*`)
	otherFormsRe = regexp.MustCompile(`(?i)Other\s+forms:\s*(.+)$`)
)

// posNames normalizes part-of-speech markers to their full lowercase
// names.
var posNames = map[string]string{
	"n":            "noun",
	"noun":         "noun",
	"v":            "verb",
	"verb":         "verb",
	"adj":          "adjective",
	"adjective":    "adjective",
	"adv":          "adverb",
	"adverb":       "adverb",
	"prep":         "preposition",
	"preposition":  "preposition",
	"conj":         "conjunction",
	"conjunction":  "conjunction",
	"pron":         "pronoun",
	"pronoun":      "pronoun",
	"interj":       "interjection",
	"interjection": "interjection",
}

var posPunctRe = regexp.MustCompile(`[^\w\s]`)

func normalizePartOfSpeech(pos string) string {
	pos = strings.TrimSpace(strings.ToLower(pos))
	pos = posPunctRe.ReplaceAllString(pos, "")
	if full, ok := posNames[pos]; ok {
		return full
	}
	return pos
}

// ParseDocument extracts everything usable from one word's dictionary
// page fragment. Missing containers simply contribute nothing; the
// result is nil-safe but may be empty (check HasContent).
func ParseDocument(doc *goquery.Document, word string, limits types.Limits) *types.WordInfo {
	info := &types.WordInfo{
		Word:   word,
		Source: "vocabulary.com",
	}
	if info.Word == "" {
		info.Word = strings.TrimSpace(doc.Find("#hdr-word-area").First().Text())
	}

	info.Phonetics = extractPhonetics(doc)
	info.Definitions = extractDefinitions(doc, limits)
	info.WordForms = extractWordForms(doc, limits)

	if s := textutil.CleanText(doc.Find(".short").First().Text()); s != "" {
		info.ShortExplanation = s
	}
	if l := textutil.CleanText(doc.Find(".long").First().Text()); l != "" {
		info.LongExplanation = l
	}
	return info
}

// extractPhonetics reads the IPA blocks. A block's transcription is the
// first span whose text is slash-delimited; the accent label comes from
// the flag icon, and blocks without one fill whichever slot is free.
func extractPhonetics(doc *goquery.Document) types.Phonetics {
	var ph types.Phonetics
	var unlabeled []string
	seen := map[string]struct{}{}

	doc.Find(".ipa-section, .ipa-section-with-def").Each(func(_ int, section *goquery.Selection) {
		section.Find(".ipa-with-audio").Each(func(_ int, block *goquery.Selection) {
			ipa := ""
			block.Find(".span-replace-h3").EachWithBreak(func(_ int, span *goquery.Selection) bool {
				text := strings.TrimSpace(span.Text())
				if strings.HasPrefix(text, "/") && strings.HasSuffix(text, "/") {
					ipa = text
					return false
				}
				return true
			})
			if ipa == "" {
				return
			}

			label := ""
			if block.Find(".us-flag-icon").Length() > 0 {
				label = "US"
			} else if block.Find(".uk-flag-icon").Length() > 0 {
				label = "UK"
			}
			key := label + ipa
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}

			// Idempotent here, but keeps the /…/ invariant local to
			// the assignment rather than trusting the selector.
			ipa = textutil.WrapSlashes(ipa)

			switch label {
			case "US":
				if ph.US == "" {
					ph.US = ipa
				}
			case "UK":
				if ph.UK == "" {
					ph.UK = ipa
				}
			default:
				unlabeled = append(unlabeled, ipa)
			}
		})
	})

	for _, ipa := range unlabeled {
		switch {
		case ph.US == "":
			ph.US = ipa
		case ph.UK == "":
			ph.UK = ipa
		default:
			ph.US += " / " + ipa
		}
	}
	return ph
}

// extractDefinitions walks every definitions container and its ordered
// sense list. Senses with no definition text after cleaning are
// dropped. Collection stops dead once the definitions cap is reached,
// abandoning any remaining senses and containers.
func extractDefinitions(doc *goquery.Document, limits types.Limits) []types.WordDefinition {
	var defs []types.WordDefinition
	full := false

	doc.Find(".word-definitions").EachWithBreak(func(_ int, wrap *goquery.Selection) bool {
		wrap.Find("ol > li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
			if limits.MaxDefinitions > 0 && len(defs) >= limits.MaxDefinitions {
				full = true
				return false
			}
			if def, ok := extractSense(li, limits); ok {
				defs = append(defs, def)
			}
			return true
		})
		return !full
	})
	return defs
}

// extractSense reads one sense list item: part of speech, definition
// text (with the embedded pos marker excluded), examples, and labeled
// synonym/antonym groups.
func extractSense(li *goquery.Selection, limits types.Limits) (types.WordDefinition, bool) {
	var def types.WordDefinition

	if posEl := li.Find(".pos-icon").First(); posEl.Length() > 0 {
		def.PartOfSpeech = normalizePartOfSpeech(posEl.Text())
	}

	defEl := li.Find(".definition").First()
	if defEl.Length() == 0 {
		return def, false
	}
	body := defEl.Clone()
	body.Find(".pos-icon").Remove()
	def.Definition = textutil.CleanText(body.Text())
	if def.Definition == "" {
		return def, false
	}

	li.Find(".defContent .example").Each(func(_ int, ex *goquery.Selection) {
		if limits.MaxExamples > 0 && len(def.Examples) >= limits.MaxExamples {
			return
		}
		text := textutil.CleanText(ex.Text())
		if text != "" && !contains(def.Examples, text) {
			def.Examples = append(def.Examples, text)
		}
	})

	def.Synonyms, def.Antonyms = extractRelatedWords(li, limits)
	return def, true
}

// extractRelatedWords collects the synonym and antonym word groups of a
// sense. A group's label decides the list it feeds; an unlabeled group
// continues the most recent labeled one, and unrelated labels ("types",
// "type of") neither contribute nor change the continuation target.
func extractRelatedWords(li *goquery.Selection, limits types.Limits) (synonyms, antonyms []string) {
	last := ""

	li.Find(".div-replace-dl.instances").Each(func(_ int, inst *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(inst.Find(".detail").First().Text()))

		section := ""
		switch {
		case strings.Contains(label, "synonym"):
			section = "synonyms"
			last = section
		case strings.Contains(label, "antonym"):
			section = "antonyms"
			last = section
		case label == "":
			section = last
		}
		if section == "" {
			return
		}

		inst.Find("a.word").Each(func(_ int, a *goquery.Selection) {
			word := strings.TrimSpace(a.Text())
			if word == "" {
				return
			}
			switch section {
			case "synonyms":
				if !contains(synonyms, word) {
					synonyms = append(synonyms, word)
				}
			case "antonyms":
				if !contains(antonyms, word) {
					antonyms = append(antonyms, word)
				}
			}
		})
	})

	if limits.MaxSynonyms > 0 && len(synonyms) > limits.MaxSynonyms {
		synonyms = synonyms[:limits.MaxSynonyms]
	}
	if limits.MaxAntonyms > 0 && len(antonyms) > limits.MaxAntonyms {
		antonyms = antonyms[:limits.MaxAntonyms]
	}
	return synonyms, antonyms
}

// extractWordForms reads the "Other forms:" paragraphs, preferring the
// bolded items and falling back to the trailing text. The headword
// itself is filtered out.
func extractWordForms(doc *goquery.Document, limits types.Limits) []string {
	var forms []string

	doc.Find("p.word-forms").Each(func(_ int, pf *goquery.Selection) {
		var vals []string
		pf.Find("b").Each(func(_ int, b *goquery.Selection) {
			for _, v := range formSplitRe.Split(strings.TrimSpace(b.Text()), -1) {
				if v = strings.TrimSpace(v); v != "" {
					vals = append(vals, v)
				}
			}
		})
		if len(vals) == 0 {
			if m := otherFormsRe.FindStringSubmatch(textutil.CleanText(pf.Text())); m != nil {
				for _, v := range formSplitRe.Split(m[1], -1) {
					if v = strings.TrimSpace(v); v != "" {
						vals = append(vals, v)
					}
				}
			}
		}
		for _, v := range vals {
			if !contains(forms, v) {
				forms = append(forms, v)
			}
		}
	})

	head := strings.ToLower(strings.TrimSpace(doc.Find("#hdr-word-area").First().Text()))
	var clean []string
	for _, f := range forms {
		if strings.ToLower(f) == head {
			continue
		}
		if !contains(clean, f) {
			clean = append(clean, f)
		}
	}
	if limits.MaxWordForms > 0 && len(clean) > limits.MaxWordForms {
		clean = clean[:limits.MaxWordForms]
	}
	return clean
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
