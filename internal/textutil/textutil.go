// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil provides the text cleaning and validation helpers shared
// by the extraction and composition pipelines: word validation, HTML
// stripping, part-of-speech abbreviation, and phonetic normalization. All
// functions are pure.
package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	validWordRe  = regexp.MustCompile(`^[a-zA-Z](?:[a-zA-Z\s\-']*[a-zA-Z])?$`)
)

const (
	minWordLength = 1
	maxWordLength = 50
)

// rejectedExtensions are file suffixes that mark an input line as a stray
// filename rather than a word.
var rejectedExtensions = []string{
	".txt", ".doc", ".pdf", ".md", ".py", ".js", ".go",
	".html", ".docx", ".xlsx", ".json", ".xml", ".csv",
}

type posEntry struct {
	full   string
	abbrev string
}

// posAbbreviations maps full part-of-speech names to display
// abbreviations. Kept as an ordered list: the substring fallback in
// AbbreviatePartOfSpeech must always pick the same entry for inputs
// like "transitive verb" that contain several names.
var posAbbreviations = []posEntry{
	{"noun", "n."},
	{"verb", "v."},
	{"adjective", "adj."},
	{"adverb", "adv."},
	{"pronoun", "pron."},
	{"preposition", "prep."},
	{"conjunction", "conj."},
	{"interjection", "interj."},
	{"article", "art."},
	{"determiner", "det."},
	{"auxiliary", "aux."},
	{"modal", "modal"},
	{"participle", "part."},
	{"gerund", "ger."},
	{"infinitive", "inf."},
	{"exclamation", "excl."},
	{"phrasal verb", "phr. v."},
	{"transitive", "vt."},
	{"intransitive", "vi."},
	{"countable", "C"},
	{"uncountable", "U"},
	{"plural", "pl."},
	{"singular", "sing."},
}

// IsValidWord reports whether the input is a usable word or phrase:
// letters, spaces, hyphens and apostrophes only, starting and ending with a
// letter, within length bounds, and not a filename or path.
func IsValidWord(word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	if len(word) < minWordLength || len(word) > maxWordLength {
		return false
	}
	if !validWordRe.MatchString(word) {
		return false
	}
	lower := strings.ToLower(word)
	for _, ext := range rejectedExtensions {
		if strings.HasSuffix(lower, ext) {
			return false
		}
	}
	if strings.ContainsAny(word, `/\`) {
		return false
	}
	return true
}

// CleanWord lowercases the input, normalizes whitespace, and validates
// it. It returns the cleaned word, or "" when the input is not a valid
// word. Lowercasing keeps cache keys and duplicate-note queries stable
// across input casings.
func CleanWord(word string) string {
	if word == "" {
		return ""
	}
	word = strings.ToLower(whitespaceRe.ReplaceAllString(strings.TrimSpace(word), " "))
	if !IsValidWord(word) {
		return ""
	}
	return word
}

// CleanText strips HTML tags and collapses whitespace runs to single
// spaces.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = htmlTagRe.ReplaceAllString(text, "")
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
}

// WrapSlashes normalizes a phonetic transcription to the /…/ form.
func WrapSlashes(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
		return s
	}
	return "/" + s + "/"
}

// AbbreviatePartOfSpeech converts a part of speech to its display
// abbreviation. Unknown values are matched by substring, then truncated
// when longer than eight characters.
func AbbreviatePartOfSpeech(part string) string {
	if part == "" {
		return ""
	}
	clean := strings.ToLower(strings.TrimSpace(part))

	for _, e := range posAbbreviations {
		if clean == e.full {
			return e.abbrev
		}
	}
	for _, e := range posAbbreviations {
		if strings.Contains(clean, e.full) {
			return e.abbrev
		}
	}
	if len(clean) > 8 {
		return clean[:8] + "."
	}
	return clean
}

// BoldWord wraps whole-word, case-insensitive occurrences of word in
// <b> tags. On a bad pattern the text is returned unchanged.
func BoldWord(text, word string) string {
	if text == "" || word == "" {
		return text
	}
	re, err := regexp.Compile(`(?i)\b(` + regexp.QuoteMeta(word) + `)\b`)
	if err != nil {
		return text
	}
	return re.ReplaceAllString(text, "<b>$1</b>")
}
