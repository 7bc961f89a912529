// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mw

import (
	"regexp"
	"strings"
)

// markupStep is one pass of the tag interpreter: a pattern and its
// replacement, applied in order. Order matters — later steps assume the
// earlier ones already ran (the catch-all strip must come last).
type markupStep struct {
	re   *regexp.Regexp
	repl string
}

// paramTags are the parameterized reference tags of the form
// {tag|arg1|arg2...}; interpretation keeps only the first argument.
var paramTags = []string{
	"a_link", "sx", "d_link", "dx", "et_link", "mat", "dxt", "inf", "ma",
}

var markupPipeline = buildMarkupPipeline()

func buildMarkupPipeline() []markupStep {
	steps := []markupStep{
		// Paired styling tags: keep the inner text.
		{regexp.MustCompile(`\{it\}(.*?)\{/it\}`), "$1"},
		{regexp.MustCompile(`\{wi\}(.*?)\{/wi\}`), "$1"},
		{regexp.MustCompile(`\{sc\}(.*?)\{/sc\}`), "$1"},
	}

	// The {bc} marker is handled outside the table; see CleanMarkup.

	for _, tag := range paramTags {
		steps = append(steps, markupStep{
			regexp.MustCompile(`\{` + tag + `\|([^}|]+)(?:\|[^}]*)?\}`), "$1",
		})
	}

	steps = append(steps,
		// Structural markers removed entirely.
		markupStep{regexp.MustCompile(`\{ds\|[^}]*\}`), ""},
		markupStep{regexp.MustCompile(`\{ldquo\}`), `"`},
		markupStep{regexp.MustCompile(`\{rdquo\}`), `"`},
		markupStep{regexp.MustCompile(`\{ldq\}`), `"`},
		markupStep{regexp.MustCompile(`\{rdq\}`), `"`},
		// Orphaned closing tags, then anything brace-shaped that survived.
		markupStep{regexp.MustCompile(`\{/[^}]+\}`), ""},
		markupStep{regexp.MustCompile(`\{[^}]*\}`), ""},
		// Whitespace collapse.
		markupStep{regexp.MustCompile(`\s+`), " "},
	)
	return steps
}

// CleanMarkup converts Merriam-Webster inline markup to display text.
// It is idempotent on already-clean text and never fails on malformed
// input: unrecognized tags are stripped.
//
// The {bc} marker is positional: the first occurrence opens the
// definition and becomes a single space; every later occurrence
// introduces a synonym or explanation clause and becomes " : ".
func CleanMarkup(text string) string {
	if text == "" {
		return ""
	}

	s := text

	// Paired styling tags run before the bc split so that a {bc} inside
	// styled text is still counted positionally.
	for _, step := range markupPipeline[:3] {
		s = step.re.ReplaceAllString(s, step.repl)
	}

	if strings.Contains(s, "{bc}") {
		s = strings.Replace(s, "{bc}", " ", 1)
		s = strings.ReplaceAll(s, "{bc}", " : ")
	}

	for _, step := range markupPipeline[3:] {
		s = step.re.ReplaceAllString(s, step.repl)
	}

	return strings.TrimSpace(s)
}
