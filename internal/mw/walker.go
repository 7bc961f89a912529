// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mw

import "fmt"

// RenderDefinitions walks the def blocks of an entry and renders the
// numbered definition list as display strings. Numbering restarts at 1
// in every def block; a verb divider ("transitive verb", ...) is
// emitted as its own list item ahead of the block's definitions.
//
// Each sense sequence becomes one item. A sequence holds either a lone
// sense ("1. text"), lettered sub-senses ("1. a. text" plus markup
// spans for b, c, ...), or a binding substitute whose text heads the
// lettered list ("3. a planned undertaking : such as"). Sub-sense
// letters are assigned by position, so a sense with no usable text
// still consumes its letter.
//
// At most max items are produced; once the cap is reached the remaining
// sequences and blocks are abandoned.
func RenderDefinitions(blocks []DefBlock, max int) []string {
	var defs []string
	full := func() bool { return max > 0 && len(defs) >= max }

	for _, block := range blocks {
		if full() {
			break
		}
		if block.VD != "" {
			defs = append(defs, fmt.Sprintf(`<span class="mw-verb-divider">%s</span>`, block.VD))
		}

		for seqIdx, seq := range block.Sseq {
			if full() {
				break
			}
			num := seqIdx + 1

			// Split the tuples: a binding substitute heads the
			// sequence; regular senses become its sub-items. When
			// several bs tuples appear the last one wins.
			var bs *Sense
			var senses []*Sense
			for _, tuple := range seq {
				switch tuple.Kind {
				case "bs":
					bs = tuple.Sense
				case "sense":
					senses = append(senses, tuple.Sense)
				}
			}

			if bs != nil && len(senses) > 0 {
				if item := renderHeadedSequence(num, bs, senses); item != "" {
					defs = append(defs, item)
				}
				continue
			}

			if bs != nil {
				senses = append([]*Sense{bs}, senses...)
			}
			switch len(senses) {
			case 0:
			case 1:
				if text := senseText(senses[0]); text != "" {
					defs = append(defs, fmt.Sprintf("%d. %s", num, text))
				}
			default:
				if item := renderLetteredSequence(num, senses); item != "" {
					defs = append(defs, item)
				}
			}
		}
	}

	if max > 0 && len(defs) > max {
		defs = defs[:max]
	}
	return defs
}

// renderHeadedSequence renders a binding substitute followed by its
// lettered sub-senses. An empty substitute text drops the whole
// sequence. Sub-senses do not carry sdsense continuations here.
func renderHeadedSequence(num int, bs *Sense, senses []*Sense) string {
	head := bs.Dt.Text()
	if head == "" {
		return ""
	}
	item := fmt.Sprintf("%d. %s", num, head)
	for i, s := range senses {
		text := s.Dt.Text()
		if text == "" {
			continue
		}
		item += "<br>" + subSenseSpan(letter(i), text)
	}
	return item
}

// renderLetteredSequence renders the a/b/c sub-senses of one numbered
// sense. The first usable sub-sense carries the number inline; later
// ones render as marked sub-definition spans.
func renderLetteredSequence(num int, senses []*Sense) string {
	var parts []string
	for i, s := range senses {
		text := senseText(s)
		if text == "" {
			continue
		}
		if i == 0 {
			parts = append(parts, fmt.Sprintf("%d. %s. %s", num, letter(i), text))
		} else {
			parts = append(parts, subSenseSpan(letter(i), text))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	item := parts[0]
	for _, p := range parts[1:] {
		item += "<br>" + p
	}
	return item
}

// senseText renders a sense's defining text with its divided-sense
// continuation appended as "; also: ...".
func senseText(s *Sense) string {
	text := s.Dt.Text()
	if s.Sdsense != nil {
		if also := s.Sdsense.Dt.Text(); also != "" {
			if text != "" {
				text += "; also: " + also
			} else {
				text = "also: " + also
			}
		}
	}
	return text
}

func subSenseSpan(marker, text string) string {
	return fmt.Sprintf(`<span class="mw-sub-definition">`+
		`<span class="mw-sub-marker">%s.</span>`+
		`<span class="mw-sub-text">%s</span>`+
		`</span>`, marker, text)
}

func letter(i int) string {
	return string(rune('a' + i))
}

// ExtractExamples collects every verbal illustration under the def
// blocks, in document order, including those inside divided senses.
func ExtractExamples(blocks []DefBlock) []string {
	var examples []string
	for _, block := range blocks {
		for _, seq := range block.Sseq {
			for _, tuple := range seq {
				if tuple.Kind != "sense" || tuple.Sense == nil {
					continue
				}
				examples = append(examples, tuple.Sense.Dt.Illustrations()...)
				if tuple.Sense.Sdsense != nil {
					examples = append(examples, tuple.Sense.Sdsense.Dt.Illustrations()...)
				}
			}
		}
	}
	return examples
}
