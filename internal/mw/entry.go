// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mw

import (
	"encoding/json"
	"strings"
)

// Entry is one entry from the Merriam-Webster JSON APIs. The same shape
// serves both the collegiate and thesaurus references; thesaurus-only
// fields are simply absent in collegiate responses.
type Entry struct {
	Meta     Meta            `json:"meta"`
	Hom      *int            `json:"hom"`
	HWI      HeadwordInfo    `json:"hwi"`
	FL       string          `json:"fl"`
	Ins      []Inflection    `json:"ins"`
	Def      []DefBlock      `json:"def"`
	Et       DefText         `json:"et"`
	Suppl    *Supplement     `json:"suppl"`
	ShortDef []string        `json:"shortdef"`
	Syns     []SynonymsPara  `json:"syns"`
	Raw      json.RawMessage `json:"-"`
}

// Meta carries entry identity and, for the thesaurus, the synonym and
// antonym word groups.
type Meta struct {
	ID      string       `json:"id"`
	UUID    string       `json:"uuid"`
	Stems   []string     `json:"stems"`
	Syns    [][]string   `json:"syns"`
	Ants    [][]string   `json:"ants"`
	Section string       `json:"section"`
	Target  *MetaTarget  `json:"target"`
}

// MetaTarget is present on subentries that point at their parent entry.
type MetaTarget struct {
	TUUID string `json:"tuuid"`
	TSrc  string `json:"tsrc"`
}

type HeadwordInfo struct {
	HW  string          `json:"hw"`
	Prs []Pronunciation `json:"prs"`
}

type Pronunciation struct {
	MW    string `json:"mw"`
	Sound *Sound `json:"sound"`
}

type Sound struct {
	Audio string `json:"audio"`
}

type Inflection struct {
	IF string `json:"if"`
	IL string `json:"il"`
}

// DefBlock is one def[] block: an optional verb divider plus a sense
// sequence.
type DefBlock struct {
	VD   string     `json:"vd"`
	Sseq []SenseSeq `json:"sseq"`
}

// SenseSeq is one item of sseq: a list of sense tuples sharing a sense
// number (a lone sense, or the a/b/c sub-senses of a numbered sense).
type SenseSeq []SenseTuple

// SenseTuple is one ["kind", {...}] pair inside a sense sequence.
// Unrecognized or malformed tuples decode to an inert tuple with an
// empty Kind so one bad element never sinks the entry.
type SenseTuple struct {
	Kind  string
	Sense *Sense
}

func (t *SenseTuple) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || len(raw) < 2 {
		*t = SenseTuple{}
		return nil
	}
	var kind string
	if err := json.Unmarshal(raw[0], &kind); err != nil {
		*t = SenseTuple{}
		return nil
	}
	switch kind {
	case "sense":
		var s Sense
		if err := json.Unmarshal(raw[1], &s); err != nil {
			*t = SenseTuple{}
			return nil
		}
		*t = SenseTuple{Kind: "sense", Sense: &s}
	case "bs":
		var wrap struct {
			Sense *Sense `json:"sense"`
		}
		if err := json.Unmarshal(raw[1], &wrap); err != nil || wrap.Sense == nil {
			*t = SenseTuple{}
			return nil
		}
		*t = SenseTuple{Kind: "bs", Sense: wrap.Sense}
	default:
		*t = SenseTuple{}
	}
	return nil
}

// Sense is a sense or binding-substitute body. Dt holds the defining
// text; Sdsense is a divided sense ("; also" continuations); SynList
// and AntList are the thesaurus per-sense word lists.
type Sense struct {
	SN      string           `json:"sn"`
	Dt      DefText          `json:"dt"`
	Sdsense *DividedSense    `json:"sdsense"`
	SynList [][]ThesaurusWord `json:"syn_list"`
	AntList [][]ThesaurusWord `json:"ant_list"`
}

type DividedSense struct {
	SD string  `json:"sd"`
	Dt DefText `json:"dt"`
}

type ThesaurusWord struct {
	WD string `json:"wd"`
}

// DefText is a dt-style array of ["kind", payload] items. It is also
// reused for et and for the pt of a synonyms paragraph, which share the
// shape.
type DefText []DtItem

// DtItem is one element of a DefText. Text items carry markup in Text;
// vis items carry verbal illustrations in Examples. Other kinds (uns,
// ca, snote...) are kept by kind with their payload ignored.
type DtItem struct {
	Kind     string
	Text     string
	Examples []VerbalIllustration
}

type VerbalIllustration struct {
	T string `json:"t"`
}

func (d *DtItem) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || len(raw) < 2 {
		// et lists occasionally carry object-form items instead of
		// the tagged-array shape.
		var obj struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(data, &obj); err == nil && obj.Text != "" {
			*d = DtItem{Kind: "text", Text: obj.Text}
			return nil
		}
		*d = DtItem{}
		return nil
	}
	var kind string
	if err := json.Unmarshal(raw[0], &kind); err != nil {
		*d = DtItem{}
		return nil
	}
	d.Kind = kind
	switch kind {
	case "text":
		var s string
		if err := json.Unmarshal(raw[1], &s); err != nil {
			*d = DtItem{}
			return nil
		}
		d.Text = s
	case "vis":
		var vis []VerbalIllustration
		if err := json.Unmarshal(raw[1], &vis); err != nil {
			return nil
		}
		d.Examples = vis
	}
	return nil
}

// Text returns the first text item of a DefText, cleaned of markup.
func (d DefText) Text() string {
	for _, item := range d {
		if item.Kind == "text" {
			return CleanMarkup(item.Text)
		}
	}
	return ""
}

// Illustrations returns all verbal illustrations of a DefText, cleaned
// of markup, in order.
func (d DefText) Illustrations() []string {
	var out []string
	for _, item := range d {
		if item.Kind != "vis" {
			continue
		}
		for _, v := range item.Examples {
			if t := CleanMarkup(v.T); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// Supplement carries learner's-dictionary extras: curated example
// sentences and a long explanation.
type Supplement struct {
	Examples []VerbalIllustration `json:"examples"`
	LDQ      *LearnerData         `json:"ldq"`
}

type LearnerData struct {
	LDHW string     `json:"ldhw"`
	FL   string     `json:"fl"`
	Def  []DefBlock `json:"def"`
}

// SynonymsPara is one syns[] block of a collegiate entry: a titled
// discussion paragraph in dt shape.
type SynonymsPara struct {
	PL string  `json:"pl"`
	PT DefText `json:"pt"`
}

// Headword returns the entry headword with syllable points removed.
func (e *Entry) Headword() string {
	return strings.ReplaceAll(e.HWI.HW, "*", "")
}

// IsMainEntry reports whether the entry is a direct definition of word,
// as opposed to a compound, idiom, or cross-reference that merely
// matched the query. The meta id of a main entry is either the word
// itself or, when the entry carries a homograph index, the word
// followed by ":N".
func (e *Entry) IsMainEntry(word string) bool {
	if e.Meta.ID == word {
		return true
	}
	if e.Hom != nil {
		return strings.HasPrefix(e.Meta.ID, word+":")
	}
	return false
}
