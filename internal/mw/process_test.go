// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mw

import (
	"reflect"
	"testing"

	"github.com/tkoval/anki-vocab/pkg/types"
)

func TestProcessCollegiate(t *testing.T) {
	one := 1
	entries := []Entry{
		{
			Meta: Meta{ID: "design:1", Stems: []string{"design", "designs"}},
			Hom:  &one,
			HWI: HeadwordInfo{
				HW:  "de*sign",
				Prs: []Pronunciation{{MW: "di-ˈzīn"}},
			},
			FL:  "noun",
			Ins: []Inflection{{IF: "de*signs"}},
			Def: []DefBlock{{
				Sseq: []SenseSeq{{sense("{bc}a plan or protocol")}},
			}},
			Et: DefText{{Kind: "text", Text: "from Latin {it}designare{/it}"}},
		},
		{
			Meta: Meta{ID: "graphic design"},
			FL:   "noun",
			Def:  []DefBlock{{Sseq: []SenseSeq{{sense("{bc}the art of visual composition")}}}},
		},
		{
			Meta: Meta{ID: "Designolles"},
			FL:   "geographical name",
			Def:  []DefBlock{{Sseq: []SenseSeq{{sense("{bc}a place")}}}},
		},
	}

	got := ProcessCollegiate(entries, "design", true, types.DefaultLimits())
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1 (compound and geographic dropped)", len(got))
	}

	e := got[0]
	if e.Headword != "design" {
		t.Errorf("Headword = %q, want design (syllable markers stripped)", e.Headword)
	}
	if e.PartOfSpeech != "noun" {
		t.Errorf("PartOfSpeech = %q", e.PartOfSpeech)
	}
	if !reflect.DeepEqual(e.Definitions, []string{"1. a plan or protocol"}) {
		t.Errorf("Definitions = %v", e.Definitions)
	}
	if !reflect.DeepEqual(e.Pronunciations, []string{"di-ˈzīn"}) {
		t.Errorf("Pronunciations = %v", e.Pronunciations)
	}
	if !reflect.DeepEqual(e.Inflections, []string{"de*signs"}) {
		t.Errorf("Inflections = %v", e.Inflections)
	}
	if !reflect.DeepEqual(e.Etymology, []string{"from Latin designare"}) {
		t.Errorf("Etymology = %v", e.Etymology)
	}
}

func TestProcessCollegiateWithoutFilterKeepsCompounds(t *testing.T) {
	entries := []Entry{
		{
			Meta: Meta{ID: "graphic design"},
			FL:   "noun",
			Def:  []DefBlock{{Sseq: []SenseSeq{{sense("{bc}the art of visual composition")}}}},
		},
	}
	got := ProcessCollegiate(entries, "design", false, types.DefaultLimits())
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
}

func TestProcessCollegiateCuratedExamplesReplaceMined(t *testing.T) {
	entries := []Entry{{
		Meta: Meta{ID: "design"},
		FL:   "noun",
		Def: []DefBlock{{
			Sseq: []SenseSeq{{
				{Kind: "sense", Sense: &Sense{Dt: DefText{
					{Kind: "text", Text: "{bc}a plan"},
					{Kind: "vis", Examples: []VerbalIllustration{{T: "mined example"}}},
				}}},
			}},
		}},
		Suppl: &Supplement{
			Examples: []VerbalIllustration{{T: "curated {wi}example{/wi}"}},
		},
	}}

	got := ProcessCollegiate(entries, "design", false, types.DefaultLimits())
	if len(got) != 1 {
		t.Fatalf("got %d entries", len(got))
	}
	if !reflect.DeepEqual(got[0].Examples, []string{"curated example"}) {
		t.Errorf("Examples = %v, want curated set only", got[0].Examples)
	}
}

func TestProcessCollegiateLearnerDefinitions(t *testing.T) {
	entries := []Entry{{
		Meta: Meta{ID: "design"},
		Suppl: &Supplement{
			LDQ: &LearnerData{
				Def: []DefBlock{{
					Sseq: []SenseSeq{
						{sense("{bc}to plan something")},
						{sense("{bc}to intend for a purpose")},
					},
				}},
			},
		},
	}}

	got := ProcessCollegiate(entries, "design", false, types.DefaultLimits())
	if len(got) != 1 {
		t.Fatalf("got %d entries", len(got))
	}
	want := []string{"to plan something", "to intend for a purpose"}
	if !reflect.DeepEqual(got[0].LearnerDefinitions, want) {
		t.Errorf("LearnerDefinitions = %v, want %v", got[0].LearnerDefinitions, want)
	}
}

func TestProcessThesaurusPrefersSenseLists(t *testing.T) {
	entries := []Entry{{
		Meta: Meta{
			ID:   "plan",
			Syns: [][]string{{"meta-synonym"}},
			Ants: [][]string{{"meta-antonym"}},
		},
		Def: []DefBlock{{
			Sseq: []SenseSeq{{
				{Kind: "sense", Sense: &Sense{
					Dt:      textDt("{bc}a method"),
					SynList: [][]ThesaurusWord{{{WD: "blueprint"}, {WD: "design"}, {WD: "blueprint"}}},
					AntList: [][]ThesaurusWord{{{WD: "improvisation"}}},
				}},
			}},
		}},
	}}

	got := ProcessThesaurus(entries, types.DefaultLimits())
	if got == nil {
		t.Fatal("got nil result")
	}
	if !reflect.DeepEqual(got.Synonyms, []string{"blueprint", "design"}) {
		t.Errorf("Synonyms = %v, want deduplicated sense list", got.Synonyms)
	}
	if !reflect.DeepEqual(got.Antonyms, []string{"improvisation"}) {
		t.Errorf("Antonyms = %v", got.Antonyms)
	}
}

func TestProcessThesaurusMetaFallback(t *testing.T) {
	entries := []Entry{{
		Meta: Meta{
			ID:   "plan",
			Syns: [][]string{{"a", "b", "c", "d", "e", "f", "g"}, {"h"}},
			Ants: [][]string{{"x"}},
		},
	}}

	got := ProcessThesaurus(entries, types.DefaultLimits())
	if got == nil {
		t.Fatal("got nil result")
	}
	// Groups cap at 6 words each.
	want := []string{"a", "b", "c", "d", "e", "f", "h"}
	if !reflect.DeepEqual(got.Synonyms, want) {
		t.Errorf("Synonyms = %v, want %v", got.Synonyms, want)
	}
	if !reflect.DeepEqual(got.Antonyms, []string{"x"}) {
		t.Errorf("Antonyms = %v", got.Antonyms)
	}
}

func TestProcessThesaurusEmpty(t *testing.T) {
	if got := ProcessThesaurus([]Entry{{Meta: Meta{ID: "plan"}}}, types.DefaultLimits()); got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestRenderSynonymsParagraph(t *testing.T) {
	para := SynonymsPara{
		PL: "synonyms",
		PT: DefText{
			{Kind: "text", Text: "{sc}plan{/sc} implies mental formulation."},
			{Kind: "vis", Examples: []VerbalIllustration{
				{T: "carefully {it}planned{/it} the garden"},
				{T: "plans for the future"},
			}},
			{Kind: "text", Text: "{sc}design{/sc} suggests a pattern."},
		},
	}

	got := RenderSynonymsParagraph(para)
	want := "plan implies mental formulation.<br>    " +
		`<em>"carefully planned the garden"</em> | <em>"plans for the future"</em>` +
		"<br><br>design suggests a pattern."
	if got != want {
		t.Errorf("RenderSynonymsParagraph = %q, want %q", got, want)
	}
}
