// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package card

import "testing"

func TestFieldsSetRejectsUndeclaredNames(t *testing.T) {
	f := Fields{}
	f.Set("NotAField", "value")
	f.Set(VocabEntryField(26), "value") // numbered slots stop at 25
	f.Set(FieldWord, "design")

	if len(f) != 1 {
		t.Errorf("fields = %v, want only the declared Word field", f)
	}
	if f[FieldWord] != "design" {
		t.Errorf("Word = %q, want %q", f[FieldWord], "design")
	}
}

func TestFieldsMerge(t *testing.T) {
	f := Fields{FieldWord: "design"}
	f.Merge(Fields{FieldMWStems: "design, designs", FieldUKPhonetic: ""})

	if got := f[FieldMWStems]; got != "design, designs" {
		t.Errorf("MWStems = %q, want %q", got, "design, designs")
	}
	if _, ok := f[FieldUKPhonetic]; ok {
		t.Error("empty merged value should not be stored")
	}
	if got := f[FieldWord]; got != "design" {
		t.Errorf("existing field clobbered: Word = %q", got)
	}
}
