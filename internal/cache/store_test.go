// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"testing"

	"github.com/tkoval/anki-vocab/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.CacheConfig{Dir: t.TempDir(), TTLDays: 30})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleInfo(word string) *types.WordInfo {
	return &types.WordInfo{
		Word: word,
		Definitions: []types.WordDefinition{
			{PartOfSpeech: "noun", Definition: "a cached sense"},
		},
	}
}

func TestStorePutGet(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("plan", sampleInfo("plan")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get("plan")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Word != "plan" {
		t.Fatalf("Get = %+v", got)
	}
	if len(got.Definitions) != 1 || got.Definitions[0].Definition != "a cached sense" {
		t.Errorf("Definitions = %+v", got.Definitions)
	}
}

func TestStoreGetMiss(t *testing.T) {
	s := newTestStore(t)
	got, err := s.Get("absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("Get = %+v, want nil miss", got)
	}
}

func TestStoreGetSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(types.CacheConfig{Dir: dir})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.Put("plan", sampleInfo("plan")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	s.Close()

	s2, err := NewStore(types.CacheConfig{Dir: dir})
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	defer s2.Close()

	got, err := s2.Get("plan")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Word != "plan" {
		t.Errorf("Get after reopen = %+v", got)
	}
}

func TestStoreExpiredRowIsMiss(t *testing.T) {
	s := newTestStore(t)
	if err := s.Put("plan", sampleInfo("plan")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	// Backdate the row past the TTL and drop the hot copy.
	if _, err := s.db.Exec(
		`UPDATE word_cache SET fetched_at = '2001-01-01T00:00:00Z' WHERE word = 'plan'`,
	); err != nil {
		t.Fatal(err)
	}
	s.mu.Lock()
	delete(s.hot, "plan")
	s.mu.Unlock()

	got, err := s.Get("plan")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("expired entry returned: %+v", got)
	}
}

func TestStoreDeleteAndClear(t *testing.T) {
	s := newTestStore(t)
	s.Put("plan", sampleInfo("plan"))
	s.Put("design", sampleInfo("design"))

	if err := s.Delete("plan"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := s.Get("plan"); got != nil {
		t.Error("deleted entry still readable")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got, _ := s.Get("design"); got != nil {
		t.Error("cleared entry still readable")
	}
}

func TestStoreStats(t *testing.T) {
	s := newTestStore(t)
	s.Put("plan", sampleInfo("plan"))
	s.Put("design", sampleInfo("design"))

	st, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Words != 2 {
		t.Errorf("Words = %d, want 2", st.Words)
	}
	if st.Oldest.IsZero() || st.Newest.IsZero() {
		t.Errorf("Stats range missing: %+v", st)
	}
}
