// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package anki

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/tkoval/anki-vocab/pkg/types"
)

// fakeConnect records invoked actions and answers from a canned result
// table keyed by action name.
type fakeConnect struct {
	t       *testing.T
	actions []string
	params  []map[string]any
	results map[string]any
	errors  map[string]string
}

func (f *fakeConnect) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Action  string         `json:"action"`
			Version int            `json:"version"`
			Params  map[string]any `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			f.t.Errorf("decoding request: %v", err)
		}
		if req.Version != 6 {
			f.t.Errorf("version = %d, want 6", req.Version)
		}
		f.actions = append(f.actions, req.Action)
		f.params = append(f.params, req.Params)

		resp := map[string]any{"result": f.results[req.Action], "error": nil}
		if msg, ok := f.errors[req.Action]; ok {
			resp["error"] = msg
		}
		json.NewEncoder(w).Encode(resp)
	}
}

func newTestClient(t *testing.T, fake *fakeConnect) (*Client, func()) {
	t.Helper()
	fake.t = t
	server := httptest.NewServer(fake.handler())
	client := NewClient(types.AnkiConfig{URL: server.URL}, server.Client(), nil)
	return client, server.Close
}

func TestPing(t *testing.T) {
	client, done := newTestClient(t, &fakeConnect{results: map[string]any{"version": 6}})
	defer done()
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestPingOldVersion(t *testing.T) {
	client, done := newTestClient(t, &fakeConnect{results: map[string]any{"version": 5}})
	defer done()
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected error for old protocol version")
	}
}

func TestCreateDeckSkipsExisting(t *testing.T) {
	fake := &fakeConnect{results: map[string]any{"deckNames": []string{"Vocabulary"}}}
	client, done := newTestClient(t, fake)
	defer done()

	if err := client.CreateDeck(context.Background(), "Vocabulary"); err != nil {
		t.Fatalf("CreateDeck: %v", err)
	}
	for _, a := range fake.actions {
		if a == "createDeck" {
			t.Error("createDeck invoked for existing deck")
		}
	}
}

func TestCreateDeckCreatesMissing(t *testing.T) {
	fake := &fakeConnect{results: map[string]any{"deckNames": []string{"Other"}}}
	client, done := newTestClient(t, fake)
	defer done()

	if err := client.CreateDeck(context.Background(), "Vocabulary"); err != nil {
		t.Fatalf("CreateDeck: %v", err)
	}
	if len(fake.actions) != 2 || fake.actions[1] != "createDeck" {
		t.Errorf("actions = %v, want deckNames then createDeck", fake.actions)
	}
	if got := fake.params[1]["deck"]; got != "Vocabulary" {
		t.Errorf("deck param = %v", got)
	}
}

func TestAddNote(t *testing.T) {
	fake := &fakeConnect{results: map[string]any{"addNote": 1496198395707}}
	client, done := newTestClient(t, fake)
	defer done()

	id, err := client.AddNote(context.Background(), "Vocabulary", "VocabModel",
		map[string]string{"Word": "plan"}, []string{"vocabulary"})
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if id != 1496198395707 {
		t.Errorf("id = %d", id)
	}

	note := fake.params[0]["note"].(map[string]any)
	if note["deckName"] != "Vocabulary" || note["modelName"] != "VocabModel" {
		t.Errorf("note = %v", note)
	}
	options := note["options"].(map[string]any)
	if options["duplicateScope"] != "deck" {
		t.Errorf("duplicateScope = %v", options["duplicateScope"])
	}
}

func TestAddNoteDuplicate(t *testing.T) {
	fake := &fakeConnect{errors: map[string]string{"addNote": "cannot create note because it is a duplicate"}}
	client, done := newTestClient(t, fake)
	defer done()

	if _, err := client.AddNote(context.Background(), "d", "m", map[string]string{}, nil); err == nil {
		t.Fatal("expected duplicate error")
	}
}

func TestEnsureModelFieldsAddsMissing(t *testing.T) {
	fake := &fakeConnect{results: map[string]any{
		"modelFieldNames": []string{"Word", "USPhonetic"},
	}}
	client, done := newTestClient(t, fake)
	defer done()

	err := client.EnsureModelFields(context.Background(), "VocabModel",
		[]string{"Word", "USPhonetic", "MWStems"})
	if err != nil {
		t.Fatalf("EnsureModelFields: %v", err)
	}
	if len(fake.actions) != 2 || fake.actions[1] != "modelFieldAdd" {
		t.Errorf("actions = %v", fake.actions)
	}
	if got := fake.params[1]["fieldName"]; got != "MWStems" {
		t.Errorf("fieldName = %v", got)
	}
}

func TestStoreMediaFile(t *testing.T) {
	fake := &fakeConnect{results: map[string]any{"storeMediaFile": "plan_us.mp3"}}
	client, done := newTestClient(t, fake)
	defer done()

	path := filepath.Join(t.TempDir(), "plan_us.mp3")
	if err := os.WriteFile(path, []byte("mp3data"), 0o644); err != nil {
		t.Fatal(err)
	}

	stored, err := client.StoreMediaFile(context.Background(), path, "")
	if err != nil {
		t.Fatalf("StoreMediaFile: %v", err)
	}
	if stored != "plan_us.mp3" {
		t.Errorf("stored = %q", stored)
	}
	if fake.params[0]["data"] == "" {
		t.Error("missing base64 payload")
	}
}

func TestFindNotes(t *testing.T) {
	fake := &fakeConnect{results: map[string]any{"findNotes": []int64{1, 2, 3}}}
	client, done := newTestClient(t, fake)
	defer done()

	ids, err := client.FindNotes(context.Background(), `deck:Vocabulary Word:plan`)
	if err != nil {
		t.Fatalf("FindNotes: %v", err)
	}
	if len(ids) != 3 {
		t.Errorf("ids = %v", ids)
	}
}
