// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tkoval/anki-vocab/pkg/types"
)

func TestClientFetchCollegiate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collegiate/json/plan" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q, want test-key", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[` + sampleEntryJSON + `]`))
	}))
	defer server.Close()

	client := NewClient(types.MWConfig{
		BaseURL:       server.URL,
		CollegiateKey: "test-key",
	}, server.Client(), nil)

	entries, err := client.FetchCollegiate(context.Background(), "plan")
	if err != nil {
		t.Fatalf("FetchCollegiate: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if got := entries[0].Headword(); got != "plan" {
		t.Errorf("Headword = %q", got)
	}
}

func TestClientNoKeySkipsFetch(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(types.MWConfig{BaseURL: server.URL}, server.Client(), nil)

	entries, err := client.FetchCollegiate(context.Background(), "plan")
	if err != nil || entries != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", entries, err)
	}
	if called {
		t.Error("server should not be called without a key")
	}
}

func TestClientSuggestionsSkipped(t *testing.T) {
	// An unknown word answers with spelling suggestions, not entries.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["plan", "plain", "plane"]`))
	}))
	defer server.Close()

	client := NewClient(types.MWConfig{
		BaseURL:      server.URL,
		ThesaurusKey: "test-key",
	}, server.Client(), nil)

	entries, err := client.FetchThesaurus(context.Background(), "plann")
	if err != nil {
		t.Fatalf("FetchThesaurus: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestClientHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(types.MWConfig{
		BaseURL:       server.URL,
		CollegiateKey: "bad-key",
	}, server.Client(), nil)

	if _, err := client.FetchCollegiate(context.Background(), "plan"); err == nil {
		t.Fatal("expected error for HTTP 403")
	}
}
