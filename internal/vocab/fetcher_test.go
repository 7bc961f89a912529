// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tkoval/anki-vocab/pkg/types"
)

func TestFetchWordInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search"); got != "ubiquitous" {
			t.Errorf("search = %q", got)
		}
		if got := r.URL.Query().Get("lang"); got != "en" {
			t.Errorf("lang = %q", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent header")
		}
		if got := r.Header.Get("Cookie"); got != "session=abc" {
			t.Errorf("Cookie = %q", got)
		}
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	f := NewFetcher(types.VocabularyConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "test-agent"},
		AjaxURL:    server.URL,
		Cookie:     "session=abc",
	}, types.DefaultLimits(), server.Client(), nil)

	info, err := f.FetchWordInfo(context.Background(), "ubiquitous")
	if err != nil {
		t.Fatalf("FetchWordInfo: %v", err)
	}
	if info == nil {
		t.Fatal("got nil info")
	}
	if info.Word != "ubiquitous" {
		t.Errorf("Word = %q", info.Word)
	}
	if len(info.Definitions) != 1 {
		t.Errorf("got %d definitions", len(info.Definitions))
	}
}

func TestFetchWordInfoNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFetcher(types.VocabularyConfig{AjaxURL: server.URL},
		types.DefaultLimits(), server.Client(), nil)

	info, err := f.FetchWordInfo(context.Background(), "qzxv")
	if err != nil {
		t.Fatalf("FetchWordInfo: %v", err)
	}
	if info != nil {
		t.Errorf("got %+v, want nil for unknown word", info)
	}
}

func TestFetchWordInfoEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<div id="hdr-word-area">word</div>`))
	}))
	defer server.Close()

	f := NewFetcher(types.VocabularyConfig{AjaxURL: server.URL},
		types.DefaultLimits(), server.Client(), nil)

	info, err := f.FetchWordInfo(context.Background(), "word")
	if err != nil {
		t.Fatalf("FetchWordInfo: %v", err)
	}
	if info != nil {
		t.Errorf("got %+v, want nil for contentless page", info)
	}
}
