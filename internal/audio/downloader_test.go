// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package audio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/tkoval/anki-vocab/pkg/types"
)

func TestDownloadWordAudio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mp3data"))
	}))
	defer server.Close()

	restore := pointEndpointsAt(server.URL)
	defer restore()

	dir := t.TempDir()
	d := NewDownloader(types.AudioConfig{Dir: dir}, server.Client(), nil)

	files := d.DownloadWordAudio(context.Background(), "plan")
	if files.US != "plan_us.mp3" || files.UK != "plan_uk.mp3" {
		t.Fatalf("files = %+v", files)
	}
	for _, name := range []string{files.US, files.UK} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if string(data) != "mp3data" {
			t.Errorf("%s content = %q", name, data)
		}
	}

	us, uk := d.Exists("plan")
	if us != "plan_us.mp3" || uk != "plan_uk.mp3" {
		t.Errorf("Exists = (%q, %q)", us, uk)
	}
}

func TestDownloadFallsBackToYoudao(t *testing.T) {
	google := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer google.Close()
	youdao := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("youdao-mp3"))
	}))
	defer youdao.Close()

	origGoogle, origYoudao := googleTTSURL, youdaoTTSURL
	googleTTSURL = google.URL + "?tl=%s&q=%s"
	youdaoTTSURL = youdao.URL + "?audio=%s&type=%s"
	defer func() { googleTTSURL, youdaoTTSURL = origGoogle, origYoudao }()

	d := NewDownloader(types.AudioConfig{Dir: t.TempDir()}, http.DefaultClient, nil)

	files := d.DownloadWordAudio(context.Background(), "plan")
	if files.US != "plan_us_youdao.mp3" || files.UK != "plan_uk_youdao.mp3" {
		t.Errorf("files = %+v, want youdao fallback names", files)
	}
}

func TestDownloadAllSourcesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	restore := pointEndpointsAt(server.URL)
	defer restore()

	dir := t.TempDir()
	d := NewDownloader(types.AudioConfig{Dir: dir}, server.Client(), nil)

	files := d.DownloadWordAudio(context.Background(), "plan")
	if files.US != "" || files.UK != "" {
		t.Errorf("files = %+v, want empty", files)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed downloads left files behind: %v", entries)
	}
}

func pointEndpointsAt(base string) func() {
	origGoogle, origYoudao := googleTTSURL, youdaoTTSURL
	googleTTSURL = base + "?tl=%s&q=%s"
	youdaoTTSURL = base + "?audio=%s&type=%s"
	return func() { googleTTSURL, youdaoTTSURL = origGoogle, origYoudao }
}

func TestDownloadKeepsExistingFiles(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("fresh-mp3"))
	}))
	defer server.Close()

	restore := pointEndpointsAt(server.URL)
	defer restore()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plan_us.mp3"), []byte("old-mp3"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "plan_uk_youdao.mp3"), []byte("old-mp3"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := NewDownloader(types.AudioConfig{Dir: dir}, server.Client(), nil)
	files := d.DownloadWordAudio(context.Background(), "plan")

	if files.US != "plan_us.mp3" || files.UK != "plan_uk_youdao.mp3" {
		t.Errorf("files = %+v, want existing names", files)
	}
	if hits != 0 {
		t.Errorf("existing files redownloaded (%d requests)", hits)
	}
	data, err := os.ReadFile(filepath.Join(dir, "plan_us.mp3"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "old-mp3" {
		t.Errorf("existing file overwritten: %q", data)
	}
}
