// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package audio downloads pronunciation audio for words from public
// TTS endpoints.
package audio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/tkoval/anki-vocab/pkg/types"
)

// TTS endpoint templates. Google is the primary source, Youdao the
// fallback. Declared as vars so tests can substitute an httptest
// server.
var (
	googleTTSURL = "https://translate.google.com/translate_tts?ie=UTF-8&client=tw-ob&tl=%s&q=%s"
	youdaoTTSURL = "https://dict.youdao.com/dictvoice?audio=%s&type=%s"
)

const downloadUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Accent identifies a pronunciation variant.
type Accent string

const (
	AccentUS Accent = "us"
	AccentUK Accent = "uk"
)

// Downloader fetches US and UK pronunciation files into a local
// directory.
type Downloader struct {
	dir        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewDownloader builds a downloader from config. The logger may be nil.
func NewDownloader(cfg types.AudioConfig, httpClient *http.Client, logger *slog.Logger) *Downloader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "audio_files"
	}
	return &Downloader{
		dir:        dir,
		httpClient: httpClient,
		logger:     logger.With("client", "audio"),
	}
}

// Dir returns the audio directory.
func (d *Downloader) Dir() string { return d.dir }

// DownloadWordAudio fetches both accents for word, trying Google first
// and Youdao for whichever accent Google could not serve. Accents that
// already have a file on disk are kept, not redownloaded. Per-source
// failures are logged, not returned; an accent no source could serve
// leaves its slot empty.
func (d *Downloader) DownloadWordAudio(ctx context.Context, word string) types.AudioFiles {
	var files types.AudioFiles
	files.US, files.UK = d.Exists(word)
	if files.US != "" && files.UK != "" {
		return files
	}

	for _, source := range []string{"google", "youdao"} {
		if files.US == "" {
			if f, err := d.download(ctx, source, word, AccentUS); err != nil {
				d.logger.DebugContext(ctx, "audio download failed",
					"source", source, "accent", AccentUS, "word", word, "error", err)
			} else {
				files.US = f
			}
		}
		if files.UK == "" {
			if f, err := d.download(ctx, source, word, AccentUK); err != nil {
				d.logger.DebugContext(ctx, "audio download failed",
					"source", source, "accent", AccentUK, "word", word, "error", err)
			} else {
				files.UK = f
			}
		}
		if files.US != "" && files.UK != "" {
			break
		}
	}
	return files
}

// Exists reports which accents already have a file on disk for word,
// from either source.
func (d *Downloader) Exists(word string) (us, uk string) {
	for _, name := range []string{word + "_us.mp3", word + "_us_youdao.mp3"} {
		if _, err := os.Stat(filepath.Join(d.dir, name)); err == nil {
			us = name
			break
		}
	}
	for _, name := range []string{word + "_uk.mp3", word + "_uk_youdao.mp3"} {
		if _, err := os.Stat(filepath.Join(d.dir, name)); err == nil {
			uk = name
			break
		}
	}
	return us, uk
}

// download fetches one accent from one source and returns the stored
// filename. The file lands via a temp file and rename so a failed
// download never leaves a truncated mp3 behind.
func (d *Downloader) download(ctx context.Context, source, word string, accent Accent) (string, error) {
	var endpoint, filename string
	switch source {
	case "google":
		lang := "en-US"
		if accent == AccentUK {
			lang = "en-GB"
		}
		endpoint = fmt.Sprintf(googleTTSURL, lang, url.QueryEscape(word))
		filename = fmt.Sprintf("%s_%s.mp3", word, accent)
	case "youdao":
		typ := "2"
		if accent == AccentUK {
			typ = "1"
		}
		endpoint = fmt.Sprintf(youdaoTTSURL, url.QueryEscape(word), typ)
		filename = fmt.Sprintf("%s_%s_youdao.mp3", word, accent)
	default:
		return "", fmt.Errorf("unknown audio source %q", source)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating audio directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating audio request: %w", err)
	}
	req.Header.Set("User-Agent", downloadUserAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s audio: %w", accent, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s audio returned HTTP %d", source, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(d.dir, filename+".tmp*")
	if err != nil {
		return "", fmt.Errorf("creating temp audio file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing audio file: %w", err)
	}

	target := filepath.Join(d.dir, filename)
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("placing audio file: %w", err)
	}
	return filename, nil
}
