// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mw talks to the Merriam-Webster dictionary APIs and turns
// their JSON entries into display-ready definition content.
package mw

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/tkoval/anki-vocab/internal/httputil"
	"github.com/tkoval/anki-vocab/pkg/types"
)

// Client queries the Merriam-Webster Collegiate and Thesaurus
// references. A reference whose API key is unset is simply skipped.
type Client struct {
	baseURL       string
	collegiateKey string
	thesaurusKey  string
	httpClient    *http.Client
	logger        *slog.Logger
}

// NewClient builds a client from config. The logger may be nil.
func NewClient(cfg types.MWConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		collegiateKey: cfg.CollegiateKey,
		thesaurusKey:  cfg.ThesaurusKey,
		httpClient:    httpClient,
		logger:        logger.With("client", "merriam-webster"),
	}
}

// HasKeys reports whether at least one reference is usable.
func (c *Client) HasKeys() bool {
	return c.collegiateKey != "" || c.thesaurusKey != ""
}

// FetchCollegiate returns the collegiate entries for word, or nil when
// no key is configured.
func (c *Client) FetchCollegiate(ctx context.Context, word string) ([]Entry, error) {
	return c.fetch(ctx, "collegiate", word, c.collegiateKey)
}

// FetchThesaurus returns the thesaurus entries for word, or nil when no
// key is configured.
func (c *Client) FetchThesaurus(ctx context.Context, word string) ([]Entry, error) {
	return c.fetch(ctx, "thesaurus", word, c.thesaurusKey)
}

func (c *Client) fetch(ctx context.Context, ref, word, key string) ([]Entry, error) {
	if key == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/%s/json/%s?key=%s",
		c.baseURL, ref, url.PathEscape(word), url.QueryEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", ref, err)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("%s request for %q: %w", ref, word, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s API returned HTTP %d for %q", ref, resp.StatusCode, word)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", ref, err)
	}

	entries, err := decodeEntries(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response for %q: %w", ref, word, err)
	}
	c.logger.DebugContext(ctx, "fetched entries",
		"ref", ref, "word", word, "entries", len(entries))
	return entries, nil
}

// decodeEntries parses an API response list. When a word is unknown the
// API answers with a list of suggestion strings instead of entry
// objects; those elements are skipped rather than treated as an error.
func decodeEntries(body []byte) ([]Entry, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	var entries []Entry
	for _, item := range raw {
		trimmed := strings.TrimSpace(string(item))
		if !strings.HasPrefix(trimmed, "{") {
			continue
		}
		var e Entry
		if err := json.Unmarshal(item, &e); err != nil {
			continue
		}
		e.Raw = item
		entries = append(entries, e)
	}
	return entries, nil
}
