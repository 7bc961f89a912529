// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/tkoval/anki-vocab/internal/httputil"
	"github.com/tkoval/anki-vocab/pkg/types"
)

// defaultAjaxURL serves a single word's dictionary page fragment.
const defaultAjaxURL = "https://www.vocabulary.com/dictionary/definition.ajax"

// Fetcher pulls word pages from the vocabulary.com AJAX endpoint.
type Fetcher struct {
	ajaxURL    string
	userAgent  string
	cookie     string
	limits     types.Limits
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFetcher builds a fetcher from config. The logger may be nil.
func NewFetcher(cfg types.VocabularyConfig, limits types.Limits, httpClient *http.Client, logger *slog.Logger) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	ajaxURL := cfg.AjaxURL
	if ajaxURL == "" {
		ajaxURL = defaultAjaxURL
	}
	return &Fetcher{
		ajaxURL:    ajaxURL,
		userAgent:  cfg.UserAgent,
		cookie:     cfg.Cookie,
		limits:     limits,
		httpClient: httpClient,
		logger:     logger.With("client", "vocabulary"),
	}
}

// FetchWordInfo fetches and parses one word. A word the site does not
// know returns (nil, nil); only transport-level failures are errors.
func (f *Fetcher) FetchWordInfo(ctx context.Context, word string) (*types.WordInfo, error) {
	endpoint := fmt.Sprintf("%s?search=%s&lang=en", f.ajaxURL, url.QueryEscape(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating vocabulary request: %w", err)
	}
	f.setHeaders(req)

	resp, err := httputil.DoWithRetry(ctx, f.httpClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("vocabulary request for %q: %w", word, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.DebugContext(ctx, "word not available",
			"word", word, "status", resp.StatusCode)
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing vocabulary page for %q: %w", word, err)
	}

	info := ParseDocument(doc, word, f.limits)
	if !info.HasContent() {
		f.logger.DebugContext(ctx, "page had no usable content", "word", word)
		return nil, nil
	}
	f.logger.DebugContext(ctx, "fetched word",
		"word", word, "definitions", len(info.Definitions))
	return info, nil
}

// setHeaders makes the request look like a regular browser; some
// endpoints reject bare clients.
func (f *Fetcher) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept",
		"text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://www.vocabulary.com/")
	if f.cookie != "" {
		req.Header.Set("Cookie", f.cookie)
	}
}
