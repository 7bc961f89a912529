// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package card

import (
	"context"
	"log/slog"

	"github.com/tkoval/anki-vocab/internal/mw"
	"github.com/tkoval/anki-vocab/pkg/types"
)

// MWEnricher adds Merriam-Webster fields to a note. Fetch or parse
// trouble for one word is logged and swallowed; enrichment is
// best-effort and never fails a card.
type MWEnricher struct {
	client *mw.Client
	cfg    types.MWConfig
	limits types.Limits
	logger *slog.Logger
}

// NewMWEnricher builds an enricher. The logger may be nil.
func NewMWEnricher(client *mw.Client, cfg types.MWConfig, limits types.Limits, logger *slog.Logger) *MWEnricher {
	if logger == nil {
		logger = slog.Default()
	}
	return &MWEnricher{client: client, cfg: cfg, limits: limits, logger: logger}
}

// Enrich fetches and composes the MW fields for word. Returns an empty
// mapping when enrichment is disabled, unkeyed, or yields nothing.
func (e *MWEnricher) Enrich(ctx context.Context, word string) Fields {
	fields := Fields{}
	if !e.cfg.Enable || e.client == nil || !e.client.HasKeys() {
		return fields
	}

	var collegiate []mw.CollegiateEntry
	if raw, err := e.client.FetchCollegiate(ctx, word); err != nil {
		e.logger.DebugContext(ctx, "collegiate fetch failed", "word", word, "error", err)
	} else {
		collegiate = mw.ProcessCollegiate(raw, word, e.cfg.OfficialWebsiteMode, e.limits)
	}

	var thesaurus *mw.ThesaurusResult
	if raw, err := e.client.FetchThesaurus(ctx, word); err != nil {
		e.logger.DebugContext(ctx, "thesaurus fetch failed", "word", word, "error", err)
	} else {
		thesaurus = mw.ProcessThesaurus(raw, e.limits)
	}

	fields.Merge(ComposeMW(collegiate, thesaurus))
	return fields
}
