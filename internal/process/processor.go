// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package process orchestrates the word pipeline: fetch, compose,
// enrich, audio, and the Anki round trip.
package process

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tkoval/anki-vocab/internal/card"
	"github.com/tkoval/anki-vocab/internal/textutil"
	"github.com/tkoval/anki-vocab/pkg/types"
)

// WordSource fetches word info from a dictionary source.
type WordSource interface {
	FetchWordInfo(ctx context.Context, word string) (*types.WordInfo, error)
}

// WordCache persists fetched word info between runs.
type WordCache interface {
	Get(word string) (*types.WordInfo, error)
	Put(word string, info *types.WordInfo) error
}

// Enricher contributes extra note fields for a word.
type Enricher interface {
	Enrich(ctx context.Context, word string) card.Fields
}

// AudioSource downloads pronunciation audio into a local directory.
type AudioSource interface {
	DownloadWordAudio(ctx context.Context, word string) types.AudioFiles
	Dir() string
}

// NoteClient is the slice of the AnkiConnect API the processor needs.
type NoteClient interface {
	AddNote(ctx context.Context, deck, model string, fields map[string]string, tags []string) (int64, error)
	UpdateNoteFields(ctx context.Context, noteID int64, fields map[string]string) error
	FindNotes(ctx context.Context, query string) ([]int64, error)
	StoreMediaFile(ctx context.Context, path, filename string) (string, error)
}

// Status classifies the outcome for one word.
type Status string

const (
	StatusAdded    Status = "added"
	StatusUpdated  Status = "updated"
	StatusSkipped  Status = "skipped"
	StatusNotFound Status = "not found"
	StatusFailed   Status = "failed"
)

// Result is the outcome for one word.
type Result struct {
	Word   string
	Status Status
	NoteID int64
	Err    error
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Added    int
	Updated  int
	Skipped  int
	NotFound int
	Failed   int
	Results  []Result
}

// Total returns the number of words processed.
func (r BatchResult) Total() int {
	return r.Added + r.Updated + r.Skipped + r.NotFound + r.Failed
}

// HasFailures reports whether any word failed outright.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Options tune a processing run.
type Options struct {
	// ForceUpdate overwrites the fields of an existing note instead of
	// skipping the word.
	ForceUpdate bool

	// SkipAudio disables audio downloading for this run even when the
	// config enables it.
	SkipAudio bool

	// Delay is the pause between words in a batch.
	Delay time.Duration
}

// Processor runs words through the pipeline.
type Processor struct {
	cfg      types.PipelineConfig
	source   WordSource
	cache    WordCache
	enricher Enricher
	audio    AudioSource
	notes    NoteClient
	logger   *slog.Logger
}

// NewProcessor wires a processor. cache, enricher, and audio may be nil
// to disable the respective step; the logger may be nil.
func NewProcessor(cfg types.PipelineConfig, source WordSource, cache WordCache, enricher Enricher, audio AudioSource, notes NoteClient, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:      cfg,
		source:   source,
		cache:    cache,
		enricher: enricher,
		audio:    audio,
		notes:    notes,
		logger:   logger,
	}
}

// ProcessWord runs one word end to end. Word-level problems land in the
// Result status; the error return is reserved for validation failures.
func (p *Processor) ProcessWord(ctx context.Context, word string, opts Options) (Result, error) {
	clean := textutil.CleanWord(word)
	if !textutil.IsValidWord(clean) {
		return Result{Word: word, Status: StatusFailed},
			fmt.Errorf("invalid word: %q", word)
	}
	result := Result{Word: clean}

	existingID := p.findExisting(ctx, clean)
	if existingID != 0 && !opts.ForceUpdate {
		p.logger.InfoContext(ctx, "card already exists", "word", clean)
		result.Status = StatusSkipped
		result.NoteID = existingID
		return result, nil
	}

	info, err := p.lookup(ctx, clean, opts.ForceUpdate)
	if err != nil {
		result.Status = StatusFailed
		result.Err = err
		return result, nil
	}
	if info == nil {
		result.Status = StatusNotFound
		return result, nil
	}

	fields := card.ComposeVocab(info, p.cfg.Limits)
	if p.enricher != nil {
		fields.Merge(p.enricher.Enrich(ctx, clean))
	}
	if p.audio != nil && p.cfg.Audio.Enable && !opts.SkipAudio {
		p.attachAudio(ctx, clean, fields)
	}

	if existingID != 0 {
		if err := p.notes.UpdateNoteFields(ctx, existingID, fields); err != nil {
			result.Status = StatusFailed
			result.Err = fmt.Errorf("updating note: %w", err)
			return result, nil
		}
		p.logger.InfoContext(ctx, "card updated", "word", clean, "note_id", existingID)
		result.Status = StatusUpdated
		result.NoteID = existingID
		return result, nil
	}

	noteID, err := p.notes.AddNote(ctx, p.cfg.Anki.DeckName, p.cfg.Anki.ModelName,
		fields, []string{"vocabulary", "auto-import"})
	if err != nil {
		result.Status = StatusFailed
		result.Err = fmt.Errorf("adding note: %w", err)
		return result, nil
	}
	p.logger.InfoContext(ctx, "card added", "word", clean, "note_id", noteID)
	result.Status = StatusAdded
	result.NoteID = noteID
	return result, nil
}

// Lookup fetches word info without touching Anki, for preview-style
// commands. The cache is consulted and filled as in a normal run.
func (p *Processor) Lookup(ctx context.Context, word string) (*types.WordInfo, error) {
	clean := textutil.CleanWord(word)
	if !textutil.IsValidWord(clean) {
		return nil, fmt.Errorf("invalid word: %q", word)
	}
	return p.lookup(ctx, clean, false)
}

func (p *Processor) lookup(ctx context.Context, word string, bypassCache bool) (*types.WordInfo, error) {
	if p.cache != nil && !bypassCache {
		if info, err := p.cache.Get(word); err != nil {
			p.logger.DebugContext(ctx, "cache read failed", "word", word, "error", err)
		} else if info != nil {
			p.logger.DebugContext(ctx, "cache hit", "word", word)
			return info, nil
		}
	}

	info, err := p.source.FetchWordInfo(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", word, err)
	}
	if info == nil {
		return nil, nil
	}
	if p.cache != nil {
		if err := p.cache.Put(word, info); err != nil {
			p.logger.DebugContext(ctx, "cache write failed", "word", word, "error", err)
		}
	}
	return info, nil
}

// findExisting looks for a note for word in the target deck. Both the
// quoted and unquoted query forms are tried; some AnkiConnect builds
// only match one of them.
func (p *Processor) findExisting(ctx context.Context, word string) int64 {
	queries := []string{
		fmt.Sprintf("deck:%q Word:%q", p.cfg.Anki.DeckName, word),
		fmt.Sprintf("deck:%s Word:%s", p.cfg.Anki.DeckName, word),
	}
	for _, q := range queries {
		ids, err := p.notes.FindNotes(ctx, q)
		if err != nil {
			p.logger.DebugContext(ctx, "note search failed", "query", q, "error", err)
			continue
		}
		if len(ids) > 0 {
			return ids[0]
		}
	}
	return 0
}

// attachAudio downloads pronunciation audio, uploads it to Anki's media
// collection, and sets the audio fields. Failures log and leave the
// fields unset.
func (p *Processor) attachAudio(ctx context.Context, word string, fields card.Fields) {
	files := p.audio.DownloadWordAudio(ctx, word)

	if files.US != "" {
		stored, err := p.notes.StoreMediaFile(ctx,
			filepath.Join(p.audio.Dir(), files.US), word+"_us.mp3")
		if err != nil {
			p.logger.DebugContext(ctx, "storing US audio failed", "word", word, "error", err)
		} else {
			fields.Set(card.FieldUSAudio, stored)
		}
	}
	if files.UK != "" {
		stored, err := p.notes.StoreMediaFile(ctx,
			filepath.Join(p.audio.Dir(), files.UK), word+"_uk.mp3")
		if err != nil {
			p.logger.DebugContext(ctx, "storing UK audio failed", "word", word, "error", err)
		} else {
			fields.Set(card.FieldUKAudio, stored)
		}
	}
}

// ProcessWords runs a batch, writing progress to w. One word's failure
// never stops the batch.
func (p *Processor) ProcessWords(ctx context.Context, words []string, opts Options, w io.Writer) BatchResult {
	var batch BatchResult

	for i, word := range words {
		if i > 0 && opts.Delay > 0 {
			select {
			case <-time.After(opts.Delay):
			case <-ctx.Done():
			}
		}
		if ctx.Err() != nil {
			break
		}

		fmt.Fprintf(w, "processing (%d/%d): %s\n", i+1, len(words), word)
		result, err := p.ProcessWord(ctx, word, opts)
		if err != nil {
			result.Status = StatusFailed
			result.Err = err
		}
		batch.Results = append(batch.Results, result)

		switch result.Status {
		case StatusAdded:
			batch.Added++
			fmt.Fprintf(w, "  added: %s\n", result.Word)
		case StatusUpdated:
			batch.Updated++
			fmt.Fprintf(w, "  updated: %s\n", result.Word)
		case StatusSkipped:
			batch.Skipped++
			fmt.Fprintf(w, "  skipped: %s (already exists)\n", result.Word)
		case StatusNotFound:
			batch.NotFound++
			fmt.Fprintf(w, "  not found: %s\n", result.Word)
		case StatusFailed:
			batch.Failed++
			fmt.Fprintf(w, "  failed: %s (%v)\n", result.Word, result.Err)
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d added, %d updated, %d skipped, %d not found, %d failed (total: %d)\n",
		batch.Added, batch.Updated, batch.Skipped, batch.NotFound, batch.Failed, batch.Total())
	return batch
}

// ReadWordFile reads a word list: one word per line, blank lines and
// #-comments skipped.
func ReadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word file: %w", err)
	}
	return words, nil
}
