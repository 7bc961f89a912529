package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tkoval/anki-vocab/internal/anki"
	"github.com/tkoval/anki-vocab/internal/audio"
	"github.com/tkoval/anki-vocab/internal/cache"
	"github.com/tkoval/anki-vocab/internal/card"
	"github.com/tkoval/anki-vocab/internal/mw"
	"github.com/tkoval/anki-vocab/internal/process"
	"github.com/tkoval/anki-vocab/internal/vocab"
)

var addCmd = &cobra.Command{
	Use:   "add [words...]",
	Short: "Fetch words and add them to Anki as flashcards",
	Long: `Add runs each word through the full pipeline: vocabulary.com lookup,
Merriam-Webster enrichment, audio download, and an AnkiConnect add or
update. Words already in the deck are skipped unless --force is given.
Anki must be running with the AnkiConnect add-on installed.`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("file", "", "read words from a file (one per line, # comments allowed)")
	addCmd.Flags().Bool("force", false, "update existing notes instead of skipping them")
	addCmd.Flags().Bool("no-audio", false, "skip pronunciation audio for this run")
	addCmd.Flags().Bool("no-mw", false, "skip Merriam-Webster enrichment for this run")
	addCmd.Flags().String("deck", "", "target deck (overrides config)")
	addCmd.Flags().Duration("delay", time.Second, "pause between words in a batch")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	words := args
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		fromFile, err := process.ReadWordFile(file)
		if err != nil {
			return err
		}
		words = append(words, fromFile...)
	}
	if len(words) == 0 {
		return fmt.Errorf("provide one or more words, or --file")
	}

	cfg := buildConfig()
	if deck, _ := cmd.Flags().GetString("deck"); deck != "" {
		cfg.Anki.DeckName = deck
	}
	noAudio, _ := cmd.Flags().GetBool("no-audio")
	noMW, _ := cmd.Flags().GetBool("no-mw")
	force, _ := cmd.Flags().GetBool("force")
	delay, _ := cmd.Flags().GetDuration("delay")

	ctx := cmd.Context()

	notes := anki.NewClient(cfg.Anki, &http.Client{Timeout: cfg.Anki.Timeout}, nil)
	if err := process.SetupAnki(ctx, notes, cfg.Anki, os.Stdout); err != nil {
		return err
	}

	source := vocab.NewFetcher(cfg.Vocabulary, cfg.Limits, &http.Client{Timeout: cfg.Vocabulary.Timeout}, nil)

	store, err := cache.NewStore(cfg.Cache)
	var wordCache process.WordCache
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: word cache disabled: %v\n", err)
	} else {
		defer store.Close()
		wordCache = store
	}

	var enricher process.Enricher
	if cfg.MW.Enable && !noMW {
		mwClient := mw.NewClient(cfg.MW, &http.Client{Timeout: cfg.MW.Timeout}, nil)
		enricher = card.NewMWEnricher(mwClient, cfg.MW, cfg.Limits, nil)
	}

	var audioSource process.AudioSource
	if cfg.Audio.Enable && !noAudio {
		audioSource = audio.NewDownloader(cfg.Audio, &http.Client{Timeout: cfg.Audio.Timeout}, nil)
	}

	p := process.NewProcessor(cfg, source, wordCache, enricher, audioSource, notes, nil)
	result := p.ProcessWords(ctx, words, process.Options{
		ForceUpdate: force,
		SkipAudio:   noAudio,
		Delay:       delay,
	}, os.Stdout)

	if result.HasFailures() {
		return fmt.Errorf("%d word(s) failed", result.Failed)
	}
	return nil
}
