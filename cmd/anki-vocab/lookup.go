package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/tkoval/anki-vocab/internal/card"
	"github.com/tkoval/anki-vocab/internal/mw"
	"github.com/tkoval/anki-vocab/internal/textutil"
	"github.com/tkoval/anki-vocab/internal/vocab"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Fetch a word and print its composed card fields",
	Long: `Lookup runs a single word through fetching, composition, and
Merriam-Webster enrichment, then prints the resulting note fields
without touching Anki. Useful for previewing a card or debugging
extraction.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().Bool("json", false, "print fields as JSON")
	lookupCmd.Flags().Bool("yaml", false, "print fields as YAML")
	lookupCmd.Flags().Bool("no-mw", false, "skip Merriam-Webster enrichment")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	word := textutil.CleanWord(args[0])
	if !textutil.IsValidWord(word) {
		return fmt.Errorf("invalid word: %q", args[0])
	}

	cfg := buildConfig()
	ctx := cmd.Context()

	fetcher := vocab.NewFetcher(cfg.Vocabulary, cfg.Limits, &http.Client{Timeout: cfg.Vocabulary.Timeout}, nil)
	info, err := fetcher.FetchWordInfo(ctx, word)
	if err != nil {
		return fmt.Errorf("fetching %q: %w", word, err)
	}
	if info == nil {
		return fmt.Errorf("word not found: %q", word)
	}

	fields := card.ComposeVocab(info, cfg.Limits)

	noMW, _ := cmd.Flags().GetBool("no-mw")
	if cfg.MW.Enable && !noMW {
		mwClient := mw.NewClient(cfg.MW, &http.Client{Timeout: cfg.MW.Timeout}, nil)
		enricher := card.NewMWEnricher(mwClient, cfg.MW, cfg.Limits, nil)
		fields.Merge(enricher.Enrich(ctx, word))
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	switch {
	case asJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(fields)
	case asYAML:
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(fields)
	default:
		printFields(fields)
		return nil
	}
}

// printFields writes fields in the card's declared order so numbered
// entries read top to bottom.
func printFields(fields card.Fields) {
	order := make(map[string]int, len(card.AllFields()))
	for i, name := range card.AllFields() {
		order[name] = i
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return order[names[i]] < order[names[j]] })

	for _, name := range names {
		fmt.Printf("%s:\n%s\n\n", name, fields[name])
	}
}
