package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkoval/anki-vocab/internal/cache"
	"github.com/tkoval/anki-vocab/internal/textutil"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the word-info cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache size and age",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCache()
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats()
		if err != nil {
			return fmt.Errorf("reading cache stats: %w", err)
		}
		fmt.Printf("Cached words: %d\n", stats.Words)
		if stats.Words > 0 {
			fmt.Printf("Oldest fetch: %s\n", stats.Oldest.Format("2006-01-02 15:04:05"))
			fmt.Printf("Newest fetch: %s\n", stats.Newest.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [words...]",
	Short: "Remove cached words (all of them when no words are given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCache()
		if err != nil {
			return err
		}
		defer store.Close()

		if len(args) == 0 {
			if err := store.Clear(); err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}
			fmt.Println("Cache cleared")
			return nil
		}
		for _, arg := range args {
			word := textutil.CleanWord(arg)
			if err := store.Delete(word); err != nil {
				return fmt.Errorf("removing %q from cache: %w", word, err)
			}
			fmt.Printf("Removed %q\n", word)
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func openCache() (*cache.Store, error) {
	cfg := buildConfig()
	store, err := cache.NewStore(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	return store, nil
}
