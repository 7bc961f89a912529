package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tkoval/anki-vocab/internal/audio"
	"github.com/tkoval/anki-vocab/internal/textutil"
)

var audioCmd = &cobra.Command{
	Use:   "audio [words...]",
	Short: "Download pronunciation audio without touching Anki",
	Long: `Audio downloads US and UK pronunciation files for the given words into
the configured audio directory. Files that already exist are kept.`,
	RunE: runAudio,
}

func init() {
	audioCmd.Flags().String("dir", "", "audio directory (overrides config)")

	rootCmd.AddCommand(audioCmd)
}

func runAudio(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more words")
	}

	cfg := buildConfig()
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		cfg.Audio.Dir = dir
	}

	d := audio.NewDownloader(cfg.Audio, &http.Client{Timeout: cfg.Audio.Timeout}, nil)
	ctx := cmd.Context()

	failed := 0
	for i, arg := range args {
		word := textutil.CleanWord(arg)
		if !textutil.IsValidWord(word) {
			fmt.Printf("%s: invalid word, skipped\n", arg)
			failed++
			continue
		}
		if i > 0 && cfg.Audio.Delay > 0 {
			time.Sleep(cfg.Audio.Delay)
		}

		files := d.DownloadWordAudio(ctx, word)
		switch {
		case files.US != "" && files.UK != "":
			fmt.Printf("%s: %s, %s\n", word, files.US, files.UK)
		case files.US != "" || files.UK != "":
			fmt.Printf("%s: %s%s (one accent only)\n", word, files.US, files.UK)
		default:
			fmt.Printf("%s: no audio available\n", word)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d word(s) without audio", failed)
	}
	return nil
}
