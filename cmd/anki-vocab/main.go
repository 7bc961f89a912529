// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the anki-vocab CLI.
//
// anki-vocab turns English words into Anki flashcards: it scrapes
// vocabulary.com for definitions, enriches them with Merriam-Webster
// data, downloads pronunciation audio, and pushes notes to a running
// Anki instance through AnkiConnect.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tkoval/anki-vocab/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, otherwise the secret
// value stored under key, otherwise "".
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the anki-vocab CLI.
var rootCmd = &cobra.Command{
	Use:   "anki-vocab",
	Short: "Build Anki vocabulary cards from dictionary sources",
	Long: `anki-vocab builds rich Anki flashcards for English vocabulary. Definitions,
examples, synonyms, and word forms come from vocabulary.com; structured
dictionary entries, etymology, and thesaurus data come from the
Merriam-Webster API; pronunciation audio comes from Google or Youdao TTS.

Each stage is a subcommand: add processes words end to end, lookup previews
the composed fields without touching Anki, cache and audio manage the local
stores.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		setupLogger(cmd)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./anki-vocab.yaml or ~/.config/anki-vocab/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("anki-vocab")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "anki-vocab"))
		}
	}

	viper.SetEnvPrefix("ANKI_VOCAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setupLogger installs a text slog handler at the level named by
// --log-level as the process default. Unknown levels fall back to warn.
func setupLogger(cmd *cobra.Command) {
	name, _ := cmd.Flags().GetString("log-level")
	var level slog.Level
	switch strings.ToLower(name) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
