package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/tkoval/anki-vocab/internal/secrets"
	"github.com/tkoval/anki-vocab/pkg/types"
)

const (
	defaultAjaxURL   = "https://www.vocabulary.com/dictionary/definition.ajax"
	defaultMWBaseURL = "https://dictionaryapi.com/api/v3/references"
	defaultAnkiURL   = "http://localhost:8765"
	defaultDeckName  = "Vocabulary"
	defaultModelName = "anki-vocab"
	defaultAudioDir  = "audio_files"
	defaultCacheDir  = ".cache"

	defaultFetchTimeout = 15 * time.Second
	defaultAnkiTimeout  = 10 * time.Second
	defaultAudioDelay   = time.Second

	// defaultUserAgent is a browser-like agent; vocabulary.com serves an
	// empty fragment to obvious bots.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	audioUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

func init() {
	viper.SetDefault("vocabulary.ajax_url", defaultAjaxURL)
	viper.SetDefault("vocabulary.timeout", defaultFetchTimeout)
	viper.SetDefault("vocabulary.user_agent", defaultUserAgent)

	viper.SetDefault("mw.enable", true)
	viper.SetDefault("mw.base_url", defaultMWBaseURL)
	viper.SetDefault("mw.timeout", defaultFetchTimeout)
	viper.SetDefault("mw.official_website_mode", true)

	viper.SetDefault("anki.url", defaultAnkiURL)
	viper.SetDefault("anki.deck_name", defaultDeckName)
	viper.SetDefault("anki.model_name", defaultModelName)
	viper.SetDefault("anki.timeout", defaultAnkiTimeout)

	viper.SetDefault("audio.enable", true)
	viper.SetDefault("audio.dir", defaultAudioDir)
	viper.SetDefault("audio.delay", defaultAudioDelay)
	viper.SetDefault("audio.timeout", defaultFetchTimeout)

	viper.SetDefault("cache.dir", defaultCacheDir)
	viper.SetDefault("cache.ttl_days", 30)
}

// buildConfig assembles the pipeline configuration from viper (file,
// environment, defaults) and the .secrets/ directory. Secrets fill
// credential fields the config file leaves empty.
func buildConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Vocabulary: types.VocabularyConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("vocabulary.timeout"),
				UserAgent: viper.GetString("vocabulary.user_agent"),
			},
			AjaxURL: viper.GetString("vocabulary.ajax_url"),
			Cookie:  secretDefault(secrets.VocabCookie, viper.GetString("vocabulary.cookie")),
		},
		MW: types.MWConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("mw.timeout"),
				UserAgent: defaultUserAgent,
			},
			Enable:              viper.GetBool("mw.enable"),
			BaseURL:             viper.GetString("mw.base_url"),
			CollegiateKey:       secretDefault(secrets.MWCollegiateKey, viper.GetString("mw.collegiate_key")),
			ThesaurusKey:        secretDefault(secrets.MWThesaurusKey, viper.GetString("mw.thesaurus_key")),
			OfficialWebsiteMode: viper.GetBool("mw.official_website_mode"),
		},
		Anki: types.AnkiConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout: viper.GetDuration("anki.timeout"),
			},
			URL:       viper.GetString("anki.url"),
			DeckName:  viper.GetString("anki.deck_name"),
			ModelName: viper.GetString("anki.model_name"),
		},
		Audio: types.AudioConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("audio.timeout"),
				UserAgent: audioUserAgent,
			},
			Enable: viper.GetBool("audio.enable"),
			Dir:    viper.GetString("audio.dir"),
			Delay:  viper.GetDuration("audio.delay"),
		},
		Cache: types.CacheConfig{
			Dir:     viper.GetString("cache.dir"),
			TTLDays: viper.GetInt("cache.ttl_days"),
		},
		Limits: types.DefaultLimits(),
	}
}
