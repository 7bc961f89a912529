package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// VocabularyConfig holds settings for the vocabulary.com fetcher.
type VocabularyConfig struct {
	HTTPConfig `yaml:",inline"`

	// AjaxURL is the definition fragment endpoint.
	AjaxURL string `json:"ajax_url" yaml:"ajax_url"`

	// Cookie is an optional authentication cookie sent with each request.
	Cookie string `json:"cookie,omitempty" yaml:"cookie,omitempty"`
}

// MWConfig holds settings for the Merriam-Webster API client.
type MWConfig struct {
	HTTPConfig `yaml:",inline"`

	// Enable turns Merriam-Webster enrichment on. Enrichment also requires
	// at least one API key below.
	Enable bool `json:"enable" yaml:"enable"`

	// BaseURL is the API root, e.g. "https://dictionaryapi.com/api/v3/references".
	BaseURL string `json:"base_url" yaml:"base_url"`

	// CollegiateKey authorizes the collegiate dictionary dataset.
	// An empty key disables that dataset silently.
	CollegiateKey string `json:"collegiate_key,omitempty" yaml:"collegiate_key,omitempty"`

	// ThesaurusKey authorizes the thesaurus dataset.
	ThesaurusKey string `json:"thesaurus_key,omitempty" yaml:"thesaurus_key,omitempty"`

	// OfficialWebsiteMode restricts collegiate entries to main entries of
	// the searched word, matching what the MW website itself shows.
	OfficialWebsiteMode bool `json:"official_website_mode" yaml:"official_website_mode"`
}

// AnkiConfig holds settings for the AnkiConnect client.
type AnkiConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL is the AnkiConnect endpoint (default "http://localhost:8765").
	URL string `json:"url" yaml:"url"`

	// DeckName is the target deck for new notes.
	DeckName string `json:"deck_name" yaml:"deck_name"`

	// ModelName is the note type used for vocabulary cards.
	ModelName string `json:"model_name" yaml:"model_name"`
}

// AudioConfig holds settings for pronunciation audio downloads.
type AudioConfig struct {
	HTTPConfig `yaml:",inline"`

	// Enable turns audio downloading on.
	Enable bool `json:"enable" yaml:"enable"`

	// Dir is the local directory audio files are written to.
	Dir string `json:"dir" yaml:"dir"`

	// Delay is the pause between consecutive word downloads.
	Delay time.Duration `json:"delay" yaml:"delay"`
}

// CacheConfig holds settings for the word-info cache.
type CacheConfig struct {
	// Dir is the directory holding the cache database.
	Dir string `json:"dir" yaml:"dir"`

	// TTLDays is how long a cached word stays valid (default 30).
	TTLDays int `json:"ttl_days" yaml:"ttl_days"`
}

// Limits bounds extraction and composition output. The values are fixed at
// composition time and passed explicitly so tests can shrink them.
type Limits struct {
	// MaxDefinitions caps definitions per word, and rendered definition
	// entries across all MW definition blocks (dividers included).
	MaxDefinitions int `json:"max_definitions" yaml:"max_definitions"`

	// MaxExamples caps usage examples per definition.
	MaxExamples int `json:"max_examples" yaml:"max_examples"`

	// MaxSynonyms and MaxAntonyms cap per-sense word lists at extraction.
	MaxSynonyms int `json:"max_synonyms" yaml:"max_synonyms"`
	MaxAntonyms int `json:"max_antonyms" yaml:"max_antonyms"`

	// MaxWordForms caps the "Other forms" list.
	MaxWordForms int `json:"max_word_forms" yaml:"max_word_forms"`

	// MaxSensesPerEntry caps thesaurus/learner sense sequences read per
	// definition block.
	MaxSensesPerEntry int `json:"max_senses_per_entry" yaml:"max_senses_per_entry"`

	// MaxSynonymGroups and MaxWordsPerGroup cap the thesaurus metadata
	// fallback lists.
	MaxSynonymGroups int `json:"max_synonym_groups" yaml:"max_synonym_groups"`
	MaxWordsPerGroup int `json:"max_words_per_group" yaml:"max_words_per_group"`

	// MaxDisplaySynonyms caps synonym/antonym lines on composed cards,
	// tighter than the extraction cap.
	MaxDisplaySynonyms int `json:"max_display_synonyms" yaml:"max_display_synonyms"`
}

// DefaultLimits returns the production limits. The 25-entry caps match the
// numbered field vocabulary on the card template.
func DefaultLimits() Limits {
	return Limits{
		MaxDefinitions:     25,
		MaxExamples:        3,
		MaxSynonyms:        12,
		MaxAntonyms:        12,
		MaxWordForms:       25,
		MaxSensesPerEntry:  3,
		MaxSynonymGroups:   4,
		MaxWordsPerGroup:   6,
		MaxDisplaySynonyms: 6,
	}
}

// PipelineConfig groups all component configurations.
type PipelineConfig struct {
	Vocabulary VocabularyConfig `json:"vocabulary" yaml:"vocabulary"`
	MW         MWConfig         `json:"mw" yaml:"mw"`
	Anki       AnkiConfig       `json:"anki" yaml:"anki"`
	Audio      AudioConfig      `json:"audio" yaml:"audio"`
	Cache      CacheConfig      `json:"cache" yaml:"cache"`
	Limits     Limits           `json:"limits" yaml:"limits"`
}
