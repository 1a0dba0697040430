package model

import "time"

// Config is the full emotia configuration tree. Values come from (highest to
// lowest priority) CLI flags, EMOTIA_* environment variables, the config
// file, and DefaultConfig.
type Config struct {
	Input       InputConfig       `yaml:"input" json:"input"`
	Reference   ReferenceConfig   `yaml:"reference" json:"reference"`
	Report      ReportConfig      `yaml:"report" json:"report"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
}

// InputConfig controls dataset parsing
type InputConfig struct {
	Delimiter string `yaml:"delimiter" json:"delimiter"` // Single-rune field delimiter
}

// ReferenceConfig locates the static reference data
type ReferenceConfig struct {
	LexiconPath   string `yaml:"lexicon" json:"lexicon"`     // word -> emotion category mapping
	StopwordsPath string `yaml:"stopwords" json:"stopwords"` // one stopword per line
}

// ReportConfig controls report rendering
type ReportConfig struct {
	TopWords      int  `yaml:"top_words" json:"top_words"` // Size of the word-cloud list
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// CacheConfig controls reference-data memoization
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// LLMConfig controls the optional report narrative
type LLMConfig struct {
	Provider          string  `yaml:"provider" json:"provider"` // "" disables the narrative
	Model             string  `yaml:"model" json:"model"`
	APIKey            string  `yaml:"-" json:"-"` // From environment only, never persisted
	BaseURL           string  `yaml:"base_url" json:"base_url"`
	Timeout           int     `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens         int     `yaml:"max_tokens" json:"max_tokens"`
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int     `yaml:"burst" json:"burst"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Delimiter: ",",
		},
		Reference: ReferenceConfig{
			LexiconPath:   "data/emotion-lexicon.txt",
			StopwordsPath: "data/stopwords.txt",
		},
		Report: ReportConfig{
			TopWords:      50,
			Verbose:       false,
			IncludeFooter: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Provider:          "", // Disabled by default
			Model:             "",
			Timeout:           30,
			MaxTokens:         800,
			RequestsPerSecond: 1,
			Burst:             2,
		},
	}
}
