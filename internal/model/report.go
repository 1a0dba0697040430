package model

import "time"

// Report is the complete emotion-profile analysis of one dataset
type Report struct {
	Dataset     string    `json:"dataset"`      // Dataset name (input file base name)
	SourcePath  string    `json:"source_path"`  // Path that was analyzed
	GeneratedAt time.Time `json:"generated_at"` // When the analysis ran

	Counts    StageCounts `json:"counts"`     // Row counts at each pipeline stage
	WordStats WordStats   `json:"word_stats"` // Descriptive statistics of statement lengths

	Sections []Section   `json:"sections"`  // Aggregate tables, in report order
	TopWords []WordCount `json:"top_words"` // Most frequent content words (word-cloud data)

	LLM *LLMSummary `json:"llm,omitempty"` // Optional generated narrative (never affects the numbers)
}

// StageCounts records how many rows each pipeline stage produced
type StageCounts struct {
	Statements  int `json:"statements"`   // Rows loaded from the dataset
	Tokens      int `json:"tokens"`       // Token occurrences emitted by the tokenizer
	Kept        int `json:"kept"`         // Tokens surviving the stopword filter
	EmotionHits int `json:"emotion_hits"` // (token, category) rows after the lexicon join
}

// WordStats summarizes token counts per statement across the dataset
type WordStats struct {
	Vocabulary int     `json:"vocabulary"` // Distinct content words after stopword filtering
	MeanTokens float64 `json:"mean_tokens"`
	StdDev     float64 `json:"std_dev"`
	Median     float64 `json:"median"`
}

// WordCount is one entry of the top-word list
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// LLMSummary contains the optional generated narrative.
// It is produced after the report numbers are final and never feeds back
// into them.
type LLMSummary struct {
	Enabled   bool   `json:"enabled"`
	Provider  string `json:"provider,omitempty"` // openai, anthropic, ollama
	Model     string `json:"model,omitempty"`
	SummaryMD string `json:"summary_md,omitempty"`
}
