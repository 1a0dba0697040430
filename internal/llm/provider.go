package llm

import (
	"context"
	"fmt"

	"github.com/ppiankov/emotia/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a narrative for the report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest contains the input for narrative generation
type SummarizeRequest struct {
	// Report is the finished analysis to narrate. Its numbers are final;
	// the narrative is presentation only.
	Report model.Report

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the generated narrative
type SummarizeResponse struct {
	Summary    string // Markdown narrative text
	Model      string // Model that generated the response
	TokensUsed int    // Token consumption
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Client-side rate limit on completion calls, shared across batch workers
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:          "", // Disabled by default
		Model:             "",
		Timeout:           30,
		MaxTokens:         800,
		RequestsPerSecond: 1,
		Burst:             2,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:          c.Provider,
		Model:             c.Model,
		APIKey:            c.APIKey,
		BaseURL:           c.BaseURL,
		Timeout:           c.Timeout,
		MaxTokens:         c.MaxTokens,
		RequestsPerSecond: c.RequestsPerSecond,
		Burst:             c.Burst,
	}
}

// BuildPrompt constructs the default prompt for report narration. The model
// gets only the computed numbers and must stay within them.
func BuildPrompt(report model.Report) string {
	prompt := fmt.Sprintf(`You are narrating an emotia report: a descriptive emotion-category profile of a corpus of fact-checked political statements.

CRITICAL RULES:
1. Describe ONLY the numbers given below. Do not invent figures.
2. Do not speculate about causes, politics, or the truthfulness of any group.
3. Counts and frequencies are lexicon matches, not judgments.

Report summary:
- Dataset: %s
- Statements: %d
- Tokens after stopword filtering: %d
- Lexicon matches: %d
- Vocabulary: %d distinct words
`, report.Dataset, report.Counts.Statements, report.Counts.Kept, report.Counts.EmotionHits, report.WordStats.Vocabulary)

	// Include the single-dimension sections in full
	for _, section := range report.Sections {
		if len(section.Grouping) != 1 {
			continue
		}
		prompt += fmt.Sprintf("\n%s:\n", section.Title)
		for _, row := range section.Rows {
			prompt += fmt.Sprintf("- %s: %d (%.2f)\n", row.Key[len(row.Key)-1], row.Count, row.Frequency)
		}
	}

	prompt += "\nProvide a 4-6 sentence Markdown narrative of the distributions above."

	return prompt
}
