package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/emotia/internal/model"
	"github.com/ppiankov/emotia/internal/pipeline"
)

var (
	lexiconPath   string
	stopwordsPath string
	delimiter     string
	outJSON       string
	outMD         string
	topWords      int
	noCache       bool
	noFooter      bool
	llmEnabled    bool
	llmProvider   string
	llmModel      string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <dataset>",
	Short: "Analyze a statement corpus and generate an emotion-profile report",
	Long: `Analyze runs the full pipeline over one dataset file:
- Load the 14-column statement corpus (no header row)
- Normalize record ids
- Tokenize statement text and remove stopwords
- Join tokens against the emotion lexicon
- Aggregate counts and frequencies by rating, party, subject, and category
- Write JSON and Markdown reports

Example:
  emotia analyze train.csv
  emotia analyze train.csv --json report.json --md report.md
  emotia analyze train.tsv --delimiter tab --lexicon nrc.txt --stopwords en.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Reference data flags
	analyzeCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "emotion lexicon path (word<TAB>category<TAB>0|1)")
	analyzeCmd.Flags().StringVar(&stopwordsPath, "stopwords", "", "stopword list path (one word per line)")

	// Input flags
	analyzeCmd.Flags().StringVar(&delimiter, "delimiter", ",", `field delimiter ("," or "tab")`)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().IntVar(&topWords, "top", 50, "size of the top-word list")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable reference-data cache")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable generated report narrative")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Lexicon: %s\n", cfg.Reference.LexiconPath)
		fmt.Fprintf(os.Stderr, "Stopwords: %s\n", cfg.Reference.StopwordsPath)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	result, err := p.Analyze(ctx, path)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d statements\n", result.Report.Counts.Statements)
		fmt.Fprintf(os.Stderr, "✓ Tokenized %d words, kept %d after stopwords\n", result.Report.Counts.Tokens, result.Report.Counts.Kept)
		fmt.Fprintf(os.Stderr, "✓ Matched %d (word, category) pairs\n", result.Report.Counts.EmotionHits)
		if result.Report.LLM != nil && result.Report.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated narrative using %s/%s\n", result.Report.LLM.Provider, result.Report.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := renderOutputs(result.Report, outJSON, outMD); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles the effective configuration from defaults, the
// config file / environment (via viper), and flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if v := viper.GetString("reference.lexicon"); v != "" {
		cfg.Reference.LexiconPath = v
	}
	if v := viper.GetString("reference.stopwords"); v != "" {
		cfg.Reference.StopwordsPath = v
	}
	if lexiconPath != "" {
		cfg.Reference.LexiconPath = lexiconPath
	}
	if stopwordsPath != "" {
		cfg.Reference.StopwordsPath = stopwordsPath
	}

	cfg.Input.Delimiter = delimiter
	cfg.Report.TopWords = topWords
	cfg.Report.Verbose = verbose
	cfg.Report.IncludeFooter = !noFooter
	cfg.Cache.Enabled = !noCache

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		// Get API key from environment
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

// renderOutputs writes the requested report files and the stdout summary
func renderOutputs(report *model.Report, jsonPath, mdPath string) error {
	renderer := pipeline.NewRenderer(!noFooter)

	if jsonPath != "" {
		if err := renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	renderer.RenderSummary(report)
	return nil
}
