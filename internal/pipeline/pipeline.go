package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ppiankov/emotia/internal/aggregate"
	"github.com/ppiankov/emotia/internal/dataset"
	"github.com/ppiankov/emotia/internal/lexicon"
	"github.com/ppiankov/emotia/internal/llm"
	"github.com/ppiankov/emotia/internal/model"
	"github.com/ppiankov/emotia/internal/refcache"
	"github.com/ppiankov/emotia/internal/stats"
	"github.com/ppiankov/emotia/internal/text"
)

// sections are the fixed aggregate tables of every report
var sections = []struct {
	title    string
	grouping model.Grouping
}{
	{"Emotion hits by rating", model.Grouping{model.DimLabel}},
	{"Emotion hits by party", model.Grouping{model.DimParty}},
	{"Emotion categories", model.Grouping{model.DimCategory}},
	{"Emotion categories by rating", model.Grouping{model.DimLabel, model.DimCategory}},
	{"Emotion categories by party", model.Grouping{model.DimParty, model.DimCategory}},
	{"Emotion categories by subject", model.Grouping{model.DimSubject, model.DimCategory}},
}

// Pipeline orchestrates the complete analysis. Each run is synchronous:
// every stage fully materializes its output before the next starts, and no
// state is shared across runs except the read-only reference data.
type Pipeline struct {
	loader     *dataset.Loader
	tokenizer  *text.Tokenizer
	renderer   *Renderer
	summarizer *llm.Summarizer // Optional narrative (nil if disabled)
	cache      refcache.Cache  // Memoizes parsed reference data (nil if disabled)
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	delimiter, err := parseDelimiter(cfg.Input.Delimiter)
	if err != nil {
		return nil, err
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			return nil, fmt.Errorf("init LLM provider: %w", err)
		}
		summarizer = s
	}

	var cache refcache.Cache
	if cfg.Cache.Enabled {
		cache = refcache.NewMemory(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	return &Pipeline{
		loader:     dataset.NewLoader(delimiter),
		tokenizer:  text.NewTokenizer(),
		renderer:   NewRenderer(cfg.Report.IncludeFooter),
		summarizer: summarizer,
		cache:      cache,
		config:     cfg,
	}, nil
}

// Result contains the completed analysis
type Result struct {
	Report *model.Report
}

// Analyze runs the full pipeline over one dataset file
func (p *Pipeline) Analyze(ctx context.Context, path string) (*Result, error) {
	lex, stopwords, err := p.loadReference()
	if err != nil {
		return nil, err
	}

	// 1. Load the corpus
	statements, err := p.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	// 2. Normalize record ids
	statements = dataset.NormalizeIDs(statements)

	// 3. Tokenize statement text
	tokens := p.tokenizer.Tokenize(statements)

	// 4. Drop stopwords
	kept := stopwords.Filter(tokens)

	// 5. Join against the emotion lexicon
	hits := lex.Join(kept)

	// 6. Aggregate and describe
	report := &model.Report{
		Dataset:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		SourcePath:  path,
		GeneratedAt: time.Now().UTC(),
		Counts: model.StageCounts{
			Statements:  len(statements),
			Tokens:      len(tokens),
			Kept:        len(kept),
			EmotionHits: len(hits),
		},
		WordStats: stats.TokenStats(statements, kept),
		TopWords:  stats.TopWords(kept, p.config.Report.TopWords),
	}
	for _, s := range sections {
		report.Sections = append(report.Sections, model.Section{
			Title:    s.title,
			Grouping: s.grouping,
			Rows:     aggregate.GroupBy(hits, s.grouping),
		})
	}

	// 7. Generate the optional narrative, after the numbers are final
	if p.summarizer.IsEnabled() {
		summary, err := p.summarizer.GenerateSummary(ctx, *report)
		if err != nil {
			// The narrative is presentation only; a failure never fails the run
			fmt.Printf("Warning: narrative generation failed: %v\n", err)
		} else if summary != nil {
			report.LLM = summary
		}
	}

	return &Result{Report: report}, nil
}

// loadReference loads (or reuses) the lexicon and stopword set
func (p *Pipeline) loadReference() (*lexicon.Lexicon, text.Stopwords, error) {
	lexPath := p.config.Reference.LexiconPath
	stopPath := p.config.Reference.StopwordsPath

	var lex *lexicon.Lexicon
	if cached, ok := p.cacheGet(lexPath); ok {
		lex = cached.(*lexicon.Lexicon)
	} else {
		loaded, err := lexicon.Load(lexPath)
		if err != nil {
			return nil, nil, fmt.Errorf("reference data: %w", err)
		}
		lex = loaded
		p.cacheSet(lexPath, lex)
	}

	var stopwords text.Stopwords
	if cached, ok := p.cacheGet(stopPath); ok {
		stopwords = cached.(text.Stopwords)
	} else {
		loaded, err := text.LoadStopwords(stopPath)
		if err != nil {
			return nil, nil, fmt.Errorf("reference data: %w", err)
		}
		stopwords = loaded
		p.cacheSet(stopPath, stopwords)
	}

	return lex, stopwords, nil
}

func (p *Pipeline) cacheGet(path string) (any, bool) {
	if p.cache == nil {
		return nil, false
	}
	return p.cache.Get(refcache.Key(path))
}

func (p *Pipeline) cacheSet(path string, value any) {
	if p.cache != nil {
		p.cache.Set(refcache.Key(path), value, 0)
	}
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "", ",":
		return ',', nil
	case "\\t", "tab":
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}
