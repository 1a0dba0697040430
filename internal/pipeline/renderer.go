package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/emotia/internal/llm"
	"github.com/ppiankov/emotia/internal/model"
)

const barWidth = 40

// Renderer writes reports as JSON and Markdown
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes the report as Markdown with text bar charts
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Emotion Profile: %s\n\n", report.Dataset)
	fmt.Fprintf(&b, "Source: `%s`  \n", report.SourcePath)
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04 UTC"))

	fmt.Fprintf(&b, "## Corpus\n\n")
	fmt.Fprintf(&b, "| Stage | Rows |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Statements | %d |\n", report.Counts.Statements)
	fmt.Fprintf(&b, "| Tokens | %d |\n", report.Counts.Tokens)
	fmt.Fprintf(&b, "| After stopword filter | %d |\n", report.Counts.Kept)
	fmt.Fprintf(&b, "| Lexicon matches | %d |\n\n", report.Counts.EmotionHits)

	fmt.Fprintf(&b, "Vocabulary: %d distinct words. Tokens per statement: mean %.1f, median %.1f, stddev %.1f.\n\n",
		report.WordStats.Vocabulary, report.WordStats.MeanTokens, report.WordStats.Median, report.WordStats.StdDev)

	for _, section := range report.Sections {
		r.renderSection(&b, section)
	}

	if len(report.TopWords) > 0 {
		fmt.Fprintf(&b, "## Top words\n\n")
		fmt.Fprintf(&b, "| Word | Count |\n|---|---:|\n")
		for _, w := range report.TopWords {
			fmt.Fprintf(&b, "| %s | %d |\n", w.Word, w.Count)
		}
		fmt.Fprintf(&b, "\n")
	}

	if report.LLM != nil && report.LLM.Enabled {
		fmt.Fprintf(&b, "## Narrative (generated)\n\n%s\n\n", report.LLM.SummaryMD)
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\nGenerated by emotia. Counts are lexicon matches over tokenized text; frequencies are rounded half-up to two decimals and may not sum to exactly 1.0.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// renderSection renders one aggregate table as a labeled bar chart
func (r *Renderer) renderSection(b *strings.Builder, section model.Section) {
	fmt.Fprintf(b, "## %s\n\n", section.Title)

	if len(section.Rows) == 0 {
		fmt.Fprintf(b, "No data.\n\n")
		return
	}

	maxCount := 0
	keyWidth := 0
	for _, row := range section.Rows {
		if row.Count > maxCount {
			maxCount = row.Count
		}
		if w := len(displayKey(row.Key)); w > keyWidth {
			keyWidth = w
		}
	}

	fmt.Fprintf(b, "```\n")
	for _, row := range section.Rows {
		bar := strings.Repeat("█", scale(row.Count, maxCount))
		if bar == "" {
			bar = "▏"
		}
		fmt.Fprintf(b, "%-*s %s %d (%.2f)\n", keyWidth, displayKey(row.Key), bar, row.Count, row.Frequency)
	}
	fmt.Fprintf(b, "```\n\n")
}

// RenderLLMMarkdown writes the standalone narrative document
func (r *Renderer) RenderLLMMarkdown(summary *model.LLMSummary, path string) error {
	md := llm.RenderSeparateMarkdown(summary)
	if md == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints a short result summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n%s: %d statements, %d lexicon matches\n", report.Dataset, report.Counts.Statements, report.Counts.EmotionHits)
	for _, section := range report.Sections {
		if len(section.Grouping) == 1 && section.Grouping[0] == model.DimCategory {
			for _, row := range section.Rows {
				fmt.Printf("  %-14s %6d (%.2f)\n", displayKey(row.Key), row.Count, row.Frequency)
			}
		}
	}
}

func displayKey(key []string) string {
	parts := make([]string, 0, len(key))
	for _, k := range key {
		if k == "" {
			k = "(none)"
		}
		parts = append(parts, k)
	}
	return strings.Join(parts, " / ")
}

func scale(count, maxCount int) int {
	if maxCount == 0 {
		return 0
	}
	return count * barWidth / maxCount
}
