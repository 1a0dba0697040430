package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/emotia/internal/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		Dataset:     "train",
		SourcePath:  "testdata/train.csv",
		GeneratedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Counts:      model.StageCounts{Statements: 3, Tokens: 17, Kept: 8, EmotionHits: 7},
		WordStats:   model.WordStats{Vocabulary: 7, MeanTokens: 2.7, StdDev: 2.1, Median: 4},
		Sections: []model.Section{
			{
				Title:    "Emotion categories",
				Grouping: model.Grouping{model.DimCategory},
				Rows: []model.AggregateRow{
					{Key: []string{"joy"}, Count: 3, Frequency: 0.43},
					{Key: []string{"positive"}, Count: 3, Frequency: 0.43},
					{Key: []string{"anger"}, Count: 1, Frequency: 0.14},
				},
			},
			{
				Title:    "Emotion hits by party",
				Grouping: model.Grouping{model.DimParty},
				Rows: []model.AggregateRow{
					{Key: []string{""}, Count: 7, Frequency: 1.0},
				},
			},
		},
		TopWords: []model.WordCount{{Word: "jobs", Count: 2}, {Word: "joy", Count: 1}},
	}
}

func TestRenderJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	r := NewRenderer(true)

	if err := r.RenderJSON(sampleReport(), path); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Counts.EmotionHits != 7 {
		t.Errorf("round-tripped hits = %d, want 7", decoded.Counts.EmotionHits)
	}
	if len(decoded.Sections) != 2 || decoded.Sections[0].Rows[0].Frequency != 0.43 {
		t.Errorf("sections did not survive the round trip: %+v", decoded.Sections)
	}
}

func TestRenderMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	r := NewRenderer(true)

	if err := r.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	md := string(data)

	for _, want := range []string{
		"# Emotion Profile: train",
		"| Statements | 3 |",
		"| Lexicon matches | 7 |",
		"Vocabulary: 7 distinct words",
		"## Emotion categories",
		"█",
		"3 (0.43)",
		"## Top words",
		"| jobs | 2 |",
		"(none)", // empty party key is labeled, not blank
		"Generated by emotia",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderMarkdown_NoFooter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	r := NewRenderer(false)

	if err := r.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(data), "Generated by emotia") {
		t.Error("footer rendered despite being disabled")
	}
}

func TestRenderMarkdown_EmptySection(t *testing.T) {
	report := sampleReport()
	report.Sections = []model.Section{{Title: "Emotion categories", Grouping: model.Grouping{model.DimCategory}}}
	report.TopWords = nil

	path := filepath.Join(t.TempDir(), "report.md")
	if err := NewRenderer(false).RenderMarkdown(report, path); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	md := string(data)
	if !strings.Contains(md, "No data.") {
		t.Error("empty section should render a placeholder")
	}
	if strings.Contains(md, "## Top words") {
		t.Error("top words section rendered with no words")
	}
}

func TestRenderLLMMarkdown(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(false)

	// Nil summary writes nothing
	skipped := filepath.Join(dir, "skipped.md")
	if err := r.RenderLLMMarkdown(nil, skipped); err != nil {
		t.Fatalf("render nil: %v", err)
	}
	if _, err := os.Stat(skipped); !os.IsNotExist(err) {
		t.Error("expected no file for a nil summary")
	}

	path := filepath.Join(dir, "narrative.md")
	summary := &model.LLMSummary{Enabled: true, Provider: "ollama", Model: "llama3.2", SummaryMD: "Body."}
	if err := r.RenderLLMMarkdown(summary, path); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "ollama/llama3.2") {
		t.Error("narrative document missing provenance line")
	}
}

func TestDisplayKey(t *testing.T) {
	tests := []struct {
		key  []string
		want string
	}{
		{[]string{"joy"}, "joy"},
		{[]string{""}, "(none)"},
		{[]string{"democrat", "joy"}, "democrat / joy"},
		{[]string{"", "joy"}, "(none) / joy"},
	}
	for _, tc := range tests {
		if got := displayKey(tc.key); got != tc.want {
			t.Errorf("displayKey(%v) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestScale(t *testing.T) {
	if got := scale(10, 10); got != barWidth {
		t.Errorf("full bar = %d, want %d", got, barWidth)
	}
	if got := scale(0, 10); got != 0 {
		t.Errorf("zero count = %d, want 0", got)
	}
	if got := scale(5, 0); got != 0 {
		t.Errorf("zero max = %d, want 0", got)
	}
}
