package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/emotia/internal/model"
	"github.com/ppiankov/emotia/internal/text"
)

// fixture writes a corpus, lexicon, and stopword file into a temp dir and
// returns a config wired to them.
func fixture(t *testing.T) (*model.Config, string) {
	t.Helper()
	dir := t.TempDir()

	corpus := strings.Join([]string{
		`2635.json,false,Taxes are destroying our jobs and our joy.,economy,someone,governor,texas,republican,0,1,0,0,0,a speech`,
		`1234.json,half-true,We cheer the new jobs report.,jobs,other,senator,ohio,democrat,1,0,2,0,0,an interview`,
		`9999.json,true,The the the.,elections,third,mayor,maine,none,0,0,0,0,0,a debate`,
	}, "\n") + "\n"
	corpusPath := filepath.Join(dir, "train.csv")
	if err := os.WriteFile(corpusPath, []byte(corpus), 0644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}

	lexicon := strings.Join([]string{
		"destroying\tanger\t1",
		"destroying\tnegative\t1",
		"joy\tjoy\t1",
		"joy\tpositive\t1",
		"cheer\tjoy\t1",
		"jobs\tpositive\t1",
	}, "\n") + "\n"
	lexPath := filepath.Join(dir, "lexicon.txt")
	if err := os.WriteFile(lexPath, []byte(lexicon), 0644); err != nil {
		t.Fatalf("write lexicon: %v", err)
	}

	stopPath := filepath.Join(dir, "stopwords.txt")
	if err := os.WriteFile(stopPath, []byte("the\nare\nand\nour\nwe\na\n"), 0644); err != nil {
		t.Fatalf("write stopwords: %v", err)
	}

	cfg := model.DefaultConfig()
	cfg.Reference.LexiconPath = lexPath
	cfg.Reference.StopwordsPath = stopPath
	cfg.Report.TopWords = 5
	return cfg, corpusPath
}

func TestPipeline_Analyze(t *testing.T) {
	cfg, corpusPath := fixture(t)

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}

	result, err := p.Analyze(context.Background(), corpusPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	report := result.Report

	if report.Dataset != "train" {
		t.Errorf("dataset = %q, want train", report.Dataset)
	}
	if report.Counts.Statements != 3 {
		t.Errorf("statements = %d, want 3", report.Counts.Statements)
	}
	// Row 1: 8 raw, keeps taxes destroying jobs joy; row 2: 6 raw, keeps
	// cheer new jobs report; row 3: 3 raw, all stopwords
	if report.Counts.Tokens != 17 {
		t.Errorf("tokens = %d, want 17", report.Counts.Tokens)
	}
	if report.Counts.Kept != 8 {
		t.Errorf("kept = %d, want 8", report.Counts.Kept)
	}
	// destroying->2, joy->2, jobs->1 (row 1); cheer->1, jobs->1 (row 2)
	if report.Counts.EmotionHits != 7 {
		t.Errorf("emotion hits = %d, want 7", report.Counts.EmotionHits)
	}

	if report.WordStats.Vocabulary != 7 {
		t.Errorf("vocabulary = %d, want 7", report.WordStats.Vocabulary)
	}

	if len(report.Sections) != 6 {
		t.Fatalf("expected 6 sections, got %d", len(report.Sections))
	}

	byTitle := make(map[string]model.Section)
	for _, s := range report.Sections {
		byTitle[s.Title] = s
	}

	rating, ok := byTitle["Emotion hits by rating"]
	if !ok {
		t.Fatal("missing rating section")
	}
	ratingCounts := make(map[string]int)
	for _, row := range rating.Rows {
		ratingCounts[row.Key[0]] = row.Count
	}
	if ratingCounts["false"] != 5 || ratingCounts["half-true"] != 2 {
		t.Errorf("rating counts = %v, want false=5 half-true=2", ratingCounts)
	}

	categories, ok := byTitle["Emotion categories"]
	if !ok {
		t.Fatal("missing categories section")
	}
	total := 0
	for _, row := range categories.Rows {
		total += row.Count
	}
	if total != report.Counts.EmotionHits {
		t.Errorf("category counts sum to %d, want %d", total, report.Counts.EmotionHits)
	}

	if report.LLM != nil {
		t.Error("narrative must be absent when no provider is configured")
	}
}

func TestPipeline_Analyze_Deterministic(t *testing.T) {
	cfg, corpusPath := fixture(t)

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}

	first, err := p.Analyze(context.Background(), corpusPath)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := p.Analyze(context.Background(), corpusPath)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(first.Report.Sections) != len(second.Report.Sections) {
		t.Fatal("section count differs between runs")
	}
	for i := range first.Report.Sections {
		a, b := first.Report.Sections[i], second.Report.Sections[i]
		if a.Title != b.Title || len(a.Rows) != len(b.Rows) {
			t.Fatalf("section %d differs between runs", i)
		}
		for j := range a.Rows {
			if a.Rows[j].Count != b.Rows[j].Count || a.Rows[j].Frequency != b.Rows[j].Frequency {
				t.Errorf("section %q row %d differs between runs", a.Title, j)
			}
		}
	}
}

func TestPipeline_MissingReference(t *testing.T) {
	cfg, corpusPath := fixture(t)
	cfg.Reference.LexiconPath = filepath.Join(t.TempDir(), "absent.txt")

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}

	_, err = p.Analyze(context.Background(), corpusPath)
	if !errors.Is(err, text.ErrMissingReference) {
		t.Errorf("expected ErrMissingReference, got %v", err)
	}
}

func TestPipeline_MissingDataset(t *testing.T) {
	cfg, _ := fixture(t)

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}

	if _, err := p.Analyze(context.Background(), filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing dataset")
	}
}

func TestPipeline_CachedReference(t *testing.T) {
	cfg, corpusPath := fixture(t)
	cfg.Cache.Enabled = true

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}

	first, err := p.Analyze(context.Background(), corpusPath)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Report.Counts.EmotionHits == 0 {
		t.Fatal("fixture produced no hits")
	}

	// Blank the lexicon on disk but keep its size and mtime, so the cache
	// key is unchanged. The second run must still see the parsed entries.
	lexPath := cfg.Reference.LexiconPath
	info, err := os.Stat(lexPath)
	if err != nil {
		t.Fatalf("stat lexicon: %v", err)
	}
	blank := strings.Repeat("#", int(info.Size())-1) + "\n"
	if err := os.WriteFile(lexPath, []byte(blank), 0644); err != nil {
		t.Fatalf("blank lexicon: %v", err)
	}
	if err := os.Chtimes(lexPath, info.ModTime(), info.ModTime()); err != nil {
		t.Fatalf("restore mtime: %v", err)
	}

	second, err := p.Analyze(context.Background(), corpusPath)
	if err != nil {
		t.Fatalf("second run after cache warm-up: %v", err)
	}
	if second.Report.Counts.EmotionHits != first.Report.Counts.EmotionHits {
		t.Errorf("cached run diverged: %d vs %d hits", second.Report.Counts.EmotionHits, first.Report.Counts.EmotionHits)
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", ',', false},
		{",", ',', false},
		{"\\t", '\t', false},
		{"tab", '\t', false},
		{"|", '|', false},
		{"ab", 0, true},
	}
	for _, tc := range tests {
		got, err := parseDelimiter(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseDelimiter(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("parseDelimiter(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}
