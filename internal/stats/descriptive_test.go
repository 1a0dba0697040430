package stats

import (
	"math"
	"reflect"
	"testing"

	"github.com/ppiankov/emotia/internal/model"
)

func tokens(st *model.Statement, words ...string) []model.TokenRow {
	rows := make([]model.TokenRow, len(words))
	for i, w := range words {
		rows[i] = model.TokenRow{Statement: st, Word: w, Position: i}
	}
	return rows
}

func TestTokenStats(t *testing.T) {
	statements := []model.Statement{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	var kept []model.TokenRow
	kept = append(kept, tokens(&statements[0], "taxes", "jobs", "taxes", "economy")...)
	kept = append(kept, tokens(&statements[1], "health", "taxes")...)
	// statement 3 lost everything to the stopword filter

	got := TokenStats(statements, kept)

	if got.Vocabulary != 4 {
		t.Errorf("vocabulary = %d, want 4", got.Vocabulary)
	}
	if want := 2.0; math.Abs(got.MeanTokens-want) > 1e-9 {
		t.Errorf("mean = %v, want %v", got.MeanTokens, want)
	}
	if got.Median != 2.0 {
		t.Errorf("median = %v, want 2", got.Median)
	}
	// Sample stddev of {4, 2, 0} is 2
	if math.Abs(got.StdDev-2.0) > 1e-9 {
		t.Errorf("stddev = %v, want 2", got.StdDev)
	}
}

func TestTokenStats_SingleStatement(t *testing.T) {
	statements := []model.Statement{{ID: "1"}}
	kept := tokens(&statements[0], "taxes", "jobs")

	got := TokenStats(statements, kept)

	if got.MeanTokens != 2.0 || got.Median != 2.0 {
		t.Errorf("mean/median = %v/%v, want 2/2", got.MeanTokens, got.Median)
	}
	if got.StdDev != 0 {
		t.Errorf("stddev = %v, want 0 for a single sample", got.StdDev)
	}
}

func TestTokenStats_Empty(t *testing.T) {
	if got := TokenStats(nil, nil); got != (model.WordStats{}) {
		t.Errorf("expected zero stats, got %+v", got)
	}
}

func TestTopWords(t *testing.T) {
	st := model.Statement{ID: "1"}
	kept := tokens(&st,
		"taxes", "taxes", "taxes",
		"jobs", "jobs",
		"health", "health",
		"economy")

	got := TopWords(kept, 3)

	// health before jobs: same count, alphabetical tiebreak
	want := []model.WordCount{
		{Word: "taxes", Count: 3},
		{Word: "health", Count: 2},
		{Word: "jobs", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTopWords_FewerThanN(t *testing.T) {
	st := model.Statement{ID: "1"}
	got := TopWords(tokens(&st, "taxes"), 50)
	if len(got) != 1 {
		t.Errorf("expected 1 word, got %d", len(got))
	}
}

func TestTopWords_Disabled(t *testing.T) {
	st := model.Statement{ID: "1"}
	if got := TopWords(tokens(&st, "taxes"), 0); got != nil {
		t.Errorf("expected nil for n=0, got %v", got)
	}
}
