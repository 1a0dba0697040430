package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ppiankov/emotia/internal/model"
)

// TokenStats computes descriptive statistics over the filtered token rows:
// vocabulary size and the distribution of tokens per statement. Statements
// that lost every token to the stopword filter still count as zero-length
// samples.
func TokenStats(statements []model.Statement, kept []model.TokenRow) model.WordStats {
	if len(statements) == 0 {
		return model.WordStats{}
	}

	// Keyed by id, which is unique after suffix normalization
	perStatement := make(map[string]int)
	vocab := make(map[string]struct{})
	for _, row := range kept {
		perStatement[row.Statement.ID]++
		vocab[row.Word] = struct{}{}
	}

	lengths := make([]float64, len(statements))
	for i := range statements {
		lengths[i] = float64(perStatement[statements[i].ID])
	}

	mean, std := stat.MeanStdDev(lengths, nil)
	if len(lengths) < 2 {
		std = 0
	}

	sorted := append([]float64(nil), lengths...)
	sort.Float64s(sorted)
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return model.WordStats{
		Vocabulary: len(vocab),
		MeanTokens: mean,
		StdDev:     std,
		Median:     median,
	}
}

// TopWords returns the n most frequent words among the kept tokens, ties
// broken alphabetically so the list is deterministic.
func TopWords(kept []model.TokenRow, n int) []model.WordCount {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, row := range kept {
		counts[row.Word]++
	}

	words := make([]model.WordCount, 0, len(counts))
	for word, count := range counts {
		words = append(words, model.WordCount{Word: word, Count: count})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})

	if len(words) > n {
		words = words[:n]
	}
	return words
}
