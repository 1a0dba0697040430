package aggregate

import (
	"math"
	"strings"

	"github.com/ppiankov/emotia/internal/model"
)

// keySep joins key values for map lookups; it cannot occur in field values
const keySep = "\x1f"

// GroupBy counts emotion hits per group of the given dimensions and
// normalizes each group against its siblings: rows sharing every key value
// but the last. A single-dimension grouping therefore normalizes against
// the whole input. Groups appear in first-seen order, which is stable
// because the join output is deterministic. The returned rows are a fresh
// value each call — aggregates are recomputed from source, never patched.
func GroupBy(hits []model.EmotionHit, grouping model.Grouping) []model.AggregateRow {
	if len(grouping) == 0 {
		return nil
	}

	var order []string
	counts := make(map[string]int)
	keys := make(map[string][]string)

	for _, hit := range hits {
		key := make([]string, len(grouping))
		for i, dim := range grouping {
			key[i] = dim.Value(hit)
		}
		joined := strings.Join(key, keySep)
		if _, seen := counts[joined]; !seen {
			order = append(order, joined)
			keys[joined] = key
		}
		counts[joined]++
	}

	// Sibling totals, keyed by the parent prefix of each group
	parents := make(map[string]int)
	for joined, n := range counts {
		parents[parentKey(keys[joined])] += n
	}

	rows := make([]model.AggregateRow, 0, len(order))
	for _, joined := range order {
		key := keys[joined]
		count := counts[joined]
		total := parents[parentKey(key)]
		rows = append(rows, model.AggregateRow{
			Key:       key,
			Count:     count,
			Frequency: RoundHalfUp(float64(count) / float64(total)),
		})
	}
	return rows
}

func parentKey(key []string) string {
	return strings.Join(key[:len(key)-1], keySep)
}

// RoundHalfUp rounds to two decimals with half-up semantics, matching the
// display rounding of the original report. Sibling frequencies may
// therefore sum to 1.0 +/- 0.01; that is observable, documented behavior.
func RoundHalfUp(f float64) float64 {
	return math.Floor(f*100+0.5) / 100
}
