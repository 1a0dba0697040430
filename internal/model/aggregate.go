package model

import "fmt"

// Dimension is a closed set of fields the aggregator can group by.
// Grouping is restricted to these four so a grouping specification is
// checked at compile time rather than resolved from field-name strings.
type Dimension string

const (
	DimLabel    Dimension = "label"
	DimParty    Dimension = "party"
	DimSubject  Dimension = "subject"
	DimCategory Dimension = "category"
)

// Grouping is an ordered list of dimensions. When it has more than one
// dimension, frequencies are normalized within the parent key formed by
// all dimensions but the last.
type Grouping []Dimension

// String renders the grouping as "label/category"
func (g Grouping) String() string {
	s := ""
	for i, d := range g {
		if i > 0 {
			s += "/"
		}
		s += string(d)
	}
	return s
}

// Value extracts the grouping value of one dimension from a hit
func (d Dimension) Value(hit EmotionHit) string {
	switch d {
	case DimLabel:
		return hit.Statement.Label.String()
	case DimParty:
		return hit.Statement.Party
	case DimSubject:
		return hit.Statement.PrimarySubject()
	case DimCategory:
		return hit.Category.String()
	}
	panic(fmt.Sprintf("unknown dimension %q", string(d)))
}

// AggregateRow is one group produced by the aggregator: the key values
// (aligned with the grouping's dimensions), the row count, and the
// frequency within the group's parent, rounded to two decimals.
type AggregateRow struct {
	Key       []string `json:"key"`
	Count     int      `json:"count"`
	Frequency float64  `json:"frequency"`
}

// Section is one aggregate table of the report
type Section struct {
	Title    string         `json:"title"`
	Grouping Grouping       `json:"grouping"`
	Rows     []AggregateRow `json:"rows"`
}
