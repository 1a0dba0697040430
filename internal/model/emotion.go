package model

import (
	"fmt"
	"strings"
)

// Category is one of the ten fixed emotion/sentiment categories of the lexicon
type Category string

const (
	CategoryAnger        Category = "anger"
	CategoryAnticipation Category = "anticipation"
	CategoryDisgust      Category = "disgust"
	CategoryFear         Category = "fear"
	CategoryJoy          Category = "joy"
	CategorySadness      Category = "sadness"
	CategorySurprise     Category = "surprise"
	CategoryTrust        Category = "trust"
	CategoryNegative     Category = "negative"
	CategoryPositive     Category = "positive"
)

// Categories returns the ten categories in the fixed lexicon schema order.
// Join output and per-category report rows follow this order.
func Categories() []Category {
	return []Category{
		CategoryAnger,
		CategoryAnticipation,
		CategoryDisgust,
		CategoryFear,
		CategoryJoy,
		CategorySadness,
		CategorySurprise,
		CategoryTrust,
		CategoryNegative,
		CategoryPositive,
	}
}

// ParseCategory parses a lexicon category value case-insensitively
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown emotion category %q", s)
}

// Rank returns the category's position in the fixed schema order
func (c Category) Rank() int {
	for i, known := range Categories() {
		if c == known {
			return i
		}
	}
	return len(Categories())
}

// String returns the canonical category value
func (c Category) String() string {
	return string(c)
}
