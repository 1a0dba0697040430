package text

import (
	"iter"
	"regexp"
	"strings"

	"github.com/ppiankov/emotia/internal/model"
)

// wordRE matches one token: a run of letters/digits, optionally continued
// by apostrophe-joined runs, so "don't" stays one token while "high!!"
// drops its punctuation.
var wordRE = regexp.MustCompile(`[\p{L}\p{N}]+(?:'[\p{L}\p{N}]+)*`)

// sanitizer folds typographic apostrophes into ASCII before matching
var sanitizer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
)

// Tokenizer splits statement text into lowercase word tokens
type Tokenizer struct{}

// NewTokenizer creates a tokenizer
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Words tokenizes a single text value: lowercase, punctuation stripped,
// in left-to-right order. An empty text yields no tokens.
func (t *Tokenizer) Words(text string) []string {
	clean := sanitizer.Replace(strings.ToLower(text))
	return wordRE.FindAllString(clean, -1)
}

// Stream yields one TokenRow per token across all statements, in
// source-row order then left-to-right within each row. The sequence is
// computed on demand and can be ranged over any number of times.
func (t *Tokenizer) Stream(statements []model.Statement) iter.Seq[model.TokenRow] {
	return func(yield func(model.TokenRow) bool) {
		for i := range statements {
			for pos, word := range t.Words(statements[i].Text) {
				row := model.TokenRow{
					Statement: &statements[i],
					Word:      word,
					Position:  pos,
				}
				if !yield(row) {
					return
				}
			}
		}
	}
}

// Tokenize materializes Stream into a slice
func (t *Tokenizer) Tokenize(statements []model.Statement) []model.TokenRow {
	var rows []model.TokenRow
	for row := range t.Stream(statements) {
		rows = append(rows, row)
	}
	return rows
}
