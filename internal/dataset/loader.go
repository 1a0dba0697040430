package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ppiankov/emotia/internal/model"
)

// The corpus has no header row; fields are assigned by position.
const (
	colID = iota
	colLabel
	colStatement
	colSubject
	colSpeaker
	colSpeakerTitle
	colState
	colParty
	colBarelyTrue
	colFalse
	colHalfTrue
	colMostlyTrue
	colPantsOnFire
	colVenue

	schemaFields = 14
)

// Loader reads a delimited statement corpus into memory
type Loader struct {
	delimiter rune
}

// NewLoader creates a loader for the given field delimiter
func NewLoader(delimiter rune) *Loader {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Loader{delimiter: delimiter}
}

// Load reads the corpus at path. It fails on the first malformed row:
// fewer than 14 fields is a FormatError, a bad count or label is a
// ParseError. Rows with extra trailing fields are accepted; the schema
// binds the first 14.
func (l *Loader) Load(path string) ([]model.Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = l.delimiter
	r.FieldsPerRecord = -1 // field count is checked against the schema below
	r.LazyQuotes = true

	var statements []model.Statement
	row := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset: %w", err)
		}
		row++

		if len(rec) < schemaFields {
			return nil, &FormatError{Row: row, Fields: len(rec), Want: schemaFields}
		}

		st, err := l.parseRow(rec, row)
		if err != nil {
			return nil, err
		}
		statements = append(statements, st)
	}

	return statements, nil
}

func (l *Loader) parseRow(rec []string, row int) (model.Statement, error) {
	label, err := model.ParseLabel(rec[colLabel])
	if err != nil {
		return model.Statement{}, &ParseError{Row: row, Field: "label", Value: rec[colLabel], Err: err}
	}

	history := model.History{}
	counts := []struct {
		col   int
		name  string
		field *int
	}{
		{colBarelyTrue, "barely_true_count", &history.BarelyTrue},
		{colFalse, "false_count", &history.False},
		{colHalfTrue, "half_true_count", &history.HalfTrue},
		{colMostlyTrue, "mostly_true_count", &history.MostlyTrue},
		{colPantsOnFire, "pants_on_fire_count", &history.PantsOnFire},
	}
	for _, c := range counts {
		n, err := parseCount(rec[c.col])
		if err != nil {
			return model.Statement{}, &ParseError{Row: row, Field: c.name, Value: rec[c.col], Err: err}
		}
		*c.field = n
	}

	return model.Statement{
		ID:           rec[colID],
		Label:        label,
		Text:         rec[colStatement],
		Subject:      rec[colSubject],
		Speaker:      rec[colSpeaker],
		SpeakerTitle: rec[colSpeakerTitle],
		State:        rec[colState],
		Party:        rec[colParty],
		History:      history,
		Venue:        rec[colVenue],
	}, nil
}

// parseCount parses a historical rating count, which must be a
// non-negative integer
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count")
	}
	return n, nil
}
