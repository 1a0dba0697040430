package dataset

import "fmt"

// FormatError reports a row with too few fields. Loading stops at the first
// malformed row: no partial-row recovery, no silent skipping.
type FormatError struct {
	Row    int // 1-based row number
	Fields int // fields found
	Want   int // fields required
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("row %d: %d fields, want %d", e.Row, e.Fields, e.Want)
}

// ParseError reports a field whose value cannot be interpreted: a historical
// count that is not a non-negative integer, or a label outside the six fixed
// ratings.
type ParseError struct {
	Row   int    // 1-based row number
	Field string // schema field name
	Value string // offending value
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: field %s: invalid value %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
