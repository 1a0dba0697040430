package text

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/emotia/internal/model"
)

// ErrMissingReference marks reference data that is absent or unreadable.
// It is fatal before the pipeline runs.
var ErrMissingReference = errors.New("reference data missing")

// Stopwords is the immutable set of words excluded from analysis. It is
// loaded once at startup and passed into the filter, never mutated.
type Stopwords map[string]struct{}

// LoadStopwords reads a stopword file: one word per line, blank lines and
// '#' comments ignored. Words are lowercased on load so membership tests
// against already-lowercased tokens are exact.
func LoadStopwords(path string) (Stopwords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stopwords %s: %v", ErrMissingReference, path, err)
	}
	defer func() { _ = f.Close() }()

	set := make(Stopwords)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[strings.ToLower(word)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: stopwords %s: %v", ErrMissingReference, path, err)
	}

	return set, nil
}

// Contains reports whether word is a stopword
func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Filter retains token rows whose word is not in the set. Filtering an
// already-filtered slice changes nothing.
func (s Stopwords) Filter(rows []model.TokenRow) []model.TokenRow {
	var kept []model.TokenRow
	for _, row := range rows {
		if !s.Contains(row.Word) {
			kept = append(kept, row)
		}
	}
	return kept
}
