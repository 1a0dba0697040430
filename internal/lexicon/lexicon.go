package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/emotia/internal/model"
	"github.com/ppiankov/emotia/internal/text"
)

// Lexicon is the immutable word -> emotion categories mapping, loaded once
// at startup. A word may carry any subset of the ten categories.
type Lexicon struct {
	entries map[string][]model.Category
}

// Load reads an association-format lexicon file: one "word<TAB>category<TAB>flag"
// line per (word, category) pair, flag 1 meaning the association holds and 0
// meaning it does not. Blank lines and '#' comments are ignored. A malformed
// line or unknown category is fatal — reference data is trusted input and a
// bad file should stop the run, not skew it.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: lexicon %s: %v", text.ErrMissingReference, path, err)
	}
	defer func() { _ = f.Close() }()

	entries := make(map[string][]model.Category)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		fields := strings.Split(raw, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("lexicon %s line %d: %d fields, want 3", path, line, len(fields))
		}

		category, err := model.ParseCategory(fields[1])
		if err != nil {
			return nil, fmt.Errorf("lexicon %s line %d: %w", path, line, err)
		}

		switch strings.TrimSpace(fields[2]) {
		case "1":
			word := strings.ToLower(strings.TrimSpace(fields[0]))
			entries[word] = append(entries[word], category)
		case "0":
			// Association explicitly absent
		default:
			return nil, fmt.Errorf("lexicon %s line %d: flag %q, want 0 or 1", path, line, fields[2])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: lexicon %s: %v", text.ErrMissingReference, path, err)
	}

	// Category order within a word follows the fixed schema order regardless
	// of file order, so join output is deterministic.
	for word, cats := range entries {
		sort.Slice(cats, func(i, j int) bool { return cats[i].Rank() < cats[j].Rank() })
		entries[word] = dedupe(cats)
	}

	return &Lexicon{entries: entries}, nil
}

// Categories returns the categories of word in fixed schema order, or nil
// if the word is not in the lexicon
func (l *Lexicon) Categories(word string) []model.Category {
	return l.entries[word]
}

// Words returns the number of distinct words in the lexicon
func (l *Lexicon) Words() int {
	return len(l.entries)
}

func dedupe(cats []model.Category) []model.Category {
	out := cats[:0]
	var prev model.Category
	for i, c := range cats {
		if i == 0 || c != prev {
			out = append(out, c)
		}
		prev = c
	}
	return out
}
