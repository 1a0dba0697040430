package model

import (
	"fmt"
	"strings"
)

// Statement represents one fact-checked political statement from the corpus
type Statement struct {
	ID           string `json:"id"`                      // Record identifier (suffix-normalized)
	Label        Label  `json:"label"`                   // Truthfulness rating assigned by fact-checkers
	Text         string `json:"text"`                    // The statement text itself
	Subject      string `json:"subject,omitempty"`       // Delimited topic tag list (e.g., "economy,jobs")
	Speaker      string `json:"speaker,omitempty"`       // Who made the statement
	SpeakerTitle string `json:"speaker_title,omitempty"` // Speaker's job title
	State        string `json:"state,omitempty"`         // Speaker's home state
	Party        string `json:"party,omitempty"`         // Speaker's party affiliation
	History      History `json:"history"`                // Speaker's prior rating counts
	Venue        string `json:"venue,omitempty"`         // Where the statement was made
}

// History holds a speaker's prior rating counts from the corpus
type History struct {
	BarelyTrue  int `json:"barely_true"`
	False       int `json:"false"`
	HalfTrue    int `json:"half_true"`
	MostlyTrue  int `json:"mostly_true"`
	PantsOnFire int `json:"pants_on_fire"`
}

// Subjects splits the delimited subject field into individual tags
func (s Statement) Subjects() []string {
	var tags []string
	for _, tag := range strings.FieldsFunc(s.Subject, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, strings.ToLower(tag))
		}
	}
	return tags
}

// PrimarySubject returns the first topic tag, or "" if the field is empty
func (s Statement) PrimarySubject() string {
	tags := s.Subjects()
	if len(tags) == 0 {
		return ""
	}
	return tags[0]
}

// Label is one of the six fixed truthfulness ratings
type Label string

const (
	LabelTrue       Label = "true"
	LabelMostlyTrue Label = "mostly-true"
	LabelHalfTrue   Label = "half-true"
	LabelBarelyTrue Label = "barely-true"
	LabelFalse      Label = "false"
	LabelPantsFire  Label = "pants-fire"
)

// Labels returns all six ratings in their canonical truthfulness order
func Labels() []Label {
	return []Label{
		LabelTrue,
		LabelMostlyTrue,
		LabelHalfTrue,
		LabelBarelyTrue,
		LabelFalse,
		LabelPantsFire,
	}
}

// ParseLabel parses a rating value case-insensitively
func ParseLabel(s string) (Label, error) {
	switch Label(strings.ToLower(strings.TrimSpace(s))) {
	case LabelTrue:
		return LabelTrue, nil
	case LabelMostlyTrue:
		return LabelMostlyTrue, nil
	case LabelHalfTrue:
		return LabelHalfTrue, nil
	case LabelBarelyTrue:
		return LabelBarelyTrue, nil
	case LabelFalse:
		return LabelFalse, nil
	case LabelPantsFire:
		return LabelPantsFire, nil
	}
	return "", fmt.Errorf("unknown label %q (expected one of: true, mostly-true, half-true, barely-true, false, pants-fire)", s)
}

// String returns the canonical label value
func (l Label) String() string {
	return string(l)
}
