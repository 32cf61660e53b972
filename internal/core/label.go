package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label is the team colour assigned to a board cell.
type Label uint8

// The closed set of labels. White is the zero value so a fresh board
// starts unassigned.
const (
	LabelWhite Label = iota
	LabelRed
	LabelBlue
	LabelYellow
)

// Labels lists every label in display order.
var Labels = []Label{LabelWhite, LabelRed, LabelBlue, LabelYellow}

// String returns the lower-case name of the label.
func (l Label) String() string {
	switch l {
	case LabelWhite:
		return "white"
	case LabelRed:
		return "red"
	case LabelBlue:
		return "blue"
	case LabelYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// ParseLabel maps user input to a label by its first letter, ignoring case
// and surrounding whitespace: "r" -> red, "b" -> blue, "y" -> yellow,
// "w" -> white. Returns false for anything else, including empty input.
func ParseLabel(s string) (Label, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LabelWhite, false
	}

	first, _ := utf8.DecodeRuneInString(s)
	switch unicode.ToLower(first) {
	case 'r':
		return LabelRed, true
	case 'b':
		return LabelBlue, true
	case 'y':
		return LabelYellow, true
	case 'w':
		return LabelWhite, true
	}
	return LabelWhite, false
}
