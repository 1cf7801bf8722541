package justify

import (
	"strings"

	"github.com/matzehuels/justify/pkg/errors"
)

// Whitespace selects how input text is broken into words.
type Whitespace int

const (
	// WhitespaceStrict splits on every single space character. Repeated spaces
	// produce empty words, and a leading space empties the whole document.
	WhitespaceStrict Whitespace = iota

	// WhitespaceCollapse splits on runs of whitespace (spaces, tabs, newlines)
	// and drops empty words.
	WhitespaceCollapse
)

// Whitespace policy names accepted by ParseWhitespace.
const (
	WhitespaceStrictName   = "strict"
	WhitespaceCollapseName = "collapse"
)

// String returns the policy name.
func (w Whitespace) String() string {
	switch w {
	case WhitespaceStrict:
		return WhitespaceStrictName
	case WhitespaceCollapse:
		return WhitespaceCollapseName
	}
	return "unknown"
}

// ParseWhitespace maps a policy name to a Whitespace value.
func ParseWhitespace(s string) (Whitespace, error) {
	switch s {
	case WhitespaceStrictName:
		return WhitespaceStrict, nil
	case WhitespaceCollapseName:
		return WhitespaceCollapse, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidWhitespace,
		"invalid whitespace policy: %q (must be one of: strict, collapse)", s)
}

// Split breaks input into words according to ws.
//
// Under WhitespaceStrict a nil slice is returned when the first token is
// empty; callers treat that as an empty document.
func Split(input string, ws Whitespace) []string {
	if ws == WhitespaceCollapse {
		return strings.Fields(input)
	}

	words := strings.Split(input, " ")
	if words[0] == "" {
		return nil
	}
	return words
}
