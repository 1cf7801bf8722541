package justify

import (
	"strings"

	"github.com/matzehuels/justify/pkg/errors"
)

// Document is the result of justifying a paragraph.
type Document struct {
	// Lines holds the justified lines, each exactly Width runes long.
	Lines []string

	// Width is the target line width in runes.
	Width int
}

// String joins the lines with a single newline. There is no trailing newline.
func (d *Document) String() string {
	if d == nil {
		return ""
	}
	return strings.Join(d.Lines, "\n")
}

// Len returns the number of lines.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}

// Words reads the words back out of the justified lines, in order.
// Empty words kept by WhitespaceStrict do not survive the round trip.
func (d *Document) Words() []string {
	if d == nil {
		return nil
	}
	var words []string
	for _, line := range d.Lines {
		words = append(words, strings.FieldsFunc(line, isSpace)...)
	}
	return words
}

func isSpace(r rune) bool { return r == ' ' }

// Option configures Justify.
type Option func(*options)

type options struct {
	whitespace Whitespace
}

// WithWhitespace selects the word-splitting policy. The default is WhitespaceStrict.
func WithWhitespace(ws Whitespace) Option {
	return func(o *options) { o.whitespace = ws }
}

// Justify packs input into lines of exactly width runes.
//
// It returns an INVALID_WIDTH error when width < 1 and a WORD_TOO_LONG error
// when any word has more than width runes. Empty input, or input that splits
// into no words, produces a Document with no lines.
func Justify(input string, width int, opts ...Option) (*Document, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := errors.ValidateWidth(width); err != nil {
		return nil, err
	}

	groups, err := Pack(Split(input, o.whitespace), width)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Lines: make([]string, 0, len(groups)),
		Width: width,
	}
	for _, words := range groups {
		line, err := Line(words, width)
		if err != nil {
			return nil, err
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc, nil
}

// Transform justifies input to width using the strict whitespace policy and
// returns the newline-joined lines.
//
// Transform panics with an *errors.Error if width < 1 or a word is longer
// than width. Use Justify to get the error instead.
func Transform(input string, width int) string {
	doc, err := Justify(input, width)
	if err != nil {
		panic(err)
	}
	return doc.String()
}
