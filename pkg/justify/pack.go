package justify

import (
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/justify/pkg/errors"
)

// Length returns the number of Unicode scalar values in word.
func Length(word string) int {
	return utf8.RuneCountInString(word)
}

// Pack breaks words into lines with greedy first-fit packing.
//
// A word is appended to the current line when the words already there, one
// separating space per word already placed, and the new word together fit in
// width. Otherwise the current line is closed and the word starts a new one.
// Word order is preserved and words are never split.
func Pack(words []string, width int) ([][]string, error) {
	if err := errors.ValidateWidth(width); err != nil {
		return nil, err
	}

	var (
		lines       [][]string
		line        []string
		accumulated int
	)
	for i, word := range words {
		n := Length(word)
		if n > width {
			return nil, errors.New(errors.ErrCodeWordTooLong,
				"word %d (%q) is %d characters long, line width is %d", i, word, n, width)
		}

		// len(line) is the minimum number of spaces: one per gap once word is added.
		if len(line) > 0 && accumulated+len(line)+n > width {
			lines = append(lines, line)
			line = nil
			accumulated = 0
		}
		line = append(line, word)
		accumulated += n
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines, nil
}

// Line joins words into a single line of exactly width characters.
//
// With one word the padding goes after it. With several, the padding is split
// evenly across the gaps and any remainder goes one space at a time to the
// leftmost gaps.
func Line(words []string, width int) (string, error) {
	if len(words) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "cannot build a line from zero words")
	}
	if err := errors.ValidateWidth(width); err != nil {
		return "", err
	}

	accumulated, size := 0, 0
	for _, w := range words {
		accumulated += Length(w)
		size += len(w)
	}

	padding := width - accumulated
	gaps := len(words) - 1
	if padding < gaps {
		if gaps == 0 {
			return "", errors.New(errors.ErrCodeWordTooLong,
				"word %q is %d characters long, line width is %d", words[0], accumulated, width)
		}
		return "", errors.New(errors.ErrCodeInvalidInput,
			"%d words of %d characters need at least %d columns, line width is %d",
			len(words), accumulated, accumulated+gaps, width)
	}

	var b strings.Builder
	b.Grow(size + padding)

	if gaps == 0 {
		b.WriteString(words[0])
		b.WriteString(strings.Repeat(" ", padding))
		return b.String(), nil
	}

	base, extra := padding/gaps, padding%gaps
	spaces := strings.Repeat(" ", base)
	for i, w := range words {
		b.WriteString(w)
		if i < gaps {
			b.WriteString(spaces)
			if i < extra {
				b.WriteByte(' ')
			}
		}
	}
	return b.String(), nil
}
