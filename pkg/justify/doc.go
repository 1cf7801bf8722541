// Package justify reformats a run of words into fixed-width, fully justified lines.
//
// # Overview
//
// Given a paragraph and a target width, the package packs words greedily onto
// lines and pads every line, the last one included, to exactly width
// characters. Widths are counted in Unicode scalar values (runes), not bytes
// and not display columns.
//
// # Algorithm
//
// Justification runs in three steps:
//
//  1. [Split]: break the input into words according to a [Whitespace] policy.
//  2. [Pack]: greedy first-fit line breaking. A word joins the current line iff
//     accumulated + len(line) + len(word) <= width, where accumulated is the
//     rune count of the words already on the line and len(line) is the number
//     of mandatory single-space gaps the new word would need.
//  3. [Line]: space distribution. A line of one word is right-padded. A line
//     of k > 1 words has k-1 gaps; every gap gets (width-accumulated)/(k-1)
//     spaces and the leftmost (width-accumulated)%(k-1) gaps get one more.
//
// The last line is justified like every other line. A single-word last line
// therefore ends in padding spaces rather than being left bare.
//
// # Whitespace policies
//
// [WhitespaceStrict] splits on the literal space character and keeps empty
// tokens produced by repeated spaces; each empty token is a zero-length word
// that still occupies a gap. An input whose first token is empty (the empty
// string, or anything starting with a space) yields an empty document.
//
// [WhitespaceCollapse] splits on runs of whitespace and never produces empty
// words. This is what the CLI and the HTTP API use by default.
//
// # Preconditions
//
// Width must be at least 1 and no word may be longer than width. [Justify]
// reports violations as *errors.Error values with codes INVALID_WIDTH and
// WORD_TOO_LONG. [Transform] is the panicking variant for callers that have
// already established the preconditions.
//
// # Usage
//
//	doc, err := justify.Justify("the quick brown fox", 10)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(doc) // "the  quick\nbrown  fox"
//
//	// Collapse repeated whitespace
//	doc, err = justify.Justify("  the   quick\tbrown fox", 10,
//	    justify.WithWhitespace(justify.WhitespaceCollapse))
//
// Every call allocates its own buffers; the package keeps no state and all
// functions are safe for concurrent use.
package justify
