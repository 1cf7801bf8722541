package justify

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/justify/pkg/errors"
)

const lorem = "Lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor incididunt ut labore et dolore magna aliqua"

var loremLines = []string{
	"Lorem  ipsum",
	"dolor    sit",
	"amet        ",
	"consectetur ",
	"adipiscing  ",
	"elit  sed do",
	"eiusmod     ",
	"tempor      ",
	"incididunt  ",
	"ut labore et",
	"dolore magna",
	"aliqua      ",
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"empty", "", 5, ""},
		{"single short word", "test", 5, "test "},
		{"single exact word", "test", 4, "test"},
		{"lorem width 12", lorem, 12, strings.Join(loremLines, "\n")},
		{"fully packed", "aa bb", 5, "aa bb"},
		{"extra space to the left", "a b c", 6, "a  b c"},
		{"two extra spaces", "a b c d", 9, "a  b  c d"},
		{"even distribution", "a b c", 7, "a  b  c"},
		{"width one", "a b c", 1, "a\nb\nc"},
		{"multibyte runes", "héllo wörld", 11, "héllo wörld"},
		{"multibyte runes split", "héllo wörld", 6, "héllo \nwörld "},
		{"leading space empties document", " leading space", 20, ""},
		{"trailing space is an empty word", "test ", 5, "test "},
		{"double space is an empty word", "a  b", 5, "a   b"},
		{"last line justified", "one two three", 9, "one   two\nthree    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(tt.input, tt.width)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Transform(%q, %d) mismatch (-want +got):\n%s", tt.input, tt.width, diff)
			}
		})
	}
}

func TestTransformPanics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		code  errors.Code
	}{
		{"word longer than width", "a verylongword b", 5, errors.ErrCodeWordTooLong},
		{"zero width", "a", 0, errors.ErrCodeInvalidWidth},
		{"zero width empty input", "", 0, errors.ErrCodeInvalidWidth},
		{"negative width", "a b", -3, errors.ErrCodeInvalidWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("Transform should panic")
				}
				err, ok := r.(error)
				if !ok {
					t.Fatalf("panic value = %T, want error", r)
				}
				if !errors.Is(err, tt.code) {
					t.Errorf("panic code = %v, want %v", errors.GetCode(err), tt.code)
				}
			}()
			Transform(tt.input, tt.width)
		})
	}
}

func TestJustify(t *testing.T) {
	doc, err := Justify(lorem, 12)
	if err != nil {
		t.Fatalf("Justify() error: %v", err)
	}
	if doc.Width != 12 {
		t.Errorf("Width = %d, want 12", doc.Width)
	}
	if diff := cmp.Diff(loremLines, doc.Lines); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if doc.Len() != 12 {
		t.Errorf("Len() = %d, want 12", doc.Len())
	}
}

func TestJustifyErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		code  errors.Code
	}{
		{"zero width", "abc", 0, errors.ErrCodeInvalidWidth},
		{"zero width empty", "", 0, errors.ErrCodeInvalidWidth},
		{"long first word", "abcdef gh", 5, errors.ErrCodeWordTooLong},
		{"long last word", "ab cd efghij", 5, errors.ErrCodeWordTooLong},
		{"long multibyte word", "ééééé", 4, errors.ErrCodeWordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Justify(tt.input, tt.width)
			if err == nil {
				t.Fatalf("Justify() = %q, want error", doc.String())
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestJustifyCollapse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{"leading and repeated spaces", "  the   quick brown  fox ", 10, []string{"the  quick", "brown  fox"}},
		{"tabs and newlines", "the\tquick\nbrown\r\nfox", 10, []string{"the  quick", "brown  fox"}},
		{"only spaces", "     ", 3, []string{}},
		{"empty", "", 3, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Justify(tt.input, tt.width, WithWhitespace(WhitespaceCollapse))
			if err != nil {
				t.Fatalf("Justify() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, doc.Lines); diff != "" {
				t.Errorf("Lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDocument(t *testing.T) {
	var nilDoc *Document
	if nilDoc.String() != "" || nilDoc.Len() != 0 || nilDoc.Words() != nil {
		t.Error("nil Document should be empty")
	}

	doc := &Document{Lines: []string{"Lorem  ipsum", "dolor    sit"}, Width: 12}
	if got := doc.String(); got != "Lorem  ipsum\ndolor    sit" {
		t.Errorf("String() = %q", got)
	}
	if diff := cmp.Diff([]string{"Lorem", "ipsum", "dolor", "sit"}, doc.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
}

// vocabulary mixes ASCII and multibyte words of lengths 1 through 11.
var vocabulary = []string{
	"a", "of", "the", "fox", "über", "quick", "brown", "jumps", "naïve",
	"façade", "lorem", "ipsum", "dolor", "consectetur", "adipiscing", "日本語",
	"x", "yz", "elit", "tempor", "magna", "aliqua", "ut", "et",
}

func randomParagraph(rng *rand.Rand, n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = vocabulary[rng.Intn(len(vocabulary))]
	}
	return words
}

func TestJustifyProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		words := randomParagraph(rng, 1+rng.Intn(60))
		width := 11 + rng.Intn(40) // longest vocabulary word is 11 runes
		input := strings.Join(words, " ")

		doc, err := Justify(input, width)
		if err != nil {
			t.Fatalf("Justify(%q, %d) error: %v", input, width, err)
		}

		// Every line is exactly width runes.
		for i, line := range doc.Lines {
			if n := Length(line); n != width {
				t.Fatalf("line %d %q has %d runes, want %d", i, line, n, width)
			}
		}

		// Words come back out in order and unchanged.
		if diff := cmp.Diff(words, doc.Words()); diff != "" {
			t.Fatalf("word order mismatch for width %d (-want +got):\n%s", width, diff)
		}

		// Greedy: the first word of each line did not fit on the previous one.
		for i := 1; i < len(doc.Lines); i++ {
			prev := strings.FieldsFunc(doc.Lines[i-1], isSpace)
			next := strings.FieldsFunc(doc.Lines[i], isSpace)
			accumulated := 0
			for _, w := range prev {
				accumulated += Length(w)
			}
			if accumulated+len(prev)+Length(next[0]) <= width {
				t.Fatalf("word %q would have fit on line %q (width %d)", next[0], doc.Lines[i-1], width)
			}
		}

		// Fairness: gaps differ by at most one, wider gaps first.
		for _, line := range doc.Lines {
			gaps := gapSizes(line)
			for j := 1; j < len(gaps); j++ {
				if gaps[j] > gaps[j-1] || gaps[0]-gaps[j] > 1 {
					t.Fatalf("unfair gaps %v in line %q", gaps, line)
				}
			}
		}
	}
}

// gapSizes returns the lengths of the space runs between words, ignoring
// trailing padding.
func gapSizes(line string) []int {
	var gaps []int
	run := 0
	for _, r := range strings.TrimRight(line, " ") {
		if r == ' ' {
			run++
			continue
		}
		if run > 0 {
			gaps = append(gaps, run)
			run = 0
		}
	}
	return gaps
}
