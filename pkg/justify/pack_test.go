package justify

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/justify/pkg/errors"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ws    Whitespace
		want  []string
	}{
		{"strict simple", "a b c", WhitespaceStrict, []string{"a", "b", "c"}},
		{"strict repeated", "a  b", WhitespaceStrict, []string{"a", "", "b"}},
		{"strict trailing", "a b ", WhitespaceStrict, []string{"a", "b", ""}},
		{"strict leading", " a b", WhitespaceStrict, nil},
		{"strict empty", "", WhitespaceStrict, nil},
		{"strict keeps tabs", "a\tb c", WhitespaceStrict, []string{"a\tb", "c"}},
		{"collapse repeated", "a   b", WhitespaceCollapse, []string{"a", "b"}},
		{"collapse leading", "  a b ", WhitespaceCollapse, []string{"a", "b"}},
		{"collapse tabs", "a\tb\nc", WhitespaceCollapse, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input, tt.ws)
			if len(tt.want) == 0 && len(got) == 0 {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q, %v) mismatch (-want +got):\n%s", tt.input, tt.ws, diff)
			}
		})
	}
}

func TestParseWhitespace(t *testing.T) {
	tests := []struct {
		input   string
		want    Whitespace
		wantErr bool
	}{
		{"strict", WhitespaceStrict, false},
		{"collapse", WhitespaceCollapse, false},
		{"Collapse", 0, true}, // case-sensitive
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseWhitespace(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWhitespace(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, errors.ErrCodeInvalidWhitespace) {
				t.Errorf("ParseWhitespace(%q) code = %v", tt.input, errors.GetCode(err))
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWhitespace(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if got.String() != tt.input {
			t.Errorf("String() = %q, want %q", got.String(), tt.input)
		}
	}
}

func TestPack(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		width int
		want  [][]string
	}{
		{"no words", nil, 5, nil},
		{"one word", []string{"test"}, 5, [][]string{{"test"}}},
		{"exact fit", []string{"aa", "bb"}, 5, [][]string{{"aa", "bb"}}},
		{"one over", []string{"aa", "bbb"}, 5, [][]string{{"aa"}, {"bbb"}}},
		{
			"lorem head",
			[]string{"Lorem", "ipsum", "dolor", "sit", "amet"},
			12,
			[][]string{{"Lorem", "ipsum"}, {"dolor", "sit"}, {"amet"}},
		},
		{"empty words take a gap", []string{"a", "", "", "b"}, 4, [][]string{{"a", "", ""}, {"b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pack(tt.words, tt.width)
			if err != nil {
				t.Fatalf("Pack() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Pack() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPackErrors(t *testing.T) {
	if _, err := Pack([]string{"a"}, 0); !errors.Is(err, errors.ErrCodeInvalidWidth) {
		t.Errorf("Pack with zero width: %v", err)
	}
	if _, err := Pack([]string{"ok", "toolong"}, 4); !errors.Is(err, errors.ErrCodeWordTooLong) {
		t.Errorf("Pack with long word: %v", err)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		width int
		want  string
	}{
		{"single word padded", []string{"amet"}, 12, "amet        "},
		{"single word exact", []string{"consectetur"}, 11, "consectetur"},
		{"two words", []string{"dolor", "sit"}, 12, "dolor    sit"},
		{"extra to leftmost", []string{"elit", "sed", "do"}, 12, "elit  sed do"},
		{"single spaces", []string{"ut", "labore", "et"}, 12, "ut labore et"},
		{"remainder two", []string{"a", "b", "c", "d"}, 9, "a  b  c d"},
		{"empty word", []string{"a", "", "b"}, 5, "a   b"},
		{"multibyte", []string{"日本", "語"}, 5, "日本  語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Line(tt.words, tt.width)
			if err != nil {
				t.Fatalf("Line() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Line(%q, %d) = %q, want %q", tt.words, tt.width, got, tt.want)
			}
			if n := Length(got); n != tt.width {
				t.Errorf("Line() has %d runes, want %d", n, tt.width)
			}
		})
	}
}

func TestLineErrors(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		width int
		code  errors.Code
	}{
		{"no words", nil, 5, errors.ErrCodeInvalidInput},
		{"zero width", []string{"a"}, 0, errors.ErrCodeInvalidWidth},
		{"word too long", []string{"abcdef"}, 5, errors.ErrCodeWordTooLong},
		{"no room for gaps", []string{"ab", "cd", "e"}, 6, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Line(tt.words, tt.width)
			if !errors.Is(err, tt.code) {
				t.Errorf("Line() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"日本語", 3},
		{"e\u0301", 2}, // scalar values, not grapheme clusters
	}

	for _, tt := range tests {
		if got := Length(tt.word); got != tt.want {
			t.Errorf("Length(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}
