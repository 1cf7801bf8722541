package errors

import (
	"strings"
	"testing"
)

func TestValidateWidth(t *testing.T) {
	tests := []struct {
		width   int
		wantErr bool
	}{
		{1, false},
		{12, false},
		{80, false},
		{0, true},
		{-5, true},
	}

	for _, tt := range tests {
		err := ValidateWidth(tt.width)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateWidth(%d) error = %v, wantErr %v", tt.width, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidWidth) {
			t.Errorf("ValidateWidth(%d) code = %v, want %v", tt.width, GetCode(err), ErrCodeInvalidWidth)
		}
	}
}

func TestValidateInputSize(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		limit   int
		wantErr bool
	}{
		{"under limit", 10, 100, false},
		{"at limit", 100, 100, false},
		{"over limit", 101, 100, true},
		{"no limit", 1 << 30, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputSize(tt.n, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInputSize(%d, %d) error = %v, wantErr %v", tt.n, tt.limit, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInputTooLarge) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInputTooLarge)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "notes.txt", false},
		{"nested", "docs/chapter1.txt", false},
		{"absolute", "/tmp/input.txt", false},
		{"parent", "../input.txt", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		allowed []string
		wantErr bool
	}{
		{"mongodb", "mongodb://localhost:27017", []string{"mongodb", "mongodb+srv"}, false},
		{"mongodb srv", "mongodb+srv://cluster.example.com", []string{"mongodb", "mongodb+srv"}, false},
		{"wrong scheme", "http://localhost", []string{"mongodb"}, true},
		{"no scheme", "localhost:27017", []string{"mongodb"}, true},
		{"empty", "", []string{"mongodb"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url, tt.allowed...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
