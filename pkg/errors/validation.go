package errors

import (
	"strings"
	"unicode"
)

// ValidateWidth checks that a target line width can hold at least one character.
func ValidateWidth(width int) error {
	if width < 1 {
		return New(ErrCodeInvalidWidth, "width must be at least 1, got %d", width)
	}
	return nil
}

// ValidateInputSize rejects inputs larger than limit bytes.
// A limit of zero or less disables the check.
func ValidateInputSize(n, limit int) error {
	if limit > 0 && n > limit {
		return New(ErrCodeInputTooLarge, "input is %d bytes (max %d)", n, limit)
	}
	return nil
}

// ValidatePath validates a user-supplied file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//
// Unlike repository paths, local paths may be absolute and may traverse
// upwards; the CLI runs with the user's own permissions.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateURL validates a connection URL for a remote cache backend.
// Only the schemes in allowed are accepted.
func ValidateURL(rawURL string, allowed ...string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	for _, scheme := range allowed {
		if strings.HasPrefix(rawURL, scheme+"://") {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "URL must use one of the schemes: %s", strings.Join(allowed, ", "))
}
