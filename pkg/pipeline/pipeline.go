// Package pipeline runs justification with caching for every entry point.
//
// Both the CLI and the HTTP API go through [Runner.Execute], so option
// defaults, validation, normalization, cache keys, logging and hooks behave
// the same everywhere.
//
// # Stages
//
//  1. Validate: apply defaults and check width, whitespace policy and input size
//  2. Prepare: optionally NFC-normalize the input (golang.org/x/text/unicode/norm)
//  3. Lookup: hash the prepared input and consult the cache (skipped on Refresh)
//  4. Justify: run [justify.Justify] and store the result
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	defer runner.Close()
//
//	result, err := runner.Execute(ctx, text, pipeline.Options{Width: 72})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Document)
package pipeline

import (
	"time"

	"github.com/matzehuels/justify/pkg/cache"
	errs "github.com/matzehuels/justify/pkg/errors"
	"github.com/matzehuels/justify/pkg/justify"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the line width used when none is given.
	DefaultWidth = 72

	// DefaultWhitespace is the word-splitting policy used when none is given.
	// Library callers of justify.Justify get strict splitting; the pipeline
	// collapses whitespace because its input comes from files and requests.
	DefaultWhitespace = justify.WhitespaceCollapseName

	// DefaultMaxInputBytes caps the size of a single input.
	DefaultMaxInputBytes = 8 << 20
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one justification run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Width      int    `json:"width,omitempty"`
	Whitespace string `json:"whitespace,omitempty"` // "strict" or "collapse"
	Normalize  bool   `json:"normalize,omitempty"`  // NFC-normalize before counting runes
	Refresh    bool   `json:"refresh,omitempty"`    // bypass the cache lookup

	// MaxInputBytes limits the input size; negative disables the limit.
	MaxInputBytes int `json:"-"`

	ws        justify.Whitespace
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the justified text.
	Document *justify.Document

	// InputHash is the SHA-256 of the prepared (possibly normalized) input.
	InputHash string

	// Stats contains size and timing information.
	Stats Stats

	// CacheHit reports whether Document came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Words    int
	Lines    int
	Duration time.Duration
}

// ValidateAndSetDefaults applies defaults and checks every option.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if err := errs.ValidateWidth(o.Width); err != nil {
		return err
	}
	if o.Whitespace == "" {
		o.Whitespace = DefaultWhitespace
	}
	ws, err := justify.ParseWhitespace(o.Whitespace)
	if err != nil {
		return err
	}
	o.ws = ws
	if o.MaxInputBytes == 0 {
		o.MaxInputBytes = DefaultMaxInputBytes
	}
	o.validated = true
	return nil
}

// WhitespacePolicy returns the parsed whitespace policy.
// It is only meaningful after ValidateAndSetDefaults.
func (o *Options) WhitespacePolicy() justify.Whitespace {
	return o.ws
}

// DocumentKeyOpts returns cache key options for this run.
func (o *Options) DocumentKeyOpts() cache.DocumentKeyOpts {
	return cache.DocumentKeyOpts{
		Width:      o.Width,
		Whitespace: o.Whitespace,
		Normalize:  o.Normalize,
	}
}
