package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/justify/pkg/cache"
	errs "github.com/matzehuels/justify/pkg/errors"
	"github.com/matzehuels/justify/pkg/justify"
	"github.com/matzehuels/justify/pkg/observability"
)

// Runner encapsulates justification with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner holds no per-run state, so multiple goroutines can share one
// Runner with different options as long as the cache is concurrency-safe.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is how long stored documents live; 0 means no expiry.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// Documents are stored for cache.TTLDocument unless TTL is changed.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLDocument,
	}
}

// Execute justifies input according to opts, consulting the cache first.
func (r *Runner) Execute(ctx context.Context, input string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := errs.ValidateInputSize(len(input), opts.MaxInputBytes); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Justify().OnJustifyStart(ctx, opts.Width, len(input))

	result, err := r.execute(ctx, input, opts)

	elapsed := time.Since(start)
	lines := 0
	if result != nil {
		result.Stats.Duration = elapsed
		lines = result.Stats.Lines
	}
	observability.Justify().OnJustifyComplete(ctx, opts.Width, lines, elapsed, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("justified document",
		"width", opts.Width,
		"whitespace", opts.Whitespace,
		"words", result.Stats.Words,
		"lines", result.Stats.Lines,
		"cached", result.CacheHit,
		"duration", elapsed)
	return result, nil
}

func (r *Runner) execute(ctx context.Context, input string, opts Options) (*Result, error) {
	text := r.Prepare(input, opts)
	hash := cache.Hash([]byte(text))
	key := r.Keyer.DocumentKey(hash, opts.DocumentKeyOpts())

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache lookup failed", "err", err)
		case hit:
			if doc, ok := decodeDocument(data, opts.Width); ok {
				return newResult(doc, hash, true), nil
			}
			r.Logger.Debug("discarding malformed cache entry", "key", key)
		}
	}

	doc, err := justify.Justify(text, opts.Width, justify.WithWhitespace(opts.WhitespacePolicy()))
	if err != nil {
		return nil, fmt.Errorf("justify: %w", err)
	}

	if err := r.Cache.Set(ctx, key, []byte(doc.String()), r.TTL); err != nil {
		r.Logger.Warn("cache store failed", "err", err)
	}
	return newResult(doc, hash, false), nil
}

// Prepare returns the text that will actually be justified: the input,
// NFC-normalized when opts.Normalize is set.
func (r *Runner) Prepare(input string, opts Options) string {
	if !opts.Normalize {
		return input
	}
	normalized := norm.NFC.String(input)
	if len(normalized) != len(input) {
		r.Logger.Debug("normalized input", "bytes_before", len(input), "bytes_after", len(normalized))
	}
	return normalized
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func newResult(doc *justify.Document, hash string, hit bool) *Result {
	return &Result{
		Document:  doc,
		InputHash: hash,
		CacheHit:  hit,
		Stats: Stats{
			Words: len(doc.Words()),
			Lines: doc.Len(),
		},
	}
}

// decodeDocument rebuilds a cached document. Entries whose lines are not all
// exactly width runes wide are rejected.
func decodeDocument(data []byte, width int) (*justify.Document, bool) {
	doc := &justify.Document{Lines: []string{}, Width: width}
	if len(data) == 0 {
		return doc, true
	}
	doc.Lines = strings.Split(string(data), "\n")
	for _, line := range doc.Lines {
		if justify.Length(line) != width {
			return nil, false
		}
	}
	return doc, true
}
