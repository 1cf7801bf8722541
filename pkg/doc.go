// Package pkg provides the libraries behind the justify CLI and HTTP API.
//
// # Overview
//
// Justify packs the words of a paragraph greedily into lines of an exact
// width and spreads the leftover spaces over the gaps, leftmost gaps first.
// The pkg directory is organized into three areas:
//
//  1. [justify] - The algorithm: splitting, packing and line finalization
//  2. [pipeline] - Orchestration (validate → normalize → cache → justify)
//  3. Infrastructure: [cache], [config], [errors], [observability], [server]
//
// # Architecture
//
// The typical data flow:
//
//	file / stdin / POST /v1/justify
//	         ↓
//	    [pipeline] (defaults, validation, NFC normalization)
//	         ↓
//	    [cache] lookup (file, memory, Redis or MongoDB)
//	         ↓
//	    [justify] (on a miss)
//	         ↓
//	    lines of exactly width characters
//
// # Quick Start
//
// Justify a string directly:
//
//	doc, err := justify.Justify(text, 40, justify.WithWhitespace(justify.WhitespaceCollapse))
//	if err != nil {
//	    return err // INVALID_WIDTH or WORD_TOO_LONG
//	}
//	fmt.Println(doc)
//
// Or go through the pipeline to get caching and hooks:
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
//	defer runner.Close()
//	res, err := runner.Execute(ctx, text, pipeline.Options{Width: 40})
//
// # Main Packages
//
// [justify] - Pure functions with no I/O. [justify.Transform] mirrors the
// classic string-to-string exercise and panics on bad input;
// [justify.Justify] returns typed errors instead.
//
// [pipeline] - The single entry point used by the CLI and the API so both
// share defaults, cache keys, logging and hooks.
//
// [cache] - Cache interface with null, memory, file, Redis and MongoDB
// backends, plus content-addressed key generation.
//
// [config] - TOML configuration with XDG paths.
//
// [server] - chi-based JSON API.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hook interfaces for metrics and tracing.
//
// # Testing
//
// Run tests:
//
//	go test ./...                        # All tests
//	go test ./pkg/justify/...            # Specific package
//	go test -run Example ./pkg/justify   # Examples only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
//
// [justify]: https://pkg.go.dev/github.com/matzehuels/justify/pkg/justify
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/justify/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/justify/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/justify/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/justify/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/justify/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/justify/pkg/observability
package pkg
