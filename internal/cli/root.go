package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/justify/pkg/config"
	errs "github.com/matzehuels/justify/pkg/errors"
	"github.com/matzehuels/justify/pkg/pipeline"
)

// justifyOpts holds the command-line flags shared by the root command and
// "justify text".
type justifyOpts struct {
	width      int    // target line width in characters
	whitespace string // "strict" or "collapse"
	normalize  bool   // NFC-normalize before counting characters
	output     string // output file; empty writes to stdout
	noCache    bool   // disable the cache for this run
	refresh    bool   // recompute and overwrite the cached result
	stats      bool   // print a stats line to stderr
}

// registerLayout adds the flags that change how text is justified.
func (o *justifyOpts) registerLayout(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&o.width, "width", "w", 0, fmt.Sprintf("line width in characters (default %d)", pipeline.DefaultWidth))
	f.StringVar(&o.whitespace, "whitespace", "", "word splitting: collapse (runs of whitespace separate words) or strict (every space separates)")
	f.BoolVar(&o.normalize, "normalize", false, "NFC-normalize the input before counting characters")
}

func (o *justifyOpts) register(cmd *cobra.Command) {
	o.registerLayout(cmd)
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "write the result to a file instead of stdout")
	f.BoolVar(&o.noCache, "no-cache", false, "disable caching")
	f.BoolVar(&o.refresh, "refresh", false, "ignore cached results and recompute")
	f.BoolVar(&o.stats, "stats", false, "print word and line counts to stderr")
}

// pipelineOptions merges config values with flags the user set explicitly.
// An explicit --width must be positive; zero is not a request for the default.
func (o *justifyOpts) pipelineOptions(cmd *cobra.Command, cfg *config.Config) (pipeline.Options, error) {
	opts := pipeline.Options{
		Width:      cfg.Width,
		Whitespace: cfg.Whitespace,
		Normalize:  cfg.Normalize,
		Refresh:    o.refresh,
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		if err := errs.ValidateWidth(o.width); err != nil {
			return pipeline.Options{}, err
		}
		opts.Width = o.width
	}
	if flags.Changed("whitespace") {
		opts.Whitespace = o.whitespace
	}
	if flags.Changed("normalize") {
		opts.Normalize = o.normalize
	}
	return opts, nil
}

// rootCommand creates the bare root command; running it justifies a file or stdin.
func (c *CLI) rootCommand() *cobra.Command {
	var opts justifyOpts

	cmd := &cobra.Command{
		Use:   "justify [file]",
		Short: "Justify text to a fixed line width",
		Long: `Justify reads a paragraph and packs its words greedily into lines of exactly
the requested width, spreading the leftover spaces over the gaps between words.

Input is read from the given file, or from stdin when the file is "-" or omitted.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runJustify(cmd, args, &opts)
		},
	}
	opts.register(cmd)
	return cmd
}

// textCommand is an explicit alias for the root run.
func (c *CLI) textCommand() *cobra.Command {
	var opts justifyOpts

	cmd := &cobra.Command{
		Use:   "text [file]",
		Short: "Justify a file or stdin (same as running justify without a subcommand)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runJustify(cmd, args, &opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func (c *CLI) runJustify(cmd *cobra.Command, args []string, opts *justifyOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	popts, err := opts.pipelineOptions(cmd, cfg)
	if err != nil {
		return err
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	input, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, input, popts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Justified %d words into %d lines", res.Stats.Words, res.Stats.Lines))

	if err := writeOutput(ctx, opts.output, cmd.OutOrStdout(), res.Document.String()); err != nil {
		return err
	}
	if opts.output != "" {
		printFile(cmd.ErrOrStderr(), opts.output)
	}
	if opts.stats {
		printStats(cmd.ErrOrStderr(), res)
	}
	return nil
}

// readInput reads path, or r when path is "-". One trailing newline is
// dropped so that a file ending in a newline does not end in an empty word.
func readInput(path string, r io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
	} else {
		if err := errs.ValidatePath(path); err != nil {
			return "", err
		}
		data, err = os.ReadFile(path)
		if os.IsNotExist(err) {
			return "", errs.Wrap(errs.ErrCodeFileNotFound, err, "input file %s", path)
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
	}

	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}

// writeOutput writes the document and a final newline to path, or to w when
// path is empty.
func writeOutput(ctx context.Context, path string, w io.Writer, text string) error {
	text += "\n"
	if path == "" {
		_, err := io.WriteString(w, text)
		return err
	}

	if err := errs.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	loggerFromContext(ctx).Debug("wrote output", "path", path, "bytes", len(text))
	return nil
}
