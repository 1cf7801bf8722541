package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/justify/pkg/buildinfo"
	"github.com/matzehuels/justify/pkg/cache"
	"github.com/matzehuels/justify/pkg/config"
	"github.com/matzehuels/justify/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// status receives spinners and connection messages.
	status io.Writer

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), status: w}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.rootCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/justify/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if c.verbose {
			c.SetLogLevel(LogDebug)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.textCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// loadConfig reads the config file once per CLI.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
// It fails only when ctx ends while a remote cache is connecting.
func (c *CLI) newRunner(ctx context.Context, cfg *config.Config, noCache bool) (*pipeline.Runner, error) {
	backend, err := c.newCache(ctx, cfg.Cache, noCache)
	if err != nil {
		return nil, err
	}

	var keyer cache.Keyer
	if cfg.Cache.KeyPrefix != "" {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), cfg.Cache.KeyPrefix)
	}
	runner := pipeline.NewRunner(backend, keyer, c.Logger)
	runner.TTL = cfg.Cache.TTL.Duration
	return runner, nil
}

// newCache builds the configured backend. Remote backends that cannot be
// reached degrade to no caching with a warning.
func (c *CLI) newCache(ctx context.Context, cc config.CacheConfig, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	var (
		backend cache.Cache
		err     error
	)
	switch cc.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendMemory:
		backend = cache.NewMemoryCache()
	case config.BackendRedis:
		backend, err = connect(ctx, c.status, "redis at "+cc.RedisAddr, func() (cache.Cache, error) {
			return cache.NewRedisCache(ctx, cache.RedisConfig{
				Addr:     cc.RedisAddr,
				Password: cc.RedisPassword,
				DB:       cc.RedisDB,
			})
		})
	case config.BackendMongo:
		backend, err = connect(ctx, c.status, "mongo", func() (cache.Cache, error) {
			return cache.NewMongoCache(ctx, cache.MongoConfig{
				URI:        cc.MongoURI,
				Database:   cc.MongoDatabase,
				Collection: cc.MongoCollection,
			})
		})
	default:
		backend, err = openFileCache(cc.Dir)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		c.Logger.Warn("cache unavailable, continuing without it", "backend", cc.Backend, "err", err)
		return cache.NewNullCache(), nil
	}

	c.Logger.Debug("cache ready", "backend", cc.Backend)
	return cache.Observe(backend, cache.KeyTypeDocument), nil
}

// connect runs a remote cache constructor behind a spinner on w.
func connect(ctx context.Context, w io.Writer, what string, open func() (cache.Cache, error)) (cache.Cache, error) {
	s := newSpinnerWithContext(ctx, "Connecting to "+what+"...")
	s.out = w
	s.Start()

	backend, err := open()
	if s.Cancelled() {
		s.Stop()
		if err == nil {
			_ = backend.Close()
		}
		return nil, fmt.Errorf("connect to %s: %w", what, ctx.Err())
	}
	if err != nil {
		s.StopWithError("Could not connect to " + what)
		return nil, err
	}
	s.StopWithSuccess("Connected to " + what)
	return backend, nil
}

func openFileCache(dir string) (*cache.FileCache, error) {
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return nil, err
		}
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/justify/).
func cacheDir() (string, error) {
	return config.CacheDir()
}
