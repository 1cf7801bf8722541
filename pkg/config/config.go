// Package config loads justify settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/justify/config.toml (falling back to
// ~/.config/justify/config.toml) unless a path is given explicitly. A missing
// default file is not an error: [Default] values apply. Unknown keys are
// rejected so typos surface instead of being silently ignored.
//
// # Example
//
//	width = 60
//	whitespace = "strict"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "cache.internal:6379"
//
//	[server]
//	addr = ":9090"
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/justify/pkg/errors"
	"github.com/matzehuels/justify/pkg/justify"
)

// AppName names the config and cache directories.
const AppName = "justify"

// Cache backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendNone   = "none"
)

// Config is the top-level configuration.
type Config struct {
	Width      int    `toml:"width"`
	Whitespace string `toml:"whitespace"`
	Normalize  bool   `toml:"normalize"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string   `toml:"backend"`
	TTL     Duration `toml:"ttl"`
	Dir     string   `toml:"dir"` // file backend; empty means the XDG cache dir

	// KeyPrefix namespaces every key, so several deployments can share one
	// redis or mongo instance.
	KeyPrefix string `toml:"key_prefix"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// ServerConfig configures `justify serve`.
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	MaxBodyBytes int64    `toml:"max_body_bytes"`
	ReadTimeout  Duration `toml:"read_timeout"`
}

// Duration is a time.Duration written as a Go duration string ("720h", "10s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Width:      72,
		Whitespace: justify.WhitespaceCollapseName,
		Cache: CacheConfig{
			Backend:         BackendFile,
			TTL:             Duration{30 * 24 * time.Hour},
			RedisAddr:       "localhost:6379",
			MongoURI:        "mongodb://localhost:27017",
			MongoDatabase:   AppName,
			MongoCollection: "documents",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 1 << 20,
			ReadTimeout:  Duration{10 * time.Second},
		},
	}
}

// DefaultPath returns the config file location following the XDG convention.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Dir returns $XDG_CONFIG_HOME/justify or ~/.config/justify.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// CacheDir returns $XDG_CACHE_HOME/justify or ~/.cache/justify.
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load reads the config file at path on top of [Default].
//
// An empty path means [DefaultPath]; if that file does not exist the defaults
// are returned. An explicit path that does not exist is FILE_NOT_FOUND.
// Syntax errors, unknown keys and invalid values are INVALID_CONFIG.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	} else if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.decode(string(data)); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "%s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text on top of [Default] and validates the result.
func Parse(text string) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(text); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(text string) error {
	md, err := toml.Decode(text, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks every value. Errors carry the INVALID_CONFIG code.
func (c *Config) Validate() error {
	if c.Width < 1 {
		return errs.New(errs.ErrCodeInvalidConfig, "width must be at least 1, got %d", c.Width)
	}
	if _, err := justify.ParseWhitespace(c.Whitespace); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "whitespace")
	}

	switch c.Cache.Backend {
	case BackendFile, BackendMemory, BackendNone:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errs.New(errs.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
		if c.Cache.RedisDB < 0 {
			return errs.New(errs.ErrCodeInvalidConfig, "cache.redis_db must not be negative")
		}
	case BackendMongo:
		if c.Cache.MongoURI == "" || c.Cache.MongoDatabase == "" || c.Cache.MongoCollection == "" {
			return errs.New(errs.ErrCodeInvalidConfig, "cache.mongo_uri, cache.mongo_database and cache.mongo_collection are required for the mongo backend")
		}
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "unknown cache backend %q (want file, memory, redis, mongo or none)", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}

	if c.Server.Addr == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	if c.Server.MaxBodyBytes < 1 {
		return errs.New(errs.ErrCodeInvalidConfig, "server.max_body_bytes must be positive")
	}
	if c.Server.ReadTimeout.Duration <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "server.read_timeout must be positive")
	}
	return nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
