// Package config loads the settings of the lrucache binary from a TOML or
// YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v2"

	"lrucache/lru"
)

// DefaultCapacity is used when the file leaves capacity unset.
const DefaultCapacity = 100

// ErrUnsupportedFormat is returned for config files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Config holds the cache and replay settings.
type Config struct {
	Capacity int    `toml:"capacity" yaml:"capacity"`
	Trace    string `toml:"trace" yaml:"trace"`       // operation script to replay; empty runs the built-in scenario
	Encoding string `toml:"encoding" yaml:"encoding"` // character encoding of the trace file
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Load reads the file at path, choosing the decoder from its extension,
// then applies defaults and validates the result.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	// An explicit capacity, zero included, is validated rather than defaulted.
	var capacitySet bool
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(content), &cfg)
		if err != nil {
			return nil, fmt.Errorf("config: TOML parsing failed on %s: %w", path, err)
		}
		capacitySet = md.IsDefined("capacity")
	case ".yaml", ".yml":
		if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
			return nil, fmt.Errorf("config: YAML parsing failed on %s: %w", path, err)
		}
		var keys struct {
			Capacity *int `yaml:"capacity"`
		}
		if err := yaml.Unmarshal(content, &keys); err != nil {
			return nil, fmt.Errorf("config: YAML parsing failed on %s: %w", path, err)
		}
		capacitySet = keys.Capacity != nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	// Relative trace paths are resolved against the config file.
	if cfg.Trace != "" && !filepath.IsAbs(cfg.Trace) {
		cfg.Trace = filepath.Join(filepath.Dir(path), cfg.Trace)
	}

	cfg.applyDefaults(capacitySet)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults(false)
	return &cfg
}

func (c *Config) applyDefaults(capacitySet bool) {
	if !capacitySet && c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.Encoding == "" {
		c.Encoding = "utf-8"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Capacity < 1 || c.Capacity > lru.MaxCapacity {
		return fmt.Errorf("config: capacity must be in 1..%d, got %d", lru.MaxCapacity, c.Capacity)
	}
	if _, err := htmlindex.Get(c.Encoding); err != nil {
		return fmt.Errorf("config: encoding %q: %w", c.Encoding, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
