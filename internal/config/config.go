// Package config provides configuration loading for the strpat CLI.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (STRPAT_INSENSITIVE, STRPAT_LOG_LEVEL, etc.)
//  2. YAML config file (--config flag)
//  3. Hardcoded defaults
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/fyrsmithlabs/stringpatterns/internal/logging"
	"github.com/fyrsmithlabs/stringpatterns/pkg/numeric"
	"github.com/fyrsmithlabs/stringpatterns/pkg/words"
)

const envPrefix = "STRPAT_"

// defaultYAML seeds the koanf tree so every key exists before file and
// environment overrides are applied.
const defaultYAML = `
insensitive: false
locale: standard
bounds: both
log:
  level: warn
  format: console
`

// Config holds the complete strpat configuration.
type Config struct {
	// Insensitive makes every pattern operation case-insensitive.
	Insensitive bool `koanf:"insensitive"`
	// Locale selects the numeric separator convention, "standard" or
	// "european".
	Locale string `koanf:"locale"`
	// Bounds selects the default word boundary mode for word commands:
	// "none", "start", "end" or "both".
	Bounds string         `koanf:"bounds"`
	Log    logging.Config `koanf:"log"`
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Locale) {
	case "standard", "european":
	default:
		return fmt.Errorf("locale must be 'standard' or 'european', got %q", c.Locale)
	}
	switch strings.ToLower(c.Bounds) {
	case "none", "start", "end", "both":
	default:
		return fmt.Errorf("bounds must be one of 'none', 'start', 'end', 'both', got %q", c.Bounds)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// NumericLocale returns the parsed locale setting.
func (c *Config) NumericLocale() numeric.Locale {
	return numeric.ParseLocale(c.Locale)
}

// WordBounds returns the parsed boundary setting.
func (c *Config) WordBounds() words.Bounds {
	return words.ParseBounds(c.Bounds)
}

// Load builds the configuration from defaults, an optional YAML file and
// STRPAT_* environment variables, in increasing precedence.
//
// Environment variables map to config keys by lowercasing and splitting on
// the first underscore after the prefix:
//
//	STRPAT_INSENSITIVE -> insensitive
//	STRPAT_LOG_LEVEL   -> log.level
//	STRPAT_LOG_FORMAT  -> log.format
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider([]byte(defaultYAML)), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// STRPAT_LOG_LEVEL -> log.level, STRPAT_INSENSITIVE -> insensitive.
		// Split on the first underscore only so multi-word leaf keys keep
		// their underscores.
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
