package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/stringpatterns/pkg/numeric"
	"github.com/fyrsmithlabs/stringpatterns/pkg/words"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Insensitive)
	assert.Equal(t, "standard", cfg.Locale)
	assert.Equal(t, "both", cfg.Bounds)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("insensitive: true\nlocale: european\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Insensitive)
	assert.Equal(t, "european", cfg.Locale)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset keys keep their defaults.
	assert.Equal(t, "both", cfg.Bounds)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STRPAT_INSENSITIVE", "true")
	t.Setenv("STRPAT_LOCALE", "european")
	t.Setenv("STRPAT_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Insensitive)
	assert.Equal(t, "european", cfg.Locale)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: european\n"), 0o600))
	t.Setenv("STRPAT_LOCALE", "standard")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "standard", cfg.Locale)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("STRPAT_LOCALE", "martian")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad locale",
			mutate:  func(c *Config) { c.Locale = "lunar" },
			wantErr: true,
		},
		{
			name:    "bad bounds",
			mutate:  func(c *Config) { c.Bounds = "sideways" },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParsedAccessors(t *testing.T) {
	cfg := &Config{Locale: "european", Bounds: "start"}
	assert.Equal(t, numeric.LocaleEuropean, cfg.NumericLocale())
	assert.Equal(t, words.BoundStart, cfg.WordBounds())

	cfg = &Config{Locale: "standard", Bounds: "none"}
	assert.Equal(t, numeric.LocaleStandard, cfg.NumericLocale())
	assert.Equal(t, words.BoundNone, cfg.WordBounds())
}
