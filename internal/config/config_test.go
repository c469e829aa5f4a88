package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mastermind.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring: legacy\ncolor: never\nlog:\n  level: debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "legacy", cfg.Scoring)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Keys missing from the file keep their defaults.
	assert.True(t, cfg.Legend)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("scoring: [unclosed"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "mastermind.yaml"), []byte("legend: false\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Legend)
	assert.Equal(t, "canonical", cfg.Scoring)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(&cfg, map[string]string{
		"MASTERMIND_SCORING":        "legacy",
		"MASTERMIND_COLOR":          "always",
		"MASTERMIND_LOG_LEVEL":      "error",
		"MASTERMIND_LOG_TIMESTAMPS": "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "legacy", cfg.Scoring)
	assert.Equal(t, ColorAlways, cfg.Color)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Log.Timestamps)
	assert.True(t, cfg.Legend, "unset variables keep file values")
}

func TestApplyEnvBadBool(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(&cfg, map[string]string{"MASTERMIND_LEGEND": "maybe"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"bad color", func(c *Config) { c.Color = "rainbow" }, true},
		{"empty scoring", func(c *Config) { c.Scoring = "" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestColorModeEnabled(t *testing.T) {
	assert.True(t, ColorAlways.Enabled(false))
	assert.False(t, ColorNever.Enabled(true))
	assert.True(t, ColorAuto.Enabled(true))
	assert.False(t, ColorAuto.Enabled(false))
}

func TestProperty_ValidateColorModes(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		mode := rapid.StringMatching(`[a-z]{0,8}`).Draw(rt, "mode")
		cfg := Default()
		cfg.Color = ColorMode(mode)

		err := cfg.Validate()
		known := mode == "auto" || mode == "always" || mode == "never"
		if known && err != nil {
			rt.Fatalf("mode %q rejected: %v", mode, err)
		}
		if !known && err == nil {
			rt.Fatalf("mode %q accepted", mode)
		}
	})
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
