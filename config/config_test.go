package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"breakthrough/meta"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig

	require.NoError(t, config.Validate())
	require.Equal(t, meta.TIME_BUDGET, config.Duration())
	require.Equal(t, zerolog.InfoLevel, config.Level())
}

func TestLoadFile(t *testing.T) {
	t.Run("overriding some fields", func(t *testing.T) {
		path := writeConfig(t, `{"experiment": "depth", "log_level": "debug", "search": {"duration_ms": 250, "fan_out": 8}}`)

		config, err := LoadFile(path)

		require.NoError(t, err)
		require.Equal(t, "depth", config.Experiment)
		require.Equal(t, 250*time.Millisecond, config.Duration())
		require.Equal(t, 8, config.Search.FanOut)
		require.Equal(t, meta.DEPTH_THRESHOLD, config.Search.DepthThreshold, "Missing fields should keep defaults")
		require.Equal(t, DefaultConfig.Games, config.Games)
		require.Equal(t, zerolog.DebugLevel, config.Level())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))

		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, `{"games": `))

		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, `{"search": {"fan_out": 0}}`))

		var invalid *InvalidConfig
		require.ErrorAs(t, err, &invalid)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"unknown experiment", func(c *Config) { c.Experiment = "tournament" }},
		{"no games", func(c *Config) { c.Games = 0 }},
		{"no output directory", func(c *Config) { c.OutDir = "" }},
		{"no search limit", func(c *Config) { c.Search.DurationMs = 0 }},
		{"negative episodes", func(c *Config) { c.Search.Episodes = -1 }},
		{"negative depth", func(c *Config) { c.Search.DepthThreshold = -1 }},
		{"no rollouts", func(c *Config) { c.Search.FanOut = 0 }},
		{"exploit above one", func(c *Config) { c.Search.ExploitProbability = 1.5 }},
		{"no amplification", func(c *Config) { c.Search.Amplification = 0 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig
			tt.modify(&config)

			var invalid *InvalidConfig
			require.ErrorAs(t, config.Validate(), &invalid)
		})
	}

	t.Run("episodes without duration", func(t *testing.T) {
		config := DefaultConfig
		config.Search.DurationMs = 0
		config.Search.Episodes = 100

		require.NoError(t, config.Validate())
	})
}
