package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"time"

	"breakthrough/meta"
	"breakthrough/utils"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "breakthrough/config.json"

	Experiments = []string{"selfplay", "strength", "depth", "fan_out"}
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type SearchConfig struct {
	DurationMs         int     `json:"duration_ms"`
	Episodes           int     `json:"episodes"`
	DepthThreshold     int     `json:"depth_threshold"`
	FanOut             int     `json:"fan_out"`
	ExploitProbability float64 `json:"exploit_probability"`
	Amplification      int     `json:"amplification"`
	Seed               uint64  `json:"seed"`
}

type Config struct {
	Experiment string       `json:"experiment"`
	Games      int          `json:"games"`
	OutDir     string       `json:"out_dir"`
	LogLevel   string       `json:"log_level"`
	Search     SearchConfig `json:"search"`
}

var DefaultConfig = Config{
	Experiment: "selfplay",
	Games:      10,
	OutDir:     "experiments",
	LogLevel:   "info",
	Search: SearchConfig{
		DurationMs:         int(meta.TIME_BUDGET / time.Millisecond),
		DepthThreshold:     meta.DEPTH_THRESHOLD,
		FanOut:             meta.FAN_OUT,
		ExploitProbability: meta.EXPLOIT_PROBABILITY,
		Amplification:      meta.AMPLIFICATION,
	},
}

// InitConfig returns the defaults overridden by the user's config file, if
// there is one in the XDG config directories.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return LoadFile(absPath)
}

// LoadFile reads a JSON config over the defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	switch {
	case !utils.Contains(Experiments, c.Experiment):
		return &InvalidConfig{fmt.Sprintf("unknown experiment %q, expected one of %v", c.Experiment, Experiments)}
	case c.Games <= 0:
		return &InvalidConfig{"games must be positive"}
	case c.OutDir == "":
		return &InvalidConfig{"out_dir must not be empty"}
	case c.Search.DurationMs <= 0 && c.Search.Episodes <= 0:
		return &InvalidConfig{"search needs a positive duration_ms or episodes"}
	case c.Search.Episodes < 0 || c.Search.DurationMs < 0:
		return &InvalidConfig{"duration_ms and episodes must not be negative"}
	case c.Search.DepthThreshold < 0:
		return &InvalidConfig{"depth_threshold must not be negative"}
	case c.Search.FanOut <= 0:
		return &InvalidConfig{"fan_out must be positive"}
	case c.Search.ExploitProbability < 0 || c.Search.ExploitProbability > 1:
		return &InvalidConfig{"exploit_probability must be within [0, 1]"}
	case c.Search.Amplification <= 0:
		return &InvalidConfig{"amplification must be positive"}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("log_level: %v", err)}
	}
	return nil
}

func (c *Config) Duration() time.Duration {
	return time.Duration(c.Search.DurationMs) * time.Millisecond
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filePath, err)
	}
	return nil
}
