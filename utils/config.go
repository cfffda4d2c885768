package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	MinUpdateRate = 1
	MaxUpdateRate = 128
)

var (
	// ErrInvalidDimension is returned for a non-positive row or column count
	ErrInvalidDimension = errors.New("rows and cols must be positive")
	// ErrInvalidIterations is returned for a negative iteration cap
	ErrInvalidIterations = errors.New("max iterations must not be negative")
	// ErrUnsupportedFormat is returned for a config file with an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// DefaultConfigPaths are tried in order when looking for a config file
var DefaultConfigPaths = []string{"config.json", "config.yaml", "config.yml", "config.toml"}

// Pattern places a named pattern on the board before setup begins
type Pattern struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Row  int    `json:"row" yaml:"row" toml:"row"`
	Col  int    `json:"col" yaml:"col" toml:"col"`
}

// Config holds the configuration for the game
type Config struct {
	Rows           int       `json:"rows" yaml:"rows" toml:"rows"`
	Cols           int       `json:"cols" yaml:"cols" toml:"cols"`
	MaxIterations  int       `json:"max_iterations" yaml:"max_iterations" toml:"max_iterations"`
	UpdateRate     int       `json:"update_rate" yaml:"update_rate" toml:"update_rate"`
	Toroidal       bool      `json:"toroidal" yaml:"toroidal" toml:"toroidal"`
	Workers        int       `json:"workers" yaml:"workers" toml:"workers"`
	UseMemoryPool  bool      `json:"use_memory_pool" yaml:"use_memory_pool" toml:"use_memory_pool"`
	WaitTimeoutMs  int       `json:"wait_timeout_ms" yaml:"wait_timeout_ms" toml:"wait_timeout_ms"`
	SetupRefreshHz int       `json:"setup_refresh_hz" yaml:"setup_refresh_hz" toml:"setup_refresh_hz"`
	RandomDensity  float64   `json:"random_density" yaml:"random_density" toml:"random_density"`
	Patterns       []Pattern `json:"patterns" yaml:"patterns" toml:"patterns"`
	LogFile        string    `json:"log_file" yaml:"log_file" toml:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:           15,
		Cols:           50,
		MaxIterations:  250,
		UpdateRate:     10,
		Toroidal:       true,
		Workers:        0, // one per CPU
		UseMemoryPool:  true,
		WaitTimeoutMs:  1000,
		SetupRefreshHz: 120,
	}
}

// WaitTimeout is the ceiling on every condition wait
func (c Config) WaitTimeout() time.Duration {
	return time.Duration(c.WaitTimeoutMs) * time.Millisecond
}

// LoadConfig loads configuration from a JSON, YAML or TOML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		err = json.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	case ".toml":
		err = toml.Unmarshal(data, &config)
	default:
		return config, errors.Wrapf(ErrUnsupportedFormat, "[LoadConfig] %+v", filename)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// FindConfig returns the first of paths that exists, or "" if none do
func FindConfig(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate rejects unusable dimensions and clamps tunables into range
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "[Validate] rows=%d cols=%d", c.Rows, c.Cols)
	}
	if c.MaxIterations < 0 {
		return errors.Wrapf(ErrInvalidIterations, "[Validate] max_iterations=%d", c.MaxIterations)
	}
	c.UpdateRate = ClampRate(c.UpdateRate)
	if c.WaitTimeoutMs <= 0 {
		c.WaitTimeoutMs = DefaultConfig().WaitTimeoutMs
	}
	if c.SetupRefreshHz <= 0 {
		c.SetupRefreshHz = DefaultConfig().SetupRefreshHz
	}
	if c.Workers < 0 {
		c.Workers = 0
	}
	c.RandomDensity = min(max(c.RandomDensity, 0), 1)
	return nil
}

// ClampRate keeps an update rate within [MinUpdateRate, MaxUpdateRate]
func ClampRate(rate int) int {
	return min(max(rate, MinUpdateRate), MaxUpdateRate)
}
