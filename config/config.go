// Package config loads grclean runtime settings.
//
// Precedence, lowest to highest:
//
//	Default() → YAML file → .env file → GRCLEAN_* environment → CLI flags
//
// CLI flags are applied by the caller after Load returns.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grclean/dimacs"
)

// Environment variables consulted by Load.
const (
	EnvLogLevel     = "GRCLEAN_LOG_LEVEL"
	EnvLogFormat    = "GRCLEAN_LOG_FORMAT"
	EnvOutputSuffix = "GRCLEAN_OUTPUT_SUFFIX"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

var (
	ErrEmptySuffix   = errors.New("config: output suffix is empty")
	ErrUnknownLevel  = errors.New("config: unknown log level")
	ErrUnknownFormat = errors.New("config: unknown log format")
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "console"}
)

type Config struct {
	Log    Log    `yaml:"log"`
	Output Output `yaml:"output"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Output struct {
	Suffix string `yaml:"suffix"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log:    Log{Level: "info", Format: "console"},
		Output: Output{Suffix: dimacs.DefaultSuffix},
	}
}

// Load builds a Config from defaults, the optional YAML file at path
// (skipped when path is empty), the optional .env file and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// godotenv never overrides variables already set in the process.
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Log.Level = getEnv(EnvLogLevel, c.Log.Level)
	c.Log.Format = getEnv(EnvLogFormat, c.Log.Format)
	c.Output.Suffix = getEnv(EnvOutputSuffix, c.Output.Suffix)
}

// Validate normalizes case and rejects unusable values.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	if c.Output.Suffix == "" {
		return ErrEmptySuffix
	}
	if !slices.Contains(validLevels, c.Log.Level) {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, c.Log.Level)
	}
	if !slices.Contains(validFormats, c.Log.Format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Log.Format)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

