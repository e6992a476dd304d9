package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/skdltmxn/refmeta/internal/logging"
)

// Environment overrides.
const (
	EnvLogLevel  = "REFVIEW_LOG_LEVEL"
	EnvLogFormat = "REFVIEW_LOG_FORMAT"
	EnvInherited = "REFVIEW_INHERITED"
	EnvWorkers   = "REFVIEW_WORKERS"
)

type Config struct {
	Logging logging.Config `yaml:"logging"`
	Lookup  struct {
		// Inherited makes lookups search interfaces and superclasses by default.
		Inherited bool `yaml:"inherited"`
	} `yaml:"lookup"`
	Check struct {
		Workers int `yaml:"workers"`
	} `yaml:"check"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Logging = logging.Config{Level: "warn", Format: logging.FormatConsole}
	cfg.Check.Workers = 4
	return cfg
}

// Load reads the YAML file at path over the defaults and applies
// environment overrides. A missing .env is ignored, and so is a missing
// config file when path is empty.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: loading .env: %w", err)
	}

	cfg := Default()

	// 2. Load YAML config
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	// 3. Override with Environment Variables if present
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		c.Logging.Format = format
	}
	if v := os.Getenv(EnvInherited); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvInherited, err)
		}
		c.Lookup.Inherited = b
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvWorkers, err)
		}
		c.Check.Workers = n
	}
	return nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "", logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("config: unknown log format %q", c.Logging.Format)
	}
	if c.Check.Workers < 1 {
		return fmt.Errorf("config: check.workers must be positive, got %d", c.Check.Workers)
	}
	return nil
}
