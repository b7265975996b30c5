// Package config holds the settings of the interactive calculator shell.
//
// Settings come from, in increasing priority: Default(), an optional YAML
// file, MATCALC_* environment variables, and command-line flags (applied by
// the caller). Config files describe shell behaviour only; matrices are
// never read from or written to disk.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxPrecision is the largest number of decimals that still changes the
// printed value of a float64.
const MaxPrecision = 17

// DefaultMaxDim bounds the rows and columns the shell accepts by default.
// A 4096×4096 operand is 128 MiB; inversion needs twice that.
const DefaultMaxDim = 4096

// Environment variables consulted by Load.
const (
	EnvPrecision = "MATCALC_PRECISION"
	EnvPivoting  = "MATCALC_PIVOTING"
	EnvLogLevel  = "MATCALC_LOG_LEVEL"
	EnvMaxDim    = "MATCALC_MAX_DIM"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config configures the calculator shell.
type Config struct {
	// Precision is the number of decimals printed per element; -1 prints
	// the shortest representation that round-trips.
	Precision int `yaml:"precision"`

	// Pivoting switches division to the partial-pivoting inverse.
	Pivoting bool `yaml:"pivoting"`

	// CheckResidual verifies B·B⁻¹ ≈ I before dividing and logs the outcome.
	CheckResidual bool `yaml:"check_residual"`

	// Tolerance is the absolute tolerance of the residual check.
	Tolerance float64 `yaml:"tolerance"`

	// MaxDim is the largest row or column count the shell accepts.
	MaxDim int `yaml:"max_dim"`

	// Color enables styled banner and error output on terminals.
	Color bool `yaml:"color"`

	// Logging
	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger built by the CLI.
type LogConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// ValidLogLevels lists the accepted log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidEncodings lists the accepted log encodings.
var ValidEncodings = []string{"json", "console"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Precision: -1,
		Tolerance: 1e-9,
		MaxDim:    DefaultMaxDim,
		Color:     true,
		Log: LogConfig{
			Level:    "warn",
			Encoding: "console",
		},
	}
}

// Load reads a YAML file over the defaults and applies environment overrides.
// An empty path or a missing file yields the defaults (plus overrides).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides overrides fields from MATCALC_* variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvPrecision); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvPrecision, v, ErrInvalid)
		}
		c.Precision = p
	}
	if v := os.Getenv(EnvPivoting); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvPivoting, v, ErrInvalid)
		}
		c.Pivoting = b
	}
	if v := os.Getenv(EnvMaxDim); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvMaxDim, v, ErrInvalid)
		}
		c.MaxDim = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Precision < -1 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision %d outside [-1, %d]: %w", c.Precision, MaxPrecision, ErrInvalid)
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return fmt.Errorf("tolerance %v must be finite and >= 0: %w", c.Tolerance, ErrInvalid)
	}
	if c.MaxDim < 1 {
		return fmt.Errorf("max_dim %d must be >= 1: %w", c.MaxDim, ErrInvalid)
	}
	if !contains(ValidLogLevels, c.Log.Level) {
		return fmt.Errorf("log level %q (want one of %v): %w", c.Log.Level, ValidLogLevels, ErrInvalid)
	}
	if !contains(ValidEncodings, c.Log.Encoding) {
		return fmt.Errorf("log encoding %q (want one of %v): %w", c.Log.Encoding, ValidEncodings, ErrInvalid)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
