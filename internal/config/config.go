// Package config provides configuration loading and validation for the
// ranking API server. It uses koanf to merge environment variables with
// optional file overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration values for the ranking API server.
type Config struct {
	// Server settings
	Port int    `koanf:"port"`
	Env  string `koanf:"env"`

	// CalibrationPath points at the optional ranking weight calibration
	// file. Empty means built-in default weights.
	CalibrationPath string `koanf:"calibration_path"`

	// Feature flags
	LunchWeightsEnabled bool `koanf:"lunch_weights_enabled"` // Hour-of-day weight switching
}

// Configuration validation errors.
var (
	ErrInvalidPort = errors.New("PORT must be a valid integer")
)

// Default values.
const (
	DefaultPort                = 8080
	DefaultEnv                 = "development"
	DefaultLunchWeightsEnabled = true
)

// Load reads configuration from environment variables and an optional config
// file. Environment variables take precedence over file values.
// Returns the loaded config and a slice of validation errors (empty if
// valid). If a config file path is provided and the file cannot be loaded,
// an error is returned.
func Load(configFilePath string) (*Config, []error) {
	k := koanf.New(".")
	var loadErrs []error

	// Load from YAML file first if provided (lower precedence)
	if configFilePath != "" {
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			return nil, []error{fmt.Errorf("failed to load config file %s: %w", configFilePath, err)}
		}
	}

	// Try CHEAPEATS_PORT first, then PORT
	port, portErr := getEnvIntOrDefaultMulti([]string{"CHEAPEATS_PORT", "PORT"}, k.Int("port"), DefaultPort)
	if portErr != nil {
		loadErrs = append(loadErrs, portErr)
	}

	lunchEnabled := DefaultLunchWeightsEnabled
	if k.Exists("lunch_weights_enabled") {
		lunchEnabled = k.Bool("lunch_weights_enabled")
	}
	if val := os.Getenv("LUNCH_WEIGHTS_ENABLED"); val != "" {
		// Env var takes precedence over file config
		switch strings.ToLower(val) {
		case "true", "1", "yes", "on":
			lunchEnabled = true
		case "false", "0", "no", "off":
			lunchEnabled = false
		}
	}

	cfg := &Config{
		Port:                port,
		Env:                 getEnvOrDefaultMulti([]string{"CHEAPEATS_ENV", "ENV", "GO_ENV"}, k.String("env"), DefaultEnv),
		CalibrationPath:     getEnvOrKoanf("CALIBRATION_PATH", k, "calibration_path"),
		LunchWeightsEnabled: lunchEnabled,
	}

	errs := cfg.Validate()
	errs = append(loadErrs, errs...)

	return cfg, errs
}

// Validate checks the loaded configuration for invalid values.
func (c *Config) Validate() []error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, ErrInvalidPort)
	}
	return errs
}

// getEnvOrKoanf returns the environment variable value if set, otherwise the koanf value.
func getEnvOrKoanf(envKey string, k *koanf.Koanf, koanfKey string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	return k.String(koanfKey)
}

// getEnvOrDefaultMulti tries multiple environment variable keys in order.
// Returns the first non-empty value found, otherwise the koanf value, or default.
func getEnvOrDefaultMulti(envKeys []string, koanfVal string, defaultVal string) string {
	for _, key := range envKeys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	if koanfVal != "" {
		return koanfVal
	}
	return defaultVal
}

// getEnvIntOrDefaultMulti tries multiple environment variable keys in order,
// parsing the first non-empty value as an integer. Falls back to the koanf
// value, then the default. Returns an error if a set variable cannot be
// parsed as an integer.
func getEnvIntOrDefaultMulti(envKeys []string, koanfVal int, defaultVal int) (int, error) {
	for _, key := range envKeys {
		if val := os.Getenv(key); val != "" {
			i, err := strconv.Atoi(val)
			if err != nil {
				return 0, fmt.Errorf("%s must be a valid integer: %w", key, ErrInvalidPort)
			}
			return i, nil
		}
	}
	if koanfVal != 0 {
		return koanfVal, nil
	}
	return defaultVal, nil
}
