// Package config manages application configuration, logging setup, and the
// emission factor dataset for carbontrack.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDirName is the per-user directory that holds all carbontrack state.
const AppDirName = ".carbontrack"

// Default file names inside the app directory.
const (
	DefaultConfigFileName  = "config.yaml"
	DefaultFactorsFileName = "factors.yaml"
	DefaultHistoryFileName = "history.json"
)

// LoggingConfig controls the zerolog setup.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `yaml:"level" json:"level"`
	// File is an optional log file path. Empty means console only.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// StorageConfig locates the history document.
type StorageConfig struct {
	// HistoryFile is the path of the JSON history document. Empty means
	// the default under the app directory.
	HistoryFile string `yaml:"history_file,omitempty" json:"history_file,omitempty"`
}

// FactorsConfig locates the emission factor dataset.
type FactorsConfig struct {
	// File is the path of the factors YAML file. Empty means the default
	// under the app directory.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
	Storage StorageConfig `yaml:"storage,omitempty" json:"storage,omitempty"`
	Factors FactorsConfig `yaml:"factors,omitempty" json:"factors,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
	}
}

// AppDir returns the per-user carbontrack directory, honoring the
// CARBONTRACK_HOME environment variable for tests and relocated installs.
func AppDir() (string, error) {
	if dir := os.Getenv("CARBONTRACK_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, AppDirName), nil
}

// HistoryFilePath resolves the history document path from config or default.
func (c *Config) HistoryFilePath() (string, error) {
	if c.Storage.HistoryFile != "" {
		return c.Storage.HistoryFile, nil
	}
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultHistoryFileName), nil
}

// FactorsFilePath resolves the factor dataset path from config or default.
func (c *Config) FactorsFilePath() (string, error) {
	if c.Factors.File != "" {
		return c.Factors.File, nil
	}
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultFactorsFileName), nil
}

// Load reads the config file under the app directory if present and merges
// it onto defaults. A missing config file is not an error.
func Load() (*Config, error) {
	cfg := New()

	dir, err := AppDir()
	if err != nil {
		return cfg, err
	}

	path := filepath.Join(dir, DefaultConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return New(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}

// Write marshals the config to the config file under the app directory.
func (c *Config) Write() error {
	dir, err := AppDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, DefaultConfigFileName)

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := ensureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// ensureParentDir creates the parent directory of path if needed.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
