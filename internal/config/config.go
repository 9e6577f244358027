package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up next to the Dockerfile.
const DefaultFilename = "docker2sh.yaml"

// Output modes.
const (
	OutputShell = "shell"
	OutputJSON  = "json"
)

// Config holds default output settings for a conversion run. Command line
// flags take precedence over values loaded from disk.
type Config struct {
	Output   string `yaml:"output,omitempty"`   // "shell" or "json"
	KeepTabs bool   `yaml:"keepTabs,omitempty"` // preserve tabs in instruction values
}

// Default returns the built-in defaults: shell output, tabs stripped.
func Default() Config {
	return Config{Output: OutputShell}
}

func (c *Config) normalize() error {
	if c.Output == "" {
		c.Output = OutputShell
	}
	switch c.Output {
	case OutputShell, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output mode %q", c.Output)
	}
}

// Load reads and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadIfPresent reads a config file if it exists, falling back to the
// defaults when it does not.
func LoadIfPresent(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
