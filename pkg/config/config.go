// Package config loads the tool's directory configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultInputDir  = "input"
	defaultOutputDir = "output"
)

// Config holds the two directories the tool operates on.
type Config struct {
	InputDir  string `toml:"input_dir"`
	OutputDir string `toml:"output_dir"`
}

// Default returns the repository-local defaults.
func Default() Config {
	return Config{
		InputDir:  defaultInputDir,
		OutputDir: defaultOutputDir,
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that both directories are set.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input_dir must not be empty")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	return nil
}
