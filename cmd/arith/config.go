package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config is the contents of the configuration file. Options given on the
// command line take precedence.
type Config struct {
	// MaxLen is the query length limit in bytes. Zero or negative removes the
	// limit. Unset means arith.DefaultMaxLen.
	MaxLen *int `yaml:"max_len"`
	// JSON selects JSON envelope output.
	JSON bool `yaml:"json"`
	// Color forces colored output on or off. Unset means color is used when
	// the output is a terminal.
	Color *bool `yaml:"color"`
}

// LoadConfig reads the configuration file at path. A missing file gives the
// default configuration. Unknown keys are errors.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var config Config
	if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &config, nil
}

// loadEnvFiles loads .env from the working directory, if there is one.
// Variables already in the environment are kept.
func loadEnvFiles() error {
	if !fileExists(".env") {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
