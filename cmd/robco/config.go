package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// config contains the tool's settings.
type config struct {
	Color         string `toml:"color"`
	StrictLengths bool   `toml:"strict_lengths"`
	Dictionary    string `toml:"dictionary"`
}

func defaultConfig() config {
	return config{Color: colorAuto}
}

// loadConfig reads the configuration file at path, or the default
// location when path is empty. A missing file yields the defaults.
func loadConfig(path string) (*config, string, error) {
	cfg := defaultConfig()

	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", err
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, "", fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolved, nil
}

func (c *config) validate() error {
	switch c.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("config: color must be auto, always, or never, got %q", c.Color)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", false, fmt.Errorf("locate config dir: %w", err)
		}
		path = filepath.Join(dir, "robco", "config.toml")
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", path)
	}

	return path, true, nil
}
