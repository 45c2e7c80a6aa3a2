// Package config provides output configuration for gitabbrev.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config controls how the graph is printed.
type Config struct {
	// HeadGlyph marks commits the caller asked for.
	HeadGlyph string `toml:"head_glyph"`
	// AbbrevGlyph marks "N commits abbreviated" nodes.
	AbbrevGlyph string `toml:"abbrev_glyph"`
	// Color enables glyph styling.
	Color bool `toml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HeadGlyph:   "@",
		AbbrevGlyph: "|",
	}
}

// Load reads a TOML config from path. When path is empty the GITABBREV_CONFIG
// environment variable is consulted; a missing file at that implicit location
// falls back to the defaults, while an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv("GITABBREV_CONFIG")
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.HeadGlyph == "" {
		cfg.HeadGlyph = Default().HeadGlyph
	}
	if cfg.AbbrevGlyph == "" {
		cfg.AbbrevGlyph = Default().AbbrevGlyph
	}
	return cfg, nil
}
