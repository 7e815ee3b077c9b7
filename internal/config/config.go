// Package config loads REPL ergonomics settings — never language
// semantics — from an optional YAML file and PYLOX_* environment
// variables, generalizing mna-nenuphar's use of caarlos0/env for
// environment-derived configuration (spec §10.3 of SPEC_FULL.md).
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Config governs only how the REPL presents itself; it has no effect
// on how a .lox program is scanned, parsed, resolved, or evaluated.
type Config struct {
	NoColor      bool   `yaml:"no_color" env:"PYLOX_NO_COLOR"`
	HistoryFile  string `yaml:"history_file" env:"PYLOX_HISTORY_FILE"`
	PromptPrefix string `yaml:"prompt_prefix" env:"PYLOX_PROMPT"`
}

// Default returns the baseline configuration used when no rc file and
// no environment overrides are present.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		PromptPrefix: "> ",
		HistoryFile:  filepath.Join(home, ".pylox_history"),
	}
}

// Load reads ~/.pyloxrc.yaml if present, then applies PYLOX_*
// environment overrides on top. A missing rc file is not an error.
func Load() (Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, ".pyloxrc.yaml")
		if data, readErr := os.ReadFile(path); readErr == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
