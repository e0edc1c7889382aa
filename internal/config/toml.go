// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Terminal TerminalConfig `toml:"terminal"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Words       *int    `toml:"words"`
	Language    *string `toml:"language"`
	WordListDir *string `toml:"wordlist-dir"`
}

// TerminalConfig maps display settings.
type TerminalConfig struct {
	PollIntervalMS *int `toml:"poll-interval-ms"`
}

// PollInterval returns the configured redraw period, or zero when unset.
func (c TerminalConfig) PollInterval() time.Duration {
	if c.PollIntervalMS == nil || *c.PollIntervalMS <= 0 {
		return 0
	}
	return time.Duration(*c.PollIntervalMS) * time.Millisecond
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
