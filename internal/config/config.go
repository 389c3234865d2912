// Package config loads the optional REPL configuration file.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// REPL holds cosmetic settings for the interactive shell. DefaultREPL
// returns the default configuration: absence of a config file is not an
// error.
type REPL struct {
	Prompt      string `yaml:"prompt"`
	ShowBanner  bool   `yaml:"show_banner"`
	HistoryFile string `yaml:"history_file"`
}

// DefaultREPL returns the configuration used when no file is present.
func DefaultREPL() REPL {
	return REPL{
		Prompt:      "minilisp> ",
		ShowBanner:  true,
		HistoryFile: "",
	}
}

// LoadREPL reads path as YAML into a REPL config seeded with defaults for
// any field the file omits. A missing file is not an error; it yields
// DefaultREPL unchanged.
func LoadREPL(path string) (REPL, error) {
	cfg := DefaultREPL()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return REPL{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return REPL{}, err
	}
	return cfg, nil
}
