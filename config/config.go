/*
File    : lim/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads the optional lim.yaml file that customizes the
// REPL banner and the set of host builtins a Lim session starts with.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the shape of lim.yaml. Load starts from Default and overlays
// the file, so a missing file or a partially filled one keeps Default's
// value for every field the file does not set.
type Config struct {
	Banner          string `yaml:"banner"`
	Prompt          string `yaml:"prompt"`
	HistoryFile     string `yaml:"history_file"`
	EnableTimestamp bool   `yaml:"enable_timestamp"`
}

// Default is the configuration used when no lim.yaml is present.
func Default() Config {
	return Config{
		Banner:          defaultBanner,
		Prompt:          "lim >>> ",
		HistoryFile:     ".lim_history",
		EnableTimestamp: true,
	}
}

const defaultBanner = `
   _     _
  | |   (_)_ __ ___
  | |   | | '_ ' _ \
  | |___| | | | | | |
  |_____|_|_| |_| |_|
`

// Load reads and parses path. A missing file is not an error: it yields
// Default unchanged, so running lim without any lim.yaml in the working
// directory is the common case, not a configuration failure.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
