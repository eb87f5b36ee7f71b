package core

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the user-tunable settings read from .taskrconfig.
type Config struct {
	// DataFile is the task collection file name, relative to the base path.
	DataFile string
	// EventsFile is the JSONL event log file name, relative to the base path.
	EventsFile string
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		DataFile:   "data.json",
		EventsFile: "events.jsonl",
	}
}

// LoadConfig reads the .taskrconfig YAML file from the base path using
// Viper. A missing file yields the defaults; a malformed one is an error.
func LoadConfig(basePath string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(".taskrconfig")
	v.SetConfigType("yaml")
	v.AddConfigPath(basePath)

	v.SetDefault("data.file", cfg.DataFile)
	v.SetDefault("events.file", cfg.EventsFile)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .taskrconfig: %w", err)
	}

	cfg.DataFile = v.GetString("data.file")
	cfg.EventsFile = v.GetString("events.file")
	return cfg, nil
}
