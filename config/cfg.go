// Package config holds program configuration: defaults overlaid with an
// optional YAML file, plus preparation of the program logger.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type LoggerConfig struct {
	Level string `yaml:"level"` // none, normal or debug
}

type LoggingConfig struct {
	Console LoggerConfig `yaml:"console"`
}

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Console: LoggerConfig{Level: "normal"},
		},
	}
}

// Load returns the default configuration overlaid with the YAML file at
// path; an empty path keeps the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if len(path) == 0 {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse configuration: %w", err)
	}
	switch cfg.Logging.Console.Level {
	case "none", "normal", "debug":
	default:
		return nil, fmt.Errorf("unsupported console log level %q", cfg.Logging.Console.Level)
	}
	return cfg, nil
}
