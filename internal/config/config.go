package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/aretw0/strata"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "strata.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config drives the CLI.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// Stage is the last chain step to apply.
	Stage string `mapstructure:"stage"`
	// Flip presets the session flag when set.
	Flip *bool `mapstructure:"flip"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel: "info",
		Stage:    strata.Stages[len(strata.Stages)-1],
	}
}

// Load reads a YAML file over the defaults.
// A missing file is not an error; it yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML content over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the stage name against the chain.
func (c Config) Validate() error {
	if !slices.Contains(strata.Stages, c.Stage) {
		return fmt.Errorf("%w: stage %q is not one of %v", ErrInvalidConfig, c.Stage, strata.Stages)
	}
	return nil
}
