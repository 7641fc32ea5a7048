package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/etnz/footprint"
	"gopkg.in/yaml.v3"
)

// Files names the input tables, relative to the data folder.
type Files struct {
	Exposures      string `yaml:"exposures"`
	Counterparties string `yaml:"counterparties"`
	Intensity      string `yaml:"intensity"`
	Dependency     string `yaml:"dependency"`
	Leontief       string `yaml:"leontief"`
}

// Config is the nfp configuration, read from a YAML file.
//
// Currency is the reporting currency. When set, every exposure must be in that
// currency. Empty accepts any, as long as each entity uses only one.
type Config struct {
	Data      string  `yaml:"data"`
	Workers   int     `yaml:"workers"`
	Currency  string  `yaml:"currency"`
	GHGFactor float64 `yaml:"ghg_factor"`
	Files     Files   `yaml:"files"`
}

// DefaultConfig returns the configuration used when there is no file. File
// names are the ones written by `nfp synth`.
func DefaultConfig() Config {
	return Config{
		Data:      ".",
		Workers:   1,
		GHGFactor: footprint.DefaultGHGFactor,
		Files: Files{
			Exposures:      "exposures.jsonl",
			Counterparties: "counterparties.jsonl",
			Intensity:      "intensity.jsonl",
			Dependency:     "dependency.jsonl",
			Leontief:       "leontief.jsonl",
		},
	}
}

// LoadConfig reads a YAML configuration file. Missing values keep their
// default, unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.GHGFactor < 0 {
		return fmt.Errorf("ghg_factor must be non-negative, got %v", c.GHGFactor)
	}
	if c.Currency != "" && money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("currency %q is not an ISO 4217 code", c.Currency)
	}
	if c.Data == "" {
		return errors.New("data folder must not be empty")
	}
	return nil
}
