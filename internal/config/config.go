// Package config loads and validates the dtsgen configuration file.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-json-experiment/json"
)

// Config represents the dtsgen configuration.
type Config struct {
	// Input is the path of the schema document (JSON or YAML).
	Input string `json:"input"`

	// Output is the path of the generated declaration file. Empty writes
	// to stdout.
	Output string `json:"output,omitempty"`

	// CamelCase converts every emitted identifier and field key from
	// separator-delimited form to camelCase.
	CamelCase bool `json:"camelCase,omitempty"`

	// ContainerName overrides the text that opens the enclosing
	// declaration container, e.g. `declare namespace API {`.
	ContainerName string `json:"containerName,omitempty"`

	Formatter FormatterConfig `json:"formatter,omitempty"`
}

// FormatterConfig controls the external formatting collaborator.
type FormatterConfig struct {
	// Disable skips the external formatter entirely and uses the built-in
	// normalizer.
	Disable bool `json:"disable,omitempty"`

	// Command overrides the launcher used to run prettier (default "npx").
	Command string `json:"command,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{}
}

// Load reads and parses a dtsgen config file (dtsgen.config.json).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %q", path)
	}
	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %q", path)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config in %q", path)
	}
	return &config, nil
}

// Validate checks the config file for logical errors. Input may still be
// empty here; the CLI merges flags over file values before requiring it.
func (c *Config) Validate() error {
	res := c.ValidateDetailed()
	for _, e := range res.Errors {
		if !strings.HasPrefix(e, "input:") {
			return errors.New(e)
		}
	}
	return nil
}
