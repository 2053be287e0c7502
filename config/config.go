/*
Copyright 2025 Reqgen Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the generator settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v9"
)

// ErrInvalidBounds is wrapped by every bounds validation error.
var ErrInvalidBounds = errors.New("invalid generator bounds")

// Output formats of the command line tool.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all configuration of the generator.
type Config struct {
	Output OutputConfig
	Bounds Bounds
}

// OutputConfig holds the settings of a generation run.
type OutputConfig struct {
	Seed   uint64 `env:"REQGEN_SEED" envDefault:"0"`
	Count  int    `env:"REQGEN_COUNT" envDefault:"10"`
	Format string `env:"REQGEN_FORMAT" envDefault:"json"`
}

// Bounds limits the size of generated request targets.
type Bounds struct {
	// MaxLabelCount is the largest number of labels in a domain.
	MaxLabelCount int `env:"REQGEN_MAX_LABEL_COUNT" envDefault:"20"`
	// MaxSegments is the largest number of segments after the first one in a path.
	MaxSegments int `env:"REQGEN_MAX_SEGMENTS" envDefault:"50"`
	// MinQueries and MaxQueries bound the number of query parameters.
	MinQueries int `env:"REQGEN_MIN_QUERIES" envDefault:"0"`
	MaxQueries int `env:"REQGEN_MAX_QUERIES" envDefault:"20"`
}

// DefaultBounds returns the bounds used when nothing is configured.
func DefaultBounds() Bounds {
	return Bounds{MaxLabelCount: 20, MaxSegments: 50, MinQueries: 0, MaxQueries: 20}
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(&cfg.Output); err != nil {
		return nil, fmt.Errorf("parsing output config: %w", err)
	}
	if err := env.Parse(&cfg.Bounds); err != nil {
		return nil, fmt.Errorf("parsing bounds config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Output.Count < 0 {
		return fmt.Errorf("REQGEN_COUNT must not be negative, got %d", c.Output.Count)
	}
	if c.Output.Format != FormatJSON && c.Output.Format != FormatYAML {
		return fmt.Errorf("REQGEN_FORMAT must be %q or %q, got %q", FormatJSON, FormatYAML, c.Output.Format)
	}
	return c.Bounds.Validate()
}

// Validate checks that every bound can be satisfied. A zero bound where a
// count of at least one is required is an error, not an empty result.
func (b Bounds) Validate() error {
	switch {
	case b.MaxLabelCount <= 0:
		return fmt.Errorf("%w: max label count must be positive, got %d", ErrInvalidBounds, b.MaxLabelCount)
	case b.MaxSegments <= 0:
		return fmt.Errorf("%w: max segments must be positive, got %d", ErrInvalidBounds, b.MaxSegments)
	case b.MinQueries < 0:
		return fmt.Errorf("%w: min queries must not be negative, got %d", ErrInvalidBounds, b.MinQueries)
	case b.MaxQueries < b.MinQueries:
		return fmt.Errorf("%w: max queries %d is below min queries %d", ErrInvalidBounds, b.MaxQueries, b.MinQueries)
	}
	return nil
}
