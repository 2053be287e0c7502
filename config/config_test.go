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

package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultBounds(), cfg.Bounds)
	assert.Equal(t, OutputConfig{Seed: 0, Count: 10, Format: FormatJSON}, cfg.Output)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("REQGEN_SEED", "42")
	t.Setenv("REQGEN_COUNT", "3")
	t.Setenv("REQGEN_FORMAT", "yaml")
	t.Setenv("REQGEN_MAX_LABEL_COUNT", "4")
	t.Setenv("REQGEN_MAX_SEGMENTS", "5")
	t.Setenv("REQGEN_MIN_QUERIES", "1")
	t.Setenv("REQGEN_MAX_QUERIES", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, OutputConfig{Seed: 42, Count: 3, Format: FormatYAML}, cfg.Output)
	assert.Equal(t, Bounds{MaxLabelCount: 4, MaxSegments: 5, MinQueries: 1, MaxQueries: 2}, cfg.Bounds)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("REQGEN_MAX_SEGMENTS", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing bounds config")
}

func TestBoundsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Bounds)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Bounds) {}},
		{name: "zero labels", mutate: func(b *Bounds) { b.MaxLabelCount = 0 }, wantErr: true},
		{name: "zero segments", mutate: func(b *Bounds) { b.MaxSegments = 0 }, wantErr: true},
		{name: "negative min queries", mutate: func(b *Bounds) { b.MinQueries = -1 }, wantErr: true},
		{name: "inverted query range", mutate: func(b *Bounds) { b.MinQueries, b.MaxQueries = 3, 2 }, wantErr: true},
		{name: "empty query range", mutate: func(b *Bounds) { b.MinQueries, b.MaxQueries = 0, 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := DefaultBounds()
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidBounds), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{Output: OutputConfig{Count: 1, Format: "xml"}, Bounds: DefaultBounds()}
	assert.ErrorContains(t, cfg.Validate(), "REQGEN_FORMAT")

	cfg.Output.Format = FormatJSON
	cfg.Output.Count = -1
	assert.ErrorContains(t, cfg.Validate(), "REQGEN_COUNT")

	cfg.Output.Count = 1
	cfg.Bounds.MaxSegments = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidBounds)
}
