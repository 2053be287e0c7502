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

package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jplu/reqgen/config"
	"github.com/jplu/reqgen/oracle"
)

func decodeRecords(t *testing.T, out string) []record {
	t.Helper()
	var records []record
	scanner := bufio.NewScanner(strings.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		var r record
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		records = append(records, r)
	}
	require.NoError(t, scanner.Err())
	return records
}

func TestRun_FlagError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), []string{"-undefined-flag"}, &stdout, &stderr)
	assert.Error(t, err)
}

func TestRun_InvalidBounds(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), []string{"-max-segments", "0"}, &stdout, &stderr)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidBounds))
	assert.Empty(t, stdout.String())
}

func TestRun_WritesJSONLines(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), []string{"-seed", "3", "-count", "25", "-max-labels", "4", "-max-segments", "6"}, &stdout, &stderr)
	require.NoError(t, err)

	records := decodeRecords(t, stdout.String())
	require.Len(t, records, 25)
	for i, r := range records {
		assert.Equal(t, i, r.Index)
		_, err := uuid.Parse(r.ID)
		assert.NoError(t, err)

		method, _, version, err := oracle.ParseRequestLine(r.Line)
		require.NoError(t, err, r.Line)
		assert.Equal(t, r.Method, method)
		assert.Equal(t, r.Version, version)
	}
	assert.Contains(t, stderr.String(), "generation finished")
}

func TestRun_IsDeterministic(t *testing.T) {
	run := func() string {
		var stdout, stderr bytes.Buffer
		require.NoError(t, Run(context.Background(), []string{"-seed", "11", "-count", "10"}, &stdout, &stderr))
		return stdout.String()
	}
	assert.Equal(t, run(), run())
}

func TestRun_EnvironmentAndFlags(t *testing.T) {
	t.Setenv("REQGEN_COUNT", "4")
	t.Setenv("REQGEN_SEED", "5")

	var fromEnv, fromFlag, stderr bytes.Buffer
	require.NoError(t, Run(context.Background(), nil, &fromEnv, &stderr))
	require.NoError(t, Run(context.Background(), []string{"-count", "2"}, &fromFlag, &stderr))

	envRecords := decodeRecords(t, fromEnv.String())
	flagRecords := decodeRecords(t, fromFlag.String())
	require.Len(t, envRecords, 4)
	require.Len(t, flagRecords, 2)
	assert.Equal(t, envRecords[:2], flagRecords)
}

func TestRun_WritesYAML(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, Run(context.Background(), []string{"-seed", "9", "-count", "3", "-format", "yaml"}, &stdout, &stderr))

	dec := yaml.NewDecoder(&stdout)
	n := 0
	for {
		var r record
		if err := dec.Decode(&r); err != nil {
			break
		}
		assert.Equal(t, n, r.Index)
		assert.NotEmpty(t, r.Line)
		n++
	}
	assert.Equal(t, 3, n)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := Run(ctx, []string{"-count", "5"}, &stdout, &stderr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stdout.String())
}

func TestRun_DebugLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, Run(context.Background(), []string{"-count", "1", "-debug"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "generated request line")
}
