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

// Command reqgen writes random HTTP request lines, one record per line, for
// feeding parsers and servers under test.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/jplu/reqgen/config"
	"github.com/jplu/reqgen/random"
	"github.com/jplu/reqgen/reqline"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// record is one generated request line as written to the output.
type record struct {
	ID         string `json:"id" yaml:"id"`
	Index      int    `json:"index" yaml:"index"`
	Form       string `json:"form" yaml:"form"`
	Verb       string `json:"verb" yaml:"verb"`
	Method     string `json:"method" yaml:"method"`
	MethodKind string `json:"method_kind" yaml:"method_kind"`
	Version    string `json:"version" yaml:"version"`
	Line       string `json:"line" yaml:"line"`
}

type encoder interface {
	Encode(v any) error
}

// Run parses args on top of the environment configuration and writes the
// requested number of records to stdout. Logs go to stderr. It stops between
// records when ctx is done.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("reqgen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Uint64Var(&cfg.Output.Seed, "seed", cfg.Output.Seed, "Seed of the random source")
	flags.IntVar(&cfg.Output.Count, "count", cfg.Output.Count, "Number of request lines to generate")
	flags.StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "Output format: json or yaml")
	flags.IntVar(&cfg.Bounds.MaxLabelCount, "max-labels", cfg.Bounds.MaxLabelCount, "Maximum number of labels in a domain")
	flags.IntVar(&cfg.Bounds.MaxSegments, "max-segments", cfg.Bounds.MaxSegments, "Maximum number of extra path segments")
	flags.IntVar(&cfg.Bounds.MinQueries, "min-queries", cfg.Bounds.MinQueries, "Minimum number of query parameters")
	flags.IntVar(&cfg.Bounds.MaxQueries, "max-queries", cfg.Bounds.MaxQueries, "Maximum number of query parameters")
	debug := flags.Bool("debug", false, "Enable debug logging")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(stderr, *debug)
	defer logger.Sync() //nolint:errcheck

	src := random.New(cfg.Output.Seed)
	gen, err := reqline.NewGenerator(src, cfg.Bounds)
	if err != nil {
		return err
	}

	var enc encoder
	switch cfg.Output.Format {
	case config.FormatYAML:
		y := yaml.NewEncoder(stdout)
		defer y.Close()
		enc = y
	default:
		enc = json.NewEncoder(stdout)
	}

	logger.Info("generating request lines",
		zap.Uint64("seed", cfg.Output.Seed),
		zap.Int("count", cfg.Output.Count),
		zap.String("format", cfg.Output.Format),
		zap.Int("max_labels", cfg.Bounds.MaxLabelCount),
		zap.Int("max_segments", cfg.Bounds.MaxSegments),
		zap.Int("min_queries", cfg.Bounds.MinQueries),
		zap.Int("max_queries", cfg.Bounds.MaxQueries),
	)

	for i := range cfg.Output.Count {
		if err := ctx.Err(); err != nil {
			logger.Warn("generation interrupted", zap.Int("written", i), zap.Error(err))
			return err
		}

		l, text := gen.Next()
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return fmt.Errorf("drawing record id: %w", err)
		}

		rec := record{
			ID:         id.String(),
			Index:      i,
			Form:       l.Target.Form.String(),
			Verb:       l.Verb.String(),
			Method:     l.Method,
			MethodKind: l.MethodKind.String(),
			Version:    l.Version.String(),
			Line:       text,
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
		logger.Debug("generated request line", zap.Int("index", i), zap.String("form", rec.Form), zap.Int("length", len(text)))
	}

	logger.Info("generation finished", zap.Int("written", cfg.Output.Count))
	return nil
}

func newLogger(w io.Writer, debug bool) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
