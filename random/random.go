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

// Package random provides the single randomness abstraction threaded through
// every generator in this module.
//
// Two sources are available: New returns a seeded, deterministic source for
// standalone generation, and FromRapid adapts a *rapid.T so that generators
// can be driven (and shrunk) by property-based tests.
package random

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"pgregory.net/rapid"
)

// Source is the random choice primitive consumed by all generators.
type Source interface {
	// IntN returns a uniformly distributed integer in [0, n).
	// It panics if n <= 0.
	IntN(n int) int
}

// Seeded is a deterministic Source backed by a ChaCha8 stream. The same seed
// always produces the same sequence of draws.
type Seeded struct {
	stream *rand.ChaCha8
	rng    *rand.Rand
}

// New returns a Seeded source for the given seed.
func New(seed uint64) *Seeded {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	stream := rand.NewChaCha8(key)
	return &Seeded{stream: stream, rng: rand.New(stream)}
}

// IntN implements Source.
func (s *Seeded) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: IntN called with non-positive bound %d", n))
	}
	return s.rng.IntN(n)
}

// Read fills p with bytes from the underlying stream. It lets a Seeded source
// feed APIs that take an io.Reader while staying reproducible.
func (s *Seeded) Read(p []byte) (int, error) {
	return s.stream.Read(p)
}

// rapidSource draws every choice through rapid so that failing cases shrink.
type rapidSource struct {
	t *rapid.T
}

// FromRapid adapts a *rapid.T into a Source.
func FromRapid(t *rapid.T) Source {
	return rapidSource{t: t}
}

// IntN implements Source.
func (s rapidSource) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: IntN called with non-positive bound %d", n))
	}
	return rapid.IntRange(0, n-1).Draw(s.t, "choice")
}

// Generator lifts a Source-driven generation function into a rapid generator.
func Generator[T any](gen func(Source) T) *rapid.Generator[T] {
	return rapid.Custom(func(t *rapid.T) T {
		return gen(FromRapid(t))
	})
}
