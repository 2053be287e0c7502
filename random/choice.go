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

package random

import "fmt"

// IntRange returns a uniformly distributed integer in the inclusive range [lo, hi].
func IntRange(src Source, lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("random: empty range [%d, %d]", lo, hi))
	}
	return lo + src.IntN(hi-lo+1)
}

// Bool returns true or false with equal probability.
func Bool(src Source) bool {
	return src.IntN(2) == 1
}

// Pick returns a uniformly selected element of items.
func Pick[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic("random: Pick from an empty slice")
	}
	return items[src.IntN(len(items))]
}

// Choice is one row of a weighted selection table.
type Choice[T any] struct {
	Weight int
	Gen    func(Source) T
}

// OneOf selects a row of the table with probability proportional to its weight
// and runs its generator. Rows with a zero weight are never selected.
// It panics if no row has a positive weight.
func OneOf[T any](src Source, choices ...Choice[T]) T {
	total := 0
	for _, c := range choices {
		if c.Weight < 0 {
			panic(fmt.Sprintf("random: negative weight %d", c.Weight))
		}
		total += c.Weight
	}
	if total == 0 {
		panic("random: weighted choice with no selectable branch")
	}

	n := src.IntN(total)
	for _, c := range choices {
		if n < c.Weight {
			return c.Gen(src)
		}
		n -= c.Weight
	}
	panic("unreachable")
}

// Uniform builds an equally weighted table from gens and selects one of them.
func Uniform[T any](src Source, gens ...func(Source) T) T {
	choices := make([]Choice[T], len(gens))
	for i, g := range gens {
		choices[i] = Choice[T]{Weight: 1, Gen: g}
	}
	return OneOf(src, choices...)
}

// Optional runs gen half of the time. The boolean reports whether a value was produced.
func Optional[T any](src Source, gen func(Source) T) (T, bool) {
	if Bool(src) {
		return gen(src), true
	}
	var zero T
	return zero, false
}

// Repeat runs gen between lo and hi times (inclusive) and collects the results.
func Repeat[T any](src Source, lo, hi int, gen func(Source) T) []T {
	n := IntRange(src, lo, hi)
	out := make([]T, n)
	for i := range out {
		out[i] = gen(src)
	}
	return out
}
