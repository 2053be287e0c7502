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

package charclass

import (
	"slices"
	"unicode"
)

// Range is an inclusive range of code points. It is never empty.
type Range struct {
	Lo, Hi rune
}

// Contains reports whether r lies in the range.
func (r Range) Contains(c rune) bool {
	return r.Lo <= c && c <= r.Hi
}

// Len returns the number of Unicode scalar values in the range. Surrogate code
// points are not scalar values and are not counted.
func (r Range) Len() int {
	n := int(r.Hi-r.Lo) + 1
	lo, hi := max(r.Lo, surrogateMin), min(r.Hi, surrogateMax)
	if lo <= hi {
		n -= int(hi-lo) + 1
	}
	return n
}

// Nth returns the i-th scalar value of the range, skipping surrogates.
// i must be in [0, r.Len()).
func (r Range) Nth(i int) rune {
	if r.Lo >= surrogateMin && r.Lo <= surrogateMax {
		return surrogateMax + 1 + rune(i)
	}
	c := r.Lo + rune(i)
	if r.Lo < surrogateMin && c >= surrogateMin {
		c += surrogateMax - surrogateMin + 1
	}
	return c
}

// Complement returns the code points of [0, unicode.MaxRune] that are not in
// safe, as sorted, non-overlapping, maximal ranges.
func Complement(safe []rune) []Range {
	chars := slices.Clone(safe)
	slices.Sort(chars)
	chars = slices.Compact(chars)

	if len(chars) == 0 {
		return []Range{{Lo: 0, Hi: unicode.MaxRune}}
	}

	var out []Range
	if first := chars[0]; first > 0 {
		out = append(out, Range{Lo: 0, Hi: first - 1})
	}

	for i := 1; i < len(chars); i++ {
		prev, next := chars[i-1], chars[i]
		if next-prev > 1 {
			out = append(out, Range{Lo: prev + 1, Hi: next - 1})
		}
	}

	if last := chars[len(chars)-1]; last < unicode.MaxRune {
		out = append(out, Range{Lo: last + 1, Hi: unicode.MaxRune})
	}
	return out
}
