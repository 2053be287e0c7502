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

// Package charclass partitions the Unicode scalar-value space into characters
// that a URI grammar allows verbatim and characters that have to be
// percent-encoded, and generates characters from either side.
package charclass

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"

	"github.com/jplu/reqgen/random"
)

// Character sets defined by RFC 3986, Section 2.
const (
	// Unreserved is ALPHA / DIGIT / "-" / "." / "_" / "~".
	Unreserved = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-._~"
	// SubDelims is "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "=".
	SubDelims = "!$&'()*+,;="
	// GenDelims is ":" / "/" / "?" / "#" / "[" / "]" / "@".
	GenDelims = ":/?#[]@"
)

// Weights of the safe and percent-encoded branches of Generate.
const (
	safeWeight   = 98
	unsafeWeight = 2
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// RuneError reports a rune that is not a Unicode scalar value and therefore
// cannot be part of a safe set.
type RuneError struct {
	Rune rune
}

// Error implements the error interface.
func (e *RuneError) Error() string {
	return fmt.Sprintf("charclass: %#x is not a Unicode scalar value", e.Rune)
}

// unsafeSet is the lazily computed side of a Class.
type unsafeSet struct {
	ranges []Range
	// drawable holds the ranges that contain at least one scalar value.
	drawable []Range
}

// Class is a safe character set together with its complement over the
// scalar-value space. The complement is computed on first use and is
// read-only afterwards, so a Class may be shared between goroutines.
type Class struct {
	safe   []rune
	table  *unicode.RangeTable
	unsafe func() unsafeSet

	substitute bool
	from, to   rune
}

// New builds a Class from a safe set. Duplicates are allowed; surrogates and
// runes outside [0, unicode.MaxRune] are rejected.
func New(safe ...rune) (*Class, error) {
	for _, r := range safe {
		if !utf8.ValidRune(r) {
			return nil, &RuneError{Rune: r}
		}
	}

	sorted := slices.Clone(safe)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	c := &Class{
		safe:  sorted,
		table: rangetable.New(slices.Clone(sorted)...),
	}
	c.unsafe = sync.OnceValue(func() unsafeSet {
		ranges := Complement(c.safe)
		drawable := make([]Range, 0, len(ranges))
		for _, r := range ranges {
			if r.Len() > 0 {
				drawable = append(drawable, r)
			}
		}
		return unsafeSet{ranges: ranges, drawable: drawable}
	})
	return c, nil
}

// MustNew is like New but panics if the safe set is invalid. It is meant for
// classes built from constant character sets.
func MustNew(safe ...rune) *Class {
	c, err := New(safe...)
	if err != nil {
		panic(err)
	}
	return c
}

// Of builds a Class from the union of the characters of the given strings.
func Of(sets ...string) *Class {
	return MustNew([]rune(strings.Join(sets, ""))...)
}

// WithSubstitute returns a copy of c that renders every safe occurrence of
// from as to. The partition itself is unchanged: from stays on the safe side
// and is never percent-encoded. It panics if from is not in the safe set.
func (c *Class) WithSubstitute(from, to rune) *Class {
	if !c.Contains(from) {
		panic(fmt.Sprintf("charclass: substituted rune %q is not in the safe set", from))
	}
	cp := *c
	cp.substitute = true
	cp.from, cp.to = from, to
	return &cp
}

// Safe returns the sorted, deduplicated safe set.
func (c *Class) Safe() []rune {
	return slices.Clone(c.safe)
}

// Unsafe returns the sorted, maximal ranges of code points that are not in
// the safe set.
func (c *Class) Unsafe() []Range {
	return slices.Clone(c.unsafe().ranges)
}

// Contains reports whether r is in the safe set.
func (c *Class) Contains(r rune) bool {
	return unicode.Is(c.table, r)
}

// Generate draws one character: a safe character rendered as is, or, less
// often, an unsafe one rendered as its percent-encoded UTF-8 bytes.
func (c *Class) Generate(src random.Source) Char {
	u := c.unsafe()

	sw, uw := safeWeight, unsafeWeight
	if len(c.safe) == 0 {
		sw = 0
	}
	if len(u.drawable) == 0 {
		uw = 0
	}

	ch := random.OneOf(src,
		random.Choice[Char]{Weight: sw, Gen: c.safeChar},
		random.Choice[Char]{Weight: uw, Gen: func(src random.Source) Char {
			return encodedChar(src, u.drawable)
		}},
	)

	if c.substitute && ch.Kind == Normal && ch.Rune == c.from {
		ch.Rune = c.to
	}
	return ch
}

// Text generates between minLen and maxLen characters (inclusive) and returns
// their rendered concatenation.
func (c *Class) Text(src random.Source, minLen, maxLen int) string {
	return Render(random.Repeat(src, minLen, maxLen, c.Generate))
}

func (c *Class) safeChar(src random.Source) Char {
	return Char{Kind: Normal, Rune: random.Pick(src, c.safe)}
}

func encodedChar(src random.Source, ranges []Range) Char {
	r := random.Pick(src, ranges)
	ru := r.Nth(src.IntN(r.Len()))
	return Char{Kind: PercentEncoded, Rune: ru, Escaped: PercentEncode(ru)}
}
