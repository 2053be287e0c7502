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

package reqline

import (
	"fmt"

	"pgregory.net/rapid"

	"github.com/jplu/reqgen/config"
	"github.com/jplu/reqgen/random"
	"github.com/jplu/reqgen/uri"
)

// MethodKind tells how the method of a request line was written.
type MethodKind int

const (
	// ValidMethod is a standard verb in upper case.
	ValidMethod MethodKind = iota
	// WrongCaseMethod is a standard verb with some letters lower-cased.
	WrongCaseMethod
	// InvalidMethod is a token that is not a standard verb.
	InvalidMethod
)

var methodKindNames = [...]string{
	ValidMethod:     "valid",
	WrongCaseMethod: "wrong-case",
	InvalidMethod:   "invalid",
}

// String returns the kind name.
func (k MethodKind) String() string {
	if k < 0 || int(k) >= len(methodKindNames) {
		return fmt.Sprintf("MethodKind(%d)", int(k))
	}
	return methodKindNames[k]
}

// Weights of the method kinds in generated request lines.
const (
	validMethodWeight     = 90
	wrongCaseMethodWeight = 5
	invalidMethodWeight   = 5
)

// RequestLine is a generated request line.
type RequestLine struct {
	// Verb is the verb the target was chosen for. Method is the text sent
	// on the wire, which only equals Verb.String() for ValidMethod.
	Verb       Verb
	Method     string
	MethodKind MethodKind
	Target     Target
	Version    Version
}

type method struct {
	kind MethodKind
	text string
}

// Line generates a request line. The target form follows the verb: CONNECT
// uses the authority form, OPTIONS may use the asterisk form, and the other
// verbs use the origin or absolute form.
// It panics if b is not valid.
func Line(src random.Source, b config.Bounds) (RequestLine, string) {
	l := RequestLine{Verb: RandomVerb(src)}

	m := random.OneOf(src,
		random.Choice[method]{Weight: validMethodWeight, Gen: func(random.Source) method {
			return method{kind: ValidMethod, text: l.Verb.String()}
		}},
		random.Choice[method]{Weight: wrongCaseMethodWeight, Gen: func(src random.Source) method {
			return method{kind: WrongCaseMethod, text: WrongCaseVerb(src, l.Verb)}
		}},
		random.Choice[method]{Weight: invalidMethodWeight, Gen: func(src random.Source) method {
			return method{kind: InvalidMethod, text: InvalidVerb(src)}
		}},
	)
	l.Method, l.MethodKind = m.text, m.kind

	var target string
	l.Target, target = targetFor(src, l.Verb, b)
	l.Version = RandomVersion(src)

	return l, l.Method + " " + target + " " + l.Version.String()
}

type targetGen func(random.Source, config.Bounds) (Target, string)

var (
	connectTargets = []targetGen{Authority}
	optionsTargets = []targetGen{Origin, Absolute, Asterisk}
	defaultTargets = []targetGen{Origin, Absolute}
)

func targetFor(src random.Source, v Verb, b config.Bounds) (Target, string) {
	gens := defaultTargets
	switch v {
	case Connect:
		gens = connectTargets
	case Options:
		gens = optionsTargets
	}
	return random.Pick(src, gens)(src, b)
}

// Generator produces request lines from one Source within fixed bounds.
// It is not safe for concurrent use.
type Generator struct {
	src    random.Source
	bounds config.Bounds
}

// NewGenerator returns a Generator, or an error if the bounds are invalid.
func NewGenerator(src random.Source, b config.Bounds) (*Generator, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("creating generator: %w", err)
	}
	return &Generator{src: src, bounds: b}, nil
}

// Next returns the next request line and its text.
func (g *Generator) Next() (RequestLine, string) {
	return Line(g.src, g.bounds)
}

// Bounds returns the bounds of the generator.
func (g *Generator) Bounds() config.Bounds {
	return g.bounds
}

// Lines returns a rapid generator of request lines.
// It panics if b is not valid.
func Lines(b config.Bounds) *rapid.Generator[uri.Sample[RequestLine]] {
	if err := b.Validate(); err != nil {
		panic(err)
	}
	return random.Generator(func(src random.Source) uri.Sample[RequestLine] {
		l, text := Line(src, b)
		return uri.Sample[RequestLine]{Value: l, Text: text}
	})
}
