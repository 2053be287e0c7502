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

//nolint:testpackage // White-box tests share the scripted source helper.
package reqline

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jplu/reqgen/config"
	"github.com/jplu/reqgen/oracle"
	"github.com/jplu/reqgen/random"
)

// scripted is a Source that replays a fixed list of draws.
type scripted struct {
	draws []int
}

func (s *scripted) IntN(n int) int {
	if len(s.draws) == 0 {
		panic("scripted source exhausted")
	}
	d := s.draws[0]
	s.draws = s.draws[1:]
	if d < 0 || d >= n {
		panic(fmt.Sprintf("scripted draw %d out of range [0, %d)", d, n))
	}
	return d
}

func TestLines(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := Lines(smallBounds()).Draw(t, "line")
		l := s.Value

		method, target, version, err := oracle.ParseRequestLine(s.Text)
		require.NoError(t, err, s.Text)
		require.Equal(t, l.Method, method)
		require.Equal(t, l.Version.String(), version)
		require.Equal(t, l.Method+" "+target+" "+version, s.Text)

		switch l.MethodKind {
		case ValidMethod:
			require.Equal(t, l.Verb.String(), l.Method)
		case WrongCaseMethod:
			require.True(t, strings.EqualFold(l.Verb.String(), l.Method))
			require.NotEqual(t, l.Verb.String(), l.Method)
		case InvalidMethod:
			_, ok := ParseVerb(l.Method)
			require.False(t, ok)
		default:
			t.Fatalf("unexpected method kind %v", l.MethodKind)
		}

		switch l.Verb {
		case Connect:
			require.Equal(t, AuthorityForm, l.Target.Form)
		case Options:
			require.NotEqual(t, AuthorityForm, l.Target.Form)
		default:
			require.Contains(t, []Form{OriginForm, AbsoluteForm}, l.Target.Form)
		}
	})
}

func TestLinesPanicsOnInvalidBounds(t *testing.T) {
	require.Panics(t, func() { Lines(config.Bounds{}) })
}

func TestLineConcrete(t *testing.T) {
	// OPTIONS, valid method, asterisk form, HTTP/2.
	src := &scripted{draws: []int{int(Options), 0, 2, int(HTTP2)}}
	l, text := Line(src, smallBounds())

	assert.Equal(t, "OPTIONS * HTTP/2", text)
	assert.Equal(t, ValidMethod, l.MethodKind)
	assert.Equal(t, AsteriskForm, l.Target.Form)
}

func TestNewGenerator(t *testing.T) {
	_, err := NewGenerator(random.New(1), config.Bounds{MaxLabelCount: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidBounds))

	g, err := NewGenerator(random.New(1), config.DefaultBounds())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBounds(), g.Bounds())
}

func TestGeneratorIsDeterministic(t *testing.T) {
	a, err := NewGenerator(random.New(7), smallBounds())
	require.NoError(t, err)
	b, err := NewGenerator(random.New(7), smallBounds())
	require.NoError(t, err)

	for range 100 {
		_, x := a.Next()
		_, y := b.Next()
		require.Equal(t, x, y)
	}
}

func TestMethodKindString(t *testing.T) {
	assert.Equal(t, "wrong-case", WrongCaseMethod.String())
	assert.Equal(t, "MethodKind(3)", MethodKind(3).String())
}

func FuzzLine(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("GET / HTTP/1.1"))
	f.Add([]byte{0xff, 0x00, 0x7f, 0x80, 0x01})

	f.Fuzz(func(t *testing.T, data []byte) {
		l, text := Line(random.FromBytes(data), smallBounds())

		method, _, version, err := oracle.ParseRequestLine(text)
		if err != nil {
			t.Fatalf("ParseRequestLine(%q): %v", text, err)
		}
		if method != l.Method || version != l.Version.String() {
			t.Fatalf("ParseRequestLine(%q) = (%q, %q); want (%q, %q)", text, method, version, l.Method, l.Version)
		}
	})
}
