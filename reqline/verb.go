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

// Package reqline assembles HTTP/1.x request lines from generated request
// targets: method SP request-target SP HTTP-version.
package reqline

import (
	"fmt"
	"strings"

	"github.com/jplu/reqgen/random"
)

// Verb is a standard HTTP method.
type Verb int

// Standard methods, RFC 9110 Section 9 and RFC 5789.
const (
	// Get is "GET".
	Get Verb = iota
	// Head is "HEAD".
	Head
	// Post is "POST".
	Post
	// Put is "PUT".
	Put
	// Delete is "DELETE".
	Delete
	// Connect is "CONNECT"; it takes an authority-form target.
	Connect
	// Options is "OPTIONS"; it may take the asterisk-form target.
	Options
	// Trace is "TRACE".
	Trace
	// Patch is "PATCH".
	Patch
)

var verbNames = [...]string{
	Get:     "GET",
	Head:    "HEAD",
	Post:    "POST",
	Put:     "PUT",
	Delete:  "DELETE",
	Connect: "CONNECT",
	Options: "OPTIONS",
	Trace:   "TRACE",
	Patch:   "PATCH",
}

// String returns the method token, such as "GET".
func (v Verb) String() string {
	if v < 0 || int(v) >= len(verbNames) {
		return fmt.Sprintf("Verb(%d)", int(v))
	}
	return verbNames[v]
}

// ParseVerb returns the verb whose name is exactly s.
func ParseVerb(s string) (Verb, bool) {
	for v, name := range verbNames {
		if name == s {
			return Verb(v), true
		}
	}
	return 0, false
}

// RandomVerb returns one of the nine standard verbs.
func RandomVerb(src random.Source) Verb {
	return Verb(src.IntN(len(verbNames)))
}

// WrongCaseVerb writes v with at least one letter lower-cased.
func WrongCaseVerb(src random.Source, v Verb) string {
	name := []byte(v.String())
	forced := src.IntN(len(name))
	for i := range name {
		if i == forced || random.Bool(src) {
			name[i] += 'a' - 'A'
		}
	}
	return string(name)
}

// tchars are the characters of an RFC 9110 token.
const tchars = "!#$%&'*+-.^_`|~0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const maxInvalidVerbLen = 16

// InvalidVerb returns a token that is not one of the standard verbs. It is a
// well-formed method for the request line grammar, so only a server that
// checks the method against the ones it knows rejects it.
func InvalidVerb(src random.Source) string {
	var b strings.Builder
	n := random.IntRange(src, 1, maxInvalidVerbLen)
	for range n {
		b.WriteByte(tchars[src.IntN(len(tchars))])
	}

	token := b.String()
	if _, ok := ParseVerb(token); ok {
		token += "_"
	}
	return token
}
