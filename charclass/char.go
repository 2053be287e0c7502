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
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind tags the variant of a generated character.
type Kind uint8

const (
	// Normal is a character emitted verbatim.
	Normal Kind = iota
	// PercentEncoded is a character emitted as "%xx" groups, one per UTF-8 byte.
	PercentEncoded
)

// String returns the name of the variant.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case PercentEncoded:
		return "percent-encoded"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Char is a generated character. For PercentEncoded characters Escaped holds
// the escape sequence of Rune.
type Char struct {
	Kind    Kind
	Rune    rune
	Escaped string
}

// String renders the character as it appears in URI text.
func (c Char) String() string {
	switch c.Kind {
	case PercentEncoded:
		return c.Escaped
	default:
		return string(c.Rune)
	}
}

// PercentEncode encodes r as one "%xx" group per byte of its UTF-8 encoding.
// Hex digits are lowercase.
func PercentEncode(r rune) string {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)

	var b strings.Builder
	b.Grow(3 * n)
	for i := range n {
		fmt.Fprintf(&b, "%%%02x", buf[i])
	}
	return b.String()
}

// Render concatenates the rendered form of chars.
func Render(chars []Char) string {
	var b strings.Builder
	for _, c := range chars {
		switch c.Kind {
		case PercentEncoded:
			b.WriteString(c.Escaped)
		default:
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}
