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

package oracle

import (
	"encoding/hex"
	"unicode/utf8"
)

// DecodePercent decodes every "%XX" group of s. Other bytes are copied as is.
// A "%" that is not followed by two hexadecimal digits is an error.
func DecodePercent(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			out = append(out, s[i])
			continue
		}
		if i+2 >= len(s) || !isASCIIHexDigit(rune(s[i+1])) || !isASCIIHexDigit(rune(s[i+2])) {
			end := min(i+3, len(s))
			return nil, newParseError(s, &kindError{message: "Invalid percent encoding", details: s[i:end]})
		}
		b, _ := hex.DecodeString(s[i+1 : i+3])
		out = append(out, b[0])
		i += 2
	}
	return out, nil
}

// DecodePercentString is DecodePercent for text that must decode to valid UTF-8.
func DecodePercentString(s string) (string, error) {
	b, err := DecodePercent(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", newParseError(s, &kindError{message: "Percent encoding does not decode to UTF-8"})
	}
	return string(b), nil
}

// validateComponent checks that every character of s is either allowed by
// valid or part of a well-formed percent-encoded group.
func validateComponent(s string, valid func(rune) bool) error {
	for i, r := range s {
		if r == '%' {
			if i+2 >= len(s) || !isASCIIHexDigit(rune(s[i+1])) || !isASCIIHexDigit(rune(s[i+2])) {
				end := min(i+3, len(s))
				return &kindError{message: "Invalid percent encoding", details: s[i:end]}
			}
			continue
		}
		if !valid(r) {
			return &kindError{message: "Invalid character", char: r}
		}
	}
	return nil
}
