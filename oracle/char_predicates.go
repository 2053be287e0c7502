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

// Package oracle is an independent reference reader for the text produced by
// the generators of this module. Tests hand it generated text and compare what
// it extracts against the structured value that was generated alongside.
//
// It only accepts the subset of RFC 3986 that the generators emit: absolute
// URLs with an authority, origin-form targets, authority-form targets and
// request lines. It is deliberately written without reference to the
// generator packages.
package oracle

import "strings"

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isASCIIHexDigit checks if a rune is an ASCII hexadecimal digit.
func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// isUnreserved checks if a character is in the unreserved set of RFC 3986.
func isUnreserved(c rune) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// isSubDelim checks if a character is in the sub-delims set of RFC 3986.
func isSubDelim(c rune) bool {
	return strings.ContainsRune("!$&'()*+,;=", c)
}

// isUserinfoChar checks the characters allowed verbatim in userinfo.
func isUserinfoChar(c rune) bool {
	return isUnreserved(c) || isSubDelim(c) || c == ':'
}

// isPchar checks the characters allowed verbatim in a path segment.
func isPchar(c rune) bool {
	return isUnreserved(c) || isSubDelim(c) || c == ':' || c == '@'
}

// isQueryOrFragmentChar checks the characters allowed verbatim in a query or a fragment.
func isQueryOrFragmentChar(c rune) bool {
	return isPchar(c) || c == '/' || c == '?'
}

// isSchemeChar checks the characters allowed after the first letter of a scheme.
func isSchemeChar(c rune) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '+' || c == '-' || c == '.'
}

// isTchar checks the token characters of RFC 9110, Section 5.6.2.
func isTchar(c rune) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || strings.ContainsRune("!#$%&'*+-.^_`|~", c)
}
