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
	"errors"
	"fmt"
)

var (
	// errNoAuthority is returned when an absolute URL lacks the "//" authority marker.
	errNoAuthority = &kindError{message: "No authority found in an absolute URL"}
	// errEmptyHost is returned when the authority has no host.
	errEmptyHost = &kindError{message: "Empty host"}
)

// ParseError is the error type returned by the parsing functions of this package.
type ParseError struct {
	Message string
	Input   string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("reference parse error: %s in %q", e.Message, e.Input)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError wraps err for input. It returns nil if err is nil.
func newParseError(input string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Message: err.Error(), Input: input, Err: errors.Unwrap(err)}
}

// kindError carries the detail of a single parsing failure.
type kindError struct {
	message string
	char    rune
	details string
	err     error
}

// Error formats the message with the offending character or details.
func (e *kindError) Error() string {
	msg := e.message
	if e.char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.details)
	}
	if e.err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.err)
	}
	return msg
}

// Unwrap returns the underlying library error, if any.
func (e *kindError) Unwrap() error {
	return e.err
}
