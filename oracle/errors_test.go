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

//nolint:testpackage // White-box tests need access to unexported helpers.
package oracle

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestParseErrorFormatting(t *testing.T) {
	_, err := ParsePort("65536")
	if err == nil {
		t.Fatal("ParsePort(\"65536\") returned no error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	if parseErr.Input != "65536" {
		t.Errorf("Input = %q; want %q", parseErr.Input, "65536")
	}
	if !strings.HasPrefix(parseErr.Message, "Invalid port '65536'") {
		t.Errorf("Message = %q; want prefix %q", parseErr.Message, "Invalid port '65536'")
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("errors.Is(%v, strconv.ErrRange) = false; want true", err)
	}
	if !strings.Contains(err.Error(), `in "65536"`) {
		t.Errorf("Error() = %q; want the input quoted", err.Error())
	}
}

func TestKindErrorFormatting(t *testing.T) {
	testCases := []struct {
		name     string
		err      *kindError
		expected string
	}{
		{"Message only", &kindError{message: "Empty host"}, "Empty host"},
		{"With char", &kindError{message: "Invalid character", char: ' '}, "Invalid character ' '"},
		{"With details", &kindError{message: "Invalid domain", details: "a-.com"}, "Invalid domain 'a-.com'"},
		{
			"With wrapped error",
			&kindError{message: "Invalid port", details: "x", err: strconv.ErrSyntax},
			"Invalid port 'x': invalid syntax",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.expected {
				t.Errorf("Error() = %q; want %q", got, tc.expected)
			}
		})
	}
}

func TestNewParseErrorNil(t *testing.T) {
	if err := newParseError("x", nil); err != nil {
		t.Errorf("newParseError(nil) = %v; want nil", err)
	}
}
