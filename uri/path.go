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

package uri

import (
	"fmt"
	"strings"

	"github.com/jplu/reqgen/random"
)

// Path is a generated path.
type Path struct {
	// Segments are the raw segments, in percent-encoded form.
	Segments []string
	// Absolute is set when the text starts with "/".
	Absolute bool
	// Normalized is the path with dot segments removed.
	Normalized string
}

// PathRootless generates a non-empty first segment followed by up to
// maxSegments further segments, any of which may be empty.
// It panics if maxSegments is zero or negative.
func PathRootless(src random.Source, maxSegments int) (Path, string) {
	if maxSegments <= 0 {
		panic(fmt.Sprintf("uri: max segment count must be positive, got %d", maxSegments))
	}

	segments := []string{segmentClass.Text(src, 1, maxSegmentLen)}
	segments = append(segments, random.Repeat(src, 0, maxSegments, func(src random.Source) string {
		return segmentClass.Text(src, 0, maxSegmentLen)
	})...)

	return Path{Segments: segments, Normalized: Normalize(segments)}, strings.Join(segments, "/")
}

// PathAbsolute generates "/" followed, half of the time, by a rootless path.
// It panics if maxSegments is zero or negative.
func PathAbsolute(src random.Source, maxSegments int) (Path, string) {
	if maxSegments <= 0 {
		panic(fmt.Sprintf("uri: max segment count must be positive, got %d", maxSegments))
	}

	rootless, text, ok := optionalRootless(src, maxSegments)
	if !ok {
		return Path{Absolute: true, Normalized: "/"}, "/"
	}

	stack := normalize(rootless.Segments)
	return Path{
		Segments:   rootless.Segments,
		Absolute:   true,
		Normalized: "/" + strings.Join(stack, "/"),
	}, "/" + text
}

func optionalRootless(src random.Source, maxSegments int) (Path, string, bool) {
	if !random.Bool(src) {
		return Path{}, "", false
	}
	p, text := PathRootless(src, maxSegments)
	return p, text, true
}

// Normalize removes dot segments from a segment list and joins the result
// with "/". An empty result is written as "/".
//
// The first segment is kept unless it is "." or "..". After it, "." is
// dropped, or becomes an empty segment when it is the last one, and ".."
// drops the previous kept segment if there is one. Other segments are kept
// verbatim: percent-encoded dots are not dot segments.
func Normalize(segments []string) string {
	stack := normalize(segments)
	if len(stack) == 0 {
		return "/"
	}
	return strings.Join(stack, "/")
}

// NormalizeText is Normalize for "/"-separated path text.
func NormalizeText(path string) string {
	return Normalize(strings.Split(path, "/"))
}

func normalize(segments []string) []string {
	stack := make([]string, 0, len(segments))
	for i, segment := range segments {
		switch {
		case i == 0:
			if segment != "." && segment != ".." {
				stack = append(stack, segment)
			}
		case segment == ".":
			if i == len(segments)-1 {
				stack = append(stack, "")
			}
		case segment == "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, segment)
		}
	}
	return stack
}
