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

import "strings"

// RemoveDotSegments implements the "Remove Dot Segments" algorithm of
// RFC 3986, Section 5.2.4, on already percent-encoded path text.
func RemoveDotSegments(path string) string {
	var output []string
	in := path

	for in != "" {
		switch {
		// 2A: drop a leading "../" or "./".
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		// 2B: replace a leading "/./" or a complete "/." by "/".
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		// 2C: replace a leading "/../" or a complete "/.." by "/" and drop the
		// last output segment.
		case strings.HasPrefix(in, "/../"), in == "/..":
			if in == "/.." {
				in = "/"
			} else {
				in = in[3:]
			}
			if n := len(output); n > 0 {
				last := output[n-1]
				output = output[:n-1]
				if len(output) == 0 && !strings.HasPrefix(last, "/") {
					in = strings.TrimPrefix(in, "/")
				}
			}
		// 2D: a lone "." or "..".
		case in == "." || in == "..":
			in = ""
		// 2E: move the first segment, with its leading "/" if any, to the output.
		default:
			var segment string
			segment, in = firstSegment(in)
			output = append(output, segment)
		}
	}

	return strings.Join(output, "")
}

// firstSegment splits in after its first path segment. A leading "/" belongs
// to the segment.
func firstSegment(in string) (string, string) {
	start := 0
	if strings.HasPrefix(in, "/") {
		start = 1
	}
	end := strings.IndexByte(in[start:], '/')
	if end == -1 {
		return in, ""
	}
	return in[:start+end], in[start+end:]
}
