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

	"github.com/jplu/reqgen/random"
)

// Version is an HTTP version.
type Version int

const (
	// HTTP10 is "HTTP/1.0".
	HTTP10 Version = iota
	// HTTP11 is "HTTP/1.1".
	HTTP11
	// HTTP2 is "HTTP/2".
	HTTP2
	// HTTP3 is "HTTP/3".
	HTTP3
)

var versionNames = [...]string{
	HTTP10: "HTTP/1.0",
	HTTP11: "HTTP/1.1",
	HTTP2:  "HTTP/2",
	HTTP3:  "HTTP/3",
}

// String returns the protocol version text, such as "HTTP/1.1".
func (v Version) String() string {
	if v < 0 || int(v) >= len(versionNames) {
		return fmt.Sprintf("Version(%d)", int(v))
	}
	return versionNames[v]
}

// RandomVersion returns one of the four versions.
func RandomVersion(src random.Source) Version {
	return Version(src.IntN(len(versionNames)))
}
