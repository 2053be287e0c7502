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
	"pgregory.net/rapid"

	"github.com/jplu/reqgen/random"
)

// Sample pairs a generated value with its canonical text.
type Sample[T any] struct {
	Value T
	Text  string
}

func sampled[T any](gen func(random.Source) (T, string)) *rapid.Generator[Sample[T]] {
	return random.Generator(func(src random.Source) Sample[T] {
		v, text := gen(src)
		return Sample[T]{Value: v, Text: text}
	})
}

// Hosts returns a rapid generator of hosts.
func Hosts(maxLabels int) *rapid.Generator[Sample[Host]] {
	return sampled(func(src random.Source) (Host, string) {
		return GenerateHost(src, maxLabels)
	})
}

// IPv6Addrs returns a rapid generator of IPv6 addresses in every layout.
func IPv6Addrs() *rapid.Generator[Sample[IPv6]] {
	return sampled(GenerateIPv6)
}

// AbsolutePaths returns a rapid generator of absolute paths.
func AbsolutePaths(maxSegments int) *rapid.Generator[Sample[Path]] {
	return sampled(func(src random.Source) (Path, string) {
		return PathAbsolute(src, maxSegments)
	})
}

// Queries returns a rapid generator of queries.
func Queries(minParams, maxParams int) *rapid.Generator[Sample[[]Param]] {
	return sampled(func(src random.Source) ([]Param, string) {
		return Query(src, minParams, maxParams)
	})
}

// Authorities returns a rapid generator of authorities.
func Authorities(maxLabels int) *rapid.Generator[Sample[Authority]] {
	return sampled(func(src random.Source) (Authority, string) {
		return GenerateAuthority(src, maxLabels)
	})
}
