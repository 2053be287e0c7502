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

package random

import (
	"fmt"
	mrand "math/rand"

	"github.com/google/gofuzz/bytesource"
)

// Bytes is a Source whose choices are read from a byte slice. Once the bytes
// are exhausted it falls back to a stream seeded from them, so every input
// yields a complete value. It turns fuzzer input into generator choices.
type Bytes struct {
	rng *mrand.Rand
}

// FromBytes returns a Source that draws its choices from data.
func FromBytes(data []byte) *Bytes {
	return &Bytes{rng: mrand.New(bytesource.New(data))}
}

// IntN implements Source.
func (b *Bytes) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: IntN called with non-positive bound %d", n))
	}
	return b.rng.Intn(n)
}
