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
	"encoding/binary"
	"fmt"
	"net/netip"
	"strings"

	"github.com/jplu/reqgen/random"
)

// Layout is the textual layout of an IPv6 address.
type Layout int

const (
	// Uncompressed writes all eight segments.
	Uncompressed Layout = iota
	// CompressedStart elides leading zero segments: "::a:b".
	CompressedStart
	// CompressedMiddle elides inner zero segments: "a::b".
	CompressedMiddle
	// CompressedEnd elides trailing zero segments: "a:b::".
	CompressedEnd
	// MappedV4 is an IPv4-mapped address: "::ffff:a.b.c.d".
	MappedV4
)

var layoutNames = [...]string{
	Uncompressed:     "uncompressed",
	CompressedStart:  "compressed-start",
	CompressedMiddle: "compressed-middle",
	CompressedEnd:    "compressed-end",
	MappedV4:         "mapped-v4",
}

// String returns the layout name.
func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return fmt.Sprintf("Layout(%d)", int(l))
	}
	return layoutNames[l]
}

// IPv6 is a generated IPv6 address.
type IPv6 struct {
	Segments [ipv6SegmentCount]uint16
	Layout   Layout
	// Explicit is the number of 16-bit groups written in the text. For
	// MappedV4 the dotted IPv4 part counts as two groups.
	Explicit int
}

// Addr returns the address as a netip.Addr.
func (a IPv6) Addr() netip.Addr {
	var b [16]byte
	for i, s := range a.Segments {
		binary.BigEndian.PutUint16(b[2*i:], s)
	}
	return netip.AddrFrom16(b)
}

// segments draws n segment values, each written in hexadecimal with a random
// zero-padded width between 1 and 4.
func segments(src random.Source, n int) ([]uint16, []string) {
	values := make([]uint16, n)
	texts := make([]string, n)
	for i := range values {
		values[i] = uint16(src.IntN(1 << 16))
		width := random.IntRange(src, 1, maxIPv6HexWidth)
		texts[i] = fmt.Sprintf("%0*x", width, values[i])
	}
	return values, texts
}

// IPv6Uncompressed generates eight explicit segments.
func IPv6Uncompressed(src random.Source) (IPv6, string) {
	a := IPv6{Layout: Uncompressed, Explicit: ipv6SegmentCount}
	values, texts := segments(src, ipv6SegmentCount)
	copy(a.Segments[:], values)
	return a, strings.Join(texts, ":")
}

// IPv6CompressedStart generates 1 to 7 trailing segments after "::".
func IPv6CompressedStart(src random.Source) (IPv6, string) {
	k := random.IntRange(src, minExplicitSegment, maxExplicitSegment)
	a := IPv6{Layout: CompressedStart, Explicit: k}
	values, texts := segments(src, k)
	copy(a.Segments[ipv6SegmentCount-k:], values)
	return a, "::" + strings.Join(texts, ":")
}

// IPv6CompressedEnd generates 1 to 7 leading segments before "::".
func IPv6CompressedEnd(src random.Source) (IPv6, string) {
	k := random.IntRange(src, minExplicitSegment, maxExplicitSegment)
	a := IPv6{Layout: CompressedEnd, Explicit: k}
	values, texts := segments(src, k)
	copy(a.Segments[:k], values)
	return a, strings.Join(texts, ":") + "::"
}

// IPv6CompressedMiddle generates 1 to 6 leading and 1 to 7-k1 trailing
// segments around "::", so at least one zero segment is elided.
func IPv6CompressedMiddle(src random.Source) (IPv6, string) {
	k1 := random.IntRange(src, minExplicitSegment, maxExplicitSegment-1)
	k2 := random.IntRange(src, minExplicitSegment, maxExplicitSegment-k1)
	a := IPv6{Layout: CompressedMiddle, Explicit: k1 + k2}

	head, headText := segments(src, k1)
	tail, tailText := segments(src, k2)
	copy(a.Segments[:k1], head)
	copy(a.Segments[ipv6SegmentCount-k2:], tail)
	return a, strings.Join(headText, ":") + "::" + strings.Join(tailText, ":")
}

// IPv6MappedV4 generates an IPv4 address in the ::ffff:0:0/96 prefix.
func IPv6MappedV4(src random.Source) (IPv6, string) {
	v4, text := GenerateIPv4(src)
	a := IPv6{Layout: MappedV4, Explicit: 3}
	a.Segments[5] = 0xffff
	a.Segments[6] = binary.BigEndian.Uint16(v4[0:2])
	a.Segments[7] = binary.BigEndian.Uint16(v4[2:4])
	return a, "::ffff:" + text
}

var ipv6Layouts = []func(random.Source) (IPv6, string){
	Uncompressed:     IPv6Uncompressed,
	CompressedStart:  IPv6CompressedStart,
	CompressedMiddle: IPv6CompressedMiddle,
	CompressedEnd:    IPv6CompressedEnd,
	MappedV4:         IPv6MappedV4,
}

// GenerateIPv6 generates an address in one of the five layouts, chosen uniformly.
func GenerateIPv6(src random.Source) (IPv6, string) {
	return random.Pick(src, ipv6Layouts)(src)
}

// IPv4 is a generated IPv4 address.
type IPv4 [4]byte

// Addr returns the address as a netip.Addr.
func (a IPv4) Addr() netip.Addr {
	return netip.AddrFrom4(a)
}

// GenerateIPv4 generates four random octets in dotted-decimal notation.
func GenerateIPv4(src random.Source) (IPv4, string) {
	var a IPv4
	for i := range a {
		a[i] = byte(src.IntN(256))
	}
	return a, fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}
