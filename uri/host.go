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
	"net/netip"
	"strconv"
	"strings"

	"github.com/jplu/reqgen/random"
)

const (
	letters      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphanumeric = letters + "0123456789"
	labelChars   = alphanumeric + "-"

	aceStart = "xn--"
)

func pickByte(src random.Source, set string) byte {
	return set[src.IntN(len(set))]
}

// Label generates a DNS label of 1 to 63 characters: a letter, then either
// at most one alphanumeric character, or up to 61 alphanumeric characters
// and hyphens closed by an alphanumeric one.
//
// The "xn--" prefix, in any case, is reserved for A-labels, so a label that
// would start with it gets an alphanumeric fourth character instead.
func Label(src random.Source) string {
	label := []byte{pickByte(src, letters)}

	if random.Bool(src) {
		if random.Bool(src) {
			label = append(label, pickByte(src, alphanumeric))
		}
	} else {
		n := random.IntRange(src, 0, maxLabelTailLen)
		for range n {
			label = append(label, pickByte(src, labelChars))
		}
		label = append(label, pickByte(src, alphanumeric))
	}

	if len(label) >= 4 && strings.EqualFold(string(label[:4]), aceStart) {
		label[3] = pickByte(src, alphanumeric)
	}
	return string(label)
}

// Domain generates 1 to maxLabels labels joined by ".", with an optional
// leading ".". It panics if maxLabels is zero or negative.
func Domain(src random.Source, maxLabels int) string {
	if maxLabels <= 0 {
		panic(fmt.Sprintf("uri: max label count must be positive, got %d", maxLabels))
	}

	labels := random.Repeat(src, 1, maxLabels, Label)
	domain := strings.Join(labels, ".")
	if random.Bool(src) {
		domain = "." + domain
	}
	return domain
}

// HostKind tells which field of Host is set.
type HostKind int

const (
	// DomainHost is a registered name.
	DomainHost HostKind = iota
	// IPv4Host is a dotted-decimal IPv4 address.
	IPv4Host
	// IPv6Host is a bracketed IPv6 literal.
	IPv6Host
)

// String returns the kind name.
func (k HostKind) String() string {
	switch k {
	case DomainHost:
		return "domain"
	case IPv4Host:
		return "ipv4"
	case IPv6Host:
		return "ipv6"
	default:
		return "HostKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Host is a generated host.
type Host struct {
	Kind   HostKind
	Domain string
	IPv4   IPv4
	IPv6   IPv6
}

// Addr returns the address of an IP host, or the zero Addr for a domain.
func (h Host) Addr() netip.Addr {
	switch h.Kind {
	case IPv4Host:
		return h.IPv4.Addr()
	case IPv6Host:
		return h.IPv6.Addr()
	default:
		return netip.Addr{}
	}
}

// GenerateHost generates a domain, an IPv4 address or a bracketed IPv6
// literal with equal probability. It panics if maxLabels is zero or negative.
func GenerateHost(src random.Source, maxLabels int) (Host, string) {
	switch HostKind(src.IntN(3)) {
	case IPv4Host:
		a, text := GenerateIPv4(src)
		return Host{Kind: IPv4Host, IPv4: a}, text
	case IPv6Host:
		a, text := GenerateIPv6(src)
		return Host{Kind: IPv6Host, IPv6: a}, "[" + text + "]"
	default:
		d := Domain(src, maxLabels)
		return Host{Kind: DomainHost, Domain: d}, d
	}
}

// Authority is a generated authority component.
type Authority struct {
	UserInfo    UserInfo
	HasUserInfo bool
	Host        Host
	Port        uint16
	HasPort     bool
}

// GenerateAuthority generates [ userinfo "@" ] host [ ":" port ].
// It panics if maxLabels is zero or negative.
func GenerateAuthority(src random.Source, maxLabels int) (Authority, string) {
	var (
		a Authority
		b strings.Builder
	)

	if random.Bool(src) {
		var text string
		a.UserInfo, text = User(src)
		a.HasUserInfo = true
		b.WriteString(text)
		b.WriteByte('@')
	}

	var hostText string
	a.Host, hostText = GenerateHost(src, maxLabels)
	b.WriteString(hostText)

	if random.Bool(src) {
		a.Port, a.HasPort = Port(src), true
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(a.Port)))
	}
	return a, b.String()
}

// Port generates a port number in [0, 65535].
func Port(src random.Source) uint16 {
	return uint16(random.IntRange(src, 0, maxPort))
}
