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
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/cases"
)

// HostKind tells which variant of Host is set.
type HostKind int

const (
	// DomainHost is a registered name.
	DomainHost HostKind = iota
	// IPv4Host is a dotted-decimal IPv4 address.
	IPv4Host
	// IPv6Host is a bracketed IPv6 literal.
	IPv6Host
)

// Host is a parsed host. Domain is lower-cased; Addr is set for IP hosts.
type Host struct {
	Kind   HostKind
	Domain string
	Addr   netip.Addr
}

// domainProfile validates registered names the way a lookup would, with STD3
// rules, without enforcing DNS length limits. Hyphen placement is checked by
// checkLabelHyphens instead, since the IDNA check also rejects "--" in the
// third and fourth positions, which is valid in a non-IDNA label.
var domainProfile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.Transitional(false),
	idna.CheckHyphens(false),
)

// SplitAuthority splits an authority into its userinfo, host and port parts.
// The "@" and ":" separators are not included.
func SplitAuthority(authority string) (string, string, string) {
	var userinfo, host, port string

	hostport := authority
	if at := strings.LastIndex(authority, "@"); at != -1 {
		userinfo = authority[:at]
		hostport = authority[at+1:]
	}

	if strings.HasPrefix(hostport, "[") {
		endBracket := strings.LastIndex(hostport, "]")
		if endBracket == -1 {
			return userinfo, hostport, ""
		}
		host = hostport[:endBracket+1]
		if len(hostport) > endBracket+1 && hostport[endBracket+1] == ':' {
			port = hostport[endBracket+2:]
		}
		return userinfo, host, port
	}

	if colon := strings.LastIndex(hostport, ":"); colon != -1 {
		return userinfo, hostport[:colon], hostport[colon+1:]
	}
	return userinfo, hostport, ""
}

// ParseHost parses a host as it appears in an authority.
func ParseHost(host string) (Host, error) {
	h, err := parseHost(host)
	return h, newParseError(host, err)
}

func parseHost(host string) (Host, error) {
	switch {
	case host == "":
		return Host{}, errEmptyHost
	case strings.HasPrefix(host, "["):
		if !strings.HasSuffix(host, "]") {
			return Host{}, &kindError{message: "Invalid host IP: unterminated IP literal", details: host}
		}
		literal := host[1 : len(host)-1]
		if strings.HasPrefix(literal, "v") || strings.HasPrefix(literal, "V") {
			return Host{}, &kindError{message: "IPvFuture literals are not supported", details: literal}
		}
		addr, err := netip.ParseAddr(literal)
		if err != nil {
			return Host{}, &kindError{message: "Invalid host IP", details: literal, err: err}
		}
		if !addr.Is6() || addr.Zone() != "" {
			return Host{}, &kindError{message: "IP literal is not a plain IPv6 address", details: literal}
		}
		return Host{Kind: IPv6Host, Addr: addr}, nil
	case looksLikeIPv4(host):
		addr, err := netip.ParseAddr(host)
		if err != nil {
			return Host{}, &kindError{message: "Invalid IPv4 address", details: host, err: err}
		}
		return Host{Kind: IPv4Host, Addr: addr}, nil
	default:
		return parseDomain(host)
	}
}

// looksLikeIPv4 reports whether the last label of host is numeric, in which
// case the host must be an IPv4 address.
func looksLikeIPv4(host string) bool {
	last := host[strings.LastIndex(host, ".")+1:]
	if last == "" {
		return false
	}
	for _, r := range last {
		if !isASCIIDigit(r) {
			return false
		}
	}
	return true
}

// checkLabelHyphens rejects labels that start or end with a hyphen.
func checkLabelHyphens(name string) error {
	for _, label := range strings.Split(name, ".") {
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return fmt.Errorf("label %q starts or ends with a hyphen", label)
		}
	}
	return nil
}

// parseDomain validates a registered name. A single leading "." is kept.
func parseDomain(host string) (Host, error) {
	name, root := strings.CutPrefix(host, ".")
	if name == "" {
		return Host{}, errEmptyHost
	}
	ascii, err := domainProfile.ToASCII(name)
	if err != nil {
		return Host{}, &kindError{message: "Invalid domain", details: host, err: err}
	}
	if err := checkLabelHyphens(ascii); err != nil {
		return Host{}, &kindError{message: "Invalid domain", details: host, err: err}
	}
	if root {
		ascii = "." + ascii
	}
	return Host{Kind: DomainHost, Domain: ascii}, nil
}

// ParsePort parses a decimal port number.
func ParsePort(port string) (uint16, error) {
	p, err := parsePort(port)
	return p, newParseError(port, err)
}

func parsePort(port string) (uint16, error) {
	for _, r := range port {
		if !isASCIIDigit(r) {
			return 0, &kindError{message: "Invalid port character", char: r}
		}
	}
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return 0, &kindError{message: "Invalid port", details: port, err: err}
	}
	return uint16(n), nil
}

// EqualDomain reports whether two domains are equal under case folding.
func EqualDomain(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}
