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

//nolint:testpackage // White-box tests share the scripted source helper.
package uri

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jplu/reqgen/oracle"
	"github.com/jplu/reqgen/random"
)

func isAlphanumeric(c byte) bool {
	return strings.IndexByte(alphanumeric, c) >= 0
}

func TestLabel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		label := Label(random.FromRapid(t))

		require.GreaterOrEqual(t, len(label), 1)
		require.LessOrEqual(t, len(label), 63)
		require.Contains(t, letters, label[:1])
		require.True(t, isAlphanumeric(label[len(label)-1]), label)
		require.False(t, len(label) >= 4 && strings.EqualFold(label[:4], "xn--"), label)
		for i := range len(label) {
			require.Contains(t, labelChars, label[i:i+1])
		}
	})
}

func TestLabelInnerHyphens(t *testing.T) {
	hyphen := strings.IndexByte(labelChars, '-')
	// "a", long form with three middle characters "b--", closing "c".
	src := &scripted{draws: []int{
		0, 0, 3,
		strings.IndexByte(labelChars, 'b'), hyphen, hyphen,
		strings.IndexByte(alphanumeric, 'c'),
	}}
	label := Label(src)
	require.Equal(t, "ab--c", label)

	parsed, err := oracle.ParseHost(label)
	require.NoError(t, err)
	require.Equal(t, "ab--c", parsed.Domain)
}

func TestLabelReservedACEPrefix(t *testing.T) {
	hyphen := strings.IndexByte(labelChars, '-')
	for _, first := range []byte{'x', 'X'} {
		// first letter, long form with three middle characters "n--", closing
		// "c", then "d" replacing the hyphen in the fourth position.
		src := &scripted{draws: []int{
			strings.IndexByte(letters, first), 0, 3,
			strings.IndexByte(labelChars, 'n'), hyphen, hyphen,
			strings.IndexByte(alphanumeric, 'c'),
			strings.IndexByte(alphanumeric, 'd'),
		}}
		require.Equal(t, string(first)+"n-dc", Label(src))
	}
}

func TestDomain(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxLabels := rapid.IntRange(1, 20).Draw(t, "maxLabels")
		domain := Domain(random.FromRapid(t), maxLabels)

		labels := strings.Split(strings.TrimPrefix(domain, "."), ".")
		require.GreaterOrEqual(t, len(labels), 1)
		require.LessOrEqual(t, len(labels), maxLabels)
		for _, label := range labels {
			require.NotEmpty(t, label)
		}
	})
}

func TestDomainPanicsOnZeroLabels(t *testing.T) {
	require.Panics(t, func() { Domain(random.New(1), 0) })
	require.Panics(t, func() { GenerateHost(&scripted{draws: []int{int(DomainHost)}}, 0) })
}

func TestHostMatchesReferenceParser(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := Hosts(20).Draw(t, "host")

		parsed, err := oracle.ParseHost(s.Text)
		require.NoError(t, err, s.Text)

		switch s.Value.Kind {
		case DomainHost:
			require.Equal(t, oracle.DomainHost, parsed.Kind)
			require.Equal(t, s.Text, s.Value.Domain)
			require.True(t, oracle.EqualDomain(s.Value.Domain, parsed.Domain), "%q != %q", s.Value.Domain, parsed.Domain)
		case IPv4Host:
			require.Equal(t, oracle.IPv4Host, parsed.Kind)
			require.Equal(t, s.Value.Addr(), parsed.Addr)
		case IPv6Host:
			require.Equal(t, oracle.IPv6Host, parsed.Kind)
			require.Equal(t, s.Value.Addr(), parsed.Addr)
			require.True(t, strings.HasPrefix(s.Text, "[") && strings.HasSuffix(s.Text, "]"))
		default:
			t.Fatalf("unexpected host kind %v", s.Value.Kind)
		}
	})
}

func TestAuthorityMatchesReferenceParser(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := Authorities(5).Draw(t, "authority")
		a := s.Value

		u, err := oracle.Parse("http://" + s.Text + "/")
		require.NoError(t, err, s.Text)

		require.Equal(t, a.HasUserInfo, u.HasUserinfo)
		if a.HasUserInfo {
			require.Equal(t, a.UserInfo.Username, u.Username())
			pass, ok := u.Password()
			require.Equal(t, a.UserInfo.HasPassword, ok)
			require.Equal(t, a.UserInfo.Password, pass)
		}
		require.Equal(t, a.HasPort, u.HasPort)
		require.Equal(t, a.Port, u.Port)
		if a.Host.Kind == DomainHost {
			require.True(t, oracle.EqualDomain(a.Host.Domain, u.Host.Domain))
		} else {
			require.Equal(t, a.Host.Addr(), u.Host.Addr)
		}
	})
}

func TestHostKindString(t *testing.T) {
	require.Equal(t, "ipv6", IPv6Host.String())
	require.Equal(t, "HostKind(7)", HostKind(7).String())
}
