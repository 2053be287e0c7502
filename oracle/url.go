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

// URL holds the components of an absolute URL with an authority. Component
// text is kept exactly as it appeared in the input.
type URL struct {
	Scheme      string
	Userinfo    string
	HasUserinfo bool
	Host        Host
	RawHost     string
	Port        uint16
	HasPort     bool
	Path        string
	Query       string
	HasQuery    bool
	Fragment    string
	HasFragment bool
}

// Username returns the userinfo part before the first ":".
func (u *URL) Username() string {
	name, _, _ := strings.Cut(u.Userinfo, ":")
	return name
}

// Password returns the userinfo part after the first ":", if any.
func (u *URL) Password() (string, bool) {
	_, pass, ok := strings.Cut(u.Userinfo, ":")
	return pass, ok
}

// NormalizedPath returns the path with dot segments removed. An empty path
// normalizes to "/", as the path of a URL with an authority does.
func (u *URL) NormalizedPath() string {
	p := RemoveDotSegments(u.Path)
	if p == "" {
		return "/"
	}
	return p
}

// Parse parses an absolute URL of the form
// scheme "://" authority path-abempty [ "?" query ] [ "#" fragment ].
func Parse(s string) (*URL, error) {
	u, err := parse(s)
	if err != nil {
		return nil, newParseError(s, err)
	}
	return u, nil
}

func parse(s string) (*URL, error) {
	u := &URL{}

	colon := strings.IndexByte(s, ':')
	if colon <= 0 {
		return nil, &kindError{message: "No scheme found"}
	}
	u.Scheme = s[:colon]
	for i, r := range u.Scheme {
		if (i == 0 && !isASCIILetter(r)) || !isSchemeChar(r) {
			return nil, &kindError{message: "Invalid scheme character", char: r}
		}
	}

	rest, ok := strings.CutPrefix(s[colon+1:], "//")
	if !ok {
		return nil, errNoAuthority
	}

	end := strings.IndexAny(rest, "/?#")
	if end == -1 {
		end = len(rest)
	}
	if err := u.parseAuthority(rest[:end]); err != nil {
		return nil, err
	}

	rest, u.Fragment, u.HasFragment = strings.Cut(rest[end:], "#")
	u.Path, u.Query, u.HasQuery = strings.Cut(rest, "?")

	if err := validateComponent(u.Path, func(r rune) bool { return isPchar(r) || r == '/' }); err != nil {
		return nil, err
	}
	if err := validateComponent(u.Query, isQueryOrFragmentChar); err != nil {
		return nil, err
	}
	if err := validateComponent(u.Fragment, isQueryOrFragmentChar); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *URL) parseAuthority(authority string) error {
	userinfo, host, port := SplitAuthority(authority)
	u.HasUserinfo = strings.Contains(authority, "@")
	u.Userinfo = userinfo
	if err := validateComponent(userinfo, isUserinfoChar); err != nil {
		return err
	}

	h, err := parseHost(host)
	if err != nil {
		return err
	}
	u.Host, u.RawHost = h, host

	hostport := authority
	if at := strings.LastIndex(authority, "@"); at != -1 {
		hostport = authority[at+1:]
	}
	if rest := hostport[len(host):]; rest != "" {
		if rest[0] != ':' {
			return &kindError{message: "Invalid character after host", char: rune(rest[0])}
		}
		if port != "" {
			p, err := parsePort(port)
			if err != nil {
				return err
			}
			u.Port, u.HasPort = p, true
		}
	}
	return nil
}

// Origin holds the components of an origin-form request target.
type Origin struct {
	Path     string
	Query    string
	HasQuery bool
}

// ParseOrigin parses absolute-path [ "?" query ].
func ParseOrigin(s string) (*Origin, error) {
	if !strings.HasPrefix(s, "/") {
		return nil, newParseError(s, &kindError{message: "Origin form must start with '/'"})
	}
	o := &Origin{}
	o.Path, o.Query, o.HasQuery = strings.Cut(s, "?")
	if err := validateComponent(o.Path, func(r rune) bool { return isPchar(r) || r == '/' }); err != nil {
		return nil, newParseError(s, err)
	}
	if err := validateComponent(o.Query, isQueryOrFragmentChar); err != nil {
		return nil, newParseError(s, err)
	}
	return o, nil
}

// ParseAuthorityForm parses host ":" port.
func ParseAuthorityForm(s string) (Host, uint16, error) {
	userinfo, host, port := SplitAuthority(s)
	if userinfo != "" || strings.Contains(s, "@") {
		return Host{}, 0, newParseError(s, &kindError{message: "Authority form must not carry userinfo"})
	}
	h, err := parseHost(host)
	if err != nil {
		return Host{}, 0, newParseError(s, err)
	}
	p, err := parsePort(port)
	if err != nil {
		return Host{}, 0, newParseError(s, err)
	}
	return h, p, nil
}

// ParseRequestLine splits method SP request-target SP HTTP-version.
func ParseRequestLine(s string) (string, string, string, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 3 {
		return "", "", "", newParseError(s, &kindError{message: "Request line must have three space-separated parts"})
	}
	method, target, version := parts[0], parts[1], parts[2]
	if method == "" {
		return "", "", "", newParseError(s, &kindError{message: "Empty method"})
	}
	for _, r := range method {
		if !isTchar(r) {
			return "", "", "", newParseError(s, &kindError{message: "Invalid method character", char: r})
		}
	}
	if target == "" {
		return "", "", "", newParseError(s, &kindError{message: "Empty request target"})
	}
	if !strings.HasPrefix(version, "HTTP/") {
		return "", "", "", newParseError(s, &kindError{message: "Invalid HTTP version", details: version})
	}
	return method, target, version, nil
}
