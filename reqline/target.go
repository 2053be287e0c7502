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
	"strconv"
	"strings"

	"github.com/jplu/reqgen/config"
	"github.com/jplu/reqgen/random"
	"github.com/jplu/reqgen/uri"
)

// Form is one of the four request-target forms of RFC 9112, Section 3.2.
type Form int

const (
	// OriginForm is absolute-path [ "?" query ].
	OriginForm Form = iota
	// AbsoluteForm is an absolute URI.
	AbsoluteForm
	// AuthorityForm is host ":" port, used by CONNECT.
	AuthorityForm
	// AsteriskForm is "*", used by server-wide OPTIONS.
	AsteriskForm
)

var formNames = [...]string{
	OriginForm:    "origin",
	AbsoluteForm:  "absolute",
	AuthorityForm: "authority",
	AsteriskForm:  "asterisk",
}

// String returns the form name.
func (f Form) String() string {
	if f < 0 || int(f) >= len(formNames) {
		return fmt.Sprintf("Form(%d)", int(f))
	}
	return formNames[f]
}

// Target is a generated request target. Form tells which fields are set.
type Target struct {
	Form Form

	// Path is always set in origin form and optional in absolute form.
	Path    uri.Path
	HasPath bool
	// Query holds the parameters after "?". HasQuery can be set with no
	// parameters in absolute form, where the text then ends with "?".
	Query    []uri.Param
	HasQuery bool

	Scheme      string
	Authority   uri.Authority
	Fragment    string
	HasFragment bool

	// Host and Port are set in authority form.
	Host uri.Host
	Port uint16
}

// Origin generates an origin-form target. The "?" is only written when there
// is at least one query parameter.
func Origin(src random.Source, b config.Bounds) (Target, string) {
	t := Target{Form: OriginForm, HasPath: true}

	var path, query string
	t.Path, path = uri.PathAbsolute(src, b.MaxSegments)
	t.Query, query = uri.Query(src, b.MinQueries, b.MaxQueries)
	if len(t.Query) == 0 {
		return t, path
	}
	t.HasQuery = true
	return t, path + "?" + query
}

// Absolute generates an absolute-form target:
// scheme "://" authority [ path ] [ "?" query ] [ "#" fragment ].
func Absolute(src random.Source, b config.Bounds) (Target, string) {
	t := Target{Form: AbsoluteForm, Scheme: uri.Scheme(src)}

	var sb strings.Builder
	sb.WriteString(t.Scheme)
	sb.WriteString("://")

	var authority string
	t.Authority, authority = uri.GenerateAuthority(src, b.MaxLabelCount)
	sb.WriteString(authority)

	if random.Bool(src) {
		var path string
		t.Path, path = uri.PathAbsolute(src, b.MaxSegments)
		t.HasPath = true
		sb.WriteString(path)
	}
	if random.Bool(src) {
		var query string
		t.Query, query = uri.Query(src, b.MinQueries, b.MaxQueries)
		t.HasQuery = true
		sb.WriteByte('?')
		sb.WriteString(query)
	}
	if random.Bool(src) {
		t.Fragment, t.HasFragment = uri.Fragment(src), true
		sb.WriteByte('#')
		sb.WriteString(t.Fragment)
	}
	return t, sb.String()
}

// Authority generates an authority-form target: host ":" port.
func Authority(src random.Source, b config.Bounds) (Target, string) {
	t := Target{Form: AuthorityForm}

	var host string
	t.Host, host = uri.GenerateHost(src, b.MaxLabelCount)
	t.Port = uri.Port(src)
	return t, host + ":" + strconv.Itoa(int(t.Port))
}

// Asterisk returns the asterisk-form target.
func Asterisk(random.Source, config.Bounds) (Target, string) {
	return Target{Form: AsteriskForm}, "*"
}
