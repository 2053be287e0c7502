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

// Package uri generates the components of RFC 3986 URIs that appear in HTTP
// request targets.
//
// Every generator takes a random.Source and returns the structured value it
// drew together with the canonical text for it. Both are built from the same
// draws, so the text always parses back to the value.
package uri

import "github.com/jplu/reqgen/charclass"

// Character classes of the URI components. Their unsafe ranges are computed
// on first use and shared by all callers.
var (
	userinfoClass = charclass.Of(charclass.Unreserved, charclass.SubDelims)
	segmentClass  = charclass.Of(charclass.Unreserved, charclass.SubDelims, ":@")
	// A query subcomponent is a key or a value, so "+", "&" and "=" are
	// excluded, and a space is written as "+".
	queryClass    = charclass.Of(charclass.Unreserved, "!$'()*,;", ":@/? ").WithSubstitute(' ', '+')
	fragmentClass = charclass.Of(charclass.Unreserved, charclass.SubDelims, ":@/?")
)

// Length bounds of the generated components, in characters.
const (
	maxUserinfoLen     = 50
	maxSegmentLen      = 49
	maxQueryPartLen    = 50
	maxFragmentLen     = 125
	maxLabelTailLen    = 61
	maxPort            = 1<<16 - 1
	ipv6SegmentCount   = 8
	maxIPv6HexWidth    = 4
	minExplicitSegment = 1
	maxExplicitSegment = 7
)
