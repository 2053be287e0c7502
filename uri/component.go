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
	"strings"

	"github.com/jplu/reqgen/random"
)

// UserInfo is the userinfo subcomponent of an authority.
type UserInfo struct {
	Username    string
	Password    string
	HasPassword bool
}

// User generates a username and, half of the time, a password. The text is
// "user" or "user:password"; both parts may be empty.
func User(src random.Source) (UserInfo, string) {
	info := UserInfo{Username: userinfoClass.Text(src, 0, maxUserinfoLen)}
	info.Password, info.HasPassword = random.Optional(src, func(src random.Source) string {
		return userinfoClass.Text(src, 0, maxUserinfoLen)
	})

	if !info.HasPassword {
		return info, info.Username
	}
	return info, strings.Join([]string{info.Username, info.Password}, ":")
}

// Param is one key=value pair of a query. An empty value is reported as absent.
type Param struct {
	Key      string
	Value    string
	HasValue bool
}

// QueryParam generates a query parameter. The text always carries the "="
// separator, even when the value is empty.
func QueryParam(src random.Source) (Param, string) {
	key := queryClass.Text(src, 0, maxQueryPartLen)
	value := queryClass.Text(src, 0, maxQueryPartLen)
	return Param{Key: key, Value: value, HasValue: value != ""}, key + "=" + value
}

// Query generates between minParams and maxParams parameters joined by "&".
func Query(src random.Source, minParams, maxParams int) ([]Param, string) {
	n := random.IntRange(src, minParams, maxParams)
	params := make([]Param, n)
	texts := make([]string, n)
	for i := range params {
		params[i], texts[i] = QueryParam(src)
	}
	return params, strings.Join(texts, "&")
}

// Fragment generates fragment text, without the leading "#".
func Fragment(src random.Source) string {
	return fragmentClass.Text(src, 0, maxFragmentLen)
}

// Scheme generates "http" or "https" with every letter in a random case.
func Scheme(src random.Source) string {
	scheme := "http"
	if random.Bool(src) {
		scheme = "https"
	}

	b := []byte(scheme)
	for i := range b {
		if random.Bool(src) {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}
