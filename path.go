// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resource

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// formatToken is the optional-format suffix carried by every canonical
// route pattern. Host registrations strip it; request-time format
// resolution honors it through splitFormat and declared-format aliases.
const formatToken = ".:format?"

// buildPath composes a canonical route pattern from a resource base, a
// resource name, a marked id parameter and an action sub-path.
//
// A sub-path starting with "/" is absolute: one leading separator is
// stripped and the remainder attaches to the collection. Any other
// non-empty sub-path is a member path and is prefixed with the id
// parameter. An empty sub-path yields the bare id parameter.
func buildPath(base, name, idParam, sub string) string {
	var effective string
	switch {
	case strings.HasPrefix(sub, "/"):
		effective = sub[1:]
	case sub != "":
		effective = idParam + "/" + sub
	default:
		effective = idParam
	}

	var b strings.Builder
	b.Grow(len(base) + len(name) + len(effective) + len(formatToken) + 1)
	b.WriteString(base)
	b.WriteString(name)
	if name != "" && effective != "" {
		b.WriteByte('/')
	}
	b.WriteString(effective)
	b.WriteString(formatToken)
	return b.String()
}

// hostPath converts a canonical pattern into the pattern registered at the
// host router, which has no optional-format syntax.
func hostPath(canonical string) string {
	p := strings.TrimSuffix(canonical, formatToken)
	if p == "" {
		return "/"
	}
	return p
}

// normalizeBase guarantees a rooted base path with exactly one trailing
// separator.
func normalizeBase(base string) string {
	if base == "" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return strings.TrimRight(base, "/") + "/"
}

// defaultIDParam derives the id parameter for a resource name: the last
// path segment of the name, singularized. Anonymous resources use "id".
func defaultIDParam(name string) string {
	seg := name
	if i := strings.LastIndexByte(seg, '/'); i >= 0 {
		seg = seg[i+1:]
	}
	if seg == "" {
		return "id"
	}
	return inflection.Singular(seg)
}

// markParam prefixes an id parameter with the path-parameter marker. Bare
// names are stored on the resource; patterns always carry the marker.
func markParam(id string) string {
	return ":" + id
}

// paramNames lists the :param segments of a canonical pattern in order.
func paramNames(canonical string) []string {
	var names []string
	for seg := range strings.SplitSeq(hostPath(canonical), "/") {
		if strings.HasPrefix(seg, ":") && len(seg) > 1 {
			names = append(names, seg[1:])
		}
	}
	return names
}

// tailParam reports the parameter occupying the final segment of the
// pattern, if any. Only such parameters take part in extension splitting.
func tailParam(canonical string) (string, bool) {
	p := hostPath(canonical)
	seg := p[strings.LastIndexByte(p, '/')+1:]
	if strings.HasPrefix(seg, ":") && len(seg) > 1 {
		return seg[1:], true
	}
	return "", false
}

// splitFormat splits a captured id value into the raw id and a trailing
// format extension. The suffix after the last dot counts as a format only
// when it is shaped like one (letter first, alphanumeric throughout), so
// dotted ids survive: "v1.2" stays whole while "42.json" splits.
func splitFormat(value string) (id, format string) {
	i := strings.LastIndexByte(value, '.')
	if i < 0 {
		return value, ""
	}
	ext := value[i+1:]
	if !isFormatExt(ext) {
		return value, ""
	}
	return value[:i], ext
}

func isFormatExt(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
