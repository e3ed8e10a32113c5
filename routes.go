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
	"fmt"
	"slices"
	"strings"
)

// routeKey identifies a mapping within one resource: the canonical verb
// plus the original sub-path template. Full paths recompute from the
// resource base, so re-rooting a nested resource rewrites records in place
// instead of deleting and reinserting under new keys.
type routeKey struct {
	verb string
	sub  string
}

// record is one mapped route. path is the canonical pattern under the
// resource's current base and always equals buildPath of the stored sub.
type record struct {
	verb    string
	sub     string
	action  string
	handler Handler
	path    string
}

// RouteInfo describes one mapped route for introspection.
type RouteInfo struct {
	// Method is the HTTP method.
	Method string

	// Path is the canonical pattern, format token included.
	Path string

	// SubPath is the sub-path template the route was mapped with.
	SubPath string

	// Action is the action name, "" for ad hoc mappings.
	Action string
}

// Routes returns a snapshot of the resource's route table sorted by method
// then path.
func (r *Resource) Routes() []RouteInfo {
	infos := make([]RouteInfo, 0, len(r.routes))
	for _, rec := range r.routes {
		infos = append(infos, RouteInfo{
			Method:  rec.verb,
			Path:    rec.path,
			SubPath: rec.sub,
			Action:  rec.action,
		})
	}
	slices.SortFunc(infos, func(a, b RouteInfo) int {
		if c := strings.Compare(a.Method, b.Method); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	return infos
}

// URLFor builds a concrete URL for a named action, replacing each path
// parameter with its value from params. The format token is dropped; append
// an extension by hand when one is wanted.
//
// Example:
//
//	url, err := users.URLFor("show", map[string]string{"user": "42"})
//	// "/users/42"
func (r *Resource) URLFor(action string, params map[string]string) (string, error) {
	if action == "" {
		return "", fmt.Errorf("%w: empty action", ErrUnknownAction)
	}
	rec := r.recordForAction(action)
	if rec == nil {
		return "", fmt.Errorf("%w: %q on resource %q", ErrUnknownAction, action, r.displayName())
	}
	segs := strings.Split(hostPath(rec.path), "/")
	for i, seg := range segs {
		if !strings.HasPrefix(seg, ":") || len(seg) < 2 {
			continue
		}
		name := seg[1:]
		v, ok := params[name]
		if !ok || v == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingRouteParameter, name)
		}
		segs[i] = v
	}
	return strings.Join(segs, "/"), nil
}

func (r *Resource) recordForAction(action string) *record {
	var best *record
	for _, rec := range r.routes {
		if rec.action != action {
			continue
		}
		if best == nil || rec.verb < best.verb || (rec.verb == best.verb && rec.sub < best.sub) {
			best = rec
		}
	}
	return best
}

func (r *Resource) displayName() string {
	if r.name == "" {
		return "(anonymous)"
	}
	return r.name
}

// String implements fmt.Stringer with a short summary for logs.
func (r *Resource) String() string {
	return fmt.Sprintf("resource %s base=%s routes=%d", r.displayName(), r.base, len(r.routes))
}
