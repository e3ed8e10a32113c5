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
	"net/http"
	"slices"
	"strings"

	"rivaas.dev/router"
)

// Handler is the registrable unit for a resource action: either a single
// handler serving every representation, or a table of handlers keyed by
// short format name. The zero value wires nothing, so Actions literals
// list only the actions they implement.
//
// Example:
//
//	resource.Plain(listUsers)
//	resource.ByFormat(map[string]router.HandlerFunc{
//		"json": listUsersJSON,
//		"xml":  listUsersXML,
//	})
type Handler struct {
	fn       router.HandlerFunc
	formats  map[string]router.HandlerFunc
	keys     []string
	fallback router.HandlerFunc
}

// Plain wraps a single handler that serves every representation of the
// action. Content negotiation, if any, is the handler's own business.
func Plain(fn router.HandlerFunc) Handler {
	return Handler{fn: fn}
}

// ByFormat declares a format-dispatch table for an action. Keys are short
// format names (json, xml, html, txt) matched case-insensitively against
// the resolved request format; when no format is resolved the table is
// negotiated against the Accept header. The reserved key "default" names a
// fallback handler that serves any unmatched representation. Nil entries
// are dropped.
func ByFormat(formats map[string]router.HandlerFunc) Handler {
	m := make(map[string]router.HandlerFunc, len(formats))
	keys := make([]string, 0, len(formats))
	var fallback router.HandlerFunc
	for k, fn := range formats {
		if fn == nil {
			continue
		}
		k = strings.ToLower(k)
		if k == "default" {
			fallback = fn
			continue
		}
		m[k] = fn
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return Handler{formats: m, keys: keys, fallback: fallback}
}

// IsZero reports whether the Handler wires nothing.
func (h Handler) IsZero() bool {
	return h.fn == nil && len(h.formats) == 0 && h.fallback == nil
}

// Actions declares the handlers a resource implements. Only non-zero
// fields are wired, in the conventional order below; Custom entries append
// after the defaults in declaration order.
//
// Example:
//
//	app.Resource("users", &resource.Actions{
//		Index: resource.Plain(listUsers),
//		Show:  resource.Plain(showUser),
//	})
type Actions struct {
	Index   Handler
	New     Handler
	Create  Handler
	Show    Handler
	Edit    Handler
	Update  Handler
	Patch   Handler
	Destroy Handler

	Custom []CustomAction
}

// CustomAction maps an extra named action onto a verb. The name doubles as
// the action's sub-path: a bare name composes as a member path under the
// id parameter, a name with a leading "/" attaches to the collection.
type CustomAction struct {
	Verb    string
	Name    string
	Handler Handler
}

// defaultAction describes one conventional action: its verb and the
// sub-path handed to the path builder. Collection actions use absolute
// sub-paths so they never pick up the id parameter; member actions use the
// empty sub-path (bare id) or a member suffix.
type defaultAction struct {
	name string
	verb string
	sub  string
}

// defaultActions is the conventional table, in wiring order. The destroy
// action maps to the DELETE method here, the single place the alias is
// normalized; no destroy verb ever reaches the host.
var defaultActions = [...]defaultAction{
	{"index", http.MethodGet, "/"},
	{"new", http.MethodGet, "/new"},
	{"create", http.MethodPost, "/"},
	{"show", http.MethodGet, ""},
	{"edit", http.MethodGet, "edit"},
	{"update", http.MethodPut, ""},
	{"patch", http.MethodPatch, ""},
	{"destroy", http.MethodDelete, ""},
}

func (a *Actions) handlerFor(name string) Handler {
	switch name {
	case "index":
		return a.Index
	case "new":
		return a.New
	case "create":
		return a.Create
	case "show":
		return a.Show
	case "edit":
		return a.Edit
	case "update":
		return a.Update
	case "patch":
		return a.Patch
	case "destroy":
		return a.Destroy
	}
	return Handler{}
}

// allVerbs is the method set covered by All, matching the host's verb
// registration surface.
var allVerbs = [...]string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

// canonicalVerb maps a user-supplied verb to its HTTP method. Lower-case
// verbs and the "del" alias are accepted; anything else is rejected and
// the mapping is dropped by the caller.
func canonicalVerb(verb string) (string, bool) {
	switch strings.ToUpper(verb) {
	case http.MethodGet:
		return http.MethodGet, true
	case http.MethodPost:
		return http.MethodPost, true
	case http.MethodPut:
		return http.MethodPut, true
	case http.MethodPatch:
		return http.MethodPatch, true
	case http.MethodDelete, "DEL":
		return http.MethodDelete, true
	case http.MethodHead:
		return http.MethodHead, true
	case http.MethodOptions:
		return http.MethodOptions, true
	}
	return "", false
}
