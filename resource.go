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
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"rivaas.dev/router"
)

// Resource is one RESTful resource: a named family of routes following the
// conventional action table, rooted at a base path. Resources are created
// through an App facade and keep registering at the host as they are
// extended or nested.
//
// All registration is a startup operation. The host freezes its route tree
// when serving begins and panics on late registration; this layer inherits
// that contract and adds no locking of its own.
type Resource struct {
	app          *App
	name         string
	id           string
	base         string
	format       string
	only         map[string]bool
	middlewares  []router.HandlerFunc
	loader       Loader
	loaderHooked bool
	routes       map[routeKey]*record
	children     []*Resource
}

// Name returns the resource name, "" for anonymous resources.
func (r *Resource) Name() string { return r.name }

// IDParam returns the bare id parameter, without the path marker. Patterns
// always carry the marker; this accessor never does.
func (r *Resource) IDParam() string { return r.id }

// Base returns the current base path, always "/"-terminated.
func (r *Resource) Base() string { return r.base }

// DefaultFormat returns the resource default response format, "" when
// unset.
func (r *Resource) DefaultFormat() string { return r.format }

func (r *Resource) logger() *slog.Logger { return r.app.logger }

// GET maps a handler for GET requests at sub. An empty sub addresses the
// member path (the bare id parameter); a sub with a leading "/" attaches
// to the collection.
func (r *Resource) GET(sub string, h Handler) *Resource {
	return r.mapAction(http.MethodGet, sub, "", h)
}

// POST maps a handler for POST requests at sub.
func (r *Resource) POST(sub string, h Handler) *Resource {
	return r.mapAction(http.MethodPost, sub, "", h)
}

// PUT maps a handler for PUT requests at sub.
func (r *Resource) PUT(sub string, h Handler) *Resource {
	return r.mapAction(http.MethodPut, sub, "", h)
}

// PATCH maps a handler for PATCH requests at sub.
func (r *Resource) PATCH(sub string, h Handler) *Resource {
	return r.mapAction(http.MethodPatch, sub, "", h)
}

// DELETE maps a handler for DELETE requests at sub.
func (r *Resource) DELETE(sub string, h Handler) *Resource {
	return r.mapAction(http.MethodDelete, sub, "", h)
}

// HEAD maps a handler for HEAD requests at sub.
func (r *Resource) HEAD(sub string, h Handler) *Resource {
	return r.mapAction(http.MethodHead, sub, "", h)
}

// OPTIONS maps a handler for OPTIONS requests at sub.
func (r *Resource) OPTIONS(sub string, h Handler) *Resource {
	return r.mapAction(http.MethodOptions, sub, "", h)
}

// All maps a handler for every supported verb at sub.
func (r *Resource) All(sub string, h Handler) *Resource {
	for _, verb := range allVerbs {
		r.mapAction(verb, sub, "", h)
	}
	return r
}

// Map registers a handler for verb at sub under the resource's composition
// rules. Verbs are case-insensitive and accept the "del" alias; an unknown
// verb drops the mapping.
func (r *Resource) Map(verb, sub string, h Handler) *Resource {
	v, ok := canonicalVerb(verb)
	if !ok {
		r.logger().Debug("dropped mapping with unknown verb",
			"verb", verb,
			"resource", r.displayName(),
		)
		return r
	}
	return r.mapAction(v, sub, "", h)
}

// Load attaches the loader that resolves this resource's id parameter into
// an entity, bridging it onto the app's param hooks. Replacing the loader
// later swaps the lookup without stacking hooks.
func (r *Resource) Load(l Loader) *Resource {
	r.loader = l
	if l != nil {
		r.hookLoader()
	}
	return r
}

func (r *Resource) hookLoader() {
	if r.loaderHooked || r.app == nil {
		return
	}
	r.app.Param(r.id, loaderHook(r))
	r.loaderHooked = true
	r.logger().Debug("attached loader", "resource", r.displayName(), "param", r.id)
}

// Add nests child under this resource's member path and re-registers every
// child route from its original sub-path template, recursively for the
// child's own children. The host keeps the bindings made before nesting
// and they continue to serve; re-rooting is additive there, while the
// child's route table stays consistent with its new base.
func (r *Resource) Add(child *Resource) *Resource {
	oldBase := child.base
	if !slices.Contains(r.children, child) {
		r.children = append(r.children, child)
	}
	child.base = r.base + r.memberSegment()
	child.reinstall()
	r.logger().Debug("re-rooted resource",
		"resource", child.displayName(),
		"old_base", oldBase,
		"new_base", child.base,
	)
	return r
}

// memberSegment is the path fragment a nested child mounts under: the
// parent name (when named) followed by the parent's marked id parameter.
func (r *Resource) memberSegment() string {
	seg := markParam(r.id) + "/"
	if r.name != "" {
		seg = r.name + "/" + seg
	}
	return seg
}

// reinstall recomputes and re-registers every record under the current
// base, then re-roots nested children from it.
func (r *Resource) reinstall() {
	for _, rec := range r.routes {
		r.install(rec)
	}
	for _, child := range r.children {
		child.base = r.base + r.memberSegment()
		child.reinstall()
	}
}

// wire maps the configured actions: defaults in conventional order,
// filtered by any Only restriction, then custom actions in declaration
// order. Only never constrains custom actions or later instance mappings.
func (r *Resource) wire(actions *Actions) {
	for _, da := range defaultActions {
		if r.only != nil && !r.only[da.name] {
			continue
		}
		h := actions.handlerFor(da.name)
		if h.IsZero() {
			continue
		}
		r.mapAction(da.verb, da.sub, da.name, h)
	}
	for _, ca := range actions.Custom {
		if ca.Handler.IsZero() {
			continue
		}
		verb, ok := canonicalVerb(ca.Verb)
		if !ok {
			r.logger().Debug("dropped custom action with unknown verb",
				"verb", ca.Verb,
				"action", ca.Name,
				"resource", r.displayName(),
			)
			continue
		}
		r.mapAction(verb, ca.Name, strings.TrimPrefix(ca.Name, "/"), ca.Handler)
	}
}

// mapAction stores the record and installs it at the host. Within one
// resource the (verb, sub) pair is the identity of a mapping: mapping it
// again replaces the record, and the host, which also saw both
// registrations, equally serves the last one.
func (r *Resource) mapAction(verb, sub, action string, h Handler) *Resource {
	if h.IsZero() {
		r.logger().Debug("dropped mapping with no handler",
			"method", verb,
			"sub", sub,
			"resource", r.displayName(),
		)
		return r
	}
	rec := &record{verb: verb, sub: sub, action: action, handler: h}
	r.routes[routeKey{verb: verb, sub: sub}] = rec
	r.install(rec)
	return r
}

// install computes the record's pattern under the current base and binds
// its chain at the host, plus one alias binding per declared format for
// static-tailed patterns.
func (r *Resource) install(rec *record) {
	rec.path = buildPath(r.base, r.name, markParam(r.id), rec.sub)
	p := hostPath(rec.path)
	r.bind(rec.verb, p, r.chain(rec, ""))
	for _, f := range r.declaredFormats(rec) {
		r.bind(rec.verb, p+"."+f, r.chain(rec, f))
	}
	r.logger().Debug("mapped route",
		"method", rec.verb,
		"path", rec.path,
		"resource", r.displayName(),
		"action", rec.action,
	)
}

// declaredFormats lists the formats worth static alias registrations for a
// record: the dispatch keys plus the resource default. Parameter-tailed
// patterns need none, extension splitting on the captured id covers them
// for any format.
func (r *Resource) declaredFormats(rec *record) []string {
	if _, ok := tailParam(rec.path); ok {
		return nil
	}
	formats := slices.Clone(rec.handler.keys)
	if r.format != "" && !slices.Contains(formats, r.format) {
		formats = append(formats, r.format)
	}
	return formats
}

// bind hands one method and path to the host. The host's verb methods
// return route handles this layer does not keep.
func (r *Resource) bind(verb, path string, chain []router.HandlerFunc) {
	host := r.app.host
	switch verb {
	case http.MethodGet:
		host.GET(path, chain...)
	case http.MethodPost:
		host.POST(path, chain...)
	case http.MethodPut:
		host.PUT(path, chain...)
	case http.MethodPatch:
		host.PATCH(path, chain...)
	case http.MethodDelete:
		host.DELETE(path, chain...)
	case http.MethodHead:
		host.HEAD(path, chain...)
	case http.MethodOptions:
		host.OPTIONS(path, chain...)
	}
}
