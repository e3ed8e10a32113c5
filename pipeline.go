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
	"context"
	"fmt"
	"net/http"
	"strings"

	riverrors "rivaas.dev/errors"
	"rivaas.dev/router"
)

type paramOverrideKey struct{ name string }

func overrideParam(c *router.Context, name, value string) {
	ctx := context.WithValue(c.Request.Context(), paramOverrideKey{name: name}, value)
	c.Request = c.Request.WithContext(ctx)
}

// Param returns the effective value of a path parameter: the
// extension-stripped id when the request carried one, otherwise the raw
// host capture. Handlers under this layer read ids through it so that
// "/users/42.json" observes "42".
func Param(c *router.Context, name string) string {
	if v, ok := c.Request.Context().Value(paramOverrideKey{name: name}).(string); ok {
		return v
	}
	return c.Param(name)
}

// chain assembles one host handler chain for a record: the parameter
// stage, the resource middlewares in order, then the action stage. The
// host runs the chain sequentially and honors aborts between stages. A
// non-empty pinned format marks a declared-format alias binding, whose
// requests resolve to that format before anything else runs.
func (r *Resource) chain(rec *record, pinned string) []router.HandlerFunc {
	handlers := make([]router.HandlerFunc, 0, len(r.middlewares)+2)
	handlers = append(handlers, r.paramStage(rec.path, pinned))
	handlers = append(handlers, r.middlewares...)
	handlers = append(handlers, r.actionStage(rec))
	return handlers
}

// paramStage splits a format extension off the tail id segment, then runs
// the registered param hooks for every parameter of the route in pattern
// order. Hooks observe extension-stripped values; a hook error goes down
// the error channel, and a hook may abort on its own after writing a
// response.
func (r *Resource) paramStage(canonical, pinned string) router.HandlerFunc {
	names := paramNames(canonical)
	tail, hasTail := tailParam(canonical)
	return func(c *router.Context) {
		if pinned != "" {
			SetFormat(c, pinned)
		}
		if hasTail {
			if raw := c.Param(tail); raw != "" {
				if id, format := splitFormat(raw); format != "" {
					overrideParam(c, tail, id)
					SetFormat(c, format)
				}
			}
		}
		for _, name := range names {
			hooks := r.app.hooksFor(name)
			if len(hooks) == 0 {
				continue
			}
			value := Param(c, name)
			for _, hook := range hooks {
				if err := hook(c, value); err != nil {
					r.app.fail(c, err)
					return
				}
				if c.IsAborted() {
					return
				}
			}
		}
	}
}

// actionStage resolves the response format and dispatches the record's
// handler. Plain handlers run for any representation. Dispatch tables take
// the resolved format when they declare it, fall back to Accept
// negotiation across their keys, then to their default entry; with nothing
// left the request fails with 406.
func (r *Resource) actionStage(rec *record) router.HandlerFunc {
	h := rec.handler
	return func(c *router.Context) {
		format := RequestFormat(c)
		if format == "" {
			format = r.format
		}

		if h.fn != nil {
			if ct := contentTypeFor(format); format != "" && ct != "" {
				c.Header("Content-Type", ct)
			}
			h.fn(c)
			return
		}

		fn, ok := h.formats[format]
		if !ok {
			if negotiated := c.Accepts(h.keys...); negotiated != "" {
				if nfn, nok := h.formats[negotiated]; nok {
					format, fn, ok = negotiated, nfn, true
				}
			}
		}
		if !ok && h.fallback != nil {
			h.fallback(c)
			return
		}
		if !ok {
			r.app.fail(c, riverrors.WithStatus(
				fmt.Errorf("%w: resource %q offers %s", ErrNotAcceptable, r.displayName(), strings.Join(h.keys, ", ")),
				http.StatusNotAcceptable,
			))
			return
		}

		SetFormat(c, format)
		if ct := contentTypeFor(format); ct != "" {
			c.Header("Content-Type", ct)
		}
		fn(c)
	}
}
