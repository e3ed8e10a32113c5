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
	"strings"

	riverrors "rivaas.dev/errors"
	"rivaas.dev/router"
)

// AppOption configures an App at construction.
type AppOption func(*App)

// WithLogger sets the structured logger for registration and error-channel
// logging. Without it the facade stays silent.
//
// Example:
//
//	resource.MustNew(r, resource.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) AppOption {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithDefaultFormat sets the response format resources inherit when they
// do not declare their own.
func WithDefaultFormat(format string) AppOption {
	return func(a *App) {
		a.format = strings.ToLower(format)
	}
}

// WithErrorFormatter configures a single error formatter used for every
// error response on the facade's error channel.
//
// Example:
//
//	resource.MustNew(r, resource.WithErrorFormatter(&errors.RFC9457{
//	    BaseURL: "https://api.example.com/problems",
//	}))
func WithErrorFormatter(formatter riverrors.Formatter) AppOption {
	return func(a *App) {
		a.errors.formatter = formatter
	}
}

// WithErrorFormatters uses the Accept header to determine which formatter
// renders an error. Keys are media types.
//
// Example:
//
//	resource.MustNew(r,
//	    resource.WithErrorFormatters(map[string]errors.Formatter{
//	        "application/problem+json": &errors.RFC9457{},
//	        "application/json":         &errors.Simple{},
//	    }),
//	    resource.WithDefaultErrorFormat("application/problem+json"),
//	)
func WithErrorFormatters(formatters map[string]riverrors.Formatter) AppOption {
	return func(a *App) {
		a.errors.formatters = formatters
	}
}

// WithDefaultErrorFormat sets the formatter key used when no Accept header
// matches. It only applies when WithErrorFormatters is configured.
func WithDefaultErrorFormat(mediaType string) AppOption {
	return func(a *App) {
		a.errors.defaultFormat = mediaType
	}
}

// Option configures a Resource at creation. Options apply before the
// actions are wired, so they shape every mapped route.
type Option func(*Resource)

// WithBase overrides the base path the resource's routes are composed
// under. The base is normalized to a rooted, "/"-terminated path.
//
// Example:
//
//	app.Resource("users", actions, resource.WithBase("/api/v1"))
func WithBase(base string) Option {
	return func(r *Resource) {
		r.base = normalizeBase(base)
	}
}

// WithIDParam overrides the derived id parameter. The name is taken bare;
// a leading path marker is tolerated and stripped. An empty name keeps the
// derived one.
//
// Example:
//
//	app.Resource("users", actions, resource.WithIDParam("uid"))
func WithIDParam(id string) Option {
	return func(r *Resource) {
		id = strings.TrimPrefix(id, ":")
		if id != "" {
			r.id = id
		}
	}
}

// WithFormat sets the resource's default response format, applied when a
// request resolves no format of its own.
func WithFormat(format string) Option {
	return func(r *Resource) {
		r.format = strings.ToLower(format)
	}
}

// Only restricts wiring to the named default actions. Unknown names are
// ignored; custom actions and later instance mappings are not constrained.
//
// Example:
//
//	app.Resource("users", actions, resource.Only("index", "show"))
func Only(actions ...string) Option {
	return func(r *Resource) {
		r.only = make(map[string]bool, len(actions))
		for _, name := range actions {
			r.only[strings.ToLower(name)] = true
		}
	}
}

// WithLoader attaches the loader that resolves the resource's id parameter
// into an entity, equivalent to calling Load after creation.
func WithLoader(l Loader) Option {
	return func(r *Resource) {
		r.loader = l
	}
}

// WithMiddleware appends handlers that run before the action on every
// route of the resource, in the order given. Nil handlers are dropped.
func WithMiddleware(middlewares ...router.HandlerFunc) Option {
	return func(r *Resource) {
		for _, mw := range middlewares {
			if mw != nil {
				r.middlewares = append(r.middlewares, mw)
			}
		}
	}
}
