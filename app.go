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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	riverrors "rivaas.dev/errors"
	"rivaas.dev/router"
)

// noopLogger is a singleton no-op logger used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// ParamHook runs for a matched path parameter before the route's
// middlewares and action. Returning an error sends it down the error
// channel and stops the chain; a hook may instead write its own response
// and abort the context. Hooks attach by parameter name and apply to every
// route carrying that parameter, including routes mapped earlier.
type ParamHook func(c *router.Context, value string) error

// App attaches resource conventions to a host router: a factory and
// registry for named resources, plus the param-hook table their pipelines
// consume and the error channel they fail through.
//
// Example:
//
//	r := router.MustNew()
//	app := resource.MustNew(r)
//	app.Resource("users", &resource.Actions{
//		Index: resource.Plain(listUsers),
//		Show:  resource.Plain(showUser),
//	})
type App struct {
	host      *router.Router
	logger    *slog.Logger
	format    string
	errors    errorConfig
	resources map[string]*Resource
	params    map[string][]ParamHook
}

type errorConfig struct {
	formatter     riverrors.Formatter
	formatters    map[string]riverrors.Formatter
	defaultFormat string
}

// New creates a resource facade over host.
func New(host *router.Router, opts ...AppOption) (*App, error) {
	if host == nil {
		return nil, ErrNilRouter
	}
	a := &App{
		host:      host,
		logger:    noopLogger,
		resources: make(map[string]*Resource),
		params:    make(map[string][]ParamHook),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// MustNew creates a resource facade over host and panics when construction
// fails.
func MustNew(host *router.Router, opts ...AppOption) *App {
	a, err := New(host, opts...)
	if err != nil {
		panic(fmt.Sprintf("resource.MustNew: %v", err))
	}
	return a
}

// Resource creates, defines or looks up a resource.
//
// With a nil actions configuration the call is a lookup: an existing
// resource with that name returns unchanged and the options are ignored;
// otherwise an inert resource is created, registered when named, and maps
// nothing until instance methods are used. With a configuration a new
// resource is created and wired; redefining a name replaces the earlier
// registry entry, last definition wins. Anonymous resources never enter
// the registry.
func (a *App) Resource(name string, actions *Actions, opts ...Option) *Resource {
	if actions == nil && name != "" {
		if r, ok := a.resources[name]; ok {
			return r
		}
	}
	r := a.newResource(name, opts)
	if actions != nil {
		r.wire(actions)
	}
	if name != "" {
		a.resources[name] = r
	}
	return r
}

func (a *App) newResource(name string, opts []Option) *Resource {
	r := &Resource{
		app:    a,
		name:   name,
		id:     defaultIDParam(name),
		base:   "/",
		format: a.format,
		routes: make(map[routeKey]*record),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.loader != nil {
		r.hookLoader()
	}
	return r
}

// Lookup returns the registered resource with the given name.
func (a *App) Lookup(name string) (*Resource, bool) {
	r, ok := a.resources[name]
	return r, ok
}

// Resources returns the registered resources sorted by name.
func (a *App) Resources() []*Resource {
	out := make([]*Resource, 0, len(a.resources))
	for _, r := range a.resources {
		out = append(out, r)
	}
	slices.SortFunc(out, func(x, y *Resource) int {
		return strings.Compare(x.name, y.name)
	})
	return out
}

// Param registers a hook for a path parameter name, with or without the
// path marker. Hooks run in registration order. The pipeline reads this
// table at request time, so hooks registered after a route was mapped
// still apply to it.
func (a *App) Param(name string, hook ParamHook) {
	name = strings.TrimPrefix(name, ":")
	if name == "" || hook == nil {
		return
	}
	a.params[name] = append(a.params[name], hook)
}

func (a *App) hooksFor(name string) []ParamHook {
	return a.params[name]
}

// fail renders err through the configured error formatter and aborts the
// chain. The status comes from the error itself when it declares one.
func (a *App) fail(c *router.Context, err error) {
	resp := a.formatterFor(c).Format(c.Request, err)
	a.logger.Error("resource error",
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", resp.Status,
	)
	header := c.Response.Header()
	if resp.ContentType != "" {
		header.Set("Content-Type", resp.ContentType)
	}
	for k, vs := range resp.Headers {
		for _, v := range vs {
			header.Add(k, v)
		}
	}
	c.Response.WriteHeader(resp.Status)
	if resp.Body != nil {
		if encErr := json.NewEncoder(c.Response).Encode(resp.Body); encErr != nil {
			a.logger.Error("failed to encode error response", "error", encErr)
		}
	}
	c.Abort()
}

// formatterFor selects the error formatter: a single configured formatter
// wins, a formatter map negotiates against the Accept header and falls
// back to its configured default, and RFC 9457 is the final fallback.
func (a *App) formatterFor(c *router.Context) riverrors.Formatter {
	cfg := a.errors
	if cfg.formatter != nil {
		return cfg.formatter
	}
	if len(cfg.formatters) > 0 {
		offers := make([]string, 0, len(cfg.formatters))
		for k := range cfg.formatters {
			offers = append(offers, k)
		}
		slices.Sort(offers)
		if match := c.Accepts(offers...); match != "" {
			if f, ok := cfg.formatters[match]; ok {
				return f
			}
		}
		if f, ok := cfg.formatters[cfg.defaultFormat]; ok {
			return f
		}
	}
	return &riverrors.RFC9457{}
}
