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
	"reflect"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	riverrors "rivaas.dev/errors"
	"rivaas.dev/router"
)

// Loader resolves a raw id parameter into the entity it names. The two
// implementations differ only in how much of the request they see; which
// one runs is decided by the value the caller attaches, never inferred.
//
// Outcomes per request: an error aborts through the error channel, a nil
// entity aborts with 404, anything else is attached to the request and the
// chain continues.
type Loader interface {
	load(c *router.Context, id string) (any, error)
}

// LoaderFunc adapts a plain lookup function into a Loader. The context is
// the request's, so cancellation and deadlines propagate into storage
// calls.
//
// Example:
//
//	users.Load(resource.LoaderFunc(func(ctx context.Context, id string) (any, error) {
//		return store.FindUser(ctx, id)
//	}))
type LoaderFunc func(ctx context.Context, id string) (any, error)

func (f LoaderFunc) load(c *router.Context, id string) (any, error) {
	return f(c.Request.Context(), id)
}

// ContextualLoaderFunc adapts a lookup that needs the full router context,
// for loaders that read headers, query parameters or other request state.
type ContextualLoaderFunc func(c *router.Context, id string) (any, error)

func (f ContextualLoaderFunc) load(c *router.Context, id string) (any, error) {
	return f(c, id)
}

type entityKey struct{ param string }

func attachEntity(c *router.Context, param string, entity any) {
	ctx := context.WithValue(c.Request.Context(), entityKey{param: param}, entity)
	c.Request = c.Request.WithContext(ctx)
}

// Loaded returns the entity a loader resolved for the given id parameter,
// or nil when nothing was loaded under that name.
func Loaded(c *router.Context, param string) any {
	return c.Request.Context().Value(entityKey{param: param})
}

// LoadedAs returns the entity a loader resolved for the given id
// parameter, asserted to T.
//
// Example:
//
//	user, ok := resource.LoadedAs[*User](c, "user")
func LoadedAs[T any](c *router.Context, param string) (T, bool) {
	v, ok := Loaded(c, param).(T)
	return v, ok
}

// isNilEntity treats untyped nil and nil pointers, maps, slices, funcs and
// channels as absence. A zero-valued struct is presence.
func isNilEntity(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// loaderHook bridges a resource's loader onto the param-hook mechanism.
// The hook reads the loader through the resource so replacing the loader
// later does not stack hooks.
func loaderHook(r *Resource) ParamHook {
	return func(c *router.Context, value string) error {
		l := r.loader
		if l == nil {
			return nil
		}
		entity, err := l.load(c, value)
		switch {
		case err != nil:
			loadEvent(c, r, "error")
			return fmt.Errorf("load %s %q: %w", r.id, value, err)
		case isNilEntity(entity):
			loadEvent(c, r, "miss")
			return riverrors.WithStatus(
				fmt.Errorf("%w: %s %q", ErrEntityNotFound, r.id, value),
				http.StatusNotFound,
			)
		}
		loadEvent(c, r, "hit")
		attachEntity(c, r.id, entity)
		return nil
	}
}

// loadEvent records a span event for a loader outcome when the request is
// traced. Without a configured tracer the call is inert.
func loadEvent(c *router.Context, r *Resource, outcome string) {
	span := trace.SpanFromContext(c.Request.Context())
	if !span.IsRecording() {
		return
	}
	span.AddEvent("resource.load", trace.WithAttributes(
		attribute.String("resource.name", r.name),
		attribute.String("resource.param", r.id),
		attribute.String("resource.outcome", outcome),
	))
}
