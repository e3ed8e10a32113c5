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
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	riverrors "rivaas.dev/errors"
	"rivaas.dev/router"
)

func TestNewNilRouter(t *testing.T) {
	t.Parallel()

	app, err := New(nil)
	require.ErrorIs(t, err, ErrNilRouter)
	assert.Nil(t, app)
}

func TestMustNewPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "resource.MustNew: host router is nil", func() {
		MustNew(nil)
	})
}

func TestResourceRegistry(t *testing.T) {
	t.Parallel()

	host := router.MustNew()
	app := MustNew(host)

	users := app.Resource("users", &Actions{Index: textHandler("index")})

	t.Run("lookup returns the registered resource", func(t *testing.T) {
		t.Parallel()

		got, ok := app.Lookup("users")
		require.True(t, ok)
		assert.Same(t, users, got)
	})

	t.Run("nil actions is a lookup", func(t *testing.T) {
		t.Parallel()

		got := app.Resource("users", nil)
		assert.Same(t, users, got)
	})

	t.Run("lookup ignores options", func(t *testing.T) {
		t.Parallel()

		got := app.Resource("users", nil, WithBase("/elsewhere"))
		assert.Same(t, users, got)
		assert.Equal(t, "/", got.Base())
	})

	t.Run("unknown name misses", func(t *testing.T) {
		t.Parallel()

		_, ok := app.Lookup("ghosts")
		assert.False(t, ok)
	})
}

func TestResourceRedefineReplaces(t *testing.T) {
	t.Parallel()

	host := router.MustNew()
	app := MustNew(host)

	first := app.Resource("users", &Actions{Index: textHandler("one")})
	second := app.Resource("users", &Actions{Index: textHandler("two")})

	assert.NotSame(t, first, second)

	got, ok := app.Lookup("users")
	require.True(t, ok)
	assert.Same(t, second, got)

	// Both definitions bound the same host path; the later binding wins.
	w := perform(host, http.MethodGet, "/users")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "two", w.Body.String())
}

func TestResourcesSorted(t *testing.T) {
	t.Parallel()

	host := router.MustNew()
	app := MustNew(host)

	app.Resource("comments", nil)
	app.Resource("authors", nil)
	app.Resource("books", nil)

	names := make([]string, 0, 3)
	for _, r := range app.Resources() {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"authors", "books", "comments"}, names)
}

func TestAppParamGuards(t *testing.T) {
	t.Parallel()

	host := router.MustNew()
	app := MustNew(host)

	app.Param("", func(c *router.Context, value string) error { return nil })
	app.Param(":", func(c *router.Context, value string) error { return nil })
	app.Param("user", nil)

	assert.Empty(t, app.params)
}

func TestAppDefaultFormatInherited(t *testing.T) {
	t.Parallel()

	host := router.MustNew()
	app := MustNew(host, WithDefaultFormat("JSON"))

	users := app.Resource("users", nil)
	assert.Equal(t, "json", users.DefaultFormat())

	override := app.Resource("pages", nil, WithFormat("html"))
	assert.Equal(t, "html", override.DefaultFormat())
}

func TestWithLoggerObservesErrorChannel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	host := router.MustNew()
	app := MustNew(host, WithLogger(logger))

	app.Resource("users", &Actions{
		Show: textHandler("never"),
	}, WithLoader(LoaderFunc(func(ctx context.Context, id string) (any, error) {
		return nil, nil
	})))

	assert.Contains(t, buf.String(), "mapped route")

	w := perform(host, http.MethodGet, "/users/1")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, buf.String(), "resource error")
	assert.Contains(t, buf.String(), "status=404")
}

func TestErrorFormatterSingle(t *testing.T) {
	t.Parallel()

	host := router.MustNew()
	app := MustNew(host, WithErrorFormatter(&riverrors.Simple{}))

	app.Resource("users", &Actions{
		Show: textHandler("never"),
	}, WithLoader(LoaderFunc(func(ctx context.Context, id string) (any, error) {
		return nil, nil
	})))

	w := perform(host, http.MethodGet, "/users/1")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "entity not found")
}

func TestErrorFormattersNegotiated(t *testing.T) {
	t.Parallel()

	host := router.MustNew()
	app := MustNew(host,
		WithErrorFormatters(map[string]riverrors.Formatter{
			"application/problem+json": &riverrors.RFC9457{},
			"application/json":         &riverrors.Simple{},
		}),
		WithDefaultErrorFormat("application/problem+json"),
	)

	app.Resource("users", &Actions{
		Show: textHandler("never"),
	}, WithLoader(LoaderFunc(func(ctx context.Context, id string) (any, error) {
		return nil, nil
	})))

	t.Run("accept header selects the formatter", func(t *testing.T) {
		t.Parallel()

		w := performAccept(host, http.MethodGet, "/users/1", "application/json")
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	})

	t.Run("no match falls back to the default", func(t *testing.T) {
		t.Parallel()

		w := performAccept(host, http.MethodGet, "/users/1", "text/html")
		assert.Equal(t, "application/problem+json; charset=utf-8", w.Header().Get("Content-Type"))
	})
}

func TestErrorFormatterFallback(t *testing.T) {
	t.Parallel()

	host := router.MustNew()
	app := MustNew(host)

	app.Resource("users", &Actions{
		Show: textHandler("never"),
	}, WithLoader(LoaderFunc(func(ctx context.Context, id string) (any, error) {
		return nil, nil
	})))

	// No error options configured: RFC 9457 problem details by default.
	w := perform(host, http.MethodGet, "/users/1")
	assert.Equal(t, "application/problem+json; charset=utf-8", w.Header().Get("Content-Type"))
}
