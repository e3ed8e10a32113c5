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

// Test helpers shared across the resource tests.

import (
	"net/http"
	"net/http/httptest"

	"rivaas.dev/router"
)

// textHandler responds 200 with a fixed body.
func textHandler(body string) Handler {
	return Plain(func(c *router.Context) {
		c.String(http.StatusOK, body)
	})
}

// textFunc is the bare router.HandlerFunc form of textHandler, for
// dispatch tables.
func textFunc(body string) router.HandlerFunc {
	return func(c *router.Context) {
		c.String(http.StatusOK, body)
	}
}

// paramHandler responds 200 with the effective value of one path
// parameter.
func paramHandler(name string) Handler {
	return Plain(func(c *router.Context) {
		c.String(http.StatusOK, Param(c, name))
	})
}

// perform runs one request against the host and returns the recorder.
func perform(r *router.Router, method, target string) *httptest.ResponseRecorder {
	return performAccept(r, method, target, "")
}

// performAccept is perform with an Accept header.
func performAccept(r *router.Router, method, target, accept string) *httptest.ResponseRecorder {
	req := newRequest(method, target)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return recordRequest(r, req)
}

// newRequest builds a test request for callers that set their own headers.
func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// recordRequest serves one prepared request and returns the recorder.
func recordRequest(r *router.Router, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// testUser is the entity loaded in loader tests.
type testUser struct {
	ID   string
	Name string
}
