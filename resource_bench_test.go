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
	"net/http/httptest"
	"testing"

	"rivaas.dev/router"
)

func benchActions() *Actions {
	return &Actions{
		Index:   textHandler("index"),
		New:     textHandler("new"),
		Create:  textHandler("create"),
		Show:    textHandler("show"),
		Edit:    textHandler("edit"),
		Update:  textHandler("update"),
		Patch:   textHandler("patch"),
		Destroy: textHandler("destroy"),
	}
}

// BenchmarkBuildPath measures canonical pattern composition.
func BenchmarkBuildPath(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		buildPath("/", "users", ":user", "edit")
	}
}

// BenchmarkBuildPathNested measures composition under a nested base.
func BenchmarkBuildPathNested(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		buildPath("/forums/:forum/posts/:post/", "comments", ":comment", "")
	}
}

// BenchmarkResourceRegistration measures wiring the full default action set.
func BenchmarkResourceRegistration(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		host := router.MustNew()
		app := MustNew(host)
		app.Resource("users", benchActions())
	}
}

// BenchmarkShowDispatch measures one member request through the pipeline.
func BenchmarkShowDispatch(b *testing.B) {
	host := router.MustNew()
	app := MustNew(host)
	app.Resource("users", benchActions())

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	w := httptest.NewRecorder()
	host.ServeHTTP(w, req)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		w.Body.Reset()
		host.ServeHTTP(w, req)
	}
}

// BenchmarkShowDispatchExtension measures a request with a format extension.
func BenchmarkShowDispatchExtension(b *testing.B) {
	host := router.MustNew()
	app := MustNew(host)
	app.Resource("users", benchActions())

	req := httptest.NewRequest(http.MethodGet, "/users/42.json", nil)
	w := httptest.NewRecorder()
	host.ServeHTTP(w, req)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		w.Body.Reset()
		host.ServeHTTP(w, req)
	}
}

// BenchmarkURLFor measures reverse URL construction.
func BenchmarkURLFor(b *testing.B) {
	host := router.MustNew()
	app := MustNew(host)
	users := app.Resource("users", benchActions())
	params := map[string]string{"user": "42"}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		if _, err := users.URLFor("show", params); err != nil {
			b.Fatal(err)
		}
	}
}
