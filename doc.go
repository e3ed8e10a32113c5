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

// Package resource provides resource-oriented routing conventions on top
// of rivaas.dev/router.
//
// A resource maps the conventional REST action names onto HTTP verbs and
// paths, so one declaration wires a full CRUD surface:
//
//	action   method  path
//	index    GET     /users
//	new      GET     /users/new
//	create   POST    /users
//	show     GET     /users/:user
//	edit     GET     /users/:user/edit
//	update   PUT     /users/:user
//	patch    PATCH   /users/:user
//	destroy  DELETE  /users/:user
//
// The id parameter derives from the resource name by singularization
// (users becomes :user, categories becomes :category) and can be
// overridden per resource.
//
// # Key Features
//
//   - Conventional action table with per-action opt-in and Only restriction
//   - Nesting: mount one resource under another's member path
//   - Auto-loading: resolve id parameters into entities before the action
//   - Format dispatch per action, with extension capture and Accept negotiation
//   - Param hooks shared across routes, in the host's handler-chain model
//   - Error responses rendered through rivaas.dev/errors formatters
//
// # Quick Start
//
//	package main
//
//	import (
//	    "net/http"
//
//	    "rivaas.dev/resource"
//	    "rivaas.dev/router"
//	)
//
//	func main() {
//	    r := router.MustNew()
//	    app := resource.MustNew(r)
//
//	    app.Resource("users", &resource.Actions{
//	        Index: resource.Plain(func(c *router.Context) {
//	            c.JSON(http.StatusOK, listUsers())
//	        }),
//	        Show: resource.Plain(func(c *router.Context) {
//	            c.JSON(http.StatusOK, resource.Loaded(c, "user"))
//	        }),
//	    }, resource.WithLoader(resource.LoaderFunc(findUser)))
//
//	    http.ListenAndServe(":8080", r)
//	}
//
// # Registration Model
//
// Resources register at the host as they are declared, extended and
// nested. Registration is a startup operation: the host freezes its route
// tree when serving begins. Nesting re-registers the child's routes under
// the parent's member path; the host keeps the earlier bindings, which
// continue to serve alongside the nested ones.
package resource
