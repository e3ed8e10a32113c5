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

import "errors"

var (
	// ErrNilRouter indicates that the facade was constructed without a host router.
	ErrNilRouter = errors.New("host router is nil")

	// ErrEntityNotFound indicates that a loader resolved an id parameter to no entity.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrNotAcceptable indicates that format dispatch found no handler acceptable to the client.
	ErrNotAcceptable = errors.New("no acceptable format")

	// ErrMissingRouteParameter indicates that URL generation was given no value for a path parameter.
	ErrMissingRouteParameter = errors.New("missing required parameter")

	// ErrUnknownAction indicates that the resource has no route for the named action.
	ErrUnknownAction = errors.New("unknown action")
)
