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
	"mime"
	"strings"

	"rivaas.dev/router"
)

// formatContentTypes maps short format names to media types, matching the
// host's Accepts short-name vocabulary for the formats a resource layer
// actually serves.
var formatContentTypes = map[string]string{
	"json": "application/json",
	"xml":  "application/xml",
	"html": "text/html",
	"text": "text/plain",
	"txt":  "text/plain",
	"js":   "application/javascript",
	"csv":  "text/csv",
}

// contentTypeFor resolves the media type for a short format name, falling
// back to the platform extension table. Unknown formats resolve to "".
func contentTypeFor(format string) string {
	f := strings.ToLower(format)
	if ct, ok := formatContentTypes[f]; ok {
		return ct
	}
	return mime.TypeByExtension("." + f)
}

type formatKey struct{}

// SetFormat pins the response format for the remainder of the request,
// overriding the resource default. The pipeline calls it for extensions
// captured from the id segment; middleware can call it to force a
// representation before the action dispatches.
func SetFormat(c *router.Context, format string) {
	ctx := context.WithValue(c.Request.Context(), formatKey{}, strings.ToLower(format))
	c.Request = c.Request.WithContext(ctx)
}

// RequestFormat reports the format pinned on the request, or "" when none
// has been resolved yet.
func RequestFormat(c *router.Context) string {
	f, _ := c.Request.Context().Value(formatKey{}).(string)
	return f
}
