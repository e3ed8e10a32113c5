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
	"testing"

	"github.com/stretchr/testify/assert"

	"rivaas.dev/router"
)

func TestContentTypeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{"json", "application/json"},
		{"XML", "application/xml"},
		{"html", "text/html"},
		{"txt", "text/plain"},
		{"text", "text/plain"},
		{"csv", "text/csv"},
		{"png", "image/png"},
		{"bogus", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, contentTypeFor(tt.format), "format %q", tt.format)
	}
}

func TestRequestFormatRoundtrip(t *testing.T) {
	t.Parallel()

	c := &router.Context{Request: newRequest(http.MethodGet, "/")}
	assert.Empty(t, RequestFormat(c))

	SetFormat(c, "JSON")
	assert.Equal(t, "json", RequestFormat(c), "formats normalize to lower case")

	SetFormat(c, "xml")
	assert.Equal(t, "xml", RequestFormat(c), "later pins replace earlier ones")
}
