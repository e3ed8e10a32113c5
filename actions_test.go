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

func TestHandlerZeroValue(t *testing.T) {
	t.Parallel()

	var h Handler
	assert.True(t, h.IsZero())
	assert.False(t, Plain(func(*router.Context) {}).IsZero())
	assert.False(t, ByFormat(map[string]router.HandlerFunc{
		"json": func(*router.Context) {},
	}).IsZero())
}

func TestPlainNil(t *testing.T) {
	t.Parallel()

	assert.True(t, Plain(nil).IsZero())
}

func TestByFormat(t *testing.T) {
	t.Parallel()

	h := ByFormat(map[string]router.HandlerFunc{
		"XML":     func(*router.Context) {},
		"json":    func(*router.Context) {},
		"html":    nil,
		"default": func(*router.Context) {},
	})

	assert.Equal(t, []string{"json", "xml"}, h.keys, "keys fold case, drop nils, sort, and exclude the default entry")
	assert.NotNil(t, h.fallback)
	assert.Contains(t, h.formats, "xml")
	assert.NotContains(t, h.formats, "html")
	assert.NotContains(t, h.formats, "default")
}

func TestByFormatOnlyDefault(t *testing.T) {
	t.Parallel()

	h := ByFormat(map[string]router.HandlerFunc{
		"default": func(*router.Context) {},
	})
	assert.False(t, h.IsZero())
	assert.Empty(t, h.keys)
}

func TestCanonicalVerb(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		verb   string
		want   string
		wantOK bool
	}{
		{"lowercase get", "get", http.MethodGet, true},
		{"uppercase delete", "DELETE", http.MethodDelete, true},
		{"del alias", "del", http.MethodDelete, true},
		{"mixed case", "PaTcH", http.MethodPatch, true},
		{"destroy is an action name, not a verb", "destroy", "", false},
		{"unknown", "trace", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := canonicalVerb(tt.verb)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
