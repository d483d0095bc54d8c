// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package typegraph_test

import (
	"testing"

	. "fillmore-labs.com/stateguard/internal/typegraph"
)

// fixture is an in-memory type graph with explicit edges.
type fixture struct {
	bases  map[string][]string
	ifaces map[string][]string
	calls  int
}

func (g *fixture) Bases(n string) []string {
	g.calls++

	return g.bases[n]
}

func (g *fixture) Interfaces(n string) []string {
	g.calls++

	return g.ifaces[n]
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bases   map[string][]string
		ifaces  map[string][]string
		root    string
		markers []string
		want    string
		wantOK  bool
	}{
		{
			name:    "Direct",
			root:    "Info",
			markers: []string{"Info"},
			want:    "Info",
			wantOK:  true,
		},
		{
			name: "EmbeddingChain",
			bases: map[string][]string{
				"Top": {"Mid"},
				"Mid": {"Base"},
			},
			root:    "Top",
			markers: []string{"Base"},
			want:    "Base",
			wantOK:  true,
		},
		{
			name: "InterfaceViaAncestor",
			bases: map[string][]string{
				"Walker": {"Cursor"},
			},
			ifaces: map[string][]string{
				"Cursor": {"Node"},
			},
			root:    "Walker",
			markers: []string{"Node"},
			want:    "Node",
			wantOK:  true,
		},
		{
			name: "NoMatch",
			bases: map[string][]string{
				"Top": {"Mid"},
				"Mid": {"Base"},
			},
			root:    "Top",
			markers: []string{"Other"},
		},
		{
			name: "Cycle",
			bases: map[string][]string{
				"A": {"B"},
				"B": {"A"},
			},
			root:    "A",
			markers: []string{"Object"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := &fixture{bases: tt.bases, ifaces: tt.ifaces}

			got, ok := Match[string](g, tt.root, NewMarkers(tt.markers...))
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Match(%s) = (%q, %v), want (%q, %v)", tt.root, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMatchShortCircuit(t *testing.T) {
	t.Parallel()

	g := &fixture{bases: map[string][]string{"Top": {"Mid"}, "Mid": {"Base"}}}

	// A match at the root must not expand any edges.
	if _, ok := Match[string](g, "Top", NewMarkers("Top")); !ok {
		t.Fatal("Expected root match")
	}

	if g.calls != 0 {
		t.Errorf("Root match expanded %d edges, want 0", g.calls)
	}
}

func TestMatchEmptyMarkers(t *testing.T) {
	t.Parallel()

	g := &fixture{}

	if _, ok := Match[string](g, "Top", NewMarkers[string]()); ok {
		t.Error("Empty marker set must never match")
	}

	if g.calls != 0 {
		t.Errorf("Empty marker set expanded %d edges, want 0", g.calls)
	}
}
