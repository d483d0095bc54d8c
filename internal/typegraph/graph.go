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

// Package typegraph implements reachability over a read-only type graph.
//
// The graph is injected through the [Graph] interface, so the walker can be
// backed by [go/types] during analysis and by an in-memory fixture in tests.
// Nodes are compared by identity, never by display name.
package typegraph

// Graph is a read-only view of a type graph.
//
// Both methods must be cheap: proportional to the number of directly
// declared edges, without recomputing the whole hierarchy per call.
type Graph[N comparable] interface {
	// Bases returns the directly embedded concrete types of t.
	Bases(t N) []N

	// Interfaces returns the interface types directly satisfied by t.
	Interfaces(t N) []N
}

// Markers is a set of type identities considered session-scoped.
//
// Struct markers are reached along the embedding chain, interface markers
// through the satisfied-interface closure.
type Markers[N comparable] struct {
	ids map[N]struct{}
}

// NewMarkers creates a [Markers] set from the given node identities.
func NewMarkers[N comparable](ids ...N) Markers[N] {
	m := Markers[N]{ids: make(map[N]struct{}, len(ids))}
	for _, id := range ids {
		m.ids[id] = struct{}{}
	}

	return m
}

// Empty reports whether the marker set contains no identities.
func (m Markers[N]) Empty() bool {
	return len(m.ids) == 0
}

func (m Markers[N]) matches(n N) bool {
	_, ok := m.ids[n]

	return ok
}

// Match walks root, its transitive embedding closure and the
// satisfied-interface closure of every visited node, and returns the first
// node contained in the marker set. It short-circuits on the first hit and
// tolerates cyclic fixture graphs.
func Match[N comparable](g Graph[N], root N, m Markers[N]) (N, bool) {
	var zero N
	if m.Empty() {
		return zero, false
	}

	visited := make(map[N]struct{})
	queue := []N{root}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if _, ok := visited[n]; ok {
			continue
		}
		visited[n] = struct{}{}

		if m.matches(n) {
			return n, true
		}

		queue = append(queue, g.Bases(n)...)
		queue = append(queue, g.Interfaces(n)...)
	}

	return zero, false
}
