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

package typegraph

import "go/types"

// TypesGraph adapts [go/types] to the [Graph] interface.
//
// Nodes are named types canonicalized to their generic origin, so identity
// comparison works across instantiations. Go declares no interface
// implementations, so the directly satisfied interface set is computed
// against a fixed list of candidate interfaces.
type TypesGraph struct {
	candidates []*types.Named
}

// NewTypesGraph creates a [TypesGraph] whose [TypesGraph.Interfaces] method
// tests satisfaction against the given candidate interface types.
func NewTypesGraph(candidates []*types.Named) *TypesGraph {
	return &TypesGraph{candidates: candidates}
}

// Bases returns the named types of the directly embedded concrete fields of t.
func (g *TypesGraph) Bases(t *types.Named) []*types.Named {
	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	var bases []*types.Named
	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}

		if base := NamedOf(field.Type()); base != nil && !types.IsInterface(base) {
			bases = append(bases, base)
		}
	}

	return bases
}

// Interfaces returns the candidate interfaces satisfied by t or *t.
// Method promotion through embedded fields is covered by [types.Implements],
// so the result already reflects the type's ancestors.
func (g *TypesGraph) Interfaces(t *types.Named) []*types.Named {
	var satisfied []*types.Named

	for _, candidate := range g.candidates {
		if candidate == t {
			continue // identity is handled by the walker
		}

		iface, ok := candidate.Underlying().(*types.Interface)
		if !ok || iface.Empty() {
			continue
		}

		if types.Implements(t, iface) || types.Implements(types.NewPointer(t), iface) {
			satisfied = append(satisfied, candidate)
		}
	}

	return satisfied
}

// NamedOf unwraps aliases, pointers and instantiations down to the origin
// named type. It returns nil for types without a named core, like basic
// types, slices or maps.
func NamedOf(t types.Type) *types.Named {
	switch t := types.Unalias(t).(type) {
	case *types.Named:
		return t.Origin()

	case *types.Pointer:
		return NamedOf(t.Elem())

	default:
		return nil
	}
}
