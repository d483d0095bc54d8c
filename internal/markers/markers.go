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

// Package markers resolves the session-scoped marker types of one analysis run.
//
// Markers are configured as fully qualified type names and resolved through
// the import graph of the analyzed package. A package that cannot reference a
// marker type cannot store it either, so failed resolution of the built-in
// markers disables the whole check instead of raising an error.
package markers

import (
	"go/types"
	"strings"
)

// Built-in session-scoped marker types.
var builtins = [...]string{
	"go/types.Info",   // per-type-check state bundle
	"go/types.Object", // symbol representation
	"go/ast.Node",     // syntax node
}

// Name is the parsed form of a fully qualified type name.
type Name struct {
	// Path is the import path of the declaring package.
	Path string

	// Ident is the type name within the package.
	Ident string
}

// ParseName splits a fully qualified type name like "go/types.Info" into
// package path and identifier. The second return value is false for names
// without a package qualifier.
func ParseName(fqn string) (Name, bool) {
	i := strings.LastIndexByte(fqn, '.')
	if i <= 0 || i == len(fqn)-1 {
		return Name{}, false
	}

	return Name{Path: fqn[:i], Ident: fqn[i+1:]}, true
}

// Marker is one resolved marker type.
type Marker struct {
	// Type is the marker's named type in the current symbol table.
	Type *types.Named

	// Kind is derived from the resolved type, not from configuration.
	Kind Kind
}

// Set holds the resolved marker types of one analysis session.
// It is immutable after [Resolve].
type Set struct {
	markers []Marker
}

// Structs returns the named types of all struct-kind markers.
func (s Set) Structs() []*types.Named {
	return s.byKind(KindStruct)
}

// Interfaces returns the named types of all interface-kind markers.
func (s Set) Interfaces() []*types.Named {
	return s.byKind(KindInterface)
}

func (s Set) byKind(kind Kind) []*types.Named {
	var named []*types.Named
	for _, m := range s.markers {
		if m.Kind == kind {
			named = append(named, m.Type)
		}
	}

	return named
}

// Resolve resolves the built-in markers plus any extra configured names in
// the import graph of pkg.
//
// It returns false when a built-in marker is not referenceable from pkg; the
// session has nothing to guard then and evaluation is skipped entirely.
// Extra markers that do not resolve are dropped individually, so a stale
// configuration entry does not silently disable the built-in checks.
func Resolve(pkg *types.Package, extras []string) (Set, bool) {
	index := packageIndex(pkg)

	var s Set
	for _, fqn := range builtins {
		if !s.add(index, fqn) {
			return Set{}, false
		}
	}

	for _, fqn := range extras {
		s.add(index, fqn) // best effort
	}

	return s, true
}

func (s *Set) add(index map[string]*types.Package, fqn string) bool {
	name, ok := ParseName(fqn)
	if !ok {
		return false
	}

	p, ok := index[name.Path]
	if !ok {
		return false
	}

	tn, ok := p.Scope().Lookup(name.Ident).(*types.TypeName)
	if !ok {
		return false
	}

	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return false
	}

	kind := KindStruct
	if types.IsInterface(named) {
		kind = KindInterface
	}

	s.markers = append(s.markers, Marker{Type: named, Kind: kind})

	return true
}

// packageIndex maps import paths to packages over the transitive imports of pkg.
func packageIndex(pkg *types.Package) map[string]*types.Package {
	index := map[string]*types.Package{pkg.Path(): pkg}
	queue := []*types.Package{pkg}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, imp := range p.Imports() {
			if _, ok := index[imp.Path()]; ok {
				continue
			}

			index[imp.Path()] = imp
			queue = append(queue, imp)
		}
	}

	return index
}
