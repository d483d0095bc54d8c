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

// Package scan evaluates rule type declarations against a resolved marker set.
//
// The scanner is a directly invokable entry point: it needs type information
// and a marker set, but no running analysis driver, so it can be exercised
// from tests without simulating a host.
package scan

import (
	"context"
	"go/ast"
	"go/types"

	"fillmore-labs.com/stateguard/internal/fieldref"
	"fillmore-labs.com/stateguard/internal/markers"
	"fillmore-labs.com/stateguard/internal/typegraph"
)

// Scanner evaluates type declarations of one analysis session.
//
// All state is read-only after construction, so a single Scanner may be
// shared by concurrent evaluations.
type Scanner struct {
	info    *types.Info
	pkg     *types.Package
	graph   typegraph.Graph[*types.Named]
	markers typegraph.Markers[*types.Named]
	allRefs bool
}

// New creates a [Scanner] for one analysis session over the resolved marker
// set. With allRefs set, every offending type reference of a field is
// reported instead of only the first one.
func New(info *types.Info, pkg *types.Package, set markers.Set, allRefs bool) *Scanner {
	ids := append(set.Structs(), set.Interfaces()...)

	return &Scanner{
		info:    info,
		pkg:     pkg,
		graph:   typegraph.NewTypesGraph(set.Interfaces()),
		markers: typegraph.NewMarkers(ids...),
		allRefs: allRefs,
	}
}

// Scan evaluates one type declaration and returns the findings for its
// fields.
//
// Declarations without the rule [Directive] and non-struct declarations
// yield no findings. Cancellation is checked at field granularity; on
// cancellation no partial findings are returned.
func (s *Scanner) Scan(ctx context.Context, gen *ast.GenDecl, spec *ast.TypeSpec) ([]Finding, error) {
	if !IsRule(gen, spec) {
		return nil, nil
	}

	st, ok := spec.Type.(*ast.StructType)
	if !ok || st.Fields == nil {
		return nil, nil
	}

	var findings []Finding

	for _, field := range st.Fields.List {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		findings = append(findings, s.scanField(spec.Name.Name, field)...)
	}

	return findings, nil
}

// scanField checks every type reference of one field declaration against the
// marker set. Unless allRefs is configured, the first offending reference
// settles the field.
func (s *Scanner) scanField(rule string, field *ast.Field) []Finding {
	var findings []Finding

	for expr := range fieldref.All(field.Type) {
		tv, ok := s.info.Types[expr]
		if !ok || !tv.IsType() {
			continue // unresolved reference, keep scanning
		}

		named := typegraph.NamedOf(tv.Type)
		if named == nil {
			continue
		}

		if _, ok := typegraph.Match(s.graph, named, s.markers); !ok {
			continue
		}

		findings = append(findings, Finding{
			Names: fieldNames(field),
			Rule:  rule,
			Type:  types.TypeString(tv.Type, types.RelativeTo(s.pkg)),
			Pos:   expr.Pos(),
			End:   expr.End(),
		})

		if !s.allRefs {
			break
		}
	}

	return findings
}

// fieldNames collects the declared names of a field, skipping the blank
// identifier. The result is empty for embedded fields.
func fieldNames(field *ast.Field) []string {
	var names []string
	for _, id := range field.Names {
		if id.Name == "_" {
			continue // blank identifier
		}

		names = append(names, id.Name)
	}

	return names
}
