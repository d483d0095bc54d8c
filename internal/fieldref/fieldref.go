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

// Package fieldref enumerates the type references written in a declaration.
package fieldref

import (
	"go/ast"
	"iter"
)

// All yields every type reference written within the type expression of a
// declaration, outermost first. It descends into pointers, arrays, maps,
// channels, function signatures, anonymous structs and interfaces, and the
// type arguments of generic instantiations, so a marker type nested like
// `[]types.Object` or `Pair[types.Object]` still surfaces with the position
// of the nested syntax.
//
// The sequence is finite and restartable: re-scanning the same expression
// yields the same references in the same order.
func All(expr ast.Expr) iter.Seq[ast.Expr] {
	return func(yield func(ast.Expr) bool) {
		walk(expr, yield)
	}
}

// walk reports expr and its nested type references to yield,
// returning false when iteration stopped early.
func walk(expr ast.Expr, yield func(ast.Expr) bool) bool {
	switch e := expr.(type) {
	case nil:
		return true

	case *ast.Ident, *ast.SelectorExpr:
		return yield(expr)

	case *ast.ParenExpr:
		return walk(e.X, yield)

	case *ast.StarExpr:
		return walk(e.X, yield)

	case *ast.ArrayType:
		return walk(e.Elt, yield)

	case *ast.Ellipsis:
		return walk(e.Elt, yield)

	case *ast.MapType:
		return walk(e.Key, yield) && walk(e.Value, yield)

	case *ast.ChanType:
		return walk(e.Value, yield)

	case *ast.IndexExpr:
		// Generic instantiation: the instance covers the generic type itself.
		return yield(e) && walk(e.Index, yield)

	case *ast.IndexListExpr:
		if !yield(e) {
			return false
		}

		for _, index := range e.Indices {
			if !walk(index, yield) {
				return false
			}
		}

		return true

	case *ast.FuncType:
		return walkFieldList(e.TypeParams, yield) &&
			walkFieldList(e.Params, yield) &&
			walkFieldList(e.Results, yield)

	case *ast.StructType:
		return walkFieldList(e.Fields, yield)

	case *ast.InterfaceType:
		return walkFieldList(e.Methods, yield)

	default:
		return true // not a type reference
	}
}

func walkFieldList(list *ast.FieldList, yield func(ast.Expr) bool) bool {
	if list == nil {
		return true
	}

	for _, field := range list.List {
		if !walk(field.Type, yield) {
			return false
		}
	}

	return true
}
