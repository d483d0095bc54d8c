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

package scan

import (
	"go/ast"
	"strings"
)

// Directive marks a type declaration as an analysis rule. Only decorated
// types are scanned; arbitrary types never are.
const Directive = "//stateguard:rule"

// IsRule reports whether a type declaration carries the rule directive.
// The directive is recognized in the doc comment of the type specification
// or of its enclosing declaration group.
func IsRule(gen *ast.GenDecl, spec *ast.TypeSpec) bool {
	if hasDirective(spec.Doc) {
		return true
	}

	return gen != nil && hasDirective(gen.Doc)
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, comment := range doc.List {
		if text := comment.Text; text == Directive || strings.HasPrefix(text, Directive+" ") {
			return true
		}
	}

	return false
}
