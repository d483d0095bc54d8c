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

package a

import (
	"go/ast"
	"go/token"
	"go/types"
)

// Markers nested in compound type syntax.

type pair[T any] struct{ value T }

//stateguard:rule
type generics struct {
	pair pair[types.Object] // want `retains session-scoped state 'go/types\.Object'`
}

//stateguard:rule
type compound struct {
	byName  map[string]types.Object // want `Field 'byName' of rule 'compound' retains session-scoped state 'go/types\.Object'`
	updates chan ast.Node           // want `Field 'updates' of rule 'compound' retains session-scoped state 'go/ast\.Node'`
	resolve func() *types.Info      // want `Field 'resolve' of rule 'compound' retains session-scoped state 'go/types\.Info'`
}

// A local type satisfying the ast.Node interface structurally.

type span struct{ pos, end token.Pos }

func (s span) Pos() token.Pos { return s.pos }

func (s span) End() token.Pos { return s.end }

//stateguard:rule
type walker struct {
	cur span // want `Field 'cur' of rule 'walker' retains session-scoped state 'span'`
}

// Only the first offending reference per field is reported by default.

//stateguard:rule
type multi struct {
	refs map[types.Object]ast.Node // want `retains session-scoped state 'go/types\.Object'`
}
