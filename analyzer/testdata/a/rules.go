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

// Basic marker detection in decorated rule types.

//stateguard:rule
type symbolCache struct {
	info    *types.Info    // want `Field 'info' of rule 'symbolCache' retains session-scoped state 'go/types\.Info'`
	objects []types.Object // want `Field 'objects' of rule 'symbolCache' retains session-scoped state 'go/types\.Object'`
	root    ast.Node       // want `Field 'root' of rule 'symbolCache' retains session-scoped state 'go/ast\.Node'`
	fset    *token.FileSet
	name    string
}

type helperBase struct{ types.Info }

type helperMid struct{ helperBase }

// Reachability through the embedding chain, at depth.

//stateguard:rule
type derived struct {
	state helperMid // want `retains session-scoped state 'helperMid'`
}

// Embedded marker state.

//stateguard:rule
type embedder struct {
	types.Info // want `Rule 'embedder' embeds session-scoped state 'go/types\.Info'`
}

// Multiple names in one field declaration yield a single finding.

//stateguard:rule
type listed struct {
	a, b types.Object // want `Fields 'a' and 'b' of rule 'listed' retain session-scoped state 'go/types\.Object'`
}

// Undecorated types are never scanned.

type unmarked struct {
	info *types.Info
}

// Suppression with an inline nolint comment.

//stateguard:rule
type silenced struct {
	root ast.Node //nolint:stateguard
	name string
}
