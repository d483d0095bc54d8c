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

// Package analyzer implements the stateguard static analysis pass.
//
// # Overview
//
// StateGuard detects analysis rules that retain session-scoped state in
// long-lived fields. A rule value typically outlives a single analysis
// session, but values like [go/types.Info], [go/types.Object] or
// [go/ast.Node] are only meaningful within the session that produced them.
// Storing them in a field leaks state from one session into the next.
//
// # Example
//
// Flagged:
//
//	//stateguard:rule
//	type unusedParams struct {
//	    info *types.Info       // retains per-session type information
//	    seen []types.Object    // retains per-session symbols
//	}
//
// Instead, pass session values as arguments:
//
//	//stateguard:rule
//	type unusedParams struct {
//	    reportExported bool    // configuration is fine
//	}
//
//	func (u *unusedParams) check(info *types.Info, decl ast.Node) { ... }
//
// # Scope
//
// Only struct types decorated with the `//stateguard:rule` directive are
// scanned. A field is flagged when any type written in its declaration,
// including nested generic type arguments, reaches a marker type through
// the embedding chain or satisfies a marker interface.
//
// The built-in markers are [go/types.Info], [go/types.Object] and
// [go/ast.Node]; additional markers can be configured with the -markers
// flag, for example `golang.org/x/tools/go/analysis.Pass`.
package analyzer
