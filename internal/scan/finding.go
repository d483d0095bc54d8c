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

import "go/token"

// Finding records one field of a rule type that retains session-scoped state.
// It is immutable once produced.
type Finding struct {
	// Names are the declared field names; empty for an embedded field.
	Names []string

	// Rule is the name of the rule type declaring the field.
	Rule string

	// Type is the display name of the offending type, qualified relative to
	// the analyzed package.
	Type string

	// Pos and End span the type reference that triggered the finding. For a
	// nested occurrence like `[]types.Object` this is the nested syntax, not
	// the whole field type.
	Pos, End token.Pos
}
