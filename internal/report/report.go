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

package report

import (
	"fmt"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/stateguard/internal/astutil"
	"fillmore-labs.com/stateguard/internal/scan"
)

// Findings converts scan findings into diagnostics and emits them to the
// analysis framework. Findings on lines with a `//nolint:stateguard` comment
// are suppressed.
func Findings(p *analysis.Pass, currentFile astutil.CurrentFile, findings []scan.Finding) {
	for _, finding := range findings {
		if currentFile.NoLintComment(finding.Pos) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:     finding.Pos,
			End:     finding.End,
			Message: message(finding),
		})
	}
}

// message constructs the diagnostic message for one finding.
func message(f scan.Finding) string {
	if len(f.Names) == 0 {
		return fmt.Sprintf("Rule '%s' embeds session-scoped state '%s' (st:emb)", f.Rule, f.Type)
	}

	format := "Field %s of rule '%s' retains session-scoped state '%s' (st:fld)"
	if len(f.Names) > 1 {
		format = "Fields %s of rule '%s' retain session-scoped state '%s' (st:fld)"
	}

	return fmt.Sprintf(format, concatNames(f.Names), f.Rule, f.Type)
}

// concatNames formats a list of field names into a human-readable string (e.g., "'a', 'b' and 'c'").
func concatNames(names []string) string {
	var allNames strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteByte('\'')   // ignore error
		allNames.WriteString(name) // ignore error
		allNames.WriteByte('\'')   // ignore error
	}

	return allNames.String()
}
