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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/stateguard/internal/astutil"
	"fillmore-labs.com/stateguard/internal/config"
	"fillmore-labs.com/stateguard/internal/markers"
	"fillmore-labs.com/stateguard/internal/report"
	"fillmore-labs.com/stateguard/internal/scan"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the stateguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("stateguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "StateGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Resolve the marker set once per pass. A package that cannot reference
	// the marker types cannot retain them either, so there is nothing to do.
	set, ok := markers.Resolve(p.Pkg, r.Markers)
	if !ok {
		return nil, nil
	}

	scanner := scan.New(p.TypesInfo, p.Pkg, set, r.Behavior.Enabled(config.ReportAllRefs))

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		// Loop over all type declarations in this file, including local ones
		for c := range f.Preorder((*ast.GenDecl)(nil)) {
			gen := c.Node().(*ast.GenDecl)

			if gen.Tok != token.TYPE {
				continue
			}

			// Skip declarations with nolint comment
			if gen.Doc != nil && astutil.CommentHasNoLint(gen.Doc.List[len(gen.Doc.List)-1]) {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				findings, err := scanner.Scan(ctx, gen, ts)
				if err != nil {
					return nil, err
				}

				report.Findings(p, currentFile, findings)
			}
		}
	}

	return nil, nil
}
