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

package analyzer_test

import (
	"flag"
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/stateguard/analyzer"
	"fillmore-labs.com/stateguard/internal/config"
)

func TestBehaviorValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Flags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.ReportAllRefs,
			args:    []string{"-generated"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.IncludeGenerated,
			args:    []string{"-generated=false"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Behavior
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.IncludeGenerated
			fv := NewBehaviorValue(&flags, value)
			fs.Var(fv, "generated", "check generated files")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("IncludeGenerated enabled = %v, want %v", flags.Enabled(value), tt.want)
			}
		})
	}
}

func TestMarkersValue(t *testing.T) {
	t.Parallel()

	var names []string

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(NewMarkersValue(&names), "markers", "additional marker types")

	args := []string{
		"-markers", "golang.org/x/tools/go/analysis.Pass, go/token.FileSet",
		"-markers", "go/types.Scope",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"golang.org/x/tools/go/analysis.Pass", "go/token.FileSet", "go/types.Scope"}
	if !slices.Equal(names, want) {
		t.Errorf("Markers = %v, want %v", names, want)
	}
}

func TestMarkersValueInvalid(t *testing.T) {
	t.Parallel()

	var names []string

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewMarkersValue(&names), "markers", "additional marker types")

	if err := fs.Parse([]string{"-markers", "NoQualifier"}); err == nil {
		t.Error("Expected an error for a marker name without package qualifier")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Behavior
	flags.Set(config.IncludeGenerated, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewBehaviorValue(&flags, config.IncludeGenerated)
	fs.Var(fv, "generated", "check generated files")

	const expectedUsage = `
  -generated
    	check generated files (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
