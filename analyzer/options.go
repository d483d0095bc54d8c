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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/stateguard/internal/config"
	"fillmore-labs.com/stateguard/internal/run"
)

// Option configures specific behavior of a [New] stateguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithAllRefs is an [Option] to report every offending type reference within
// a field declaration instead of only the first one.
func WithAllRefs(allRefs bool) Option { return allRefsOption{allRefs: allRefs} }

type allRefsOption struct{ allRefs bool }

func (o allRefsOption) apply(r *run.Options) {
	r.Behavior.Set(config.ReportAllRefs, o.allRefs)
}

func (o allRefsOption) LogAttr() slog.Attr {
	return slog.Bool("all-refs", o.allRefs)
}

// WithMarkers is an [Option] to register additional fully qualified marker
// type names, like `golang.org/x/tools/go/analysis.Pass`. Whether a marker
// matches along the embedding chain or as a satisfied interface is decided
// when the name is resolved.
func WithMarkers(names ...string) Option { return markersOption{names: names} }

type markersOption struct{ names []string }

func (o markersOption) apply(r *run.Options) {
	r.Markers = append(r.Markers, o.names...)
}

func (o markersOption) LogAttr() slog.Attr {
	return slog.Any("markers", o.names)
}
