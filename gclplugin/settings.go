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

package gclplugin

import stateguard "fillmore-labs.com/stateguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// AllRefs reports every offending type reference per field.
	AllRefs *bool `json:"all-refs,omitzero"`
	// Markers lists additional fully qualified marker type names.
	Markers []string `json:"markers,omitzero"`
}

// Options converts [Settings] into a list of [stateguard.Option] for the stateguard analyzer.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() []stateguard.Option {
	var opts []stateguard.Option

	opts = appendOption(opts, s.AllRefs, stateguard.WithAllRefs)

	if len(s.Markers) > 0 {
		opts = append(opts, stateguard.WithMarkers(s.Markers...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [stateguard.Option] list.
func appendOption[T any](opts []stateguard.Option, value *T, constructor func(T) stateguard.Option) []stateguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
