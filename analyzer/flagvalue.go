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
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"fillmore-labs.com/stateguard/internal/config"
	"fillmore-labs.com/stateguard/internal/markers"
)

// ErrInvalidMarker is returned for marker names without a package qualifier.
var ErrInvalidMarker = errors.New("invalid marker type name")

// NewBehaviorValue returns a boolean [flag.Getter] bound to one behavior flag.
func NewBehaviorValue(flags *config.Behavior, value config.Flags) flag.Getter {
	return boolValue[config.Flags, *config.Behavior]{flags: flags, value: value}
}

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "full", "Full":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// NewMarkersValue returns a [flag.Value] that accumulates fully qualified
// marker type names from comma-separated lists.
func NewMarkersValue(names *[]string) flag.Value {
	return markersValue{names: names}
}

type markersValue struct {
	names *[]string
}

// Set implements [flag.Value].
func (v markersValue) Set(s string) error {
	for name := range strings.SplitSeq(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if _, ok := markers.ParseName(name); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidMarker, name)
		}

		*v.names = append(*v.names, name)
	}

	return nil
}

// String implements [flag.Value].
func (v markersValue) String() string {
	if v.names == nil {
		return ""
	}

	return strings.Join(*v.names, ",")
}
