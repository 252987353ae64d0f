// Copyright 2026 go-wrap Authors
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

// Package wrap generates MATLAB toolbox bindings for overloaded C++ free
// functions.
//
// For every logical function it emits two synchronized artifacts:
//  1. One dispatch script per originating namespace, "+ns1/+ns2/name.m",
//     that picks an overload by inspecting varargin and forwards to the
//     module's MEX entry point with the overload's registry id.
//  2. One C++ wrapper function per overload, appended to the shared
//     "<module>_wrapper.cpp" stream, that checks arity, unwraps the inputs,
//     calls the qualified C++ function and wraps its result.
//
// The [Registry] threaded through a generation pass ties the two together:
// the id used by a dispatch branch is the index of the wrapper in the
// registry, and the master mexFunction switch routes that id back to the
// wrapper.
package wrap

import (
	"path/filepath"
	"slices"
	"strings"
)

// Qualified is a name inside a (possibly empty) stack of namespaces,
// e.g. gtsam::geometry::Point2. It is immutable once built.
type Qualified struct {
	namespaces []string // outer to inner
	name       string
}

// NewQualified returns name qualified by namespaces, outermost first.
func NewQualified(name string, namespaces ...string) Qualified {
	return Qualified{namespaces: slices.Clone(namespaces), name: name}
}

// ParseQualified splits a C++ style name such as "gtsam::Point2".
func ParseQualified(s string) Qualified {
	parts := strings.Split(strings.TrimSpace(s), "::")
	return NewQualified(parts[len(parts)-1], parts[:len(parts)-1]...)
}

// Name returns the leaf name.
func (q Qualified) Name() string { return q.name }

// Namespaces returns a copy of the namespace stack.
func (q Qualified) Namespaces() []string { return slices.Clone(q.namespaces) }

func (q Qualified) Empty() bool {
	return len(q.namespaces) == 0 && q.name == ""
}

// Equal reports whether q and other denote the same entity. Namespaces are
// compared segment by segment.
func (q Qualified) Equal(other Qualified) bool {
	return q.name == other.name && slices.Equal(q.namespaces, other.namespaces)
}

// QualifiedName joins the namespaces and the name, appending delimiter after
// every namespace. With "" it yields the delimiter-free form used in wrapper
// identifiers ("mfoo"), with "." the MATLAB form and with "::" the C++ form.
func (q Qualified) QualifiedName(delimiter string) string {
	var sb strings.Builder
	for _, ns := range q.namespaces {
		sb.WriteString(ns)
		sb.WriteString(delimiter)
	}
	sb.WriteString(q.name)
	return sb.String()
}

// MatlabName returns the path of the MATLAB file for q below toolboxPath,
// i.e. "toolboxPath/+ns1/+ns2/name.m".
func (q Qualified) MatlabName(toolboxPath string) string {
	return filepath.Join(q.packageDir(toolboxPath), q.name+".m")
}

func (q Qualified) packageDir(toolboxPath string) string {
	elems := []string{toolboxPath}
	for _, ns := range q.namespaces {
		elems = append(elems, "+"+ns)
	}
	return filepath.Join(elems...)
}

func (q Qualified) String() string { return q.QualifiedName("::") }

// compareNamespaces orders namespace stacks segment by segment, so that
// ["ab","c"] and ["a","bc"] never collide.
func compareNamespaces(a, b any) int {
	return slices.Compare(a.([]string), b.([]string))
}
