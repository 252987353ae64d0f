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

package wrap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifiedName(t *testing.T) {
	tests := []struct {
		name      string
		q         Qualified
		dotted    string
		unique    string
		cpp       string
		matlabRel string
	}{
		{"global", NewQualified("foo"), "foo", "foo", "foo", "foo.m"},
		{"one", NewQualified("foo", "m"), "m.foo", "mfoo", "m::foo", "+m/foo.m"},
		{"nested", NewQualified("Point2", "gtsam", "geometry"), "gtsam.geometry.Point2", "gtsamgeometryPoint2", "gtsam::geometry::Point2", "+gtsam/+geometry/Point2.m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dotted, tt.q.QualifiedName("."))
			assert.Equal(t, tt.unique, tt.q.QualifiedName(""))
			assert.Equal(t, tt.cpp, tt.q.QualifiedName("::"))
			assert.Equal(t, filepath.Join("toolbox", filepath.FromSlash(tt.matlabRel)), tt.q.MatlabName("toolbox"))
		})
	}
}

func TestParseQualified(t *testing.T) {
	q := ParseQualified(" gtsam::noiseModel::Base ")
	assert.Equal(t, "Base", q.Name())
	assert.Equal(t, []string{"gtsam", "noiseModel"}, q.Namespaces())
	assert.True(t, q.Equal(NewQualified("Base", "gtsam", "noiseModel")))

	assert.Empty(t, ParseQualified("double").Namespaces())
	assert.True(t, ParseQualified("").Empty())
}

func TestQualifiedImmutable(t *testing.T) {
	ns := []string{"a", "b"}
	q := NewQualified("f", ns...)
	ns[0] = "changed"
	assert.Equal(t, "a::b::f", q.String())

	got := q.Namespaces()
	got[1] = "changed"
	assert.Equal(t, "a::b::f", q.String())
}

func TestQualifiedEqualComparesSegments(t *testing.T) {
	ab := NewQualified("f", "ab", "c")
	a := NewQualified("f", "a", "bc")

	// Same delimiter-free rendering, different entities.
	assert.Equal(t, ab.QualifiedName(""), a.QualifiedName(""))
	assert.False(t, ab.Equal(a))
	assert.NotZero(t, compareNamespaces([]string{"ab", "c"}, []string{"a", "bc"}))
	assert.Zero(t, compareNamespaces([]string(nil), []string{}))
}
