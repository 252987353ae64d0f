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

import "fmt"

// TypeAttributes are the per-class facts needed to box a returned object.
type TypeAttributes struct {
	IsVirtual bool
}

// TypeAttributesTable maps a C++ qualified class name ("gtsam::Point2")
// to its attributes.
type TypeAttributesTable map[string]TypeAttributes

// At looks up cppType.
func (t TypeAttributesTable) At(cppType string) (TypeAttributes, error) {
	ta, ok := t[cppType]
	if !ok {
		return TypeAttributes{}, fmt.Errorf("class %s: %w", cppType, ErrUnknownType)
	}
	return ta, nil
}
