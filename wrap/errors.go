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

import "errors"

var (
	// ErrOverloadNameMismatch is returned when an overload is added to a
	// function whose established name differs from the overload's leaf name.
	ErrOverloadNameMismatch = errors.New("overload name mismatch")

	// ErrEmptyName is returned for overloads without a leaf name.
	ErrEmptyName = errors.New("empty function name")

	// ErrDuplicateWrapper is returned when a generation pass would register
	// the same wrapper identifier twice. Wrapper identifiers concatenate the
	// namespaces without a delimiter, so ["ab","c"] and ["a","bc"] clash.
	ErrDuplicateWrapper = errors.New("duplicate wrapper identifier")

	// ErrUnknownType is returned when a class return type has no entry in
	// the TypeAttributesTable.
	ErrUnknownType = errors.New("unknown type")

	// ErrNamespaceNotDir is returned when a namespace package folder
	// already exists as a regular file.
	ErrNamespaceNotDir = errors.New("namespace path exists and is not a directory")

	ErrAlreadyEmitted = errors.New("file writer already emitted")

	// ErrToolboxLocked is returned when another generation pass holds the
	// toolbox lock.
	ErrToolboxLocked = errors.New("toolbox is locked by another generation pass")
)
