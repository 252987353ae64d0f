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
	"fmt"
	"slices"
)

// Registry is the ordered list of wrapper functions generated in one pass.
// A wrapper's index is its id: dispatch scripts pass it to the MEX entry
// point, whose switch routes it back to the wrapper.
type Registry struct {
	names []string
	ids   map[string]int
}

func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]int)}
}

// Add appends name and returns its id.
func (r *Registry) Add(name string) (int, error) {
	if id, ok := r.ids[name]; ok {
		return 0, fmt.Errorf("register %s: %w (already id %d)", name, ErrDuplicateWrapper, id)
	}
	id := len(r.names)
	r.names = append(r.names, name)
	r.ids[name] = id
	return id, nil
}

// Len returns the number of registered wrappers, which is also the id the
// next Add will assign.
func (r *Registry) Len() int { return len(r.names) }

// Name returns the wrapper registered under id.
func (r *Registry) Name(id int) (string, bool) {
	if id < 0 || id >= len(r.names) {
		return "", false
	}
	return r.names[id], true
}

// ID returns the id of a registered wrapper.
func (r *Registry) ID(name string) (int, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// Names returns all wrapper names in id order.
func (r *Registry) Names() []string { return slices.Clone(r.names) }
