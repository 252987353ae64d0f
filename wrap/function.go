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

	"github.com/emirpasic/gods/maps/treemap"
)

// Overload is one concrete signature of a global function.
type Overload struct {
	name Qualified
	args ArgumentList
	ret  ReturnValue
}

// NewOverload records one signature. args is copied.
func NewOverload(name Qualified, args ArgumentList, ret ReturnValue) Overload {
	return Overload{name: name, args: slices.Clone(args), ret: ret}
}

func (o Overload) Qualified() Qualified { return o.name }

func (o Overload) Args() ArgumentList { return slices.Clone(o.args) }

func (o Overload) Return() ReturnValue { return o.ret }

// GlobalFunction collects the overloads of a free function sharing one
// short name. Overloads may come from different namespaces; ByNamespace
// splits them before emission.
type GlobalFunction struct {
	name      string
	verbose   bool
	overloads []Overload
}

// NewGlobalFunction returns an empty function. An empty name is
// established by the first AddOverload.
func NewGlobalFunction(name string, verbose bool) *GlobalFunction {
	return &GlobalFunction{name: name, verbose: verbose}
}

func (g *GlobalFunction) Name() string { return g.name }

// Verbose reports the flag passed to the most recent AddOverload.
func (g *GlobalFunction) Verbose() bool { return g.verbose }

// Len returns the number of overloads.
func (g *GlobalFunction) Len() int { return len(g.overloads) }

// Overloads returns the overloads in insertion order.
func (g *GlobalFunction) Overloads() []Overload { return slices.Clone(g.overloads) }

// AddOverload appends one signature. The first call establishes the
// function name; later calls must use the same leaf name or fail with
// ErrOverloadNameMismatch, leaving g unchanged. verbose is overwritten by
// every successful call, so the last caller decides the verbosity of the
// whole function.
func (g *GlobalFunction) AddOverload(verbose bool, name Qualified, args ArgumentList, ret ReturnValue) error {
	if name.Name() == "" {
		return fmt.Errorf("add overload %s: %w", name, ErrEmptyName)
	}
	if g.name == "" {
		g.name = name.Name()
	} else if name.Name() != g.name {
		return fmt.Errorf("add overload %s: %w: got %q, expected %q",
			name, ErrOverloadNameMismatch, name.Name(), g.name)
	}
	g.verbose = verbose
	g.overloads = append(g.overloads, NewOverload(name, args, ret))
	return nil
}

// ByNamespace splits g into one function per namespace stack. Each bucket
// keeps the insertion order of its overloads; buckets are ordered by
// namespace, compared segment by segment.
func (g *GlobalFunction) ByNamespace() []*GlobalFunction {
	buckets := treemap.NewWith(compareNamespaces)
	for _, o := range g.overloads {
		var bucket *GlobalFunction
		if v, found := buckets.Get(o.name.namespaces); found {
			bucket = v.(*GlobalFunction)
		} else {
			bucket = NewGlobalFunction(g.name, g.verbose)
			buckets.Put(o.name.namespaces, bucket)
		}
		bucket.overloads = append(bucket.overloads, o)
	}

	result := make([]*GlobalFunction, 0, buckets.Size())
	it := buckets.Iterator()
	for it.Next() {
		result = append(result, it.Value().(*GlobalFunction))
	}
	return result
}
