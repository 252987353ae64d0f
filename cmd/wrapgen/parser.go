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

package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-wrap/wrap"
)

// interfaceFile is one YAML interface description:
//
//	module: geometry
//	includes: [gtsam/geometry/Point2.h]
//	classes:
//	  "gtsam::Point2": {virtual: false}
//	functions:
//	  - name: "m::foo"
//	    args: ["int x"]
//	    returns: double
//	  - name: "m::foo"
//	    args:
//	      - {type: "gtsam::Point2", name: p, const: true, ref: true}
//	    returns: ["gtsam::Point2*", double]
//
// Arguments are either "[const] type[&|*] name" strings or maps. returns is
// a type ("T*" for a pointer), a two element list for a pair, or absent for
// void.
type interfaceFile struct {
	Module    string               `mapstructure:"module"`
	Includes  []string             `mapstructure:"includes"`
	Classes   map[string]classDecl `mapstructure:"classes"`
	Functions []functionDecl       `mapstructure:"functions"`
}

type classDecl struct {
	Virtual bool `mapstructure:"virtual"`
}

type functionDecl struct {
	Name    string     `mapstructure:"name"`
	Args    []argDecl  `mapstructure:"args"`
	Returns returnDecl `mapstructure:"returns"`
}

type argDecl struct {
	Type  string `mapstructure:"type"`
	Name  string `mapstructure:"name"`
	Const bool   `mapstructure:"const"`
	Ref   bool   `mapstructure:"ref"`
	Ptr   bool   `mapstructure:"ptr"`
}

type returnDecl struct {
	Types []string `mapstructure:"types"`
}

var (
	argDeclType    = reflect.TypeOf(argDecl{})
	returnDeclType = reflect.TypeOf(returnDecl{})
)

// declHook expands the compact string forms of arguments and return types.
func declHook(from, to reflect.Type, data any) (any, error) {
	switch to {
	case argDeclType:
		if s, ok := data.(string); ok {
			return parseArgument(s)
		}
	case returnDeclType:
		switch v := data.(type) {
		case string:
			return returnDecl{Types: []string{v}}, nil
		case []any:
			types := make([]string, 0, len(v))
			for _, t := range v {
				s, ok := t.(string)
				if !ok {
					return nil, fmt.Errorf("return type %v: want a string", t)
				}
				types = append(types, s)
			}
			return returnDecl{Types: types}, nil
		}
	}
	return data, nil
}

// parseArgument parses "[const] type[&|*] name".
func parseArgument(decl string) (argDecl, error) {
	var a argDecl
	s := strings.TrimSpace(decl)
	if rest, ok := strings.CutPrefix(s, "const "); ok {
		a.Const = true
		s = strings.TrimSpace(rest)
	}

	i := strings.LastIndexAny(s, " &*")
	if i < 0 || i == len(s)-1 {
		return argDecl{}, fmt.Errorf("argument %q: want \"[const] type[&|*] name\"", decl)
	}
	a.Name = s[i+1:]
	typ := strings.TrimSpace(s[:i+1])
	switch {
	case strings.HasSuffix(typ, "&"):
		a.Ref = true
		typ = strings.TrimSpace(strings.TrimSuffix(typ, "&"))
	case strings.HasSuffix(typ, "*"):
		a.Ptr = true
		typ = strings.TrimSpace(strings.TrimSuffix(typ, "*"))
	}
	if typ == "" {
		return argDecl{}, fmt.Errorf("argument %q: missing type", decl)
	}
	a.Type = typ
	return a, nil
}

func parseInterfaceFile(filename string) (*interfaceFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	f, err := parseInterface(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return f, nil
}

func parseInterface(data []byte) (*interfaceFile, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var f interfaceFile
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  declHook,
		ErrorUnused: true,
		Result:      &f,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, err
	}

	for i, fn := range f.Functions {
		if fn.Name == "" {
			return nil, fmt.Errorf("function %d: missing name", i)
		}
		for j, a := range fn.Args {
			if a.Type == "" || a.Name == "" {
				return nil, fmt.Errorf("function %s: argument %d needs a type and a name", fn.Name, j)
			}
		}
		if len(fn.Returns.Types) > 2 {
			return nil, fmt.Errorf("function %s: at most two return types, got %d", fn.Name, len(fn.Returns.Types))
		}
	}
	return &f, nil
}

func (d argDecl) argument() wrap.Argument {
	return wrap.Argument{
		Type:    wrap.ParseQualified(d.Type),
		Name:    d.Name,
		IsConst: d.Const,
		IsRef:   d.Ref,
		IsPtr:   d.Ptr,
	}
}

func returnType(s string) wrap.ReturnType {
	s = strings.TrimSpace(s)
	typ, isPtr := strings.CutSuffix(s, "*")
	return wrap.NewReturnType(wrap.ParseQualified(strings.TrimSpace(typ)), isPtr)
}

func (d returnDecl) returnValue() wrap.ReturnValue {
	switch len(d.Types) {
	case 0:
		return wrap.Void
	case 1:
		return wrap.Returns(returnType(d.Types[0]))
	}
	return wrap.ReturnsPair(returnType(d.Types[0]), returnType(d.Types[1]))
}

// addTo adds the declared overloads to m and the class attributes to attrs.
func (f *interfaceFile) addTo(m *wrap.Module, attrs wrap.TypeAttributesTable, verbose bool) error {
	for _, fn := range f.Functions {
		args := lo.Map(fn.Args, func(a argDecl, _ int) wrap.Argument { return a.argument() })
		if err := m.AddOverload(verbose, wrap.ParseQualified(fn.Name), args, fn.Returns.returnValue()); err != nil {
			return err
		}
	}
	for name, c := range f.Classes {
		attrs[name] = wrap.TypeAttributes{IsVirtual: c.Virtual}
	}
	return nil
}
