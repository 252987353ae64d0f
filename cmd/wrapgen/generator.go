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
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-wrap/wrap"
)

// Generator orchestrates one generation pass.
type Generator struct {
	InputFiles []string // YAML interface files, in declaration order
	OutputDir  string   // Toolbox directory
	ModuleName string   // Module name (defaults to the first "module:" in the inputs)
	Verbose    bool     // Log every file written
}

// Load parses the interface files and builds the module. Files are parsed
// concurrently; overloads are added in input order.
func (g *Generator) Load() (*wrap.Module, wrap.TypeAttributesTable, error) {
	if len(g.InputFiles) == 0 {
		return nil, nil, errors.New("no input files")
	}

	files := make([]*interfaceFile, len(g.InputFiles))
	var eg errgroup.Group
	for i, name := range g.InputFiles {
		i, name := i, name
		eg.Go(func() error {
			f, err := parseInterfaceFile(name)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, fmt.Errorf("parse input: %w", err)
	}

	moduleName := g.ModuleName
	if moduleName == "" {
		if f, ok := lo.Find(files, func(f *interfaceFile) bool { return f.Module != "" }); ok {
			moduleName = f.Module
		}
	}
	if moduleName == "" {
		return nil, nil, errors.New("no module name: pass --module or set module in an interface file")
	}

	m := wrap.NewModule(moduleName)
	attrs := wrap.TypeAttributesTable{}
	for i, f := range files {
		m.Includes = append(m.Includes, f.Includes...)
		if err := f.addTo(m, attrs, g.Verbose); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", g.InputFiles[i], err)
		}
	}
	m.Includes = lo.Uniq(m.Includes)
	return m, attrs, nil
}

// Run executes the generation pipeline and returns the wrapper registry.
func (g *Generator) Run() (reg *wrap.Registry, err error) {
	// 1. Parse the interface files
	m, attrs, err := g.Load()
	if err != nil {
		return nil, err
	}

	// 2. Keep other passes out of the toolbox
	unlock, err := wrap.LockToolbox(g.OutputDir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if uerr := unlock(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	// 3. Emit dispatch scripts and the wrapper source
	reg, err = m.GenerateMatlabWrapper(g.OutputDir, attrs, g.Verbose)
	if err != nil {
		return nil, fmt.Errorf("emit toolbox: %w", err)
	}

	slog.Debug("generated toolbox", "module", m.Name, "functions", len(m.Functions()),
		"wrappers", reg.Len(), "dir", g.OutputDir)
	return reg, nil
}
