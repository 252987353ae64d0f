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
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
)

// Module is a set of global functions wrapped into one MATLAB toolbox with
// a single MEX entry point, "<Name>_wrapper".
type Module struct {
	Name     string
	Includes []string // headers included by the wrapper source

	functions []*GlobalFunction
	byName    map[string]*GlobalFunction
}

func NewModule(name string) *Module {
	return &Module{Name: name, byName: make(map[string]*GlobalFunction)}
}

// AddOverload adds a signature to the global function with the same leaf
// name, creating it on first use. Functions keep first-seen order.
func (m *Module) AddOverload(verbose bool, name Qualified, args ArgumentList, ret ReturnValue) error {
	if m.byName == nil {
		m.byName = make(map[string]*GlobalFunction)
	}
	fn, ok := m.byName[name.Name()]
	if !ok {
		fn = NewGlobalFunction(name.Name(), verbose)
	}
	if err := fn.AddOverload(verbose, name, args, ret); err != nil {
		return err
	}
	if !ok {
		m.byName[fn.Name()] = fn
		m.functions = append(m.functions, fn)
	}
	return nil
}

// Functions returns the global functions in first-seen order.
func (m *Module) Functions() []*GlobalFunction { return slices.Clone(m.functions) }

// WrapperName is the MEX function the dispatch scripts call.
func (m *Module) WrapperName() string { return m.Name + "_wrapper" }

// PlanEntry describes one wrapper a generation pass would register.
type PlanEntry struct {
	ID       int
	Wrapper  string
	Function Qualified
	Args     ArgumentList
	Return   ReturnValue
}

// Plan lists the wrappers GenerateMatlabWrapper registers, in id order,
// without touching the filesystem.
func (m *Module) Plan() ([]PlanEntry, error) {
	reg := NewRegistry()
	var plan []PlanEntry
	for _, fn := range m.functions {
		for _, bucket := range fn.ByNamespace() {
			unique := bucket.overloads[0].name.QualifiedName("")
			for i, o := range bucket.overloads {
				name := unique + "_" + strconv.Itoa(i)
				id, err := reg.Add(name)
				if err != nil {
					return nil, err
				}
				plan = append(plan, PlanEntry{ID: id, Wrapper: name, Function: o.name, Args: o.Args(), Return: o.ret})
			}
		}
	}
	return plan, nil
}

// GenerateMatlabWrapper writes the dispatch scripts of every function below
// toolboxPath and the wrapper source "<Name>_wrapper.cpp" holding one
// wrapper per overload and the mexFunction switch. It returns the registry
// of the pass. Files are only written once every function has generated, so
// a pass that fails on a wrapper leaves no partial toolbox.
func (m *Module) GenerateMatlabWrapper(toolboxPath string, attrs TypeAttributesTable, verbose bool) (*Registry, error) {
	if m.Name == "" {
		return nil, fmt.Errorf("generate module: %w", ErrEmptyName)
	}

	wrapperName := m.WrapperName()
	file := NewFileWriter(filepath.Join(toolboxPath, wrapperName+".cpp"), verbose, "//")
	reg := NewRegistry()

	fmt.Fprintf(file, "#include <wrap/matlab.h>\n")
	for _, inc := range m.Includes {
		fmt.Fprintf(file, "#include <%s>\n", inc)
	}
	fmt.Fprintf(file, "\n")

	var scripts []dispatchScript
	for _, fn := range m.functions {
		fnScripts, err := fn.matlabProxy(toolboxPath, wrapperName, attrs, file, reg)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", fn.Name(), err)
		}
		scripts = append(scripts, fnScripts...)
		fmt.Fprintf(file, "\n")
	}

	m.emitMexFunction(file, reg)

	if err := os.MkdirAll(toolboxPath, 0o755); err != nil {
		return nil, fmt.Errorf("generate module %s: %w", m.Name, err)
	}
	if err := emitScripts(toolboxPath, scripts); err != nil {
		return nil, fmt.Errorf("generate module %s: %w", m.Name, err)
	}
	if err := file.Emit(true); err != nil {
		return nil, err
	}
	return reg, nil
}

func (m *Module) emitMexFunction(w io.Writer, reg *Registry) {
	fmt.Fprintf(w, "void mexFunction(int nargout, mxArray *out[], int nargin, const mxArray *in[])\n")
	fmt.Fprintf(w, "{\n")
	fmt.Fprintf(w, "  mstream mout;\n")
	fmt.Fprintf(w, "  std::streambuf *outbuf = std::cout.rdbuf(&mout);\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  int id = unwrap<int>(in[0]);\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  try {\n")
	fmt.Fprintf(w, "    switch(id) {\n")
	for id, name := range reg.Names() {
		fmt.Fprintf(w, "    case %d:\n", id)
		fmt.Fprintf(w, "      %s(nargout, out, nargin-1, in+1);\n", name)
		fmt.Fprintf(w, "      break;\n")
	}
	fmt.Fprintf(w, "    }\n")
	fmt.Fprintf(w, "  } catch(const std::exception& e) {\n")
	fmt.Fprintf(w, "    mexErrMsgTxt((\"Exception from %s:\\n\" + std::string(e.what()) + \"\\n\").c_str());\n", m.Name)
	fmt.Fprintf(w, "  }\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  std::cout.rdbuf(outbuf);\n")
	fmt.Fprintf(w, "}\n")
}
