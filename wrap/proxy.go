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
	"strconv"
)

const dispatchIndent = "      "

// MatlabProxy emits g into the toolbox. Overloads are grouped by namespace;
// each group gets its own dispatch script "+ns/.../name.m", and every
// overload gets a wrapper function appended to wrapperFile and registered
// in reg. wrapperName is the MEX entry point called by the scripts.
// Groups are separated by a blank line in wrapperFile. No script is written
// unless every group generated.
func (g *GlobalFunction) MatlabProxy(toolboxPath, wrapperName string, attrs TypeAttributesTable,
	wrapperFile io.Writer, reg *Registry) error {
	scripts, err := g.matlabProxy(toolboxPath, wrapperName, attrs, wrapperFile, reg)
	if err != nil {
		return err
	}
	return emitScripts(toolboxPath, scripts)
}

// dispatchScript is a rendered script waiting for its namespace folders.
type dispatchScript struct {
	namespaces []string
	file       *FileWriter
}

func (g *GlobalFunction) matlabProxy(toolboxPath, wrapperName string, attrs TypeAttributesTable,
	wrapperFile io.Writer, reg *Registry) ([]dispatchScript, error) {
	buckets := g.ByNamespace()
	scripts := make([]dispatchScript, 0, len(buckets))
	for i, bucket := range buckets {
		script, err := bucket.generateSingleFunction(toolboxPath, wrapperName, attrs, wrapperFile, reg)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", bucket.overloads[0].name.QualifiedName("."), err)
		}
		scripts = append(scripts, script)
		if i < len(buckets)-1 {
			fmt.Fprintf(wrapperFile, "\n")
		}
	}
	return scripts, nil
}

// emitScripts creates every namespace folder first, so that a path clash
// fails before any script is written.
func emitScripts(toolboxPath string, scripts []dispatchScript) error {
	for _, s := range scripts {
		if err := CreateNamespaceStructure(s.namespaces, toolboxPath); err != nil {
			return err
		}
	}
	for _, s := range scripts {
		if err := s.file.Emit(true); err != nil {
			return err
		}
	}
	return nil
}

// generateSingleFunction renders one namespace group. All overloads of g
// share the namespace stack of the first one.
func (g *GlobalFunction) generateSingleFunction(toolboxPath, wrapperName string, attrs TypeAttributesTable,
	wrapperFile io.Writer, reg *Registry) (dispatchScript, error) {
	first := g.overloads[0].name
	mfile := NewFileWriter(first.MatlabName(toolboxPath), g.verbose, "%")

	matlabQualName := first.QualifiedName(".")
	matlabUniqueName := first.QualifiedName("")
	cppName := first.QualifiedName("::")

	fmt.Fprintf(mfile, "function varargout = %s(varargin)\n", g.name)

	for i, o := range g.overloads {
		wrapFunctionName := matlabUniqueName + "_" + strconv.Itoa(i)
		id, err := reg.Add(wrapFunctionName)
		if err != nil {
			return dispatchScript{}, err
		}

		// Dispatch branch, calling the MEX entry point with the registry id.
		fmt.Fprintf(mfile, "%s", dispatchIndent)
		if i > 0 {
			fmt.Fprintf(mfile, "else")
		}
		o.args.EmitConditionalCall(mfile, o.ret, wrapperName, id, true)

		if err := o.emitWrapper(wrapperFile, wrapFunctionName, matlabQualName, cppName, attrs); err != nil {
			return dispatchScript{}, fmt.Errorf("wrapper %s: %w", wrapFunctionName, err)
		}
	}

	fmt.Fprintf(mfile, "%selse\n", dispatchIndent)
	fmt.Fprintf(mfile, "        error('Arguments do not match any overload of function %s');\n", matlabQualName)
	fmt.Fprintf(mfile, "%send\n", dispatchIndent)

	return dispatchScript{namespaces: first.namespaces, file: mfile}, nil
}

// emitWrapper writes the C++ wrapper of o. There is no object argument, so
// inputs are unwrapped from in[0].
func (o Overload) emitWrapper(w io.Writer, wrapFunctionName, matlabQualName, cppName string, attrs TypeAttributesTable) error {
	fmt.Fprintf(w, "void %s(int nargout, mxArray *out[], int nargin, const mxArray *in[])\n", wrapFunctionName)
	fmt.Fprintf(w, "{\n")

	o.ret.WrapTypeUnwrap(w)
	fmt.Fprintf(w, "  checkArguments(\"%s\",nargout,nargin,%d);\n", matlabQualName, o.args.Len())
	o.args.MatlabUnwrap(w, 0)

	call := cppName + "(" + o.args.Names() + ")"
	if o.ret.IsVoid() {
		fmt.Fprintf(w, "  %s;\n", call)
	} else if err := o.ret.WrapResult(call, w, attrs); err != nil {
		return err
	}

	fmt.Fprintf(w, "}\n")
	return nil
}
