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
	"strings"

	"github.com/samber/lo"
)

// Argument is one typed parameter of a wrapped function.
type Argument struct {
	Type    Qualified
	Name    string
	IsConst bool
	IsRef   bool
	IsPtr   bool
}

// MatlabClass returns the MATLAB class an input must satisfy (via isa) to
// bind to this argument.
func (a Argument) MatlabClass(delim string) string {
	var prefix strings.Builder
	for _, ns := range a.Type.namespaces {
		prefix.WriteString(ns)
		prefix.WriteString(delim)
	}
	switch a.Type.name {
	case "string", "char", "unsigned char":
		return prefix.String() + "char"
	case "Vector", "Matrix":
		return prefix.String() + "double"
	case "int", "size_t":
		return prefix.String() + "numeric"
	case "bool":
		return prefix.String() + "logical"
	}
	return prefix.String() + a.Type.name
}

// MatlabUnwrap emits the C++ statement that unpacks slot (e.g. "in[2]")
// into a local variable named after the argument.
//
//	double tol = unwrap< double >(in[2]);
//	gtsam::Point2& p = *unwrap_shared_ptr< gtsam::Point2 >(in[0], "ptr_gtsamPoint2");
func (a Argument) MatlabUnwrap(w io.Writer, slot string) {
	cppType := a.Type.QualifiedName("::")
	matlabUniqueType := a.Type.QualifiedName("")

	switch {
	case a.IsPtr:
		fmt.Fprintf(w, "  boost::shared_ptr<%s> %s = unwrap_shared_ptr< ", cppType, a.Name)
	case a.IsRef:
		fmt.Fprintf(w, "  %s& %s = *unwrap_shared_ptr< ", cppType, a.Name)
	default:
		fmt.Fprintf(w, "  %s %s = unwrap< ", cppType, a.Name)
	}

	fmt.Fprintf(w, "%s >(%s", cppType, slot)
	if a.IsPtr || a.IsRef {
		fmt.Fprintf(w, ", \"ptr_%s\"", matlabUniqueType)
	}
	fmt.Fprintf(w, ");\n")
}

// ArgumentList is the ordered parameter list of one overload.
type ArgumentList []Argument

func (l ArgumentList) Len() int { return len(l) }

// Names returns the comma separated argument names, as used in the call
// expression of a wrapper.
func (l ArgumentList) Names() string {
	return strings.Join(lo.Map(l, func(a Argument, _ int) string { return a.Name }), ",")
}

// EmitConditionalCall writes one dispatch branch condition and its body:
//
//	if length(varargin) == 1 && isa(varargin{1},'numeric')
//	        varargout{1} = geometry_wrapper(3, varargin{:});
//
// The caller writes the leading indentation and the "" or "else" prefix.
// staticMethod omits the implicit "this" receiver.
func (l ArgumentList) EmitConditionalCall(w io.Writer, ret ReturnValue, wrapperName string, id int, staticMethod bool) {
	fmt.Fprintf(w, "if length(varargin) == %d", len(l))
	for i, arg := range l {
		fmt.Fprintf(w, " && isa(varargin{%d},'%s')", i+1, arg.MatlabClass("."))
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "        ")
	ret.EmitMatlab(w)
	fmt.Fprintf(w, "%s(%d", wrapperName, id)
	if !staticMethod {
		fmt.Fprintf(w, ", this")
	}
	fmt.Fprintf(w, ", varargin{:});\n")
}

// MatlabUnwrap unwraps every argument, the first one from in[start].
// Free functions start at 0; methods reserve in[0] for the object.
func (l ArgumentList) MatlabUnwrap(w io.Writer, start int) {
	for i, arg := range l {
		arg.MatlabUnwrap(w, fmt.Sprintf("in[%d]", start+i))
	}
}
