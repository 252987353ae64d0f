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
)

// ReturnCategory classifies how a returned value is wrapped for MATLAB.
type ReturnCategory int

const (
	// CategoryBasic covers scalars and strings, wrapped by value.
	CategoryBasic ReturnCategory = iota

	// CategoryEigen covers Vector and Matrix, wrapped as double arrays.
	CategoryEigen

	// CategoryClass covers wrapped classes, returned as shared pointers.
	CategoryClass

	// CategoryVoid marks the absence of a result.
	CategoryVoid
)

func (c ReturnCategory) String() string {
	switch c {
	case CategoryBasic:
		return "basic"
	case CategoryEigen:
		return "eigen"
	case CategoryClass:
		return "class"
	case CategoryVoid:
		return "void"
	default:
		return fmt.Sprintf("ReturnCategory(%d)", int(c))
	}
}

var basicTypes = map[string]bool{
	"bool": true, "char": true, "unsigned char": true,
	"int": true, "size_t": true, "float": true, "double": true,
	"string": true, "Key": true,
}

// ReturnType is one returned type.
type ReturnType struct {
	Qualified
	IsPtr    bool
	Category ReturnCategory
}

// NewReturnType classifies q by name: "void", the basic scalar types,
// Vector/Matrix, and everything else as a wrapped class.
func NewReturnType(q Qualified, isPtr bool) ReturnType {
	category := CategoryClass
	switch {
	case len(q.namespaces) == 0 && q.name == "void":
		category = CategoryVoid
	case len(q.namespaces) == 0 && basicTypes[q.name]:
		category = CategoryBasic
	case q.name == "Vector" || q.name == "Matrix":
		category = CategoryEigen
	}
	return ReturnType{Qualified: q, IsPtr: isPtr, Category: category}
}

// str renders the C++ type. Class pointers are held in Shared<Name>
// typedefs when withPtr is set; other pointers are raw.
func (r ReturnType) str(withPtr bool) string {
	switch {
	case !r.IsPtr:
		return r.QualifiedName("::")
	case r.Category != CategoryClass:
		return r.QualifiedName("::") + "*"
	case withPtr:
		return "Shared" + r.name
	}
	return r.QualifiedName("::")
}

func (r ReturnType) wrapTypeUnwrap(w io.Writer) {
	if r.Category == CategoryClass {
		fmt.Fprintf(w, "  typedef boost::shared_ptr<%s> Shared%s;\n", r.QualifiedName("::"), r.name)
	}
}

func (r ReturnType) wrapResult(out, result string, w io.Writer, attrs TypeAttributesTable) error {
	cppType := r.QualifiedName("::")
	matlabType := r.QualifiedName(".")

	switch {
	case r.Category == CategoryClass:
		ta, err := attrs.At(cppType)
		if err != nil {
			return err
		}
		var objCopy string
		switch {
		case r.IsPtr:
			objCopy = result
		case ta.IsVirtual:
			objCopy = fmt.Sprintf("boost::dynamic_pointer_cast<%s>(%s.clone())", cppType, result)
		default:
			objCopy = fmt.Sprintf("Shared%s(new %s(%s))", r.name, cppType, result)
		}
		fmt.Fprintf(w, "  %s = wrap_shared_ptr(%s,\"%s\", %t);\n", out, objCopy, matlabType, ta.IsVirtual)
	case r.IsPtr:
		fmt.Fprintf(w, "  %s = wrap< %s >(*%s);\n", out, cppType, result)
	case r.Category != CategoryVoid:
		fmt.Fprintf(w, "  %s = wrap< %s >(%s);\n", out, cppType, result)
	}
	return nil
}

// ReturnValue describes the result of an overload: a single type, or a
// std::pair returned to MATLAB as two outputs.
type ReturnValue struct {
	Type1  ReturnType
	Type2  ReturnType
	IsPair bool
}

// Void is the result of functions returning nothing.
var Void = ReturnValue{Type1: NewReturnType(NewQualified("void"), false)}

// Returns is a single-valued result.
func Returns(t ReturnType) ReturnValue {
	return ReturnValue{Type1: t}
}

// ReturnsPair is a std::pair result.
func ReturnsPair(first, second ReturnType) ReturnValue {
	return ReturnValue{Type1: first, Type2: second, IsPair: true}
}

// IsVoid reports whether r is the void sentinel.
func (r ReturnValue) IsVoid() bool {
	return !r.IsPair && r.Type1.Category == CategoryVoid
}

// ReturnType renders the C++ result type.
func (r ReturnValue) ReturnType(withPtr bool) string {
	if r.IsPair {
		return fmt.Sprintf("pair< %s, %s >", r.Type1.str(withPtr), r.Type2.str(withPtr))
	}
	return r.Type1.str(withPtr)
}

// EmitMatlab writes the output capture of a dispatch call.
func (r ReturnValue) EmitMatlab(w io.Writer) {
	switch {
	case r.IsPair:
		fmt.Fprintf(w, "[ varargout{1} varargout{2} ] = ")
	case !r.IsVoid():
		fmt.Fprintf(w, "varargout{1} = ")
	}
}

// WrapTypeUnwrap declares the Shared<Name> typedefs used by WrapResult.
func (r ReturnValue) WrapTypeUnwrap(w io.Writer) {
	r.Type1.wrapTypeUnwrap(w)
	if r.IsPair {
		r.Type2.wrapTypeUnwrap(w)
	}
}

// WrapResult writes the statements that evaluate result once and store it
// in out[0] (and out[1] for pairs).
func (r ReturnValue) WrapResult(result string, w io.Writer, attrs TypeAttributesTable) error {
	if !r.IsPair {
		return r.Type1.wrapResult("out[0]", result, w, attrs)
	}
	fmt.Fprintf(w, "  %s pairResult = %s;\n", r.ReturnType(true), result)
	if err := r.Type1.wrapResult("out[0]", "pairResult.first", w, attrs); err != nil {
		return err
	}
	return r.Type2.wrapResult("out[1]", "pairResult.second", w, attrs)
}
