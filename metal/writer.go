package metal

import (
	"fmt"
	"strings"

	"github.com/gogpu/wgslc/wgsl"
)

// writer generates MSL source code from a WGSL AST. One writer serves
// exactly one generation pass and is then discarded.
type writer struct {
	module *wgsl.ShaderModule

	// Output sink, owned by the caller
	out *strings.Builder

	// Current indentation level
	indent int

	entryPoints EntryPoints
}

// newWriter creates a writer appending to out.
func newWriter(out *strings.Builder, module *wgsl.ShaderModule) *writer {
	return &writer{
		module: module,
		out:    out,
	}
}

// writeModule generates MSL code for the entire module, keeping
// declaration order.
func (w *writer) writeModule() {
	for _, decl := range w.module.Declarations {
		w.writeDecl(decl)
	}
}

func (w *writer) writeDecl(decl wgsl.Decl) {
	switch d := decl.(type) {
	case *wgsl.FunctionDecl:
		w.writeFunction(d)
	case *wgsl.StructDecl:
		w.writeStruct(d)
	default:
		fail("unsupported declaration kind: %T", decl)
	}
}

// writeFunction emits a function definition followed by a blank line.
func (w *writer) writeFunction(fn *wgsl.FunctionDecl) {
	for _, attr := range fn.Attributes {
		w.writeAttribute(attr)
		w.write(" ")
	}

	if fn.ReturnType == nil {
		fail("function '%s' has no return type", fn.Name)
	}
	w.writeType(fn.ReturnType)
	w.write(" %s(", fn.Name)

	for i, param := range fn.Params {
		if i > 0 {
			w.write(", ")
		}
		w.writeParameter(param)
	}
	w.write(")\n")

	w.write("{\n")
	w.pushIndent()
	w.writeStatement(fn.Body)
	w.popIndent()
	w.write("}\n\n")
}

// writeParameter emits '<type> <name>' with any attributes space-prefixed
// after the name.
func (w *writer) writeParameter(param *wgsl.Parameter) {
	w.writeType(param.Type)
	w.write(" %s", param.Name)
	for _, attr := range param.Attributes {
		w.write(" ")
		w.writeAttribute(attr)
	}
}

// writeStruct emits a struct definition followed by a blank line.
func (w *writer) writeStruct(s *wgsl.StructDecl) {
	w.writeIndent()
	w.write("struct %s {\n", s.Name)
	w.pushIndent()
	for _, member := range s.Members {
		w.writeIndent()
		w.writeType(member.Type)
		w.write(" %s", member.Name)
		for _, attr := range member.Attributes {
			w.write(" ")
			w.writeAttribute(attr)
		}
		w.write(";\n")
	}
	w.popIndent()
	w.writeIndent()
	w.write("};\n\n")
}

// writeVariable emits '<type> <name>' with an optional ' = <initializer>'.
// The statement rule supplies indentation and the terminator.
func (w *writer) writeVariable(v *wgsl.VarDecl) {
	if v.Type == nil {
		fail("variable '%s' has no type", v.Name)
	}
	w.writeType(v.Type)
	w.write(" %s", v.Name)
	if v.Init != nil {
		w.write(" = ")
		w.writeExpression(v.Init)
	}
}

// Output helpers

// write writes text to the output. If args are provided, uses fmt.Fprintf.
//
//nolint:goprintffuncname
func (w *writer) write(format string, args ...any) {
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(w.out, format, args...)
	}
}

// writeIndent writes the current indentation, four spaces per level.
func (w *writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

// pushIndent increases indentation.
func (w *writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}
