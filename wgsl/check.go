package wgsl

import "fmt"

// KnownBuiltins lists the builtin names the Metal backend can translate.
// Anything else must be rejected before code generation; the backend
// treats an unknown builtin as a broken compiler invariant, not a
// user-facing diagnostic.
var KnownBuiltins = map[string]bool{
	"vertex_index": true,
	"position":     true,
}

// checker walks a parsed module and collects semantic diagnostics.
type checker struct {
	source string // Original source code for error messages
	errors SourceErrors
}

// Check validates a parsed module against the constraints the backend
// assumes. It returns nil or a SourceErrors value.
func Check(module *ShaderModule) error {
	return CheckWithSource(module, "")
}

// CheckWithSource is Check with the original source retained so
// diagnostics can show context.
func CheckWithSource(module *ShaderModule, source string) error {
	c := &checker{source: source}
	c.module(module)
	if c.errors.HasErrors() {
		return c.errors
	}
	return nil
}

func (c *checker) module(module *ShaderModule) {
	seen := make(map[string]bool)
	for _, decl := range module.Declarations {
		switch d := decl.(type) {
		case *FunctionDecl:
			if seen[d.Name] {
				c.addErrorf(d.Span, "duplicate declaration '%s'", d.Name)
			}
			seen[d.Name] = true
			c.function(d)
		case *StructDecl:
			if seen[d.Name] {
				c.addErrorf(d.Span, "duplicate declaration '%s'", d.Name)
			}
			seen[d.Name] = true
			c.structDecl(d)
		default:
			c.addErrorf(decl.Pos(), "unsupported module-scope declaration")
		}
	}
}

func (c *checker) function(fn *FunctionDecl) {
	stages := 0
	for _, attr := range fn.Attributes {
		switch a := attr.(type) {
		case *StageAttribute:
			stages++
			if stages > 1 {
				c.addErrorf(a.Span, "function '%s' has more than one stage attribute", fn.Name)
			}
		case *BuiltinAttribute:
			c.addErrorf(a.Span, "@builtin is not allowed on a function declaration")
		case *LocationAttribute:
			c.addErrorf(a.Span, "@location is not allowed on a function declaration")
		}
	}

	params := make(map[string]bool)
	for _, param := range fn.Params {
		if params[param.Name] {
			c.addErrorf(param.Span, "duplicate parameter '%s' in function '%s'", param.Name, fn.Name)
		}
		params[param.Name] = true
		c.ioAttributes(param.Attributes, fmt.Sprintf("parameter '%s'", param.Name))
	}

	if fn.ReturnType == nil {
		c.addErrorf(fn.Span, "function '%s' has no return type", fn.Name)
	}

	if fn.Body != nil {
		c.block(fn.Body)
	}
}

func (c *checker) structDecl(s *StructDecl) {
	members := make(map[string]bool)
	for _, member := range s.Members {
		if members[member.Name] {
			c.addErrorf(member.Span, "duplicate member '%s' in struct '%s'", member.Name, s.Name)
		}
		members[member.Name] = true
		c.ioAttributes(member.Attributes, fmt.Sprintf("member '%s'", member.Name))
	}
}

// ioAttributes validates attributes attached to a parameter or struct
// member: builtins must come from the known set, locations must be
// non-negative, stage attributes do not belong here.
func (c *checker) ioAttributes(attrs []Attribute, owner string) {
	for _, attr := range attrs {
		switch a := attr.(type) {
		case *BuiltinAttribute:
			if !KnownBuiltins[a.Name] {
				c.addErrorf(a.Span, "unknown builtin '%s' on %s", a.Name, owner)
			}
		case *LocationAttribute:
			if a.Index < 0 {
				c.addErrorf(a.Span, "negative location index %d on %s", a.Index, owner)
			}
		case *StageAttribute:
			c.addErrorf(a.Span, "@%s is only allowed on a function declaration", a.Stage)
		}
	}
}

func (c *checker) block(block *BlockStmt) {
	for _, stmt := range block.Statements {
		c.statement(stmt)
	}
}

func (c *checker) statement(stmt Stmt) {
	switch s := stmt.(type) {
	case *BlockStmt:
		c.block(s)
	case *VarDecl:
		if s.Type == nil {
			c.addErrorf(s.Span, "variable '%s' has no type", s.Name)
		}
	}
}

// addErrorf adds an error with source location.
func (c *checker) addErrorf(span Span, format string, args ...interface{}) {
	c.errors.Add(NewSourceErrorf(span, c.source, format, args...))
}
