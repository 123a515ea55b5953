// Package wgslc provides a Pure Go WGSL-to-Metal shader translator.
//
// wgslc compiles a subset of WGSL (WebGPU Shading Language) source code to
// MSL (Metal Shading Language) source text, ready to hand to Apple's Metal
// shader compiler.
//
// The package provides a simple, high-level API for shader translation as
// well as lower-level access to individual translation stages.
//
// Example usage:
//
//	source := `
//	@fragment
//	fn main() -> f32 {
//	    return 1.0;
//	}
//	`
//	msl, err := wgslc.Compile(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For entry-point metadata or to skip validation, use CompileWithOptions:
//
//	msl, entryPoints, err := wgslc.CompileWithOptions(source, wgslc.DefaultOptions())
//
// For direct access to individual stages, use the wgsl package (lexer,
// parser, AST, validation) and the metal package (code generation).
package wgslc

import (
	"fmt"

	"github.com/gogpu/wgslc/metal"
	"github.com/gogpu/wgslc/wgsl"
)

// CompileOptions configures shader translation.
type CompileOptions struct {
	// Validate enables semantic validation of the AST before code generation
	Validate bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() CompileOptions {
	return CompileOptions{
		Validate: true,
	}
}

// Compile translates WGSL source code to Metal Shading Language using
// default options.
//
// This is the simplest way to translate a shader. For more control, use
// CompileWithOptions or the individual Parse/Check functions together with
// the metal package.
func Compile(source string) (string, error) {
	msl, _, err := CompileWithOptions(source, DefaultOptions())
	return msl, err
}

// CompileWithOptions translates WGSL source code to Metal Shading Language
// with custom options.
//
// The translation pipeline is:
//  1. Parse WGSL source to AST
//  2. Validate the AST (if enabled)
//  3. Generate MSL source text
func CompileWithOptions(source string, opts CompileOptions) (string, metal.EntryPoints, error) {
	// Parse WGSL to AST (errors carry their stage prefix already)
	ast, err := Parse(source)
	if err != nil {
		return "", metal.EntryPoints{}, err
	}

	// Validate the AST if requested (pass source for error context)
	if opts.Validate {
		if err := wgsl.CheckWithSource(ast, source); err != nil {
			return "", metal.EntryPoints{}, fmt.Errorf("validation error: %w", err)
		}
	}

	// Generate MSL
	msl, entryPoints, err := metal.Compile(ast)
	if err != nil {
		return "", metal.EntryPoints{}, fmt.Errorf("code generation error: %w", err)
	}
	Logger().Debug("generated Metal source", "bytes", len(msl), "validated", opts.Validate)

	return msl, entryPoints, nil
}

// Parse parses WGSL source code to an AST (Abstract Syntax Tree).
//
// This is the first stage of translation. The AST mirrors the syntactic
// structure of the shader; semantic checks happen in Check.
func Parse(source string) (*wgsl.ShaderModule, error) {
	// Tokenize
	lexer := wgsl.NewLexer(source)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, fmt.Errorf("tokenization error: %w", err)
	}
	Logger().Debug("tokenized WGSL source", "tokens", len(tokens))

	// Parse to AST
	parser := wgsl.NewParser(tokens)
	module, err := parser.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	Logger().Debug("parsed shader module", "declarations", len(module.Declarations))

	return module, nil
}

// Check validates a parsed shader module.
//
// Validation checks include:
//   - Builtin names (only vertex_index and position are known)
//   - Location indexes (must be non-negative)
//   - Duplicate declaration, parameter, and struct member names
//   - Attribute placement (stage attributes belong on functions)
//
// Errors include line:column positions when the module carries spans.
// To render errors with source context, use CheckWithSource from the
// wgsl package.
func Check(module *wgsl.ShaderModule) error {
	return wgsl.Check(module)
}
