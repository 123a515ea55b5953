// Package metal emits Metal Shading Language (MSL) source text from a
// WGSL AST.
//
// The generator is a single depth-first, pre-order pass over the module.
// Every sibling list (declarations, members, parameters, arguments,
// attributes) is emitted in input order, and each node is visited exactly
// once. The output is appended to a caller-supplied strings.Builder; a
// fresh generator is used per module and holds no state across passes.
//
// # Usage
//
//	module, err := wgslc.Parse(source)
//	if err != nil {
//	    return err
//	}
//
//	code, entryPoints, err := metal.Compile(module)
//	if err != nil {
//	    return err
//	}
//
// # Type Mapping
//
// WGSL types map to MSL as follows:
//
//	WGSL           MSL
//	----           ---
//	i32            int
//	f32            float
//	u32            unsigned
//	vec2<T>        vec<T, 2>
//	vec3<T>        vec<T, 3>
//	vec4<T>        vec<T, 4>
//	array<T, N>    array<T, N>
//
// Any other named type is emitted verbatim; it is expected to be a struct
// name declared in the same module. Matrix types are not implemented:
// mat2x2 through mat4x3 abort generation, and mat4x4 currently emits no
// text at all.
//
// # Failure Model
//
// The generator assumes a validated AST (see the wgsl package's Check).
// Inputs that break that contract - a function without a return type, a
// var statement without a type, an unknown builtin name, an unimplemented
// matrix type - abort the pass and surface as *InternalError. They are
// compiler bugs, not user diagnostics: the front end should have rejected
// the shader first. There is no partial-success mode; on error the sink's
// contents are unusable.
package metal
