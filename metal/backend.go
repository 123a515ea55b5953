package metal

import (
	"fmt"
	"strings"

	"github.com/gogpu/wgslc/wgsl"
)

// EntryPoints reports the names of the module's vertex and fragment entry
// points for render pipeline construction.
//
// TODO: collect the names from stage attributes once pipeline reflection
// needs them; both fields are empty for now.
type EntryPoints struct {
	Vertex   string
	Fragment string
}

// InternalError reports a broken compiler invariant: the generator was
// handed an AST the front end should have rejected. It is never a
// user-facing diagnostic. Callers must not ignore it and use the output;
// generation stopped partway through.
type InternalError struct {
	Message string
}

// Error implements the error interface.
func (e *InternalError) Error() string {
	return "metal: internal error: " + e.Message
}

// internalFault carries a fault message through panic. Generation has no
// recoverable errors, so the writer aborts unconditionally and Emit
// translates the fault at the API boundary.
type internalFault struct {
	message string
}

// fail aborts the generation pass.
func fail(format string, args ...any) {
	panic(internalFault{message: fmt.Sprintf(format, args...)})
}

// Emit appends MSL source for module to sb and returns the entry point
// names. On error, text already appended to sb is incomplete and must be
// discarded.
func Emit(sb *strings.Builder, module *wgsl.ShaderModule) (entryPoints EntryPoints, err error) {
	defer func() {
		if r := recover(); r != nil {
			fault, ok := r.(internalFault)
			if !ok {
				panic(r)
			}
			err = &InternalError{Message: fault.message}
		}
	}()

	w := newWriter(sb, module)
	w.writeModule()
	return w.entryPoints, nil
}

// Compile generates MSL source code from a module AST.
// Returns the MSL source as a string and the entry point names, or an error.
func Compile(module *wgsl.ShaderModule) (string, EntryPoints, error) {
	var sb strings.Builder
	entryPoints, err := Emit(&sb, module)
	if err != nil {
		return "", EntryPoints{}, err
	}
	return sb.String(), entryPoints, nil
}
