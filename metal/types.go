package metal

import "github.com/gogpu/wgslc/wgsl"

// writeType emits the MSL spelling of a type reference.
func (w *writer) writeType(typ wgsl.Type) {
	switch t := typ.(type) {
	case *wgsl.NamedType:
		w.write("%s", scalarTypeName(t.Name))
	case *wgsl.ArrayType:
		if t.Element == nil || t.Count == nil {
			fail("array type is missing its element type or count")
		}
		w.write("array<")
		w.writeType(t.Element)
		w.write(", ")
		w.writeExpression(t.Count)
		w.write(">")
	case *wgsl.ParameterizedType:
		w.writeParameterizedType(t)
	default:
		fail("unsupported type kind: %T", typ)
	}
}

// scalarTypeName maps WGSL scalar names to their MSL spellings. Any other
// name is passed through unchanged; it is expected to already be a valid
// MSL identifier, such as a struct declared in the same module.
func scalarTypeName(name string) string {
	switch name {
	case "i32":
		return "int"
	case "f32":
		return "float"
	case "u32":
		return "unsigned"
	default:
		return name
	}
}

func (w *writer) writeParameterizedType(t *wgsl.ParameterizedType) {
	switch t.Base {
	case wgsl.Vec2:
		w.writeVector(t.Element, 2)
	case wgsl.Vec3:
		w.writeVector(t.Element, 3)
	case wgsl.Vec4:
		w.writeVector(t.Element, 4)
	case wgsl.Mat2x2, wgsl.Mat2x3, wgsl.Mat2x4,
		wgsl.Mat3x2, wgsl.Mat3x3, wgsl.Mat3x4,
		wgsl.Mat4x2, wgsl.Mat4x3:
		fail("matrix type %s is not implemented", t.Base)
	case wgsl.Mat4x4:
		// mat4x4 support is incomplete: nothing is emitted for it yet.
	default:
		fail("unsupported parameterized type kind: %d", t.Base)
	}
}

func (w *writer) writeVector(element wgsl.Type, size int) {
	w.write("vec<")
	w.writeType(element)
	w.write(", %d>", size)
}
