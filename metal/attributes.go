package metal

import "github.com/gogpu/wgslc/wgsl"

// writeAttribute emits the MSL attribute for a WGSL attribute. The
// mapping is a fixed table; a builtin name outside it means validation
// was skipped upstream, so the pass aborts.
func (w *writer) writeAttribute(attr wgsl.Attribute) {
	switch a := attr.(type) {
	case *wgsl.BuiltinAttribute:
		switch a.Name {
		case "vertex_index":
			w.write("[[vertex_id]]")
		case "position":
			w.write("[[position]]")
		default:
			fail("unknown builtin '%s'", a.Name)
		}
	case *wgsl.StageAttribute:
		switch a.Stage {
		case wgsl.StageVertex:
			w.write("[[vertex]]")
		case wgsl.StageFragment:
			w.write("[[fragment]]")
		case wgsl.StageCompute:
			w.write("[[compute]]")
		default:
			fail("unsupported shader stage: %d", a.Stage)
		}
	case *wgsl.LocationAttribute:
		w.write("[[attribute(%d)]]", a.Index)
	default:
		fail("unsupported attribute kind: %T", attr)
	}
}
