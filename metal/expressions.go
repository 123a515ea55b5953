package metal

import (
	"math"

	"github.com/gogpu/wgslc/wgsl"
)

// writeExpression emits an expression.
func (w *writer) writeExpression(expr wgsl.Expr) {
	switch e := expr.(type) {
	case *wgsl.CallExpr:
		w.writeCall(e)
	case *wgsl.UnaryExpr:
		w.writeUnary(e)
	case *wgsl.IndexExpr:
		w.writeExpression(e.Expr)
		w.write("[")
		w.writeExpression(e.Index)
		w.write("]")
	case *wgsl.MemberExpr:
		w.writeExpression(e.Expr)
		w.write(".%s", e.Member)
	case *wgsl.Ident:
		w.write("%s", e.Name)
	case *wgsl.IntLiteral:
		w.write("%d", e.Value)
	case *wgsl.Int32Literal:
		w.write("%d", e.Value)
	case *wgsl.FloatLiteral:
		w.writeFloat(e.Value)
	case *wgsl.Float32Literal:
		w.writeFloat32(e.Value)
	default:
		fail("unsupported expression kind: %T", expr)
	}
}

// writeCall emits a call. An array-type target produces a brace
// initializer list with one argument per line and a comma after every
// argument, the last included; anything else produces an ordinary call
// with comma-space separators.
func (w *writer) writeCall(call *wgsl.CallExpr) {
	if _, isArray := call.Target.(*wgsl.ArrayType); isArray {
		w.write("{\n")
		w.pushIndent()
		for _, arg := range call.Args {
			w.writeIndent()
			w.writeExpression(arg)
			w.write(",\n")
		}
		w.popIndent()
		w.writeIndent()
		w.write("}")
		return
	}

	w.writeType(call.Target)
	w.write("(")
	for i, arg := range call.Args {
		if i > 0 {
			w.write(", ")
		}
		w.writeExpression(arg)
	}
	w.write(")")
}

// writeUnary emits a unary expression. The operand is not parenthesized;
// the grammar has no binary operators, so no lower-precedence expression
// can appear here.
func (w *writer) writeUnary(expr *wgsl.UnaryExpr) {
	switch expr.Op {
	case wgsl.UnaryNegate:
		w.write("-")
		w.writeExpression(expr.Operand)
	default:
		fail("unsupported unary operator: %d", expr.Op)
	}
}

// writeFloat emits a float literal, keeping a ".0" on integral values so
// MSL parses them as floating point.
func (w *writer) writeFloat(value float64) {
	if value == math.Trunc(value) && math.Abs(value) < 1e15 {
		w.write("%.1f", value)
		return
	}
	w.write("%g", value)
}

func (w *writer) writeFloat32(value float32) {
	if value == float32(int32(value)) {
		w.write("%.1f", value)
		return
	}
	w.write("%g", value)
}
