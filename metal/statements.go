package metal

import "github.com/gogpu/wgslc/wgsl"

// writeStatement emits a statement. Every statement except a block is
// prefixed with the current indentation and terminated with ";\n". Blocks
// carry no braces of their own: their statements are emitted in place at
// the current level, and enclosing constructs control indentation.
func (w *writer) writeStatement(stmt wgsl.Stmt) {
	if block, ok := stmt.(*wgsl.BlockStmt); ok {
		for _, s := range block.Statements {
			w.writeStatement(s)
		}
		return
	}

	w.writeIndent()
	switch s := stmt.(type) {
	case *wgsl.AssignStmt:
		// A nil Left is a bare expression statement.
		if s.Left != nil {
			w.writeExpression(s.Left)
			w.write(" = ")
		}
		w.writeExpression(s.Right)
	case *wgsl.ReturnStmt:
		w.write("return")
		if s.Value != nil {
			w.write(" ")
			w.writeExpression(s.Value)
		}
	case *wgsl.VarDecl:
		w.writeVariable(s)
	default:
		fail("unsupported statement kind: %T", stmt)
	}
	w.write(";\n")
}
