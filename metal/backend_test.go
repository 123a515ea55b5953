package metal

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/wgslc/wgsl"
)

// AST builders shared by the tests in this package.

func namedType(name string) *wgsl.NamedType { return &wgsl.NamedType{Name: name} }

func vecType(base wgsl.ParameterizedKind, elem string) *wgsl.ParameterizedType {
	return &wgsl.ParameterizedType{Base: base, Element: namedType(elem)}
}

func arrayOf(elem wgsl.Type, count int64) *wgsl.ArrayType {
	return &wgsl.ArrayType{Element: elem, Count: intLit(count)}
}

func stage(s wgsl.ShaderStage) *wgsl.StageAttribute { return &wgsl.StageAttribute{Stage: s} }

func builtin(name string) *wgsl.BuiltinAttribute { return &wgsl.BuiltinAttribute{Name: name} }

func ident(name string) *wgsl.Ident { return &wgsl.Ident{Name: name} }

func intLit(v int64) *wgsl.IntLiteral { return &wgsl.IntLiteral{Value: v} }

func floatLit(v float64) *wgsl.FloatLiteral { return &wgsl.FloatLiteral{Value: v} }

func neg(e wgsl.Expr) *wgsl.UnaryExpr { return &wgsl.UnaryExpr{Op: wgsl.UnaryNegate, Operand: e} }

func body(stmts ...wgsl.Stmt) *wgsl.BlockStmt { return &wgsl.BlockStmt{Statements: stmts} }

// fragmentMain is the smallest complete module: a fragment entry point
// returning a constant.
func fragmentMain() *wgsl.ShaderModule {
	return &wgsl.ShaderModule{
		Declarations: []wgsl.Decl{
			&wgsl.FunctionDecl{
				Name:       "main",
				Attributes: []wgsl.Attribute{stage(wgsl.StageFragment)},
				ReturnType: namedType("f32"),
				Body:       body(&wgsl.ReturnStmt{Value: floatLit(1.0)}),
			},
		},
	}
}

func TestCompile_EmptyModule(t *testing.T) {
	result, entryPoints, err := Compile(&wgsl.ShaderModule{})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if result != "" {
		t.Errorf("Expected empty output for empty module, got %q", result)
	}
	if entryPoints.Vertex != "" || entryPoints.Fragment != "" {
		t.Errorf("Expected empty entry points, got %+v", entryPoints)
	}
}

func TestCompile_FragmentFunction(t *testing.T) {
	result, _, err := Compile(fragmentMain())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	want := "[[fragment]] float main()\n{\n    return 1.0;\n}\n\n"
	if result != want {
		t.Errorf("output mismatch:\ngot:\n%q\nwant:\n%q", result, want)
	}
}

func TestCompile_VertexShader(t *testing.T) {
	vec2f := vecType(wgsl.Vec2, "f32")
	vec4f := vecType(wgsl.Vec4, "f32")
	vec2Of := func(x, y wgsl.Expr) *wgsl.CallExpr {
		return &wgsl.CallExpr{Target: vec2f, Args: []wgsl.Expr{x, y}}
	}

	module := &wgsl.ShaderModule{
		Declarations: []wgsl.Decl{
			&wgsl.StructDecl{
				Name: "VertexOutput",
				Members: []*wgsl.StructMember{
					{
						Name:       "position",
						Type:       vec4f,
						Attributes: []wgsl.Attribute{builtin("position")},
					},
				},
			},
			&wgsl.FunctionDecl{
				Name:       "vs_main",
				Attributes: []wgsl.Attribute{stage(wgsl.StageVertex)},
				Params: []*wgsl.Parameter{
					{
						Name:       "vid",
						Type:       namedType("u32"),
						Attributes: []wgsl.Attribute{builtin("vertex_index")},
					},
				},
				ReturnType: namedType("VertexOutput"),
				Body: body(
					&wgsl.VarDecl{
						Name: "positions",
						Type: arrayOf(vec2f, 3),
						Init: &wgsl.CallExpr{
							Target: arrayOf(vec2f, 3),
							Args: []wgsl.Expr{
								vec2Of(floatLit(0.0), floatLit(0.5)),
								vec2Of(neg(floatLit(0.5)), neg(floatLit(0.5))),
								vec2Of(floatLit(0.5), neg(floatLit(0.5))),
							},
						},
					},
					&wgsl.VarDecl{Name: "out", Type: namedType("VertexOutput")},
					&wgsl.AssignStmt{
						Left: &wgsl.MemberExpr{Expr: ident("out"), Member: "position"},
						Right: &wgsl.CallExpr{
							Target: vec4f,
							Args: []wgsl.Expr{
								&wgsl.IndexExpr{Expr: ident("positions"), Index: ident("vid")},
								floatLit(0.0),
								floatLit(1.0),
							},
						},
					},
					&wgsl.ReturnStmt{Value: ident("out")},
				),
			},
		},
	}

	result, _, err := Compile(module)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	want := `struct VertexOutput {
    vec<float, 4> position [[position]];
};

[[vertex]] VertexOutput vs_main(unsigned vid [[vertex_id]])
{
    array<vec<float, 2>, 3> positions = {
        vec<float, 2>(0.0, 0.5),
        vec<float, 2>(-0.5, -0.5),
        vec<float, 2>(0.5, -0.5),
    };
    VertexOutput out;
    out.position = vec<float, 4>(positions[vid], 0.0, 1.0);
    return out;
}

`
	if result != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", result, want)
	}
}

func TestCompile_DeclarationOrderPreserved(t *testing.T) {
	fn := func(name string) *wgsl.FunctionDecl {
		return &wgsl.FunctionDecl{
			Name:       name,
			ReturnType: namedType("f32"),
			Body:       body(&wgsl.ReturnStmt{Value: floatLit(0.0)}),
		}
	}
	module := &wgsl.ShaderModule{
		Declarations: []wgsl.Decl{
			fn("first"),
			&wgsl.StructDecl{Name: "Middle", Members: []*wgsl.StructMember{
				{Name: "x", Type: namedType("f32")},
			}},
			fn("last"),
		},
	}

	result, _, err := Compile(module)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	first := strings.Index(result, "float first(")
	middle := strings.Index(result, "struct Middle {")
	last := strings.Index(result, "float last(")
	if first < 0 || middle < 0 || last < 0 {
		t.Fatalf("missing declarations in output:\n%s", result)
	}
	if !(first < middle && middle < last) {
		t.Errorf("declarations reordered: first=%d middle=%d last=%d", first, middle, last)
	}
}

func TestEmit_AppendsToCallerBuilder(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("// prelude\n")

	if _, err := Emit(&sb, fragmentMain()); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	want := "// prelude\n[[fragment]] float main()\n{\n    return 1.0;\n}\n\n"
	if sb.String() != want {
		t.Errorf("output mismatch:\ngot:\n%q\nwant:\n%q", sb.String(), want)
	}
}

func TestCompile_EntryPointsAreEmpty(t *testing.T) {
	// Entry point collection is a stub: names stay empty even when stage
	// attributes are present.
	_, entryPoints, err := Compile(fragmentMain())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if entryPoints.Vertex != "" {
		t.Errorf("Vertex = %q, want empty", entryPoints.Vertex)
	}
	if entryPoints.Fragment != "" {
		t.Errorf("Fragment = %q, want empty", entryPoints.Fragment)
	}
}

func TestCompile_MissingReturnTypeFault(t *testing.T) {
	module := &wgsl.ShaderModule{
		Declarations: []wgsl.Decl{
			&wgsl.FunctionDecl{
				Name: "broken",
				Body: body(),
			},
		},
	}

	result, _, err := Compile(module)
	if err == nil {
		t.Fatal("Expected internal error, got nil")
	}

	var internal *InternalError
	if !errors.As(err, &internal) {
		t.Fatalf("Expected *InternalError, got %T: %v", err, err)
	}
	if !strings.Contains(internal.Message, "function 'broken' has no return type") {
		t.Errorf("unexpected message: %q", internal.Message)
	}
	if result != "" {
		t.Errorf("Expected empty result after fault, got %q", result)
	}
}

func TestCompile_UnknownBuiltinFault(t *testing.T) {
	module := &wgsl.ShaderModule{
		Declarations: []wgsl.Decl{
			&wgsl.FunctionDecl{
				Name: "main",
				Params: []*wgsl.Parameter{
					{
						Name:       "iid",
						Type:       namedType("u32"),
						Attributes: []wgsl.Attribute{builtin("instance_index")},
					},
				},
				ReturnType: namedType("f32"),
				Body:       body(&wgsl.ReturnStmt{Value: floatLit(0.0)}),
			},
		},
	}

	_, _, err := Compile(module)
	if err == nil {
		t.Fatal("Expected internal error, got nil")
	}
	if !strings.Contains(err.Error(), "unknown builtin 'instance_index'") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInternalError_Message(t *testing.T) {
	err := &InternalError{Message: "boom"}
	want := "metal: internal error: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestEmit_ForeignPanicNotConverted(t *testing.T) {
	// Only generator faults become InternalError; anything else must
	// keep propagating.
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Expected panic to propagate")
		}
	}()

	var sb strings.Builder
	_, _ = Emit(&sb, nil)
}
