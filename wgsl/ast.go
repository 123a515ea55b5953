package wgsl

// ShaderModule represents a WGSL translation unit. Declarations are kept
// in source order; the Metal backend emits them in exactly this order.
type ShaderModule struct {
	Declarations []Decl
}

// Node is the base interface for all AST nodes.
type Node interface {
	Pos() Span
}

// Decl is the interface for declarations.
type Decl interface {
	Node
	declNode()
}

// Stmt is the interface for statements.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the interface for expressions.
type Expr interface {
	Node
	exprNode()
}

// Type is the interface for type references.
type Type interface {
	Node
	typeNode()
}

// Attribute is the interface for attributes (@builtin, @location, stages).
type Attribute interface {
	Node
	attributeNode()
}

// ShaderStage identifies a pipeline stage entry point.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
	StageCompute
)

// String returns the WGSL attribute spelling of the stage.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// Declarations

// StructDecl represents a struct declaration.
type StructDecl struct {
	Name    string
	Members []*StructMember
	Span    Span
}

func (s *StructDecl) Pos() Span { return s.Span }
func (s *StructDecl) declNode() {}

// StructMember represents a struct member.
type StructMember struct {
	Name       string
	Type       Type
	Attributes []Attribute
	Span       Span
}

// FunctionDecl represents a function declaration. The return type is
// required; the parser rejects functions without one.
type FunctionDecl struct {
	Name       string
	Attributes []Attribute
	Params     []*Parameter
	ReturnType Type
	Body       *BlockStmt
	Span       Span
}

func (f *FunctionDecl) Pos() Span { return f.Span }
func (f *FunctionDecl) declNode() {}

// Parameter represents a function parameter.
type Parameter struct {
	Name       string
	Type       Type
	Attributes []Attribute
	Span       Span
}

// VarDecl represents a variable declaration. It can appear as a module
// declaration or as a statement; the backend only accepts the latter.
type VarDecl struct {
	Name string
	Type Type
	Init Expr
	Span Span
}

func (v *VarDecl) Pos() Span { return v.Span }
func (v *VarDecl) declNode() {}
func (v *VarDecl) stmtNode() {}

// Attributes

// BuiltinAttribute represents @builtin(name).
type BuiltinAttribute struct {
	Name string
	Span Span
}

func (b *BuiltinAttribute) Pos() Span      { return b.Span }
func (b *BuiltinAttribute) attributeNode() {}

// LocationAttribute represents @location(n).
type LocationAttribute struct {
	Index int
	Span  Span
}

func (l *LocationAttribute) Pos() Span      { return l.Span }
func (l *LocationAttribute) attributeNode() {}

// StageAttribute represents @vertex, @fragment or @compute.
type StageAttribute struct {
	Stage ShaderStage
	Span  Span
}

func (s *StageAttribute) Pos() Span      { return s.Span }
func (s *StageAttribute) attributeNode() {}

// Types

// NamedType represents a scalar or user-defined type reference.
type NamedType struct {
	Name string
	Span Span
}

func (n *NamedType) Pos() Span { return n.Span }
func (n *NamedType) typeNode() {}

// ArrayType represents array<T, N>. Element and Count are both required.
type ArrayType struct {
	Element Type
	Count   Expr
	Span    Span
}

func (a *ArrayType) Pos() Span { return a.Span }
func (a *ArrayType) typeNode() {}

// ParameterizedKind enumerates the vector and matrix shapes.
type ParameterizedKind uint8

const (
	Vec2 ParameterizedKind = iota
	Vec3
	Vec4
	Mat2x2
	Mat2x3
	Mat2x4
	Mat3x2
	Mat3x3
	Mat3x4
	Mat4x2
	Mat4x3
	Mat4x4
)

// String returns the WGSL spelling of the kind.
func (k ParameterizedKind) String() string {
	switch k {
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	case Mat2x2:
		return "mat2x2"
	case Mat2x3:
		return "mat2x3"
	case Mat2x4:
		return "mat2x4"
	case Mat3x2:
		return "mat3x2"
	case Mat3x3:
		return "mat3x3"
	case Mat3x4:
		return "mat3x4"
	case Mat4x2:
		return "mat4x2"
	case Mat4x3:
		return "mat4x3"
	case Mat4x4:
		return "mat4x4"
	default:
		return "unknown"
	}
}

// ParameterizedType represents a vector or matrix type over an element type.
type ParameterizedType struct {
	Base    ParameterizedKind
	Element Type
	Span    Span
}

func (p *ParameterizedType) Pos() Span { return p.Span }
func (p *ParameterizedType) typeNode() {}

// Statements

// BlockStmt represents a block statement.
type BlockStmt struct {
	Statements []Stmt
	Span       Span
}

func (b *BlockStmt) Pos() Span { return b.Span }
func (b *BlockStmt) stmtNode() {}

// ReturnStmt represents a return statement with an optional value.
type ReturnStmt struct {
	Value Expr
	Span  Span
}

func (r *ReturnStmt) Pos() Span { return r.Span }
func (r *ReturnStmt) stmtNode() {}

// AssignStmt represents an assignment. A nil Left makes it a bare
// expression statement (a call evaluated for its side effects).
type AssignStmt struct {
	Left  Expr
	Right Expr
	Span  Span
}

func (a *AssignStmt) Pos() Span { return a.Span }
func (a *AssignStmt) stmtNode() {}

// Expressions

// Ident represents an identifier.
type Ident struct {
	Name string
	Span Span
}

func (i *Ident) Pos() Span { return i.Span }
func (i *Ident) exprNode() {}

// IntLiteral represents an abstract integer literal (no suffix).
type IntLiteral struct {
	Value int64
	Span  Span
}

func (l *IntLiteral) Pos() Span { return l.Span }
func (l *IntLiteral) exprNode() {}

// Int32Literal represents an i-suffixed integer literal.
type Int32Literal struct {
	Value int32
	Span  Span
}

func (l *Int32Literal) Pos() Span { return l.Span }
func (l *Int32Literal) exprNode() {}

// FloatLiteral represents an abstract float literal (no suffix).
type FloatLiteral struct {
	Value float64
	Span  Span
}

func (l *FloatLiteral) Pos() Span { return l.Span }
func (l *FloatLiteral) exprNode() {}

// Float32Literal represents an f-suffixed float literal.
type Float32Literal struct {
	Value float32
	Span  Span
}

func (l *Float32Literal) Pos() Span { return l.Span }
func (l *Float32Literal) exprNode() {}

// UnaryOp enumerates unary operators. Negation is the only one the
// grammar accepts.
type UnaryOp uint8

const (
	UnaryNegate UnaryOp = iota
)

// UnaryExpr represents a unary expression.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	Span    Span
}

func (u *UnaryExpr) Pos() Span { return u.Span }
func (u *UnaryExpr) exprNode() {}

// IndexExpr represents an index expression.
type IndexExpr struct {
	Expr  Expr
	Index Expr
	Span  Span
}

func (i *IndexExpr) Pos() Span { return i.Span }
func (i *IndexExpr) exprNode() {}

// MemberExpr represents a member access expression.
type MemberExpr struct {
	Expr   Expr
	Member string
	Span   Span
}

func (m *MemberExpr) Pos() Span { return m.Span }
func (m *MemberExpr) exprNode() {}

// CallExpr represents a call. The target is a type reference: a NamedType
// for ordinary calls and casts, a ParameterizedType for vector
// constructors, or an ArrayType for array constructors. The backend picks
// the initializer-list form when the target is an ArrayType.
type CallExpr struct {
	Target Type
	Args   []Expr
	Span   Span
}

func (c *CallExpr) Pos() Span { return c.Span }
func (c *CallExpr) exprNode() {}
