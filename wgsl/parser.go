package wgsl

import (
	"fmt"
	"strconv"
)

// Parser parses WGSL tokens into an AST.
//
// The accepted grammar covers the constructs the Metal backend can emit:
// function and struct declarations, var statements, returns, assignments,
// bare call statements, and expressions built from literals, identifiers,
// unary minus, indexing, member access and calls. Anything else is
// rejected here so the backend never sees a node it cannot handle.
type Parser struct {
	tokens  []Token
	current int
	errors  []ParseError
}

// ParseError represents a parsing error.
type ParseError struct {
	Message string
	Token   Token
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Token.Line, e.Token.Column, e.Message)
}

// NewParser creates a new parser for the given tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
	}
}

// Parse parses the tokens and returns a ShaderModule AST.
func (p *Parser) Parse() (*ShaderModule, error) {
	module := &ShaderModule{}

	for !p.isAtEnd() {
		decl, err := p.declaration()
		if err != nil {
			p.errors = append(p.errors, *err)
			p.synchronize()
			continue
		}
		module.Declarations = append(module.Declarations, decl)
	}

	if len(p.errors) > 0 {
		return module, fmt.Errorf("parsing failed with %d error(s): %w", len(p.errors), p.errors[0])
	}

	return module, nil
}

// declaration parses a top-level declaration.
func (p *Parser) declaration() (Decl, *ParseError) {
	attrs, err := p.attributes()
	if err != nil {
		return nil, err
	}

	switch {
	case p.check(TokenFn):
		return p.functionDecl(attrs)
	case p.check(TokenStruct):
		if len(attrs) > 0 {
			return nil, &ParseError{Message: "attributes are not allowed on struct declarations", Token: p.peek()}
		}
		return p.structDecl()
	case p.check(TokenVar), p.check(TokenLet), p.check(TokenConst):
		return nil, &ParseError{
			Message: fmt.Sprintf("module-scope '%s' declarations are not supported", p.peek().Kind),
			Token:   p.peek(),
		}
	default:
		tok := p.peek()
		return nil, &ParseError{
			Message: fmt.Sprintf("unexpected token %s, expected declaration", tok.Kind),
			Token:   tok,
		}
	}
}

// attributes parses a list of attributes (@builtin(name), @location(n),
// @vertex, @fragment, @compute). Attribute names outside that set are
// rejected here; builtin name validity is checked later by Check.
func (p *Parser) attributes() ([]Attribute, *ParseError) {
	var attrs []Attribute

	for p.check(TokenAt) {
		start := p.peek()
		p.advance() // consume @

		if !p.check(TokenIdent) {
			return nil, &ParseError{Message: "expected attribute name after '@'", Token: p.peek()}
		}
		name := p.advance()
		span := Span{Start: Position{Line: start.Line, Column: start.Column}}

		switch name.Lexeme {
		case "vertex":
			attrs = append(attrs, &StageAttribute{Stage: StageVertex, Span: span})
		case "fragment":
			attrs = append(attrs, &StageAttribute{Stage: StageFragment, Span: span})
		case "compute":
			attrs = append(attrs, &StageAttribute{Stage: StageCompute, Span: span})
		case "builtin":
			if err := p.expectErr(TokenLeftParen); err != nil {
				return nil, err
			}
			if !p.check(TokenIdent) {
				return nil, &ParseError{Message: "expected builtin name", Token: p.peek()}
			}
			builtin := p.advance()
			if err := p.expectErr(TokenRightParen); err != nil {
				return nil, err
			}
			attrs = append(attrs, &BuiltinAttribute{Name: builtin.Lexeme, Span: span})
		case "location":
			if err := p.expectErr(TokenLeftParen); err != nil {
				return nil, err
			}
			negative := p.match(TokenMinus)
			if !p.check(TokenIntLiteral) {
				return nil, &ParseError{Message: "expected location index", Token: p.peek()}
			}
			num := p.advance()
			value, _, convErr := intLiteralValue(num.Lexeme)
			if convErr != nil {
				return nil, &ParseError{Message: fmt.Sprintf("invalid location index %q", num.Lexeme), Token: num}
			}
			if err := p.expectErr(TokenRightParen); err != nil {
				return nil, err
			}
			index := int(value)
			if negative {
				index = -index
			}
			attrs = append(attrs, &LocationAttribute{Index: index, Span: span})
		default:
			return nil, &ParseError{
				Message: fmt.Sprintf("unknown attribute '@%s'", name.Lexeme),
				Token:   name,
			}
		}
	}

	return attrs, nil
}

// functionDecl parses a function declaration. The return type is
// mandatory; the backend has no emission rule for typeless functions.
func (p *Parser) functionDecl(attrs []Attribute) (*FunctionDecl, *ParseError) {
	start := p.peek()
	if !p.match(TokenFn) {
		return nil, &ParseError{Message: "expected 'fn'", Token: p.peek()}
	}

	if !p.check(TokenIdent) {
		return nil, &ParseError{Message: "expected function name", Token: p.peek()}
	}
	name := p.advance()

	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}

	params := make([]*Parameter, 0, 4) // most functions have few params
	for !p.check(TokenRightParen) && !p.isAtEnd() {
		param, err := p.parameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if !p.match(TokenComma) {
			break
		}
	}

	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}

	if !p.match(TokenArrow) {
		return nil, &ParseError{
			Message: "expected '->': function declarations require a return type",
			Token:   p.peek(),
		}
	}
	if p.check(TokenAt) {
		return nil, &ParseError{Message: "return type attributes are not supported", Token: p.peek()}
	}
	returnType, err := p.typeSpec()
	if err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &FunctionDecl{
		Name:       name.Lexeme,
		Attributes: attrs,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		Span: Span{
			Start: Position{Line: start.Line, Column: start.Column},
		},
	}, nil
}

// parameter parses a function parameter.
func (p *Parser) parameter() (*Parameter, *ParseError) {
	attrs, err := p.attributes()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenIdent) {
		return nil, &ParseError{Message: "expected parameter name", Token: p.peek()}
	}
	name := p.advance()

	if err := p.expectErr(TokenColon); err != nil {
		return nil, err
	}

	paramType, err := p.typeSpec()
	if err != nil {
		return nil, err
	}

	return &Parameter{
		Name:       name.Lexeme,
		Type:       paramType,
		Attributes: attrs,
		Span: Span{
			Start: Position{Line: name.Line, Column: name.Column},
		},
	}, nil
}

// structDecl parses a struct declaration.
func (p *Parser) structDecl() (*StructDecl, *ParseError) {
	start := p.peek()
	if !p.match(TokenStruct) {
		return nil, &ParseError{Message: "expected 'struct'", Token: p.peek()}
	}

	if !p.check(TokenIdent) {
		return nil, &ParseError{Message: "expected struct name", Token: p.peek()}
	}
	name := p.advance()

	if err := p.expectErr(TokenLeftBrace); err != nil {
		return nil, err
	}

	members := make([]*StructMember, 0, 4) // most structs have a few members
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		member, err := p.structMember()
		if err != nil {
			return nil, err
		}
		members = append(members, member)

		// Optional comma between members
		p.match(TokenComma)
	}

	if err := p.expectErr(TokenRightBrace); err != nil {
		return nil, err
	}

	return &StructDecl{
		Name:    name.Lexeme,
		Members: members,
		Span: Span{
			Start: Position{Line: start.Line, Column: start.Column},
		},
	}, nil
}

// structMember parses a struct member.
func (p *Parser) structMember() (*StructMember, *ParseError) {
	attrs, err := p.attributes()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenIdent) {
		return nil, &ParseError{Message: "expected member name", Token: p.peek()}
	}
	name := p.advance()

	if err := p.expectErr(TokenColon); err != nil {
		return nil, err
	}

	memberType, err := p.typeSpec()
	if err != nil {
		return nil, err
	}

	return &StructMember{
		Name:       name.Lexeme,
		Type:       memberType,
		Attributes: attrs,
		Span: Span{
			Start: Position{Line: name.Line, Column: name.Column},
		},
	}, nil
}

// varStmt parses a variable declaration statement. The type annotation is
// mandatory; the backend emits '<type> <name>' and cannot infer one.
func (p *Parser) varStmt() (*VarDecl, *ParseError) {
	start := p.peek()
	if !p.match(TokenVar) {
		return nil, &ParseError{Message: "expected 'var'", Token: p.peek()}
	}
	if p.check(TokenLess) {
		return nil, &ParseError{Message: "address space qualifiers are not supported", Token: p.peek()}
	}

	if !p.check(TokenIdent) {
		return nil, &ParseError{Message: "expected variable name", Token: p.peek()}
	}
	name := p.advance()

	if !p.match(TokenColon) {
		return nil, &ParseError{
			Message: "expected ':': variable declarations require a type",
			Token:   p.peek(),
		}
	}
	varType, err := p.typeSpec()
	if err != nil {
		return nil, err
	}

	var init Expr
	if p.match(TokenEqual) {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		init = e
	}

	p.match(TokenSemicolon)

	return &VarDecl{
		Name: name.Lexeme,
		Type: varType,
		Init: init,
		Span: Span{
			Start: Position{Line: start.Line, Column: start.Column},
		},
	}, nil
}

// typeSpec parses a type specification.
func (p *Parser) typeSpec() (Type, *ParseError) {
	tok := p.peek()

	// Array type: array<f32, 4>. Both element type and count are required.
	if p.check(TokenArray) {
		p.advance() // consume 'array'
		if err := p.expectErr(TokenLess); err != nil {
			return nil, err
		}

		elemType, err := p.typeSpec()
		if err != nil {
			return nil, err
		}

		if !p.match(TokenComma) {
			return nil, &ParseError{
				Message: "array types require an element count",
				Token:   p.peek(),
			}
		}
		// Only a primary expression, so '>' is not taken for a comparison.
		count, err := p.primary()
		if err != nil {
			return nil, err
		}

		if err := p.expectErr(TokenGreater); err != nil {
			return nil, err
		}

		return &ArrayType{
			Element: elemType,
			Count:   count,
			Span: Span{
				Start: Position{Line: tok.Line, Column: tok.Column},
			},
		}, nil
	}

	// Vector or matrix type: vec3<f32>, mat4x4<f32>
	if kind, ok := parameterizedKinds[tok.Kind]; ok {
		p.advance()
		if err := p.expectErr(TokenLess); err != nil {
			return nil, err
		}
		elemType, err := p.typeSpec()
		if err != nil {
			return nil, err
		}
		if err := p.expectErr(TokenGreater); err != nil {
			return nil, err
		}
		return &ParameterizedType{
			Base:    kind,
			Element: elemType,
			Span: Span{
				Start: Position{Line: tok.Line, Column: tok.Column},
			},
		}, nil
	}

	// Scalar keywords and user-defined type names
	if p.isScalarKeyword(tok.Kind) || p.check(TokenIdent) {
		name := p.advance()
		return &NamedType{
			Name: name.Lexeme,
			Span: Span{
				Start: Position{Line: name.Line, Column: name.Column},
			},
		}, nil
	}

	return nil, &ParseError{Message: fmt.Sprintf("expected type, got %s", tok.Kind), Token: tok}
}

var parameterizedKinds = map[TokenKind]ParameterizedKind{
	TokenVec2:   Vec2,
	TokenVec3:   Vec3,
	TokenVec4:   Vec4,
	TokenMat2x2: Mat2x2,
	TokenMat2x3: Mat2x3,
	TokenMat2x4: Mat2x4,
	TokenMat3x2: Mat3x2,
	TokenMat3x3: Mat3x3,
	TokenMat3x4: Mat3x4,
	TokenMat4x2: Mat4x2,
	TokenMat4x3: Mat4x3,
	TokenMat4x4: Mat4x4,
}

// block parses a block statement.
func (p *Parser) block() (*BlockStmt, *ParseError) {
	start := p.peek()
	if err := p.expectErr(TokenLeftBrace); err != nil {
		return nil, err
	}

	stmts := make([]Stmt, 0, 4) // most blocks have a few statements
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if err := p.expectErr(TokenRightBrace); err != nil {
		return nil, err
	}

	return &BlockStmt{
		Statements: stmts,
		Span: Span{
			Start: Position{Line: start.Line, Column: start.Column},
		},
	}, nil
}

// statement parses a statement.
func (p *Parser) statement() (Stmt, *ParseError) {
	switch {
	case p.check(TokenReturn):
		return p.returnStmt()
	case p.check(TokenVar):
		return p.varStmt()
	case p.check(TokenLeftBrace):
		return p.block()
	case p.check(TokenIf), p.check(TokenFor), p.check(TokenWhile), p.check(TokenLoop),
		p.check(TokenSwitch), p.check(TokenBreak), p.check(TokenContinue), p.check(TokenDiscard):
		return nil, &ParseError{
			Message: fmt.Sprintf("unsupported statement '%s'", p.peek().Kind),
			Token:   p.peek(),
		}
	case p.check(TokenLet), p.check(TokenConst):
		return nil, &ParseError{
			Message: fmt.Sprintf("'%s' declarations are not supported, use 'var'", p.peek().Kind),
			Token:   p.peek(),
		}
	default:
		return p.exprOrAssignStmt()
	}
}

// returnStmt parses a return statement.
func (p *Parser) returnStmt() (*ReturnStmt, *ParseError) {
	start := p.advance() // consume 'return'

	var value Expr
	if !p.check(TokenSemicolon) && !p.check(TokenRightBrace) {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		value = e
	}

	p.match(TokenSemicolon)

	return &ReturnStmt{
		Value: value,
		Span: Span{
			Start: Position{Line: start.Line, Column: start.Column},
		},
	}, nil
}

// exprOrAssignStmt parses either an assignment or a bare expression
// statement. Both produce an AssignStmt; a bare expression has a nil Left.
func (p *Parser) exprOrAssignStmt() (Stmt, *ParseError) {
	start := p.peek()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if p.match(TokenEqual) {
		right, err := p.expression()
		if err != nil {
			return nil, err
		}
		p.match(TokenSemicolon)
		return &AssignStmt{
			Left:  expr,
			Right: right,
			Span: Span{
				Start: Position{Line: start.Line, Column: start.Column},
			},
		}, nil
	}

	p.match(TokenSemicolon)
	return &AssignStmt{
		Right: expr,
		Span: Span{
			Start: Position{Line: start.Line, Column: start.Column},
		},
	}, nil
}

// expression parses an expression. The grammar has no binary operators,
// so this goes straight to unary.
func (p *Parser) expression() (Expr, *ParseError) {
	return p.unary()
}

// unary parses unary expressions. Negation is the only unary operator.
func (p *Parser) unary() (Expr, *ParseError) {
	if p.check(TokenMinus) {
		op := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{
			Op:      UnaryNegate,
			Operand: operand,
			Span: Span{
				Start: Position{Line: op.Line, Column: op.Column},
			},
		}, nil
	}

	return p.postfix()
}

// postfix parses postfix expressions (calls, indexing, member access).
func (p *Parser) postfix() (Expr, *ParseError) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		if p.match(TokenLeftParen) {
			args := make([]Expr, 0, 4)
			for !p.check(TokenRightParen) && !p.isAtEnd() {
				arg, err := p.expression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.match(TokenComma) {
					break
				}
			}
			if err := p.expectErr(TokenRightParen); err != nil {
				return nil, err
			}

			switch callee := expr.(type) {
			case *Ident:
				// Plain call: the target becomes a named type reference,
				// which the backend emits verbatim.
				expr = &CallExpr{
					Target: &NamedType{Name: callee.Name, Span: callee.Span},
					Args:   args,
					Span:   callee.Span,
				}
			case *CallExpr:
				// Type constructor parsed by primary; attach the arguments.
				if callee.Args != nil {
					return nil, &ParseError{Message: "expression is not callable", Token: p.previous()}
				}
				callee.Args = args
			default:
				return nil, &ParseError{Message: "expression is not callable", Token: p.previous()}
			}
		} else if p.match(TokenLeftBracket) {
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if err := p.expectErr(TokenRightBracket); err != nil {
				return nil, err
			}
			expr = &IndexExpr{
				Expr:  expr,
				Index: index,
			}
		} else if p.match(TokenDot) {
			if !p.check(TokenIdent) {
				return nil, &ParseError{Message: "expected member name", Token: p.peek()}
			}
			member := p.advance()
			expr = &MemberExpr{
				Expr:   expr,
				Member: member.Lexeme,
			}
		} else {
			break
		}
	}

	return expr, nil
}

// primary parses primary expressions.
func (p *Parser) primary() (Expr, *ParseError) {
	tok := p.peek()

	switch tok.Kind {
	case TokenIntLiteral:
		p.advance()
		value, suffix, err := intLiteralValue(tok.Lexeme)
		if err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("invalid integer literal %q", tok.Lexeme), Token: tok}
		}
		span := Span{Start: Position{Line: tok.Line, Column: tok.Column}}
		if suffix == 'i' {
			if value > 2147483647 || value < -2147483648 {
				return nil, &ParseError{Message: fmt.Sprintf("integer literal %q overflows i32", tok.Lexeme), Token: tok}
			}
			return &Int32Literal{Value: int32(value), Span: span}, nil
		}
		// Unsuffixed and u-suffixed integers are kept abstract; their
		// textual form is the same either way.
		return &IntLiteral{Value: value, Span: span}, nil

	case TokenFloatLiteral:
		p.advance()
		value, suffix, err := floatLiteralValue(tok.Lexeme)
		if err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("invalid float literal %q", tok.Lexeme), Token: tok}
		}
		if suffix == 'h' {
			return nil, &ParseError{Message: "f16 literals are not supported", Token: tok}
		}
		span := Span{Start: Position{Line: tok.Line, Column: tok.Column}}
		if suffix == 'f' {
			return &Float32Literal{Value: float32(value), Span: span}, nil
		}
		return &FloatLiteral{Value: value, Span: span}, nil

	case TokenTrue, TokenFalse:
		return nil, &ParseError{Message: "boolean literals are not supported", Token: tok}

	case TokenIdent:
		p.advance()
		return &Ident{
			Name: tok.Lexeme,
			Span: Span{
				Start: Position{Line: tok.Line, Column: tok.Column},
			},
		}, nil

	case TokenLeftParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expectErr(TokenRightParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		// Type constructors: vec4<f32>(...), array<f32, 2>(...), f32(...)
		if p.isTypeKeyword(tok.Kind) {
			target, err := p.typeSpec()
			if err != nil {
				return nil, err
			}
			return &CallExpr{
				Target: target,
				Span: Span{
					Start: Position{Line: tok.Line, Column: tok.Column},
				},
			}, nil
		}

		return nil, &ParseError{
			Message: fmt.Sprintf("unexpected token %s in expression", tok.Kind),
			Token:   tok,
		}
	}
}

// intLiteralValue converts an integer literal lexeme, returning the value
// and the i/u suffix if one is present.
func intLiteralValue(lexeme string) (int64, byte, error) {
	var suffix byte
	if n := len(lexeme); n > 0 {
		switch lexeme[n-1] {
		case 'i', 'u':
			suffix = lexeme[n-1]
			lexeme = lexeme[:n-1]
		}
	}
	value, err := strconv.ParseInt(lexeme, 0, 64)
	return value, suffix, err
}

// floatLiteralValue converts a float literal lexeme, returning the value
// and the f/h suffix if one is present.
func floatLiteralValue(lexeme string) (float64, byte, error) {
	var suffix byte
	if n := len(lexeme); n > 0 {
		switch lexeme[n-1] {
		case 'f', 'h':
			suffix = lexeme[n-1]
			lexeme = lexeme[:n-1]
		}
	}
	value, err := strconv.ParseFloat(lexeme, 64)
	return value, suffix, err
}

// Helper methods

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) check(kind TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kind TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectErr(kind TokenKind) *ParseError {
	if p.check(kind) {
		p.advance()
		return nil
	}
	return &ParseError{
		Message: fmt.Sprintf("expected %s, got %s", kind, p.peek().Kind),
		Token:   p.peek(),
	}
}

func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == TokenSemicolon {
			return
		}
		switch p.peek().Kind {
		case TokenFn, TokenStruct, TokenAt:
			return
		}
		p.advance()
	}
}

func (p *Parser) isTypeKeyword(kind TokenKind) bool {
	if _, ok := parameterizedKinds[kind]; ok {
		return true
	}
	return kind == TokenArray || p.isScalarKeyword(kind)
}

func (p *Parser) isScalarKeyword(kind TokenKind) bool {
	switch kind {
	case TokenBool, TokenF16, TokenF32, TokenI32, TokenU32:
		return true
	}
	return false
}
