// Package wgsl provides the front end for the WGSL subset this
// translator accepts: lexer, parser, AST and validation.
package wgsl

// TokenKind represents the type of token.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenError

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral

	// Operators
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenPercent   // %
	TokenAmpersand // &
	TokenPipe      // |
	TokenCaret     // ^
	TokenTilde     // ~
	TokenBang      // !
	TokenEqual     // =
	TokenLess      // <
	TokenGreater   // >
	TokenDot       // .
	TokenComma     // ,
	TokenColon     // :
	TokenSemicolon // ;
	TokenAt        // @
	TokenArrow     // ->

	// Delimiters
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]

	// Keywords. Control-flow keywords are recognized even though the
	// grammar rejects them, so errors can name the construct.
	TokenBreak
	TokenConst
	TokenContinue
	TokenDiscard
	TokenElse
	TokenFalse
	TokenFn
	TokenFor
	TokenIf
	TokenLet
	TokenLoop
	TokenReturn
	TokenStruct
	TokenSwitch
	TokenTrue
	TokenVar
	TokenWhile

	// Type keywords
	TokenBool
	TokenF16
	TokenF32
	TokenI32
	TokenU32
	TokenVec2
	TokenVec3
	TokenVec4
	TokenMat2x2
	TokenMat2x3
	TokenMat2x4
	TokenMat3x2
	TokenMat3x3
	TokenMat3x4
	TokenMat4x2
	TokenMat4x3
	TokenMat4x4
	TokenArray
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "Error"
	case TokenIdent:
		return "Ident"
	case TokenIntLiteral:
		return "IntLiteral"
	case TokenFloatLiteral:
		return "FloatLiteral"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenPercent:
		return "%"
	case TokenAmpersand:
		return "&"
	case TokenPipe:
		return "|"
	case TokenCaret:
		return "^"
	case TokenTilde:
		return "~"
	case TokenBang:
		return "!"
	case TokenEqual:
		return "="
	case TokenLess:
		return "<"
	case TokenGreater:
		return ">"
	case TokenDot:
		return "."
	case TokenComma:
		return ","
	case TokenColon:
		return ":"
	case TokenSemicolon:
		return ";"
	case TokenAt:
		return "@"
	case TokenArrow:
		return "->"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	case TokenLeftBracket:
		return "["
	case TokenRightBracket:
		return "]"
	case TokenFn:
		return "fn"
	case TokenStruct:
		return "struct"
	case TokenVar:
		return "var"
	case TokenLet:
		return "let"
	case TokenConst:
		return "const"
	case TokenReturn:
		return "return"
	case TokenIf:
		return "if"
	case TokenElse:
		return "else"
	case TokenFor:
		return "for"
	case TokenWhile:
		return "while"
	case TokenLoop:
		return "loop"
	case TokenSwitch:
		return "switch"
	case TokenBreak:
		return "break"
	case TokenContinue:
		return "continue"
	case TokenDiscard:
		return "discard"
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"
	case TokenBool:
		return "bool"
	case TokenF16:
		return "f16"
	case TokenF32:
		return "f32"
	case TokenI32:
		return "i32"
	case TokenU32:
		return "u32"
	case TokenVec2:
		return "vec2"
	case TokenVec3:
		return "vec3"
	case TokenVec4:
		return "vec4"
	case TokenMat2x2:
		return "mat2x2"
	case TokenMat2x3:
		return "mat2x3"
	case TokenMat2x4:
		return "mat2x4"
	case TokenMat3x2:
		return "mat3x2"
	case TokenMat3x3:
		return "mat3x3"
	case TokenMat3x4:
		return "mat3x4"
	case TokenMat4x2:
		return "mat4x2"
	case TokenMat4x3:
		return "mat4x3"
	case TokenMat4x4:
		return "mat4x4"
	case TokenArray:
		return "array"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int
}

// Span represents a source code location span.
type Span struct {
	Start  Position
	End    Position
	Source string // Source file name or identifier
}

// Position represents a position in source code.
type Position struct {
	Line   int
	Column int
	Offset int
}
