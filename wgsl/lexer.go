package wgsl

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes WGSL source code.
type Lexer struct {
	source string
	pos    int
	line   int
	column int
	start  int
	tokens []Token
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source string) *Lexer {
	// Estimate ~1 token per 6 characters of source.
	estTokens := len(source) / 6
	if estTokens < 16 {
		estTokens = 16
	}
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		tokens: make([]Token, 0, estTokens),
	}
}

// Tokenize returns all tokens from the source.
func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = l.pos
		l.scanToken()
	}

	l.tokens = append(l.tokens, Token{
		Kind:   TokenEOF,
		Line:   l.line,
		Column: l.column,
	})

	return l.tokens, nil
}

func (l *Lexer) scanToken() {
	r := l.advance()

	switch r {
	case '(':
		l.addToken(TokenLeftParen)
	case ')':
		l.addToken(TokenRightParen)
	case '{':
		l.addToken(TokenLeftBrace)
	case '}':
		l.addToken(TokenRightBrace)
	case '[':
		l.addToken(TokenLeftBracket)
	case ']':
		l.addToken(TokenRightBracket)
	case ',':
		l.addToken(TokenComma)
	case '.':
		l.addToken(TokenDot)
	case ':':
		l.addToken(TokenColon)
	case ';':
		l.addToken(TokenSemicolon)
	case '@':
		l.addToken(TokenAt)
	case '~':
		l.addToken(TokenTilde)
	case '%':
		l.addToken(TokenPercent)
	case '^':
		l.addToken(TokenCaret)
	case '+':
		l.addToken(TokenPlus)
	case '*':
		l.addToken(TokenStar)
	case '&':
		l.addToken(TokenAmpersand)
	case '|':
		l.addToken(TokenPipe)
	case '=':
		l.addToken(TokenEqual)
	case '!':
		l.addToken(TokenBang)
	case '<':
		l.addToken(TokenLess)
	case '>':
		l.addToken(TokenGreater)
	case '-':
		if l.match('>') {
			l.addToken(TokenArrow)
		} else {
			l.addToken(TokenMinus)
		}
	case '/':
		if l.match('/') {
			// Line comment
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else if l.match('*') {
			// Block comment
			l.blockComment()
		} else {
			l.addToken(TokenSlash)
		}

	// Whitespace
	case ' ', '\r', '\t':
		// Ignore whitespace
	case '\n':
		l.line++
		l.column = 1

	default:
		if isDigit(r) {
			l.number()
		} else if isAlpha(r) || r == '_' {
			l.identifier()
		} else {
			l.addToken(TokenError)
		}
	}
}

func (l *Lexer) blockComment() {
	depth := 1
	for depth > 0 && !l.isAtEnd() {
		if l.peek() == '/' && l.peekNext() == '*' {
			l.advance()
			l.advance()
			depth++
		} else if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			depth--
		} else {
			if l.peek() == '\n' {
				l.line++
				l.column = 0
			}
			l.advance()
		}
	}
}

func (l *Lexer) number() {
	// Hex integer: 0x1F, 0X1Fu
	if l.source[l.start] == '0' && l.pos < len(l.source) {
		next := l.peek()
		if next == 'x' || next == 'X' {
			l.advance()
			for isHexDigit(l.peek()) {
				l.advance()
			}
			if l.peek() == 'i' || l.peek() == 'u' {
				l.advance()
			}
			l.addToken(TokenIntLiteral)
			return
		}
	}

	for isDigit(l.peek()) {
		l.advance()
	}

	// Look for a fractional part.
	// WGSL allows "1." as a float literal (no trailing digit required).
	// "1.x" is member access (int 1, then .x), but "1." "1.0" "1.5" are floats.
	nextAfterDot := l.peekNext()
	if l.peek() == '.' && !isAlpha(nextAfterDot) && nextAfterDot != '_' {
		l.advance() // consume '.'
		for isDigit(l.peek()) {
			l.advance()
		}
		l.exponent()
		// Float suffix
		if l.peek() == 'f' || l.peek() == 'h' {
			l.advance()
		}
		l.addToken(TokenFloatLiteral)
		return
	}

	// Exponent without decimal point: 1e5
	if l.peek() == 'e' || l.peek() == 'E' {
		l.exponent()
		if l.peek() == 'f' || l.peek() == 'h' {
			l.advance()
		}
		l.addToken(TokenFloatLiteral)
		return
	}

	// Float suffix without decimal point: 1f, 1h
	if l.peek() == 'f' || l.peek() == 'h' {
		l.advance()
		l.addToken(TokenFloatLiteral)
		return
	}

	// Integer suffixes
	if l.peek() == 'i' || l.peek() == 'u' {
		l.advance()
	}

	l.addToken(TokenIntLiteral)
}

func (l *Lexer) exponent() {
	if l.peek() != 'e' && l.peek() != 'E' {
		return
	}
	l.advance()
	if l.peek() == '+' || l.peek() == '-' {
		l.advance()
	}
	for isDigit(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) identifier() {
	for isAlphaNumeric(l.peek()) || l.peek() == '_' {
		l.advance()
	}

	text := l.source[l.start:l.pos]
	kind := TokenIdent
	if kw, ok := keywords[text]; ok {
		kind = kw
	}
	l.addToken(kind)
}

var keywords = map[string]TokenKind{
	"break":    TokenBreak,
	"const":    TokenConst,
	"continue": TokenContinue,
	"discard":  TokenDiscard,
	"else":     TokenElse,
	"false":    TokenFalse,
	"fn":       TokenFn,
	"for":      TokenFor,
	"if":       TokenIf,
	"let":      TokenLet,
	"loop":     TokenLoop,
	"return":   TokenReturn,
	"struct":   TokenStruct,
	"switch":   TokenSwitch,
	"true":     TokenTrue,
	"var":      TokenVar,
	"while":    TokenWhile,

	// Types
	"bool":   TokenBool,
	"f16":    TokenF16,
	"f32":    TokenF32,
	"i32":    TokenI32,
	"u32":    TokenU32,
	"vec2":   TokenVec2,
	"vec3":   TokenVec3,
	"vec4":   TokenVec4,
	"mat2x2": TokenMat2x2,
	"mat2x3": TokenMat2x3,
	"mat2x4": TokenMat2x4,
	"mat3x2": TokenMat3x2,
	"mat3x3": TokenMat3x3,
	"mat3x4": TokenMat3x4,
	"mat4x2": TokenMat4x2,
	"mat4x3": TokenMat4x3,
	"mat4x4": TokenMat4x4,
	"array":  TokenArray,
}

func (l *Lexer) addToken(kind TokenKind) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Lexeme: l.source[l.start:l.pos],
		Line:   l.line,
		Column: l.column - (l.pos - l.start),
	})
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	l.column++
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r
}

func (l *Lexer) peekNext() rune {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.source[l.pos:])
	r, _ := utf8.DecodeRuneInString(l.source[l.pos+size:])
	return r
}

func (l *Lexer) match(expected rune) bool {
	if l.isAtEnd() {
		return false
	}
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	if r != expected {
		return false
	}
	l.pos += size
	l.column++
	return true
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
