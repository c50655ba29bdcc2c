package mhgen

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Special tokens
	TokenEOF     TokenType = iota // end of file
	TokenError                    // lexer error, message in Literal
	TokenNewline                  // newline

	// Literals
	TokenIdent     // identifier
	TokenInt       // integer literal: 123
	TokenFloat     // float literal: 1.23
	TokenString    // string literal: "..."
	TokenRawString // raw string literal: `...`
	TokenRune      // rune literal: 'x'

	// Punctuation
	TokenLParen    // (
	TokenRParen    // )
	TokenLBrace    // {
	TokenRBrace    // }
	TokenDot       // .
	TokenHash      // #
	TokenComma     // ,
	TokenSemicolon // ;
	TokenEquals    // =
	TokenPlus      // +
	TokenMinus     // -
	TokenPunct     // any other operator character, only valid inside expressions
)

// tokenNames maps token types to their string names for debugging.
var tokenNames = map[TokenType]string{
	TokenEOF:       "EOF",
	TokenError:     "Error",
	TokenNewline:   "Newline",
	TokenIdent:     "Ident",
	TokenInt:       "Int",
	TokenFloat:     "Float",
	TokenString:    "String",
	TokenRawString: "RawString",
	TokenRune:      "Rune",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
	TokenDot:       ".",
	TokenHash:      "#",
	TokenComma:     ",",
	TokenSemicolon: ";",
	TokenEquals:    "=",
	TokenPlus:      "+",
	TokenMinus:     "-",
	TokenPunct:     "Punct",
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Token represents a lexical token with its type, literal value, and source span.
type Token struct {
	Type    TokenType
	Literal string
	Span    Span
}

// Pos returns the start of the token.
func (t Token) Pos() Position {
	return t.Span.Start
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("%s at %d:%d", t.Type, t.Span.Start.Line, t.Span.Start.Column)
	}
	lit := t.Literal
	if len(lit) > 20 {
		lit = lit[:17] + "..."
	}
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, lit, t.Span.Start.Line, t.Span.Start.Column)
}

// describe names the token the way error messages refer to it.
func (t Token) describe() string {
	switch t.Type {
	case TokenEOF:
		return "end of input"
	case TokenNewline:
		return "newline"
	case TokenIdent, TokenInt, TokenFloat, TokenPunct:
		return fmt.Sprintf("%q", t.Literal)
	case TokenString, TokenRawString:
		return "string literal"
	case TokenRune:
		return "rune literal"
	}
	return fmt.Sprintf("%q", t.Type.String())
}

// Position represents a source code location for error reporting.
// Line and Column are 1-based; Column counts runes.
type Position struct {
	File   string
	Line   int
	Column int
	Offset int // byte offset into the source
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span is a half-open source range [Start, End).
type Span struct {
	Start Position
	End   Position
}

// Join returns the smallest span covering s and other.
func (s Span) Join(other Span) Span {
	out := s
	if other.Start.Offset < out.Start.Offset {
		out.Start = other.Start
	}
	if other.End.Offset > out.End.Offset {
		out.End = other.End
	}
	return out
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}
