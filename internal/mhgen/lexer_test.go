package mhgen

import (
	"testing"
)

func TestLexer_Tokens(t *testing.T) {
	type tc struct {
		input string
		want  []TokenType
	}

	tests := map[string]tc{
		"element with markers": {
			input: "div.a#b",
			want:  []TokenType{TokenIdent, TokenDot, TokenIdent, TokenHash, TokenIdent, TokenEOF},
		},
		"attribute list": {
			input: `(x = "y", z)`,
			want:  []TokenType{TokenLParen, TokenIdent, TokenEquals, TokenString, TokenComma, TokenIdent, TokenRParen, TokenEOF},
		},
		"children and terminator": {
			input: "p { br; }",
			want:  []TokenType{TokenIdent, TokenLBrace, TokenIdent, TokenSemicolon, TokenRBrace, TokenEOF},
		},
		"hyphenated name": {
			input: "data-id",
			want:  []TokenType{TokenIdent, TokenMinus, TokenIdent, TokenEOF},
		},
		"newlines are tokens": {
			input: "a\nb",
			want:  []TokenType{TokenIdent, TokenNewline, TokenIdent, TokenEOF},
		},
		"comments are skipped": {
			input: "a // trailing\n/* block */ b",
			want:  []TokenType{TokenIdent, TokenNewline, TokenIdent, TokenEOF},
		},
		"double equals is not an assignment": {
			input: "a == b",
			want:  []TokenType{TokenIdent, TokenPunct, TokenIdent, TokenEOF},
		},
		"numbers": {
			input: "1 2.5 .5",
			want:  []TokenType{TokenInt, TokenFloat, TokenFloat, TokenEOF},
		},
		"plus": {
			input: `+"x"`,
			want:  []TokenType{TokenPlus, TokenString, TokenEOF},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.mh", tt.input)
			for i, want := range tt.want {
				tok := l.Next()
				if tok.Type != want {
					t.Fatalf("token %d: got %v, want %v", i, tok, want)
				}
			}
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	l := NewLexer("test.mh", "div\n  span")

	div := l.Next()
	if div.Span.Start.Line != 1 || div.Span.Start.Column != 1 {
		t.Errorf("div at %v, want 1:1", div.Span.Start)
	}
	l.Next() // newline
	span := l.Next()
	if span.Span.Start.Line != 2 || span.Span.Start.Column != 3 {
		t.Errorf("span at %v, want 2:3", span.Span.Start)
	}
	if span.Span.Start.Offset != 6 {
		t.Errorf("span offset = %d, want 6", span.Span.Start.Offset)
	}
}

func TestLexer_Errors(t *testing.T) {
	type tc struct {
		input   string
		message string
	}

	tests := map[string]tc{
		"unterminated string": {
			input:   `"abc`,
			message: "unterminated string literal",
		},
		"unterminated raw string": {
			input:   "`abc",
			message: "unterminated raw string literal",
		},
		"unterminated block comment": {
			input:   "/* abc",
			message: "unterminated block comment",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tok := NewLexer("test.mh", tt.input).Next()
			if tok.Type != TokenError {
				t.Fatalf("got %v, want error token", tok)
			}
			if tok.Literal != tt.message {
				t.Errorf("message = %q, want %q", tok.Literal, tt.message)
			}
		})
	}
}

func TestLexer_StringValue(t *testing.T) {
	tok := NewLexer("test.mh", `"a\tb\"c"`).Next()
	if tok.Type != TokenString {
		t.Fatalf("got %v, want string", tok)
	}
	if tok.Literal != "a\tb\"c" {
		t.Errorf("Literal = %q", tok.Literal)
	}
}

func TestLexer_ScanExpr(t *testing.T) {
	type tc struct {
		input string
		mode  exprMode
		want  string
		rest  TokenType // first token after the expression
	}

	tests := map[string]tc{
		"node expression ends at semicolon": {
			input: ` x + 1; div`,
			mode:  exprNode,
			want:  "x + 1",
			rest:  TokenSemicolon,
		},
		"node expression ends at closing brace": {
			input: ` name }`,
			mode:  exprNode,
			want:  "name",
			rest:  TokenRBrace,
		},
		"node expression ends at newline": {
			input: " title\n br",
			mode:  exprNode,
			want:  "title",
			rest:  TokenNewline,
		},
		"node expression continues after operator": {
			input: " a +\n\tb\n",
			mode:  exprNode,
			want:  "a +\n\tb",
			rest:  TokenNewline,
		},
		"brackets are balanced": {
			input: ` f(a, b)[0]; x`,
			mode:  exprNode,
			want:  "f(a, b)[0]",
			rest:  TokenSemicolon,
		},
		"strings are skipped": {
			input: ` "a;}" + ` + "`b)`" + `;`,
			mode:  exprNode,
			want:  `"a;}" + ` + "`b)`",
			rest:  TokenSemicolon,
		},
		"attribute value ends at comma": {
			input: ` f(1, 2), y`,
			mode:  exprAttrValue,
			want:  "f(1, 2)",
			rest:  TokenComma,
		},
		"attribute value ends at paren": {
			input: ` "x")`,
			mode:  exprAttrValue,
			want:  `"x"`,
			rest:  TokenRParen,
		},
		"attribute value spans lines": {
			input: " a &&\n b)",
			mode:  exprAttrValue,
			want:  "a &&\n b",
			rest:  TokenRParen,
		},
		"dynamic name ends at assignment": {
			input: ` "data-" + k = v)`,
			mode:  exprAttrName,
			want:  `"data-" + k`,
			rest:  TokenEquals,
		},
		"dynamic name keeps comparison": {
			input: ` a == b)`,
			mode:  exprAttrName,
			want:  `a == b`,
			rest:  TokenRParen,
		},
		"trailing comment is not part of expression": {
			input: " x // note\n",
			mode:  exprNode,
			want:  "x",
			rest:  TokenNewline,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.mh", tt.input)
			expr, err := l.ScanExpr(0, tt.mode)
			if err != nil {
				t.Fatalf("ScanExpr() error = %v", err)
			}
			if expr.Code != tt.want {
				t.Errorf("Code = %q, want %q", expr.Code, tt.want)
			}
			if got := l.source[expr.Span.Start.Offset:expr.Span.End.Offset]; got != tt.want {
				t.Errorf("span covers %q, want %q", got, tt.want)
			}
			if tok := l.Next(); tok.Type != tt.rest {
				t.Errorf("next token = %v, want %v", tok, tt.rest)
			}
		})
	}
}

func TestLexer_ScanExprErrors(t *testing.T) {
	type tc struct {
		input   string
		mode    exprMode
		message string
	}

	tests := map[string]tc{
		"empty": {
			input:   " ;",
			mode:    exprNode,
			message: "expected expression",
		},
		"unterminated string": {
			input:   ` "abc`,
			mode:    exprAttrValue,
			message: "unterminated literal in expression",
		},
		"unterminated raw string": {
			input:   " `abc",
			mode:    exprNode,
			message: "unterminated raw string literal in expression",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewLexer("test.mh", tt.input).ScanExpr(0, tt.mode)
			if err == nil {
				t.Fatal("ScanExpr() error = nil")
			}
			if err.Message != tt.message {
				t.Errorf("Message = %q, want %q", err.Message, tt.message)
			}
		})
	}
}

func TestLexer_ReadBalanced(t *testing.T) {
	l := NewLexer("test.mh", `(a string, b func(int) ")") {`)
	got, err := l.ReadBalanced(0, '(', ')')
	if err != nil {
		t.Fatalf("ReadBalanced() error = %v", err)
	}
	if want := `a string, b func(int) ")"`; got != want {
		t.Errorf("ReadBalanced() = %q, want %q", got, want)
	}
	if tok := l.Next(); tok.Type != TokenLBrace {
		t.Errorf("next token = %v, want {", tok)
	}
}
