package mhgen

// Parser builds an AST from template source. It stops at the first syntax
// error.
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token

	// comments collected while lexing current and peek
	currentComments []*Comment
	peekComments    []*Comment
}

// NewParser creates a new Parser for the given lexer.
func NewParser(lexer *Lexer) *Parser {
	p := &Parser{lexer: lexer}
	p.advance()
	p.advance()
	return p
}

// ParseNodes parses src as a node list, the body form used by the compiler
// package and by the render command.
func ParseNodes(filename, src string) ([]Node, error) {
	return NewParser(NewLexer(filename, src)).ParseNodes()
}

// Parse parses src as a template file.
func Parse(filename, src string) (*File, error) {
	return NewParser(NewLexer(filename, src)).ParseFile()
}

// ParseNodes parses the whole input as a node list.
func (p *Parser) ParseNodes() ([]Node, error) {
	nodes, err := p.parseNodes()
	if err != nil {
		return nil, withContext(err, "parsing HTML input")
	}
	if p.current.Type != TokenEOF {
		return nil, withContext(p.unexpected("element or '+'"), "parsing HTML input")
	}
	return nodes, nil
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.current = p.peek
	p.currentComments = p.peekComments
	p.peek = p.lexer.Next()
	p.peekComments = p.lexer.ConsumeComments()
}

// resync re-primes current and peek after the lexer was moved by a raw
// capture (ScanExpr or ReadBalanced).
func (p *Parser) resync() {
	p.peek = p.lexer.Next()
	p.peekComments = p.lexer.ConsumeComments()
	p.advance()
	p.currentComments = nil
}

// skipNewlines skips newline tokens, carrying their comments forward so doc
// comments reach the declaration that follows them.
func (p *Parser) skipNewlines() {
	for p.current.Type == TokenNewline {
		carried := p.currentComments
		p.advance()
		if len(carried) > 0 {
			p.currentComments = append(carried, p.currentComments...)
		}
	}
}

// isKeyword reports whether the current token is the identifier kw.
func (p *Parser) isKeyword(kw string) bool {
	return p.current.Type == TokenIdent && p.current.Literal == kw
}

// unexpected reports the current token as not being what the grammar wants.
// Lexical errors carried by error tokens are reported as they are.
func (p *Parser) unexpected(want string) *Error {
	if p.current.Type == TokenError {
		return NewError(p.current.Span, p.current.Literal)
	}
	return NewErrorf(p.current.Span, "expected %s, found %s", want, p.current.describe())
}

// expect consumes a token of the given type or reports an error.
func (p *Parser) expect(typ TokenType, want string) (Token, error) {
	if p.current.Type != typ {
		return Token{}, p.unexpected(want)
	}
	tok := p.current
	p.advance()
	return tok, nil
}
