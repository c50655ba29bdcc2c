package mhgen

import "strings"

// parseNodes parses nodes until '}' or end of input. The closing token is
// left for the caller.
func (p *Parser) parseNodes() ([]Node, error) {
	nodes := []Node{}
	for {
		p.skipNewlines()
		switch p.current.Type {
		case TokenRBrace, TokenEOF:
			return nodes, nil
		}
		node, err := p.parseNode()
		if err != nil {
			return nil, withContext(err, "parsing node list")
		}
		nodes = append(nodes, node)
	}
}

// parseNode parses a single arbitrary node or element.
func (p *Parser) parseNode() (Node, error) {
	if p.current.Type == TokenPlus {
		node, err := p.parseArbitrary()
		if err != nil {
			return nil, withContext(err, "parsing arbitrary node expression")
		}
		return node, nil
	}
	el, err := p.parseElement()
	if err != nil {
		return nil, withContext(err, "parsing HTML element node")
	}
	return el, nil
}

// parseArbitrary parses "+expr" with an optional ';'.
func (p *Parser) parseArbitrary() (*Arbitrary, error) {
	plus := p.current
	expr, err := p.parseExpr(plus.Span.End.Offset, exprNode)
	if err != nil {
		return nil, err
	}
	node := &Arbitrary{Expr: expr, Span: plus.Span.Join(expr.Span)}
	if p.current.Type == TokenSemicolon {
		node.Span = node.Span.Join(p.current.Span)
		p.advance()
	}
	return node, nil
}

// parseElement parses name.class#id(attrs) { children } with every part
// after the name optional.
func (p *Parser) parseElement() (*Element, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, withContext(err, "parsing element name")
	}
	el := &Element{Name: name, SelfClose: true, Span: name.Span}

	// Classes and the ID in any order until the attribute list, the children
	// or the end of the element.
markers:
	for {
		p.skipNewlines()
		switch p.current.Type {
		case TokenDot:
			p.advance()
			class, err := p.parseName()
			if err != nil {
				return nil, withContext(err, "parsing element class")
			}
			el.Classes = append(el.Classes, class)
			el.Span = el.Span.Join(class.Span)
		case TokenHash:
			if el.ID != nil {
				return nil, NewErrorWithHint(p.current.Span, "an element may only have one ID",
					"the first is #"+el.ID.Value)
			}
			p.advance()
			id, err := p.parseName()
			if err != nil {
				return nil, withContext(err, "parsing element ID")
			}
			el.ID = id
			el.Span = el.Span.Join(id.Span)
		case TokenLParen, TokenLBrace, TokenSemicolon, TokenRBrace, TokenEOF:
			break markers
		case TokenError:
			return nil, p.unexpected("")
		default:
			e := NewErrorf(p.current.Span, "unexpected token %s in element", p.current.describe())
			if p.current.Type == TokenIdent || p.current.Type == TokenPlus {
				e.Hint = "separate sibling nodes with ';'"
			}
			return nil, e
		}
	}

	if p.current.Type == TokenLParen {
		attrs, span, err := p.parseAttrs()
		if err != nil {
			return nil, withContext(err, "parsing element attribute")
		}
		el.Attrs = attrs
		el.Span = el.Span.Join(span)
		p.skipNewlines()
	}

	if p.current.Type == TokenLBrace {
		open := p.current
		p.advance()
		children, err := p.parseNodes()
		if err != nil {
			return nil, withContext(err, "parsing inner elements")
		}
		if p.current.Type != TokenRBrace {
			return nil, withContext(NewErrorf(open.Span, "unclosed '{' in element %q", name.Value),
				"parsing inner elements")
		}
		el.Children = children
		el.SelfClose = false
		el.Span = el.Span.Join(p.current.Span)
		p.advance()
	}

	if p.current.Type == TokenSemicolon {
		el.Span = el.Span.Join(p.current.Span)
		p.advance()
	}
	return el, nil
}

// parseName parses a hyphen-joined identifier. Whitespace around the
// hyphens is not part of the name but does not split it either.
func (p *Parser) parseName() (*Name, error) {
	if p.current.Type != TokenIdent {
		return nil, p.unexpected("identifier")
	}
	var sb strings.Builder
	sb.WriteString(p.current.Literal)
	span := p.current.Span
	p.advance()
	for p.current.Type == TokenMinus {
		span = span.Join(p.current.Span)
		p.advance()
		if p.current.Type != TokenIdent {
			return nil, p.unexpected("identifier after '-'")
		}
		sb.WriteByte('-')
		sb.WriteString(p.current.Literal)
		span = span.Join(p.current.Span)
		p.advance()
	}
	return &Name{Value: sb.String(), Span: span}, nil
}
