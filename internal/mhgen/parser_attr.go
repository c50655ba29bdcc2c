package mhgen

// parseAttrs parses a parenthesized, comma-separated attribute list. A
// trailing comma is accepted. The returned slice is non-nil even for "()".
func (p *Parser) parseAttrs() ([]Attribute, Span, error) {
	open := p.current
	p.advance()
	attrs := []Attribute{}
	for {
		p.skipNewlines()
		switch p.current.Type {
		case TokenRParen:
			span := open.Span.Join(p.current.Span)
			p.advance()
			return attrs, span, nil
		case TokenEOF:
			return nil, Span{}, NewError(open.Span, "unclosed '(' in attribute list")
		}

		attr, err := p.parseAttribute()
		if err != nil {
			return nil, Span{}, err
		}
		attrs = append(attrs, attr)

		p.skipNewlines()
		switch p.current.Type {
		case TokenComma:
			p.advance()
		case TokenRParen:
		default:
			return nil, Span{}, p.unexpected("',' or ')'")
		}
	}
}

// parseAttribute parses a static attribute (name or name = expr) or a
// dynamic one (dyn expr or dyn expr = expr).
func (p *Parser) parseAttribute() (Attribute, error) {
	if p.isKeyword("dyn") {
		kw := p.current
		name, err := p.parseExpr(kw.Span.End.Offset, exprAttrName)
		if err != nil {
			return nil, err
		}
		attr := &DynAttr{Name: name, Span: kw.Span.Join(name.Span)}
		if p.current.Type == TokenEquals {
			value, err := p.parseExpr(p.current.Span.End.Offset, exprAttrValue)
			if err != nil {
				return nil, err
			}
			attr.Value = value
			attr.Span = attr.Span.Join(value.Span)
		}
		return attr, nil
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	attr := &StaticAttr{Name: name, Span: name.Span}
	if p.current.Type == TokenEquals {
		value, err := p.parseExpr(p.current.Span.End.Offset, exprAttrValue)
		if err != nil {
			return nil, err
		}
		attr.Value = value
		attr.Span = attr.Span.Join(value.Span)
	}
	return attr, nil
}
