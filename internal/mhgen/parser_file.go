package mhgen

// ParseFile parses a complete template file: package clause, imports and
// templ declarations.
func (p *Parser) ParseFile() (*File, error) {
	file := &File{Position: p.current.Pos()}

	p.skipNewlines()
	if !p.isKeyword("package") {
		return nil, p.unexpected("package clause")
	}
	p.advance()
	pkg, err := p.expect(TokenIdent, "package name")
	if err != nil {
		return nil, withContext(err, "parsing package clause")
	}
	file.Package = pkg.Literal

	for {
		p.skipNewlines()
		if !p.isKeyword("import") {
			break
		}
		imports, err := p.parseImport()
		if err != nil {
			return nil, withContext(err, "parsing import declaration")
		}
		file.Imports = append(file.Imports, imports...)
	}

	seen := make(map[string]bool)
	for {
		p.skipNewlines()
		if p.current.Type == TokenEOF {
			return file, nil
		}
		if !p.isKeyword("templ") {
			return nil, p.unexpected("templ declaration")
		}
		tmpl, err := p.parseTemplate()
		if err != nil {
			return nil, err
		}
		if seen[tmpl.Name] {
			return nil, NewErrorf(Span{Start: tmpl.Position, End: tmpl.Position}, "templ %s redeclared in this file", tmpl.Name)
		}
		seen[tmpl.Name] = true
		file.Templates = append(file.Templates, tmpl)
	}
}

// parseImport parses a single import spec or a parenthesized group.
func (p *Parser) parseImport() ([]Import, error) {
	p.advance()
	if p.current.Type != TokenLParen {
		imp, err := p.parseImportSpec()
		if err != nil {
			return nil, err
		}
		return []Import{imp}, nil
	}

	open := p.current
	p.advance()
	var imports []Import
	for {
		p.skipNewlines()
		switch p.current.Type {
		case TokenRParen:
			p.advance()
			return imports, nil
		case TokenEOF:
			return nil, NewError(open.Span, "unclosed '(' in import declaration")
		case TokenSemicolon:
			p.advance()
			continue
		}
		imp, err := p.parseImportSpec()
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}
}

// parseImportSpec parses [alias] "path".
func (p *Parser) parseImportSpec() (Import, error) {
	imp := Import{Position: p.current.Pos()}
	switch p.current.Type {
	case TokenIdent:
		imp.Alias = p.current.Literal
		p.advance()
	case TokenDot:
		imp.Alias = "."
		p.advance()
	}
	switch p.current.Type {
	case TokenString, TokenRawString:
		// literals arrive unquoted from the lexer
		imp.Path = p.current.Literal
	default:
		return Import{}, p.unexpected("import path")
	}
	if imp.Path == "" {
		return Import{}, NewError(p.current.Span, "empty import path")
	}
	p.advance()
	return imp, nil
}

// parseTemplate parses templ Name(params) { nodes }.
func (p *Parser) parseTemplate() (*Template, error) {
	kw := p.current
	tmpl := &Template{Position: kw.Pos(), Doc: docComments(p.currentComments, kw.Span.Start.Line)}
	p.advance()

	name, err := p.expect(TokenIdent, "template name")
	if err != nil {
		return nil, withContext(err, "parsing templ declaration")
	}
	tmpl.Name = name.Literal
	label := "parsing templ " + tmpl.Name

	if p.current.Type != TokenLParen {
		return nil, withContext(p.unexpected("'(' to start the parameter list"), label)
	}
	paramStart := p.current.Span.Start.Offset
	params, serr := p.lexer.ReadBalanced(paramStart, '(', ')')
	if serr != nil {
		return nil, withContext(serr, label)
	}
	if err := ValidateParams(params); err != nil {
		return nil, withContext(NewErrorf(p.lexer.spanOf(paramStart, paramStart+len(params)+2),
			"invalid parameter list: %v", err), label)
	}
	tmpl.Params = params
	p.resync()

	p.skipNewlines()
	if p.current.Type != TokenLBrace {
		return nil, withContext(p.unexpected("'{' to start the template body"), label)
	}
	open := p.current
	p.advance()
	body, err := p.parseNodes()
	if err != nil {
		return nil, withContext(err, label)
	}
	if p.current.Type != TokenRBrace {
		return nil, withContext(NewError(open.Span, "unclosed '{' in template body"), label)
	}
	p.advance()
	tmpl.Body = body
	return tmpl, nil
}

// docComments returns the trailing run of comments that ends on the line
// directly above line, without blank lines in between.
func docComments(comments []*Comment, line int) []*Comment {
	next := line
	start := len(comments)
	for i := len(comments) - 1; i >= 0; i-- {
		c := comments[i]
		if c.Span.End.Line != next-1 {
			break
		}
		next = c.Span.Start.Line
		start = i
	}
	if start == len(comments) {
		return nil
	}
	return comments[start:]
}
