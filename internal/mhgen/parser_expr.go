package mhgen

import (
	"errors"
	"go/parser"
	"go/scanner"
	"strings"
)

// parseExpr captures the raw Go expression starting at byte offset start,
// validates it and re-primes the parser at the token that ended it.
func (p *Parser) parseExpr(start int, mode exprMode) (*Expr, error) {
	expr, serr := p.lexer.ScanExpr(start, mode)
	if serr != nil {
		return nil, serr
	}
	if mode == exprNode {
		// +"a" span is the text node "a" followed by the element span.
		if cut, ok := trailingTokens(expr.Code); ok {
			code := strings.TrimRight(expr.Code[:cut], " \t\r\n")
			offset := expr.Span.Start.Offset
			expr = &Expr{Code: code, Span: p.lexer.spanOf(offset, offset+len(code))}
			p.lexer.seek(offset + cut)
		}
	}
	p.resync()
	if err := p.validateExpr(expr); err != nil {
		return nil, err
	}
	return expr, nil
}

// validateExpr checks that expr is a Go expression. Errors from go/parser are
// moved into template coordinates.
func (p *Parser) validateExpr(expr *Expr) error {
	_, err := parser.ParseExpr(expr.Code)
	if err == nil {
		return nil
	}
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		first := list[0]
		offset := expr.Span.Start.Offset + offsetOf(expr.Code, first.Pos.Line, first.Pos.Column)
		return NewErrorf(p.lexer.spanOf(offset, offset+1), "invalid Go expression %q: %s", expr.Code, first.Msg)
	}
	return NewErrorf(expr.Span, "invalid Go expression %q: %v", expr.Code, err)
}

// trailingTokens reports the offset of the first token after a complete Go
// expression at the start of code, if code holds more than one expression.
func trailingTokens(code string) (int, bool) {
	_, err := parser.ParseExpr(code)
	var list scanner.ErrorList
	if err == nil || !errors.As(err, &list) || len(list) == 0 {
		return 0, false
	}
	first := list[0]
	if !strings.HasPrefix(first.Msg, "expected 'EOF'") {
		return 0, false
	}
	cut := offsetOf(code, first.Pos.Line, first.Pos.Column)
	if strings.TrimSpace(code[:cut]) == "" {
		return 0, false
	}
	return cut, true
}

// ValidateParams checks a raw template parameter list by parsing it as the
// parameter list of a function literal.
func ValidateParams(params string) error {
	_, err := parser.ParseExpr("func(" + params + ") {}")
	return err
}

// offsetOf converts a 1-based line and byte column within code into a byte
// offset, clamped to the code.
func offsetOf(code string, line, column int) int {
	offset := 0
	for l := 1; l < line; l++ {
		nl := strings.IndexByte(code[offset:], '\n')
		if nl < 0 {
			return len(code)
		}
		offset += nl + 1
	}
	return min(offset+column-1, len(code))
}
