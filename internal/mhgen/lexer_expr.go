package mhgen

import "strings"

// exprMode selects the tokens that end a raw Go expression.
type exprMode int

const (
	// exprNode is the expression of an arbitrary node (+expr). It ends at ';',
	// at an unbalanced '}', or at a newline once the expression is complete.
	exprNode exprMode = iota
	// exprAttrValue is an attribute value (name = expr). It ends at ',' or at
	// an unbalanced ')'.
	exprAttrValue
	// exprAttrName is a dynamic attribute name (dyn expr). It also ends at a
	// single '=' that starts the value.
	exprAttrName
)

// continuationChars end an expression line that must continue on the next line.
const continuationChars = "+-*/%&|^<>=!,.(:["

// ScanExpr captures the Go expression starting at byte offset start and
// leaves the lexer positioned at the character that ended it. Brackets,
// string literals and comments are skipped as units; trailing whitespace and
// comments are not part of the returned expression.
func (l *Lexer) ScanExpr(start int, mode exprMode) (*Expr, *Error) {
	src := l.source
	for start < len(src) && strings.IndexByte(" \t\r\n", src[start]) >= 0 {
		start++
	}
	i := start
	depth := 0
	end := start // end of the last significant character

scan:
	for i < len(src) {
		c := src[i]
		switch c {
		case ' ', '\t', '\r':
			i++
			continue
		case '\n':
			if mode == exprNode && depth == 0 && end > start && !strings.ContainsRune(continuationChars, rune(src[end-1])) {
				break scan
			}
			i++
			continue
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				break scan
			}
			depth--
		case ',':
			if depth == 0 && mode != exprNode {
				break scan
			}
		case ';':
			if depth == 0 && mode == exprNode {
				break scan
			}
		case '=':
			if depth == 0 && mode == exprAttrName && isAssignEquals(src, i) {
				break scan
			}
		case '"', '\'':
			next, ok := skipQuoted(src, i, c)
			if !ok {
				return nil, NewError(l.spanOf(i, next), "unterminated literal in expression")
			}
			i = next
			end = i
			continue
		case '`':
			close := strings.IndexByte(src[i+1:], '`')
			if close < 0 {
				return nil, NewError(l.spanOf(i, len(src)), "unterminated raw string literal in expression")
			}
			i += close + 2
			end = i
			continue
		case '/':
			if i+1 < len(src) && src[i+1] == '/' {
				if mode == exprNode && depth == 0 {
					break scan
				}
				nl := strings.IndexByte(src[i:], '\n')
				if nl < 0 {
					i = len(src)
				} else {
					i += nl
				}
				continue
			}
			if i+1 < len(src) && src[i+1] == '*' {
				close := strings.Index(src[i+2:], "*/")
				if close < 0 {
					return nil, NewError(l.spanOf(i, len(src)), "unterminated block comment in expression")
				}
				i += close + 4
				continue
			}
		}
		i++
		end = i
	}

	if end == start {
		l.seek(i)
		return nil, NewError(l.spanOf(start, i), "expected expression")
	}

	expr := &Expr{
		Code: src[start:end],
		Span: l.spanOf(start, end),
	}
	l.seek(i)
	return expr, nil
}

// isAssignEquals reports whether the '=' at i is a lone '=' rather than part
// of ==, !=, <=, >= or :=.
func isAssignEquals(src string, i int) bool {
	if i+1 < len(src) && src[i+1] == '=' {
		return false
	}
	if i > 0 && strings.IndexByte("=!<>:", src[i-1]) >= 0 {
		return false
	}
	return true
}

// skipQuoted returns the offset just past the literal opened by quote at i.
func skipQuoted(src string, i int, quote byte) (int, bool) {
	j := i + 1
	for j < len(src) {
		switch src[j] {
		case '\\':
			j += 2
			continue
		case '\n':
			return j, false
		case quote:
			return j + 1, true
		}
		j++
	}
	return len(src), false
}

// ReadBalanced reads the content between the open bracket at byte offset
// start and its matching close bracket, and positions the lexer after the
// close. String literals are skipped as units.
func (l *Lexer) ReadBalanced(start int, open, close byte) (string, *Error) {
	src := l.source
	if start >= len(src) || src[start] != open {
		return "", NewErrorf(l.spanOf(start, start), "expected %q", open)
	}

	depth := 1
	i := start + 1
	for i < len(src) && depth > 0 {
		switch c := src[i]; c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				continue
			}
		case '"', '\'':
			next, ok := skipQuoted(src, i, c)
			if !ok {
				return "", NewError(l.spanOf(i, next), "unterminated literal")
			}
			i = next
			continue
		case '`':
			end := strings.IndexByte(src[i+1:], '`')
			if end < 0 {
				return "", NewError(l.spanOf(i, len(src)), "unterminated raw string literal")
			}
			i += end + 2
			continue
		}
		i++
	}

	if depth != 0 {
		return "", NewErrorf(l.spanOf(start, start+1), "unmatched %q", open)
	}

	content := src[start+1 : i]
	l.seek(i + 1)
	return content, nil
}
