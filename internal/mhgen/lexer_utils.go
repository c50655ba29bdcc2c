package mhgen

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// skipWhitespaceAndCollectComments skips spaces, tabs, and collects comments
// (but not newlines). It returns false with an error token when a block
// comment is not terminated.
func (l *Lexer) skipWhitespaceAndCollectComments() (Token, bool) {
	for {
		switch l.ch {
		case ' ', '\t', '\r':
			l.readChar()
		case '/':
			if l.peekChar() == '/' {
				l.collectLineComment()
			} else if l.peekChar() == '*' {
				if !l.collectBlockComment() {
					return l.errorToken("unterminated block comment"), false
				}
			} else {
				return Token{}, true
			}
		default:
			return Token{}, true
		}
	}
}

// collectLineComment reads a // comment and adds it to pendingComments.
func (l *Lexer) collectLineComment() {
	start := l.here()

	// Read until end of line or EOF
	for l.ch != '\n' && !l.atEOF() {
		l.readChar()
	}

	l.pendingComments = append(l.pendingComments, &Comment{
		Text: l.source[start.Offset:l.pos],
		Span: Span{Start: start, End: l.here()},
	})
}

// collectBlockComment reads a /* */ comment and adds it to pendingComments.
func (l *Lexer) collectBlockComment() bool {
	start := l.here()
	l.tokenStart = start

	l.readChar() // skip /
	l.readChar() // skip *

	for {
		if l.atEOF() {
			return false
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // skip *
			l.readChar() // skip /
			break
		}
		l.readChar()
	}

	l.pendingComments = append(l.pendingComments, &Comment{
		Text:    l.source[start.Offset:l.pos],
		Span:    Span{Start: start, End: l.here()},
		IsBlock: true,
	})
	return true
}

// ConsumeComments returns and clears pending comments.
func (l *Lexer) ConsumeComments() []*Comment {
	comments := l.pendingComments
	l.pendingComments = nil
	return comments
}

// readIdentifier reads an identifier.
func (l *Lexer) readIdentifier() Token {
	startPos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.makeToken(TokenIdent, l.source[startPos:l.pos])
}

// isLetter returns true if the rune is a letter or underscore.
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// isDigit returns true if the rune is a digit.
func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}

// positionAt converts a byte offset into a Position.
func (l *Lexer) positionAt(offset int) Position {
	if offset > len(l.source) {
		offset = len(l.source)
	}
	line := sort.Search(len(l.lineStarts), func(i int) bool {
		return l.lineStarts[i] > offset
	})
	lineStart := l.lineStarts[line-1]
	return Position{
		File:   l.filename,
		Line:   line,
		Column: utf8.RuneCountInString(l.source[lineStart:offset]) + 1,
		Offset: offset,
	}
}

// spanOf returns the span between two byte offsets.
func (l *Lexer) spanOf(start, end int) Span {
	return Span{Start: l.positionAt(start), End: l.positionAt(end)}
}

// seek moves the lexer to offset. Pending comments are discarded since they
// belong to source the parser has now consumed as raw text.
func (l *Lexer) seek(offset int) {
	if offset > len(l.source) {
		offset = len(l.source)
	}
	p := l.positionAt(offset)
	l.pos = offset
	l.line = p.Line
	l.column = p.Column
	if offset >= len(l.source) {
		l.ch = 0
		l.readPos = len(l.source) + 1
	} else {
		r, size := utf8.DecodeRuneInString(l.source[offset:])
		l.ch = r
		l.readPos = offset + size
	}
	l.pendingComments = nil
}

// SourceRange extracts a substring of the original source from start to end offsets.
func (l *Lexer) SourceRange(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(l.source) {
		end = len(l.source)
	}
	if start >= end {
		return ""
	}
	return l.source[start:end]
}
