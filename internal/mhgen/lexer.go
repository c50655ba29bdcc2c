package mhgen

import (
	"unicode/utf8"
)

// Lexer tokenizes minihtml template source.
//
// Go expressions embedded in a template are not tokenized as Go: the parser
// asks the lexer to capture them as raw source with [Lexer.ScanExpr].
type Lexer struct {
	filename string
	source   string
	pos      int  // current position in source
	readPos  int  // next position to read
	ch       rune // current character
	line     int  // current line (1-based)
	column   int  // current column (1-based)

	// Start of the current token
	tokenStart Position

	// Byte offset of the first character of every line
	lineStarts []int

	// Comments collected since last ConsumeComments() call
	pendingComments []*Comment
}

// NewLexer creates a new Lexer for the given source.
func NewLexer(filename, source string) *Lexer {
	l := &Lexer{
		filename:   filename,
		source:     source,
		line:       1,
		column:     0,
		lineStarts: []int{0},
	}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			l.lineStarts = append(l.lineStarts, i+1)
		}
	}
	l.readChar()
	return l
}

// Filename returns the name used in positions.
func (l *Lexer) Filename() string {
	return l.filename
}

// readChar advances to the next character in the source.
func (l *Lexer) readChar() {
	// Track if previous char was a newline for line counting
	prevWasNewline := l.ch == '\n'

	if l.readPos >= len(l.source) {
		l.ch = 0 // EOF
		l.pos = len(l.source)
		if prevWasNewline {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.readPos = len(l.source) + 1
		return
	}

	r, size := utf8.DecodeRuneInString(l.source[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size

	if prevWasNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPos:])
	return r
}

// atEOF reports whether the whole source has been consumed.
func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.source)
}

// here returns the position of the current character.
func (l *Lexer) here() Position {
	return Position{
		File:   l.filename,
		Line:   l.line,
		Column: l.column,
		Offset: l.pos,
	}
}

// startToken marks the beginning of a new token.
func (l *Lexer) startToken() {
	l.tokenStart = l.here()
}

// makeToken creates a token spanning from the token start to the current position.
func (l *Lexer) makeToken(typ TokenType, literal string) Token {
	return Token{
		Type:    typ,
		Literal: literal,
		Span:    Span{Start: l.tokenStart, End: l.here()},
	}
}

// errorToken creates an error token carrying message.
func (l *Lexer) errorToken(message string) Token {
	return l.makeToken(TokenError, message)
}

// Next returns the next token from the source.
func (l *Lexer) Next() Token {
	// Skip whitespace and collect any comments
	if tok, ok := l.skipWhitespaceAndCollectComments(); !ok {
		return tok
	}

	l.startToken()

	if l.atEOF() {
		return l.makeToken(TokenEOF, "")
	}

	switch l.ch {
	case '\n':
		l.readChar()
		return l.makeToken(TokenNewline, "\n")

	case '(':
		l.readChar()
		return l.makeToken(TokenLParen, "(")

	case ')':
		l.readChar()
		return l.makeToken(TokenRParen, ")")

	case '{':
		l.readChar()
		return l.makeToken(TokenLBrace, "{")

	case '}':
		l.readChar()
		return l.makeToken(TokenRBrace, "}")

	case '.':
		// Could be . or a number like .5
		if isDigit(l.peekChar()) {
			return l.readNumber()
		}
		l.readChar()
		return l.makeToken(TokenDot, ".")

	case '#':
		l.readChar()
		return l.makeToken(TokenHash, "#")

	case ',':
		l.readChar()
		return l.makeToken(TokenComma, ",")

	case ';':
		l.readChar()
		return l.makeToken(TokenSemicolon, ";")

	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.makeToken(TokenPunct, "==")
		}
		l.readChar()
		return l.makeToken(TokenEquals, "=")

	case '+':
		l.readChar()
		return l.makeToken(TokenPlus, "+")

	case '-':
		l.readChar()
		return l.makeToken(TokenMinus, "-")

	case '"':
		return l.readString()

	case '\'':
		return l.readRune()

	case '`':
		return l.readRawString()

	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		if l.ch == utf8.RuneError {
			l.readChar()
			return l.errorToken("invalid UTF-8 encoding")
		}

		// Operators only appear inside Go expressions, which the parser
		// captures raw. Outside of one the parser rejects them.
		ch := l.ch
		l.readChar()
		return l.makeToken(TokenPunct, string(ch))
	}
}
