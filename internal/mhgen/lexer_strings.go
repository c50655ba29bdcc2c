package mhgen

import "strconv"

// readString reads a double-quoted string. The literal is the decoded value;
// escape sequences follow Go.
func (l *Lexer) readString() Token {
	startPos := l.pos
	l.readChar() // consume opening "

	for l.ch != '"' && !l.atEOF() {
		if l.ch == '\n' {
			return l.errorToken("unterminated string literal")
		}
		if l.ch == '\\' {
			l.readChar() // consume backslash
		}
		l.readChar()
	}

	if l.atEOF() {
		return l.errorToken("unterminated string literal")
	}

	l.readChar() // consume closing "
	value, err := strconv.Unquote(l.source[startPos:l.pos])
	if err != nil {
		return l.errorToken("invalid escape sequence in string literal")
	}
	return l.makeToken(TokenString, value)
}

// readRune reads a single-quoted rune literal.
func (l *Lexer) readRune() Token {
	startPos := l.pos
	l.readChar() // consume opening '

	for l.ch != '\'' && !l.atEOF() && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar() // consume backslash
		}
		l.readChar()
	}

	if l.ch != '\'' {
		return l.errorToken("unterminated rune literal")
	}

	l.readChar() // consume closing '
	value, _, tail, err := strconv.UnquoteChar(l.source[startPos+1:l.pos-1], '\'')
	if err != nil || tail != "" {
		return l.errorToken("invalid rune literal")
	}
	return l.makeToken(TokenRune, string(value))
}

// readRawString reads a backtick-quoted raw string.
func (l *Lexer) readRawString() Token {
	l.readChar() // consume opening `

	startPos := l.pos
	for l.ch != '`' && !l.atEOF() {
		l.readChar()
	}

	if l.atEOF() {
		return l.errorToken("unterminated raw string literal")
	}

	literal := l.source[startPos:l.pos]
	l.readChar() // consume closing `
	return l.makeToken(TokenRawString, literal)
}

// readNumber reads an integer or float literal.
func (l *Lexer) readNumber() Token {
	startPos := l.pos
	isFloat := false

	// Handle leading dot for floats like .5
	if l.ch == '.' {
		isFloat = true
		l.readChar()
	}

	// Read integer part, including hex digits and separators
	for isDigit(l.ch) || isLetter(l.ch) {
		if l.ch == 'e' || l.ch == 'E' {
			break
		}
		l.readChar()
	}

	// Check for decimal point
	if l.ch == '.' && !isFloat && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	// Check for exponent
	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	literal := l.source[startPos:l.pos]
	if isFloat {
		return l.makeToken(TokenFloat, literal)
	}
	return l.makeToken(TokenInt, literal)
}
