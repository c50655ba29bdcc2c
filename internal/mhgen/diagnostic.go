package mhgen

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

type palette bool

func (p palette) wrap(code, text string) string {
	if !p {
		return text
	}
	return code + text + colorReset
}

// FormatError renders err as compiler diagnostics: the error line, the
// offending source line and a caret underline under the error span. Errors
// without a position are returned as err.Error().
func FormatError(err error, source string, color bool) string {
	list, ok := AsErrorList(err)
	if !ok {
		return err.Error()
	}
	c := palette(color)
	lines := strings.Split(source, "\n")

	var b strings.Builder
	for i, e := range list.Errors() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c.wrap(colorBold, e.Span.Start.String()+": "))
		b.WriteString(c.wrap(colorRed, "error: "))
		b.WriteString(e.Detail())
		b.WriteByte('\n')

		line := e.Span.Start.Line
		if line < 1 || line > len(lines) {
			continue
		}
		text := strings.TrimSuffix(lines[line-1], "\r")
		gutter := fmt.Sprintf("%4d | ", line)
		b.WriteString(c.wrap(colorGray, gutter))
		b.WriteString(text)
		b.WriteByte('\n')

		pad, width := caret(text, e.Span)
		b.WriteString(c.wrap(colorGray, strings.Repeat(" ", len(gutter)-2)+"| "))
		b.WriteString(pad)
		b.WriteString(c.wrap(colorCyan, strings.Repeat("^", width)))
		b.WriteByte('\n')
	}
	return b.String()
}

// caret returns the padding that lines a caret up under the span start in
// text, and the display width of the underline. Tabs are kept so the
// padding lines up however the terminal expands them; other characters
// count by their display width.
func caret(text string, span Span) (string, int) {
	runes := []rune(text)
	col := min(max(span.Start.Column-1, 0), len(runes))
	prefix := string(runes[:col])

	var pad strings.Builder
	g := uniseg.NewGraphemes(prefix)
	for g.Next() {
		if g.Str() == "\t" {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", g.Width()))
	}

	end := len(runes)
	if span.End.Line == span.Start.Line {
		end = min(max(span.End.Column-1, col), len(runes))
	}
	width := uniseg.StringWidth(string(runes[col:end]))
	return pad.String(), max(width, 1)
}
