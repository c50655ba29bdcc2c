package minihtml

import (
	"fmt"
	"io"
	"strings"
)

// escaper replaces the five characters that are special in markup.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// specialChars is every character the escaper replaces.
const specialChars = `&<>'"`

// Escape returns s with every special character replaced by its entity.
func Escape(s string) string {
	return escaper.Replace(s)
}

// WriteEscaped writes s to w, replacing special characters as it goes.
// Write errors from w are returned unchanged.
func WriteEscaped(w io.Writer, s string) error {
	_, err := escaper.WriteString(w, s)
	return err
}

// HasSpecialChars reports whether s contains any of & < > ' ".
func HasSpecialChars(s string) bool {
	return strings.ContainsAny(s, specialChars)
}

// NoSpecial marks text that contains none of & < > ' " at all, escaped or
// not ("&amp;" still contains '&'). It is written byte for byte.
//
// The compiler wraps identifier-grammar text (element, class, id and
// attribute names) in NoSpecial. Do not use it for caller-supplied text; use
// [CheckNoSpecial] when the text is only known at render time.
type NoSpecial string

// CheckNoSpecial returns s as a NoSpecial, or an error wrapping
// [ErrSpecialChars] when s contains a special character.
func CheckNoSpecial(s string) (NoSpecial, error) {
	if i := strings.IndexAny(s, specialChars); i >= 0 {
		return "", fmt.Errorf("%q at offset %d: %w", s[i], i, ErrSpecialChars)
	}
	return NoSpecial(s), nil
}

// RenderNode writes n verbatim.
func (n NoSpecial) RenderNode(w io.Writer) error {
	_, err := io.WriteString(w, string(n))
	return err
}

// RenderAttrValue writes n verbatim.
func (n NoSpecial) RenderAttrValue(w io.Writer) error {
	_, err := io.WriteString(w, string(n))
	return err
}
