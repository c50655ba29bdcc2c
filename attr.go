package minihtml

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Optional is an attribute that is written only when Valid is set.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// RenderAttr writes ` name="value"` when o is present and nothing otherwise.
func (o Optional[T]) RenderAttr(w io.Writer, name NoSpecial) error {
	if !o.Valid {
		return nil
	}
	return writeWholeAttr(w, name, o.Value)
}

// ClassConcat joins a caller-supplied class value with the class list that
// was spelled out with .class markers in the template.
//
// The caller value is rendered through [RenderAttrValue], so it is still
// escaped. When it renders to nothing only the static list is written.
type ClassConcat struct {
	Value  any
	Static NoSpecial
}

// RenderAttrValue writes the caller value, a space, then the static list.
func (c ClassConcat) RenderAttrValue(w io.Writer) error {
	var buf bytes.Buffer
	if c.Value != nil {
		if err := RenderAttrValue(&buf, c.Value); err != nil {
			return err
		}
	}
	if buf.Len() > 0 && c.Static != "" {
		buf.WriteByte(' ')
	}
	buf.WriteString(string(c.Static))
	_, err := w.Write(buf.Bytes())
	return err
}

// CheckAttrName validates an attribute name that is only known at render
// time. Names must be non-empty and must not contain special characters,
// whitespace, '=' or '/'.
func CheckAttrName(name string) (NoSpecial, error) {
	if name == "" {
		return "", fmt.Errorf("empty name: %w", ErrInvalidAttrName)
	}
	if i := strings.IndexAny(name, " \t\n\r\f=/"); i >= 0 {
		return "", fmt.Errorf("%q contains %q: %w", name, name[i], ErrInvalidAttrName)
	}
	n, err := CheckNoSpecial(name)
	if err != nil {
		return "", fmt.Errorf("attribute name %w", err)
	}
	return n, nil
}

// RenderDynamicAttr writes an attribute whose name is computed at render
// time. static lists the element's attribute names that are known at compile
// time; a dynamic name equal to one of them is a [CollisionError].
//
// The check runs on every render, not only in debug builds.
func RenderDynamicAttr(w io.Writer, name string, v any, static ...string) error {
	if slices.Contains(static, name) {
		return &CollisionError{Name: name}
	}
	n, err := CheckAttrName(name)
	if err != nil {
		return err
	}
	return RenderAttr(w, n, v)
}
