package minihtml

import (
	"fmt"
	"io"
	"strconv"
)

// Node is implemented by values that write themselves as element content.
type Node interface {
	RenderNode(w io.Writer) error
}

// AttrValue is implemented by values that write the part of an attribute
// between the quotes. Implementations must never write an unescaped '"'.
type AttrValue interface {
	RenderAttrValue(w io.Writer) error
}

// Attr is implemented by values that write a whole attribute, including the
// leading space before the name. Only types whose presence is conditional
// should implement it; everything else implements [AttrValue] and gets the
// whole attribute from [RenderAttr].
type Attr interface {
	RenderAttr(w io.Writer, name NoSpecial) error
}

// RenderNode writes v as element content.
//
// Strings, byte slices and fmt.Stringer values are escaped. Numbers and
// bools are written in their strconv form. A [Node] renders itself, which is
// how an already rendered [Func] is written verbatim.
func RenderNode(w io.Writer, v any) error {
	switch v := v.(type) {
	case Node:
		return v.RenderNode(w)
	case bool:
		_, err := io.WriteString(w, strconv.FormatBool(v))
		return err
	}
	render, ok := valueRenderer(v)
	if !ok {
		if b, isBool := underlying(v).(bool); isBool {
			return RenderNode(w, b)
		}
		return &ValueError{Kind: "node", Value: v}
	}
	return render(w)
}

// RenderAttrValue writes v as the value of an attribute, without the name or
// the surrounding quotes.
func RenderAttrValue(w io.Writer, v any) error {
	render, ok := valueRenderer(v)
	if !ok {
		return &ValueError{Kind: "attribute value", Value: v}
	}
	return render(w)
}

// RenderAttr writes v as the attribute name, including the leading space.
//
// Presence-conditional values decide whether anything is written:
//   - [Attr] implementations render themselves
//   - nil and nil pointers write nothing
//   - bool writes ` name` when true and nothing when false
//   - non-nil pointers render what they point to
//
// Any other value with an attribute-value capability is written as
// ` name="value"`.
func RenderAttr(w io.Writer, name NoSpecial, v any) error {
	switch v := v.(type) {
	case Attr:
		return v.RenderAttr(w, name)
	case nil:
		return nil
	case bool:
		if !v {
			return nil
		}
		_, err := io.WriteString(w, " "+string(name))
		return err
	}
	if b, isBool := underlying(v).(bool); isBool {
		return RenderAttr(w, name, b)
	}
	if _, ok := v.(AttrValue); !ok {
		if elem, isPtr, isNil := derefPointer(v); isPtr {
			if isNil {
				return nil
			}
			return RenderAttr(w, name, elem)
		}
	}
	return writeWholeAttr(w, name, v)
}

// writeWholeAttr is the derived whole-attribute rendering for any value with
// an attribute-value capability.
func writeWholeAttr(w io.Writer, name NoSpecial, v any) error {
	render, ok := valueRenderer(v)
	if !ok {
		return &ValueError{Kind: "attribute", Value: v}
	}
	if _, err := io.WriteString(w, " "+string(name)+`="`); err != nil {
		return err
	}
	if err := render(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, `"`)
	return err
}

// valueRenderer returns the function that writes v as escaped text, or false
// when v has no textual form.
func valueRenderer(v any) (func(io.Writer) error, bool) {
	switch v := v.(type) {
	case AttrValue:
		return v.RenderAttrValue, true
	case string:
		return func(w io.Writer) error { return WriteEscaped(w, v) }, true
	case []byte:
		return func(w io.Writer) error { return WriteEscaped(w, string(v)) }, true
	case fmt.Stringer:
		return func(w io.Writer) error { return WriteEscaped(w, v.String()) }, true
	}
	s, ok := formatNumber(v)
	if !ok {
		switch u := underlying(v).(type) {
		case string, int64, uint64, float64:
			return valueRenderer(u)
		}
		return nil, false
	}
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}, true
}

// formatNumber formats the built-in numeric kinds. The results never contain
// special characters.
func formatNumber(v any) (string, bool) {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}
