package minihtml

import (
	"errors"
	"fmt"
)

// ErrSpecialChars is returned when text that must be free of special
// characters is not.
var ErrSpecialChars = errors.New("minihtml: text contains special characters")

// ErrInvalidAttrName is returned when a dynamic attribute name could not be
// written as an attribute name.
var ErrInvalidAttrName = errors.New("minihtml: invalid attribute name")

// ValueError reports a value that has no render capability for the place it
// was used in.
type ValueError struct {
	Kind  string // "node", "attribute value" or "attribute"
	Value any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("minihtml: cannot render %T as %s", e.Value, e.Kind)
}

// CollisionError reports a dynamic attribute whose name, known only at
// render time, equals a static attribute of the same element.
type CollisionError struct {
	Name string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("minihtml: the dynamic attribute %q duplicates a hardcoded attribute", e.Name)
}
