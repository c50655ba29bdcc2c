package mhgen

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a compilation error with a source span, the chain of
// grammar rules that were being parsed, and an optional hint.
type Error struct {
	Span    Span
	Message string
	Hint    string   // optional suggestion for fixing the error
	Context []string // grammar labels, innermost first
}

// Error implements the error interface. Context labels are printed
// outermost first, so the message reads from the template down to the token.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Span.Start.String())
	sb.WriteString(": error: ")
	sb.WriteString(e.Detail())
	return sb.String()
}

// Detail returns the message with its context labels but without the
// position.
func (e *Error) Detail() string {
	var sb strings.Builder
	for i := len(e.Context) - 1; i >= 0; i-- {
		sb.WriteString(e.Context[i])
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

// Pos returns the start of the error span.
func (e *Error) Pos() Position {
	return e.Span.Start
}

// NewError creates a new Error with the given span and message.
func NewError(span Span, message string) *Error {
	return &Error{Span: span, Message: message}
}

// NewErrorf creates a new Error with a formatted message.
func NewErrorf(span Span, format string, args ...any) *Error {
	return &Error{Span: span, Message: fmt.Sprintf(format, args...)}
}

// NewErrorWithHint creates a new Error with a hint for fixing the error.
func NewErrorWithHint(span Span, message, hint string) *Error {
	return &Error{Span: span, Message: message, Hint: hint}
}

// withContext labels err with the grammar rule that was being parsed when it
// occurred. Labels accumulate innermost first; the cause is never discarded.
func withContext(err error, label string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		e.Context = append(e.Context, label)
		return e
	}
	return fmt.Errorf("%s: %w", label, err)
}

// ErrorList collects one or more errors during compilation.
type ErrorList struct {
	errors []*Error
}

// NewErrorList creates an empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.errors = append(el.errors, err)
}

// AddError creates and adds an error with the given span and message.
func (el *ErrorList) AddError(span Span, message string) {
	el.errors = append(el.errors, NewError(span, message))
}

// AddErrorf creates and adds an error with a formatted message.
func (el *ErrorList) AddErrorf(span Span, format string, args ...any) {
	el.errors = append(el.errors, NewErrorf(span, format, args...))
}

// Len returns the number of errors.
func (el *ErrorList) Len() int {
	return len(el.errors)
}

// HasErrors returns true if there are any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.errors) > 0
}

// Errors returns a copy of the error slice.
func (el *ErrorList) Errors() []*Error {
	result := make([]*Error, len(el.errors))
	copy(result, el.errors)
	return result
}

// Error implements the error interface, returning all errors joined by newlines.
func (el *ErrorList) Error() string {
	if len(el.errors) == 0 {
		return ""
	}
	if len(el.errors) == 1 {
		return el.errors[0].Error()
	}

	var sb strings.Builder
	for i, err := range el.errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (el *ErrorList) Unwrap() []error {
	out := make([]error, len(el.errors))
	for i, err := range el.errors {
		out[i] = err
	}
	return out
}

// Err returns nil if there are no errors, otherwise returns the ErrorList as an error.
func (el *ErrorList) Err() error {
	if len(el.errors) == 0 {
		return nil
	}
	return el
}

// AsErrorList converts err into an ErrorList. A single *Error becomes a list
// of one; errors without a position are returned unchanged with ok false.
func AsErrorList(err error) (*ErrorList, bool) {
	var el *ErrorList
	if errors.As(err, &el) {
		return el, true
	}
	var e *Error
	if errors.As(err, &e) {
		return &ErrorList{errors: []*Error{e}}, true
	}
	return nil, false
}
