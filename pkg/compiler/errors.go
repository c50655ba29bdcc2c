package compiler

import (
	"errors"
	"slices"

	"github.com/grindlemire/go-minihtml/internal/mhgen"
)

// Position is a location in template source. Line and Column are 1-based.
type Position = mhgen.Position

// Diagnostic is one compile error.
type Diagnostic struct {
	Pos     Position
	End     Position
	Message string   // without context
	Hint    string   // optional suggestion
	Context []string // grammar rules being parsed, innermost first
}

// CompileError reports every problem found while compiling a template.
type CompileError struct {
	Name        string
	Diagnostics []Diagnostic

	source string
	err    error
}

func newCompileError(name, source string, err error) *CompileError {
	ce := &CompileError{Name: name, source: source, err: err}
	list, ok := mhgen.AsErrorList(err)
	if !ok {
		return ce
	}
	for _, e := range list.Errors() {
		ce.Diagnostics = append(ce.Diagnostics, Diagnostic{
			Pos:     e.Span.Start,
			End:     e.Span.End,
			Message: e.Message,
			Hint:    e.Hint,
			Context: slices.Clone(e.Context),
		})
	}
	return ce
}

func (e *CompileError) Error() string {
	return e.err.Error()
}

func (e *CompileError) Unwrap() error {
	return e.err
}

// Pretty renders the error with the offending source lines and carets,
// optionally with ANSI colors.
func (e *CompileError) Pretty(color bool) string {
	return mhgen.FormatError(e.err, e.source, color)
}

// FormatError renders a *CompileError with source excerpts, and any other
// error as its message.
func FormatError(err error, color bool) string {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce.Pretty(color)
	}
	return err.Error()
}
