package interp

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-minihtml/internal/mhgen"
)

// ErrUndefined is wrapped by evaluation errors for names missing from the
// scope.
var ErrUndefined = errors.New("undefined")

// EvalError is a failure to evaluate a template expression while rendering.
type EvalError struct {
	Pos  mhgen.Position // start of the expression in the template
	Expr string         // the expression source
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: evaluating %s: %v", e.Pos, e.Expr, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
