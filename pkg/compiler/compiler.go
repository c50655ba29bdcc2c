// Package compiler compiles minihtml templates at run time.
//
// A template is a node list such as
//
//	html { body { h1.title { +heading } } }
//
// Compile parses and checks it once; the resulting [Template] renders any
// number of times, concurrently, against different variables. Templates that
// should be compiled ahead of time are turned into Go code by
// `minihtml generate` instead.
package compiler

import (
	"fmt"
	"io"
	"strings"

	minihtml "github.com/grindlemire/go-minihtml"
	"github.com/grindlemire/go-minihtml/internal/debug"
	"github.com/grindlemire/go-minihtml/internal/interp"
	"github.com/grindlemire/go-minihtml/internal/mhgen"
)

// Vars holds the values template expressions refer to by name.
type Vars = interp.Vars

// EvalError is a failure to evaluate a template expression while rendering.
type EvalError = interp.EvalError

// Template is a compiled template. It is immutable and safe for concurrent
// use.
type Template struct {
	name string
	prog *interp.Program
}

// Compile parses and checks src. name is used in error positions. Every
// compile error is reported in a single *CompileError; nothing is rendered
// for a template that fails to compile.
func Compile(name, src string) (*Template, error) {
	nodes, err := mhgen.ParseNodes(name, src)
	if err != nil {
		return nil, newCompileError(name, src, err)
	}
	prog, err := interp.Compile(nodes)
	if err != nil {
		return nil, newCompileError(name, src, err)
	}
	debug.Log("compiler: compiled %s (%d top-level nodes)", name, len(nodes))
	return &Template{name: name, prog: prog}, nil
}

// MustCompile is like Compile but panics if the template does not compile.
func MustCompile(name, src string) *Template {
	t, err := Compile(name, src)
	if err != nil {
		panic(fmt.Sprintf("compiler: Compile(%q): %v", name, err))
	}
	return t
}

// Name returns the name the template was compiled with.
func (t *Template) Name() string {
	return t.name
}

// Render writes the template to w. It stops at the first error and returns
// it; w may have been partially written. Errors from w are returned
// unchanged.
func (t *Template) Render(w io.Writer, vars Vars) error {
	return t.prog.Render(w, vars)
}

// Procedure binds vars and returns the render procedure. The result can be
// embedded in another template's variables to nest templates.
func (t *Template) Procedure(vars Vars) minihtml.Func {
	return func(w io.Writer) error {
		return t.Render(w, vars)
	}
}

// RenderToString renders t into a new string.
func RenderToString(t *Template, vars Vars) (string, error) {
	var sb strings.Builder
	if err := t.Render(&sb, vars); err != nil {
		return "", err
	}
	return sb.String(), nil
}
