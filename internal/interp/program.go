package interp

import (
	"fmt"
	"go/ast"
	"go/parser"
	"io"

	minihtml "github.com/grindlemire/go-minihtml"
	"github.com/grindlemire/go-minihtml/internal/mhgen"
)

// Vars is the scope template expressions are evaluated in.
type Vars map[string]any

// Program is a compiled node list. It is immutable and safe for concurrent
// use.
type Program struct {
	nodes []mhgen.Node
	attrs map[*mhgen.Element]*mhgen.ResolvedAttrs
	exprs map[*mhgen.Expr]ast.Expr
}

// Compile analyzes nodes and parses every expression in them. All semantic
// errors and unsupported expressions are reported together as an
// *mhgen.ErrorList.
func Compile(nodes []mhgen.Node) (*Program, error) {
	p := &Program{
		nodes: nodes,
		attrs: make(map[*mhgen.Element]*mhgen.ResolvedAttrs),
		exprs: make(map[*mhgen.Expr]ast.Expr),
	}
	errs := mhgen.NewErrorList()

	addExpr := func(e *mhgen.Expr) {
		if e == nil {
			return
		}
		x, err := parser.ParseExpr(e.Code)
		if err != nil {
			errs.AddErrorf(e.Span, "invalid Go expression %q: %v", e.Code, err)
			return
		}
		if err := checkSupported(x); err != nil {
			errs.AddErrorf(e.Span, "%v in %q", err, e.Code)
			return
		}
		p.exprs[e] = x
	}

	mhgen.Walk(nodes, func(n mhgen.Node) bool {
		switch n := n.(type) {
		case *mhgen.Arbitrary:
			addExpr(n.Expr)
		case *mhgen.Element:
			res, err := mhgen.Resolve(n)
			if err != nil {
				if list, ok := mhgen.AsErrorList(err); ok {
					for _, e := range list.Errors() {
						errs.Add(e)
					}
				}
				return true
			}
			p.attrs[n] = res
			for _, a := range res.Static {
				addExpr(a.Expr)
			}
			for _, d := range res.Dynamic {
				addExpr(d.Name)
				addExpr(d.Value)
			}
		}
		return true
	})

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// Render writes the program's markup to w, evaluating expressions in vars.
// Rendering stops at the first error; w is left partially written. Write
// errors are returned unchanged.
func (p *Program) Render(w io.Writer, vars Vars) error {
	r := &renderer{p: p, w: w, scope: vars}
	return r.nodes(p.nodes)
}

type renderer struct {
	p     *Program
	w     io.Writer
	scope Vars
}

func (r *renderer) nodes(nodes []mhgen.Node) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case *mhgen.Arbitrary:
			v, err := r.eval(n.Expr)
			if err != nil {
				return err
			}
			if err := minihtml.RenderNode(r.w, v); err != nil {
				return err
			}
		case *mhgen.Element:
			if err := r.element(n); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *renderer) element(el *mhgen.Element) error {
	attrs := r.p.attrs[el]
	if _, err := io.WriteString(r.w, "<"+el.Name.Value); err != nil {
		return err
	}

	for _, a := range attrs.Static {
		name := minihtml.NoSpecial(a.Name)
		var err error
		switch a.Kind {
		case mhgen.AttrPresent:
			err = minihtml.RenderAttr(r.w, name, true)
		case mhgen.AttrNoSpecial:
			err = minihtml.RenderAttr(r.w, name, minihtml.NoSpecial(a.Text))
		case mhgen.AttrExpr:
			var v any
			if v, err = r.eval(a.Expr); err == nil {
				err = minihtml.RenderAttr(r.w, name, v)
			}
		case mhgen.AttrClassConcat:
			var v any
			if v, err = r.eval(a.Expr); err == nil {
				err = minihtml.RenderAttr(r.w, name, minihtml.ClassConcat{Value: v, Static: minihtml.NoSpecial(a.Text)})
			}
		}
		if err != nil {
			return err
		}
	}

	for _, d := range attrs.Dynamic {
		if err := r.dynamic(d, attrs.StaticNames); err != nil {
			return err
		}
	}

	if el.SelfClose {
		_, err := io.WriteString(r.w, "/>")
		return err
	}
	if _, err := io.WriteString(r.w, ">"); err != nil {
		return err
	}
	if err := r.nodes(el.Children); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, "</"+el.Name.Value+">")
	return err
}

func (r *renderer) dynamic(d *mhgen.DynAttr, static []string) error {
	nv, err := r.eval(d.Name)
	if err != nil {
		return err
	}
	name, ok := asString(nv)
	if !ok {
		return &EvalError{Pos: d.Name.Span.Start, Expr: d.Name.Code,
			Err: fmt.Errorf("attribute name must be a string, not %s", typeName(nv))}
	}
	var value any = true
	if d.Value != nil {
		if value, err = r.eval(d.Value); err != nil {
			return err
		}
	}
	return minihtml.RenderDynamicAttr(r.w, name, value, static...)
}

// eval evaluates a compiled expression in the render scope.
func (r *renderer) eval(e *mhgen.Expr) (any, error) {
	v, err := (&evaluator{scope: r.scope}).eval(r.p.exprs[e])
	if err != nil {
		return nil, &EvalError{Pos: e.Span.Start, Expr: e.Code, Err: err}
	}
	return v, nil
}
