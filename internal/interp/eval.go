package interp

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"reflect"
	"strconv"
)

// evaluator evaluates one expression tree.
type evaluator struct {
	scope Vars
}

func (ev *evaluator) eval(x ast.Expr) (any, error) {
	switch x := x.(type) {
	case *ast.BasicLit:
		return literal(x)
	case *ast.Ident:
		return ev.ident(x.Name)
	case *ast.ParenExpr:
		return ev.eval(x.X)
	case *ast.UnaryExpr:
		v, err := ev.eval(x.X)
		if err != nil {
			return nil, err
		}
		return unary(x.Op, v)
	case *ast.StarExpr:
		v, err := ev.eval(x.X)
		if err != nil {
			return nil, err
		}
		return deref(v)
	case *ast.BinaryExpr:
		return ev.binary(x)
	case *ast.SelectorExpr:
		v, err := ev.eval(x.X)
		if err != nil {
			return nil, err
		}
		return selector(v, x.Sel.Name)
	case *ast.IndexExpr:
		v, err := ev.eval(x.X)
		if err != nil {
			return nil, err
		}
		i, err := ev.eval(x.Index)
		if err != nil {
			return nil, err
		}
		return index(v, i)
	case *ast.CallExpr:
		return ev.call(x)
	}
	return nil, fmt.Errorf("unsupported expression %T", x)
}

func (ev *evaluator) ident(name string) (any, error) {
	if v, ok := ev.scope[name]; ok {
		return v, nil
	}
	switch name {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "nil":
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUndefined, name)
}

func (ev *evaluator) binary(x *ast.BinaryExpr) (any, error) {
	l, err := ev.eval(x.X)
	if err != nil {
		return nil, err
	}

	// && and || only evaluate the right side when needed.
	if x.Op == token.LAND || x.Op == token.LOR {
		lb, ok := asBool(l)
		if !ok {
			return nil, fmt.Errorf("operator %s not defined on %s", x.Op, typeName(l))
		}
		if (x.Op == token.LAND && !lb) || (x.Op == token.LOR && lb) {
			return lb, nil
		}
		r, err := ev.eval(x.Y)
		if err != nil {
			return nil, err
		}
		rb, ok := asBool(r)
		if !ok {
			return nil, fmt.Errorf("operator %s not defined on %s", x.Op, typeName(r))
		}
		return rb, nil
	}

	r, err := ev.eval(x.Y)
	if err != nil {
		return nil, err
	}
	switch x.Op {
	case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
		return compare(x.Op, l, r)
	}
	return arith(x.Op, l, r)
}

func (ev *evaluator) call(x *ast.CallExpr) (any, error) {
	if id, ok := x.Fun.(*ast.Ident); ok {
		if _, shadowed := ev.scope[id.Name]; !shadowed {
			if fn, ok := builtins[id.Name]; ok {
				args, err := ev.args(x.Args)
				if err != nil {
					return nil, err
				}
				return fn(args)
			}
		}
	}

	fv, err := ev.eval(x.Fun)
	if err != nil {
		return nil, err
	}
	args, err := ev.args(x.Args)
	if err != nil {
		return nil, err
	}
	return callFunc(fv, args)
}

func (ev *evaluator) args(exprs []ast.Expr) ([]any, error) {
	args := make([]any, len(exprs))
	for i, a := range exprs {
		v, err := ev.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// literal converts a basic literal to int, float64, string or rune.
func literal(x *ast.BasicLit) (any, error) {
	switch x.Kind {
	case token.INT:
		n, err := strconv.ParseInt(x.Value, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("integer literal %s: %w", x.Value, err)
		}
		return int(n), nil
	case token.FLOAT:
		return strconv.ParseFloat(x.Value, 64)
	case token.STRING:
		return strconv.Unquote(x.Value)
	case token.CHAR:
		r, _, _, err := strconv.UnquoteChar(x.Value[1:len(x.Value)-1], '\'')
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("unsupported literal %s", x.Value)
}

func deref(v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return nil, fmt.Errorf("cannot indirect %s", typeName(v))
	}
	if rv.IsNil() {
		return nil, errors.New("nil pointer dereference")
	}
	return rv.Elem().Interface(), nil
}

// selector resolves v.name: a map entry, a struct field or a method value.
// Pointers are followed.
func selector(v any, name string) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("selector .%s on nil", name)
	}
	rv := reflect.ValueOf(v)
	if m := rv.MethodByName(name); m.IsValid() {
		return m.Interface(), nil
	}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, fmt.Errorf("selector .%s on nil %s", name, typeName(v))
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		f, ok := rv.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			break
		}
		fv, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			return nil, err
		}
		return fv.Interface(), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		e := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !e.IsValid() {
			return reflect.Zero(rv.Type().Elem()).Interface(), nil
		}
		return e.Interface(), nil
	}
	return nil, fmt.Errorf("%s has no field or method %s", typeName(v), name)
}

// index resolves v[i] for slices, arrays, strings and maps. A missing map
// key yields the zero value.
func index(v, i any) (any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Array {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		n, ok := toNumber(i)
		if !ok || n.float {
			return nil, fmt.Errorf("index must be an integer, not %s", typeName(i))
		}
		if n.i < 0 || n.i >= int64(rv.Len()) {
			return nil, fmt.Errorf("index %d out of range [0:%d]", n.i, rv.Len())
		}
		return rv.Index(int(n.i)).Interface(), nil
	case reflect.Map:
		key, err := convertArg(i, rv.Type().Key())
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		e := rv.MapIndex(key)
		if !e.IsValid() {
			return reflect.Zero(rv.Type().Elem()).Interface(), nil
		}
		return e.Interface(), nil
	}
	return nil, fmt.Errorf("cannot index %s", typeName(v))
}

// checkSupported reports the first part of x the evaluator cannot handle.
func checkSupported(x ast.Expr) error {
	switch x := x.(type) {
	case *ast.BasicLit:
		if x.Kind == token.IMAG {
			return errors.New("unsupported imaginary literal")
		}
		return nil
	case *ast.Ident:
		return nil
	case *ast.ParenExpr:
		return checkSupported(x.X)
	case *ast.StarExpr:
		return checkSupported(x.X)
	case *ast.UnaryExpr:
		switch x.Op {
		case token.NOT, token.SUB, token.ADD:
			return checkSupported(x.X)
		}
		return fmt.Errorf("unsupported operator %s", x.Op)
	case *ast.BinaryExpr:
		if _, ok := binaryOps[x.Op]; !ok {
			return fmt.Errorf("unsupported operator %s", x.Op)
		}
		if err := checkSupported(x.X); err != nil {
			return err
		}
		return checkSupported(x.Y)
	case *ast.SelectorExpr:
		return checkSupported(x.X)
	case *ast.IndexExpr:
		if err := checkSupported(x.X); err != nil {
			return err
		}
		return checkSupported(x.Index)
	case *ast.CallExpr:
		if x.Ellipsis.IsValid() {
			return errors.New("unsupported variadic call with ...")
		}
		if err := checkSupported(x.Fun); err != nil {
			return err
		}
		for _, a := range x.Args {
			if err := checkSupported(a); err != nil {
				return err
			}
		}
		return nil
	case *ast.CompositeLit:
		return errors.New("unsupported composite literal")
	case *ast.FuncLit:
		return errors.New("unsupported function literal")
	case *ast.SliceExpr:
		return errors.New("unsupported slice expression")
	case *ast.TypeAssertExpr:
		return errors.New("unsupported type assertion")
	}
	return fmt.Errorf("unsupported expression %T", x)
}

var binaryOps = map[token.Token]struct{}{
	token.ADD: {}, token.SUB: {}, token.MUL: {}, token.QUO: {}, token.REM: {},
	token.EQL: {}, token.NEQ: {}, token.LSS: {}, token.LEQ: {}, token.GTR: {}, token.GEQ: {},
	token.LAND: {}, token.LOR: {},
}
