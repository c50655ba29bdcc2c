package interp

import (
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"math"
	"reflect"
)

// number is a numeric operand. Integers and floats mix the way untyped Go
// constants do: an operation involving a float is done in float64.
type number struct {
	float bool
	i     int64
	f     float64
}

func (n number) asFloat() float64 {
	if n.float {
		return n.f
	}
	return float64(n.i)
}

func toNumber(v any) (number, bool) {
	if v == nil {
		return number{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return number{float: true, f: float64(u)}, true
		}
		return number{i: int64(u)}, true
	case reflect.Float32, reflect.Float64:
		return number{float: true, f: rv.Float()}, true
	}
	return number{}, false
}

func asBool(v any) (bool, bool) {
	if v == nil {
		return false, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

func asString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

func unary(op token.Token, v any) (any, error) {
	switch op {
	case token.NOT:
		b, ok := asBool(v)
		if !ok {
			return nil, fmt.Errorf("operator ! not defined on %s", typeName(v))
		}
		return !b, nil
	case token.SUB, token.ADD:
		n, ok := toNumber(v)
		if !ok {
			return nil, fmt.Errorf("operator %s not defined on %s", op, typeName(v))
		}
		if op == token.ADD {
			return v, nil
		}
		if n.float {
			return -n.f, nil
		}
		return int(-n.i), nil
	}
	return nil, fmt.Errorf("unsupported operator %s", op)
}

func arith(op token.Token, l, r any) (any, error) {
	if op == token.ADD {
		if ls, ok := asString(l); ok {
			if rs, ok := asString(r); ok {
				return ls + rs, nil
			}
		}
	}

	ln, lok := toNumber(l)
	rn, rok := toNumber(r)
	if !lok || !rok {
		return nil, fmt.Errorf("invalid operation: %s %s %s", typeName(l), op, typeName(r))
	}

	if ln.float || rn.float {
		a, b := ln.asFloat(), rn.asFloat()
		switch op {
		case token.ADD:
			return a + b, nil
		case token.SUB:
			return a - b, nil
		case token.MUL:
			return a * b, nil
		case token.QUO:
			return a / b, nil
		}
		return nil, fmt.Errorf("operator %s not defined on floats", op)
	}

	a, b := ln.i, rn.i
	switch op {
	case token.ADD:
		return int(a + b), nil
	case token.SUB:
		return int(a - b), nil
	case token.MUL:
		return int(a * b), nil
	case token.QUO, token.REM:
		if b == 0 {
			return nil, errors.New("integer division by zero")
		}
		if op == token.QUO {
			return int(a / b), nil
		}
		return int(a % b), nil
	}
	return nil, fmt.Errorf("unsupported operator %s", op)
}

func compare(op token.Token, l, r any) (any, error) {
	if op == token.EQL || op == token.NEQ {
		eq, err := equal(l, r)
		if err != nil {
			return nil, err
		}
		return eq == (op == token.EQL), nil
	}

	var c int
	if ln, ok := toNumber(l); ok {
		rn, ok := toNumber(r)
		if !ok {
			return nil, fmt.Errorf("mismatched types %s and %s", typeName(l), typeName(r))
		}
		if !ln.float && !rn.float {
			c = cmp.Compare(ln.i, rn.i)
		} else {
			c = cmp.Compare(ln.asFloat(), rn.asFloat())
		}
	} else if ls, ok := asString(l); ok {
		rs, ok := asString(r)
		if !ok {
			return nil, fmt.Errorf("mismatched types %s and %s", typeName(l), typeName(r))
		}
		c = cmp.Compare(ls, rs)
	} else {
		return nil, fmt.Errorf("operator %s not defined on %s", op, typeName(l))
	}

	switch op {
	case token.LSS:
		return c < 0, nil
	case token.LEQ:
		return c <= 0, nil
	case token.GTR:
		return c > 0, nil
	}
	return c >= 0, nil
}

// equal implements == for the values a template can produce. Numbers
// compare by value regardless of their Go type.
func equal(l, r any) (bool, error) {
	if l == nil || r == nil {
		return isNil(l) && isNil(r), nil
	}
	if ln, ok := toNumber(l); ok {
		if rn, ok := toNumber(r); ok {
			if !ln.float && !rn.float {
				return ln.i == rn.i, nil
			}
			return ln.asFloat() == rn.asFloat(), nil
		}
	}
	if ls, ok := asString(l); ok {
		if rs, ok := asString(r); ok {
			return ls == rs, nil
		}
	}
	lt, rt := reflect.TypeOf(l), reflect.TypeOf(r)
	if lt != rt {
		return false, fmt.Errorf("mismatched types %s and %s", lt, rt)
	}
	if !lt.Comparable() {
		return false, fmt.Errorf("%s cannot be compared", lt)
	}
	return l == r, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

var errorType = reflect.TypeFor[error]()

// callFunc calls fn with args converted to its parameter types. A function
// may return one value, or a value and an error.
func callFunc(fn any, args []any) (any, error) {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return nil, fmt.Errorf("cannot call non-function %s", typeName(fn))
	}
	if rv.IsNil() {
		return nil, errors.New("call of nil function")
	}
	ft := rv.Type()

	nfixed := ft.NumIn()
	if ft.IsVariadic() {
		nfixed--
		if len(args) < nfixed {
			return nil, fmt.Errorf("not enough arguments: have %d, want at least %d", len(args), nfixed)
		}
	} else if len(args) != nfixed {
		return nil, fmt.Errorf("wrong argument count: have %d, want %d", len(args), nfixed)
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var t reflect.Type
		if i < nfixed {
			t = ft.In(i)
		} else {
			t = ft.In(nfixed).Elem()
		}
		v, err := convertArg(a, t)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		in[i] = v
	}

	out := rv.Call(in)
	switch {
	case len(out) == 1:
		return out[0].Interface(), nil
	case len(out) == 2 && ft.Out(1) == errorType:
		if err, _ := out[1].Interface().(error); err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	}
	return nil, fmt.Errorf("function returns %d values, want 1 or (value, error)", len(out))
}

// convertArg converts v to type t the way an assignment of an untyped
// constant would: nil becomes the zero value and numbers convert between
// numeric types.
func convertArg(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %s", t)
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	if _, isNum := toNumber(v); isNum && isNumericKind(t.Kind()) {
		return rv.Convert(t), nil
	}
	if rv.Kind() == reflect.String && t.Kind() == reflect.String {
		return rv.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", rv.Type(), t)
}

func isNumericKind(k reflect.Kind) bool {
	return (k >= reflect.Int && k <= reflect.Uintptr) || k == reflect.Float32 || k == reflect.Float64
}
