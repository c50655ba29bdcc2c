package interp

import (
	"fmt"
	"reflect"
	"strconv"
)

// builtins are the predeclared functions templates may call. A variable of
// the same name in the scope takes precedence.
var builtins = map[string]func(args []any) (any, error){
	"len":     builtinLen,
	"string":  builtinString,
	"int":     builtinInt,
	"float64": builtinFloat64,
}

func oneArg(name string, args []any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
	}
	return args[0], nil
}

func builtinLen(args []any) (any, error) {
	v, err := oneArg("len", args)
	if err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), nil
	}
	return nil, fmt.Errorf("invalid argument for len: %s", typeName(v))
}

// builtinString converts strings, byte slices and runes. Unlike Go it also
// formats integers in decimal, which is what a template author means.
func builtinString(args []any) (any, error) {
	v, err := oneArg("string", args)
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case rune:
		return string(v), nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	if s, ok := asString(v); ok {
		return s, nil
	}
	if n, ok := toNumber(v); ok {
		if n.float {
			return strconv.FormatFloat(n.f, 'g', -1, 64), nil
		}
		return strconv.FormatInt(n.i, 10), nil
	}
	return nil, fmt.Errorf("cannot convert %s to string", typeName(v))
}

func builtinInt(args []any) (any, error) {
	v, err := oneArg("int", args)
	if err != nil {
		return nil, err
	}
	n, ok := toNumber(v)
	if !ok {
		return nil, fmt.Errorf("cannot convert %s to int", typeName(v))
	}
	if n.float {
		return int(n.f), nil
	}
	return int(n.i), nil
}

func builtinFloat64(args []any) (any, error) {
	v, err := oneArg("float64", args)
	if err != nil {
		return nil, err
	}
	n, ok := toNumber(v)
	if !ok {
		return nil, fmt.Errorf("cannot convert %s to float64", typeName(v))
	}
	return n.asFloat(), nil
}
