package minihtml

import "reflect"

// derefPointer reports whether v is a pointer and, when it is not nil, the
// value it points to.
func derefPointer(v any) (elem any, isPtr, isNil bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return nil, false, false
	}
	if rv.IsNil() {
		return nil, true, true
	}
	return rv.Elem().Interface(), true, false
}

// underlying converts a value of a named scalar type (type Color string) to
// the predeclared type of its kind. It returns nil for everything else.
func underlying(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return nil
}
