package interp

import (
	"errors"
	"go/parser"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	Name  string
	Age   int
	Tags  []string
	Admin *bool
	inner string
}

func (u user) Greeting() string { return "hi " + u.Name }

func (u *user) Rename(n string) string { u.Name = n; return n }

func evalString(t *testing.T, code string, scope Vars) (any, error) {
	t.Helper()
	x, err := parser.ParseExpr(code)
	require.NoError(t, err)
	require.NoError(t, checkSupported(x))
	return (&evaluator{scope: scope}).eval(x)
}

func TestEval(t *testing.T) {
	admin := true
	u := user{Name: "Ann", Age: 41, Tags: []string{"a", "b"}, Admin: &admin}
	scope := Vars{
		"u":     u,
		"up":    &u,
		"n":     3,
		"f":     1.5,
		"s":     "x<y",
		"m":     map[string]int{"one": 1},
		"im":    map[int]string{2: "two"},
		"xs":    []int{10, 20, 30},
		"itoa":  strconv.Itoa,
		"pair":  func(a, b string) string { return a + "/" + b },
		"join":  func(sep string, parts ...string) string { return sep + strconv.Itoa(len(parts)) },
		"ptr":   &admin,
		"none":  (*user)(nil),
		"uint8": uint8(7),
	}

	type tc struct {
		code string
		want any
	}

	tests := map[string]tc{
		"int literal":            {code: "42", want: 42},
		"hex literal":            {code: "0x10", want: 16},
		"float literal":          {code: "2.5", want: 2.5},
		"string literal":         {code: `"a\tb"`, want: "a\tb"},
		"raw string":             {code: "`a\\tb`", want: `a\tb`},
		"rune literal":           {code: `'x'`, want: 'x'},
		"true":                   {code: "true", want: true},
		"nil":                    {code: "nil", want: nil},
		"variable":               {code: "s", want: "x<y"},
		"not":                    {code: "!true", want: false},
		"negate int":             {code: "-n", want: -3},
		"negate float":           {code: "-f", want: -1.5},
		"arithmetic precedence":  {code: "1 + n * 2", want: 7},
		"parentheses":            {code: "(1 + n) * 2", want: 8},
		"integer division":       {code: "7 / 2", want: 3},
		"remainder":              {code: "7 % n", want: 1},
		"mixed float":            {code: "n + f", want: 4.5},
		"mixed integer types":    {code: "uint8 + 1", want: 8},
		"string concat":          {code: `s + "!"`, want: "x<y!"},
		"comparison":             {code: "n < 4 && n >= 3", want: true},
		"string comparison":      {code: `"a" < "b"`, want: true},
		"equality across types":  {code: "uint8 == 7", want: true},
		"inequality":             {code: `s != "x<y"`, want: false},
		"or short circuits":      {code: "true || undefinedName", want: true},
		"and short circuits":     {code: "false && undefinedName", want: false},
		"struct field":           {code: "u.Name", want: "Ann"},
		"field through pointer":  {code: "up.Age", want: 41},
		"method value call":      {code: "u.Greeting()", want: "hi Ann"},
		"map key selector":       {code: "m.one", want: 1},
		"missing map key":        {code: `m["two"]`, want: 0},
		"int map index":          {code: "im[2]", want: "two"},
		"slice index":            {code: "xs[1]", want: 20},
		"string index":           {code: `s[0]`, want: byte('x')},
		"nested index":           {code: "u.Tags[len(u.Tags) - 1]", want: "b"},
		"deref":                  {code: "*ptr", want: true},
		"deref field":            {code: "*u.Admin", want: true},
		"function call":          {code: "itoa(n * 2)", want: "6"},
		"two arguments":          {code: `pair("a", s)`, want: "a/x<y"},
		"variadic":               {code: `join(",", "a", "b")`, want: ",2"},
		"len builtin":            {code: "len(xs)", want: 3},
		"string builtin":         {code: "string(n)", want: "3"},
		"int builtin":            {code: "int(f)", want: 1},
		"float64 builtin":        {code: "float64(n) / 2", want: 1.5},
		"nil comparison":         {code: "none == nil", want: true},
		"non-nil comparison":     {code: "ptr != nil", want: true},
		"unary plus keeps value": {code: "+n", want: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := evalString(t, tt.code, scope)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEval_Errors(t *testing.T) {
	scope := Vars{
		"u":    user{Name: "Ann"},
		"xs":   []int{1},
		"fail": func() (string, error) { return "", errors.New("backend down") },
		"none": (*user)(nil),
		"n":    0,
	}

	type tc struct {
		code    string
		message string
	}

	tests := map[string]tc{
		"undefined":        {code: "missing", message: "undefined: missing"},
		"division by zero": {code: "1 / n", message: "integer division by zero"},
		"out of range":     {code: "xs[5]", message: "index 5 out of range [0:1]"},
		"unknown field":    {code: "u.Email", message: "interp.user has no field or method Email"},
		"unexported field": {code: "u.inner", message: "interp.user has no field or method inner"},
		"nil selector":     {code: "none.Name", message: "selector .Name on nil *interp.user"},
		"bad operand":      {code: `"a" - 1`, message: "invalid operation: string - int"},
		"not on int":       {code: "!xs[0]", message: "operator ! not defined on int"},
		"call error":       {code: "fail()", message: "backend down"},
		"call non-func":    {code: "xs()", message: "cannot call non-function []int"},
		"argument count":   {code: "len(xs, xs)", message: "len expects 1 argument, got 2"},
		"mismatched ==":    {code: `u == "x"`, message: "mismatched types interp.user and string"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := evalString(t, tt.code, scope)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestEval_UndefinedIsSentinel(t *testing.T) {
	_, err := evalString(t, "nope", Vars{})
	assert.ErrorIs(t, err, ErrUndefined)
}

func TestCheckSupported(t *testing.T) {
	type tc struct {
		code    string
		message string
	}

	tests := map[string]tc{
		"composite literal": {code: "[]int{1}", message: "unsupported composite literal"},
		"function literal":  {code: "func() int { return 1 }", message: "unsupported function literal"},
		"slice expression":  {code: "xs[1:]", message: "unsupported slice expression"},
		"type assertion":    {code: "v.(string)", message: "unsupported type assertion"},
		"bit operator":      {code: "a & b", message: "unsupported operator &"},
		"address operator":  {code: "&a", message: "unsupported operator &"},
		"spread call":       {code: "f(xs...)", message: "unsupported variadic call with ..."},
		"nested":            {code: "f(1, []int{})", message: "unsupported composite literal"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			x, err := parser.ParseExpr(tt.code)
			require.NoError(t, err)
			err = checkSupported(x)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}
