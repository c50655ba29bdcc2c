// Package interp renders parsed templates without generating Go code.
//
// Template expressions are Go expressions. They are parsed once with
// go/parser when the template is compiled and evaluated against a [Vars]
// scope on every render. The evaluator covers the subset of Go that view
// code needs: literals, variables, operators, field and method selectors,
// indexing and function calls. Everything else is rejected at compile time.
package interp
