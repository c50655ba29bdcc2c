// Package mhgen compiles minihtml templates.
//
// The pipeline consists of:
//   - [Lexer]: tokenizes template source; Go expressions are captured raw
//   - [Parser]: builds an AST of elements and arbitrary nodes, stopping at the
//     first syntax error
//   - [Analyze]: resolves each element's attribute set and reports duplicate
//     attributes
//   - [Generator]: emits Go source whose functions return minihtml.Func
//
// [FormatError] renders compile errors with a source excerpt.
package mhgen
