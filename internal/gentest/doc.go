// Package gentest holds templates compiled by `minihtml generate`, so tests
// can run generated code and compare it with the interpreter.
//
// After changing views.mh or the generator, regenerate with
//
//	go run ./cmd/minihtml generate --skip-imports ./internal/gentest
package gentest
