package mhgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/grindlemire/go-minihtml/internal/debug"
	"golang.org/x/tools/imports"
)

// RuntimeImport is the import path of the rendering library used by
// generated code.
const RuntimeImport = "github.com/grindlemire/go-minihtml"

// Names used inside generated functions. The prefix keeps them clear of
// template parameters.
const (
	writerVar = "__mh_w"
	errVar    = "__mh_err"
)

// Generator transforms an analyzed AST into Go source code.
type Generator struct {
	buf        bytes.Buffer
	indent     int
	sourceFile string // original template filename for the header comment

	// literal output not yet written; coalesced into a single WriteString
	text strings.Builder

	// SkipImports uses format.Source instead of imports.Process (faster for tests)
	SkipImports bool
}

// NewGenerator creates a new code generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produces Go source code from a parsed and analyzed file: one
// function per template returning a minihtml.Func.
func (g *Generator) Generate(file *File, sourceFile string) ([]byte, error) {
	g.buf.Reset()
	g.text.Reset()
	g.indent = 0
	g.sourceFile = sourceFile

	g.generateHeader()
	g.generatePackage(file.Package)
	g.generateImports(file.Imports)

	for _, tmpl := range file.Templates {
		if err := g.generateTemplate(tmpl); err != nil {
			return nil, err
		}
	}

	debug.Log("mhgen: generated %d templates for %s (%d bytes before formatting)",
		len(file.Templates), sourceFile, g.buf.Len())

	// For tests: just format without import processing (much faster)
	if g.SkipImports {
		out, err := format.Source(g.buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("formatting generated code: %w", err)
		}
		return out, nil
	}

	out, err := imports.Process(g.sourceFile, g.buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

// GenerateString is a convenience method that returns the generated code as a string.
func (g *Generator) GenerateString(file *File, sourceFile string) (string, error) {
	data, err := g.Generate(file, sourceFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// generateHeader writes the "DO NOT EDIT" comment.
func (g *Generator) generateHeader() {
	g.writeln("// Code generated by minihtml generate. DO NOT EDIT.")
	if g.sourceFile != "" {
		g.writef("// Source: %s\n", g.sourceFile)
	}
	g.writeln("")
}

// generatePackage writes the package declaration.
func (g *Generator) generatePackage(pkg string) {
	g.writef("package %s\n\n", pkg)
}

// generateImports writes the import block. io and the runtime library are
// always imported; user imports of either are not repeated.
func (g *Generator) generateImports(imps []Import) {
	hasIO := false
	hasRuntime := false
	for _, imp := range imps {
		switch {
		case imp.Path == "io" && (imp.Alias == "" || imp.Alias == "io"):
			hasIO = true
		case imp.Path == RuntimeImport && (imp.Alias == "" || imp.Alias == "minihtml"):
			hasRuntime = true
		}
	}

	g.writeln("import (")
	g.indent++
	if !hasIO {
		g.writeln(`"io"`)
	}
	for _, imp := range imps {
		if imp.Alias != "" {
			g.writef("%s %q\n", imp.Alias, imp.Path)
		} else {
			g.writef("%q\n", imp.Path)
		}
	}
	if !hasRuntime {
		g.writeln("")
		g.writef("minihtml %q\n", RuntimeImport)
	}
	g.indent--
	g.writeln(")")
	g.writeln("")
}

// generateTemplate writes one template as a function returning a render
// procedure.
func (g *Generator) generateTemplate(tmpl *Template) error {
	for _, line := range tmpl.DocText() {
		if line == "" {
			g.writeln("//")
			continue
		}
		g.writef("// %s\n", line)
	}
	g.writef("func %s(%s) minihtml.Func {\n", tmpl.Name, tmpl.Params)
	g.indent++
	g.writef("return func(%s io.Writer) error {\n", writerVar)
	g.indent++

	if err := g.generateNodes(tmpl.Body); err != nil {
		return fmt.Errorf("templ %s: %w", tmpl.Name, err)
	}
	g.flushText()

	g.writeln("return nil")
	g.indent--
	g.writeln("}")
	g.indent--
	g.writeln("}")
	g.writeln("")
	return nil
}

// emitText queues literal output.
func (g *Generator) emitText(s string) {
	g.text.WriteString(s)
}

// flushText writes queued literal output as one WriteString call.
func (g *Generator) flushText() {
	if g.text.Len() == 0 {
		return
	}
	g.writef("if _, %s := io.WriteString(%s, %s); %s != nil {\n",
		errVar, writerVar, strconv.Quote(g.text.String()), errVar)
	g.writeReturnErr()
	g.text.Reset()
}

// emitCall writes a runtime call whose error aborts the render.
func (g *Generator) emitCall(format string, args ...any) {
	g.flushText()
	g.writef("if %s := %s; %s != nil {\n", errVar, fmt.Sprintf(format, args...), errVar)
	g.writeReturnErr()
}

func (g *Generator) writeReturnErr() {
	g.indent++
	g.writef("return %s\n", errVar)
	g.indent--
	g.writeln("}")
}

// writef writes a formatted string with indentation.
func (g *Generator) writef(format string, args ...any) {
	g.writeIndent()
	fmt.Fprintf(&g.buf, format, args...)
}

// writeln writes a line with indentation.
func (g *Generator) writeln(s string) {
	if s == "" {
		g.buf.WriteByte('\n')
		return
	}
	g.writeIndent()
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (g *Generator) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.buf.WriteByte('\t')
	}
}
