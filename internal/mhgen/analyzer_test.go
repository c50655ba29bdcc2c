package mhgen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// resolvedShape is the part of a ResolvedAttr a test cares about.
type resolvedShape struct {
	Name string
	Kind ResolvedKind
	Expr string
	Text string
}

func shapes(attrs []ResolvedAttr) []resolvedShape {
	out := make([]resolvedShape, len(attrs))
	for i, a := range attrs {
		out[i] = resolvedShape{Name: a.Name, Kind: a.Kind, Text: a.Text}
		if a.Expr != nil {
			out[i].Expr = a.Expr.Code
		}
	}
	return out
}

func parseElement(t *testing.T, src string) *Element {
	t.Helper()
	nodes, err := ParseNodes("test.mh", src)
	if err != nil {
		t.Fatalf("ParseNodes(%q) error = %v", src, err)
	}
	el, ok := nodes[0].(*Element)
	if !ok {
		t.Fatalf("expected *Element, got %T", nodes[0])
	}
	return el
}

func TestResolve(t *testing.T) {
	type tc struct {
		input       string
		want        []resolvedShape
		wantDynamic int
	}

	tests := map[string]tc{
		"no attributes": {
			input: "br",
			want:  []resolvedShape{},
		},
		"source order then id then class": {
			input: "a.c1.c2#x(href = u, title = t)",
			want: []resolvedShape{
				{Name: "href", Kind: AttrExpr, Expr: "u"},
				{Name: "title", Kind: AttrExpr, Expr: "t"},
				{Name: "id", Kind: AttrNoSpecial, Text: "x"},
				{Name: "class", Kind: AttrNoSpecial, Text: "c1 c2"},
			},
		},
		"valueless attribute": {
			input: "input(disabled)",
			want:  []resolvedShape{{Name: "disabled", Kind: AttrPresent}},
		},
		"explicit class keeps its position": {
			input: `div.a.b(class = extra, title = "t")`,
			want: []resolvedShape{
				{Name: "class", Kind: AttrClassConcat, Expr: "extra", Text: "a b"},
				{Name: "title", Kind: AttrExpr, Expr: `"t"`},
			},
		},
		"duplicate classes are kept": {
			input: "p.x.x",
			want:  []resolvedShape{{Name: "class", Kind: AttrNoSpecial, Text: "x x"}},
		},
		"dynamic attributes are separate": {
			input:       `div#main(dyn k = v, title = t, dyn flag)`,
			want:        []resolvedShape{{Name: "title", Kind: AttrExpr, Expr: "t"}, {Name: "id", Kind: AttrNoSpecial, Text: "main"}},
			wantDynamic: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := Resolve(parseElement(t, tt.input))
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, shapes(res.Static)); diff != "" {
				t.Errorf("Static mismatch (-want +got):\n%s", diff)
			}
			if len(res.Dynamic) != tt.wantDynamic {
				t.Errorf("got %d dynamic attributes, want %d", len(res.Dynamic), tt.wantDynamic)
			}
			var names []string
			for _, s := range tt.want {
				names = append(names, s.Name)
			}
			if diff := cmp.Diff(names, res.StaticNames); diff != "" {
				t.Errorf("StaticNames mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	type tc struct {
		input    string
		messages []string
		column   int // of the first error
	}

	tests := map[string]tc{
		"duplicate attribute": {
			input:    "a(x, y, x)",
			messages: []string{`duplicate attribute "x"`},
			column:   9,
		},
		"id marker and explicit id": {
			input:    `div.a.b#x(id = "y")`,
			messages: []string{`duplicate definition of attribute "id"`},
			column:   9,
		},
		"valueless class with markers": {
			input:    "div.a(class)",
			messages: []string{`attribute "class" needs a value to combine with class markers`},
			column:   7,
		},
		"every problem is reported": {
			input:    "p#i(id, id = 2)",
			messages: []string{`duplicate attribute "id"`, `duplicate definition of attribute "id"`},
			column:   9,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(parseElement(t, tt.input))
			if err == nil {
				t.Fatal("Resolve() error = nil")
			}
			list, ok := AsErrorList(err)
			if !ok {
				t.Fatalf("error %T is not an *ErrorList", err)
			}
			var got []string
			for _, e := range list.Errors() {
				got = append(got, e.Message)
			}
			if diff := cmp.Diff(tt.messages, got); diff != "" {
				t.Errorf("messages mismatch (-want +got):\n%s", diff)
			}
			if col := list.Errors()[0].Span.Start.Column; col != tt.column {
				t.Errorf("first error at column %d, want %d", col, tt.column)
			}
		})
	}
}

func TestAnalyze_CollectsAcrossTree(t *testing.T) {
	nodes, err := ParseNodes("test.mh", "div(a, a) {\n  p#x(id = 1)\n  +y\n}")
	if err != nil {
		t.Fatalf("ParseNodes() error = %v", err)
	}
	err = Analyze(nodes)
	list, ok := AsErrorList(err)
	if !ok {
		t.Fatalf("Analyze() error = %v, want *ErrorList", err)
	}
	if list.Len() != 2 {
		t.Fatalf("got %d errors, want 2:\n%v", list.Len(), err)
	}
	if !strings.Contains(err.Error(), "test.mh:2:5: error: duplicate definition") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestAnalyze_Valid(t *testing.T) {
	nodes, err := ParseNodes("test.mh", `html { body.page(class = c) { p#a { +x } } }`)
	if err != nil {
		t.Fatalf("ParseNodes() error = %v", err)
	}
	if err := Analyze(nodes); err != nil {
		t.Errorf("Analyze() error = %v", err)
	}
}
