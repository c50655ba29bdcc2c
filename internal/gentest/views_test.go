package gentest

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	minihtml "github.com/grindlemire/go-minihtml"
	"github.com/grindlemire/go-minihtml/internal/interp"
	"github.com/grindlemire/go-minihtml/internal/mhgen"
)

const sourceName = "internal/gentest/views.mh"

func parseViews(t *testing.T) *mhgen.File {
	t.Helper()
	src, err := os.ReadFile("views.mh")
	require.NoError(t, err)
	file, err := mhgen.Parse("views.mh", string(src))
	require.NoError(t, err)
	require.NoError(t, mhgen.AnalyzeFile(file))
	return file
}

func TestGenerated_UpToDate(t *testing.T) {
	gen := mhgen.NewGenerator()
	gen.SkipImports = true
	got, err := gen.GenerateString(parseViews(t), sourceName)
	require.NoError(t, err)

	want, err := os.ReadFile("views_mh.go")
	require.NoError(t, err)
	assert.Equal(t, string(want), got, "views_mh.go is stale; see the package doc to regenerate it")
}

func TestDocument(t *testing.T) {
	out, err := minihtml.RenderToString(Document())
	require.NoError(t, err)
	assert.Equal(t, `<html><head><title>Test title</title></head><body><img src="https://example.com"/><div class="foo bar">quz qux</div><button disabled>the button</button></body></html>`, out)
}

func TestCard(t *testing.T) {
	type tc struct {
		extra  string
		hidden bool
		name   string
		value  string
		want   string
	}

	tests := map[string]tc{
		"escaped class value": {
			extra: "<v>", hidden: true, name: "data-k", value: "q",
			want: `<div class="&lt;v&gt; a b" hidden id="x" data-k="q">&lt;v&gt;</div>`,
		},
		"empty class value": {
			extra: "", hidden: false, name: "title", value: `"t"`,
			want: `<div class="a b" id="x" title="&quot;t&quot;"></div>`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := minihtml.RenderToString(Card(tt.extra, tt.hidden, tt.name, tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCard_Collision(t *testing.T) {
	for _, name := range []string{"class", "hidden", "id"} {
		t.Run(name, func(t *testing.T) {
			var sb strings.Builder
			err := Card("c", true, name, "v").Render(&sb)

			var ce *minihtml.CollisionError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, name, ce.Name)
			assert.Equal(t, `minihtml: the dynamic attribute "`+name+`" duplicates a hardcoded attribute`, err.Error())
		})
	}
}

// TestGenerated_MatchesInterpreter renders every template both as generated
// code and through the interpreter.
func TestGenerated_MatchesInterpreter(t *testing.T) {
	bodies := map[string]*mhgen.Template{}
	for _, tmpl := range parseViews(t).Templates {
		bodies[tmpl.Name] = tmpl
	}

	type tc struct {
		template  string
		generated minihtml.Func
		vars      interp.Vars
	}

	tests := map[string]tc{
		"document": {template: "Document", generated: Document()},
		"card": {
			template:  "Card",
			generated: Card("x & y", true, "aria-label", "<label>"),
			vars:      interp.Vars{"extra": "x & y", "hidden": true, "name": "aria-label", "value": "<label>"},
		},
		"card without hidden": {
			template:  "Card",
			generated: Card("", false, "data-n", "1"),
			vars:      interp.Vars{"extra": "", "hidden": false, "name": "data-n", "value": "1"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tmpl, ok := bodies[tt.template]
			require.True(t, ok, "no template %s in views.mh", tt.template)
			prog, err := interp.Compile(tmpl.Body)
			require.NoError(t, err)

			var interpreted bytes.Buffer
			require.NoError(t, prog.Render(&interpreted, tt.vars))

			generated, err := minihtml.RenderToString(tt.generated)
			require.NoError(t, err)
			assert.Equal(t, interpreted.String(), generated)
		})
	}
}
