package minihtml

import (
	"io"
	"strings"
)

// Func is a compiled render procedure. It writes its markup to w and returns
// the first write error, leaving w partially written.
//
// Func is a [Node], so the output of one template can be embedded in another
// with `+Other(args)` and is written verbatim.
type Func func(w io.Writer) error

// Render runs f against w. A nil Func writes nothing.
func (f Func) Render(w io.Writer) error {
	if f == nil {
		return nil
	}
	return f(w)
}

// RenderNode implements [Node].
func (f Func) RenderNode(w io.Writer) error {
	return f.Render(w)
}

// RenderToString renders n into a new string.
func RenderToString(n Node) (string, error) {
	var sb strings.Builder
	if err := n.RenderNode(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
