package mhgen

import (
	"strconv"
	"strings"
)

// generateNodes writes the render statements for a node list.
func (g *Generator) generateNodes(nodes []Node) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Arbitrary:
			g.emitCall("minihtml.RenderNode(%s, %s)", writerVar, n.Expr.Code)
		case *Element:
			if err := g.generateElement(n); err != nil {
				return err
			}
		}
	}
	return nil
}

// generateElement writes the open tag, attributes, children and close tag of
// an element. Attribute values known at compile time become literal text.
func (g *Generator) generateElement(el *Element) error {
	attrs, err := Resolve(el)
	if err != nil {
		return err
	}

	g.emitText("<" + el.Name.Value)

	for _, a := range attrs.Static {
		switch a.Kind {
		case AttrPresent:
			g.emitText(" " + a.Name)
		case AttrNoSpecial:
			g.emitText(" " + a.Name + `="` + a.Text + `"`)
		case AttrExpr:
			g.emitCall("minihtml.RenderAttr(%s, %q, %s)", writerVar, a.Name, a.Expr.Code)
		case AttrClassConcat:
			g.emitCall("minihtml.RenderAttr(%s, %q, minihtml.ClassConcat{Value: %s, Static: %q})",
				writerVar, a.Name, a.Expr.Code, a.Text)
		}
	}

	for _, d := range attrs.Dynamic {
		value := "true"
		if d.Value != nil {
			value = d.Value.Code
		}
		g.emitCall("minihtml.RenderDynamicAttr(%s, %s, %s%s)",
			writerVar, d.Name.Code, value, staticNamesArg(attrs.StaticNames))
	}

	if el.SelfClose {
		g.emitText("/>")
		return nil
	}

	g.emitText(">")
	if err := g.generateNodes(el.Children); err != nil {
		return err
	}
	g.emitText("</" + el.Name.Value + ">")
	return nil
}

// staticNamesArg formats the variadic static-name arguments of
// RenderDynamicAttr, including the leading comma.
func staticNamesArg(names []string) string {
	if len(names) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, n := range names {
		sb.WriteString(", ")
		sb.WriteString(strconv.Quote(n))
	}
	return sb.String()
}
