package mhgen

import "strings"

// ResolvedKind says how a resolved static attribute is rendered.
type ResolvedKind int

const (
	// AttrExpr is name = expr; the value is rendered with whole-attribute
	// rendering.
	AttrExpr ResolvedKind = iota
	// AttrPresent is a valueless attribute; it renders as if its value were
	// true.
	AttrPresent
	// AttrNoSpecial is a value known at compile time to contain no special
	// characters: the #id marker or synthesized class markers.
	AttrNoSpecial
	// AttrClassConcat is an explicit class value followed by the class
	// markers.
	AttrClassConcat
)

var resolvedKindNames = map[ResolvedKind]string{
	AttrExpr:        "expr",
	AttrPresent:     "present",
	AttrNoSpecial:   "nospecial",
	AttrClassConcat: "classconcat",
}

func (k ResolvedKind) String() string {
	if name, ok := resolvedKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ResolvedAttr is one static attribute after markers have been merged in.
type ResolvedAttr struct {
	Name string
	Kind ResolvedKind
	Expr *Expr  // AttrExpr and AttrClassConcat
	Text string // AttrNoSpecial value, or the marker list of AttrClassConcat
	Span Span
}

// ResolvedAttrs is the attribute plan for one element.
type ResolvedAttrs struct {
	// Static holds explicit attributes in source order, then the id marker,
	// then a synthesized class attribute.
	Static []ResolvedAttr
	// Dynamic holds dyn attributes in source order.
	Dynamic []*DynAttr
	// StaticNames lists the names in Static, for the collision check of
	// dynamic attributes.
	StaticNames []string
}

// Resolve merges an element's #id and .class markers into its explicit
// static attributes. Every problem with the element is reported.
func Resolve(el *Element) (*ResolvedAttrs, error) {
	errs := NewErrorList()
	res := &ResolvedAttrs{}
	index := make(map[string]int)

	for _, a := range el.Attrs {
		switch a := a.(type) {
		case *DynAttr:
			res.Dynamic = append(res.Dynamic, a)
		case *StaticAttr:
			name := a.Name.Value
			if _, dup := index[name]; dup {
				errs.AddErrorf(a.Name.Span, "duplicate attribute %q", name)
				continue
			}
			index[name] = len(res.Static)
			ra := ResolvedAttr{Name: name, Kind: AttrPresent, Span: a.Span}
			if a.Value != nil {
				ra.Kind = AttrExpr
				ra.Expr = a.Value
			}
			res.Static = append(res.Static, ra)
		}
	}

	if el.ID != nil {
		if _, dup := index["id"]; dup {
			errs.AddErrorf(el.ID.Span, "duplicate definition of attribute %q", "id")
		} else {
			index["id"] = len(res.Static)
			res.Static = append(res.Static, ResolvedAttr{
				Name: "id",
				Kind: AttrNoSpecial,
				Text: el.ID.Value,
				Span: el.ID.Span,
			})
		}
	}

	if len(el.Classes) > 0 {
		names := make([]string, len(el.Classes))
		span := el.Classes[0].Span
		for i, c := range el.Classes {
			names[i] = c.Value
			span = span.Join(c.Span)
		}
		classes := strings.Join(names, " ")

		if i, ok := index["class"]; ok {
			explicit := &res.Static[i]
			if explicit.Kind == AttrPresent {
				errs.Add(NewErrorWithHint(explicit.Span,
					`attribute "class" needs a value to combine with class markers`,
					"write class = \"...\" or drop the attribute"))
			} else {
				explicit.Kind = AttrClassConcat
				explicit.Text = classes
			}
		} else {
			index["class"] = len(res.Static)
			res.Static = append(res.Static, ResolvedAttr{
				Name: "class",
				Kind: AttrNoSpecial,
				Text: classes,
				Span: span,
			})
		}
	}

	for _, a := range res.Static {
		res.StaticNames = append(res.StaticNames, a.Name)
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Analyze resolves the attributes of every element in nodes and returns all
// semantic errors as an *ErrorList, or nil.
func Analyze(nodes []Node) error {
	errs := NewErrorList()
	Walk(nodes, func(n Node) bool {
		el, ok := n.(*Element)
		if !ok {
			return true
		}
		if _, err := Resolve(el); err != nil {
			collect(errs, err)
		}
		return true
	})
	return errs.Err()
}

// AnalyzeFile analyzes every template body in file.
func AnalyzeFile(file *File) error {
	errs := NewErrorList()
	for _, t := range file.Templates {
		if err := Analyze(t.Body); err != nil {
			collect(errs, err)
		}
	}
	return errs.Err()
}

// collect adds err, or each error of an *ErrorList, to errs.
func collect(errs *ErrorList, err error) {
	if list, ok := AsErrorList(err); ok {
		for _, e := range list.Errors() {
			errs.Add(e)
		}
	}
}
