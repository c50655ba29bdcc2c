// Package minihtml is the runtime half of the minihtml template compiler.
//
// Code generated by `minihtml generate` and templates executed by
// [github.com/grindlemire/go-minihtml/pkg/compiler] call into this package to
// write markup. Three capabilities cover everything a template can emit:
//   - [Node]: element content, escaped unless it is an already rendered [Func]
//   - [AttrValue]: the text between the quotes of an attribute
//   - [Attr]: a whole attribute, including its leading space
//
// Every AttrValue is also rendered as a whole attribute by [RenderAttr].
// Types whose presence is conditional (bool, [Optional], pointers) implement
// Attr themselves and decide whether the attribute appears at all.
//
// Escaping is fixed: & < > ' " become &amp; &lt; &gt; &apos; &quot;.
// [NoSpecial] is the only way to skip it and must never wrap caller text.
package minihtml
