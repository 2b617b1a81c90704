package svgdoc

import (
	"strings"

	"svgreduce/pkg/pathd"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

func (n *Node) parseStyle() {
	if n.styled {
		return
	}
	n.styled = true
	for _, a := range n.Attrs {
		if a.Name.Local != "style" {
			continue
		}
		// The parser drops the value of a final declaration without a
		// terminating semicolon.
		style := strings.TrimRight(strings.TrimSpace(a.Value), ";") + ";"
		decls, err := parser.ParseDeclarations(style)
		if err != nil {
			pathd.Logger().Debug("ignoring malformed style", "element", n.Name(), "style", a.Value, "error", err)
			return
		}
		n.style = decls
	}
}

// declaration returns the last inline declaration of a property, the one
// that takes effect.
func (n *Node) declaration(name string) *css.Declaration {
	n.parseStyle()
	for i := len(n.style) - 1; i >= 0; i-- {
		if n.style[i].Property == name {
			return n.style[i]
		}
	}
	return nil
}

// Style returns the value of an inline style declaration.
func (n *Node) Style(name string) (string, bool) {
	if d := n.declaration(name); d != nil {
		return d.Value, true
	}
	return "", false
}

func (n *Node) serializeStyle() {
	var styleStrs []string
	for _, d := range n.style {
		s := d.Property + ":" + d.Value
		if d.Important {
			s += "!important"
		}
		styleStrs = append(styleStrs, s)
	}
	n.setAttr("style", strings.Join(styleStrs, ";"))
}
