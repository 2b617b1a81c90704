// Package svgdoc loads SVG documents into a generic element tree so that the
// path data in them can be optimized and written back.
package svgdoc

import (
	"bytes"
	"encoding/xml"
	"regexp"
	"strings"

	"svgreduce/pkg/pathd"

	"github.com/aymerick/douceur/css"
)

// Node is one element. Attributes keep their document order; namespaced
// names are stored with their prefix, as in "xlink:href".
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []*Node    `xml:",any"`

	parent *Node
	style  []*css.Declaration
	styled bool
}

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// Parse reads a document and links every node to its parent.
func Parse(data []byte) (*Node, error) {
	var root Node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	root.link(nil, map[string]string{xmlNamespace: "xml"})
	return &root, nil
}

// link sets parent pointers and replaces namespace URLs with the prefixes the
// document declared for them.
func (n *Node) link(parent *Node, prefixes map[string]string) {
	n.parent = parent

	declared := false
	for _, a := range n.Attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			if !declared {
				prefixes = clone(prefixes)
				declared = true
			}
			if a.Name.Space == "" {
				prefixes[a.Value] = ""
			} else {
				prefixes[a.Value] = a.Name.Local
			}
		}
	}

	n.XMLName = flatten(n.XMLName, prefixes)
	for i := range n.Attrs {
		n.Attrs[i].Name = flatten(n.Attrs[i].Name, prefixes)
	}
	if strings.TrimSpace(n.Content) == "" {
		n.Content = ""
	}
	for _, child := range n.Children {
		child.link(n, prefixes)
	}
}

func clone(m map[string]string) map[string]string {
	out := make(map[string]string, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func flatten(name xml.Name, prefixes map[string]string) xml.Name {
	if name.Space == "" {
		return name
	}
	prefix, ok := prefixes[name.Space]
	if !ok {
		prefix = name.Space
	}
	if prefix == "" {
		return xml.Name{Local: name.Local}
	}
	return xml.Name{Local: prefix + ":" + name.Local}
}

// Name returns the element name, with its prefix if it has one.
func (n *Node) Name() string {
	return n.XMLName.Local
}

// Attr returns a presentation property. Inline style declarations win over
// attributes of the same name.
func (n *Node) Attr(name string) (string, bool) {
	if d := n.declaration(name); d != nil {
		return d.Value, true
	}
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr updates a property where it is defined: in the inline style if it
// has a declaration for it, otherwise as an attribute.
func (n *Node) SetAttr(name, value string) {
	if d := n.declaration(name); d != nil {
		d.Value = value
		n.serializeStyle()
		return
	}
	n.setAttr(name, value)
}

func (n *Node) setAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name.Local == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// Parent returns nil at the root.
func (n *Node) Parent() pathd.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Walk calls fn for n and every node below it, parents first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

var emptyElementRE = regexp.MustCompile(
	`(<(?:path|line|rect|circle|ellipse|polyline|polygon|stop|use|image)(?:\s[^<>]*)?)></(?:path|line|rect|circle|ellipse|polyline|polygon|stop|use|image)>`)

// Marshal writes the tree back out. Empty shape elements are self-closed.
func (n *Node) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := xml.NewEncoder(&buf).Encode(n); err != nil {
		return nil, err
	}
	return emptyElementRE.ReplaceAll(buf.Bytes(), []byte("$1/>")), nil
}
