package pathd

import (
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// Element is the document node that owns a path. The optimizer reads
// inherited presentation properties through it and records the rescale on it.
type Element interface {
	// Attr returns the value of a presentation property set on this element.
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	// Parent returns nil at the root.
	Parent() Element
}

// Visibility holds the inherited properties that decide whether a path draws
// a stroke.
type Visibility struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// DefaultVisibility is what an element with no styled ancestors inherits.
var DefaultVisibility = Visibility{Fill: "black", Stroke: "none", StrokeWidth: 1}

// ResolveVisibility walks from the root down to e. The nearest element that
// sets a property wins.
func ResolveVisibility(e Element) Visibility {
	var chain []Element
	for ; e != nil; e = e.Parent() {
		chain = append(chain, e)
	}

	v := DefaultVisibility
	for i := len(chain) - 1; i >= 0; i-- {
		el := chain[i]
		if s, ok := property(el, "fill"); ok {
			v.Fill = s
		}
		if s, ok := property(el, "stroke"); ok {
			v.Stroke = s
		}
		if s, ok := property(el, "stroke-width"); ok {
			if f, n := strconv.ParseFloat([]byte(s)); n > 0 {
				v.StrokeWidth = f
			}
		}
	}
	return v
}

func property(e Element, name string) (string, bool) {
	s, ok := e.Attr(name)
	s = strings.TrimSpace(s)
	if !ok || s == "" || s == "inherit" {
		return "", false
	}
	return s, true
}
