package pathd

import (
	"math"
	"strconv"
	"strings"
)

// scalable reports whether operands of kind k are lengths in user space.
func scalable(k kind) bool {
	return k == kindX || k == kindY || k == kindLength
}

// decimals returns the number of fractional digits in the shortest decimal
// representation of v.
func decimals(v float64) int {
	if isNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// ResolveScale returns the power of ten that turns every coordinate of p into
// an integer, keeping at most maxDecimals fractional digits.
func ResolveScale(p Path, maxDecimals int) int {
	d := 0
	for _, c := range p {
		layout := layouts[lower(c.Code)]
		for i, v := range c.Args {
			if i < len(layout) && scalable(layout[i]) {
				d = max(d, min(maxDecimals, decimals(v)))
			}
		}
	}
	scale := 1
	for ; d > 0; d-- {
		scale *= 10
	}
	return scale
}

func round(v float64) float64 {
	v = math.Round(v)
	if v == 0 {
		// no negative zero
		return 0
	}
	return v
}

// Rescale multiplies every coordinate and length of p by scale and rounds the
// result to an integer. Relative coordinates are rounded through their
// absolute position, so rounding errors do not accumulate along the path.
func Rescale(p Path, scale int) Path {
	s := float64(scale)
	out := p.Clone()

	// exact tracks p, scaled tracks out in scaled space.
	var exact, scaled cursor
	for i := range out {
		c := &out[i]
		orig := p[i]
		layout := layouts[lower(c.Code)]
		rel := !isAbsolute(c.Code)
		for j := range c.Args {
			if j >= len(layout) {
				break
			}
			switch layout[j] {
			case kindX:
				if rel {
					c.Args[j] = round((exact.pos.X+c.Args[j])*s) - scaled.pos.X
				} else {
					c.Args[j] = round(c.Args[j] * s)
				}
			case kindY:
				if rel {
					c.Args[j] = round((exact.pos.Y+c.Args[j])*s) - scaled.pos.Y
				} else {
					c.Args[j] = round(c.Args[j] * s)
				}
			case kindLength:
				c.Args[j] = round(c.Args[j] * s)
			}
		}
		exact.step(orig)
		scaled.step(*c)
	}
	return out
}

// ScaleTransform formats the transform that maps a path rescaled by scale
// back to its original size, e.g. "scale(.01)".
func ScaleTransform(scale int) string {
	return "scale(" + formatAttr(1/float64(scale)) + ")"
}

// formatAttr formats a number for an attribute value, dropping the leading
// zero of fractions.
func formatAttr(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.HasPrefix(s, "0.") {
		return s[1:]
	}
	if strings.HasPrefix(s, "-0.") {
		return "-" + s[2:]
	}
	return s
}

// applyScale records a rescale on the owning element: the inverse scale is
// appended to its transform, and a visible stroke is widened to compensate.
func applyScale(owner Element, scale int) {
	t := ScaleTransform(scale)
	if old, ok := owner.Attr("transform"); ok && strings.TrimSpace(old) != "" {
		t = strings.TrimSpace(old) + " " + t
	}
	owner.SetAttr("transform", t)

	v := ResolveVisibility(owner)
	_, hasWidth := owner.Attr("stroke-width")
	if v.Stroke != "none" || hasWidth {
		// Keep the product free of binary fraction noise such as 110.00000000000001.
		width := math.Round(v.StrokeWidth*float64(scale)*1e9) / 1e9
		owner.SetAttr("stroke-width", formatAttr(width))
	}
}
