package pathd

// ToRelative converts every absolute command after the first to relative
// form. A converted command keeps its absolute rendering in Original.
func ToRelative(p Path) Path {
	out := p.Clone()

	var cur cursor
	for i := range out {
		c := &out[i]
		if i > 0 && isAbsolute(c.Code) && lower(c.Code) != 'z' {
			c.Original = render(c.Code, c.Args, false)
			layout := layouts[lower(c.Code)]
			for j := range c.Args {
				if j >= len(layout) {
					break
				}
				switch layout[j] {
				case kindX:
					c.Args[j] -= cur.pos.X
				case kindY:
					c.Args[j] -= cur.pos.Y
				}
			}
			c.Code = lower(c.Code)
		}
		cur.step(p[i])
	}
	return out
}

// FoldCloses folds every close-path into the Closes flag of the command
// before it. Repeated close-paths are dropped.
func FoldCloses(p Path) Path {
	out := make(Path, 0, len(p))
	for _, c := range p {
		if lower(c.Code) == 'z' && len(out) > 0 {
			out[len(out)-1].Closes = true
			continue
		}
		out = append(out, c)
	}
	return out
}
