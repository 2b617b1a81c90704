package pathd

// The rules below work on relative commands only. Absolute commands, which
// remain when relative conversion is disabled, are left alone. Most rules
// compact the path in place, keeping p[:k] as the result so far.

func expandSmooth(s Command) Command {
	return Command{
		Code:   'c',
		Args:   []float64{0, 0, s.Args[0], s.Args[1], s.Args[2], s.Args[3]},
		Closes: s.Closes,
	}
}

// detach prepares p[i+1] for p[i] to be rewritten into a non-curve, or to be
// removed, with p[k-1] as the kept predecessor of p[i]. It reports false when
// the command after p[i] would change shape.
func detach(p Path, k, i int, removing bool) bool {
	if i+1 >= len(p) {
		return true
	}
	cur, next := p[i], p[i+1]
	if reflectsFrom(cur, next) {
		// The reflected control point is the current point only when the
		// second control point sits on the end point.
		if cur.Code != 'c' || next.Code != 's' || cur.Args[2] != cur.Args[4] || cur.Args[3] != cur.Args[5] {
			return false
		}
		p[i+1] = expandSmooth(next)
		return true
	}
	if !removing {
		return true
	}
	prev := p[k-1]
	prev.Closes = prev.Closes || cur.Closes
	return !reflectsFrom(prev, next)
}

// expandOrphanSmooth rewrites a smooth cubic with nothing to reflect into an
// explicit cubic whose first control point is the current point.
func expandOrphanSmooth(p Path) int {
	n := 0
	for i := 1; i < len(p); i++ {
		if p[i].Code == 's' && !isOpenCurve(p[i-1]) {
			p[i] = expandSmooth(p[i])
			n++
		}
	}
	return n
}

// onSegment reports whether the control point (x2, y2) lies on the segment
// from the origin to (x, y).
func onSegment(x2, y2, x, y float64) bool {
	if x2 == 0 && y2 == 0 {
		return true
	}
	if x == 0 && y == 0 {
		return false
	}
	dot := x2*x + y2*y
	return x2*y-y2*x == 0 && dot >= 0 && dot <= x*x+y*y
}

func monotonic(v ...float64) bool {
	up, down := true, true
	for i := 1; i < len(v); i++ {
		up = up && v[i-1] <= v[i]
		down = down && v[i-1] >= v[i]
	}
	return up || down
}

// collapseCubics replaces cubics that draw a straight line with lines, and
// drops cubics that draw nothing.
func collapseCubics(p Path) (Path, int) {
	n, k := 0, 0
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c.Code != 'c' || k == 0 {
			p[k] = c
			k++
			continue
		}

		a := c.Args
		zeroStart := a[0] == 0 && a[1] == 0
		var repl *Command
		switch {
		case zeroStart && a[4] == 0 && a[5] == 0:
			if detach(p, k, i, true) {
				p[k-1].Closes = p[k-1].Closes || c.Closes
				n++
				continue
			}
		case zeroStart && onSegment(a[2], a[3], a[4], a[5]):
			repl = &Command{Code: 'l', Args: []float64{a[4], a[5]}}
		case a[1] == 0 && a[3] == 0 && a[5] == 0 && monotonic(0, a[0], a[2], a[4]):
			repl = &Command{Code: 'h', Args: []float64{a[4]}}
		case a[0] == 0 && a[2] == 0 && a[4] == 0 && monotonic(0, a[1], a[3], a[5]):
			repl = &Command{Code: 'v', Args: []float64{a[5]}}
		}
		if repl != nil && detach(p, k, i, false) {
			repl.Closes = c.Closes
			c = *repl
			n++
		}
		p[k] = c
		k++
	}
	return p[:k], n
}

// contractSmooth turns a cubic whose first control point is the current
// point back into the shorter smooth form where nothing is reflected.
func contractSmooth(p Path) int {
	n := 0
	for i := 1; i < len(p); i++ {
		c := p[i]
		if c.Code == 'c' && c.Args[0] == 0 && c.Args[1] == 0 && !isOpenCurve(p[i-1]) {
			p[i] = Command{Code: 's', Args: c.Args[2:6:6], Closes: c.Closes}
			n++
		}
	}
	return n
}

func straightenLines(p Path) int {
	n := 0
	for i := range p {
		c := p[i]
		if c.Code != 'l' {
			continue
		}
		switch {
		case c.Args[0] == 0:
			p[i] = Command{Code: 'v', Args: []float64{c.Args[1]}, Closes: c.Closes}
		case c.Args[1] == 0:
			p[i] = Command{Code: 'h', Args: []float64{c.Args[0]}, Closes: c.Closes}
		default:
			continue
		}
		n++
	}
	return n
}

func sameDirection(a, b float64) bool {
	return !isNaN(a) && !isNaN(b) && (a < 0) == (b < 0)
}

// mergeAxisRuns sums runs of h (or v) that travel in the same direction.
func mergeAxisRuns(p Path) (Path, int) {
	n, k := 0, 0
	for _, c := range p {
		if k > 0 && (c.Code == 'h' || c.Code == 'v') {
			prev := &p[k-1]
			if prev.Code == c.Code && !prev.Closes && sameDirection(prev.Args[0], c.Args[0]) {
				prev.Args = []float64{prev.Args[0] + c.Args[0]}
				prev.Closes = c.Closes
				prev.Original = ""
				n++
				continue
			}
		}
		p[k] = c
		k++
	}
	return p[:k], n
}

func dropZeroAxis(p Path) (Path, int) {
	n, k := 0, 0
	for i := 0; i < len(p); i++ {
		c := p[i]
		if k > 0 && (c.Code == 'h' || c.Code == 'v') && c.Args[0] == 0 && detach(p, k, i, true) {
			p[k-1].Closes = p[k-1].Closes || c.Closes
			n++
			continue
		}
		p[k] = c
		k++
	}
	return p[:k], n
}

// cleanMoves removes moves that are not followed by any drawing.
func cleanMoves(p Path) (Path, int) {
	n, k := 0, 0
	for _, c := range p {
		if !isMove(c) {
			p[k] = c
			k++
			continue
		}
		if c.Closes {
			c.Closes = false
			n++
		}
		if k > 0 && isMove(p[k-1]) {
			prev := &p[k-1]
			if isAbsolute(c.Code) {
				prev.Code = c.Code
				prev.Args = c.Args
			} else {
				prev.Args = []float64{prev.Args[0] + c.Args[0], prev.Args[1] + c.Args[1]}
			}
			prev.Original = ""
			n++
			continue
		}
		p[k] = c
		k++
	}
	for k > 0 && isMove(p[k-1]) {
		k--
		n++
	}
	return p[:k], n
}

// Simplify rewrites degenerate segments of a relative path into shorter
// equivalents. Each rule runs once, in order.
func Simplify(p Path) Path {
	p = p.Clone()
	log := Logger()

	var n int
	report := func(rule string) {
		if n > 0 {
			log.Debug("simplify", "rule", rule, "rewrites", n)
		}
	}

	n = expandOrphanSmooth(p)
	report("expand-smooth")
	p, n = collapseCubics(p)
	report("collapse-cubics")
	n = contractSmooth(p)
	report("contract-smooth")
	n = straightenLines(p)
	report("straighten-lines")
	p, n = dropZeroAxis(p)
	report("drop-zero-axis")
	p, n = mergeAxisRuns(p)
	report("merge-axis")
	p, n = cleanMoves(p)
	report("clean-moves")
	return p
}
