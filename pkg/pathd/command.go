package pathd

import (
	"math"

	"github.com/mindera-gaming/go-math/vector2"
)

// Command is a single drawing directive with exactly one segment worth of
// operands.
type Command struct {
	// Code is the command letter. Upper case is absolute.
	Code byte
	Args []float64

	// Closes is set when a close-path directly followed this command.
	Closes bool

	// Original is the absolute rendering of a command that was converted to
	// relative form. The serializer keeps it when it is shorter.
	Original string
}

// Path is an ordered list of commands. The first command, if any, is a move.
type Path []Command

// Clone returns a deep copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	for i, c := range p {
		c.Args = append([]float64(nil), c.Args...)
		out[i] = c
	}
	return out
}

type kind uint8

const (
	kindX kind = iota
	kindY
	kindLength
	kindAngle
	kindFlag
)

var layouts = map[byte][]kind{
	'm': {kindX, kindY},
	'l': {kindX, kindY},
	't': {kindX, kindY},
	'h': {kindX},
	'v': {kindY},
	's': {kindX, kindY, kindX, kindY},
	'q': {kindX, kindY, kindX, kindY},
	'c': {kindX, kindY, kindX, kindY, kindX, kindY},
	'a': {kindLength, kindLength, kindAngle, kindFlag, kindFlag, kindX, kindY},
	'z': {},
}

func lower(code byte) byte {
	return code | 0x20
}

func isAbsolute(code byte) bool {
	return 'A' <= code && code <= 'Z'
}

// IsCommand reports whether b is a path command letter.
func IsCommand(b byte) bool {
	_, ok := layouts[lower(b)]
	return ok
}

// Arity returns the number of operands in one segment of the given command,
// or -1 for letters that are not commands.
func Arity(code byte) int {
	l, ok := layouts[lower(code)]
	if !ok {
		return -1
	}
	return len(l)
}

func isMove(c Command) bool {
	return lower(c.Code) == 'm'
}

// isOpenCurve reports whether c leaves a cubic control point for a following
// smooth cubic to reflect.
func isOpenCurve(c Command) bool {
	code := lower(c.Code)
	return (code == 'c' || code == 's') && !c.Closes
}

func isOpenQuad(c Command) bool {
	code := lower(c.Code)
	return (code == 'q' || code == 't') && !c.Closes
}

// reflectsFrom reports whether the shape of next depends on prev being a
// curve of its own family.
func reflectsFrom(prev, next Command) bool {
	switch next.Code {
	case 's', 'S':
		return isOpenCurve(prev)
	case 't', 'T':
		return isOpenQuad(prev)
	}
	return false
}

// cursor tracks the pen while walking a path.
type cursor struct {
	pos, start vector2.Point
}

// step moves the cursor past c.
func (cur *cursor) step(c Command) {
	code := lower(c.Code)
	if code == 'z' {
		cur.pos = cur.start
		return
	}
	end, hasX, hasY := endPoint(c)
	if isAbsolute(c.Code) {
		if hasX {
			cur.pos.X = end.X
		}
		if hasY {
			cur.pos.Y = end.Y
		}
	} else {
		cur.pos.X += end.X
		cur.pos.Y += end.Y
	}
	if code == 'm' {
		cur.start = cur.pos
	}
	if c.Closes {
		cur.pos = cur.start
	}
}

// endPoint returns the last x and y operands of c.
func endPoint(c Command) (end vector2.Point, hasX, hasY bool) {
	layout := layouts[lower(c.Code)]
	for i := len(layout) - 1; i >= 0 && i < len(c.Args); i-- {
		switch layout[i] {
		case kindX:
			if !hasX {
				end.X, hasX = c.Args[i], true
			}
		case kindY:
			if !hasY {
				end.Y, hasY = c.Args[i], true
			}
		}
	}
	return end, hasX, hasY
}

// Vertices returns the absolute end point of every segment of p, including
// the points that close-path returns to. Relative and absolute commands may
// be mixed.
func Vertices(p Path) []vector2.Point {
	var cur cursor
	var out []vector2.Point
	for _, c := range p {
		if lower(c.Code) == 'z' {
			cur.step(c)
			out = append(out, cur.pos)
			continue
		}
		closes := c.Closes
		c.Closes = false
		cur.step(c)
		out = append(out, cur.pos)
		if closes {
			cur.pos = cur.start
			out = append(out, cur.pos)
		}
	}
	return out
}

func isNaN(v float64) bool {
	return math.IsNaN(v)
}
