// Package pathd shortens SVG path data while keeping the shape it draws.
//
// The pipeline parses the d attribute into one command per segment, moves
// fractional coordinates into integer space under a power-of-ten scale,
// converts absolute commands to relative form, rewrites degenerate segments
// and renders the shortest text it can find for every command.
package pathd

import (
	"svgreduce/pkg/cfg"
)

// Result is the outcome of optimizing one path.
type Result struct {
	Data string
	// Scale is the factor the coordinates in Data were multiplied by.
	Scale int
	// Rescaled is set when Scale > 1 and the owner, if any, was given the
	// inverse transform.
	Rescaled bool
}

// Optimize rewrites path data d. When owner is not nil and the path is
// rescaled, owner receives the compensating transform and stroke width.
func Optimize(d string, c cfg.Config, owner Element) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	log := Logger()

	p, err := Parse(d, c.Lenient)
	if err != nil {
		return Result{}, err
	}
	if len(p) == 0 {
		return Result{Scale: 1}, nil
	}
	log.Debug("parsed path", "commands", len(p))

	scale := ResolveScale(p, c.MaxDecimalPlaces)
	p = Rescale(p, scale)
	log.Debug("resolved scale", "scale", scale)
	if scale > 1 && owner != nil {
		applyScale(owner, scale)
	}

	if c.ConvertToRelative {
		p = ToRelative(p)
	}
	p = FoldCloses(p)
	p = Simplify(p)

	return Result{
		Data:     Serialize(p, c),
		Scale:    scale,
		Rescaled: scale > 1,
	}, nil
}
