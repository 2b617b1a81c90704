// Package verify checks that optimized path data still traces the vertices
// of its input.
package verify

import (
	"errors"
	"fmt"
	"math"

	"svgreduce/pkg/cfg"
	"svgreduce/pkg/pathd"
	"svgreduce/pkg/transform"

	"github.com/asim/quadtree"
	"github.com/mindera-gaming/go-math/vector2"
)

// ErrDrift is reported when an output vertex has no input vertex nearby.
var ErrDrift = errors.New("vertex drifted from the input path")

// DriftError describes the first output vertex that drifted.
type DriftError struct {
	Index     int
	Vertex    vector2.Point
	Tolerance float64
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("vertex %d at (%g, %g): %s by more than %g", e.Index, e.Vertex.X, e.Vertex.Y, ErrDrift, e.Tolerance)
}

func (e *DriftError) Unwrap() error {
	return ErrDrift
}

const epsilon = 1e-6

var zeroPoint = quadtree.NewPoint(0, 0, nil)

type vertexTree struct {
	quadTree *quadtree.QuadTree
}

func newVertexTree(points []vector2.Point, margin float64) *vertexTree {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	midX := (maxX + minX) / 2
	midY := (maxY + minY) / 2

	// Add a margin to avoid dropping points at the edges
	halfWidth := maxX - midX + margin + 1
	halfHeight := maxY - midY + margin + 1

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	t := &vertexTree{quadTree: quadtree.New(aabb, 0, nil)}
	for _, p := range points {
		t.add(p)
	}
	return t
}

func (t *vertexTree) add(p vector2.Point) {
	point := quadtree.NewPoint(p.X, p.Y, nil)
	nearest := t.quadTree.KNearest(quadtree.NewAABB(point, zeroPoint), 1, nil)
	if len(nearest) > 0 {
		x, y := nearest[0].Coordinates()
		if x == p.X && y == p.Y {
			return
		}
	}
	t.quadTree.Insert(point)
}

// near reports whether some vertex lies within tol of p on both axes.
func (t *vertexTree) near(p vector2.Point, tol float64) bool {
	box := quadtree.NewAABB(
		quadtree.NewPoint(p.X, p.Y, nil),
		quadtree.NewPoint(tol, tol, nil))
	return len(t.quadTree.Search(box)) > 0
}

func finite(points []vector2.Point) []vector2.Point {
	out := points[:0]
	for _, p := range points {
		if !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) {
			out = append(out, p)
		}
	}
	return out
}

// Check traces the segment end points of the original path data and of an
// optimization result. Every vertex of the result, mapped back through the
// inverse of its scale, must lie within half a scaled unit of an input vertex.
func Check(original string, r pathd.Result, c cfg.Config) error {
	in, err := pathd.Parse(original, c.Lenient)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	out, err := pathd.Parse(r.Data, c.Lenient)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}

	scale := max(r.Scale, 1)
	m, err := transform.Parse(pathd.ScaleTransform(scale))
	if err != nil {
		return err
	}

	want := finite(pathd.Vertices(in))
	got := finite(pathd.Vertices(out))
	m.Apply(got)

	tol := 0.5/float64(scale) + epsilon
	tree := newVertexTree(want, tol)
	for i, v := range got {
		if !tree.near(v, tol) {
			return &DriftError{Index: i, Vertex: v, Tolerance: tol}
		}
	}
	pathd.Logger().Debug("verified path", "vertices", len(got), "tolerance", tol)
	return nil
}
