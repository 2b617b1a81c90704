// Package transform evaluates SVG transform attributes.
package transform

import (
	"fmt"
	"math"

	"github.com/mindera-gaming/go-math/vector2"
)

// Matrix is the affine transform
//
//	⎡ A  C  E ⎤
//	⎢ B  D  F ⎥
//	⎣ 0  0  1 ⎦
type Matrix struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

// Identity leaves every point where it is.
var Identity = Matrix{A: 1, D: 1}

// Parse evaluates a transform list. An empty list is the identity.
func Parse(transform string) (Matrix, error) {
	m := Identity

	functions, err := ParseFunctions(transform)
	if err != nil {
		return Identity, fmt.Errorf("failed to parse transform: %w", err)
	}

	for _, function := range functions {
		f, err := function.Matrix()
		if err != nil {
			return Identity, err
		}
		m = m.Multiply(f)
	}
	return m, nil
}

func argCount(function Function, counts ...int) error {
	for _, n := range counts {
		if len(function.Args) == n {
			return nil
		}
	}
	return fmt.Errorf("%s: want %v args, got %v", function.Name, counts, function.Args)
}

// Matrix returns the transform a single function stands for.
func (function Function) Matrix() (Matrix, error) {
	args := function.Args
	switch function.Name {
	case "matrix":
		if err := argCount(function, 6); err != nil {
			return Identity, err
		}
		return Matrix{
			A: args[0], C: args[2], E: args[4],
			B: args[1], D: args[3], F: args[5],
		}, nil
	case "translate":
		if err := argCount(function, 1, 2); err != nil {
			return Identity, err
		}
		x, y := args[0], 0.0
		if len(args) == 2 {
			y = args[1]
		}
		return Matrix{
			A: 1, C: 0, E: x,
			B: 0, D: 1, F: y,
		}, nil
	case "scale":
		if err := argCount(function, 1, 2); err != nil {
			return Identity, err
		}
		x := args[0]
		y := x
		if len(args) == 2 {
			y = args[1]
		}
		return Matrix{
			A: x, C: 0, E: 0,
			B: 0, D: y, F: 0,
		}, nil
	case "rotate":
		//  ⎡ cos(θ)  −sin(θ)  −x⋅cos(θ)+y⋅sin(θ)+x ⎤
		//  ⎢ sin(θ)   cos(θ)  −x⋅sin(θ)−y⋅cos(θ)+y |
		//  ⎣   0        0               1          ⎦
		if err := argCount(function, 1, 3); err != nil {
			return Identity, err
		}
		cos := math.Cos(args[0] * math.Pi / 180)
		sin := math.Sin(args[0] * math.Pi / 180)
		x, y := 0.0, 0.0
		if len(args) == 3 {
			x, y = args[1], args[2]
		}
		return Matrix{
			A: cos, C: -sin, E: -x*cos + y*sin + x,
			B: sin, D: cos, F: -x*sin - y*cos + y,
		}, nil
	case "skewX":
		if err := argCount(function, 1); err != nil {
			return Identity, err
		}
		return Matrix{A: 1, C: math.Tan(args[0] * math.Pi / 180), D: 1}, nil
	case "skewY":
		if err := argCount(function, 1); err != nil {
			return Identity, err
		}
		return Matrix{A: 1, B: math.Tan(args[0] * math.Pi / 180), D: 1}, nil
	}
	return Identity, fmt.Errorf("unknown transform function %q %v", function.Name, args)
}

func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Apply transforms every point in place.
func (m Matrix) Apply(points []vector2.Point) {
	for i, p := range points {
		points[i].X, points[i].Y = m.TransformPoint(p.X, p.Y)
	}
}
