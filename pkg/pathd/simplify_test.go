package pathd_test

import (
	"math"
	"testing"

	"svgreduce/pkg/pathd"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func cmd(code byte, args ...float64) pathd.Command {
	return pathd.Command{Code: code, Args: args}
}

func closed(c pathd.Command) pathd.Command {
	c.Closes = true
	return c
}

func TestSimplify(t *testing.T) {
	origin := cmd('M', 0, 0)
	tests := []struct {
		name string
		p    pathd.Path
		want pathd.Path
	}{
		{
			name: "cubic on a line",
			p:    pathd.Path{cmd('M', 10, 10), cmd('c', 0, 0, 10, 10, 20, 20)},
			want: pathd.Path{cmd('M', 10, 10), cmd('l', 20, 20)},
		},
		{
			name: "cubic on a horizontal line",
			p:    pathd.Path{origin, cmd('c', 0, 0, 5, 0, 10, 0)},
			want: pathd.Path{origin, cmd('h', 10)},
		},
		{
			name: "control point past the end",
			p:    pathd.Path{origin, cmd('c', 0, 0, 40, 40, 30, 30)},
			want: pathd.Path{origin, cmd('s', 40, 40, 30, 30)},
		},
		{
			name: "empty cubic",
			p:    pathd.Path{origin, cmd('l', 5, 5), closed(cmd('c', 0, 0, 3, 3, 0, 0))},
			want: pathd.Path{origin, closed(cmd('l', 5, 5))},
		},
		{
			name: "axis aligned cubic",
			p:    pathd.Path{origin, cmd('c', 2, 0, 8, 0, 10, 0), cmd('c', 0, 3, 0, 6, 0, 9)},
			want: pathd.Path{origin, cmd('h', 10), cmd('v', 9)},
		},
		{
			name: "overshooting axis cubic",
			p:    pathd.Path{origin, cmd('c', 12, 0, -2, 0, 10, 0)},
			want: pathd.Path{origin, cmd('c', 12, 0, -2, 0, 10, 0)},
		},
		{
			name: "reflected control point blocks collapse",
			p:    pathd.Path{origin, cmd('c', 0, 0, 5, 5, 10, 10), cmd('s', 15, 15, 20, 20)},
			want: pathd.Path{origin, cmd('s', 5, 5, 10, 10), cmd('s', 15, 15, 20, 20)},
		},
		{
			name: "reflected control point at the end",
			p:    pathd.Path{origin, cmd('c', 0, 0, 10, 10, 10, 10), cmd('s', 5, 5, 20, 20)},
			want: pathd.Path{origin, cmd('l', 10, 10), cmd('l', 20, 20)},
		},
		{
			name: "orphan smooth cubic",
			p:    pathd.Path{origin, cmd('l', 5, 5), cmd('s', 5, 0, 10, 0)},
			want: pathd.Path{origin, cmd('l', 5, 5), cmd('h', 10)},
		},
		{
			name: "smooth cubic after a line",
			p:    pathd.Path{origin, cmd('h', 5), cmd('c', 0, 0, 3, 7, 10, 10)},
			want: pathd.Path{origin, cmd('h', 5), cmd('s', 3, 7, 10, 10)},
		},
		{
			name: "lines on an axis",
			p:    pathd.Path{origin, cmd('l', 0, 5), cmd('l', 5, 0), cmd('l', 2, 3)},
			want: pathd.Path{origin, cmd('v', 5), cmd('h', 5), cmd('l', 2, 3)},
		},
		{
			name: "axis runs",
			p:    pathd.Path{origin, cmd('h', 5), cmd('h', 5), cmd('h', -3), cmd('h', -2), cmd('v', 1), closed(cmd('v', 2))},
			want: pathd.Path{origin, cmd('h', 10), cmd('h', -5), closed(cmd('v', 3))},
		},
		{
			name: "close ends an axis run",
			p:    pathd.Path{origin, closed(cmd('h', 5)), cmd('h', 5)},
			want: pathd.Path{origin, closed(cmd('h', 5)), cmd('h', 5)},
		},
		{
			name: "zero axis steps",
			p:    pathd.Path{origin, cmd('l', 5, 5), closed(cmd('v', 0)), cmd('l', 0, 0), cmd('l', 1, 1)},
			want: pathd.Path{origin, closed(cmd('l', 5, 5)), cmd('l', 1, 1)},
		},
		{
			name: "zero step inside an axis run",
			p:    pathd.Path{origin, cmd('h', 5), cmd('v', 0), cmd('h', 5), cmd('l', 0, 0), closed(cmd('h', 2))},
			want: pathd.Path{origin, closed(cmd('h', 12))},
		},
		{
			name: "zero step before a reflected quadratic",
			p:    pathd.Path{origin, cmd('q', 1, 1, 2, 2), cmd('h', 0), cmd('t', 3, 3)},
			want: pathd.Path{origin, cmd('q', 1, 1, 2, 2), cmd('h', 0), cmd('t', 3, 3)},
		},
		{
			name: "moves",
			p:    pathd.Path{origin, cmd('m', 5, 5), cmd('m', 1, 1), cmd('l', 1, 1), closed(cmd('m', 3, 3))},
			want: pathd.Path{cmd('M', 6, 6), cmd('l', 1, 1)},
		},
		{
			name: "absolute move replaces",
			p:    pathd.Path{origin, cmd('l', 1, 1), cmd('M', 10, 10), cmd('m', 2, 2), cmd('l', 1, 1)},
			want: pathd.Path{origin, cmd('l', 1, 1), cmd('M', 12, 12), cmd('l', 1, 1)},
		},
		{
			name: "only moves",
			p:    pathd.Path{closed(origin), cmd('m', 1, 1)},
			want: pathd.Path{},
		},
		{
			name: "malformed operands are kept",
			p:    pathd.Path{origin, cmd('h', math.NaN()), cmd('h', 1)},
			want: pathd.Path{origin, cmd('h', math.NaN()), cmd('h', 1)},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := pathd.Simplify(test.p)
			if diff := cmp.Diff(test.want, got, cmpopts.EquateNaNs(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("incorrect output: %s", diff)
			}
		})
	}
}

func TestSimplifyKeepsVertices(t *testing.T) {
	p := pathd.Path{
		cmd('M', 3, 4),
		cmd('c', 0, 0, 5, 5, 10, 10),
		cmd('l', 0, 7),
		cmd('v', 3),
		closed(cmd('h', 0)),
		cmd('m', 2, 2),
		cmd('c', 1, 0, 4, 0, 6, 0),
	}
	got := pathd.Vertices(pathd.Simplify(p))
	want := pathd.Vertices(p)
	last := want[len(want)-1]
	if diff := cmp.Diff(last, got[len(got)-1]); diff != "" {
		t.Errorf("end point moved: %s", diff)
	}
	for _, v := range got {
		found := false
		for _, w := range want {
			if v == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("vertex %+v is not on the original path", v)
		}
	}
}
