package pathd_test

import (
	"testing"

	"svgreduce/pkg/pathd"

	"github.com/google/go-cmp/cmp"
)

func TestToRelative(t *testing.T) {
	p := pathd.Path{
		{Code: 'M', Args: []float64{10, 10}},
		{Code: 'L', Args: []float64{20, 20}},
		{Code: 'H', Args: []float64{5}},
		{Code: 'V', Args: []float64{15}},
		{Code: 'Z'},
		{Code: 'L', Args: []float64{0, 0}},
		{Code: 'l', Args: []float64{3, 4}},
		{Code: 'A', Args: []float64{5, 5, 30, 0, 1, 10, 10}},
	}
	expected := pathd.Path{
		{Code: 'M', Args: []float64{10, 10}},
		{Code: 'l', Args: []float64{10, 10}, Original: "L20 20"},
		{Code: 'h', Args: []float64{-15}, Original: "H5"},
		{Code: 'v', Args: []float64{-5}, Original: "V15"},
		{Code: 'Z'},
		{Code: 'l', Args: []float64{-10, -10}, Original: "L0 0"},
		{Code: 'l', Args: []float64{3, 4}},
		{Code: 'a', Args: []float64{5, 5, 30, 0, 1, 7, 6}, Original: "A5 5 30 0 1 10 10"},
	}

	got := pathd.ToRelative(p)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("incorrect output: %s", diff)
	}
	if diff := cmp.Diff(pathd.Vertices(p), pathd.Vertices(got)); diff != "" {
		t.Errorf("cursor trajectory changed: %s", diff)
	}
	if p[1].Code != 'L' || p[1].Args[0] != 20 {
		t.Errorf("input was modified: %+v", p[1])
	}
}

func TestFoldCloses(t *testing.T) {
	p := pathd.Path{
		{Code: 'M', Args: []float64{0, 0}},
		{Code: 'l', Args: []float64{5, 0}},
		{Code: 'l', Args: []float64{0, 5}},
		{Code: 'z'},
		{Code: 'Z'},
		{Code: 'm', Args: []float64{1, 1}},
	}
	expected := pathd.Path{
		{Code: 'M', Args: []float64{0, 0}},
		{Code: 'l', Args: []float64{5, 0}},
		{Code: 'l', Args: []float64{0, 5}, Closes: true},
		{Code: 'm', Args: []float64{1, 1}},
	}

	got := pathd.FoldCloses(p)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("incorrect output: %s", diff)
	}
	if diff := cmp.Diff(pathd.Vertices(p)[:3], pathd.Vertices(got)[:3]); diff != "" {
		t.Errorf("cursor trajectory changed: %s", diff)
	}
}
