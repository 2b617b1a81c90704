package svgdoc

import (
	"errors"
	"fmt"

	"svgreduce/pkg/cfg"
	"svgreduce/pkg/pathd"
	"svgreduce/pkg/transform"
)

// PathStat describes the optimization of one path element.
type PathStat struct {
	ID     string
	Before int
	After  int
	Scale  int

	// Original is the path data before optimization.
	Original string
	Result   pathd.Result
	Err      error
}

// Stats sums up an OptimizePaths run.
type Stats struct {
	Paths  []PathStat
	Before int
	After  int
}

// OptimizePaths rewrites the d attribute of every path element under n.
// Paths that fail to optimize are left unchanged and reported in the joined
// error.
func (n *Node) OptimizePaths(c cfg.Config) (Stats, error) {
	var stats Stats
	var errs []error
	n.Walk(func(node *Node) {
		if node.Name() != "path" {
			return
		}
		d, ok := node.Attr("d")
		if !ok {
			return
		}
		stat := PathStat{ID: node.id(len(stats.Paths)), Before: len(d), After: len(d), Scale: 1, Original: d}
		stat.Err = node.optimizePath(d, c, &stat)
		if stat.Err != nil {
			errs = append(errs, fmt.Errorf("path %s: %w", stat.ID, stat.Err))
		}
		stats.Before += stat.Before
		stats.After += stat.After
		stats.Paths = append(stats.Paths, stat)
	})
	return stats, errors.Join(errs...)
}

func (n *Node) optimizePath(d string, c cfg.Config, stat *PathStat) error {
	// A rescale appends to the existing transform, which has to make sense.
	if t, ok := n.Attr("transform"); ok {
		if _, err := transform.Parse(t); err != nil {
			return err
		}
	}

	r, err := pathd.Optimize(d, c, n)
	if err != nil {
		return err
	}
	n.SetAttr("d", r.Data)
	stat.After = len(r.Data)
	stat.Scale = r.Scale
	stat.Result = r
	return nil
}

// id names a path for error messages: its id attribute, or its position
// among the paths of the document.
func (n *Node) id(index int) string {
	if id, ok := n.Attr("id"); ok {
		return fmt.Sprintf("%q", id)
	}
	return fmt.Sprintf("#%d", index)
}
