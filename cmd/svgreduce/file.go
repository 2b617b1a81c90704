package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"svgreduce/pkg/svgdoc"
	"svgreduce/pkg/verify"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var fileCmd = &cobra.Command{
	Use:   "file IN OUT",
	Short: "Optimize every path in an SVG file",
	Args:  cobra.ExactArgs(2),
	RunE:  runFile,
}

func runFile(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	in, out := args[0], args[1]

	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("file read error: %w", err)
	}
	root, err := svgdoc.Parse(data)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	stats, err := root.OptimizePaths(c)
	if err != nil {
		logger.Warn("some paths were left unchanged", "error", err)
	}
	if check {
		for _, p := range stats.Paths {
			if p.Err != nil {
				continue
			}
			if err := verify.Check(p.Original, p.Result, c); err != nil {
				return fmt.Errorf("path %s: %w", p.ID, err)
			}
		}
	}

	outData, err := root.Marshal()
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(out, outData, 0o644); err != nil {
		return fmt.Errorf("error writing the output file: %w", err)
	}

	report(cmd.OutOrStdout(), out, len(data), len(outData), stats)
	return nil
}

func report(w io.Writer, out string, before, after int, stats svgdoc.Stats) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Successfully optimized and saved to %s\n", out)
	p.Fprintf(w, "Original file size: %d bytes\n", before)
	p.Fprintf(w, "Optimized file size: %d bytes\n", after)
	reduction := 0.0
	if before > 0 {
		reduction = float64(before-after) / float64(before) * 100
	}
	p.Fprintf(w, "Reduction: %.2f%%\n", reduction)

	rescaled, failed := 0, 0
	for _, s := range stats.Paths {
		switch {
		case s.Err != nil:
			failed++
		case s.Result.Rescaled:
			rescaled++
		}
	}
	p.Fprintf(w, "Paths: %d (%d rescaled, %d failed), path data %d -> %d bytes\n",
		len(stats.Paths), rescaled, failed, stats.Before, stats.After)
}
