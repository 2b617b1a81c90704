package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"svgreduce/pkg/cfg"
	"svgreduce/pkg/pathd"
	"svgreduce/pkg/verify"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

var workers int

var pathCmd = &cobra.Command{
	Use:   "path [d...]",
	Short: "Optimize path data given as arguments, or one path per line on stdin",
	RunE:  runPath,
}

func init() {
	pathCmd.Flags().IntVar(&workers, "conc", runtime.NumCPU(), "number of paths to optimize concurrently")
}

type job struct {
	index int
	d     string
}

type result struct {
	index int
	r     pathd.Result
	err   error
}

func runPath(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("no path data given")
		}
		if inputs, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	failed := 0
	w := cmd.OutOrStdout()
	for i, res := range optimizeAll(inputs, c, workers) {
		if res.err != nil {
			logger.Error("path left unchanged", "line", i+1, "error", res.err)
			failed++
			fmt.Fprintln(w, inputs[i])
			continue
		}
		if res.r.Rescaled {
			logger.Info("path rescaled", "line", i+1, "transform", pathd.ScaleTransform(res.r.Scale))
		}
		fmt.Fprintln(w, res.r.Data)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d paths failed", failed, len(inputs))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// optimizeAll runs the inputs through a bounded pool of workers. Results come
// back in input order.
func optimizeAll(inputs []string, c cfg.Config, n int) []result {
	n = workerCount(n)

	jobs := make(chan job)
	ch := make(chan result)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			consumer(jobs, c, check, ch)
		}()
	}

	go func() {
		defer close(jobs)
		for i, d := range inputs {
			jobs <- job{index: i, d: d}
		}
	}()

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	results := make([]result, len(inputs))
	for res := range ch {
		results[res.index] = res
	}
	return results
}

// workerCount limits the concurrently running workers to maxWorkers. Zero or
// less means one worker per CPU.
func workerCount(n int) int {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return min(n, maxWorkers)
}

// consumer optimizes the path data read from the jobs channel and sends the
// results on the result channel.
func consumer(jobs <-chan job, c cfg.Config, check bool, res chan<- result) {
	for j := range jobs {
		r, err := pathd.Optimize(j.d, c, nil)
		if err == nil && check {
			err = verify.Check(j.d, r, c)
		}
		res <- result{index: j.index, r: r, err: err}
	}
}
