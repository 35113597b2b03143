// Command cutstock reads a job description as JSON from stdin (or a
// file given with -in) and writes the optimization result as JSON to
// stdout (or a file given with -out).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/piwi3910/cutstock"
)

// job is the on-disk/stdin shape for one optimize call: exactly one of
// Pieces1D or Pieces2D should be set, selecting 1D or 2D mode.
type job struct {
	Pieces1D []cutstock.Piece1D `json:"pieces1d,omitempty"`
	Stocks1D []cutstock.Stock1D `json:"stocks1d,omitempty"`
	Options1D *cutstock.Options1D `json:"options1d,omitempty"`

	Pieces2D []cutstock.Piece2D `json:"pieces2d,omitempty"`
	Stocks2D []cutstock.Stock2D `json:"stocks2d,omitempty"`
	Options2D *cutstock.Options2D `json:"options2d,omitempty"`
}

func main() {
	inPath := flag.String("in", "", "input JSON job file (default stdin)")
	outPath := flag.String("out", "", "output JSON result file (default stdout)")
	flag.Parse()

	if err := run(*inPath, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, "cutstock:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string) error {
	in := os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var j job
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("parse job: %w", err)
	}

	result, err := solve(j)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func solve(j job) (any, error) {
	switch {
	case len(j.Pieces2D) > 0:
		opts := cutstock.DefaultOptions2D()
		if j.Options2D != nil {
			opts = *j.Options2D
		}
		return cutstock.Optimize2D(j.Pieces2D, j.Stocks2D, opts)
	case len(j.Pieces1D) > 0:
		opts := cutstock.DefaultOptions1D()
		if j.Options1D != nil {
			opts = *j.Options1D
		}
		return cutstock.Optimize1D(j.Pieces1D, j.Stocks1D, opts)
	default:
		return nil, fmt.Errorf("job has neither pieces1d nor pieces2d")
	}
}
