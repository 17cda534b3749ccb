// Command cityzone reads a weighted-point instance from stdin or a named
// file, solves the minimum-cost rectilinear enclosure, and writes the
// result to stdout in the format documented by ioformat.
package main

import (
	"log"
	"os"

	"github.com/AyushWani11/CityZone-Optimizer/ioformat"
	"github.com/AyushWani11/CityZone-Optimizer/solver"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run is the testable core of main: it never calls os.Exit itself.
func run(args []string, stdin *os.File, stdout *os.File) int {
	in := stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Printf("cityzone: %v", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	pts, k, err := ioformat.Parse(in)
	if err != nil {
		log.Printf("cityzone: %v", err)
		return 1
	}

	res, err := solver.Solve(pts, k, solver.WithParallel(0))
	if err != nil {
		log.Printf("cityzone: %v", err)
		return 1
	}

	if err := ioformat.Format(stdout, res); err != nil {
		log.Printf("cityzone: %v", err)
		return 1
	}

	return 0
}
