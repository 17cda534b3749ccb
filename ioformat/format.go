package ioformat

import (
	"fmt"
	"io"

	"github.com/AyushWani11/CityZone-Optimizer/solver"
)

// Format writes res to w in the solver's output format: cost,
// enclosed_point_count, edge_count, then one "x1 y1 x2 y2" line per edge.
// Floating point fields use fixed notation with 6 fractional digits.
//
// Complexity: O(len(res.Edges)).
func Format(w io.Writer, res solver.Result) error {
	if _, err := fmt.Fprintf(w, "%.6f\n", res.Cost); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d\n", res.EnclosedCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d\n", len(res.Edges)); err != nil {
		return err
	}
	for _, e := range res.Edges {
		if _, err := fmt.Fprintf(w, "%.6f %.6f %.6f %.6f\n", e.X1, e.Y1, e.X2, e.Y2); err != nil {
			return err
		}
	}
	return nil
}
