package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AyushWani11/CityZone-Optimizer/point"
)

// Parse reads the solver's input format from r: a header line "N K"
// followed by exactly N lines "x y w". It returns the parsed points, K, and
// a sentinel error (ErrMalformedHeader, ErrMalformedPoint,
// ErrPointCountMismatch, ErrInfeasibleK) on any malformed or infeasible
// input. No partial result is returned alongside a non-nil error.
//
// Complexity: O(N) time, O(N) memory.
func Parse(r io.Reader) ([]point.Point, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, 0, fmt.Errorf("%w: missing header", ErrMalformedHeader)
	}
	n, k, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, 0, err
	}

	pts := make([]point.Point, 0, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, 0, fmt.Errorf("%w: expected %d points, got %d", ErrPointCountMismatch, n, i)
		}
		p, err := parsePoint(scanner.Text())
		if err != nil {
			return nil, 0, err
		}
		pts = append(pts, p)
	}

	// Any further non-blank line means more points than N declared.
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			return nil, 0, fmt.Errorf("%w: more than %d points present", ErrPointCountMismatch, n)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}

	if k < 1 || k > n {
		return nil, 0, ErrInfeasibleK
	}

	return pts, k, nil
}

func parseHeader(line string) (n, k int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	n, err1 := strconv.Atoi(fields[0])
	k, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || n < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	return n, k, nil
}

func parsePoint(line string) (point.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return point.Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, line)
	}
	x, err1 := strconv.ParseFloat(fields[0], 64)
	y, err2 := strconv.ParseFloat(fields[1], 64)
	w, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return point.Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, line)
	}
	return point.Point{X: x, Y: y, Weight: w}, nil
}
