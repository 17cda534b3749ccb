package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushWani11/CityZone-Optimizer/boundary"
	"github.com/AyushWani11/CityZone-Optimizer/ioformat"
	"github.com/AyushWani11/CityZone-Optimizer/solver"
)

func TestParse_ValidInput(t *testing.T) {
	in := "3 2\n1 1 5\n2 2 -3\n3 3 0\n"
	pts, k, err := ioformat.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	require.Len(t, pts, 3)
	assert.InDelta(t, 5.0, pts[0].Weight, 1e-9)
}

func TestParse_MalformedHeader(t *testing.T) {
	_, _, err := ioformat.Parse(strings.NewReader("not-a-number 2\n"))
	assert.ErrorIs(t, err, ioformat.ErrMalformedHeader)
}

func TestParse_MalformedPoint(t *testing.T) {
	_, _, err := ioformat.Parse(strings.NewReader("1 1\n1 1\n"))
	assert.ErrorIs(t, err, ioformat.ErrMalformedPoint)
}

func TestParse_PointCountMismatch(t *testing.T) {
	_, _, err := ioformat.Parse(strings.NewReader("2 1\n1 1 0\n"))
	assert.ErrorIs(t, err, ioformat.ErrPointCountMismatch)
}

func TestParse_InfeasibleK(t *testing.T) {
	_, _, err := ioformat.Parse(strings.NewReader("1 2\n1 1 0\n"))
	assert.ErrorIs(t, err, ioformat.ErrInfeasibleK)
}

func TestFormat_WritesFixedNotation(t *testing.T) {
	res := solver.Result{
		Cost:          -12.5,
		EnclosedCount: 2,
		Edges: []boundary.Edge{
			{X1: 0, Y1: 0, X2: 0, Y2: 1},
			{X1: 0, Y1: 1, X2: 1, Y2: 1},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, ioformat.Format(&buf, res))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "-12.500000", lines[0])
	assert.Equal(t, "2", lines[1])
	assert.Equal(t, "2", lines[2])
	assert.Equal(t, "0.000000 0.000000 0.000000 1.000000", lines[3])
}
