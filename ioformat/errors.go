package ioformat

import "errors"

// Sentinel errors for Parse. Callers should branch with errors.Is.
var (
	// ErrMalformedHeader indicates the first line was not two whitespace
	// separated integers "N K".
	ErrMalformedHeader = errors.New("ioformat: malformed header line")
	// ErrMalformedPoint indicates a point line did not contain exactly
	// three whitespace separated real numbers "x y w".
	ErrMalformedPoint = errors.New("ioformat: malformed point line")
	// ErrPointCountMismatch indicates fewer or more point lines were
	// present than the header's declared N.
	ErrPointCountMismatch = errors.New("ioformat: point count does not match header")
	// ErrInfeasibleK indicates K > N or K < 1.
	ErrInfeasibleK = errors.New("ioformat: K must satisfy 1 <= K <= N")
)
