// Package ioformat parses the solver's text input format and formats its
// text output format. It is an external collaborator to the solver: its
// only contract is delivering (points, K) in and (cost, enclosed count,
// edges) out.
package ioformat
