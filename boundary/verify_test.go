package boundary

import "testing"

func square(ox, oy int) []exposedEdge {
	return []exposedEdge{
		{start: corner{ox, oy}, end: corner{ox + 1, oy}},
		{start: corner{ox + 1, oy}, end: corner{ox + 1, oy + 1}},
		{start: corner{ox + 1, oy + 1}, end: corner{ox, oy + 1}},
		{start: corner{ox, oy + 1}, end: corner{ox, oy}},
	}
}

func successorOf(edges []exposedEdge) map[corner]corner {
	m := make(map[corner]corner, len(edges))
	for _, e := range edges {
		m[e.start] = e.end
	}
	return m
}

func TestVerifyClosed_SingleSquareIsClosed(t *testing.T) {
	edges := square(0, 0)
	if err := verifyClosed(edges, successorOf(edges)); err != nil {
		t.Fatalf("expected a single square to verify as closed, got %v", err)
	}
}

func TestVerifyClosed_EmptyEdgesIsErrEmptyRegion(t *testing.T) {
	if err := verifyClosed(nil, nil); err != ErrEmptyRegion {
		t.Fatalf("expected ErrEmptyRegion, got %v", err)
	}
}

func TestVerifyClosed_TwoDisjointSquaresIsNotClosed(t *testing.T) {
	edges := append(square(0, 0), square(10, 10)...)
	if err := verifyClosed(edges, successorOf(edges)); err != ErrNotClosed {
		t.Fatalf("expected ErrNotClosed for two disjoint cycles, got %v", err)
	}
}

func TestVerifyClosed_BranchingCornerIsNotClosed(t *testing.T) {
	edges := square(0, 0)
	edges = append(edges, exposedEdge{start: corner{0, 0}, end: corner{5, 5}})
	if err := verifyClosed(edges, successorOf(edges)); err != ErrNotClosed {
		t.Fatalf("expected ErrNotClosed for a corner with out-degree 2, got %v", err)
	}
}
