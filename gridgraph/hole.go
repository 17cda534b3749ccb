package gridgraph

// HasHole reports whether region contains an enclosed hole relative to a
// grid of the given split. It pads the split x split board by one empty
// cell on every side to form a (split+2) x (split+2) frame, flood-fills
// from the outer frame through every cell not in region (4-connectivity),
// and reports a hole iff some non-region inner cell is never reached.
//
// Complexity: O(split^2) time and memory per call.
func HasHole(region map[CellCoord]struct{}, split int) bool {
	n := split + 2
	visited := make([][]bool, n)
	for i := range visited {
		visited[i] = make([]bool, n)
	}
	// The padded frame is one connected ring of non-region cells, so a flood
	// started from its corner reaches the whole frame and everything the
	// frame can reach.
	queue := make([]CellCoord, 0, n*4)
	queue = append(queue, CellCoord{0, 0})
	visited[0][0] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dir4 {
			nx, ny := cur.I+d.DI, cur.J+d.DJ
			if nx < 0 || nx >= n || ny < 0 || ny >= n {
				continue
			}
			if visited[nx][ny] {
				continue
			}
			if _, in := region[CellCoord{nx - 1, ny - 1}]; in {
				continue
			}
			visited[nx][ny] = true
			queue = append(queue, CellCoord{nx, ny})
		}
	}

	for i := 1; i <= split; i++ {
		for j := 1; j <= split; j++ {
			if _, in := region[CellCoord{i - 1, j - 1}]; !in && !visited[i][j] {
				return true
			}
		}
	}
	return false
}

// connected reports whether cells forms a single 4-connected component. An
// empty set is trivially connected.
//
// Complexity: O(|cells|) time and memory.
func connected(cells map[CellCoord]struct{}) bool {
	if len(cells) == 0 {
		return true
	}
	var start CellCoord
	for c := range cells {
		start = c
		break
	}
	seen := map[CellCoord]struct{}{start: {}}
	queue := []CellCoord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range Neighbors4(cur) {
			if _, in := cells[n]; !in {
				continue
			}
			if _, done := seen[n]; done {
				continue
			}
			seen[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return len(seen) == len(cells)
}
