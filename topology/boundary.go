package topology

// IsEdge reports whether (x,y) lies on the first or last row or column of a
// Bounded grid. Wrapping topologies have no edge, so the result is false.
// Complexity: O(1).
func IsEdge(t Topology, width, height, x, y int) bool {
	switch t {
	case Bounded:
		return onXBorder(width, x) || onYBorder(height, y)
	default:
		// Torus and TorusAxial wrap, so no cell sits on a border.
		return false
	}
}

// IsCorner reports whether (x,y) lies on both an x border and a y border of
// a Bounded grid. On a 1×1 grid the only cell is a corner; on 1×N only the two
// end cells are.
// Complexity: O(1).
func IsCorner(t Topology, width, height, x, y int) bool {
	switch t {
	case Bounded:
		return onXBorder(width, x) && onYBorder(height, y)
	default:
		// Torus and TorusAxial wrap, so no cell sits on a border.
		return false
	}
}

func onXBorder(width, x int) bool { return x == 0 || x+1 == width }

func onYBorder(height, y int) bool { return y == 0 || y+1 == height }
