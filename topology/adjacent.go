package topology

// AdjacentCell returns the cell one step from (x,y) in direction d, and
// whether such a cell exists.
//
// Bounded:
//   - North/West decrement y/x and report absent when the axis is already 0
//     (no unsigned-style underflow, no wrap).
//   - South/East increment y/x and report absent when the result reaches
//     height/width.
//
// Torus (always present):
//   - North: y-1, or height-1 when y == 0.
//   - South: (y+1) % width.
//   - East:  (x+1) % width.
//   - West:  x-1, or width-1 when x == 0.
//
// TorusAxial (always present): North/South wrap within [0,height),
// East/West within [0,width).
//
// Unknown topologies or directions report absent.
// Complexity: O(1).
func AdjacentCell(t Topology, width, height, x, y int, d Direction) (Point, bool) {
	switch t {
	case Bounded:
		return adjacentBounded(width, height, x, y, d)
	case Torus:
		return adjacentTorus(width, height, x, y, d)
	case TorusAxial:
		return adjacentTorusAxial(width, height, x, y, d)
	default:
		return Point{}, false
	}
}

func adjacentBounded(width, height, x, y int, d Direction) (Point, bool) {
	switch d {
	case North:
		if y == 0 {
			return Point{}, false
		}
		return Point{X: x, Y: y - 1}, true
	case South:
		if y+1 >= height {
			return Point{}, false
		}
		return Point{X: x, Y: y + 1}, true
	case East:
		if x+1 >= width {
			return Point{}, false
		}
		return Point{X: x + 1, Y: y}, true
	case West:
		if x == 0 {
			return Point{}, false
		}
		return Point{X: x - 1, Y: y}, true
	default:
		return Point{}, false
	}
}

// adjacentTorus keeps the historical wrap mapping: the South move wraps by
// width, not height. TorusAxial is the axis-correct alternative.
func adjacentTorus(width, height, x, y int, d Direction) (Point, bool) {
	switch d {
	case North:
		if y == 0 {
			return Point{X: x, Y: height - 1}, true
		}
		return Point{X: x, Y: y - 1}, true
	case South:
		return Point{X: x, Y: (y + 1) % width}, true
	case East:
		return Point{X: (x + 1) % width, Y: y}, true
	case West:
		if x == 0 {
			return Point{X: width - 1, Y: y}, true
		}
		return Point{X: x - 1, Y: y}, true
	default:
		return Point{}, false
	}
}

func adjacentTorusAxial(width, height, x, y int, d Direction) (Point, bool) {
	switch d {
	case North:
		if y == 0 {
			return Point{X: x, Y: height - 1}, true
		}
		return Point{X: x, Y: y - 1}, true
	case South:
		return Point{X: x, Y: (y + 1) % height}, true
	case East:
		return Point{X: (x + 1) % width, Y: y}, true
	case West:
		if x == 0 {
			return Point{X: width - 1, Y: y}, true
		}
		return Point{X: x - 1, Y: y}, true
	default:
		return Point{}, false
	}
}
