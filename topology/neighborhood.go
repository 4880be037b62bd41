package topology

import "iter"

// diagonalLegs lists the two-step chains forming the Diagonal neighborhood,
// in emission order: NE, SE, NW, SW.
var diagonalLegs = [4][2]Direction{
	{North, East},
	{South, East},
	{North, West},
	{South, West},
}

// Neighbors returns the points of neighborhood n around (x,y) as a lazy,
// restartable sequence. Points that AdjacentCell reports absent are skipped,
// never substituted.
//
// Emission order:
//   - Orthogonal: N, S, E, W.
//   - Diagonal:   NE, SE, NW, SW; each is the vertical leg followed by the
//     horizontal leg, and is dropped if either leg is absent.
//   - Square:     Orthogonal order, then Diagonal order.
//
// Unknown neighborhoods yield nothing.
// Complexity: O(1), at most 8 points.
func Neighbors(t Topology, width, height, x, y int, n Neighborhood) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		switch n {
		case Orthogonal:
			yieldOrthogonal(t, width, height, x, y, yield)
		case Diagonal:
			yieldDiagonal(t, width, height, x, y, yield)
		case Square:
			if !yieldOrthogonal(t, width, height, x, y, yield) {
				return
			}
			yieldDiagonal(t, width, height, x, y, yield)
		}
	}
}

// yieldOrthogonal emits the present cardinal neighbors. It returns false
// once the consumer stops the iteration.
func yieldOrthogonal(t Topology, width, height, x, y int, yield func(Point) bool) bool {
	for _, d := range Directions() {
		p, ok := AdjacentCell(t, width, height, x, y, d)
		if !ok {
			continue
		}
		if !yield(p) {
			return false
		}
	}
	return true
}

func yieldDiagonal(t Topology, width, height, x, y int, yield func(Point) bool) bool {
	for _, legs := range diagonalLegs {
		mid, ok := AdjacentCell(t, width, height, x, y, legs[0])
		if !ok {
			continue
		}
		p, ok := AdjacentCell(t, width, height, mid.X, mid.Y, legs[1])
		if !ok {
			continue
		}
		if !yield(p) {
			return false
		}
	}
	return true
}
