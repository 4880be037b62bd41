package topology

import "iter"

// Points returns a lazy sequence of every coordinate of a width×height grid.
// Order is x-major: all y for x=0, then all y for x=1, and so on.
// The sequence is restartable; each range over it starts from (0,0).
// A zero (or negative) width or height yields nothing.
//
// Complexity: O(W×H) time over a full iteration, O(1) memory.
func Points(width, height int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
