// Package topology answers positional questions about cells of a 2D grid
// under different boundary rules.
//
// What:
//
//   - AdjacentCell: the cell one step North, South, East or West of (x,y),
//     or "absent" when the move leaves a Bounded grid.
//   - IsEdge / IsCorner: boundary classification (never true on a torus).
//   - Points: every coordinate of a width×height grid, x-major.
//   - Neighbors: the Orthogonal, Diagonal or Square neighborhood of a point.
//
// Nothing here stores cell values. Every function is a pure function of its
// arguments, so all of them are safe for concurrent use without locking.
//
// Topologies:
//
//   - Bounded:    finite grid, no wrap. Moves off the grid are absent.
//   - Torus:      wraps both axes. South and East wrap modulo width, North
//     wraps to height-1 and West to width-1. On non-square grids the South
//     move therefore differs from an axis-correct torus; this mapping is
//     kept as-is for compatibility.
//   - TorusAxial: wraps y-moves modulo height and x-moves modulo width.
//
// Diagonal neighbors are two sequential orthogonal moves (North/South first,
// then East/West). If either leg is absent the diagonal is absent too.
//
// Preconditions:
//
//   - width, height ≥ 1 for AdjacentCell and Neighbors.
//   - 0 ≤ x < width and 0 ≤ y < height. Not checked; out-of-range input
//     produces unspecified results.
//
// Complexity:
//
//   - AdjacentCell, IsEdge, IsCorner: O(1).
//   - Points: O(W×H) over the full iteration, O(1) memory.
//   - Neighbors: O(1), at most 8 points.
package topology
