package topology_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/gridtopo/topology"
	"github.com/stretchr/testify/assert"
)

func pts(xy ...int) []topology.Point {
	out := make([]topology.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, topology.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

//----------------------------------------------------------------------------//
// Exact sequences
//----------------------------------------------------------------------------//

// TestNeighbors_SquareTorusCorner pins the Square order at the torus origin.
func TestNeighbors_SquareTorusCorner(t *testing.T) {
	got := slices.Collect(topology.Neighbors(topology.Torus, 5, 5, 0, 0, topology.Square))
	want := pts(0, 4, 0, 1, 1, 0, 4, 0, 1, 4, 1, 1, 4, 4, 4, 1)
	assert.Equal(t, want, got)
}

// TestNeighbors_SquareBoundedCorner pins the Square order at a bounded corner.
func TestNeighbors_SquareBoundedCorner(t *testing.T) {
	got := slices.Collect(topology.Neighbors(topology.Bounded, 5, 5, 0, 0, topology.Square))
	assert.Equal(t, pts(0, 1, 1, 0, 1, 1), got)
}

func TestNeighbors_Table(t *testing.T) {
	cases := []struct {
		name string
		top  topology.Topology
		w, h int
		x, y int
		n    topology.Neighborhood
		want []topology.Point
	}{
		{"OrthogonalCenter", topology.Bounded, 3, 3, 1, 1, topology.Orthogonal, pts(1, 0, 1, 2, 2, 1, 0, 1)},
		{"OrthogonalBottomRight", topology.Bounded, 3, 3, 2, 2, topology.Orthogonal, pts(2, 1, 1, 2)},
		{"DiagonalCenter", topology.Bounded, 3, 3, 1, 1, topology.Diagonal, pts(2, 0, 2, 2, 0, 0, 0, 2)},
		{"DiagonalTopEdge", topology.Bounded, 3, 3, 1, 0, topology.Diagonal, pts(2, 1, 0, 1)},
		{"DiagonalTorusCorner", topology.Torus, 3, 3, 2, 2, topology.Diagonal, pts(0, 1, 0, 0, 1, 1, 1, 0)},
		{"SquareCenter", topology.Bounded, 3, 3, 1, 1, topology.Square,
			pts(1, 0, 1, 2, 2, 1, 0, 1, 2, 0, 2, 2, 0, 0, 0, 2)},
		{"SingleCellBounded", topology.Bounded, 1, 1, 0, 0, topology.Square, nil},
		{"SingleCellTorus", topology.Torus, 1, 1, 0, 0, topology.Orthogonal, pts(0, 0, 0, 0, 0, 0, 0, 0)},
		{"UnknownShape", topology.Bounded, 3, 3, 1, 1, topology.Neighborhood(5), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(topology.Neighbors(tc.top, tc.w, tc.h, tc.x, tc.y, tc.n))
			assert.Equal(t, tc.want, got)
		})
	}
}

//----------------------------------------------------------------------------//
// Structural properties
//----------------------------------------------------------------------------//

// TestNeighbors_SquareIsOrthogonalThenDiagonal checks the concatenation rule
// on every cell of bounded and wrapping grids.
func TestNeighbors_SquareIsOrthogonalThenDiagonal(t *testing.T) {
	for _, top := range []topology.Topology{topology.Bounded, topology.Torus, topology.TorusAxial} {
		for p := range topology.Points(4, 4) {
			orth := slices.Collect(topology.Neighbors(top, 4, 4, p.X, p.Y, topology.Orthogonal))
			diag := slices.Collect(topology.Neighbors(top, 4, 4, p.X, p.Y, topology.Diagonal))
			square := slices.Collect(topology.Neighbors(top, 4, 4, p.X, p.Y, topology.Square))
			assert.Equal(t, append(orth, diag...), square, "%v %v", top, p)
			assert.LessOrEqual(t, len(square), 8)
		}
	}
}

// TestNeighbors_ExcludesSelfOnLargeGrids checks the point never neighbors
// itself once both axes are at least 3 wide.
func TestNeighbors_ExcludesSelfOnLargeGrids(t *testing.T) {
	for _, top := range []topology.Topology{topology.Bounded, topology.Torus} {
		for p := range topology.Points(3, 3) {
			for q := range topology.Neighbors(top, 3, 3, p.X, p.Y, topology.Square) {
				assert.NotEqual(t, p, q, "%v", top)
			}
		}
	}
}

// TestNeighbors_BoundedCounts checks neighborhood sizes at corner, edge and interior.
func TestNeighbors_BoundedCounts(t *testing.T) {
	count := func(x, y int, n topology.Neighborhood) int {
		return len(slices.Collect(topology.Neighbors(topology.Bounded, 5, 5, x, y, n)))
	}
	assert.Equal(t, 2, count(0, 0, topology.Orthogonal))
	assert.Equal(t, 3, count(2, 0, topology.Orthogonal))
	assert.Equal(t, 4, count(2, 2, topology.Orthogonal))
	assert.Equal(t, 1, count(4, 4, topology.Diagonal))
	assert.Equal(t, 5, count(0, 2, topology.Square))
	assert.Equal(t, 8, count(2, 2, topology.Square))
}

// TestNeighbors_EarlyBreak verifies that stopping the range loop stops emission
// and that the sequence can be consumed again afterwards.
func TestNeighbors_EarlyBreak(t *testing.T) {
	seq := topology.Neighbors(topology.Torus, 5, 5, 0, 0, topology.Square)
	var got []topology.Point
	for p := range seq {
		got = append(got, p)
		if len(got) == 5 {
			break
		}
	}
	assert.Equal(t, pts(0, 4, 0, 1, 1, 0, 4, 0, 1, 4), got)
	assert.Len(t, slices.Collect(seq), 8)
}
