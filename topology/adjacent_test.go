package topology_test

import (
	"testing"

	"github.com/katalvlaran/gridtopo/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adjCase struct {
	name   string
	x, y   int
	d      topology.Direction
	want   topology.Point
	wantOK bool
}

// TestAdjacentCell_Bounded checks each direction on a 3×3 bounded grid,
// both at the border and from the middle.
func TestAdjacentCell_Bounded(t *testing.T) {
	cases := []adjCase{
		{"NorthBlocked", 1, 0, topology.North, topology.Point{}, false},
		{"North", 1, 1, topology.North, topology.Point{X: 1, Y: 0}, true},
		{"SouthBlocked", 2, 2, topology.South, topology.Point{}, false},
		{"South", 0, 0, topology.South, topology.Point{X: 0, Y: 1}, true},
		{"EastBlocked", 2, 2, topology.East, topology.Point{}, false},
		{"East", 1, 1, topology.East, topology.Point{X: 2, Y: 1}, true},
		{"WestBlocked", 0, 0, topology.West, topology.Point{}, false},
		{"West", 1, 1, topology.West, topology.Point{X: 0, Y: 1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := topology.AdjacentCell(topology.Bounded, 3, 3, tc.x, tc.y, tc.d)
			require.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestAdjacentCell_Torus checks each direction on a 3×3 torus, including wraps.
func TestAdjacentCell_Torus(t *testing.T) {
	cases := []adjCase{
		{"NorthWrap", 1, 0, topology.North, topology.Point{X: 1, Y: 2}, true},
		{"North", 1, 1, topology.North, topology.Point{X: 1, Y: 0}, true},
		{"SouthWrap", 2, 2, topology.South, topology.Point{X: 2, Y: 0}, true},
		{"South", 0, 0, topology.South, topology.Point{X: 0, Y: 1}, true},
		{"EastWrap", 2, 2, topology.East, topology.Point{X: 0, Y: 2}, true},
		{"East", 1, 1, topology.East, topology.Point{X: 2, Y: 1}, true},
		{"WestWrap", 0, 0, topology.West, topology.Point{X: 2, Y: 0}, true},
		{"West", 1, 1, topology.West, topology.Point{X: 0, Y: 1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := topology.AdjacentCell(topology.Torus, 3, 3, tc.x, tc.y, tc.d)
			require.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestAdjacentCell_TorusSouthWrapsByWidth pins the Torus South move to
// modulo width on non-square grids, against TorusAxial which wraps by height.
func TestAdjacentCell_TorusSouthWrapsByWidth(t *testing.T) {
	// width 3, height 5: y=2 South → (2+1)%3 = 0 on Torus.
	got, ok := topology.AdjacentCell(topology.Torus, 3, 5, 0, 2, topology.South)
	require.True(t, ok)
	assert.Equal(t, topology.Point{X: 0, Y: 0}, got)

	got, ok = topology.AdjacentCell(topology.TorusAxial, 3, 5, 0, 2, topology.South)
	require.True(t, ok)
	assert.Equal(t, topology.Point{X: 0, Y: 3}, got)

	// width 4, height 3: the last row moves South to y=3, outside the grid.
	got, ok = topology.AdjacentCell(topology.Torus, 4, 3, 1, 2, topology.South)
	require.True(t, ok)
	assert.Equal(t, topology.Point{X: 1, Y: 3}, got)

	got, ok = topology.AdjacentCell(topology.TorusAxial, 4, 3, 1, 2, topology.South)
	require.True(t, ok)
	assert.Equal(t, topology.Point{X: 1, Y: 0}, got)

	// North still wraps to height-1 on both.
	got, _ = topology.AdjacentCell(topology.Torus, 4, 3, 1, 0, topology.North)
	assert.Equal(t, topology.Point{X: 1, Y: 2}, got)
}

// TestAdjacentCell_BoundedProperty walks every cell of several grids and
// checks absence at borders and ±1 offsets elsewhere.
func TestAdjacentCell_BoundedProperty(t *testing.T) {
	for _, dim := range [][2]int{{1, 1}, {1, 4}, {4, 1}, {3, 5}, {6, 2}} {
		w, h := dim[0], dim[1]
		for p := range topology.Points(w, h) {
			for _, d := range topology.Directions() {
				got, ok := topology.AdjacentCell(topology.Bounded, w, h, p.X, p.Y, d)
				var blocked bool
				want := p
				switch d {
				case topology.North:
					blocked, want.Y = p.Y == 0, p.Y-1
				case topology.South:
					blocked, want.Y = p.Y == h-1, p.Y+1
				case topology.East:
					blocked, want.X = p.X == w-1, p.X+1
				case topology.West:
					blocked, want.X = p.X == 0, p.X-1
				}
				if blocked {
					assert.False(t, ok, "%dx%d %v %v should be absent", w, h, p, d)
					continue
				}
				if assert.True(t, ok, "%dx%d %v %v should be present", w, h, p, d) {
					assert.Equal(t, want, got, "%dx%d %v %v", w, h, p, d)
				}
			}
		}
	}
}

// TestAdjacentCell_TorusRoundTrip checks that every move is present, stays
// inside the grid, and is undone by the opposite move on square grids.
func TestAdjacentCell_TorusRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7} {
		for p := range topology.Points(n, n) {
			for _, d := range topology.Directions() {
				q, ok := topology.AdjacentCell(topology.Torus, n, n, p.X, p.Y, d)
				require.True(t, ok)
				assert.True(t, q.X >= 0 && q.X < n && q.Y >= 0 && q.Y < n, "%v %v → %v out of grid", p, d, q)

				back, ok := topology.AdjacentCell(topology.Torus, n, n, q.X, q.Y, d.Opposite())
				require.True(t, ok)
				assert.Equal(t, p, back, "%dx%d %v %v/%v", n, n, p, d, d.Opposite())
			}
		}
	}
}

// TestAdjacentCell_TorusAxialRoundTrip checks round trips on non-square grids.
func TestAdjacentCell_TorusAxialRoundTrip(t *testing.T) {
	for _, dim := range [][2]int{{3, 5}, {5, 3}, {1, 4}, {6, 2}} {
		w, h := dim[0], dim[1]
		for p := range topology.Points(w, h) {
			for _, d := range topology.Directions() {
				q, ok := topology.AdjacentCell(topology.TorusAxial, w, h, p.X, p.Y, d)
				require.True(t, ok)
				assert.True(t, q.X >= 0 && q.X < w && q.Y >= 0 && q.Y < h, "%v %v → %v out of grid", p, d, q)

				back, _ := topology.AdjacentCell(topology.TorusAxial, w, h, q.X, q.Y, d.Opposite())
				assert.Equal(t, p, back, "%dx%d %v %v/%v", w, h, p, d, d.Opposite())
			}
		}
	}
}

// TestAdjacentCell_Unknown verifies that undeclared enum values report absent.
func TestAdjacentCell_Unknown(t *testing.T) {
	_, ok := topology.AdjacentCell(topology.Topology(42), 3, 3, 1, 1, topology.North)
	assert.False(t, ok)
	_, ok = topology.AdjacentCell(topology.Bounded, 3, 3, 1, 1, topology.Direction(9))
	assert.False(t, ok)
	_, ok = topology.AdjacentCell(topology.Torus, 3, 3, 1, 1, topology.Direction(-1))
	assert.False(t, ok)
}
