package gridgraph

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/gridtopo/topology"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed [y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadOptions if opts names an unknown topology or neighborhood.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if !opts.Topology.Valid() {
		return nil, fmt.Errorf("topology %v: %w", opts.Topology, ErrBadOptions)
	}
	if !opts.Neighborhood.Valid() {
		return nil, fmt.Errorf("neighborhood %v: %w", opts.Neighborhood, ErrBadOptions)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	gg := &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		LandThreshold: opts.LandThreshold,
		Topology:      opts.Topology,
		Neighborhood:  opts.Neighborhood,
	}
	if gg.Topology == topology.Torus && w != h {
		gg.links = gg.symmetricLinks()
	}
	return gg, nil
}

// From2D is shorthand for NewGridGraph with LandThreshold=1.
func From2D(values [][]int, t topology.Topology, n topology.Neighborhood) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Topology = t
	opts.Neighborhood = n
	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether the cell at (x,y) holds a value ≥ LandThreshold.
// Out-of-bounds cells are never land.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// Neighbors yields the neighbors of (x,y) under the graph's topology and
// neighborhood. The relation is symmetric: q is yielded for p exactly when
// p is yielded for q.
//
// The Torus South move wraps by width, so on non-square grids it can land
// outside [0,Height) or on a cell whose North move does not come back.
// For such grids Neighbors yields the in-bounds topology.Neighbors points
// first, then every cell that lists (x,y) but is not yet listed, in
// row-major order.
// Complexity: O(1) amortized; O(W×H×d) once at construction for non-square Torus.
func (gg *GridGraph) Neighbors(x, y int) iter.Seq[topology.Point] {
	if gg.links != nil {
		return func(yield func(topology.Point) bool) {
			if !gg.InBounds(x, y) {
				return
			}
			for _, idx := range gg.links[gg.index(x, y)] {
				nx, ny := gg.Coordinate(idx)
				if !yield(topology.Point{X: nx, Y: ny}) {
					return
				}
			}
		}
	}
	return gg.forwardNeighbors(x, y)
}

// forwardNeighbors yields topology.Neighbors of (x,y) that fall inside the grid.
func (gg *GridGraph) forwardNeighbors(x, y int) iter.Seq[topology.Point] {
	return func(yield func(topology.Point) bool) {
		for p := range topology.Neighbors(gg.Topology, gg.Width, gg.Height, x, y, gg.Neighborhood) {
			if !gg.InBounds(p.X, p.Y) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// symmetricLinks closes the forward neighbor relation under reversal.
// Each list keeps forward neighbors in topology order, followed by reverse-only
// cells in row-major order of the cell that listed them. Duplicates are dropped.
func (gg *GridGraph) symmetricLinks() [][]int {
	n := gg.Width * gg.Height
	links := make([][]int, n)
	for idx := 0; idx < n; idx++ {
		x, y := gg.Coordinate(idx)
		for p := range gg.forwardNeighbors(x, y) {
			links[idx] = appendUnique(links[idx], gg.index(p.X, p.Y))
		}
	}
	forward := make([]int, n)
	for idx := range links {
		forward[idx] = len(links[idx])
	}
	for idx := 0; idx < n; idx++ {
		for _, nb := range links[idx][:forward[idx]] {
			links[nb] = appendUnique(links[nb], idx)
		}
	}
	return links
}

func appendUnique(list []int, v int) []int {
	for _, have := range list {
		if have == v {
			return list
		}
	}
	return append(list, v)
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
