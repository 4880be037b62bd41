package gridgraph

import "github.com/katalvlaran/gridtopo/topology"

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Topology chooses how moves behave at the grid border.
	Topology topology.Topology
	// Neighborhood chooses which cells around a cell are adjacent to it.
	Neighborhood topology.Neighborhood
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Topology=Bounded, Neighborhood=Orthogonal.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Topology:      topology.Bounded,
		Neighborhood:  topology.Orthogonal,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Topology, Neighborhood and LandThreshold are set from GridOptions during construction.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	LandThreshold int
	Topology      topology.Topology
	Neighborhood  topology.Neighborhood

	// links holds symmetric adjacency for topologies whose raw neighbor
	// relation is one-way (Torus on a non-square grid). nil otherwise.
	links [][]int
}
