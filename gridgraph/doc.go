// Package gridgraph treats a 2D grid of integer cells as a graph whose edges
// come from package topology, enabling component analysis and minimal-cost
// "island" expansions on bounded or wrapping grids.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid (indexed [y][x]) with a
//     LandThreshold, a topology.Topology and a topology.Neighborhood.
//   - Neighbors is always symmetric. Under Torus on a non-square grid the
//     raw topology moves are one-way, so the graph adds the reverse links.
//   - ConnectedComponents finds "islands" of cells with value ≥ LandThreshold.
//   - ExpandIsland computes the fewest water conversions (0-1 BFS) that join
//     two islands.
//
// Why:
//
//   - Game maps: contiguous land detection and bridging, including maps
//     that wrap around (Torus) where islands may touch across the seam.
//   - Cellular automata: region counting under the same neighborhood rules
//     used for cell updates.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Topology:      topology.Bounded, topology.Torus or topology.TorusAxial.
//   - GridOptions.Neighborhood:  topology.Orthogonal, topology.Diagonal or topology.Square.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadOptions: unknown topology or neighborhood.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
