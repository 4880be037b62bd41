package gridgraph

import "github.com/katalvlaran/gridtopo/topology"

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// (CellValues[y][x] ≥ LandThreshold), where two cells touch if one is in the
// other's Neighbors set. The result does not depend on scan order.
// Seeds are visited in topology.Points order (x-major), so components are
// listed by the column-then-row position of their first cell. Each component
// is a slice of row-major cell indices in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for seed := range topology.Points(gg.Width, gg.Height) {
		if !gg.IsLand(seed.X, seed.Y) {
			continue // water
		}
		i0 := gg.index(seed.X, seed.Y)
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			ux, uy := gg.Coordinate(u)
			for v := range gg.Neighbors(ux, uy) {
				if !gg.IsLand(v.X, v.Y) {
					continue
				}
				vi := gg.index(v.X, v.Y)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
