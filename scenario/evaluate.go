package scenario

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/gridgraph"
	"github.com/katalvlaran/gridtopo/topology"
)

// Coord is a point encoded as a two-element [x, y] YAML sequence.
type Coord [2]int

func coordOf(p topology.Point) Coord { return Coord{p.X, p.Y} }

// Result is the answer to one Query.
//
//   - adjacent:            Present, Cell (when present)
//   - edge, corner:        Present holds the predicate value
//   - neighborhood/points: Points
//   - components:          Components
//   - bridge:              Points (path), Cost
type Result struct {
	Op         string    `yaml:"op"`
	At         *Coord    `yaml:"at,omitempty,flow"`
	Present    bool      `yaml:"present"`
	Cell       *Coord    `yaml:"cell,omitempty,flow"`
	Points     []Coord   `yaml:"points,omitempty,flow"`
	Components [][]Coord `yaml:"components,omitempty,flow"`
	Cost       *int      `yaml:"cost,omitempty"`
}

// Report collects the results of evaluating a Scenario, in query order.
type Report struct {
	Topology string   `yaml:"topology"`
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	Results  []Result `yaml:"results"`
}

// Evaluate runs every query of s in order. s must have passed Validate
// (Load and Decode guarantee this).
func Evaluate(s *Scenario) (*Report, error) {
	top, err := topology.ParseTopology(s.Topology)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	rep := &Report{
		Topology: top.String(),
		Width:    s.Width,
		Height:   s.Height,
		Results:  make([]Result, 0, len(s.Queries)),
	}
	for i, q := range s.Queries {
		res, err := evaluateQuery(s, top, q)
		if err != nil {
			return nil, fmt.Errorf("query %d (%s): %w", i, q.Op, err)
		}
		rep.Results = append(rep.Results, res)
	}
	return rep, nil
}

func evaluateQuery(s *Scenario, top topology.Topology, q Query) (Result, error) {
	res := Result{Op: q.Op}
	at := Coord{q.X, q.Y}

	switch q.Op {
	case OpAdjacent:
		d, err := topology.ParseDirection(q.Direction)
		if err != nil {
			return res, err
		}
		res.At = &at
		if p, ok := topology.AdjacentCell(top, s.Width, s.Height, q.X, q.Y, d); ok {
			c := coordOf(p)
			res.Present, res.Cell = true, &c
		}
	case OpEdge:
		res.At = &at
		res.Present = topology.IsEdge(top, s.Width, s.Height, q.X, q.Y)
	case OpCorner:
		res.At = &at
		res.Present = topology.IsCorner(top, s.Width, s.Height, q.X, q.Y)
	case OpNeighborhood:
		n, err := topology.ParseNeighborhood(q.Neighborhood)
		if err != nil {
			return res, err
		}
		res.At = &at
		for p := range topology.Neighbors(top, s.Width, s.Height, q.X, q.Y, n) {
			res.Points = append(res.Points, coordOf(p))
		}
		res.Present = len(res.Points) > 0
	case OpPoints:
		for p := range topology.Points(s.Width, s.Height) {
			res.Points = append(res.Points, coordOf(p))
		}
		res.Present = len(res.Points) > 0
	case OpComponents:
		gg, err := s.gridGraph(top, q)
		if err != nil {
			return res, err
		}
		for _, comp := range gg.ConnectedComponents() {
			cells := make([]Coord, 0, len(comp))
			for _, idx := range comp {
				x, y := gg.Coordinate(idx)
				cells = append(cells, Coord{x, y})
			}
			res.Components = append(res.Components, cells)
		}
		res.Present = len(res.Components) > 0
	case OpBridge:
		gg, err := s.gridGraph(top, q)
		if err != nil {
			return res, err
		}
		path, cost, err := gg.ExpandIsland(q.From, q.To)
		if err != nil {
			return res, err
		}
		for _, idx := range path {
			x, y := gg.Coordinate(idx)
			res.Points = append(res.Points, Coord{x, y})
		}
		res.Present, res.Cost = true, &cost
	default:
		return res, fmt.Errorf("%q: %w", q.Op, ErrUnknownOp)
	}
	return res, nil
}

// gridGraph builds the gridgraph view of s.Cells for a components or bridge query.
func (s *Scenario) gridGraph(top topology.Topology, q Query) (*gridgraph.GridGraph, error) {
	if s.Cells == nil {
		return nil, ErrMissingCells
	}
	opts := gridgraph.GridOptions{
		LandThreshold: s.Threshold(),
		Topology:      top,
		Neighborhood:  neighborhoodOr(q.Neighborhood, topology.Orthogonal),
	}
	return gridgraph.NewGridGraph(s.Cells, opts)
}
