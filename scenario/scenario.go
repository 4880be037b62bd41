package scenario

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/topology"
)

// Query ops.
const (
	OpAdjacent     = "adjacent"
	OpEdge         = "edge"
	OpCorner       = "corner"
	OpNeighborhood = "neighborhood"
	OpPoints       = "points"
	OpComponents   = "components"
	OpBridge       = "bridge"
)

// defaultLandThreshold matches gridgraph.DefaultGridOptions.
const defaultLandThreshold = 1

// Scenario is a decoded scenario document.
type Scenario struct {
	Topology      string  `yaml:"topology"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	LandThreshold *int    `yaml:"land_threshold,omitempty"`
	Cells         [][]int `yaml:"cells,omitempty"`
	Queries       []Query `yaml:"queries"`
}

// Query is one question asked about the scenario grid.
type Query struct {
	Op           string `yaml:"op"`
	X            int    `yaml:"x,omitempty"`
	Y            int    `yaml:"y,omitempty"`
	Direction    string `yaml:"direction,omitempty"`
	Neighborhood string `yaml:"neighborhood,omitempty"`
	From         int    `yaml:"from,omitempty"`
	To           int    `yaml:"to,omitempty"`
}

// Threshold returns the configured land threshold or the default of 1.
func (s *Scenario) Threshold() int {
	if s.LandThreshold == nil {
		return defaultLandThreshold
	}
	return *s.LandThreshold
}

// Validate performs the checks the schema cannot express: enum names parse,
// query coordinates lie inside the grid, and cells (when present) form a
// Height×Width rectangle. Every error wraps ErrInvalidScenario.
func (s *Scenario) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("%w: extent %dx%d must be at least 1x1", ErrInvalidScenario, s.Width, s.Height)
	}
	if _, err := topology.ParseTopology(s.Topology); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if s.Cells != nil {
		if len(s.Cells) != s.Height {
			return fmt.Errorf("%w: cells has %d rows, height is %d", ErrInvalidScenario, len(s.Cells), s.Height)
		}
		for y, row := range s.Cells {
			if len(row) != s.Width {
				return fmt.Errorf("%w: cells row %d has %d columns, width is %d", ErrInvalidScenario, y, len(row), s.Width)
			}
		}
	}
	for i, q := range s.Queries {
		if err := s.validateQuery(q); err != nil {
			return fmt.Errorf("%w: query %d (%s): %w", ErrInvalidScenario, i, q.Op, err)
		}
	}
	return nil
}

func (s *Scenario) validateQuery(q Query) error {
	switch q.Op {
	case OpAdjacent:
		if _, err := topology.ParseDirection(q.Direction); err != nil {
			return err
		}
		return s.checkPoint(q)
	case OpEdge, OpCorner:
		return s.checkPoint(q)
	case OpNeighborhood:
		if _, err := topology.ParseNeighborhood(q.Neighborhood); err != nil {
			return err
		}
		return s.checkPoint(q)
	case OpPoints:
		return nil
	case OpComponents, OpBridge:
		if s.Cells == nil {
			return ErrMissingCells
		}
		if q.Neighborhood != "" {
			if _, err := topology.ParseNeighborhood(q.Neighborhood); err != nil {
				return err
			}
		}
		if q.From < 0 || q.To < 0 {
			return fmt.Errorf("component indices must be non-negative, got %d and %d", q.From, q.To)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", q.Op, ErrUnknownOp)
	}
}

func (s *Scenario) checkPoint(q Query) error {
	if q.X < 0 || q.X >= s.Width || q.Y < 0 || q.Y >= s.Height {
		return fmt.Errorf("point (%d,%d) outside %dx%d grid", q.X, q.Y, s.Width, s.Height)
	}
	return nil
}

// neighborhoodOr parses name, falling back to def when it is empty.
// Names are assumed to be validated already.
func neighborhoodOr(name string, def topology.Neighborhood) topology.Neighborhood {
	if name == "" {
		return def
	}
	n, err := topology.ParseNeighborhood(name)
	if err != nil {
		return def
	}
	return n
}
