package topology

import (
	"fmt"
	"strings"
)

// normalizeName lower-cases s and folds '_' and ' ' into '-'.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "-", " ", "-").Replace(s)
}

// ParseTopology maps "bounded", "torus" or "torus-axial" (case-insensitive,
// '_' accepted for '-') to a Topology.
// Returns ErrUnknownTopology for anything else.
func ParseTopology(s string) (Topology, error) {
	switch normalizeName(s) {
	case "bounded":
		return Bounded, nil
	case "torus":
		return Torus, nil
	case "torus-axial":
		return TorusAxial, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownTopology)
}

// ParseDirection maps a direction name (case-insensitive) to a Direction.
// Single-letter forms "n", "s", "e", "w" are accepted.
func ParseDirection(s string) (Direction, error) {
	switch normalizeName(s) {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	case "west", "w":
		return West, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownDirection)
}

// ParseNeighborhood maps "orthogonal", "diagonal" or "square" (case-insensitive)
// to a Neighborhood.
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch normalizeName(s) {
	case "orthogonal":
		return Orthogonal, nil
	case "diagonal":
		return Diagonal, nil
	case "square":
		return Square, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownNeighborhood)
}
