package topology

import "errors"

var (
	// ErrUnknownTopology indicates a name that does not match any Topology.
	ErrUnknownTopology = errors.New("topology: unknown topology")
	// ErrUnknownDirection indicates a name that does not match any Direction.
	ErrUnknownDirection = errors.New("topology: unknown direction")
	// ErrUnknownNeighborhood indicates a name that does not match any Neighborhood.
	ErrUnknownNeighborhood = errors.New("topology: unknown neighborhood")
)
