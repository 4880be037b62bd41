package topology

import "fmt"

// Topology selects how a grid treats moves across its border.
type Topology int

const (
	// Bounded is a finite grid with no wrap-around.
	Bounded Topology = iota
	// Torus wraps both axes, preserving the axis not moved in (Pacman style).
	Torus
	// TorusAxial wraps y-moves modulo height and x-moves modulo width.
	TorusAxial
)

// String returns the canonical lower-case name used by ParseTopology.
func (t Topology) String() string {
	switch t {
	case Bounded:
		return "bounded"
	case Torus:
		return "torus"
	case TorusAxial:
		return "torus-axial"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Valid reports whether t is one of the declared topologies.
func (t Topology) Valid() bool {
	return t >= Bounded && t <= TorusAxial
}

// Direction is one of the four cardinal moves.
type Direction int

const (
	// North decrements y.
	North Direction = iota
	// South increments y.
	South
	// East increments x.
	East
	// West decrements x.
	West
)

// Directions returns the cardinal directions in North, South, East, West order.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// String returns the canonical lower-case name used by ParseDirection.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is a cardinal direction.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction that undoes d. Unknown values are returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Neighborhood is the shape of cells considered adjacent to a point.
// A neighborhood never contains the point itself.
type Neighborhood int

const (
	// Orthogonal is the points directly North, South, East and West.
	Orthogonal Neighborhood = iota
	// Diagonal is the four points reached by one vertical plus one horizontal move.
	Diagonal
	// Square is Orthogonal followed by Diagonal (up to 8 points).
	Square
)

// String returns the canonical lower-case name used by ParseNeighborhood.
func (n Neighborhood) String() string {
	switch n {
	case Orthogonal:
		return "orthogonal"
	case Diagonal:
		return "diagonal"
	case Square:
		return "square"
	default:
		return fmt.Sprintf("Neighborhood(%d)", int(n))
	}
}

// Valid reports whether n is one of the declared neighborhoods.
func (n Neighborhood) Valid() bool {
	return n >= Orthogonal && n <= Square
}

// Point is a grid coordinate. X indexes columns, Y indexes rows.
type Point struct {
	X, Y int
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
