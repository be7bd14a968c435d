package world

import "slices"

// Direction represents a cardinal direction.
// The constant order is the total order used when several directions tie.
type Direction int

// Direction constants
const (
	North Direction = iota
	South
	East
	West
)

// directionCount is the number of cardinal directions
const directionCount = 4

// AllDirections returns all valid directions in their fixed order
func AllDirections() []Direction {
	return []Direction{North, South, East, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
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

// Offset returns the unit grid offset for this direction.
// North is +Y and East is +X.
func (d Direction) Offset() Vector2 {
	switch d {
	case North:
		return Vector2{0, 1}
	case South:
		return Vector2{0, -1}
	case East:
		return Vector2{1, 0}
	case West:
		return Vector2{-1, 0}
	default:
		return Vector2{}
	}
}

// Less reports whether d sorts before other
func (d Direction) Less(other Direction) bool {
	return d < other
}

// SortDirections sorts dirs in place into North, South, East, West order
func SortDirections(dirs []Direction) {
	slices.SortFunc(dirs, func(a, b Direction) int {
		return int(a) - int(b)
	})
}
