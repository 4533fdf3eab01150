package grid

import "fmt"

// Direction is one of the four board-relative shift directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{North, South, East, West}

// String returns a human-readable name for the direction.
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

// Horizontal reports whether the direction moves tiles along rows.
func (d Direction) Horizontal() bool {
	switch d {
	case East, West:
		return true
	case North, South:
		return false
	default:
		panic(fmt.Sprintf("grid: invalid direction %d", int(d)))
	}
}

// ParseDirection maps a WASD letter (either case) to a direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'w', 'W':
		return North, true
	case 'a', 'A':
		return West, true
	case 's', 'S':
		return South, true
	case 'd', 'D':
		return East, true
	}
	return 0, false
}
