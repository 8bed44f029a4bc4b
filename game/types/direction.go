package types

// Direction is a cardinal heading
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

var directionNames = [...]string{
	NONE:  "none",
	UP:    "up",
	RIGHT: "right",
	DOWN:  "down",
	LEFT:  "left",
}

func (d Direction) String() string {
	if d < NONE || d > LEFT {
		return "unknown"
	}
	return directionNames[d]
}

// ToPoint converts a Direction into a one-cell displacement scaled by unit.
func (d Direction) ToPoint(unit int) Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -unit}
	case RIGHT:
		return Point{X: unit, Y: 0}
	case DOWN:
		return Point{X: 0, Y: unit}
	case LEFT:
		return Point{X: -unit, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}
