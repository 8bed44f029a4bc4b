package types

import "time"

// Point is a position in logical units. Positions on the board are always
// multiples of the unit size.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the board dimensions in logical units
type Grid struct {
	Width    int
	Height   int
	UnitSize int
}

// Columns is the number of cells across the board.
func (g Grid) Columns() int {
	return g.Width / g.UnitSize
}

// Rows is the number of cells down the board.
func (g Grid) Rows() int {
	return g.Height / g.UnitSize
}

// Capacity is the total number of cells, the longest a snake can grow.
func (g Grid) Capacity() int {
	return (g.Width * g.Height) / (g.UnitSize * g.UnitSize)
}

// Settings is the immutable configuration handed to a panel at construction.
type Settings struct {
	Grid          Grid
	InitialLength int
	TickInterval  time.Duration
}

// Defaults for the classic 25x25 board.
const (
	DefaultWidth         = 500
	DefaultHeight        = 500
	DefaultUnitSize      = 20
	DefaultInitialLength = 5
	DefaultTickInterval  = 80 * time.Millisecond
)

// DefaultSettings returns the classic board: 500x500 units in 20 unit cells,
// a five cell snake and an 80ms tick.
func DefaultSettings() Settings {
	return Settings{
		Grid: Grid{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			UnitSize: DefaultUnitSize,
		},
		InitialLength: DefaultInitialLength,
		TickInterval:  DefaultTickInterval,
	}
}

// Color is an opaque RGB colour used by the renderers.
type Color struct {
	R, G, B uint8
}
