package types

import "time"

// Grid represents the game grid dimensions
type Grid struct {
	Columns int16
	Rows    int16
}

// Contains reports whether p lies inside [0, Columns) x [0, Rows)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Columns && p.Y >= 0 && p.Y < g.Rows
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	if g.Columns <= 0 || g.Rows <= 0 {
		return 0
	}
	return int(g.Columns) * int(g.Rows)
}

// Center returns the middle cell, rounded down
func (g Grid) Center() Point {
	return Point{X: g.Columns / 2, Y: g.Rows / 2}
}

// GridForViewport derives the grid from a viewport measured in pixels,
// leaving one cell of margin on the right and bottom.
func GridForViewport(width, height, cellSize int) Grid {
	if cellSize <= 0 {
		return Grid{}
	}
	return Grid{
		Columns: int16(width/cellSize) - 1,
		Rows:    int16(height/cellSize) - 1,
	}
}

type Point struct {
	X, Y int16
}

// Add translates p by the unit vector of d
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Direction is a cardinal heading. None means no directional input.
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the offset of one step. Up decreases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int16) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Game constants
const (
	BaseUpdateInterval = 500 * time.Millisecond // Timer-driven move cadence
	MinMoveInterval    = 100 * time.Millisecond // Fastest input-driven cadence
	CellSize           = 20                     // Pixels per cell, renderer only
)
