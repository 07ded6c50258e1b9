package ui

import (
	"time"

	"snake-rules/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Keyboard reports arrow key presses from the raylib window
type Keyboard struct{}

// Poll returns the first arrow key newly pressed this frame. Right wins
// over Left, Down and Up when several land on the same frame.
func (Keyboard) Poll() types.Direction {
	switch {
	case rl.IsKeyPressed(rl.KeyRight):
		return types.Right
	case rl.IsKeyPressed(rl.KeyLeft):
		return types.Left
	case rl.IsKeyPressed(rl.KeyDown):
		return types.Down
	case rl.IsKeyPressed(rl.KeyUp):
		return types.Up
	default:
		return types.None
	}
}

// Clock reads raylib's window timer and frame time
type Clock struct{}

func (Clock) Now() time.Duration {
	return seconds(rl.GetTime())
}

func (Clock) Delta() time.Duration {
	return seconds(float64(rl.GetFrameTime()))
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// ViewportGrid derives the grid from the current window size
func ViewportGrid() types.Grid {
	return types.GridForViewport(rl.GetScreenWidth(), rl.GetScreenHeight(), types.CellSize)
}
