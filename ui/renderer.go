package ui

import (
	"fmt"

	"snake-rules/game"
	"snake-rules/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize = 30
	textX    = 20
	textY    = 20
)

// Renderer draws frames into the raylib window: the body as filled
// squares, the apple as a filled circle and the score as text.
type Renderer struct {
	cellSize  int32
	highScore func() int
}

// NewRenderer takes the high score source so the overlay can show it
// without reaching into the session.
func NewRenderer(highScore func() int) *Renderer {
	return &Renderer{
		cellSize:  types.CellSize,
		highScore: highScore,
	}
}

func (r *Renderer) Draw(f game.Frame) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	for _, p := range f.Body {
		rl.DrawRectangle(
			int32(p.X)*r.cellSize,
			int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize, rl.Red)
	}

	if f.Apple != nil {
		half := float32(r.cellSize) / 2
		rl.DrawCircle(
			int32(f.Apple.X)*r.cellSize+int32(half),
			int32(f.Apple.Y)*r.cellSize+int32(half),
			half, rl.Yellow)
	}

	rl.DrawText(fmt.Sprintf("Score: %d", f.Score), textX, textY, fontSize, rl.White)
	if r.highScore != nil {
		rl.DrawText(fmt.Sprintf("High: %d", r.highScore()), textX, textY+fontSize+4, fontSize/2, rl.Gray)
	}
}
