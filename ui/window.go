package ui

import (
	"snake-rules/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const targetFPS = 60

// Window is the raylib host. It owns the window for the duration of Run.
type Window struct {
	Width, Height int32
	Title         string
}

// Open creates the window; the grid can be read with ViewportGrid after.
func (w Window) Open() {
	rl.InitWindow(w.Width, w.Height, w.Title)
	rl.SetTargetFPS(targetFPS)
}

func (w Window) Close() {
	rl.CloseWindow()
}

// Run drives one update and one draw per rendered frame until the window
// is closed. input may replace the keyboard, e.g. with the autopilot.
func (w Window) Run(g *game.Game, input game.InputSource) {
	defer w.Close()

	if input == nil {
		input = Keyboard{}
	}
	renderer := NewRenderer(g.HighScore)
	clock := Clock{}
	for !rl.WindowShouldClose() {
		g.Step(clock, input)
		g.Draw(renderer)
	}
}
