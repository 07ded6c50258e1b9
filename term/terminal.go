package term

import (
	"fmt"
	"time"

	"snake-rules/game"
	"snake-rules/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	frameInterval = time.Second / 60
	cellWidth     = 2 // terminal columns per grid cell
)

var (
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	appleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Terminal hosts the game in a tcell screen. Input is drained from the
// screen's event queue on the loop goroutine, so the core stays
// single-threaded.
type Terminal struct {
	screen    tcell.Screen
	clock     *Clock
	pending   types.Direction
	quit      bool
	highScore func() int
}

// New opens the controlling terminal
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	return NewWithScreen(screen)
}

// NewWithScreen initialises the given screen, e.g. a simulation screen
func NewWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	screen.HideCursor()
	screen.Clear()
	return &Terminal{
		screen: screen,
		clock:  NewClock(time.Now),
	}, nil
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

// Grid is the playfield that fits the screen, two columns per cell and one
// row kept for the status line.
func (t *Terminal) Grid() types.Grid {
	w, h := t.screen.Size()
	return types.Grid{
		Columns: int16(w / cellWidth),
		Rows:    int16(h - 1),
	}
}

func (t *Terminal) Clock() *Clock {
	return t.clock
}

func (t *Terminal) Quit() bool {
	return t.quit
}

// Poll drains pending screen events and returns the first direction key
// pressed since the previous poll.
func (t *Terminal) Poll() types.Direction {
	for t.screen.HasPendingEvent() {
		t.handleEvent(t.screen.PollEvent())
	}
	dir := t.pending
	t.pending = types.None
	return dir
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			t.quit = true
			return
		}
		if dir := directionFor(ev); dir != types.None && t.pending == types.None {
			t.pending = dir
		}
	case *tcell.EventResize:
		t.screen.Sync()
	case nil:
		t.quit = true
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func directionFor(ev *tcell.EventKey) types.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up
	case tcell.KeyDown:
		return types.Down
	case tcell.KeyLeft:
		return types.Left
	case tcell.KeyRight:
		return types.Right
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'w':
			return types.Up
		case 'j', 's':
			return types.Down
		case 'h', 'a':
			return types.Left
		case 'l', 'd':
			return types.Right
		}
	}
	return types.None
}

// Draw renders the frame: body as blocks, the apple as a bullet and the
// score on the bottom row.
func (t *Terminal) Draw(f game.Frame) {
	t.screen.Clear()
	w, h := t.screen.Size()

	for _, p := range f.Body {
		t.putCell(p, '█', bodyStyle)
	}
	if f.Apple != nil {
		t.putCell(*f.Apple, '●', appleStyle)
	}

	status := fmt.Sprintf("Score: %d", f.Score)
	if t.highScore != nil {
		status += fmt.Sprintf("  High: %d", t.highScore())
	}
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, h-1, '─', nil, borderStyle)
	}
	t.putString(1, h-1, status, statusStyle)
	t.screen.Show()
}

func (t *Terminal) putCell(p types.Point, r rune, style tcell.Style) {
	x := int(p.X) * cellWidth
	y := int(p.Y)
	t.screen.SetContent(x, y, r, nil, style)
	t.screen.SetContent(x+1, y, r, nil, style)
}

func (t *Terminal) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run drives the game at a fixed frame rate until a quit key is pressed.
// input may replace the keyboard, e.g. with the autopilot; quit keys are
// still read from the screen.
func (t *Terminal) Run(g *game.Game, input game.InputSource) {
	t.highScore = g.HighScore
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for !t.quit {
		<-ticker.C
		t.clock.Tick()
		keys := t.Poll()
		if input != nil {
			keys = input.Poll()
		}
		g.Update(t.clock.Delta(), t.clock.Now(), keys)
		g.Draw(t)
	}
}
