package game

import (
	"io"
	"log"
	"time"

	"snake-rules/game/manager"
	"snake-rules/game/types"

	"golang.org/x/exp/rand"
)

// InputSource reports the direction newly pressed this tick, or None.
type InputSource interface {
	Poll() types.Direction
}

// Clock reports host time since start and the time since the previous tick.
type Clock interface {
	Now() time.Duration
	Delta() time.Duration
}

// Renderer receives one frame after every update
type Renderer interface {
	Draw(f Frame)
}

// Listener is notified of scoring and game over events
type Listener interface {
	AppleEaten(score int)
	GameOver(rec manager.GameRecord)
}

// Frame is everything a renderer gets to see
type Frame struct {
	Body  []types.Point
	Apple *types.Point
	Score int
}

type Config struct {
	Grid   types.Grid
	Rules  Rules
	Seed   uint64
	Logger *log.Logger
}

// Game owns the session lifecycle. It keeps the high score across sessions
// and replaces the session whenever a tick ends in a collision.
type Game struct {
	grid      types.Grid
	rules     Rules
	rng       *rand.Rand
	state     *manager.StateManager
	session   *Session
	listeners []Listener
	logger    *log.Logger
}

func NewGame(cfg Config) *Game {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	g := &Game{
		grid:   cfg.Grid,
		rules:  cfg.Rules,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		state:  manager.NewStateManager(),
		logger: logger,
	}
	g.session = g.newSession(0)
	g.logger.Printf("session %s started on %dx%d grid", g.session.ID, g.grid.Columns, g.grid.Rows)
	return g
}

func (g *Game) newSession(now time.Duration, opts ...SessionOption) *Session {
	opts = append([]SessionOption{WithStart(now)}, opts...)
	return NewSession(g.grid, g.rules, g.rng, opts...)
}

func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// Update ticks the current session. A terminal tick is recorded, folded into
// the high score and replaced by a fresh session before Update returns.
func (g *Game) Update(delta, now time.Duration, input types.Direction) Result {
	res := g.session.Tick(delta, now, input)

	if res.Ate {
		for _, l := range g.listeners {
			l.AppleEaten(g.session.Score())
		}
	}

	if res.Status == Terminal {
		rec := g.session.Record(now, res.Collision)
		g.state.RecordGameOver(rec)
		g.logger.Printf("session %s over: %s collision, score %d, high score %d",
			rec.SessionID, rec.Cause, rec.Score, g.state.GetHighScore())
		for _, l := range g.listeners {
			l.GameOver(rec)
		}
		g.session = g.newSession(now)
	}
	return res
}

// Step polls the host collaborators and runs one update
func (g *Game) Step(clock Clock, input InputSource) Result {
	return g.Update(clock.Delta(), clock.Now(), input.Poll())
}

// Restart replaces the session as if it had just ended, without touching the
// high score. The options allow seeding a specific board.
func (g *Game) Restart(now time.Duration, opts ...SessionOption) {
	g.session = g.newSession(now, opts...)
}

func (g *Game) Frame() Frame {
	f := Frame{
		Body:  g.session.Snake().Body(),
		Score: g.session.Score(),
	}
	if apple, ok := g.session.Apple(); ok {
		f.Apple = &apple
	}
	return f
}

// Draw hands the current frame to r
func (g *Game) Draw(r Renderer) {
	r.Draw(g.Frame())
}

func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) HighScore() int {
	return g.state.GetHighScore()
}

func (g *Game) Stats() *manager.StateManager {
	return g.state
}
