package game

import (
	"time"

	"snake-rules/game/entity"
	"snake-rules/game/manager"
	"snake-rules/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Status of a session after a tick
type Status int

const (
	Running Status = iota
	Terminal
)

func (s Status) String() string {
	if s == Terminal {
		return "terminal"
	}
	return "running"
}

// Rules toggles the optional variations of the base game. The zero value
// plays the classic rules: reversals are allowed and apples may land on the
// snake.
type Rules struct {
	AvoidBody     bool // spawn only on cells free of the snake
	BlockReversal bool // ignore a turn straight back into the neck
}

// Result reports what one tick did
type Result struct {
	Status    Status
	Moved     bool
	Ate       bool
	Collision manager.CollisionType
}

// Session is one life of the snake, from spawn to the first collision.
type Session struct {
	ID         string
	grid       types.Grid
	rules      Rules
	snake      *entity.Snake
	scheduler  *manager.MoveScheduler
	collisions *manager.CollisionManager
	food       *manager.FoodManager
	score      int
	moves      int
	started    time.Duration
}

type SessionOption func(*Session)

// WithSnake replaces the initial one-cell snake
func WithSnake(body []types.Point, dir types.Direction) SessionOption {
	return func(s *Session) {
		if snake := entity.NewSnakeFromBody(body, dir); snake != nil {
			s.snake = snake
		}
	}
}

// WithEntities seeds the live entities instead of spawning a random apple
func WithEntities(ents ...entity.Entity) SessionOption {
	return func(s *Session) {
		for _, e := range ents {
			s.food.AddEntity(e)
		}
	}
}

// WithStart sets the host time the session begins at
func WithStart(now time.Duration) SessionOption {
	return func(s *Session) {
		s.started = now
	}
}

// NewSession starts a fresh session: one cell at the grid centre heading
// right, score 0, zeroed timers and a first apple.
func NewSession(grid types.Grid, rules Rules, rng *rand.Rand, opts ...SessionOption) *Session {
	s := &Session{
		ID:         uuid.New().String(),
		grid:       grid,
		rules:      rules,
		snake:      entity.NewSnake(grid.Center(), types.Right),
		scheduler:  manager.NewMoveScheduler(),
		collisions: manager.NewCollisionManager(grid),
		food:       manager.NewFoodManager(grid, rng, rules.AvoidBody),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.food.Empty() {
		s.food.Spawn(s.snake)
	}
	return s
}

// Tick runs one frame of game logic. input is None when no direction key
// was newly pressed.
func (s *Session) Tick(delta, now time.Duration, input types.Direction) Result {
	inputMoved := false
	if input != types.None {
		inputMoved = true
		s.turn(input)
	}

	if !s.scheduler.Update(delta, now, inputMoved) {
		return Result{Status: Running}
	}

	s.snake.Advance()
	s.moves++

	if c := s.collisions.Check(s.snake); c.Terminal() {
		return Result{Status: Terminal, Moved: true, Collision: c}
	}

	ate := s.consume()
	if s.food.Empty() {
		s.food.Spawn(s.snake)
	}
	return Result{Status: Running, Moved: true, Ate: ate}
}

func (s *Session) turn(dir types.Direction) {
	if s.rules.BlockReversal && s.snake.Len() > 1 && dir == s.snake.Direction().Opposite() {
		return
	}
	s.snake.SetDirection(dir)
}

// consume applies the entity under the head, if any
func (s *Session) consume() bool {
	e, ok := s.food.Consume(s.snake.GetHead())
	if !ok {
		return false
	}
	switch e.Kind {
	case entity.Apple:
		s.snake.Grow()
		s.score++
		return true
	default:
		return false
	}
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Moves() int {
	return s.moves
}

func (s *Session) Grid() types.Grid {
	return s.grid
}

func (s *Session) Snake() *entity.Snake {
	return s.snake
}

func (s *Session) Entities() []entity.Entity {
	return s.food.Entities()
}

// Apple returns the first live apple
func (s *Session) Apple() (types.Point, bool) {
	for _, e := range s.food.Entities() {
		if e.Kind == entity.Apple {
			return e.Pos, true
		}
	}
	return types.Point{}, false
}

// Record summarises the session as it ends at now
func (s *Session) Record(now time.Duration, cause manager.CollisionType) manager.GameRecord {
	return manager.GameRecord{
		SessionID: s.ID,
		Score:     s.score,
		Length:    s.snake.Len(),
		Moves:     s.moves,
		Cause:     cause,
		Started:   s.started,
		Ended:     now,
	}
}
