package ai

import (
	"snake-rules/game"
	"snake-rules/game/types"
)

const (
	rewardApple   = 1.0
	rewardDeath   = -1.0
	rewardCloser  = 0.1
	rewardFarther = -0.2
)

// Autopilot steers the snake in place of the keyboard. It decides once per
// executed move and learns from the outcome of its previous decision.
type Autopilot struct {
	game  *game.Game
	agent *QLearning

	decided   bool
	sessionID string
	moves     int
	score     int
	distance  int
	lastState State
	lastIdx   int
}

func NewAutopilot(g *game.Game, agent *QLearning) *Autopilot {
	return &Autopilot{game: g, agent: agent}
}

// Poll implements game.InputSource. It returns a direction only when the
// agent wants to turn; otherwise the snake keeps moving on the timer.
func (a *Autopilot) Poll() types.Direction {
	s := a.game.Session()
	if a.decided && s.ID == a.sessionID && s.Moves() == a.moves {
		return types.None
	}

	state := a.observe(s)
	if a.decided {
		a.learn(s, state)
	}

	idx := a.agent.GetAction(state)
	a.decided = true
	a.sessionID = s.ID
	a.moves = s.Moves()
	a.score = s.Score()
	a.distance = appleDistance(s)
	a.lastState = state
	a.lastIdx = idx

	dir := Actions[idx]
	if dir == s.Snake().Direction() {
		return types.None
	}
	return dir
}

// Reset forgets the pending decision so the next Poll does not learn from it.
// Use it when a session is replaced for a reason other than a collision.
func (a *Autopilot) Reset() {
	a.decided = false
}

func (a *Autopilot) learn(s *game.Session, next State) {
	if s.ID != a.sessionID {
		a.agent.Update(a.lastState, a.lastIdx, rewardDeath, next, true)
		return
	}

	reward := 0.0
	switch d := appleDistance(s); {
	case s.Score() > a.score:
		reward = rewardApple
	case d < a.distance:
		reward = rewardCloser
	case d > a.distance:
		reward = rewardFarther
	}
	a.agent.Update(a.lastState, a.lastIdx, reward, next, false)
}

func (a *Autopilot) observe(s *game.Session) State {
	snake := s.Snake()
	head := snake.GetHead()
	grid := s.Grid()

	var st State
	st.Heading = snake.Direction()
	if apple, ok := s.Apple(); ok {
		st.RelativeFoodDir = [2]int8{sign(apple.X - head.X), sign(apple.Y - head.Y)}
	}
	for i, dir := range Actions {
		next := head.Add(dir)
		st.DangerDirs[i] = !grid.Contains(next) || snake.Occupies(next)
	}
	return st
}

// appleDistance is the Manhattan distance from head to apple, -1 without one
func appleDistance(s *game.Session) int {
	apple, ok := s.Apple()
	if !ok {
		return -1
	}
	head := s.Snake().GetHead()
	return abs(int(apple.X-head.X)) + abs(int(apple.Y-head.Y))
}

func sign(v int16) int8 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
