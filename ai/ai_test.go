package ai

import (
	"math"
	"testing"
	"time"

	"snake-rules/game"
	"snake-rules/game/entity"
	"snake-rules/game/types"

	"golang.org/x/exp/rand"
)

func TestQLearningUpdate(t *testing.T) {
	q := NewQLearning(rand.New(rand.NewSource(1)))
	s := State{RelativeFoodDir: [2]int8{1, 0}, Heading: types.Right}
	next := State{Heading: types.Up}

	q.Update(s, 1, 1.0, next, true)
	if got := q.QTable[s][1]; got != 0.1 {
		t.Errorf("expected 0.1 after one terminal update, got %v", got)
	}

	q.QTable[next] = [4]float64{0, 0, 2, 0}
	q.Update(s, 1, 0, next, false)
	want := 0.1 + 0.1*(0.9*2-0.1)
	if got := q.QTable[s][1]; math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %v after bootstrapped update, got %v", want, got)
	}
	if q.TotalReward != 1.0 {
		t.Errorf("expected total reward 1, got %v", q.TotalReward)
	}
}

func TestGreedyAction(t *testing.T) {
	q := NewQLearning(rand.New(rand.NewSource(1)))
	q.Epsilon = 0
	s := State{Heading: types.Left}
	q.QTable[s] = [4]float64{0.1, -1, 0.7, 0.2}
	for i := 0; i < 10; i++ {
		if got := q.GetAction(s); got != 2 {
			t.Fatalf("expected the best action 2, got %d", got)
		}
	}
}

func TestObserveDangers(t *testing.T) {
	g := game.NewGame(game.Config{Grid: types.Grid{Columns: 3, Rows: 3}, Seed: 2})
	g.Restart(0,
		game.WithSnake([]types.Point{{X: 0, Y: 1}, {X: 1, Y: 1}}, types.Left),
		game.WithEntities(entity.NewApple(types.Point{X: 2, Y: 0})))
	pilot := NewAutopilot(g, NewQLearning(rand.New(rand.NewSource(2))))

	st := pilot.observe(g.Session())
	// Up, Right, Down, Left
	want := [4]bool{false, true, false, true}
	if st.DangerDirs != want {
		t.Errorf("dangers %v, want %v", st.DangerDirs, want)
	}
	if st.RelativeFoodDir != [2]int8{1, -1} {
		t.Errorf("food direction %v, want [1 -1]", st.RelativeFoodDir)
	}
}

func TestAutopilotDecidesOncePerMove(t *testing.T) {
	g := game.NewGame(game.Config{Grid: types.Grid{Columns: 10, Rows: 10}, Seed: 3})
	agent := NewQLearning(rand.New(rand.NewSource(3)))
	agent.Epsilon = 0
	// Make Up the clear favourite everywhere the test will look
	pilot := NewAutopilot(g, agent)
	st := pilot.observe(g.Session())
	agent.QTable[st] = [4]float64{1, 0, 0, 0}

	if got := pilot.Poll(); got != types.Up {
		t.Fatalf("expected a turn up, got %v", got)
	}
	if got := pilot.Poll(); got != types.None {
		t.Errorf("no new decision before the snake moves, got %v", got)
	}

	g.Update(0, time.Second, types.Up)
	if g.Session().Moves() != 1 {
		t.Fatalf("expected one move, got %d", g.Session().Moves())
	}
	if got := pilot.Poll(); got == g.Session().Snake().Direction() {
		t.Errorf("autopilot should never press the current heading")
	}
}

func TestTrain(t *testing.T) {
	agent := NewQLearning(rand.New(rand.NewSource(4)))
	stats := Train(agent, game.Config{Grid: types.Grid{Columns: 6, Rows: 6}, Seed: 4}, 20)

	if stats.Games < 1 || stats.Games > 20 {
		t.Errorf("unexpected games played %d", stats.Games)
	}
	if stats.HighScore < 0 || stats.AverageScore > float64(stats.HighScore) {
		t.Errorf("inconsistent stats %+v", stats)
	}
	if len(agent.QTable) == 0 {
		t.Error("training should fill the q-table")
	}
}

func TestResetSkipsLearningAcrossRestart(t *testing.T) {
	g := game.NewGame(game.Config{Grid: types.Grid{Columns: 8, Rows: 8}, Seed: 5})
	agent := NewQLearning(rand.New(rand.NewSource(5)))
	agent.Epsilon = 0
	pilot := NewAutopilot(g, agent)

	pilot.Poll()
	g.Restart(time.Second)
	pilot.Reset()
	pilot.Poll()

	if len(agent.QTable) != 0 {
		t.Errorf("a restart after Reset must not be learned as a death, table %v", agent.QTable)
	}
	if agent.TotalReward != 0 {
		t.Errorf("expected no reward, got %v", agent.TotalReward)
	}

	// Without Reset the replaced session counts as a death
	g.Restart(2 * time.Second)
	pilot.Poll()
	if agent.TotalReward != rewardDeath {
		t.Errorf("expected a death reward %v, got %v", rewardDeath, agent.TotalReward)
	}
}
