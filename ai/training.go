package ai

import (
	"time"

	"snake-rules/game"
	"snake-rules/game/types"
)

// maxStepsPerGame stops a session that loops forever without eating
const maxStepsPerGame = 2000

// TrainingStats summarises a headless training run
type TrainingStats struct {
	Games        int
	HighScore    int
	AverageScore float64
}

// Train plays episodes headless, one timer interval per step, and returns
// the agent's results. The agent keeps what it learned.
func Train(agent *QLearning, cfg game.Config, episodes int) TrainingStats {
	g := game.NewGame(cfg)
	pilot := NewAutopilot(g, agent)

	now := time.Duration(0)
	for played := 0; played < episodes; {
		id := g.Session().ID
		for step := 0; step < maxStepsPerGame; step++ {
			now += types.BaseUpdateInterval
			if g.Update(types.BaseUpdateInterval, now, pilot.Poll()).Status == game.Terminal {
				break
			}
		}
		if g.Session().ID == id {
			// Stalled without dying; start over without recording it or
			// teaching the agent that it died
			g.Restart(now)
			pilot.Reset()
		}
		played++
	}

	stats := g.Stats()
	return TrainingStats{
		Games:        stats.GamesPlayed(),
		HighScore:    stats.GetHighScore(),
		AverageScore: stats.AverageScore(),
	}
}
