package ai

import (
	"encoding/json"
	"os"
	"path/filepath"

	"snake-rules/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Actions the agent may take, in table order
var Actions = [4]types.Direction{types.Up, types.Right, types.Down, types.Left}

// State is the agent's view of the board around the head
type State struct {
	RelativeFoodDir [2]int8 // sign of apple - head on each axis
	DangerDirs      [4]bool // wall or body one step away, in Actions order
	Heading         types.Direction
}

type QTable map[State][4]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	rng          *rand.Rand
}

func NewQLearning(rng *rand.Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rng,
	}
}

// GetAction picks an action index: random with probability Epsilon,
// otherwise the best known one.
func (q *QLearning) GetAction(state State) int {
	if q.rng.Float64() < q.Epsilon {
		return q.rng.Intn(len(Actions))
	}
	return q.getBestAction(state)
}

func (q *QLearning) getBestAction(state State) int {
	values := q.QTable[state]
	best := 0
	for a := 1; a < len(values); a++ {
		if values[a] > values[best] {
			best = a
		}
	}
	return best
}

// Update applies one Q-learning step. terminal transitions do not bootstrap
// from the next state.
func (q *QLearning) Update(state State, action int, reward float64, next State, terminal bool) {
	maxNext := 0.0
	if !terminal {
		nextValues := q.QTable[next]
		maxNext = nextValues[0]
		for _, v := range nextValues[1:] {
			if v > maxNext {
				maxNext = v
			}
		}
	}

	values := q.QTable[state]
	values[action] += q.LearningRate * (reward + q.Discount*maxNext - values[action])
	q.QTable[state] = values
	q.TotalReward += reward
}

// qEntry is one table row on disk; JSON objects cannot use State as a key.
type qEntry struct {
	State  State      `json:"state"`
	Values [4]float64 `json:"values"`
}

// SaveQTable writes the table to filename as JSON, creating its directory.
func (q *QLearning) SaveQTable(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return errors.Wrap(err, "create q-table directory")
	}

	entries := make([]qEntry, 0, len(q.QTable))
	for state, values := range q.QTable {
		entries = append(entries, qEntry{State: state, Values: values})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode q-table")
	}
	return errors.Wrapf(os.WriteFile(filename, data, 0644), "write %s", filename)
}

// LoadQTable merges the table stored in filename into q, overwriting rows
// for states it already knows.
func (q *QLearning) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "read %s", filename)
	}

	var entries []qEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return errors.Wrapf(err, "decode %s", filename)
	}
	for _, e := range entries {
		q.QTable[e.State] = e.Values
	}
	return nil
}
