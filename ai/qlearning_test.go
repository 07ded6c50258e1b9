package ai

import (
	"os"
	"path/filepath"
	"testing"

	"snake-rules/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

func TestQTableSurvivesSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents", "qtable.json")

	q := NewQLearning(rand.New(rand.NewSource(6)))
	a := State{RelativeFoodDir: [2]int8{-1, 1}, DangerDirs: [4]bool{true, false, false, true}, Heading: types.Down}
	b := State{Heading: types.Left}
	q.QTable[a] = [4]float64{0.5, -0.25, 0, 1}
	q.QTable[b] = [4]float64{0, 0, -1, 0}
	if err := q.SaveQTable(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := NewQLearning(rand.New(rand.NewSource(7)))
	if err := loaded.LoadQTable(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.QTable) != 2 {
		t.Fatalf("expected 2 states, got %d", len(loaded.QTable))
	}
	if loaded.QTable[a] != q.QTable[a] || loaded.QTable[b] != q.QTable[b] {
		t.Errorf("loaded table %v differs from saved %v", loaded.QTable, q.QTable)
	}
}

func TestLoadMissingQTable(t *testing.T) {
	q := NewQLearning(rand.New(rand.NewSource(8)))
	err := q.LoadQTable(filepath.Join(t.TempDir(), "missing.json"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
	if len(q.QTable) != 0 {
		t.Errorf("a failed load must leave the table empty")
	}
}
