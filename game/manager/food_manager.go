package manager

import (
	"snake-rules/game/entity"
	"snake-rules/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the live entities and places new ones.
type FoodManager struct {
	grid      types.Grid
	entities  []entity.Entity
	rng       *rand.Rand
	avoidBody bool
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, avoidBody bool) *FoodManager {
	return &FoodManager{
		grid:      grid,
		entities:  make([]entity.Entity, 0, 1),
		rng:       rng,
		avoidBody: avoidBody,
	}
}

// Spawn places one apple when no entity is live. By default any cell is
// eligible, including those under the snake. With body avoidance a free cell
// is picked instead; a full board spawns nothing and returns false.
func (fm *FoodManager) Spawn(snake *entity.Snake) bool {
	if len(fm.entities) > 0 {
		return false
	}
	if fm.grid.Cells() == 0 {
		return false
	}

	var pos types.Point
	if fm.avoidBody {
		free, ok := fm.pickFree(snake)
		if !ok {
			return false
		}
		pos = free
	} else {
		pos = types.Point{
			X: int16(fm.rng.Intn(int(fm.grid.Columns))),
			Y: int16(fm.rng.Intn(int(fm.grid.Rows))),
		}
	}

	fm.entities = append(fm.entities, entity.NewApple(pos))
	return true
}

// pickFree chooses uniformly among the cells the snake does not occupy
func (fm *FoodManager) pickFree(snake *entity.Snake) (types.Point, bool) {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, p := range snake.Body() {
		if fm.grid.Contains(p) {
			occupied[p] = struct{}{}
		}
	}
	free := fm.grid.Cells() - len(occupied)
	if free <= 0 {
		return types.Point{}, false
	}

	n := fm.rng.Intn(free)
	for y := int16(0); y < fm.grid.Rows; y++ {
		for x := int16(0); x < fm.grid.Columns; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; taken {
				continue
			}
			if n == 0 {
				return p, true
			}
			n--
		}
	}
	return types.Point{}, false
}

// Consume removes and returns the entity lying on pos, if any
func (fm *FoodManager) Consume(pos types.Point) (entity.Entity, bool) {
	for i, e := range fm.entities {
		if e.Pos == pos {
			// Remove by swapping with last element and truncating
			fm.entities[i] = fm.entities[len(fm.entities)-1]
			fm.entities = fm.entities[:len(fm.entities)-1]
			return e, true
		}
	}
	return entity.Entity{}, false
}

func (fm *FoodManager) AddEntity(e entity.Entity) {
	fm.entities = append(fm.entities, e)
}

func (fm *FoodManager) Entities() []entity.Entity {
	out := make([]entity.Entity, len(fm.entities))
	copy(out, fm.entities)
	return out
}

func (fm *FoodManager) Empty() bool {
	return len(fm.entities) == 0
}
