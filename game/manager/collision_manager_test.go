package manager

import (
	"testing"

	"snake-rules/game/entity"
	"snake-rules/game/types"
)

func TestCollisionWallBounds(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Columns: 5, Rows: 5})
	tests := []struct {
		name string
		head types.Point
		want CollisionType
	}{
		{"inside", types.Point{X: 2, Y: 2}, NoCollision},
		{"origin", types.Point{X: 0, Y: 0}, NoCollision},
		{"far corner", types.Point{X: 4, Y: 4}, NoCollision},
		{"left", types.Point{X: -1, Y: 0}, WallCollision},
		{"right", types.Point{X: 5, Y: 2}, WallCollision},
		{"top", types.Point{X: 2, Y: -1}, WallCollision},
		{"bottom", types.Point{X: 2, Y: 5}, WallCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cm.Check(entity.NewSnake(tt.head, types.Right))
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got.Terminal() != (tt.want != NoCollision) {
				t.Errorf("Terminal() mismatch for %v", got)
			}
		})
	}
}

func TestCollisionLeftWallAfterAdvance(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Columns: 5, Rows: 5})
	s := entity.NewSnakeFromBody([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, types.Left)

	s.Advance()

	if s.GetHead() != (types.Point{X: -1, Y: 0}) {
		t.Fatalf("unexpected head %v", s.GetHead())
	}
	if got := cm.Check(s); got != WallCollision {
		t.Errorf("expected wall collision, got %v", got)
	}
}

func TestCollisionSelf(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Columns: 10, Rows: 10})

	// Head re-enters the tail-side segment after a tight turn
	s := entity.NewSnakeFromBody([]types.Point{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}}, types.Down)
	s.Advance()
	if s.GetHead() != (types.Point{X: 2, Y: 2}) {
		t.Fatalf("unexpected head %v", s.GetHead())
	}
	if got := cm.Check(s); got != SelfCollision {
		t.Errorf("expected self collision, got %v", got)
	}

	straight := entity.NewSnakeFromBody([]types.Point{{X: 4, Y: 4}, {X: 3, Y: 4}, {X: 2, Y: 4}}, types.Right)
	straight.Advance()
	if got := cm.Check(straight); got != NoCollision {
		t.Errorf("straight move should not collide, got %v", got)
	}
}

func TestCollisionWallCheckedFirst(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Columns: 3, Rows: 3})
	s := entity.NewSnakeFromBody([]types.Point{{X: -1, Y: 0}, {X: -1, Y: 0}}, types.Left)
	if got := cm.Check(s); got != WallCollision {
		t.Errorf("expected wall to take precedence, got %v", got)
	}
}
