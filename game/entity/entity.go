package entity

import "snake-rules/game/types"

// Kind tags the variant of a placed entity. New kinds (obstacles,
// power-ups) extend this enum; consumers switch on it.
type Kind uint8

const (
	Apple Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case Apple:
		return "apple"
	default:
		return "unknown"
	}
}

// Entity is a consumable object on the grid
type Entity struct {
	Kind Kind
	Pos  types.Point
}

func NewApple(pos types.Point) Entity {
	return Entity{Kind: Apple, Pos: pos}
}
