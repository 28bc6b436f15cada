package system

import (
	"fmt"
	"strings"

	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// Direction is one of the four grid directions
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

var directionNames = [...]string{
	DirLeft:  "left",
	DirRight: "right",
	DirUp:    "up",
	DirDown:  "down",
}

// Up is +y: row 0 is the bottom of the board
var directionOffsets = [...]entity.Vec{
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
	DirUp:    {X: 0, Y: 1},
	DirDown:  {X: 0, Y: -1},
}

// String returns the direction tag used in command scripts
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "none"
	}
	return directionNames[d]
}

// Offset returns the unit vector for the direction
func (d Direction) Offset() entity.Vec {
	if d < 0 || int(d) >= len(directionOffsets) {
		return entity.Vec{}
	}
	return directionOffsets[d]
}

// DirectionOf returns the direction whose unit offset is v
func DirectionOf(v entity.Vec) (Direction, bool) {
	for d, offset := range directionOffsets {
		if offset == v {
			return Direction(d), true
		}
	}
	return 0, false
}

// ParseDirection looks up a direction by tag, ignoring case
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if name == s {
			return Direction(d), true
		}
	}
	return 0, false
}

// BuildCommand resolves an actor by name and creates the command for one
// scripted action. Unknown actors and action types wrap
// config.ErrInvalidPiece.
func BuildCommand(b *entity.Board, action, actor string, dir Direction) (Command, error) {
	piece := b.ActorOrNil(actor)
	if piece == nil {
		return nil, fmt.Errorf("%w: no actor named %q", config.ErrInvalidPiece, actor)
	}

	switch action {
	case config.ActionMove:
		return NewMoveCommand(piece.ID(), dir.Offset()), nil
	case config.ActionAttack:
		return NewAttackCommand(piece.ID(), dir.Offset()), nil
	default:
		return nil, fmt.Errorf("%w: unknown action %q", config.ErrInvalidPiece, action)
	}
}
