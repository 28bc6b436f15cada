package system

import (
	"fmt"
	"strings"

	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// Describe names a command the way a script would, e.g. "Ned move right".
// Pieces no longer on the board are shown by handle.
func Describe(b *entity.Board, cmd Command) string {
	switch c := cmd.(type) {
	case *MoveCommand:
		return describeAction(b, config.ActionMove, c.target, c.offset)
	case *AttackCommand:
		return describeAction(b, config.ActionAttack, c.target, c.offset)
	case *CompositeCommand:
		parts := make([]string, 0, len(c.commands))
		for _, child := range c.commands {
			parts = append(parts, Describe(b, child))
		}
		return "[" + strings.Join(parts, "; ") + "]"
	default:
		return fmt.Sprint(cmd)
	}
}

func describeAction(b *entity.Board, action string, target entity.PieceID, offset entity.Vec) string {
	who := fmt.Sprintf("piece #%d", target)
	if p := b.Piece(target); p != nil && p.Name() != "" {
		who = p.Name()
	}

	where := offset.String()
	if dir, ok := DirectionOf(offset); ok {
		where = dir.String()
	}
	return who + " " + action + " " + where
}
