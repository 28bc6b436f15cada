package system

import (
	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/domain/entity"
)

// HasEnded reports whether no player is left or a player has won
func HasEnded(b *entity.Board) bool {
	return state.Evaluate(b) != state.StatePlaying
}

// PlayerHasWon reports whether some goal's cell holds a player on top
func PlayerHasWon(b *entity.Board) bool {
	return state.Evaluate(b) == state.StateWon
}
