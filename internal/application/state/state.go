package state

import "github.com/younwookim/arcade/internal/domain/entity"

// GameState represents the current state of a game
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateWon
	StateLost
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// IsOver reports whether the state is final
func (s GameState) IsOver() bool {
	return s == StateWon || s == StateLost
}

// Evaluate derives the state of a board: lost without players, won when a
// player stands on top of a goal, playing otherwise
func Evaluate(b *entity.Board) GameState {
	players := b.Players()
	if len(players) == 0 {
		return StateLost
	}
	for _, goal := range b.Goals() {
		for _, player := range players {
			if b.IsPlayerVictorious(goal, player) {
				return StateWon
			}
		}
	}
	return StatePlaying
}
