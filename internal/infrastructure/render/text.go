package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/younwookim/arcade/internal/domain/entity"
)

// Text describes the board in sentences, one per piece
type Text struct{}

// Render writes the description
func (r *Text) Render(w io.Writer, b *entity.Board) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Board %q is %d wide and %d high and holds %d pieces.\n",
		b.Name(), b.Width(), b.Height(), b.Len())

	for _, p := range b.Pieces() {
		fmt.Fprintf(bw, "There is %s at %v.\n", describe(b, p), p.Position())
	}

	for _, goal := range b.Goals() {
		for _, player := range b.Players() {
			if b.IsPlayerVictorious(goal, player) {
				fmt.Fprintf(bw, "%s has reached the goal at %v.\n", player.Name(), goal.Position())
			}
		}
	}
	if len(b.Players()) == 0 {
		fmt.Fprintln(bw, "No players are left.")
	}

	return bw.Flush()
}

func describe(b *entity.Board, p *entity.Piece) string {
	switch p.Kind() {
	case entity.KindWall, entity.KindBarrel:
		if p.Movable() {
			return "a movable " + p.Kind().String()
		}
		return "an immovable " + p.Kind().String()
	case entity.KindWater:
		return "water"
	case entity.KindButton:
		if gate := b.AssociatedGate(p); gate != nil {
			return fmt.Sprintf("a button for gate %s", gate.Name())
		}
		return "a button"
	case entity.KindGate:
		if b.IsOpened(p) {
			return fmt.Sprintf("an open gate %s", p.Name())
		}
		return fmt.Sprintf("a closed gate %s", p.Name())
	case entity.KindGoal:
		return "a goal"
	case entity.KindTrap:
		return "a trap"
	case entity.KindPlayer, entity.KindMonster:
		return fmt.Sprintf("a %s named %s", p.Kind(), p.Name())
	default:
		return "something unknown"
	}
}
