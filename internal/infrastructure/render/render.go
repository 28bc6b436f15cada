// Package render draws boards as plain text.
package render

import (
	"io"

	"github.com/younwookim/arcade/internal/domain/entity"
)

// Renderer writes a representation of a board
type Renderer interface {
	Render(w io.Writer, b *entity.Board) error
}

// Glyph returns the character for the topmost piece of a cell. Open gates
// and hidden traps render as blank.
func Glyph(b *entity.Board, p *entity.Piece, hideTraps bool) rune {
	if p == nil {
		return ' '
	}
	switch p.Kind() {
	case entity.KindWall:
		return '#'
	case entity.KindBarrel:
		return 'O'
	case entity.KindWater:
		return '~'
	case entity.KindButton:
		return '.'
	case entity.KindGate:
		if b.IsOpened(p) {
			return ' '
		}
		return '='
	case entity.KindGoal:
		return 'X'
	case entity.KindTrap:
		if hideTraps {
			return ' '
		}
		return '^'
	case entity.KindPlayer:
		return 'Y'
	case entity.KindMonster:
		return '@'
	default:
		return '?'
	}
}

// ByName returns the renderer for a CLI mode
func ByName(mode string, hideTraps bool) (Renderer, bool) {
	switch mode {
	case "ascii":
		return &ASCII{HideTraps: hideTraps}, true
	case "text":
		return &Text{}, true
	default:
		return nil, false
	}
}
