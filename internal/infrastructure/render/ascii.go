package render

import (
	"bufio"
	"io"

	"github.com/younwookim/arcade/internal/domain/entity"
)

// ASCII draws one character per cell, highest row first
type ASCII struct {
	HideTraps bool
}

// Render writes the board grid
func (r *ASCII) Render(w io.Writer, b *entity.Board) error {
	bw := bufio.NewWriter(w)
	for y := b.Height() - 1; y >= 0; y-- {
		for x := 0; x < b.Width(); x++ {
			if _, err := bw.WriteRune(Glyph(b, b.ItemAt(x, y), r.HideTraps)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
