package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arcade/internal/domain/entity"
)

// createTestBoard creates a 5x3 board with one piece of each kind
func createTestBoard() *entity.Board {
	b := entity.NewBoard("render", entity.V(5, 3))
	btn := b.AddPiece(entity.NewButton(entity.V(4, 2)))
	b.AddPiece(entity.NewGate(entity.V(3, 2), "g1", btn))
	b.AddPiece(entity.NewWall(entity.V(0, 0), false))
	b.AddPiece(entity.NewBarrel(entity.V(1, 0), true))
	b.AddPiece(entity.NewWater(entity.V(2, 0), false))
	b.AddPiece(entity.NewGoal(entity.V(3, 0)))
	b.AddPiece(entity.NewTrap(entity.V(4, 0)))
	b.AddPiece(entity.NewPlayer(entity.V(0, 2), "Ned"))
	b.AddPiece(entity.NewMonster(entity.V(1, 1), "Grum"))
	return b
}

func TestASCII_Render(t *testing.T) {
	tests := []struct {
		name      string
		hideTraps bool
		expected  string
	}{
		{"traps shown", false, "Y  =.\n @   \n#O~X^\n"},
		{"traps hidden", true, "Y  =.\n @   \n#O~X \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &ASCII{HideTraps: tt.hideTraps}
			require.NoError(t, r.Render(&buf, createTestBoard()))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestASCII_OpenGate(t *testing.T) {
	b := createTestBoard()
	b.AddPiece(entity.NewBarrel(entity.V(4, 2), true))

	var buf bytes.Buffer
	require.NoError(t, (&ASCII{}).Render(&buf, b))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Y   O", lines[0], "open gate is blank, barrel covers the button")
}

func TestGlyph_Empty(t *testing.T) {
	b := createTestBoard()
	assert.Equal(t, ' ', Glyph(b, nil, false))
	assert.Equal(t, 'Y', Glyph(b, b.Actor("Ned"), true))
}

func TestText_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Text{}).Render(&buf, createTestBoard()))
	out := buf.String()

	assert.Contains(t, out, `Board "render" is 5 wide and 3 high and holds 9 pieces.`)
	assert.Contains(t, out, "There is a button for gate g1 at (4, 2).")
	assert.Contains(t, out, "There is a closed gate g1 at (3, 2).")
	assert.Contains(t, out, "There is an immovable wall at (0, 0).")
	assert.Contains(t, out, "There is a movable barrel at (1, 0).")
	assert.Contains(t, out, "There is water at (2, 0).")
	assert.Contains(t, out, "There is a player named Ned at (0, 2).")
	assert.Contains(t, out, "There is a monster named Grum at (1, 1).")
	assert.NotContains(t, out, "reached the goal")
}

func TestText_Outcome(t *testing.T) {
	b := entity.NewBoard("end", entity.V(2, 1))
	b.AddPiece(entity.NewGoal(entity.V(1, 0)))
	ned := entity.NewPlayer(entity.V(1, 0), "Ned")
	b.AddPiece(ned)

	var buf bytes.Buffer
	require.NoError(t, (&Text{}).Render(&buf, b))
	assert.Contains(t, buf.String(), "Ned has reached the goal at (1, 0).")

	b.RemovePiece(ned.ID())
	buf.Reset()
	require.NoError(t, (&Text{}).Render(&buf, b))
	assert.Contains(t, buf.String(), "No players are left.")
}

func TestByName(t *testing.T) {
	r, ok := ByName("ascii", true)
	require.True(t, ok)
	assert.Equal(t, &ASCII{HideTraps: true}, r)

	r, ok = ByName("text", false)
	require.True(t, ok)
	assert.IsType(t, &Text{}, r)

	_, ok = ByName("html", false)
	assert.False(t, ok)
}
