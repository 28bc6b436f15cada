package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// createTestBoardConfig creates a document exercising every piece type
func createTestBoardConfig() *config.BoardConfig {
	return &config.BoardConfig{
		Name:   "demo",
		Width:  8,
		Height: 6,
		Pieces: []config.PieceConfig{
			{Type: "player", X: 0, Y: 0, Name: "Ned"},
			{Type: "wall", X: 1, Y: 1, Movable: config.Bool(false)},
			{Type: "barrel", X: 2, Y: 1, Movable: config.Bool(true)},
			{Type: "water", X: 3, Y: 1, Movable: config.Bool(false)},
			{Type: "gate", X: 5, Y: 5, ID: "g1"},
			{Type: "button", X: 4, Y: 4, Gate: "g1"},
			{Type: "goal", X: 7, Y: 5},
			{Type: "trap", X: 6, Y: 0},
			{Type: "monster", X: 6, Y: 3, Name: "Grum"},
			{Type: "obstacle", X: 0, Y: 5, Movable: config.Bool(true)},
			{Type: "obstacle", X: 1, Y: 5, Movable: config.Bool(false)},
		},
	}
}

func TestLoadBoard(t *testing.T) {
	b, skipped, err := LoadBoard(createTestBoardConfig())
	require.NoError(t, err)
	assert.Empty(t, skipped)

	assert.Equal(t, "demo", b.Name())
	assert.Equal(t, 8, b.Width())
	assert.Equal(t, 6, b.Height())
	assert.Equal(t, 11, b.Len())

	// buttons are placed first
	assert.Equal(t, entity.KindButton, b.Pieces()[0].Kind())

	gate := b.ItemAt(5, 5)
	require.NotNil(t, gate)
	assert.Equal(t, entity.KindGate, gate.Kind())
	assert.Equal(t, "g1", gate.Name())
	assert.Same(t, gate, b.AssociatedGate(b.ItemAt(4, 4)))

	assert.Equal(t, entity.KindBarrel, b.ItemAt(0, 5).Kind())
	assert.True(t, b.ItemAt(0, 5).Movable())
	assert.Equal(t, entity.KindWall, b.ItemAt(1, 5).Kind())
	assert.False(t, b.ItemAt(1, 5).Movable())

	assert.True(t, b.HasActor("Ned"))
	assert.Equal(t, entity.KindMonster, b.Actor("Grum").Kind())
}

func TestLoadBoard_Malformed(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.BoardConfig
	}{
		{"nil", nil},
		{"zero width", &config.BoardConfig{Name: "x", Width: 0, Height: 3}},
		{"negative height", &config.BoardConfig{Name: "x", Width: 3, Height: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _, err := LoadBoard(tt.cfg)
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, config.ErrMalformed))
		})
	}
}

func TestLoadBoard_InvalidPieces(t *testing.T) {
	tests := []struct {
		name  string
		piece config.PieceConfig
	}{
		{"unknown type", config.PieceConfig{Type: "dragon", X: 1, Y: 1}},
		{"out of range", config.PieceConfig{Type: "goal", X: 9, Y: 1}},
		{"missing movable", config.PieceConfig{Type: "wall", X: 1, Y: 1}},
		{"obstacle missing movable", config.PieceConfig{Type: "obstacle", X: 1, Y: 1}},
		{"nameless player", config.PieceConfig{Type: "player", X: 1, Y: 1}},
		{"nameless monster", config.PieceConfig{Type: "monster", X: 1, Y: 1}},
		{"occupied cell", config.PieceConfig{Type: "trap", X: 0, Y: 0}},
		{"gate without id", config.PieceConfig{Type: "gate", X: 2, Y: 2}},
		{"duplicate gate", config.PieceConfig{Type: "gate", X: 2, Y: 2, ID: "g1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.BoardConfig{
				Name:   "bad",
				Width:  4,
				Height: 4,
				Pieces: []config.PieceConfig{
					{Type: "player", X: 0, Y: 0, Name: "Ned"},
					{Type: "button", X: 3, Y: 3, Gate: "g1"},
					{Type: "gate", X: 1, Y: 0, ID: "g1"},
					tt.piece,
				},
			}

			b, skipped, err := LoadBoard(cfg)
			require.NoError(t, err)
			require.Len(t, skipped, 1)
			assert.True(t, errors.Is(skipped[0], config.ErrInvalidPiece))

			var pieceErr *config.PieceError
			require.True(t, errors.As(skipped[0], &pieceErr))
			assert.Equal(t, 3, pieceErr.Index)
			assert.Equal(t, tt.piece.Type, pieceErr.Type)

			assert.Equal(t, 3, b.Len(), "valid pieces are kept")
			assert.True(t, b.CheckInvariants())
		})
	}
}

func TestLoadBoard_UnlinkedButtons(t *testing.T) {
	tests := []struct {
		name    string
		pieces  []config.PieceConfig
		indexes []int
	}{
		{
			name: "gate id never declared",
			pieces: []config.PieceConfig{
				{Type: "button", X: 0, Y: 0, Gate: "nowhere"},
				{Type: "player", X: 1, Y: 1, Name: "Ned"},
			},
			indexes: []int{0},
		},
		{
			name: "gate skipped for sharing the button cell",
			pieces: []config.PieceConfig{
				{Type: "player", X: 0, Y: 0, Name: "Ned"},
				{Type: "button", X: 3, Y: 3, Gate: "g2"},
				{Type: "gate", X: 3, Y: 3, ID: "g2"},
			},
			indexes: []int{2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.BoardConfig{Name: "links", Width: 4, Height: 4, Pieces: tt.pieces}

			b, skipped, err := LoadBoard(cfg)
			require.NoError(t, err)
			require.Len(t, skipped, len(tt.indexes))
			for i, index := range tt.indexes {
				var pieceErr *config.PieceError
				require.True(t, errors.As(skipped[i], &pieceErr))
				assert.Equal(t, index, pieceErr.Index)
			}

			assert.Equal(t, 1, b.Len(), "only Ned is left")
			assert.Empty(t, b.Goals())

			// what was kept dumps back to the same pieces
			reloaded, skipped, err := LoadBoard(DumpBoard(b))
			require.NoError(t, err)
			assert.Empty(t, skipped)
			assert.True(t, config.SamePieces(DumpBoard(b).Pieces, DumpBoard(reloaded).Pieces))
		})
	}
}

func TestLoadBoard_ActorOnTerrain(t *testing.T) {
	cfg := &config.BoardConfig{
		Name: "t", Width: 3, Height: 3,
		Pieces: []config.PieceConfig{
			{Type: "goal", X: 1, Y: 1},
			{Type: "player", X: 1, Y: 1, Name: "Ned"},
		},
	}

	b, skipped, err := LoadBoard(cfg)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, entity.KindPlayer, b.ItemAt(1, 1).Kind())
}

func TestLoadBoard_GateWithSeveralButtons(t *testing.T) {
	cfg := &config.BoardConfig{
		Name: "t", Width: 6, Height: 6,
		Pieces: []config.PieceConfig{
			{Type: "gate", X: 5, Y: 5, ID: "g1"},
			{Type: "button", X: 2, Y: 2, Gate: "g1"},
			{Type: "button", X: 3, Y: 3, Gate: "g1"},
			{Type: "button", X: 4, Y: 4},
		},
	}

	b, skipped, err := LoadBoard(cfg)
	require.NoError(t, err)
	assert.Empty(t, skipped)

	gate := b.ItemAt(5, 5)
	assert.Len(t, gate.Buttons(), 2)
	assert.Nil(t, b.AssociatedGate(b.ItemAt(4, 4)))
	assert.False(t, b.IsOpened(gate))
}

func TestDumpBoard_RoundTrip(t *testing.T) {
	original := createTestBoardConfig()
	b, _, err := LoadBoard(original)
	require.NoError(t, err)

	dumped := DumpBoard(b)
	assert.Equal(t, original.Name, dumped.Name)
	assert.Equal(t, original.Width, dumped.Width)
	assert.Equal(t, original.Height, dumped.Height)
	assert.Len(t, dumped.Pieces, len(original.Pieces))

	reloaded, skipped, err := LoadBoard(dumped)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.True(t, config.SamePieces(dumped.Pieces, DumpBoard(reloaded).Pieces))
}

func TestDumpBoard_Fields(t *testing.T) {
	b := createTestBoard(4, 4)
	btn := b.AddPiece(entity.NewButton(entity.V(0, 0)))
	b.AddPiece(entity.NewGate(entity.V(3, 3), "door", btn))
	b.AddPiece(entity.NewWater(entity.V(1, 1), false))
	b.AddPiece(entity.NewPlayer(entity.V(2, 2), "Ned"))

	cfg := DumpBoard(b)
	require.Len(t, cfg.Pieces, 4)

	assert.Equal(t, config.PieceConfig{Type: "button", X: 0, Y: 0, Gate: "door"}, cfg.Pieces[0])
	assert.Equal(t, config.PieceConfig{Type: "gate", X: 3, Y: 3, ID: "door"}, cfg.Pieces[1])
	assert.Equal(t, config.PieceConfig{Type: "water", X: 1, Y: 1, Movable: config.Bool(false)}, cfg.Pieces[2])
	assert.Equal(t, config.PieceConfig{Type: "player", X: 2, Y: 2, Name: "Ned"}, cfg.Pieces[3])
}
