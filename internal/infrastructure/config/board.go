package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zyedidia/generic/mapset"
)

// Piece type tags used in board documents
const (
	TypeWall     = "wall"
	TypeBarrel   = "barrel"
	TypeWater    = "water"
	TypeButton   = "button"
	TypeGate     = "gate"
	TypeGoal     = "goal"
	TypeTrap     = "trap"
	TypePlayer   = "player"
	TypeMonster  = "monster"
	TypeObstacle = "obstacle" // legacy: movable -> barrel, otherwise wall
)

// BoardConfig is the interchange document for a board
type BoardConfig struct {
	Name   string        `json:"name" msgpack:"name"`
	Width  int           `json:"width" msgpack:"width"`
	Height int           `json:"height" msgpack:"height"`
	Pieces []PieceConfig `json:"pieces" msgpack:"pieces"`
}

// PieceConfig is a single tagged piece record.
// Movable is required for wall, barrel, water and obstacle.
// Name is set for actors, ID for gates, Gate for buttons linked to a gate.
type PieceConfig struct {
	Type    string `json:"type" msgpack:"type"`
	X       int    `json:"x" msgpack:"x"`
	Y       int    `json:"y" msgpack:"y"`
	Movable *bool  `json:"movable,omitempty" msgpack:"movable,omitempty"`
	Name    string `json:"name,omitempty" msgpack:"name,omitempty"`
	ID      string `json:"id,omitempty" msgpack:"id,omitempty"`
	Gate    string `json:"gate,omitempty" msgpack:"gate,omitempty"`
}

// Bool returns a pointer to b, for filling Movable
func Bool(b bool) *bool {
	return &b
}

// Validate checks the document-level fields. Individual pieces are checked
// when the board is built.
func (c *BoardConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return malformed("board %q has invalid size %dx%d", c.Name, c.Width, c.Height)
	}
	return nil
}

// DecodeBoard reads a JSON board document
func DecodeBoard(r io.Reader) (*BoardConfig, error) {
	var cfg BoardConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse board: %w: %v", ErrMalformed, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteBoard writes a board document as indented JSON
func WriteBoard(w io.Writer, cfg *BoardConfig) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}
	return nil
}

// pieceKey is the comparable form of a PieceConfig
type pieceKey struct {
	typ     string
	x, y    int
	movable int8 // -1 unset
	name    string
	id      string
	gate    string
}

func keyOf(p PieceConfig) pieceKey {
	k := pieceKey{typ: p.Type, x: p.X, y: p.Y, movable: -1, name: p.Name, id: p.ID, gate: p.Gate}
	if p.Movable != nil {
		k.movable = 0
		if *p.Movable {
			k.movable = 1
		}
	}
	return k
}

// SamePieces reports whether two piece lists hold the same records,
// ignoring order. Duplicate records count once.
func SamePieces(a, b []PieceConfig) bool {
	left := mapset.New[pieceKey]()
	for _, p := range a {
		left.Put(keyOf(p))
	}
	right := mapset.New[pieceKey]()
	for _, p := range b {
		right.Put(keyOf(p))
	}
	if left.Size() != right.Size() {
		return false
	}
	same := true
	left.Each(func(k pieceKey) {
		if !right.Has(k) {
			same = false
		}
	})
	return same
}
