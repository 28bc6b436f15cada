package entity

// PieceID is a board-issued handle for a piece (never recycled, 0 is "nil")
type PieceID uint64

// Kind is the closed set of piece variants
type Kind int

const (
	KindWall Kind = iota
	KindBarrel
	KindWater
	KindButton
	KindGate
	KindGoal
	KindTrap
	KindPlayer
	KindMonster
)

var kindNames = [...]string{
	KindWall:    "wall",
	KindBarrel:  "barrel",
	KindWater:   "water",
	KindButton:  "button",
	KindGate:    "gate",
	KindGoal:    "goal",
	KindTrap:    "trap",
	KindPlayer:  "player",
	KindMonster: "monster",
}

// String returns the kind's tag as used in board documents
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind looks up a kind by its tag
func ParseKind(tag string) (Kind, bool) {
	for k, name := range kindNames {
		if name == tag {
			return Kind(k), true
		}
	}
	return 0, false
}

// Piece is a single board entity. Which fields are meaningful depends on
// Kind: name is set for actors and gates, buttons only for gates.
//
// Pieces are created with the New* constructors and handed to a Board,
// which assigns the ID and owns the piece from then on. Position changes
// go through Board.MovePiece.
type Piece struct {
	id      PieceID
	kind    Kind
	pos     Vec
	movable bool
	name    string
	buttons []PieceID
}

func newObstacle(kind Kind, pos Vec, movable bool) *Piece {
	return &Piece{kind: kind, pos: pos, movable: movable}
}

// NewWall creates a wall obstacle
func NewWall(pos Vec, movable bool) *Piece {
	return newObstacle(KindWall, pos, movable)
}

// NewBarrel creates a barrel obstacle
func NewBarrel(pos Vec, movable bool) *Piece {
	return newObstacle(KindBarrel, pos, movable)
}

// NewWater creates a water obstacle
func NewWater(pos Vec, movable bool) *Piece {
	return newObstacle(KindWater, pos, movable)
}

// NewButton creates a button (terrain)
func NewButton(pos Vec) *Piece {
	return newObstacle(KindButton, pos, false)
}

// NewGoal creates a goal (terrain)
func NewGoal(pos Vec) *Piece {
	return newObstacle(KindGoal, pos, false)
}

// NewTrap creates a trap
func NewTrap(pos Vec) *Piece {
	return newObstacle(KindTrap, pos, false)
}

// NewGate creates a gate linked to the given buttons. The buttons are weak
// references: they must already be on the board the gate is added to.
func NewGate(pos Vec, name string, buttons ...PieceID) *Piece {
	p := newObstacle(KindGate, pos, false)
	p.name = name
	p.buttons = append([]PieceID(nil), buttons...)
	return p
}

// NewPlayer creates a player actor
func NewPlayer(pos Vec, name string) *Piece {
	expect(name != "", "NewPlayer", "actor name must not be empty")
	return &Piece{kind: KindPlayer, pos: pos, name: name}
}

// NewMonster creates a monster actor
func NewMonster(pos Vec, name string) *Piece {
	expect(name != "", "NewMonster", "actor name must not be empty")
	return &Piece{kind: KindMonster, pos: pos, name: name}
}

// ID returns the board handle, 0 until the piece is added to a board
func (p *Piece) ID() PieceID { return p.id }

// Kind returns the piece variant
func (p *Piece) Kind() Kind { return p.kind }

// Position returns the current cell
func (p *Piece) Position() Vec { return p.pos }

// Name returns the actor or gate name (empty for other kinds)
func (p *Piece) Name() string { return p.name }

// IsTerrain reports whether the piece may share its cell with exactly one
// non-terrain piece
func (p *Piece) IsTerrain() bool {
	switch p.kind {
	case KindButton, KindGate, KindGoal:
		return true
	default:
		return false
	}
}

// Movable reports whether the piece can be relocated by a push
func (p *Piece) Movable() bool {
	if p.IsActor() {
		return false
	}
	return p.movable
}

// IsActor reports whether the piece is a player or a monster
func (p *Piece) IsActor() bool {
	return p.kind == KindPlayer || p.kind == KindMonster
}

// IsObstacle reports whether the piece is any non-actor variant
func (p *Piece) IsObstacle() bool {
	return !p.IsActor()
}

// ObstacleType returns the obstacle tag, or "" for actors
func (p *Piece) ObstacleType() string {
	if p.IsActor() {
		return ""
	}
	return p.kind.String()
}

// Buttons returns the handles of a gate's associated buttons in order
func (p *Piece) Buttons() []PieceID {
	return append([]PieceID(nil), p.buttons...)
}

// IsAssociatedButton reports whether the gate lists the given button
func (p *Piece) IsAssociatedButton(id PieceID) bool {
	if p.kind != KindGate || id == 0 {
		return false
	}
	for _, b := range p.buttons {
		if b == id {
			return true
		}
	}
	return false
}
