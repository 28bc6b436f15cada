package entity

// Board is the grid container. It owns its pieces exclusively: a piece
// removed from the board is gone for good, and outside code refers to
// pieces by PieceID so that "no longer on the board" is a plain lookup miss.
type Board struct {
	name   string
	size   Vec
	nextID PieceID

	order  []PieceID // insertion order, the canonical iteration order
	pieces map[PieceID]*Piece
}

// NewBoard creates an empty board. Both size components must be positive.
func NewBoard(name string, size Vec) *Board {
	expect(size.X > 0 && size.Y > 0, "NewBoard", "size %v must be positive", size)
	b := &Board{
		name:   name,
		size:   size,
		nextID: 1, // 0 is "nil"
		pieces: make(map[PieceID]*Piece),
	}
	b.ensureInvariants("NewBoard")
	return b
}

// Name returns the board's name
func (b *Board) Name() string { return b.name }

// Size returns the board's dimensions
func (b *Board) Size() Vec { return b.size }

// Width returns the number of columns
func (b *Board) Width() int { return b.size.X }

// Height returns the number of rows
func (b *Board) Height() int { return b.size.Y }

// Len returns the number of pieces on the board
func (b *Board) Len() int { return len(b.order) }

// InRange reports whether pos lies on the board
func (b *Board) InRange(pos Vec) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < b.size.X && pos.Y < b.size.Y
}

// Pieces returns all pieces in insertion order
func (b *Board) Pieces() []*Piece {
	result := make([]*Piece, 0, len(b.order))
	for _, id := range b.order {
		result = append(result, b.pieces[id])
	}
	return result
}

// Piece returns the piece with the given handle, or nil if it is not on
// the board
func (b *Board) Piece(id PieceID) *Piece {
	return b.pieces[id]
}

// HasPiece reports whether the handle refers to a piece on this board
func (b *Board) HasPiece(id PieceID) bool {
	_, ok := b.pieces[id]
	return ok
}

// AddPiece appends a piece and returns its handle.
//
// The position must be in range and, unless p is terrain, the cell must not
// already hold a non-terrain piece. Gates must reference buttons that are
// already on the board and do not share the gate's cell.
func (b *Board) AddPiece(p *Piece) PieceID {
	const op = "Board.AddPiece"
	expect(p != nil, op, "piece is nil")
	expect(p.id == 0, op, "piece %d is already owned by a board", p.id)
	expect(b.InRange(p.pos), op, "position %v out of range for size %v", p.pos, b.size)
	if !p.IsTerrain() {
		occupant := b.Item(p.pos)
		expect(occupant == nil || occupant.IsTerrain(), op,
			"cell %v already holds a %s", p.pos, kindOf(occupant))
	}
	if p.kind == KindGate {
		for _, id := range p.buttons {
			btn := b.pieces[id]
			expect(btn != nil && btn.kind == KindButton, op,
				"gate %q references piece %d which is not a button on this board", p.name, id)
			expect(btn.pos != p.pos, op, "gate %q overlaps its button at %v", p.name, p.pos)
		}
	}
	b.ensureInvariants(op)

	p.id = b.nextID
	b.nextID++
	b.order = append(b.order, p.id)
	b.pieces[p.id] = p

	b.ensureInvariants(op)
	return p.id
}

// RemovePiece removes a piece by identity and reports whether it was on
// the board. Removing an absent piece is a no-op.
func (b *Board) RemovePiece(id PieceID) bool {
	if _, ok := b.pieces[id]; !ok {
		return false
	}
	delete(b.pieces, id)
	for i, cur := range b.order {
		if cur == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.ensureInvariants("Board.RemovePiece")
	return true
}

// MovePiece relocates an actor or a movable obstacle.
func (b *Board) MovePiece(id PieceID, target Vec) {
	const op = "Board.MovePiece"
	p := b.pieces[id]
	expect(p != nil, op, "piece %d is not on the board", id)
	expect(p.IsActor() || p.Movable(), op, "%s at %v cannot move", p.kind, p.pos)
	expect(b.InRange(target), op, "target %v out of range", target)
	if !p.IsTerrain() {
		occupant := b.Item(target)
		expect(occupant == nil || occupant == p || occupant.IsTerrain(), op,
			"target %v already holds a %s", target, kindOf(occupant))
	}
	p.pos = target
	b.ensureInvariants(op)
}

// Item returns the piece at pos. When a terrain piece and a non-terrain
// piece share the cell, the non-terrain piece wins. Returns nil for an
// empty cell.
func (b *Board) Item(pos Vec) *Piece {
	expect(b.InRange(pos), "Board.Item", "position %v out of range", pos)
	var terrain *Piece
	for _, id := range b.order {
		p := b.pieces[id]
		if p.pos != pos {
			continue
		}
		if !p.IsTerrain() {
			return p
		}
		terrain = p
	}
	return terrain
}

// ItemAt is Item for separate coordinates
func (b *Board) ItemAt(x, y int) *Piece {
	return b.Item(Vec{X: x, Y: y})
}

// ActorOrNil returns the first actor with the given name in insertion
// order, or nil
func (b *Board) ActorOrNil(name string) *Piece {
	for _, id := range b.order {
		p := b.pieces[id]
		if p.IsActor() && p.name == name {
			return p
		}
	}
	return nil
}

// Actor returns the first actor with the given name. The actor must exist.
func (b *Board) Actor(name string) *Piece {
	p := b.ActorOrNil(name)
	expect(p != nil, "Board.Actor", "no actor named %q", name)
	return p
}

// HasActor reports whether an actor with the given name is on the board
func (b *Board) HasActor(name string) bool {
	return b.ActorOrNil(name) != nil
}

// Players returns all players in insertion order
func (b *Board) Players() []*Piece {
	return b.ofKind(KindPlayer)
}

// Goals returns all goals in insertion order
func (b *Board) Goals() []*Piece {
	return b.ofKind(KindGoal)
}

func (b *Board) ofKind(kind Kind) []*Piece {
	var result []*Piece
	for _, id := range b.order {
		if p := b.pieces[id]; p.kind == kind {
			result = append(result, p)
		}
	}
	return result
}

// AssociatedGate returns the first gate that lists the button, or nil.
// The relation is derived by scanning the board on every call.
func (b *Board) AssociatedGate(button *Piece) *Piece {
	if button == nil || button.kind != KindButton {
		return nil
	}
	for _, id := range b.order {
		if p := b.pieces[id]; p.IsAssociatedButton(button.id) {
			return p
		}
	}
	return nil
}

// IsOpened reports whether at least one of the gate's buttons is covered by
// a non-terrain piece. A gate without buttons is never open.
func (b *Board) IsOpened(gate *Piece) bool {
	const op = "Board.IsOpened"
	expect(gate != nil && gate.kind == KindGate, op, "piece is not a gate")
	for _, id := range gate.buttons {
		btn := b.pieces[id]
		expect(btn != nil, op, "gate %q button %d is not on the board", gate.name, id)
		if !b.Item(btn.pos).IsTerrain() {
			return true
		}
	}
	return false
}

// IsPlayerVictorious reports whether the player is the topmost occupant of
// the goal's cell
func (b *Board) IsPlayerVictorious(goal, player *Piece) bool {
	expect(goal != nil && goal.kind == KindGoal, "Board.IsPlayerVictorious", "piece is not a goal")
	if player == nil || !b.HasPiece(player.id) {
		return false
	}
	return b.Item(goal.pos) == player
}

// CheckInvariants reports whether the board is in a consistent state:
// positive size, every piece in range, no two non-terrain pieces sharing a
// cell and no gate sharing a cell with one of its buttons.
func (b *Board) CheckInvariants() bool {
	if b.size.X <= 0 || b.size.Y <= 0 {
		return false
	}
	solid := make(map[Vec]struct{}, len(b.order))
	for _, id := range b.order {
		p := b.pieces[id]
		if p == nil || !b.InRange(p.pos) {
			return false
		}
		if !p.IsTerrain() {
			if _, taken := solid[p.pos]; taken {
				return false
			}
			solid[p.pos] = struct{}{}
		}
		for _, bid := range p.buttons {
			btn := b.pieces[bid]
			if btn != nil && btn.pos == p.pos {
				return false
			}
		}
	}
	return len(b.order) == len(b.pieces)
}

func (b *Board) ensureInvariants(op string) {
	expect(b.CheckInvariants(), op, "board %q invariants broken", b.name)
}

func kindOf(p *Piece) string {
	if p == nil {
		return "nothing"
	}
	return p.kind.String()
}
