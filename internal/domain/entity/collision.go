package entity

// Collision is raised when a moving piece tries to enter the cell of a
// static piece. The static piece decides the outcome.
type Collision struct {
	scene  *Board
	moving PieceID
	static PieceID
	offset Vec
}

// NewCollision builds a collision event. Both pieces must be on the scene.
func NewCollision(scene *Board, moving, static PieceID) Collision {
	const op = "NewCollision"
	expect(scene != nil, op, "scene is nil")
	expect(scene.HasPiece(moving), op, "moving piece %d is not on the board", moving)
	expect(scene.HasPiece(static), op, "static piece %d is not on the board", static)
	expect(moving != static, op, "piece %d cannot collide with itself", moving)
	return Collision{
		scene:  scene,
		moving: moving,
		static: static,
		offset: scene.Piece(static).pos.Sub(scene.Piece(moving).pos),
	}
}

// Scene returns the board the collision takes place on
func (c Collision) Scene() *Board { return c.scene }

// Moving returns the handle of the piece that initiated the move
func (c Collision) Moving() PieceID { return c.moving }

// Static returns the handle of the piece being run into
func (c Collision) Static() PieceID { return c.static }

// Offset is the static position minus the moving position at the time the
// event was raised
func (c Collision) Offset() Vec { return c.offset }

// Collide resolves the collision on behalf of the static piece. It reports
// whether the moving piece is now free to advance onto the static piece's
// former cell. Resolution may remove either party or push the static piece
// further, raising collisions of its own.
func (c Collision) Collide() bool {
	static := c.scene.Piece(c.static)
	mover := c.scene.Piece(c.moving)
	expect(static != nil && mover != nil, "Collision.Collide", "pieces left the board before resolution")

	switch static.kind {
	case KindWall, KindBarrel:
		return c.collideAndMove()
	case KindButton, KindGoal:
		return true
	case KindGate:
		return c.scene.IsOpened(static)
	case KindTrap:
		c.scene.RemovePiece(c.static)
		return c.scene.RemovePiece(c.moving)
	case KindWater:
		if mover.IsObstacle() {
			// the obstacle fills the water
			c.scene.RemovePiece(c.moving)
			c.scene.RemovePiece(c.static)
			return true
		}
		c.scene.RemovePiece(c.moving)
		return false
	case KindPlayer:
		if mover.kind == KindMonster {
			return c.scene.RemovePiece(c.static)
		}
		return c.collideAndMove()
	case KindMonster:
		if mover.IsActor() {
			return c.scene.RemovePiece(c.moving)
		}
		return false
	default:
		panic(&ContractError{Op: "Collision.Collide", Reason: "unknown piece kind " + static.kind.String()})
	}
}

// Attack resolves an attack on the static piece and reports whether it was
// destroyed. Only actors and traps can be destroyed.
func (c Collision) Attack() bool {
	static := c.scene.Piece(c.static)
	expect(static != nil, "Collision.Attack", "static piece %d is not on the board", c.static)

	switch static.kind {
	case KindPlayer, KindMonster, KindTrap:
		return c.scene.RemovePiece(c.static)
	case KindWall, KindBarrel, KindWater, KindButton, KindGate, KindGoal:
		return false
	default:
		panic(&ContractError{Op: "Collision.Attack", Reason: "unknown piece kind " + static.kind.String()})
	}
}

// collideAndMove is the default push: the static piece tries to move by the
// same offset, recursively resolving whatever occupies its own target cell.
func (c Collision) collideAndMove() bool {
	static := c.scene.Piece(c.static)
	if !static.Movable() {
		return false
	}

	goal := static.pos.Add(c.offset)
	if !c.scene.InRange(goal) {
		return false
	}

	if other := c.scene.Item(goal); other != nil {
		if !NewCollision(c.scene, c.static, other.id).Collide() {
			return false
		}
	}

	// the chain may have consumed the pushed piece (water, trap)
	if c.scene.HasPiece(c.static) {
		c.scene.MovePiece(c.static, goal)
	}
	return true
}
