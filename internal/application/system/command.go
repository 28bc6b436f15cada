package system

import (
	"fmt"
	"strings"

	"github.com/younwookim/arcade/internal/domain/entity"
)

// Command is a single simulation step applied to a board.
// Execute reports whether the step succeeded; a failed step may still have
// changed the board (an actor drowning, a push chain moving).
type Command interface {
	Execute(b *entity.Board) bool
	isCommand()
}

// MoveCommand moves an actor by an offset, resolving whatever it runs into
type MoveCommand struct {
	target entity.PieceID
	offset entity.Vec
}

// NewMoveCommand creates a move. The offset must be non-zero.
func NewMoveCommand(target entity.PieceID, offset entity.Vec) *MoveCommand {
	checkCommand("NewMoveCommand", target, offset)
	return &MoveCommand{target: target, offset: offset}
}

func (*MoveCommand) isCommand() {}

// Target returns the handle of the moving piece
func (c *MoveCommand) Target() entity.PieceID { return c.target }

// Offset returns the step vector
func (c *MoveCommand) Offset() entity.Vec { return c.offset }

// Execute moves the target onto its goal cell. A collision that fails but
// destroys the mover still counts as success.
func (c *MoveCommand) Execute(b *entity.Board) bool {
	actor := b.Piece(c.target)
	if actor == nil {
		return false
	}

	goal := actor.Position().Add(c.offset)
	if !b.InRange(goal) {
		return false
	}

	other := b.Item(goal)
	if other == nil {
		b.MovePiece(c.target, goal)
		return true
	}

	if !entity.NewCollision(b, c.target, other.ID()).Collide() {
		return !b.HasPiece(c.target)
	}

	if b.HasPiece(c.target) {
		b.MovePiece(c.target, goal)
	}
	return true
}

func (c *MoveCommand) String() string {
	return fmt.Sprintf("move #%d by %v", c.target, c.offset)
}

// AttackCommand lets an actor attack the piece at an offset. The attacker
// never moves.
type AttackCommand struct {
	target entity.PieceID
	offset entity.Vec
}

// NewAttackCommand creates an attack. The offset must be non-zero.
func NewAttackCommand(target entity.PieceID, offset entity.Vec) *AttackCommand {
	checkCommand("NewAttackCommand", target, offset)
	return &AttackCommand{target: target, offset: offset}
}

func (*AttackCommand) isCommand() {}

// Target returns the handle of the attacking piece
func (c *AttackCommand) Target() entity.PieceID { return c.target }

// Offset returns the attack direction
func (c *AttackCommand) Offset() entity.Vec { return c.offset }

// Execute reports whether the attacked piece was destroyed
func (c *AttackCommand) Execute(b *entity.Board) bool {
	actor := b.Piece(c.target)
	if actor == nil {
		return false
	}

	goal := actor.Position().Add(c.offset)
	if !b.InRange(goal) {
		return false
	}

	other := b.Item(goal)
	if other == nil {
		return false
	}

	return entity.NewCollision(b, c.target, other.ID()).Attack()
}

func (c *AttackCommand) String() string {
	return fmt.Sprintf("attack #%d toward %v", c.target, c.offset)
}

// CompositeCommand runs its children in order
type CompositeCommand struct {
	commands []Command
}

// NewCompositeCommand groups commands into one step
func NewCompositeCommand(commands ...Command) *CompositeCommand {
	return &CompositeCommand{commands: append([]Command(nil), commands...)}
}

func (*CompositeCommand) isCommand() {}

// Add appends a command
func (c *CompositeCommand) Add(cmd Command) {
	c.commands = append(c.commands, cmd)
}

// Len returns the number of children
func (c *CompositeCommand) Len() int { return len(c.commands) }

// Execute runs every child, even after a failure, and reports whether all
// of them succeeded
func (c *CompositeCommand) Execute(b *entity.Board) bool {
	ok := true
	for _, cmd := range c.commands {
		if !cmd.Execute(b) {
			ok = false
		}
	}
	return ok
}

func (c *CompositeCommand) String() string {
	parts := make([]string, 0, len(c.commands))
	for _, cmd := range c.commands {
		parts = append(parts, fmt.Sprint(cmd))
	}
	return "[" + strings.Join(parts, "; ") + "]"
}

type emptyCommand struct{}

func (emptyCommand) isCommand() {}

func (emptyCommand) Execute(*entity.Board) bool { return true }

func (emptyCommand) String() string { return "empty" }

// Empty is the no-op command
var Empty Command = emptyCommand{}

func checkCommand(op string, target entity.PieceID, offset entity.Vec) {
	if target == 0 {
		panic(&entity.ContractError{Op: op, Reason: "target is not a piece"})
	}
	if offset.IsZero() {
		panic(&entity.ContractError{Op: op, Reason: "offset must be non-zero"})
	}
}
