package system

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// LoadBoard converts a BoardConfig into a Board.
//
// A malformed document returns a nil board and an error wrapping
// config.ErrMalformed. Pieces that cannot be placed are skipped and
// reported as *config.PieceError values; the rest of the board is built.
// Buttons are placed before every other piece so gates can bind to them;
// a button naming a gate that was never placed is removed and reported.
func LoadBoard(cfg *config.BoardConfig) (*entity.Board, []error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("%w: no board document", config.ErrMalformed)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	b := entity.NewBoard(cfg.Name, entity.V(cfg.Width, cfg.Height))
	l := &boardLoader{
		board:   b,
		buttons: make(map[string][]entity.PieceID),
		gates:   mapset.New[string](),
	}

	for i, pc := range cfg.Pieces {
		if pc.Type == config.TypeButton {
			l.place(i, pc)
		}
	}
	for i, pc := range cfg.Pieces {
		if pc.Type != config.TypeButton {
			l.place(i, pc)
		}
	}
	l.dropUnlinked()

	return b, l.skipped, nil
}

type boardLoader struct {
	board   *entity.Board
	buttons map[string][]entity.PieceID // gate id -> buttons
	gates   mapset.Set[string]
	linked  []linkedButton // document order
	skipped []error
}

type linkedButton struct {
	index int
	gate  string
	id    entity.PieceID
}

func (l *boardLoader) place(index int, pc config.PieceConfig) {
	p, err := l.build(index, pc)
	if err != nil {
		l.skipped = append(l.skipped, err)
		return
	}

	id := l.board.AddPiece(p)
	switch pc.Type {
	case config.TypeButton:
		if pc.Gate != "" {
			l.buttons[pc.Gate] = append(l.buttons[pc.Gate], id)
			l.linked = append(l.linked, linkedButton{index: index, gate: pc.Gate, id: id})
		}
	case config.TypeGate:
		l.gates.Put(pc.ID)
	}
}

// dropUnlinked removes buttons whose gate id matches no placed gate, so a
// loaded board dumps back to the same piece set
func (l *boardLoader) dropUnlinked() {
	for _, lb := range l.linked {
		if l.gates.Has(lb.gate) {
			continue
		}
		l.board.RemovePiece(lb.id)
		l.skipped = append(l.skipped, config.NewPieceError(lb.index, config.TypeButton, "no gate with id %q", lb.gate))
	}
}

// build creates the piece for a record and checks it can be added without
// breaking a board contract
func (l *boardLoader) build(index int, pc config.PieceConfig) (*entity.Piece, error) {
	pos := entity.V(pc.X, pc.Y)
	if !l.board.InRange(pos) {
		return nil, config.NewPieceError(index, pc.Type, "position %v out of range", pos)
	}

	var p *entity.Piece
	switch pc.Type {
	case config.TypeWall, config.TypeBarrel, config.TypeWater, config.TypeObstacle:
		if pc.Movable == nil {
			return nil, config.NewPieceError(index, pc.Type, "missing movable flag")
		}
		p = newObstacle(pc.Type, pos, *pc.Movable)
	case config.TypeButton:
		p = entity.NewButton(pos)
	case config.TypeGoal:
		p = entity.NewGoal(pos)
	case config.TypeTrap:
		p = entity.NewTrap(pos)
	case config.TypePlayer, config.TypeMonster:
		if pc.Name == "" {
			return nil, config.NewPieceError(index, pc.Type, "actor without a name")
		}
		if pc.Type == config.TypePlayer {
			p = entity.NewPlayer(pos, pc.Name)
		} else {
			p = entity.NewMonster(pos, pc.Name)
		}
	case config.TypeGate:
		if pc.ID == "" {
			return nil, config.NewPieceError(index, pc.Type, "gate without an id")
		}
		if l.gates.Has(pc.ID) {
			return nil, config.NewPieceError(index, pc.Type, "duplicate gate id %q", pc.ID)
		}
		buttons := l.buttons[pc.ID]
		for _, id := range buttons {
			if l.board.Piece(id).Position() == pos {
				return nil, config.NewPieceError(index, pc.Type, "gate %q shares %v with its button", pc.ID, pos)
			}
		}
		p = entity.NewGate(pos, pc.ID, buttons...)
	default:
		return nil, config.NewPieceError(index, pc.Type, "unknown piece type")
	}

	if !p.IsTerrain() {
		if occupant := l.board.Item(pos); occupant != nil && !occupant.IsTerrain() {
			return nil, config.NewPieceError(index, pc.Type, "cell %v already holds a %s", pos, occupant.Kind())
		}
	}
	return p, nil
}

func newObstacle(typ string, pos entity.Vec, movable bool) *entity.Piece {
	switch typ {
	case config.TypeWall:
		return entity.NewWall(pos, movable)
	case config.TypeBarrel:
		return entity.NewBarrel(pos, movable)
	case config.TypeWater:
		return entity.NewWater(pos, movable)
	default:
		if movable {
			return entity.NewBarrel(pos, true)
		}
		return entity.NewWall(pos, false)
	}
}

// DumpBoard converts a Board back into its interchange document. Pieces
// are listed in board order.
func DumpBoard(b *entity.Board) *config.BoardConfig {
	cfg := &config.BoardConfig{
		Name:   b.Name(),
		Width:  b.Width(),
		Height: b.Height(),
		Pieces: make([]config.PieceConfig, 0, b.Len()),
	}

	for _, p := range b.Pieces() {
		pc := config.PieceConfig{
			Type: p.Kind().String(),
			X:    p.Position().X,
			Y:    p.Position().Y,
		}
		switch p.Kind() {
		case entity.KindWall, entity.KindBarrel, entity.KindWater:
			pc.Movable = config.Bool(p.Movable())
		case entity.KindButton:
			if gate := b.AssociatedGate(p); gate != nil {
				pc.Gate = gate.Name()
			}
		case entity.KindGate:
			pc.ID = p.Name()
		case entity.KindPlayer, entity.KindMonster:
			pc.Name = p.Name()
		}
		cfg.Pieces = append(cfg.Pieces, pc)
	}

	return cfg
}
