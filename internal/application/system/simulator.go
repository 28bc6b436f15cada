package system

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/domain/entity"
)

// Step describes one executed command
type Step struct {
	Index       int
	Command     Command
	Description string
	Actor       string
	OK          bool
}

// Report summarizes a simulation run
type Report struct {
	Steps  int
	Failed int
	State  state.GameState
}

// Simulator applies commands to a board one at a time
type Simulator struct {
	board  *entity.Board
	log    logrus.FieldLogger
	steps  int
	failed int

	// StopOnEnd makes Run stop as soon as the game has ended
	StopOnEnd bool

	// OnStep is called after every executed command
	OnStep func(step Step, b *entity.Board)
}

// NewSimulator creates a simulator for the board. A nil logger discards
// output.
func NewSimulator(b *entity.Board, log logrus.FieldLogger) *Simulator {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Simulator{board: b, log: log}
}

// Board returns the simulated board
func (s *Simulator) Board() *entity.Board {
	return s.board
}

// Step executes a single command
func (s *Simulator) Step(cmd Command) bool {
	// resolve names first, the actor may not survive the command
	actor := s.actorName(cmd)
	desc := Describe(s.board, cmd)
	ok := cmd.Execute(s.board)

	step := Step{Index: s.steps, Command: cmd, Description: desc, Actor: actor, OK: ok}
	s.steps++
	if !ok {
		s.failed++
	}

	s.log.WithFields(logrus.Fields{
		"step":    step.Index,
		"command": desc,
		"actor":   actor,
		"ok":      ok,
	}).Debug("command executed")

	if s.OnStep != nil {
		s.OnStep(step, s.board)
	}
	return ok
}

// Run executes commands in order and returns the report
func (s *Simulator) Run(commands []Command) Report {
	for _, cmd := range commands {
		if s.StopOnEnd && HasEnded(s.board) {
			s.log.WithField("step", s.steps).Info("game ended, skipping remaining commands")
			break
		}
		s.Step(cmd)
	}

	report := s.Report()
	s.log.WithFields(logrus.Fields{
		"steps":  report.Steps,
		"failed": report.Failed,
		"state":  report.State.String(),
	}).Info("simulation finished")
	return report
}

// Report returns the counters so far and the current game state
func (s *Simulator) Report() Report {
	return Report{
		Steps:  s.steps,
		Failed: s.failed,
		State:  state.Evaluate(s.board),
	}
}

func (s *Simulator) actorName(cmd Command) string {
	var id entity.PieceID
	switch c := cmd.(type) {
	case *MoveCommand:
		id = c.Target()
	case *AttackCommand:
		id = c.Target()
	default:
		return ""
	}
	if p := s.board.Piece(id); p != nil {
		return p.Name()
	}
	return ""
}
