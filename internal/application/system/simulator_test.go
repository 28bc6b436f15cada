package system

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/domain/entity"
)

// createCorridor creates a 5x1 board: Ned at 0, goal at 4
func createCorridor() (*entity.Board, *entity.Piece) {
	b := entity.NewBoard("corridor", entity.V(5, 1))
	b.AddPiece(entity.NewGoal(entity.V(4, 0)))
	ned := entity.NewPlayer(entity.V(0, 0), "Ned")
	b.AddPiece(ned)
	return b, ned
}

func TestSimulator_Run(t *testing.T) {
	b, ned := createCorridor()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	sim := NewSimulator(b, logger)
	commands := []Command{
		NewMoveCommand(ned.ID(), right),
		NewMoveCommand(ned.ID(), up), // off board
		NewMoveCommand(ned.ID(), right),
	}

	report := sim.Run(commands)
	assert.Equal(t, 3, report.Steps)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, state.StatePlaying, report.State)
	assert.Equal(t, entity.V(2, 0), ned.Position())

	// one line per command plus the summary
	require.Len(t, hook.Entries, 4)
	first := hook.Entries[0]
	assert.Equal(t, logrus.DebugLevel, first.Level)
	assert.Equal(t, 0, first.Data["step"])
	assert.Equal(t, "Ned", first.Data["actor"])
	assert.Equal(t, "Ned move right", first.Data["command"])
	assert.Equal(t, true, first.Data["ok"])
	assert.Equal(t, false, hook.Entries[1].Data["ok"])

	last := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, "simulation finished", last.Message)
	assert.Equal(t, "Playing", last.Data["state"])
}

func TestSimulator_StopOnEnd(t *testing.T) {
	tests := []struct {
		name      string
		stopOnEnd bool
		wantSteps int
	}{
		{"stops after the win", true, 4},
		{"keeps going", false, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ned := createCorridor()
			sim := NewSimulator(b, nil)
			sim.StopOnEnd = tt.stopOnEnd

			commands := make([]Command, 0, 5)
			for i := 0; i < 4; i++ {
				commands = append(commands, NewMoveCommand(ned.ID(), right))
			}
			commands = append(commands, NewMoveCommand(ned.ID(), left))

			report := sim.Run(commands)
			assert.Equal(t, tt.wantSteps, report.Steps)
			if tt.stopOnEnd {
				assert.Equal(t, state.StateWon, report.State)
			} else {
				assert.Equal(t, state.StatePlaying, report.State)
			}
		})
	}
}

func TestSimulator_OnStep(t *testing.T) {
	b, ned := createCorridor()
	sim := NewSimulator(b, nil)

	var steps []Step
	sim.OnStep = func(step Step, board *entity.Board) {
		assert.Same(t, b, board)
		steps = append(steps, step)
	}

	sim.Step(NewMoveCommand(ned.ID(), right))
	sim.Step(Empty)

	require.Len(t, steps, 2)
	assert.Equal(t, 0, steps[0].Index)
	assert.Equal(t, "Ned", steps[0].Actor)
	assert.Equal(t, "Ned move right", steps[0].Description)
	assert.True(t, steps[0].OK)
	assert.Equal(t, 1, steps[1].Index)
	assert.Equal(t, "", steps[1].Actor)
}

func TestSimulator_LostWhenPlayerDies(t *testing.T) {
	b, ned := createCorridor()
	b.AddPiece(entity.NewTrap(entity.V(1, 0)))
	sim := NewSimulator(b, nil)
	sim.StopOnEnd = true

	report := sim.Run([]Command{
		NewMoveCommand(ned.ID(), right),
		NewMoveCommand(ned.ID(), right),
	})

	assert.Equal(t, 1, report.Steps)
	assert.Equal(t, state.StateLost, report.State)
	assert.Same(t, b, sim.Board())
}

func TestSimulator_DescribesBeforeExecuting(t *testing.T) {
	b, ned := createCorridor()
	b.AddPiece(entity.NewTrap(entity.V(1, 0)))
	sim := NewSimulator(b, nil)

	var step Step
	sim.OnStep = func(s Step, _ *entity.Board) { step = s }

	assert.True(t, sim.Step(NewMoveCommand(ned.ID(), right)))
	assert.False(t, b.HasActor("Ned"))
	assert.Equal(t, "Ned move right", step.Description)
	assert.Equal(t, "Ned", step.Actor)
}
