package replay

import (
	"fmt"

	"github.com/younwookim/arcade/internal/application/system"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// Compile turns a script into commands bound to the actors of a board.
//
// An unknown direction rejects the whole script (config.ErrMalformed).
// Actions naming an unknown actor or action type are skipped and returned
// as *config.PieceError values.
func Compile(script *config.ActionScript, b *entity.Board) ([]system.Command, []error, error) {
	r := NewReplayer(script)
	commands := make([]system.Command, 0, r.TotalSteps())
	var skipped []error

	for {
		index := r.CurrentStep()
		action, ok := r.Next()
		if !ok {
			break
		}

		dir, ok := system.ParseDirection(action.Direction)
		if !ok {
			return nil, nil, fmt.Errorf("%w: action %d has unknown direction %q",
				config.ErrMalformed, index, action.Direction)
		}

		cmd, err := system.BuildCommand(b, action.Type, action.Actor, dir)
		if err != nil {
			skipped = append(skipped, config.NewPieceError(index, action.Type, "%v", err))
			continue
		}
		commands = append(commands, cmd)
	}

	return commands, skipped, nil
}
