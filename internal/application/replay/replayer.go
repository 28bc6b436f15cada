package replay

import (
	"fmt"
	"os"

	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// Replayer walks the actions of a command script in order
type Replayer struct {
	script *config.ActionScript
	step   int
}

// NewReplayer creates a new replayer from a script
func NewReplayer(script *config.ActionScript) *Replayer {
	return &Replayer{
		script: script,
		step:   0,
	}
}

// LoadReplay loads a command script from a file
func LoadReplay(filename string) (*config.ActionScript, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	script, err := config.DecodeActions(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return script, nil
}

// Next returns the current action and advances
func (r *Replayer) Next() (config.ActionConfig, bool) {
	if r.step >= len(r.script.Actions) {
		return config.ActionConfig{}, false
	}

	action := r.script.Actions[r.step]
	r.step++
	return action, true
}

// CurrentStep returns the index of the next action
func (r *Replayer) CurrentStep() int {
	return r.step
}

// TotalSteps returns the number of actions
func (r *Replayer) TotalSteps() int {
	return len(r.script.Actions)
}

// Board returns the name of the board the script was recorded on
func (r *Replayer) Board() string {
	return r.script.Board
}
