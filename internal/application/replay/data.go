package replay

import (
	"time"

	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// Version is written into every recorded script
const Version = "1.0"

// NewScript creates an empty command script for a board
func NewScript(board string) *config.ActionScript {
	return &config.ActionScript{
		Version:   Version,
		Board:     board,
		StartTime: time.Now().Format(time.RFC3339),
		Actions:   make([]config.ActionConfig, 0, 64),
	}
}

// CreateTestScript creates a script that moves one actor in the given
// directions (for testing)
func CreateTestScript(board, actor string, directions ...string) *config.ActionScript {
	script := NewScript(board)
	for _, dir := range directions {
		script.Actions = append(script.Actions, config.ActionConfig{
			Type:      config.ActionMove,
			Actor:     actor,
			Direction: dir,
		})
	}
	return script
}
