package config

import (
	"encoding/json"
	"fmt"
	"io"
)

// Action type tags used in command scripts
const (
	ActionMove   = "move"
	ActionAttack = "attack"
)

// ActionConfig is a single scripted command
type ActionConfig struct {
	Type      string `json:"type"`
	Actor     string `json:"actor"`
	Direction string `json:"direction"`
}

// ActionScript is a recorded or hand-written sequence of commands
type ActionScript struct {
	Version   string         `json:"version"`
	Board     string         `json:"board"`
	StartTime string         `json:"startTime,omitempty"`
	Actions   []ActionConfig `json:"actions"`
}

// DecodeActions reads a JSON command script
func DecodeActions(r io.Reader) (*ActionScript, error) {
	var script ActionScript
	if err := json.NewDecoder(r).Decode(&script); err != nil {
		return nil, fmt.Errorf("failed to parse actions: %w: %v", ErrMalformed, err)
	}
	return &script, nil
}

// WriteActions writes a command script as indented JSON
func WriteActions(w io.Writer, script *ActionScript) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(script); err != nil {
		return fmt.Errorf("failed to encode actions: %w", err)
	}
	return nil
}
