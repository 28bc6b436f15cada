package replay

import (
	"fmt"
	"os"
	"time"

	"github.com/younwookim/arcade/internal/application/system"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// Recorder captures interactive actions as a command script
type Recorder struct {
	script    *config.ActionScript
	recording bool
}

// NewRecorder creates a new recorder for a board
func NewRecorder(board string) *Recorder {
	return &Recorder{
		script:    NewScript(board),
		recording: true,
	}
}

// Record appends one action
func (r *Recorder) Record(action, actor string, dir system.Direction) {
	if !r.recording {
		return
	}

	r.script.Actions = append(r.script.Actions, config.ActionConfig{
		Type:      action,
		Actor:     actor,
		Direction: dir.String(),
	})
}

// Save writes the script to a file
func (r *Recorder) Save(filename string) error {
	if len(r.script.Actions) == 0 {
		return fmt.Errorf("no actions to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := config.WriteActions(file, r.script); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// ActionCount returns the number of recorded actions
func (r *Recorder) ActionCount() int {
	return len(r.script.Actions)
}

// Script returns the recorded script
func (r *Recorder) Script() *config.ActionScript {
	return r.script
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
