package main

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/system"
	"github.com/younwookim/arcade/internal/application/terminal"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// newScreen is replaced in tests
var newScreen = tcell.NewScreen

func runTerminal(opts *options, loader *config.Loader, out io.Writer, logger *log.Logger) error {
	settings, boardCfg, err := loadInteractive(opts, loader, logger)
	if err != nil {
		return err
	}
	b, err := buildBoard(boardCfg, logger)
	if err != nil {
		return err
	}

	var recorder *replay.Recorder
	if opts.record != "" {
		recorder = replay.NewRecorder(boardCfg.Name)
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	err = withScreen(screen, logger, func() error {
		session := terminal.NewSession(screen, system.NewSimulator(b, logger), recorder, logger)
		session.SetHideTraps(settings.Render.HideTraps)
		return session.Run()
	})
	if err != nil {
		return err
	}

	if recorder == nil || recorder.ActionCount() == 0 {
		return nil
	}
	if err := recorder.Save(opts.record); err != nil {
		return err
	}
	script := recorder.Script()
	fmt.Fprintf(out, "Recording saved: %s (%d actions on %s)\n", opts.record, len(script.Actions), script.Board)
	return nil
}

// withScreen runs fn while the screen owns the terminal. Log output is
// muted until the screen is finalized, which also happens when fn panics.
func withScreen(screen tcell.Screen, logger *log.Logger, fn func() error) (err error) {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}

	saved := logger.Out
	logger.SetOutput(io.Discard)
	defer func() {
		r := recover()
		screen.Fini()
		logger.SetOutput(saved)
		if r != nil {
			err = fmt.Errorf("terminal session panicked: %v\n%s", r, debug.Stack())
		}
	}()

	return fn()
}
