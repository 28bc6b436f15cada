package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/application/system"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/infrastructure/render"
	"github.com/younwookim/arcade/internal/infrastructure/snapshot"
)

// errRoundTrip reports a board that changed after export and reload
var errRoundTrip = errors.New("board changed after round trip")

// run executes the batch modes: load, simulate, render, export
func run(opts *options, loader *config.Loader, out io.Writer, logger *log.Logger) error {
	cfg, err := loader.LoadAll()
	if err != nil {
		return err
	}
	settings := cfg.Settings

	boardCfg, err := loadBoardConfig(opts.board, loader)
	if err != nil {
		return err
	}
	b, err := buildBoard(boardCfg, logger)
	if err != nil {
		return err
	}

	renderer, _ := render.ByName(opts.mode, settings.Render.HideTraps)

	if opts.actions != "" {
		script, err := loadScript(opts.actions, loader)
		if err != nil {
			return err
		}
		if rp := replay.NewReplayer(script); rp.Board() != "" && rp.Board() != b.Name() {
			logger.WithFields(log.Fields{
				"script":  rp.Board(),
				"board":   b.Name(),
				"actions": rp.TotalSteps(),
			}).Warn("command script was written for another board")
		}

		commands, skipped, err := replay.Compile(script, b)
		if err != nil {
			return err
		}
		for _, e := range skipped {
			logger.WithError(e).Warn("skipped action")
		}

		sim := system.NewSimulator(b, logger)
		sim.StopOnEnd = settings.Simulation.StopOnEnd
		if opts.slideshow && renderer != nil {
			sim.OnStep = func(step system.Step, b *entity.Board) {
				fmt.Fprintf(out, "step %d: %s (%v)\n", step.Index+1, step.Description, step.OK)
				if err := renderer.Render(out, b); err != nil {
					logger.WithError(err).Warn("failed to render step")
				}
				fmt.Fprintln(out)
			}
		}
		report := sim.Run(commands)
		if report.Failed > 0 {
			logger.WithField("failed", report.Failed).Warn("some commands failed")
		}
	}

	if renderer != nil {
		if err := renderer.Render(out, b); err != nil {
			return fmt.Errorf("failed to render board: %w", err)
		}
		fmt.Fprintf(out, "State: %s\n", state.Evaluate(b))
	} else if err := config.WriteBoard(out, system.DumpBoard(b)); err != nil {
		return err
	}

	if opts.out != "" {
		if err := writeBoardFile(opts.out, system.DumpBoard(b)); err != nil {
			return err
		}
		logger.WithField("file", opts.out).Info("board saved")
	}
	if opts.snapshot != "" {
		if err := snapshot.Save(opts.snapshot, system.DumpBoard(b)); err != nil {
			return err
		}
		logger.WithField("file", opts.snapshot).Info("snapshot saved")
	}
	if opts.checkRoundTrip {
		if err := checkRoundTrip(b); err != nil {
			return err
		}
		logger.Info("round trip ok")
	}
	return nil
}

// loadBoardConfig reads a board from a .json or .msgpack file, or by name
// from the config tree
func loadBoardConfig(board string, loader *config.Loader) (*config.BoardConfig, error) {
	switch filepath.Ext(board) {
	case snapshot.Extension:
		return snapshot.Load(board)
	case ".json":
		f, err := os.Open(board)
		if err != nil {
			return nil, fmt.Errorf("failed to open board: %w", err)
		}
		defer func() { _ = f.Close() }()
		return config.DecodeBoard(f)
	default:
		return loader.LoadBoard(board)
	}
}

func loadScript(actions string, loader *config.Loader) (*config.ActionScript, error) {
	if filepath.Ext(actions) == ".json" {
		return replay.LoadReplay(actions)
	}
	return loader.LoadActions(actions)
}

func buildBoard(cfg *config.BoardConfig, logger log.FieldLogger) (*entity.Board, error) {
	b, skipped, err := system.LoadBoard(cfg)
	if err != nil {
		return nil, err
	}
	for _, e := range skipped {
		logger.WithError(e).Warn("skipped piece")
	}
	logger.WithFields(log.Fields{
		"board":  b.Name(),
		"pieces": b.Len(),
	}).Debug("board loaded")
	return b, nil
}

func writeBoardFile(path string, cfg *config.BoardConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return config.WriteBoard(f, cfg)
}

// checkRoundTrip exports the board, rebuilds it from both interchange
// formats and compares the piece records
func checkRoundTrip(b *entity.Board) error {
	dumped := system.DumpBoard(b)

	reloaded, skipped, err := system.LoadBoard(dumped)
	if err != nil {
		return err
	}
	if len(skipped) > 0 {
		return fmt.Errorf("%w: %d pieces skipped on reload", errRoundTrip, len(skipped))
	}
	if !config.SamePieces(dumped.Pieces, system.DumpBoard(reloaded).Pieces) {
		return fmt.Errorf("%w: json", errRoundTrip)
	}

	data, err := snapshot.Encode(dumped)
	if err != nil {
		return err
	}
	decoded, err := snapshot.Decode(data)
	if err != nil {
		return err
	}
	if !config.SamePieces(dumped.Pieces, decoded.Pieces) {
		return fmt.Errorf("%w: msgpack", errRoundTrip)
	}
	return nil
}
