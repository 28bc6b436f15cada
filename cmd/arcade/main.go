// Command arcade loads a board, runs a command script against it and shows
// the result, or lets a player drive the board from a terminal or a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/game"
	"github.com/younwookim/arcade/internal/application/scene/playing"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	loader, err := newLoader(opts.configDir)
	if err != nil {
		logger.WithError(err).Fatal("failed to open config tree")
	}

	switch opts.mode {
	case "term":
		err = runTerminal(opts, loader, os.Stdout, logger)
	case "gui":
		err = runGUI(opts, loader, logger)
	default:
		err = run(opts, loader, os.Stdout, logger)
	}
	if err != nil {
		logger.WithError(err).Fatal("arcade failed")
	}
}

type options struct {
	mode           string
	configDir      string
	board          string
	actions        string
	out            string
	snapshot       string
	record         string
	slideshow      bool
	checkRoundTrip bool
	verbose        bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	opts := &options{}
	fset := flag.NewFlagSet("arcade", flag.ContinueOnError)
	fset.SetOutput(output)

	fset.StringVar(&opts.mode, "mode", "ascii", "output mode: ascii, text, json, term or gui")
	fset.StringVar(&opts.configDir, "config", "", "config directory (default: embedded configs)")
	fset.StringVar(&opts.board, "board", "demo", "board name, or a .json/.msgpack file")
	fset.StringVar(&opts.actions, "actions", "", "command script name, or a .json file")
	fset.StringVar(&opts.out, "out", "", "write the final board as JSON to this file")
	fset.StringVar(&opts.snapshot, "snapshot", "", "write the final board as msgpack to this file")
	fset.StringVar(&opts.record, "record", "", "record interactive actions to this file")
	fset.BoolVar(&opts.slideshow, "slideshow", false, "render the board after every command")
	fset.BoolVar(&opts.checkRoundTrip, "check-roundtrip", false, "check that the final board survives export and reload")
	fset.BoolVar(&opts.verbose, "v", false, "log every command")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	switch opts.mode {
	case "ascii", "text", "json", "term", "gui":
	default:
		fmt.Fprintf(output, "unknown mode %q\n", opts.mode)
		fset.Usage()
		return nil, fmt.Errorf("unknown mode %q", opts.mode)
	}
	return opts, nil
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func runGUI(opts *options, loader *config.Loader, logger *log.Logger) error {
	settings, boardCfg, err := loadInteractive(opts, loader, logger)
	if err != nil {
		return err
	}

	scene, err := playing.New(settings, boardCfg, opts.record, logger)
	if err != nil {
		return err
	}
	w, h := scene.Size()

	ebiten.SetWindowSize(w*settings.Display.Scale, h*settings.Display.Scale)
	ebiten.SetWindowTitle("Arcade: " + boardCfg.Name)
	ebiten.SetTPS(settings.Display.TPS)

	return ebiten.RunGame(game.New(scene, w, h))
}

func loadInteractive(opts *options, loader *config.Loader, logger log.FieldLogger) (*config.Settings, *config.BoardConfig, error) {
	if opts.actions != "" {
		logger.WithField("actions", opts.actions).Warn("command scripts are ignored in interactive modes")
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	boardCfg, err := loadBoardConfig(opts.board, loader)
	if err != nil {
		return nil, nil, err
	}
	return cfg.Settings, boardCfg, nil
}
