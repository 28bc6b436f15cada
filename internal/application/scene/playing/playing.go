// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/scene"
	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/application/system"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

const (
	hudHeight = 40
	minWidth  = 320
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorWall    = color.RGBA{80, 80, 100, 255}
	colorBarrel  = color.RGBA{140, 90, 40, 255}
	colorWater   = color.RGBA{40, 90, 200, 255}
	colorButton  = color.RGBA{200, 200, 100, 255}
	colorGate    = color.RGBA{170, 110, 50, 255}
	colorGoal    = color.RGBA{255, 215, 0, 255}
	colorTrap    = color.RGBA{200, 50, 50, 255}
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorMonster = color.RGBA{200, 100, 100, 255}
)

// keyState reports keyboard input for one tick
type keyState interface {
	JustPressed(k ebiten.Key) bool
	Pressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (ebitenKeys) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

var arrowKeys = []struct {
	key ebiten.Key
	dir system.Direction
}{
	{ebiten.KeyArrowLeft, system.DirLeft},
	{ebiten.KeyArrowRight, system.DirRight},
	{ebiten.KeyArrowUp, system.DirUp},
	{ebiten.KeyArrowDown, system.DirDown},
}

// Playing is the main gameplay scene. Each arrow key press is one turn
// for the first player on the board.
type Playing struct {
	settings  *config.Settings
	boardCfg  *config.BoardConfig
	sim       *system.Simulator
	log       logrus.FieldLogger
	keys      keyState
	state     state.GameState
	hideTraps bool
	status    string
	screenW   int
	screenH   int
	tileSize  int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene for the board.
// If recordPath is not empty, gameplay will be recorded.
func New(settings *config.Settings, boardCfg *config.BoardConfig, recordPath string, log logrus.FieldLogger) (*Playing, error) {
	p := &Playing{
		settings:       settings,
		boardCfg:       boardCfg,
		log:            log,
		keys:           ebitenKeys{},
		hideTraps:      settings.Render.HideTraps,
		tileSize:       settings.Display.TileSize,
		recordFilename: recordPath,
	}
	if err := p.reset(); err != nil {
		return nil, err
	}
	p.screenW, p.screenH = ScreenSize(settings, p.sim.Board())
	return p, nil
}

// ScreenSize returns the logical screen size for a board
func ScreenSize(settings *config.Settings, b *entity.Board) (int, int) {
	w := b.Width() * settings.Display.TileSize
	if w < minWidth {
		w = minWidth
	}
	return w, b.Height()*settings.Display.TileSize + hudHeight
}

// Size returns the logical screen size
func (p *Playing) Size() (int, int) {
	return p.screenW, p.screenH
}

// Board returns the board being played
func (p *Playing) Board() *entity.Board {
	return p.sim.Board()
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

func (p *Playing) reset() error {
	b, skipped, err := system.LoadBoard(p.boardCfg)
	if err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}
	for _, e := range skipped {
		p.log.WithError(e).Warn("skipped piece")
	}

	p.sim = system.NewSimulator(b, p.log)
	p.state = state.Evaluate(b)
	p.status = "arrows: move  shift+arrow: attack  T: traps  F5: save  Q: quit"

	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.boardCfg.Name)
		p.log.WithField("file", p.recordFilename).Info("recording enabled")
	}
	return nil
}

// Update polls the keyboard and applies at most one turn (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	if p.keys.JustPressed(ebiten.KeyQ) {
		return nil, ebiten.Termination
	}
	if p.keys.JustPressed(ebiten.KeyT) {
		p.hideTraps = !p.hideTraps
	}
	if p.keys.JustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	switch p.state {
	case state.StatePlaying:
		if p.keys.JustPressed(ebiten.KeyEscape) {
			p.state = state.StatePaused
			return nil, nil
		}
		if action, dir, ok := readAction(p.keys); ok {
			p.apply(action, dir)
		}
	case state.StatePaused:
		if p.keys.JustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateWon, state.StateLost:
		if p.keys.JustPressed(ebiten.KeyZ) || p.keys.JustPressed(ebiten.KeySpace) {
			if err := p.reset(); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil // nil = stay on this scene
}

// readAction returns the action for the first arrow pressed this tick.
// Holding shift turns a move into an attack.
func readAction(keys keyState) (string, system.Direction, bool) {
	for _, a := range arrowKeys {
		if !keys.JustPressed(a.key) {
			continue
		}
		if keys.Pressed(ebiten.KeyShift) {
			return config.ActionAttack, a.dir, true
		}
		return config.ActionMove, a.dir, true
	}
	return "", 0, false
}

func (p *Playing) apply(action string, dir system.Direction) {
	b := p.sim.Board()
	players := b.Players()
	if len(players) == 0 {
		return
	}
	actor := players[0].Name()

	cmd, err := system.BuildCommand(b, action, actor, dir)
	if err != nil {
		p.log.WithError(err).Warn("cannot build command")
		return
	}
	if p.recorder != nil {
		p.recorder.Record(action, actor, dir)
	}

	ok := p.sim.Step(cmd)
	p.status = fmt.Sprintf("%s %s %s: %v", actor, action, dir, ok)

	p.state = state.Evaluate(b)
	if p.state.IsOver() {
		p.log.WithField("state", p.state).Info("game ended")
		// Auto-save recording on game end
		if p.recorder != nil {
			p.recorder.Stop()
		}
		p.saveRecording()
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.ActionCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Error("failed to save recording")
		return
	}
	p.log.WithFields(logrus.Fields{
		"file":    filename,
		"actions": p.recorder.ActionCount(),
	}).Info("recording saved")
}

// colorOf returns the fill color for a piece, or false when nothing is drawn
func colorOf(b *entity.Board, piece *entity.Piece, hideTraps bool) (color.Color, bool) {
	if piece == nil {
		return nil, false
	}
	switch piece.Kind() {
	case entity.KindWall:
		return colorWall, true
	case entity.KindBarrel:
		return colorBarrel, true
	case entity.KindWater:
		return colorWater, true
	case entity.KindButton:
		return colorButton, true
	case entity.KindGate:
		if b.IsOpened(piece) {
			return nil, false
		}
		return colorGate, true
	case entity.KindGoal:
		return colorGoal, true
	case entity.KindTrap:
		if hideTraps {
			return nil, false
		}
		return colorTrap, true
	case entity.KindPlayer:
		return colorPlayer, true
	case entity.KindMonster:
		return colorMonster, true
	default:
		return nil, false
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	p.drawBoard(screen)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateWon:
		p.drawOverlay(screen, color.RGBA{0, 100, 0, 180}, "YOU WON\n\nPress Z to restart")
	case state.StateLost:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180}, "GAME OVER\n\nPress Z to restart")
	}
}

func (p *Playing) drawBoard(screen *ebiten.Image) {
	b := p.sim.Board()
	ts := float64(p.tileSize)

	for y := 0; y < b.Height(); y++ {
		row := b.Height() - 1 - y
		for x := 0; x < b.Width(); x++ {
			piece := b.ItemAt(x, y)
			c, ok := colorOf(b, piece, p.hideTraps)
			if !ok {
				continue
			}

			px := float64(x) * ts
			py := float64(row) * ts
			if piece.IsActor() {
				inset := ts / 6
				ebitenutil.DrawRect(screen, px+inset, py+inset, ts-2*inset, ts-2*inset, c)
				ebitenutil.DebugPrintAt(screen, string([]rune(piece.Name())[0]), int(px+ts/2)-3, int(py+ts/2)-8)
				continue
			}
			ebitenutil.DrawRect(screen, px+1, py+1, ts-2, ts-2, c)
		}
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	top := p.screenH - hudHeight
	ebitenutil.DebugPrintAt(screen, p.status, 4, top+4)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %s", p.boardCfg.Name, p.state), 4, top+20)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
