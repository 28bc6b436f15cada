package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/application/system"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/infrastructure/render"
)

var (
	styleBoard  = tcell.StyleDefault
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGlyph  = map[rune]tcell.Style{
		'Y': tcell.StyleDefault.Foreground(tcell.ColorGreen),
		'@': tcell.StyleDefault.Foreground(tcell.ColorRed),
		'~': tcell.StyleDefault.Foreground(tcell.ColorBlue),
		'X': tcell.StyleDefault.Foreground(tcell.ColorYellow),
		'^': tcell.StyleDefault.Foreground(tcell.ColorPurple),
	}
)

// Session drives a board from the keyboard. The first player on the board
// is controlled; when it is gone control passes to the next one.
type Session struct {
	screen    tcell.Screen
	sim       *system.Simulator
	recorder  *replay.Recorder
	log       logrus.FieldLogger
	keys      Keys
	hideTraps bool
	status    string
}

// NewSession creates a session. recorder may be nil.
func NewSession(screen tcell.Screen, sim *system.Simulator, recorder *replay.Recorder, log logrus.FieldLogger) *Session {
	return &Session{
		screen:   screen,
		sim:      sim,
		recorder: recorder,
		log:      log,
		status:   "arrows: move  a+arrow: attack  r: traps  q: quit",
	}
}

// SetHideTraps sets whether traps are drawn
func (s *Session) SetHideTraps(hide bool) {
	s.hideTraps = hide
}

// Status returns the current status line
func (s *Session) Status() string {
	return s.status
}

// Run polls events until the user quits
func (s *Session) Run() error {
	s.Draw()
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if !s.HandleKey(ev) {
				return nil
			}
		}
		s.Draw()
	}
}

// HandleKey applies one key press and reports whether the session goes on
func (s *Session) HandleKey(ev *tcell.EventKey) bool {
	action, dir := s.keys.Translate(ev)
	switch action {
	case ActionQuit:
		return false
	case ActionArm:
		s.status = "attack: pick a direction"
	case ActionToggleTraps:
		s.hideTraps = !s.hideTraps
	case ActionMove:
		s.apply(config.ActionMove, dir)
	case ActionAttack:
		s.apply(config.ActionAttack, dir)
	}
	return true
}

func (s *Session) apply(action string, dir system.Direction) {
	b := s.sim.Board()
	if st := state.Evaluate(b); st.IsOver() {
		s.status = fmt.Sprintf("game over (%s), q to quit", st)
		return
	}

	actor := b.Players()[0].Name()
	cmd, err := system.BuildCommand(b, action, actor, dir)
	if err != nil {
		s.log.WithError(err).Warn("cannot build command")
		return
	}
	if s.recorder != nil {
		s.recorder.Record(action, actor, dir)
	}

	ok := s.sim.Step(cmd)
	s.status = fmt.Sprintf("%s %s %s: %v", actor, action, dir, ok)
	if st := state.Evaluate(b); st.IsOver() {
		s.status = fmt.Sprintf("%s (q to quit)", st)
		if s.recorder != nil {
			s.recorder.Stop()
		}
	}
}

// Draw renders the board inside a border with the status line below
func (s *Session) Draw() {
	b := s.sim.Board()
	s.screen.Clear()

	w, h := b.Width(), b.Height()
	for x := 0; x < w+2; x++ {
		s.screen.SetContent(x, 0, '-', nil, styleBorder)
		s.screen.SetContent(x, h+1, '-', nil, styleBorder)
	}
	for row := 0; row < h; row++ {
		s.screen.SetContent(0, row+1, '|', nil, styleBorder)
		s.screen.SetContent(w+1, row+1, '|', nil, styleBorder)

		y := h - 1 - row
		for x := 0; x < w; x++ {
			r := render.Glyph(b, b.ItemAt(x, y), s.hideTraps)
			style, ok := styleGlyph[r]
			if !ok {
				style = styleBoard
			}
			s.screen.SetContent(x+1, row+1, r, nil, style)
		}
	}

	for i, r := range []rune(s.status) {
		s.screen.SetContent(i, h+3, r, nil, styleStatus)
	}
	s.screen.Show()
}
