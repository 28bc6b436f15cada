package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/arcade/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update() (scene.Scene, error) {
	m.updateCalled++
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(_ *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 320, 240)

	assert.NotNil(t, g)
	assert.Equal(t, 1, initial.onEnterCalled, "OnEnter should be called on initial scene")
}

func TestGame_DelegatesToCurrentScene(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 320, 240)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, initial.updateCalled)

	g.Draw(ebiten.NewImage(320, 240))
	assert.Equal(t, 1, initial.drawCalled)
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, 192, 168)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 192, w)
	assert.Equal(t, 168, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene2 := &mockScene{}
	scene1 := &mockScene{nextScene: scene2}

	g := New(scene1, 320, 240)
	assert.NoError(t, g.Update())

	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene2.updateCalled)
	assert.Equal(t, 1, scene1.updateCalled)
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, 320, 240)

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Equal(t, 5, scene1.updateCalled)
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: ebiten.Termination}
	g := New(scene1, 320, 240)

	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 1, scene1.onExitCalled, "OnExit runs before the game stops")
}
