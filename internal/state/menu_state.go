// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-base-assault/internal/config"
)

// MenuState — титульный экран
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	ebitenutil.DebugPrintAt(screen, "BASE ASSAULT: STRATEGIC BLITZ", config.GameWidth/2-110, config.GameHeight/2-20)
	ebitenutil.DebugPrintAt(screen, "PRESS ENTER", config.GameWidth/2-40, config.GameHeight/2+10)
}

func (m *MenuState) Exit() {}
