// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-base-assault/internal/app"
	"go-base-assault/internal/component"
	"go-base-assault/internal/input"
	"go-base-assault/internal/ui"
)

// GameState — состояние матча. Снимок клавиатуры защёлкивается один
// раз на кадр и в неизменном виде уходит в тик симуляции.
type GameState struct {
	sm   *StateMachine
	game *game.Game
	hud  *ui.HUD
}

func NewGameState(sm *StateMachine) *GameState {
	gameLogic := game.NewGame(0)
	return &GameState{
		sm:   sm,
		game: gameLogic,
		hud:  ui.NewHUD(gameLogic.ECS),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if g.game.ECS.Match.Phase != component.MatchPlaying {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.sm.SetState(NewGameState(g.sm))
		}
		return
	}

	snapshot := input.ReadKeyboard()
	g.game.Update(deltaTime, snapshot)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
	g.hud.Draw(screen)

	if g.game.ECS.Match.Phase != component.MatchPlaying {
		g.hud.DrawMatchResult(screen)
	}
}

func (g *GameState) Exit() {}
