// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-base-assault/internal/component"
	"go-base-assault/internal/config"
	"go-base-assault/internal/entity"
)

// HUD рисует поверх мира панель состояния героя и строку здоровья баз.
// Только читает ECS.
type HUD struct {
	ecs  *entity.ECS
	face font.Face
}

func NewHUD(ecs *entity.ECS) *HUD {
	return &HUD{
		ecs:  ecs,
		face: basicfont.Face7x13,
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.drawHeroPanel(screen)
	h.drawBaseStatus(screen)
}

func (h *HUD) drawHeroPanel(screen *ebiten.Image) {
	const sc = config.Scaling
	const x, y = sc, sc
	const w, h2 = sc * 50, sc * 14

	fillRect(screen, x, y, w, h2, config.HUDBackColor)
	vector.StrokeRect(screen, x, y, w, h2, 1, config.HUDBorderColor, false)

	hero := h.ecs.Heroes[h.ecs.HeroID]
	health := h.ecs.Healths[h.ecs.HeroID]

	// Полоска здоровья героя
	barX := float32(x + sc*12)
	barY := float32(y + sc)
	barW := float32(w - sc*14)
	fillRect(screen, barX, barY, barW, sc*2, config.HPBarBackColor)
	pct := float32(health.Value) / float32(health.Max)
	fillRect(screen, barX, barY, barW*pct, sc*2, config.HPBarFillColor)
	h.print(screen, fmt.Sprintf("HP x%d", health.Value), x+sc, y+sc*3, config.HUDBorderColor)

	h.print(screen, fmt.Sprintf("C %04d", hero.Coins), x+sc, y+sc*7, config.CoinTextColor)
	h.print(screen, fmt.Sprintf("R %d", hero.Respawns), x+sc*20, y+sc*7, config.LivesTextColor)
	h.print(screen, fmt.Sprintf("KILLS %d", h.ecs.Match.Kills), x+sc, y+sc*11, config.HUDBorderColor)
}

func (h *HUD) drawBaseStatus(screen *ebiten.Image) {
	const sc = config.Scaling
	y := config.GameHeight - sc*2

	player := h.ecs.Healths[h.ecs.PlayerBaseID]
	enemy := h.ecs.Healths[h.ecs.EnemyBaseID]
	h.print(screen, fmt.Sprintf("PLAYER BASE: %d", player.Value), sc*2, float32(y), config.AllyTextColor)
	h.print(screen, fmt.Sprintf("ENEMY BASE: %d", enemy.Value), config.GameWidth-sc*40, float32(y), config.FoeTextColor)

	if !h.ecs.Bases[h.ecs.PlayerBaseID].TowerEnabled {
		h.print(screen, "TOWER DISABLED", config.GameWidth/2-sc*12, float32(y), config.WarnTextColor)
	}
}

// DrawMatchResult затемняет экран и выводит итог матча.
func (h *HUD) DrawMatchResult(screen *ebiten.Image) {
	const sc = config.Scaling

	fillRect(screen, 0, 0, config.GameWidth, config.GameHeight, color.RGBA{0, 0, 0, 160})

	title := "DEFEAT"
	clr := color.Color(config.WarnTextColor)
	if h.ecs.Match.Phase == component.MatchVictory {
		title = "VICTORY"
		clr = config.AllyTextColor
	}
	h.print(screen, title, config.GameWidth/2-sc*6, config.GameHeight/2-sc*4, clr)
	h.print(screen, fmt.Sprintf("KILLS %d", h.ecs.Match.Kills), config.GameWidth/2-sc*6, config.GameHeight/2, config.HUDBorderColor)
	h.print(screen, "PRESS ENTER TO RESTART", config.GameWidth/2-sc*19, config.GameHeight/2+sc*4, config.HUDBorderColor)
}

func (h *HUD) print(screen *ebiten.Image, s string, x, y float32, clr color.Color) {
	text.Draw(screen, s, h.face, int(x), int(y)+h.face.Metrics().Ascent.Ceil(), clr)
}

func fillRect(dst *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, clr, false)
}
