// internal/system/render.go
package system

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-base-assault/internal/config"
	"go-base-assault/internal/defs"
	"go-base-assault/internal/entity"
	"go-base-assault/internal/types"
	"go-base-assault/internal/utils"
)

// RenderSystem рисует мир в пиксельном 8-битном стиле: фон, базы,
// землю, предметы, юнитов, героя и снаряды. HUD рисуется отдельно
// (internal/ui). Система только читает ECS — симуляция и отрисовка
// идут строго последовательно внутри одного кадра.
type RenderSystem struct {
	ecs      *entity.ECS
	whiteSub *ebiten.Image

	hillVs []ebiten.Vertex
	hillIs []uint16
	grass  []grassBlade
}

type grassBlade struct {
	x0, y0, x1, y1 float32
}

func NewRenderSystem(ecs *entity.ECS, rng *utils.PRNGService) *RenderSystem {
	whiteImg := ebiten.NewImage(3, 3)
	whiteImg.Fill(color.White)

	s := &RenderSystem{
		ecs:      ecs,
		whiteSub: whiteImg.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
	s.buildHills()
	s.buildGrass(rng)
	return s
}

// buildHills собирает вершины двух слоёв холмов один раз; дальше они
// рисуются одним DrawTriangles на кадр.
func (s *RenderSystem) buildHills() {
	const w = config.GameWidth
	const g = config.GroundY

	farXs := []float32{0, w / 4, w / 2, w * 3 / 4, w, w, 0}
	farYs := []float32{g - 150, g - 200, g - 180, g - 220, g - 100, g, g}
	nearXs := []float32{0, w / 6, w / 3, w * 2 / 3, w, w, 0}
	nearYs := []float32{g - 80, g - 120, g - 100, g - 130, g - 70, g, g}

	s.appendPolygon(farXs, farYs, config.MountainFarColor)
	s.appendPolygon(nearXs, nearYs, config.MountainNearColor)
}

func (s *RenderSystem) appendPolygon(xs, ys []float32, clr color.RGBA) {
	var p vector.Path
	p.MoveTo(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		p.LineTo(xs[i], ys[i])
	}
	p.Close()

	base := uint16(len(s.hillVs))
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	s.hillVs = append(s.hillVs, vs...)
	for _, idx := range is {
		s.hillIs = append(s.hillIs, base+idx)
	}
}

// buildGrass раскладывает стебли травы один раз с фиксированным
// сидом, чтобы они не мерцали от кадра к кадру.
func (s *RenderSystem) buildGrass(rng *utils.PRNGService) {
	const step = config.Scaling * 2
	for i := 0; i < config.GameWidth; i += step {
		h := config.Scaling*3 + rng.Intn(config.Scaling*2)
		s.grass = append(s.grass, grassBlade{
			x0: float32(i),
			y0: config.GroundY,
			x1: float32(i + config.Scaling),
			y1: float32(config.GroundY - h),
		})
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.SkyColor)

	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero}
	screen.DrawTriangles(s.hillVs, s.hillIs, s.whiteSub, op)

	s.drawBase(screen, s.ecs.PlayerBaseID)
	s.drawBase(screen, s.ecs.EnemyBaseID)
	s.drawGround(screen)

	for _, id := range s.ecs.PickupOrder {
		s.drawPickup(screen, id)
	}
	for _, id := range s.ecs.UnitOrder {
		s.drawUnit(screen, id)
	}
	s.drawHero(screen)
	for _, id := range s.ecs.ProjectileOrder {
		pos := s.ecs.Positions[id]
		fillRect(screen, pos.X, pos.Y, config.ProjectileSize, config.ProjectileSize, s.ecs.Renderables[id].Color)
	}
}

func (s *RenderSystem) drawGround(screen *ebiten.Image) {
	fillRect(screen, 0, config.GroundY, config.GameWidth, config.GameHeight-config.GroundY, config.GroundColor)
	for _, b := range s.grass {
		vector.StrokeLine(screen, b.x0, b.y0, b.x1, b.y1, 1, config.GrassColor, false)
	}
}

func (s *RenderSystem) drawBase(screen *ebiten.Image, id types.EntityID) {
	const sc = config.Scaling
	base := s.ecs.Bases[id]
	pos := s.ecs.Positions[id]
	size := s.ecs.Sizes[id]
	x, y, w, h := pos.X, pos.Y, size.W, size.H

	fillRect(screen, x, y, w, h, config.BaseColor)
	fillRect(screen, x, y, sc, h, config.BaseShadeColor)
	fillRect(screen, x, y, w, sc, config.BaseShadeColor)
	fillRect(screen, x+sc*5, y+sc*10, sc*15, sc*15, config.BaseWindowColor)

	if base.IsPlayer {
		fillRect(screen, x+sc*2, y+sc*2, w-sc*4, h-sc*4, config.RecoveryZoneColor)
	}

	// Башня слева; её лампочка гаснет на время штрафа.
	fillRect(screen, x+sc*2, y-sc*4, sc*5, sc*4, config.TowerColor)
	leftLight := config.TowerOnColor
	if base.IsPlayer && !base.TowerEnabled {
		leftLight = config.TowerOffColor
	}
	fillRect(screen, x+sc*3, y-sc*3, sc*3, sc*2, leftLight)

	// Башня справа — декоративная, всегда «включена».
	fillRect(screen, x+w-sc*7, y-sc*4, sc*5, sc*4, config.TowerColor)
	fillRect(screen, x+w-sc*6, y-sc*3, sc*3, sc*2, config.TowerOnColor)
}

func (s *RenderSystem) drawPickup(screen *ebiten.Image, id types.EntityID) {
	const sc = config.Scaling
	pos := s.ecs.Positions[id]
	size := s.ecs.Sizes[id]

	fillRect(screen, pos.X, pos.Y, size.W, size.H, config.BaseWindowColor)
	fillRect(screen, pos.X+sc/2, pos.Y+sc/2, sc*3, sc*3, s.ecs.Renderables[id].Color)

	if s.ecs.Pickups[id].Type == defs.PickupHealth {
		fillRect(screen, pos.X+sc, pos.Y+sc*2, sc*2, sc, color.RGBA{255, 255, 255, 255})
		fillRect(screen, pos.X+sc*2, pos.Y+sc, sc, sc*2, color.RGBA{255, 255, 255, 255})
	}
}

func (s *RenderSystem) drawUnit(screen *ebiten.Image, id types.EntityID) {
	const sc = config.Scaling
	unit := s.ecs.Units[id]
	pos := s.ecs.Positions[id]
	size := s.ecs.Sizes[id]
	health := s.ecs.Healths[id]
	x, y, sz := pos.X, pos.Y, size.W

	fillRect(screen, x+sc, y+sc*2, sz-sc*2, sz-sc*2, s.ecs.Renderables[id].Color)

	headColor := color.RGBA{255, 255, 255, 255}
	if unit.Friendly {
		headColor = color.RGBA{255, 255, 0, 255}
	}
	fillRect(screen, x+sc*2, y, sz-sc*4, sc*2, headColor)

	gunY := y + sz/2
	gunLength := float64(sc * 2)
	if unit.Class == defs.UnitHeavy {
		gunLength = sc * 4
	}
	if unit.MoveDirection == 1 {
		fillRect(screen, x+sz-sc, gunY, gunLength, sc, config.BaseWindowColor)
	} else {
		fillRect(screen, x-gunLength+sc, gunY, gunLength, sc, config.BaseWindowColor)
	}

	// Полоска здоровья над юнитом
	pct := float64(health.Value) / float64(health.Max)
	fillRect(screen, x, y-sc*2, sz, sc, config.BaseWindowColor)
	barColor := color.RGBA{0, 255, 0, 255}
	if pct <= 0.2 {
		barColor = color.RGBA{255, 0, 0, 255}
	} else if pct <= 0.5 {
		barColor = color.RGBA{255, 255, 0, 255}
	}
	fillRect(screen, x, y-sc*2, sz*pct, sc, barColor)
}

func (s *RenderSystem) drawHero(screen *ebiten.Image) {
	const sc = config.Scaling
	hero := s.ecs.Heroes[s.ecs.HeroID]
	pos := s.ecs.Positions[s.ecs.HeroID]
	x, y := pos.X, pos.Y

	// Мигание в окне неуязвимости
	invincible := s.ecs.ClockMS < hero.InvincibleUntil
	flashing := invincible && math.Mod(s.ecs.ClockMS, 200) < 100

	bodyColor := config.HeroColor
	if flashing {
		bodyColor = config.HeroFlashColor
	} else if hero.Healing {
		bodyColor = config.HeroHealColor
	}

	if hero.Crouching {
		fillRect(screen, x, y+sc*2, sc*8, sc*4, bodyColor)
		fillRect(screen, x+sc, y, sc*4, sc*2, config.TowerOnColor)
		gunY := y + sc*4
		if hero.Direction == 1 {
			fillRect(screen, x+sc*6, gunY, sc*3, sc, config.BaseWindowColor)
		} else {
			fillRect(screen, x-sc, gunY, sc*3, sc, config.BaseWindowColor)
		}
		return
	}

	fillRect(screen, x+sc*2, y+sc, sc*4, sc*3, config.HeroHelmetColor)
	fillRect(screen, x+sc, y+sc*4, sc*6, sc*4, bodyColor)
	gunY := y + sc*5
	if hero.Direction == 1 {
		fillRect(screen, x+sc*7, gunY, sc*4, sc, config.TowerColor)
	} else {
		fillRect(screen, x-sc*3, gunY, sc*4, sc, config.TowerColor)
	}
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}
