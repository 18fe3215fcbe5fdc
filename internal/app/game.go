// internal/app/game.go
package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-base-assault/internal/component"
	"go-base-assault/internal/config"
	"go-base-assault/internal/entity"
	"go-base-assault/internal/event"
	"go-base-assault/internal/input"
	"go-base-assault/internal/system"
	"go-base-assault/internal/utils"
)

// Game связывает ECS, системы и цикл с фиксированным темпом
// (15 тиков в секунду). Симуляция и отрисовка выполняются строго
// последовательно внутри одного кадра ebiten — общих данных между
// горутинами нет.
type Game struct {
	ECS *entity.ECS

	HeroSystem       *system.HeroSystem
	UnitSystem       *system.UnitSystem
	ProjectileSystem *system.ProjectileSystem
	PickupSystem     *system.PickupSystem
	CombatSystem     *system.CombatSystem
	SpawnSystem      *system.SpawnSystem
	BaseSystem       *system.BaseSystem
	RenderSystem     *system.RenderSystem

	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	accumMS float64 // накопленное реальное время до следующего тика
}

// NewGame собирает игру. Сид 0 означает недетерминированный рандом;
// тесты передают фиксированный сид.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.initEntities()

	g.HeroSystem = system.NewHeroSystem(ecs, eventDispatcher)
	g.UnitSystem = system.NewUnitSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.PickupSystem = system.NewPickupSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, rng, g.HeroSystem)
	g.SpawnSystem = system.NewSpawnSystem(ecs, rng)
	g.BaseSystem = system.NewBaseSystem(ecs, rng)
	g.RenderSystem = system.NewRenderSystem(ecs, rng)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.UnitKilled, listener)
	eventDispatcher.Subscribe(event.MatchEnded, listener)

	return g
}

// initEntities создаёт обе базы и героя. Герой живёт всю игру,
// базы неподвижны.
func (g *Game) initEntities() {
	ecs := g.ECS

	player := ecs.NewEntity()
	ecs.Positions[player] = &component.Position{X: config.PlayerBaseX, Y: config.BaseY}
	ecs.Sizes[player] = &component.Size{W: config.BaseWidth, H: config.BaseHeight}
	ecs.Healths[player] = &component.Health{Value: config.PlayerBaseHealth, Max: config.PlayerBaseHealth}
	ecs.Bases[player] = &component.Base{IsPlayer: true, TowerEnabled: true}
	ecs.Renderables[player] = &component.Renderable{Color: config.BaseColor}
	ecs.PlayerBaseID = player

	enemy := ecs.NewEntity()
	ecs.Positions[enemy] = &component.Position{X: config.EnemyBaseX, Y: config.BaseY}
	ecs.Sizes[enemy] = &component.Size{W: config.BaseWidth, H: config.BaseHeight}
	ecs.Healths[enemy] = &component.Health{Value: config.EnemyBaseHealth, Max: config.EnemyBaseHealth}
	ecs.Bases[enemy] = &component.Base{TowerEnabled: true}
	ecs.Renderables[enemy] = &component.Renderable{Color: config.BaseColor}
	ecs.EnemyBaseID = enemy

	hero := ecs.NewEntity()
	ecs.Positions[hero] = &component.Position{
		X: config.PlayerBaseX + config.HeroSpawnOffset,
		Y: config.GroundY - config.HeroSize,
	}
	ecs.Velocities[hero] = &component.Velocity{}
	ecs.Sizes[hero] = &component.Size{W: config.HeroSize, H: config.HeroSize}
	ecs.Healths[hero] = &component.Health{Value: config.HeroMaxHealth, Max: config.HeroMaxHealth}
	ecs.Heroes[hero] = &component.Hero{
		Direction:    1,
		Speed:        config.HeroSpeed,
		FireRate:     config.HeroFireRate,
		BaseFireRate: config.HeroFireRate,
		Respawns:     config.HeroRespawns,
	}
	ecs.Renderables[hero] = &component.Renderable{Color: config.HeroColor}
	ecs.HeroID = hero
}

// Update накапливает реальное время и запускает тик, когда прошёл
// один номинальный кадр. delta-фактор — отношение прошедшего времени
// к номинальному интервалу, он делает движение корректным по скорости
// при дрожании кадра.
func (g *Game) Update(realDT float64, in input.Snapshot) {
	g.accumMS += realDT * 1000
	if g.accumMS < config.FrameDelayMS {
		return
	}
	delta := g.accumMS / config.FrameDelayMS
	if delta > config.MaxTickDelta {
		delta = config.MaxTickDelta
	}
	g.accumMS = 0
	g.Step(delta, in)
}

// Step выполняет один тик симуляции в фиксированном порядке.
// После терминальной фазы состояние больше не продвигается.
func (g *Game) Step(delta float64, in input.Snapshot) {
	if g.ECS.Match.Phase != component.MatchPlaying {
		return
	}

	// Единая временная метка тика: все таймеры внутри тика
	// сравниваются с одним и тем же моментом.
	g.ECS.ClockMS += delta * config.FrameDelayMS

	g.HeroSystem.Update(delta, in)
	g.UnitSystem.Update(delta)
	g.ProjectileSystem.Update(delta)
	g.PickupSystem.Update(delta)
	g.CombatSystem.Update()
	g.SpawnSystem.Update()
	g.BaseSystem.Update()
	g.checkWinLoss()
}

func (g *Game) checkWinLoss() {
	if g.ECS.Match.Phase != component.MatchPlaying {
		return
	}
	if g.ECS.Healths[g.ECS.PlayerBaseID].Value <= 0 {
		g.endMatch(component.MatchDefeat)
	} else if g.ECS.Healths[g.ECS.EnemyBaseID].Value <= 0 {
		g.endMatch(component.MatchVictory)
	}
}

func (g *Game) endMatch(phase component.MatchPhase) {
	g.ECS.Match.Phase = phase
	g.EventDispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: phase})
}

// Draw отрисовывает мир; вызывается после Update в том же кадре.
func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
}

// GameEventListener обрабатывает события, важные для основного цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.UnitKilled:
		l.game.ECS.Match.Kills++
	case event.MatchEnded:
		if phase, ok := e.Data.(component.MatchPhase); ok && phase == component.MatchVictory {
			log.Println("match ended: victory, enemy base destroyed")
		} else {
			log.Println("match ended: defeat")
		}
	}
}
