// internal/system/harness_test.go
package system

import (
	"go-base-assault/internal/component"
	"go-base-assault/internal/config"
	"go-base-assault/internal/entity"
	"go-base-assault/internal/event"
)

// newTestECS собирает минимальный мир: две базы и герой, как при
// старте матча.
func newTestECS() *entity.ECS {
	ecs := entity.NewECS()

	player := ecs.NewEntity()
	ecs.Positions[player] = &component.Position{X: config.PlayerBaseX, Y: config.BaseY}
	ecs.Sizes[player] = &component.Size{W: config.BaseWidth, H: config.BaseHeight}
	ecs.Healths[player] = &component.Health{Value: config.PlayerBaseHealth, Max: config.PlayerBaseHealth}
	ecs.Bases[player] = &component.Base{IsPlayer: true, TowerEnabled: true}
	ecs.PlayerBaseID = player

	enemy := ecs.NewEntity()
	ecs.Positions[enemy] = &component.Position{X: config.EnemyBaseX, Y: config.BaseY}
	ecs.Sizes[enemy] = &component.Size{W: config.BaseWidth, H: config.BaseHeight}
	ecs.Healths[enemy] = &component.Health{Value: config.EnemyBaseHealth, Max: config.EnemyBaseHealth}
	ecs.Bases[enemy] = &component.Base{TowerEnabled: true}
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
	ecs.HeroID = hero

	return ecs
}

// countingListener считает события по типам.
type countingListener struct {
	counts map[event.EventType]int
}

func newCountingListener() *countingListener {
	return &countingListener{counts: make(map[event.EventType]int)}
}

func (l *countingListener) OnEvent(e event.Event) {
	l.counts[e.Type]++
}
