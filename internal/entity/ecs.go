// internal/entity/ecs.go
package entity

import (
	"go-base-assault/internal/component"
	"go-base-assault/internal/types"
)

// ECS владеет всеми коллекциями сущностей. Системы запрашивают его
// каждый тик; сущности не хранят ссылок друг на друга.
//
// Порядок разрешения боя определён порядком коллекций, а итерация по
// map в Go не упорядочена, поэтому юниты, снаряды и предметы
// дополнительно ведутся в срезах в порядке создания.
type ECS struct {
	ClockMS float64 // единые игровые часы тика, мс
	NextID  types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Sizes       map[types.EntityID]*component.Size
	Healths     map[types.EntityID]*component.Health
	Heroes      map[types.EntityID]*component.Hero
	Bases       map[types.EntityID]*component.Base
	Units       map[types.EntityID]*component.Unit
	Projectiles map[types.EntityID]*component.Projectile
	Pickups     map[types.EntityID]*component.Pickup
	Renderables map[types.EntityID]*component.Renderable

	UnitOrder       []types.EntityID
	ProjectileOrder []types.EntityID
	PickupOrder     []types.EntityID

	// Синглтоны, разрешаются один раз при инициализации.
	HeroID       types.EntityID
	PlayerBaseID types.EntityID
	EnemyBaseID  types.EntityID

	Match *component.Match
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Sizes:       make(map[types.EntityID]*component.Size),
		Healths:     make(map[types.EntityID]*component.Health),
		Heroes:      make(map[types.EntityID]*component.Hero),
		Bases:       make(map[types.EntityID]*component.Base),
		Units:       make(map[types.EntityID]*component.Unit),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Pickups:     make(map[types.EntityID]*component.Pickup),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Match:       &component.Match{Phase: component.MatchPlaying},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveUnit удаляет юнита и все его компоненты.
func (ecs *ECS) RemoveUnit(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Sizes, id)
	delete(ecs.Healths, id)
	delete(ecs.Units, id)
	delete(ecs.Renderables, id)
	ecs.UnitOrder = removeID(ecs.UnitOrder, id)
}

// RemoveProjectile удаляет снаряд и все его компоненты.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Sizes, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Renderables, id)
	ecs.ProjectileOrder = removeID(ecs.ProjectileOrder, id)
}

// RemovePickup удаляет предмет и все его компоненты.
func (ecs *ECS) RemovePickup(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Sizes, id)
	delete(ecs.Pickups, id)
	delete(ecs.Renderables, id)
	ecs.PickupOrder = removeID(ecs.PickupOrder, id)
}

func removeID(order []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
