// internal/system/unit.go
package system

import (
	"go-base-assault/internal/config"
	"go-base-assault/internal/entity"
	"go-base-assault/internal/types"
)

// UnitSystem двигает юнитов к чужой базе и ведёт их огонь.
type UnitSystem struct {
	ecs *entity.ECS
}

func NewUnitSystem(ecs *entity.ECS) *UnitSystem {
	return &UnitSystem{ecs: ecs}
}

func (s *UnitSystem) Update(delta float64) {
	playerBaseX := s.ecs.Positions[s.ecs.PlayerBaseID].X
	enemyBaseX := s.ecs.Positions[s.ecs.EnemyBaseID].X

	for _, id := range s.ecs.UnitOrder {
		unit := s.ecs.Units[id]
		pos := s.ecs.Positions[id]

		// Простой ИИ: монотонное движение к цели.
		pos.X += float64(unit.MoveDirection) * unit.Speed * delta

		// Огонь открывается только после отхода на 200px от своей базы.
		if unit.FireTimer <= 0 {
			if unit.Friendly && pos.X > playerBaseX+config.UnitFireThreshold {
				s.fire(id)
				unit.FireTimer = unit.FireRate
			} else if !unit.Friendly && pos.X < enemyBaseX-config.UnitFireThreshold {
				s.fire(id)
				unit.FireTimer = unit.FireRate
			}
		}
		if unit.FireTimer > 0 {
			unit.FireTimer--
		}
	}
}

func (s *UnitSystem) fire(id types.EntityID) {
	unit := s.ecs.Units[id]
	pos := s.ecs.Positions[id]
	size := s.ecs.Sizes[id]
	spawnProjectile(
		s.ecs,
		pos.X+size.W/2,
		pos.Y+size.H*3/4,
		unit.MoveDirection,
		unit.ShotDamage,
		unit.Friendly,
		false,
	)
}
