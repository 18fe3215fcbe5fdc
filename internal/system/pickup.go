// internal/system/pickup.go
package system

import (
	"go-base-assault/internal/config"
	"go-base-assault/internal/entity"
)

// PickupSystem применяет гравитацию к выпавшим предметам и
// прижимает их к земле. Предметы не истекают со временем.
type PickupSystem struct {
	ecs *entity.ECS
}

func NewPickupSystem(ecs *entity.ECS) *PickupSystem {
	return &PickupSystem{ecs: ecs}
}

func (s *PickupSystem) Update(delta float64) {
	for _, id := range s.ecs.PickupOrder {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		size := s.ecs.Sizes[id]

		vel.VY += config.Gravity * delta
		pos.Y += vel.VY * delta
		if pos.Y >= config.GroundY-size.H {
			pos.Y = config.GroundY - size.H
			vel.VY = 0
		}
	}
}
