// internal/system/projectile.go
package system

import (
	"go-base-assault/internal/config"
	"go-base-assault/internal/entity"
	"go-base-assault/internal/types"
)

// ProjectileSystem двигает снаряды по прямой и удаляет улетевшие
// за границы арены (с запасом в 10px).
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(delta float64) {
	// Две фазы: пометить при обходе, удалить после — чтобы не
	// мутировать коллекцию во время итерации.
	var outOfBounds []types.EntityID

	for _, id := range s.ecs.ProjectileOrder {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]

		pos.X += float64(proj.Direction) * proj.Speed * delta

		if pos.X < -config.ProjectileMargin || pos.X > config.GameWidth+config.ProjectileMargin {
			outOfBounds = append(outOfBounds, id)
		}
	}

	for _, id := range outOfBounds {
		s.ecs.RemoveProjectile(id)
	}
}
