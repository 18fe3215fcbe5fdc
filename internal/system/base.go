// internal/system/base.go
package system

import (
	"go-base-assault/internal/component"
	"go-base-assault/internal/config"
	"go-base-assault/internal/entity"
	"go-base-assault/internal/types"
	"go-base-assault/internal/utils"
)

// BaseSystem ведёт поведение обеих баз: истечение штрафа башни и
// периодический автоматический огонь.
//
// Асимметрия сохранена намеренно: отключается только башня базы
// игрока, вражеская стреляет всегда.
type BaseSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewBaseSystem(ecs *entity.ECS, rng *utils.PRNGService) *BaseSystem {
	return &BaseSystem{ecs: ecs, rng: rng}
}

func (s *BaseSystem) Update() {
	for _, id := range []types.EntityID{s.ecs.PlayerBaseID, s.ecs.EnemyBaseID} {
		base := s.ecs.Bases[id]

		if base.IsPlayer && !base.TowerEnabled &&
			s.ecs.ClockMS-base.TowerDisabledAt >= config.TowerDisableMS {
			base.TowerEnabled = true
		}

		if s.rng.Float64() < config.TowerFireChance {
			s.towerFire(id, base)
		}
	}
}

// towerFire стреляет по первому юниту противоположной стороны в
// порядке создания (без поиска ближайшего). Отсутствие цели —
// не ошибка, выстрел просто пропускается.
func (s *BaseSystem) towerFire(id types.EntityID, base *component.Base) {
	pos := s.ecs.Positions[id]
	size := s.ecs.Sizes[id]

	if base.IsPlayer {
		if !base.TowerEnabled {
			return
		}
		if !s.hasUnit(false) {
			return
		}
		spawnProjectile(
			s.ecs,
			pos.X+config.Scaling*4,
			pos.Y-config.Scaling*2,
			1,
			config.PlayerTowerDamage,
			true,
			false, // башенный снаряд — не выстрел героя, базу он не точит
		)
		return
	}

	if !s.hasUnit(true) {
		return
	}
	spawnProjectile(
		s.ecs,
		pos.X+size.W-config.Scaling*4,
		pos.Y-config.Scaling*2,
		-1,
		config.EnemyTowerDamage,
		false,
		false,
	)
}

func (s *BaseSystem) hasUnit(friendly bool) bool {
	for _, id := range s.ecs.UnitOrder {
		if s.ecs.Units[id].Friendly == friendly {
			return true
		}
	}
	return false
}
