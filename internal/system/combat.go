// internal/system/combat.go
package system

import (
	"go-base-assault/internal/config"
	"go-base-assault/internal/defs"
	"go-base-assault/internal/entity"
	"go-base-assault/internal/event"
	"go-base-assault/internal/types"
	"go-base-assault/internal/utils"
)

// CombatSystem разрешает все парные взаимодействия один раз за тик,
// после того как все сущности подвинулись. Порядок фиксирован:
//
//  1. снаряды против героя / юнитов / вражеской базы;
//  2. удаление израсходованных снарядов;
//  3. герой против предметов;
//  4. вражеские юниты, дошедшие до базы игрока;
//  5. дружественные юниты, дошедшие до вражеской базы.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	hero            *HeroSystem
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, hero *HeroSystem) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		hero:            hero,
	}
}

func (s *CombatSystem) Update() {
	s.resolveProjectiles()
	s.resolvePickups()
	s.resolveBaseAssaults()
}

func (s *CombatSystem) resolveProjectiles() {
	heroPos := s.ecs.Positions[s.ecs.HeroID]
	heroSize := s.ecs.Sizes[s.ecs.HeroID]

	var consumed []types.EntityID

	order := append([]types.EntityID(nil), s.ecs.ProjectileOrder...)
	for _, id := range order {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		size := s.ecs.Sizes[id]
		hit := false

		if !proj.Friendly && utils.RectsOverlap(
			pos.X, pos.Y, size.W, size.H,
			heroPos.X, heroPos.Y, heroSize.W, heroSize.H,
		) {
			// Окно неуязвимости героя применяется внутри Hit.
			s.hero.Hit(proj.Damage)
			hit = true
		}

		if proj.Friendly {
			// Снаряд расходуется о первый пересечённый юнит в порядке
			// создания и никогда не задевает второй за тот же тик.
			for _, unitID := range append([]types.EntityID(nil), s.ecs.UnitOrder...) {
				unit := s.ecs.Units[unitID]
				if unit.Friendly {
					continue
				}
				unitPos := s.ecs.Positions[unitID]
				unitSize := s.ecs.Sizes[unitID]
				if utils.RectsOverlap(
					pos.X, pos.Y, size.W, size.H,
					unitPos.X, unitPos.Y, unitSize.W, unitSize.H,
				) {
					s.damageUnit(unitID, proj.Damage)
					hit = true
					break
				}
			}

			// Только выстрелы героя точат вражескую базу; снаряд,
			// уже потраченный на юнита, базу не задевает.
			if proj.FromHero && !hit {
				basePos := s.ecs.Positions[s.ecs.EnemyBaseID]
				baseSize := s.ecs.Sizes[s.ecs.EnemyBaseID]
				if utils.RectsOverlap(
					pos.X, pos.Y, size.W, size.H,
					basePos.X, basePos.Y, baseSize.W, baseSize.H,
				) {
					s.damageBase(s.ecs.EnemyBaseID, config.HeroShotBaseDamage)
					hit = true
				}
			}
		}

		if hit {
			consumed = append(consumed, id)
		}
	}

	for _, id := range consumed {
		s.ecs.RemoveProjectile(id)
	}
}

// damageUnit снимает здоровье с юнита; убитый юнит может уронить предмет.
func (s *CombatSystem) damageUnit(id types.EntityID, damage int) {
	health := s.ecs.Healths[id]
	health.Value -= damage
	if health.Value > 0 {
		return
	}
	health.Value = 0

	unit := s.ecs.Units[id]
	pos := s.ecs.Positions[id]
	// Элитные роняют всегда, остальные — с шансом 10%.
	if defs.UnitLibrary[unit.Class].AlwaysDrop || s.rng.Float64() < config.DropChance {
		s.dropPickup(pos.X, pos.Y)
	}

	class := unit.Class
	s.ecs.RemoveUnit(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.UnitKilled, Data: class})
}

func (s *CombatSystem) dropPickup(x, y float64) {
	pickupType := s.rng.ChooseWeighted(defs.PickupLoot)
	spawnPickup(s.ecs, x, y, pickupType)
}

func (s *CombatSystem) resolvePickups() {
	heroPos := s.ecs.Positions[s.ecs.HeroID]
	heroSize := s.ecs.Sizes[s.ecs.HeroID]

	var collected []types.EntityID
	for _, id := range s.ecs.PickupOrder {
		pos := s.ecs.Positions[id]
		size := s.ecs.Sizes[id]
		if utils.RectsOverlap(
			pos.X, pos.Y, size.W, size.H,
			heroPos.X, heroPos.Y, heroSize.W, heroSize.H,
		) {
			collected = append(collected, id)
		}
	}

	for _, id := range collected {
		pickupType := s.ecs.Pickups[id].Type
		s.hero.ApplyPickup(pickupType)
		s.ecs.RemovePickup(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PickupCollected, Data: pickupType})
	}
}

// resolveBaseAssaults: юнит, дошедший до чужой базы, подрывается на
// ней — фиксированный урон без снаряда, юнит удаляется.
func (s *CombatSystem) resolveBaseAssaults() {
	playerPos := s.ecs.Positions[s.ecs.PlayerBaseID]
	playerSize := s.ecs.Sizes[s.ecs.PlayerBaseID]
	enemyPos := s.ecs.Positions[s.ecs.EnemyBaseID]

	var reached []types.EntityID
	for _, id := range s.ecs.UnitOrder {
		unit := s.ecs.Units[id]
		pos := s.ecs.Positions[id]
		size := s.ecs.Sizes[id]

		if !unit.Friendly && pos.X < playerPos.X+playerSize.W {
			s.damageBase(s.ecs.PlayerBaseID, config.PlayerBaseRamDamage)
			reached = append(reached, id)
		} else if unit.Friendly && pos.X > enemyPos.X-size.W {
			s.damageBase(s.ecs.EnemyBaseID, config.EnemyBaseRamDamage)
			reached = append(reached, id)
		}
	}

	for _, id := range reached {
		friendly := s.ecs.Units[id].Friendly
		s.ecs.RemoveUnit(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.UnitReachedBase, Data: friendly})
	}
}

func (s *CombatSystem) damageBase(id types.EntityID, damage int) {
	health := s.ecs.Healths[id]
	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}
}
