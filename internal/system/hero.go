// internal/system/hero.go
package system

import (
	"go-base-assault/internal/component"
	"go-base-assault/internal/config"
	"go-base-assault/internal/defs"
	"go-base-assault/internal/entity"
	"go-base-assault/internal/event"
	"go-base-assault/internal/input"
	"go-base-assault/internal/utils"
)

// HeroSystem управляет машиной состояний героя: движение, прыжок,
// присед, стрельба, окно неуязвимости, лечение на базе и смерть
// со штрафом за возрождение.
type HeroSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewHeroSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *HeroSystem {
	return &HeroSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *HeroSystem) Update(delta float64, in input.Snapshot) {
	id := s.ecs.HeroID
	hero := s.ecs.Heroes[id]
	pos := s.ecs.Positions[id]
	vel := s.ecs.Velocities[id]
	size := s.ecs.Sizes[id]
	now := s.ecs.ClockMS

	// Горизонтальное движение
	if in.Left {
		pos.X -= hero.Speed * delta
		hero.Direction = -1
	}
	if in.Right {
		pos.X += hero.Speed * delta
		hero.Direction = 1
	}
	pos.X = utils.Clamp(pos.X, 0, config.GameWidth-size.W)

	// Гравитация и прыжок
	vel.VY += config.Gravity * delta
	pos.Y += vel.VY * delta
	if pos.Y >= config.GroundY-size.H {
		pos.Y = config.GroundY - size.H
		vel.VY = 0
		hero.Jumping = false
	}
	if in.Jump && !hero.Jumping {
		vel.VY = config.HeroJumpImpulse
		hero.Jumping = true
	}

	// Присед пересчитывается каждый тик из текущего ввода, не переключается.
	hero.Crouching = in.Crouch
	if hero.Crouching {
		pos.Y = config.HeroCrouchY
		size.W = config.HeroCrouchSize
		size.H = config.HeroCrouchSize
	} else {
		size.W = config.HeroSize
		size.H = config.HeroSize
	}

	// Стрельба. Кулдаун считается в тиках, не во времени.
	if in.Fire && hero.FireTimer <= 0 {
		s.fire(hero, pos, size)
		hero.FireTimer = hero.FireRate
		hero.Healing = false
	}
	if hero.FireTimer > 0 {
		hero.FireTimer--
	}

	// Истечение буста оружия
	if hero.BoostUntil > 0 && now >= hero.BoostUntil {
		hero.FireRate = hero.BaseFireRate
		hero.BoostUntil = 0
	}

	s.updateHealing(hero, pos, size, in, now)
}

func (s *HeroSystem) fire(hero *component.Hero, pos *component.Position, size *component.Size) {
	x := pos.X
	if hero.Direction == 1 {
		x += size.W
	}
	spawnProjectile(s.ecs, x, pos.Y+size.H*3/4, hero.Direction, config.HeroShotDamage, true, true)
}

// updateHealing: +1 hp за каждые полные 1500 мс непрерывной годности.
// Любой негодный тик сбрасывает точку отсчёта — частичный прогресс
// не переносится.
func (s *HeroSystem) updateHealing(hero *component.Hero, pos *component.Position, size *component.Size, in input.Snapshot, now float64) {
	basePos := s.ecs.Positions[s.ecs.PlayerBaseID]
	baseSize := s.ecs.Sizes[s.ecs.PlayerBaseID]
	health := s.ecs.Healths[s.ecs.HeroID]

	insideZone := utils.RectsOverlap(
		pos.X, pos.Y, size.W, size.H,
		basePos.X, basePos.Y, baseSize.W, baseSize.H,
	)

	if insideZone && !in.Moving() && health.Value < health.Max {
		hero.Healing = true
		if now-hero.LastHeal >= config.HealIntervalMS {
			health.Value++
			hero.LastHeal = now
		}
	} else {
		hero.Healing = false
		hero.LastHeal = now
	}
}

// Hit применяет урон к герою. Внутри активного окна неуязвимости урон
// полностью игнорируется. Возвращает true, если попадание стало смертельным.
func (s *HeroSystem) Hit(damage int) bool {
	hero := s.ecs.Heroes[s.ecs.HeroID]
	health := s.ecs.Healths[s.ecs.HeroID]
	now := s.ecs.ClockMS

	if now < hero.InvincibleUntil {
		return false
	}

	health.Value -= damage
	hero.InvincibleUntil = now + config.InvincibilityOnHitMS
	if health.Value <= 0 {
		health.Value = 0
		s.die(hero, health, now)
		return true
	}
	return false
}

func (s *HeroSystem) die(hero *component.Hero, health *component.Health, now float64) {
	hero.Respawns--
	if hero.Respawns < 0 {
		// Возрождения кончились — матч проигран, героя больше не поднимаем.
		s.ecs.Match.Phase = component.MatchDefeat
		s.eventDispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: component.MatchDefeat})
		return
	}

	// Штраф за возрождение: монеты сгорают, башня своей базы глохнет.
	hero.Coins = 0
	base := s.ecs.Bases[s.ecs.PlayerBaseID]
	base.TowerEnabled = false
	base.TowerDisabledAt = now

	health.Value = health.Max
	pos := s.ecs.Positions[s.ecs.HeroID]
	vel := s.ecs.Velocities[s.ecs.HeroID]
	size := s.ecs.Sizes[s.ecs.HeroID]
	basePos := s.ecs.Positions[s.ecs.PlayerBaseID]
	pos.X = basePos.X + config.HeroSpawnOffset
	pos.Y = config.GroundY - config.HeroSize
	vel.VY = 0
	size.W = config.HeroSize
	size.H = config.HeroSize
	hero.InvincibleUntil = now + config.InvincibilityOnRespawnMS

	s.eventDispatcher.Dispatch(event.Event{Type: event.HeroRespawned})
}

// ApplyPickup применяет эффект подобранного предмета.
func (s *HeroSystem) ApplyPickup(pickupType defs.PickupType) {
	hero := s.ecs.Heroes[s.ecs.HeroID]
	health := s.ecs.Healths[s.ecs.HeroID]
	now := s.ecs.ClockMS

	switch pickupType {
	case defs.PickupCoin:
		hero.Coins += 10
	case defs.PickupHealth:
		if health.Value < health.Max {
			health.Value++
		}
	case defs.PickupWeapon:
		// Временный буст: вдвое быстрее, срок хранится на игровых часах,
		// никакого отложенного колбэка.
		hero.FireRate = hero.BaseFireRate / 2
		hero.BoostUntil = now + config.WeaponBoostMS
	case defs.PickupShield:
		hero.InvincibleUntil = now + config.InvincibilityOnShieldMS
	}
}
