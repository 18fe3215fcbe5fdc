// internal/system/hero_test.go
package system

import (
	"testing"

	"go-base-assault/internal/component"
	"go-base-assault/internal/config"
	"go-base-assault/internal/defs"
	"go-base-assault/internal/event"
	"go-base-assault/internal/input"
)

func newHeroFixture() (*HeroSystem, *countingListener) {
	ecs := newTestECS()
	dispatcher := event.NewDispatcher()
	listener := newCountingListener()
	dispatcher.Subscribe(event.HeroRespawned, listener)
	dispatcher.Subscribe(event.MatchEnded, listener)
	return NewHeroSystem(ecs, dispatcher), listener
}

func TestHeroMovesAndClampsToArena(t *testing.T) {
	s, _ := newHeroFixture()
	pos := s.ecs.Positions[s.ecs.HeroID]
	startX := pos.X

	s.Update(1, input.Snapshot{Right: true})
	if pos.X != startX+config.HeroSpeed {
		t.Errorf("после шага вправо X = %v, ожидали %v", pos.X, startX+config.HeroSpeed)
	}

	pos.X = config.GameWidth - 1
	s.Update(1, input.Snapshot{Right: true})
	size := s.ecs.Sizes[s.ecs.HeroID]
	if pos.X != config.GameWidth-size.W {
		t.Errorf("герой вышел за правую границу: X = %v", pos.X)
	}

	pos.X = 1
	s.Update(1, input.Snapshot{Left: true})
	if pos.X != 0 {
		t.Errorf("герой вышел за левую границу: X = %v", pos.X)
	}
}

func TestHeroJumpAndLanding(t *testing.T) {
	s, _ := newHeroFixture()
	hero := s.ecs.Heroes[s.ecs.HeroID]
	pos := s.ecs.Positions[s.ecs.HeroID]
	groundLevel := float64(config.GroundY - config.HeroSize)

	s.Update(1, input.Snapshot{Jump: true})
	if !hero.Jumping {
		t.Fatal("после нажатия прыжка Jumping должен быть true")
	}

	s.Update(1, input.Snapshot{})
	if pos.Y >= groundLevel {
		t.Errorf("герой не поднялся: Y = %v, земля на %v", pos.Y, groundLevel)
	}

	// Повторный прыжок в воздухе игнорируется.
	vy := s.ecs.Velocities[s.ecs.HeroID].VY
	s.Update(1, input.Snapshot{Jump: true})
	if s.ecs.Velocities[s.ecs.HeroID].VY == config.HeroJumpImpulse && vy != config.HeroJumpImpulse {
		t.Error("двойной прыжок не должен перезапускать импульс")
	}

	for i := 0; i < 200; i++ {
		s.Update(1, input.Snapshot{})
	}
	if pos.Y != groundLevel || hero.Jumping {
		t.Errorf("герой не приземлился: Y = %v, Jumping = %v", pos.Y, hero.Jumping)
	}
}

func TestHeroCrouchShrinksAndPins(t *testing.T) {
	s, _ := newHeroFixture()
	pos := s.ecs.Positions[s.ecs.HeroID]
	size := s.ecs.Sizes[s.ecs.HeroID]

	s.Update(1, input.Snapshot{Crouch: true})
	if size.W != config.HeroCrouchSize || size.H != config.HeroCrouchSize {
		t.Errorf("в приседе размер %vx%v, ожидали %v", size.W, size.H, config.HeroCrouchSize)
	}
	if pos.Y != config.HeroCrouchY {
		t.Errorf("в приседе Y = %v, ожидали %v", pos.Y, config.HeroCrouchY)
	}

	s.Update(1, input.Snapshot{})
	if size.W != config.HeroSize || size.H != config.HeroSize {
		t.Errorf("после приседа размер не восстановился: %vx%v", size.W, size.H)
	}
}

func TestHeroFireCooldown(t *testing.T) {
	s, _ := newHeroFixture()

	for i := 0; i < 21; i++ {
		s.Update(1, input.Snapshot{Fire: true})
	}
	// Выстрелы на тиках 1, 11 и 21.
	if got := len(s.ecs.ProjectileOrder); got != 3 {
		t.Errorf("за 21 тик огня вышло %d снарядов, ожидали 3", got)
	}

	proj := s.ecs.Projectiles[s.ecs.ProjectileOrder[0]]
	if !proj.Friendly || !proj.FromHero {
		t.Error("снаряд героя должен быть дружественным и помеченным FromHero")
	}
	if proj.Damage != config.HeroShotDamage {
		t.Errorf("урон снаряда %d, ожидали %d", proj.Damage, config.HeroShotDamage)
	}
}

func TestHeroHealingOnBase(t *testing.T) {
	s, _ := newHeroFixture()
	hero := s.ecs.Heroes[s.ecs.HeroID]
	health := s.ecs.Healths[s.ecs.HeroID]
	health.Value = 3

	s.Update(1, input.Snapshot{})
	if !hero.Healing {
		t.Fatal("герой в зоне без движения должен лечиться")
	}
	if health.Value != 3 {
		t.Fatalf("лечение сработало раньше интервала: hp = %d", health.Value)
	}

	s.ecs.ClockMS = config.HealIntervalMS
	s.Update(1, input.Snapshot{})
	if health.Value != 4 {
		t.Errorf("после %vмс hp = %d, ожидали 4", config.HealIntervalMS, health.Value)
	}

	s.ecs.ClockMS = 2 * config.HealIntervalMS
	s.Update(1, input.Snapshot{})
	if health.Value != 5 {
		t.Errorf("после второго интервала hp = %d, ожидали 5", health.Value)
	}

	// На полном здоровье лечение не идёт.
	s.ecs.ClockMS = 3 * config.HealIntervalMS
	s.Update(1, input.Snapshot{})
	if hero.Healing {
		t.Error("на полном здоровье Healing должен быть false")
	}
}

func TestHeroHealingResetOnMovement(t *testing.T) {
	s, _ := newHeroFixture()
	hero := s.ecs.Heroes[s.ecs.HeroID]
	health := s.ecs.Healths[s.ecs.HeroID]
	health.Value = 1

	s.Update(1, input.Snapshot{})
	s.ecs.ClockMS = 1000
	// Движение сбрасывает накопленный прогресс.
	s.Update(1, input.Snapshot{Left: true})
	if hero.Healing {
		t.Error("движение должно прерывать лечение")
	}

	s.ecs.Positions[s.ecs.HeroID].X = config.PlayerBaseX + config.HeroSpawnOffset
	s.ecs.ClockMS = 1000 + config.HealIntervalMS - 1
	s.Update(1, input.Snapshot{})
	if health.Value != 1 {
		t.Errorf("прогресс лечения пережил сброс: hp = %d", health.Value)
	}
}

func TestHeroHitAndInvincibilityWindow(t *testing.T) {
	s, _ := newHeroFixture()
	hero := s.ecs.Heroes[s.ecs.HeroID]
	health := s.ecs.Healths[s.ecs.HeroID]

	if killed := s.Hit(1); killed {
		t.Fatal("несмертельное попадание вернуло true")
	}
	if health.Value != config.HeroMaxHealth-1 {
		t.Fatalf("hp = %d после попадания", health.Value)
	}
	if hero.InvincibleUntil != config.InvincibilityOnHitMS {
		t.Errorf("окно неуязвимости до %v, ожидали %v", hero.InvincibleUntil, float64(config.InvincibilityOnHitMS))
	}

	// Внутри окна урон игнорируется полностью.
	s.Hit(100)
	if health.Value != config.HeroMaxHealth-1 {
		t.Errorf("урон прошёл сквозь неуязвимость: hp = %d", health.Value)
	}

	s.ecs.ClockMS = config.InvincibilityOnHitMS
	s.Hit(1)
	if health.Value != config.HeroMaxHealth-2 {
		t.Errorf("после истечения окна урон должен проходить: hp = %d", health.Value)
	}
}

func TestHeroDeathRespawnPenalty(t *testing.T) {
	s, listener := newHeroFixture()
	hero := s.ecs.Heroes[s.ecs.HeroID]
	health := s.ecs.Healths[s.ecs.HeroID]
	pos := s.ecs.Positions[s.ecs.HeroID]
	base := s.ecs.Bases[s.ecs.PlayerBaseID]

	hero.Coins = 70
	health.Value = 1
	pos.X = 500
	s.ecs.ClockMS = 10000

	if killed := s.Hit(10); !killed {
		t.Fatal("смертельное попадание должно вернуть true")
	}

	if hero.Respawns != config.HeroRespawns-1 {
		t.Errorf("Respawns = %d, ожидали %d", hero.Respawns, config.HeroRespawns-1)
	}
	if hero.Coins != 0 {
		t.Errorf("монеты не сгорели: %d", hero.Coins)
	}
	if base.TowerEnabled || base.TowerDisabledAt != 10000 {
		t.Errorf("башня должна отключиться в момент смерти: enabled=%v at=%v", base.TowerEnabled, base.TowerDisabledAt)
	}
	if health.Value != config.HeroMaxHealth {
		t.Errorf("после возрождения hp = %d", health.Value)
	}
	if pos.X != config.PlayerBaseX+config.HeroSpawnOffset {
		t.Errorf("герой не вернулся к базе: X = %v", pos.X)
	}
	if hero.InvincibleUntil != 10000+config.InvincibilityOnRespawnMS {
		t.Errorf("окно после возрождения до %v", hero.InvincibleUntil)
	}
	if listener.counts[event.HeroRespawned] != 1 {
		t.Errorf("HeroRespawned отправлен %d раз", listener.counts[event.HeroRespawned])
	}
}

func TestHeroFinalDeathEndsMatch(t *testing.T) {
	s, listener := newHeroFixture()
	hero := s.ecs.Heroes[s.ecs.HeroID]
	hero.Respawns = 0
	s.ecs.Healths[s.ecs.HeroID].Value = 1

	s.Hit(1)

	if s.ecs.Match.Phase != component.MatchDefeat {
		t.Errorf("фаза матча %v, ожидали поражение", s.ecs.Match.Phase)
	}
	if listener.counts[event.MatchEnded] != 1 {
		t.Errorf("MatchEnded отправлен %d раз", listener.counts[event.MatchEnded])
	}
	if listener.counts[event.HeroRespawned] != 0 {
		t.Error("после финальной смерти героя не возрождают")
	}
}

func TestHeroWeaponBoostExpires(t *testing.T) {
	s, _ := newHeroFixture()
	hero := s.ecs.Heroes[s.ecs.HeroID]

	s.ApplyPickup(defs.PickupWeapon)
	if hero.FireRate != config.HeroFireRate/2 {
		t.Fatalf("буст не применился: FireRate = %d", hero.FireRate)
	}
	if hero.BoostUntil != config.WeaponBoostMS {
		t.Fatalf("срок буста %v, ожидали %v", hero.BoostUntil, float64(config.WeaponBoostMS))
	}

	s.ecs.ClockMS = config.WeaponBoostMS - 1
	s.Update(1, input.Snapshot{})
	if hero.FireRate != config.HeroFireRate/2 {
		t.Error("буст истёк раньше срока")
	}

	s.ecs.ClockMS = config.WeaponBoostMS
	s.Update(1, input.Snapshot{})
	if hero.FireRate != config.HeroFireRate || hero.BoostUntil != 0 {
		t.Errorf("буст не снялся: FireRate = %d, BoostUntil = %v", hero.FireRate, hero.BoostUntil)
	}
}

func TestHeroApplyPickupEffects(t *testing.T) {
	s, _ := newHeroFixture()
	hero := s.ecs.Heroes[s.ecs.HeroID]
	health := s.ecs.Healths[s.ecs.HeroID]

	s.ApplyPickup(defs.PickupCoin)
	if hero.Coins != 10 {
		t.Errorf("монеты = %d, ожидали 10", hero.Coins)
	}

	// Аптечка на полном здоровье пропадает впустую.
	s.ApplyPickup(defs.PickupHealth)
	if health.Value != config.HeroMaxHealth {
		t.Errorf("hp вышло за максимум: %d", health.Value)
	}

	health.Value = 2
	s.ApplyPickup(defs.PickupHealth)
	if health.Value != 3 {
		t.Errorf("аптечка: hp = %d, ожидали 3", health.Value)
	}

	s.ecs.ClockMS = 100
	s.ApplyPickup(defs.PickupShield)
	if hero.InvincibleUntil != 100+config.InvincibilityOnShieldMS {
		t.Errorf("щит: окно до %v", hero.InvincibleUntil)
	}
}
