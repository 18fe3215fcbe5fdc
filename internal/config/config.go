// internal/config/config.go
package config

import "image/color"

const (
	GameWidth  = 800
	GameHeight = 450

	TickRate     = 15 // обновлений симуляции в секунду
	FrameDelayMS = 1000.0 / TickRate
	MaxTickDelta = 3.0  // ограничение delta-фактора после долгого зависания кадра
	MaxDeltaTime = 0.25 // потолок реального кадрового времени, сек

	Scaling = 4 // главный пиксельный масштаб, от него считаются все размеры
	GroundY = GameHeight - 30
	Gravity = 0.5

	// Bases
	PlayerBaseX      = Scaling * 2
	EnemyBaseX       = GameWidth - Scaling*27
	BaseY            = GroundY - Scaling*25
	BaseWidth        = Scaling * 25
	BaseHeight       = Scaling * 25
	PlayerBaseHealth = 100
	EnemyBaseHealth  = 1000

	// Hero
	HeroSize        = Scaling * 8
	HeroCrouchSize  = Scaling * 6
	HeroCrouchY     = GroundY - Scaling*6
	HeroSpeed       = Scaling * 1.5
	HeroJumpImpulse = -Scaling * 5
	HeroMaxHealth   = 5
	HeroFireRate    = 10 // тики между выстрелами
	HeroShotDamage  = 10
	HeroSpawnOffset = 50
	HeroRespawns    = 3

	// Таймеры на игровых часах (мс)
	InvincibilityOnHitMS     = 2000
	InvincibilityOnRespawnMS = 4000
	InvincibilityOnShieldMS  = 5000
	HealIntervalMS           = 1500
	TowerDisableMS           = 5000
	WeaponBoostMS            = 5000

	// Units
	UnitSize          = Scaling * 6
	HeavyUnitSize     = Scaling * 8
	UnitFireThreshold = 200 // дистанция от своей базы, после которой юнит открывает огонь
	FriendlyUnitHP    = 2

	// Projectiles
	ProjectileSpeed  = Scaling * 3
	ProjectileSize   = Scaling
	ProjectileMargin = 10 // запас за границей арены до удаления

	// Pickups
	PickupSize  = Scaling * 4
	PickupPopVY = -5

	// Spawning (в тиках, не во времени)
	EnemySpawnTicks    = 120
	FriendlySpawnTicks = 300
	HeavySpawnChance   = 0.1
	EliteSpawnChance   = 0.2 // кумулятивно: 0.1..0.3

	// Tower fire
	TowerFireChance     = 0.01
	PlayerTowerDamage   = 10
	EnemyTowerDamage    = 1
	PlayerBaseRamDamage = 10 // урон от вражеского юнита, дошедшего до базы
	EnemyBaseRamDamage  = 20 // урон от дружественного юнита
	HeroShotBaseDamage  = 1  // урон базе от снаряда героя

	DropChance = 0.1 // шанс дропа с обычного юнита; элитные роняют всегда
)

var (
	SkyColor          = color.RGBA{135, 206, 235, 255}
	MountainFarColor  = color.RGBA{30, 60, 40, 255}
	MountainNearColor = color.RGBA{60, 90, 70, 255}
	GroundColor       = color.RGBA{100, 70, 40, 255}
	GrassColor        = color.RGBA{180, 150, 70, 255}

	BaseColor         = color.RGBA{100, 100, 100, 255}
	BaseShadeColor    = color.RGBA{120, 120, 120, 255}
	BaseWindowColor   = color.RGBA{0, 0, 0, 255}
	RecoveryZoneColor = color.RGBA{0, 255, 0, 150}
	TowerColor        = color.RGBA{60, 60, 60, 255}
	TowerOnColor      = color.RGBA{255, 0, 0, 255}
	TowerOffColor     = color.RGBA{128, 128, 128, 255}

	HeroColor       = color.RGBA{50, 50, 50, 255}
	HeroHelmetColor = color.RGBA{170, 80, 0, 255}
	HeroFlashColor  = color.RGBA{255, 136, 136, 255}
	HeroHealColor   = color.RGBA{0, 100, 0, 255}

	FriendlyUnitColor = color.RGBA{10, 10, 150, 255}
	EnemyUnitColor    = color.RGBA{150, 10, 10, 255}
	EliteUnitColor    = color.RGBA{200, 50, 200, 255}
	HeavyUnitColor    = color.RGBA{100, 100, 100, 255}

	FriendlyShotColor = color.RGBA{255, 200, 0, 255}
	EnemyShotColor    = color.RGBA{255, 0, 0, 255}

	CoinPickupColor   = color.RGBA{255, 255, 0, 255}
	HealthPickupColor = color.RGBA{0, 200, 0, 255}
	WeaponPickupColor = color.RGBA{0, 0, 255, 255}
	ShieldPickupColor = color.RGBA{0, 255, 255, 255}

	HUDBackColor   = color.RGBA{50, 50, 50, 200}
	HUDBorderColor = color.RGBA{255, 255, 255, 255}
	HPBarBackColor = color.RGBA{150, 0, 0, 255}
	HPBarFillColor = color.RGBA{255, 170, 0, 255}
	CoinTextColor  = color.RGBA{255, 255, 0, 255}
	LivesTextColor = color.RGBA{0, 255, 255, 255}
	AllyTextColor  = color.RGBA{0, 200, 0, 255}
	FoeTextColor   = color.RGBA{255, 100, 100, 255}
	WarnTextColor  = color.RGBA{255, 60, 60, 255}
)
