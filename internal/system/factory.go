// internal/system/factory.go
package system

import (
	"go-base-assault/internal/component"
	"go-base-assault/internal/config"
	"go-base-assault/internal/defs"
	"go-base-assault/internal/entity"
	"go-base-assault/internal/types"
	"image/color"
)

// Фабрики сущностей. Снаряды создают герой, юниты и башни,
// поэтому хелперы живут на уровне пакета систем.

func spawnProjectile(ecs *entity.ECS, x, y float64, direction, damage int, friendly, fromHero bool) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Sizes[id] = &component.Size{W: config.ProjectileSize, H: config.ProjectileSize}
	ecs.Projectiles[id] = &component.Projectile{
		Direction: direction,
		Speed:     config.ProjectileSpeed,
		Damage:    damage,
		Friendly:  friendly,
		FromHero:  fromHero,
	}
	shotColor := config.EnemyShotColor
	if friendly {
		shotColor = config.FriendlyShotColor
	}
	ecs.Renderables[id] = &component.Renderable{Color: shotColor}
	ecs.ProjectileOrder = append(ecs.ProjectileOrder, id)
	return id
}

func spawnUnit(ecs *entity.ECS, def defs.UnitDef, friendly bool, hp int, x float64) types.EntityID {
	direction := -1
	unitColor := unitColorFor(def.Class, friendly)
	if friendly {
		direction = 1
	}

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: config.GroundY - def.Size}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Sizes[id] = &component.Size{W: def.Size, H: def.Size}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Units[id] = &component.Unit{
		Class:         def.Class,
		Friendly:      friendly,
		MoveDirection: direction,
		Speed:         def.Speed,
		FireRate:      def.FireRate,
		ShotDamage:    def.ShotDamage,
	}
	ecs.Renderables[id] = &component.Renderable{Color: unitColor}
	ecs.UnitOrder = append(ecs.UnitOrder, id)
	return id
}

func unitColorFor(class defs.UnitClass, friendly bool) color.RGBA {
	switch {
	case class == defs.UnitElite:
		return config.EliteUnitColor
	case class == defs.UnitHeavy:
		return config.HeavyUnitColor
	case friendly:
		return config.FriendlyUnitColor
	default:
		return config.EnemyUnitColor
	}
}

func spawnPickup(ecs *entity.ECS, x, y float64, pickupType defs.PickupType) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	// Предмет подпрыгивает при выпадении и дальше падает под гравитацией.
	ecs.Velocities[id] = &component.Velocity{VY: config.PickupPopVY}
	ecs.Sizes[id] = &component.Size{W: config.PickupSize, H: config.PickupSize}
	ecs.Pickups[id] = &component.Pickup{Type: pickupType}
	ecs.Renderables[id] = &component.Renderable{Color: pickupColorFor(pickupType)}
	ecs.PickupOrder = append(ecs.PickupOrder, id)
	return id
}

func pickupColorFor(t defs.PickupType) color.RGBA {
	switch t {
	case defs.PickupHealth:
		return config.HealthPickupColor
	case defs.PickupWeapon:
		return config.WeaponPickupColor
	case defs.PickupShield:
		return config.ShieldPickupColor
	default:
		return config.CoinPickupColor
	}
}
