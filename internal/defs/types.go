// internal/defs/types.go
package defs

// UnitClass — категория боевого юнита.
type UnitClass int

const (
	UnitLight UnitClass = iota
	UnitElite
	UnitHeavy
)

func (c UnitClass) String() string {
	switch c {
	case UnitElite:
		return "elite"
	case UnitHeavy:
		return "heavy"
	default:
		return "light"
	}
}

// PickupType — тип выпадающего предмета.
type PickupType int

const (
	PickupCoin PickupType = iota
	PickupHealth
	PickupWeapon
	PickupShield
)

func (t PickupType) String() string {
	switch t {
	case PickupHealth:
		return "HEALTH"
	case PickupWeapon:
		return "WEAPON"
	case PickupShield:
		return "SHIELD"
	default:
		return "COIN"
	}
}

// UnitDef описывает параметры категории юнита, фиксируемые при создании.
type UnitDef struct {
	Class      UnitClass
	Health     int
	Size       float64
	Speed      float64
	FireRate   int // тики между выстрелами
	ShotDamage int
	AlwaysDrop bool // элитные юниты всегда роняют предмет
}
