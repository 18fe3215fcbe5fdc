// internal/defs/units.go
package defs

import "go-base-assault/internal/config"

// UnitLibrary — таблица категорий вражеских юнитов.
// Дружественные юниты используют LightDef с повышенным здоровьем
// (config.FriendlyUnitHP), остальные параметры совпадают.
var UnitLibrary = map[UnitClass]UnitDef{
	UnitLight: {
		Class:      UnitLight,
		Health:     1,
		Size:       config.UnitSize,
		Speed:      1.0,
		FireRate:   45,
		ShotDamage: 1,
	},
	UnitElite: {
		Class:      UnitElite,
		Health:     3,
		Size:       config.UnitSize,
		Speed:      1.0,
		FireRate:   45,
		ShotDamage: 1,
		AlwaysDrop: true,
	},
	UnitHeavy: {
		Class:      UnitHeavy,
		Health:     5,
		Size:       config.HeavyUnitSize,
		Speed:      0.5,
		FireRate:   20,
		ShotDamage: 2, // тяжёлый пулемётчик бьёт вдвое больнее
	},
}
