// internal/component/unit.go
package component

import "go-base-assault/internal/defs"

// Unit — автономный боевой юнит, марширующий к чужой базе.
type Unit struct {
	Class         defs.UnitClass
	Friendly      bool
	MoveDirection int // 1 для дружественных, -1 для вражеских
	Speed         float64
	FireRate      int
	FireTimer     int
	ShotDamage    int
}
