// internal/component/pickup.go
package component

import "go-base-assault/internal/defs"

// Pickup — выпавший предмет. Живёт до подбора героем.
type Pickup struct {
	Type defs.PickupType
}
