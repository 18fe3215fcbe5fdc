// internal/event/types.go
package event

const (
	UnitKilled      EventType = "UnitKilled"      // Юнит уничтожен снарядом
	UnitReachedBase EventType = "UnitReachedBase" // Юнит дошёл до чужой базы
	PickupCollected EventType = "PickupCollected" // Герой подобрал предмет
	HeroRespawned   EventType = "HeroRespawned"   // Герой возродился у базы
	MatchEnded      EventType = "MatchEnded"      // Матч завершён (победа/поражение)
)
