// internal/defs/loot_tables.go
package defs

// LootEntry представляет одну запись в таблице выпадения.
// Weight - её "вес" или относительный шанс выпадения.
type LootEntry struct {
	Type   PickupType
	Weight int
}

// PickupLoot — распределение типов предметов при дропе.
// Веса воспроизводят кумулятивную шкалу 60/90/98/100.
var PickupLoot = []LootEntry{
	{Type: PickupCoin, Weight: 60},
	{Type: PickupHealth, Weight: 30},
	{Type: PickupWeapon, Weight: 8},
	{Type: PickupShield, Weight: 2},
}
