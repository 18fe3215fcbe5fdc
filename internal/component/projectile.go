// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд.
// FromHero — явная метка происхождения: только выстрелы героя
// дополнительно точат вражескую базу (раньше это выводилось из
// величины урона, что ломалось бы для любого оружия с уроном 10).
type Projectile struct {
	Direction int
	Speed     float64
	Damage    int
	Friendly  bool
	FromHero  bool
}
