// internal/component/hero.go
package component

// Hero хранит состояние аватара игрока. Сущность героя никогда не
// удаляется — при смерти она переставляется к базе.
type Hero struct {
	Direction int // 1: вправо, -1: влево
	Speed     float64

	FireTimer    int
	FireRate     int // текущий темп стрельбы (тики между выстрелами)
	BaseFireRate int
	BoostUntil   float64 // мс игровых часов; 0 — буст не активен

	InvincibleUntil float64 // мс игровых часов
	Jumping         bool
	Crouching       bool
	Healing         bool
	LastHeal        float64 // точка отсчёта интервала лечения

	Coins    int
	Respawns int
}
