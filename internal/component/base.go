// internal/component/base.go
package component

// Base — стационарная база. У базы игрока прямоугольник границ
// одновременно является зоной восстановления героя.
type Base struct {
	IsPlayer        bool
	TowerEnabled    bool
	TowerDisabledAt float64 // мс игровых часов на момент отключения башни
}
