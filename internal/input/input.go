// internal/input/input.go
package input

import "github.com/hajimehoshi/ebiten/v2"

// Snapshot — неизменяемый срез состояния управления на один тик.
// Симуляция читает только его, поэтому тик не может увидеть
// наполовину обновлённую клавиатуру.
type Snapshot struct {
	Left   bool
	Right  bool
	Jump   bool
	Crouch bool
	Fire   bool
}

// Moving сообщает, есть ли горизонтальный ввод (прерывает лечение).
func (s Snapshot) Moving() bool {
	return s.Left || s.Right
}

// ReadKeyboard снимает срез с клавиатуры ebiten в начале тика.
// A/D и стрелки — движение, W/вверх — прыжок, S/вниз — присед, Space — огонь.
func ReadKeyboard() Snapshot {
	return Snapshot{
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:   ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Crouch: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Fire:   ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}
