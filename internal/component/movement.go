// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — вертикальная скорость; горизонтальное движение
// сущности считают сами из направления и скорости хода.
type Velocity struct {
	VY float64
}

// Size — габариты ограничивающего прямоугольника
type Size struct {
	W, H float64
}
