// component/health.go
package component

// Health — компонент здоровья. Инвариант: 0 <= Value <= Max.
type Health struct {
	Value int
	Max   int
}
