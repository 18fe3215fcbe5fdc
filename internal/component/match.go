// internal/component/match.go
package component

// MatchPhase — фаза матча
type MatchPhase int

const (
	MatchPlaying MatchPhase = iota
	MatchVictory
	MatchDefeat
)

// Match хранит терминальное состояние матча и счётчик убийств для HUD.
// После выхода из MatchPlaying симуляция больше не продвигается.
type Match struct {
	Phase MatchPhase
	Kills int
}
