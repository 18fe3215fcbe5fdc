// internal/app/game_test.go
package app

import (
	"math"
	"testing"

	"go-base-assault/internal/component"
	"go-base-assault/internal/config"
	"go-base-assault/internal/event"
	"go-base-assault/internal/input"
)

type countingListener struct {
	counts map[event.EventType]int
}

func newCountingListener() *countingListener {
	return &countingListener{counts: make(map[event.EventType]int)}
}

func (l *countingListener) OnEvent(e event.Event) {
	l.counts[e.Type]++
}

func TestNewGameInitialState(t *testing.T) {
	g := NewGame(1)
	ecs := g.ECS

	if ecs.Match.Phase != component.MatchPlaying {
		t.Error("матч должен стартовать в фазе игры")
	}
	if got := ecs.Healths[ecs.PlayerBaseID].Value; got != config.PlayerBaseHealth {
		t.Errorf("база игрока: hp = %d", got)
	}
	if got := ecs.Healths[ecs.EnemyBaseID].Value; got != config.EnemyBaseHealth {
		t.Errorf("вражеская база: hp = %d", got)
	}
	if !ecs.Bases[ecs.PlayerBaseID].IsPlayer || ecs.Bases[ecs.EnemyBaseID].IsPlayer {
		t.Error("перепутаны стороны баз")
	}

	hero := ecs.Heroes[ecs.HeroID]
	if hero.Respawns != config.HeroRespawns || hero.FireRate != config.HeroFireRate {
		t.Errorf("герой: Respawns=%d FireRate=%d", hero.Respawns, hero.FireRate)
	}
	if got := ecs.Positions[ecs.HeroID].X; got != config.PlayerBaseX+config.HeroSpawnOffset {
		t.Errorf("герой стартует у базы: X = %v", got)
	}
}

func TestStepAdvancesSingleClock(t *testing.T) {
	g := NewGame(1)

	g.Step(1, input.Snapshot{})
	if g.ECS.ClockMS != config.FrameDelayMS {
		t.Errorf("после одного тика часы = %v, ожидали %v", g.ECS.ClockMS, float64(config.FrameDelayMS))
	}

	g.Step(2, input.Snapshot{})
	if g.ECS.ClockMS != 3*config.FrameDelayMS {
		t.Errorf("delta-фактор должен масштабировать часы: %v", g.ECS.ClockMS)
	}
}

func TestVictoryDeclaredOnceAndFreezes(t *testing.T) {
	g := NewGame(1)
	listener := newCountingListener()
	g.EventDispatcher.Subscribe(event.MatchEnded, listener)

	g.ECS.Healths[g.ECS.EnemyBaseID].Value = 0
	g.Step(1, input.Snapshot{})

	if g.ECS.Match.Phase != component.MatchVictory {
		t.Fatalf("фаза = %v, ожидали победу", g.ECS.Match.Phase)
	}
	if listener.counts[event.MatchEnded] != 1 {
		t.Fatalf("MatchEnded отправлен %d раз", listener.counts[event.MatchEnded])
	}

	// Терминальное состояние заморожено: часы стоят, событие не повторяется.
	clock := g.ECS.ClockMS
	g.Step(1, input.Snapshot{})
	g.Step(1, input.Snapshot{})
	if g.ECS.ClockMS != clock {
		t.Error("после конца матча симуляция не должна продвигаться")
	}
	if listener.counts[event.MatchEnded] != 1 {
		t.Errorf("MatchEnded повторился: %d", listener.counts[event.MatchEnded])
	}
}

func TestDefeatWhenPlayerBaseFalls(t *testing.T) {
	g := NewGame(1)
	g.ECS.Healths[g.ECS.PlayerBaseID].Value = 0
	g.Step(1, input.Snapshot{})

	if g.ECS.Match.Phase != component.MatchDefeat {
		t.Errorf("фаза = %v, ожидали поражение", g.ECS.Match.Phase)
	}
}

func TestDefeatWhenRespawnsExhausted(t *testing.T) {
	g := NewGame(1)
	listener := newCountingListener()
	g.EventDispatcher.Subscribe(event.MatchEnded, listener)

	g.ECS.Heroes[g.ECS.HeroID].Respawns = 0
	g.ECS.Healths[g.ECS.HeroID].Value = 1
	g.HeroSystem.Hit(1)

	if g.ECS.Match.Phase != component.MatchDefeat {
		t.Fatalf("фаза = %v, ожидали поражение", g.ECS.Match.Phase)
	}
	if listener.counts[event.MatchEnded] != 1 {
		t.Errorf("MatchEnded отправлен %d раз", listener.counts[event.MatchEnded])
	}

	// Следующий тик уже не выполняется.
	g.Step(1, input.Snapshot{})
	if g.ECS.ClockMS != 0 {
		t.Error("после поражения тики не идут")
	}
}

func TestKillCounterFedByEvents(t *testing.T) {
	g := NewGame(1)

	g.EventDispatcher.Dispatch(event.Event{Type: event.UnitKilled})
	g.EventDispatcher.Dispatch(event.Event{Type: event.UnitKilled})
	if g.ECS.Match.Kills != 2 {
		t.Errorf("счётчик убийств = %d, ожидали 2", g.ECS.Match.Kills)
	}
}

func TestUpdateAccumulatesToFixedRate(t *testing.T) {
	g := NewGame(1)

	// Три коротких кадра не добирают до номинального интервала.
	for i := 0; i < 3; i++ {
		g.Update(0.01, input.Snapshot{})
	}
	if g.ECS.ClockMS != 0 {
		t.Fatalf("тик выполнился раньше времени: часы = %v", g.ECS.ClockMS)
	}

	g.Update(0.05, input.Snapshot{})
	if math.Abs(g.ECS.ClockMS-80) > 1e-9 {
		t.Errorf("после 80мс реального времени часы = %v, ожидали 80", g.ECS.ClockMS)
	}
	if g.accumMS != 0 {
		t.Errorf("аккумулятор не сброшен: %v", g.accumMS)
	}
}

func TestUpdateClampsDeltaAfterStall(t *testing.T) {
	g := NewGame(1)

	// После долгого зависания догоняем не больше чем на MaxTickDelta тиков.
	g.Update(10, input.Snapshot{})
	want := config.MaxTickDelta * config.FrameDelayMS
	if math.Abs(g.ECS.ClockMS-want) > 1e-9 {
		t.Errorf("часы = %v, ожидали %v", g.ECS.ClockMS, want)
	}
}

func TestEnemyPressureEventuallyReachesPlayerBase(t *testing.T) {
	// Интеграционный прогон: без ввода волны врагов рано или поздно
	// доходят до базы игрока и снимают ей здоровье.
	g := NewGame(3)
	start := g.ECS.Healths[g.ECS.PlayerBaseID].Value

	for i := 0; i < 3000 && g.ECS.Match.Phase == component.MatchPlaying; i++ {
		g.Step(1, input.Snapshot{})
	}

	if g.ECS.Healths[g.ECS.PlayerBaseID].Value >= start {
		t.Error("за 3000 тиков вражеские юниты должны были дойти до базы")
	}
}
