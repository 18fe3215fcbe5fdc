// internal/system/spawn.go
package system

import (
	"go-base-assault/internal/config"
	"go-base-assault/internal/defs"
	"go-base-assault/internal/entity"
	"go-base-assault/internal/utils"
)

// SpawnSystem создаёт юнитов по двум независимым счётчикам тиков.
// Счётчики намеренно кадровые, а не временные — это сохраняет темп
// волн при просадках кадра.
type SpawnSystem struct {
	ecs           *entity.ECS
	rng           *utils.PRNGService
	enemyTimer    int
	friendlyTimer int
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{ecs: ecs, rng: rng}
}

func (s *SpawnSystem) Update() {
	s.enemyTimer++
	if s.enemyTimer >= config.EnemySpawnTicks {
		s.enemyTimer = 0
		s.spawnEnemy()
	}

	s.friendlyTimer++
	if s.friendlyTimer >= config.FriendlySpawnTicks {
		s.friendlyTimer = 0
		s.spawnFriendly()
	}
}

// spawnEnemy выбирает категорию броском: 10% тяжёлый, следующие 20%
// элитный, остальные 70% лёгкий.
func (s *SpawnSystem) spawnEnemy() {
	roll := s.rng.Float64()
	var def defs.UnitDef
	switch {
	case roll < config.HeavySpawnChance:
		def = defs.UnitLibrary[defs.UnitHeavy]
	case roll < config.HeavySpawnChance+config.EliteSpawnChance:
		def = defs.UnitLibrary[defs.UnitElite]
	default:
		def = defs.UnitLibrary[defs.UnitLight]
	}

	x := s.ecs.Positions[s.ecs.EnemyBaseID].X - config.Scaling*8
	spawnUnit(s.ecs, def, false, def.Health, x)
}

// spawnFriendly всегда создаёт лёгкого юнита с усиленным здоровьем.
func (s *SpawnSystem) spawnFriendly() {
	def := defs.UnitLibrary[defs.UnitLight]
	basePos := s.ecs.Positions[s.ecs.PlayerBaseID]
	baseSize := s.ecs.Sizes[s.ecs.PlayerBaseID]
	x := basePos.X + baseSize.W + config.Scaling*2
	spawnUnit(s.ecs, def, true, config.FriendlyUnitHP, x)
}
