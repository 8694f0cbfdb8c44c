package game

import (
	"math/rand"

	"github.com/Garsondee/Circle-Arena/internal/geom"
)

// Spawner owns the two enemy countdowns: one that adds an enemy on a ring
// around the player and one that culls enemies left too far behind.
type Spawner struct {
	SpawnTimer   int
	DespawnTimer int

	spawnInterval   int
	despawnInterval int
	spawnDistance   float64
	despawnDistance float64
	rng             *rand.Rand
}

// NewSpawner builds a spawner from cfg, drawing spawn angles from rng.
func NewSpawner(cfg Config, rng *rand.Rand) *Spawner {
	s := &Spawner{
		spawnInterval:   cfg.SpawnIntervalTicks,
		despawnInterval: cfg.DespawnIntervalTicks,
		rng:             rng,
	}
	s.SetDistances(cfg.EffectiveSpawnDistance(), cfg.EffectiveDespawnDistance())
	s.Reset()
	return s
}

// Reset restarts both countdowns. The first spawn comes after half an
// interval.
func (s *Spawner) Reset() {
	s.SpawnTimer = max(s.spawnInterval/2, 1)
	s.DespawnTimer = s.despawnInterval
}

// SetDistances updates the spawn ring and cull radii, e.g. after a resize.
func (s *Spawner) SetDistances(spawn, despawn float64) {
	s.spawnDistance = spawn
	s.despawnDistance = max(despawn, spawn)
}

// Distances returns the spawn ring and cull radii.
func (s *Spawner) Distances() (spawn, despawn float64) {
	return s.spawnDistance, s.despawnDistance
}

// SpawnPoint returns a point at distance scale*spawnDistance from center in a
// uniformly random direction.
func (s *Spawner) SpawnPoint(center geom.Vec2, scale float64) geom.Vec2 {
	return center.Add(geom.RandomUnit(s.rng).Scale(s.spawnDistance * scale))
}

// Tick advances both countdowns. When the spawn countdown expires it returns
// the new enemy's position and true. When the despawn countdown expires,
// enemies beyond the cull radius are removed from the returned slice and
// reported through on.
func (s *Spawner) Tick(player geom.Vec2, enemies []*Enemy, on emitFunc) (geom.Vec2, bool, []*Enemy) {
	var spawnAt geom.Vec2
	spawned := false
	s.SpawnTimer--
	if s.SpawnTimer <= 0 {
		s.SpawnTimer = s.spawnInterval
		spawnAt = s.SpawnPoint(player, 1)
		spawned = true
	}

	s.DespawnTimer--
	if s.DespawnTimer <= 0 {
		s.DespawnTimer = s.despawnInterval
		enemies = s.cull(player, enemies, on)
	}
	return spawnAt, spawned, enemies
}

func (s *Spawner) cull(player geom.Vec2, enemies []*Enemy, on emitFunc) []*Enemy {
	kept := enemies[:0]
	for _, e := range enemies {
		if e.Pos.Dist(player) > s.despawnDistance {
			on.emit(EventDespawn, e.Pos, e.Pos.Dist(player))
			continue
		}
		kept = append(kept, e)
	}
	clear(enemies[len(kept):])
	return kept
}
