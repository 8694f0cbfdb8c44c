package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Circle-Arena/internal/geom"
)

func TestScenario_BulletKillsEnemy(t *testing.T) {
	ts := NewTestSim(
		WithoutStartingEnemies(),
		WithEnemyAt(200, 0),
		WithBulletAt(200, 0, 1, 0),
	)
	ts.RunTicks(1)

	s := ts.Session
	if n := len(s.Enemies()); n != 0 {
		t.Fatalf("expected the enemy to be purged, %d left", n)
	}
	if n := len(s.Bullets()); n != 0 {
		t.Fatalf("expected the bullet to be purged, %d left", n)
	}
	st := s.Stats()
	if st.Kills != 1 || st.Hits != 1 {
		t.Fatalf("kills=%d hits=%d, want 1/1", st.Kills, st.Hits)
	}
	if ts.Log.Count(EventKill) != 1 || ts.Log.Count(EventHit) != 1 {
		t.Fatalf("event log kill=%d hit=%d", ts.Log.Count(EventKill), ts.Log.Count(EventHit))
	}
}

func TestBulletHits_OneEnemyPerBullet(t *testing.T) {
	ts := NewTestSim(
		WithoutStartingEnemies(),
		WithEnemyAt(200, 0),
		WithEnemyAt(205, 0),
		WithBulletAt(200, 0, 1, 0),
	)
	ts.RunTicks(1)

	st := ts.Session.Stats()
	if st.Hits != 1 || st.Kills != 1 {
		t.Fatalf("one bullet must damage exactly one enemy: hits=%d kills=%d", st.Hits, st.Kills)
	}
	if n := len(ts.Session.Enemies()); n != 1 {
		t.Fatalf("expected 1 surviving enemy, got %d", n)
	}
}

func TestBulletHits_DeadBulletIgnored(t *testing.T) {
	cfg := DefaultConfig()
	b := newBullet(cfg, geom.Zero, geom.V(1, 0))
	b.Kill()
	e := newEnemy(cfg, geom.Zero)
	if hits := resolveBulletHits([]*Bullet{b}, []*Enemy{e}, 1, nil); hits != 0 || !e.Alive() {
		t.Fatalf("dead bullet scored %d hits", hits)
	}
}

func TestPlayerContact_SeparatesAndDamagesOnce(t *testing.T) {
	ts := NewTestSim(
		WithoutStartingEnemies(),
		WithEnemyAt(30, 0),
	)
	cfg := ts.Session.Config()
	ts.RunTicks(1)

	p := ts.Session.Player()
	if p.Health != cfg.PlayerHealth-1 {
		t.Fatalf("health %d, want %d", p.Health, cfg.PlayerHealth-1)
	}
	e := ts.Session.Enemies()[0]
	if d := e.Pos.Dist(p.Pos); math.Abs(d-(p.Radius+e.Radius)) > 1e-6 {
		t.Fatalf("enemy left at distance %.6f, want %.6f", d, p.Radius+e.Radius)
	}

	ts.RunTicks(50)
	if p.Health != cfg.PlayerHealth-1 {
		t.Fatalf("i-frames failed: health %d", p.Health)
	}
	if ts.Log.Count(EventPlayerHurt) != 1 {
		t.Fatalf("player_hurt events %d, want 1", ts.Log.Count(EventPlayerHurt))
	}
	if e.Pos.Dist(p.Pos) < p.Radius+e.Radius-1e-6 {
		t.Fatal("enemy sank into the player")
	}
}

func TestSeparateEnemies_MovesFirstOfPair(t *testing.T) {
	cfg := DefaultConfig()
	a := newEnemy(cfg, geom.V(0, 0))
	b := newEnemy(cfg, geom.V(10, 0))
	moved := separateEnemies([]*Enemy{a, b})
	if moved != 1 {
		t.Fatalf("moved %d, want 1", moved)
	}
	if a.Pos != geom.V(-30, 0) {
		t.Fatalf("first enemy at %+v, want (-30,0)", a.Pos)
	}
	if b.Pos != geom.V(10, 0) {
		t.Fatalf("second enemy moved to %+v", b.Pos)
	}
	if a.Touching(&b.Entity) {
		t.Fatal("enemies still overlap")
	}
}

func TestSeparateEnemies_CrowdRelaxesOverTicks(t *testing.T) {
	cfg := DefaultConfig()
	var crowd []*Enemy
	for i := 0; i < 6; i++ {
		crowd = append(crowd, newEnemy(cfg, geom.V(float64(i), float64(i%2))))
	}
	for tick := 0; tick < 60; tick++ {
		separateEnemies(crowd)
	}
	for i, a := range crowd {
		for j, b := range crowd {
			if i != j && a.Pos.Dist(b.Pos) < a.Radius+b.Radius-1 {
				t.Fatalf("enemies %d and %d still deeply overlapping at distance %.2f", i, j, a.Pos.Dist(b.Pos))
			}
		}
	}
}

func TestPurge_CompactsInPlace(t *testing.T) {
	cfg := DefaultConfig()
	alive := newEnemy(cfg, geom.V(1, 0))
	dead := newEnemy(cfg, geom.V(2, 0))
	dead.Damage(cfg.EnemyHealth)
	list := []*Enemy{dead, alive, dead}
	var killed []geom.Vec2
	kept, kills := purgeEnemies(list, func(k EventKind, pos geom.Vec2, _ float64) {
		if k == EventKill {
			killed = append(killed, pos)
		}
	})
	if kills != 2 || len(killed) != 2 {
		t.Fatalf("kills=%d events=%d, want 2", kills, len(killed))
	}
	if len(kept) != 1 || kept[0] != alive {
		t.Fatalf("kept %v", kept)
	}
	if list[1] != nil || list[2] != nil {
		t.Fatal("tail not cleared after compaction")
	}
}

func TestScenario_BulletHitsOnItsLastTick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BulletLifeTicks = 1
	ts := NewTestSim(
		WithConfig(cfg),
		WithoutStartingEnemies(),
		WithEnemyAt(200, 0),
		WithBulletAt(200, 0, 1, 0),
	)
	ts.RunTicks(1)

	st := ts.Session.Stats()
	if st.Hits != 1 || st.Kills != 1 {
		t.Fatalf("bullet on its last tick: hits=%d kills=%d, want 1/1", st.Hits, st.Kills)
	}
	if n := len(ts.Session.Enemies()); n != 0 {
		t.Fatalf("%d enemies left, want 0", n)
	}
	if n := len(ts.Session.Bullets()); n != 0 {
		t.Fatalf("%d bullets left after their life ran out", n)
	}
}

func TestScenario_FiredSingleTickBulletHits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BulletLifeTicks = 1
	ts := NewTestSim(
		WithConfig(cfg),
		WithoutStartingEnemies(),
		WithEnemyAt(40, 0),
		WithInput(fireAt(100, 0)),
	)
	ts.RunTicks(1)

	st := ts.Session.Stats()
	if st.Shots != 1 || st.Hits != 1 || st.Kills != 1 {
		t.Fatalf("shots=%d hits=%d kills=%d, want 1/1/1", st.Shots, st.Hits, st.Kills)
	}
}

func TestPlayerContact_StopsAfterKillingHit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PlayerHealth = 1
	p := newPlayer(cfg, geom.Zero)
	first := newEnemy(cfg, geom.V(30, 0))
	second := newEnemy(cfg, geom.V(-30, 0))

	if hurts := resolvePlayerContact(p, []*Enemy{first, second}, nil); hurts != 1 {
		t.Fatalf("hurts %d, want 1", hurts)
	}
	if p.Alive() {
		t.Fatal("player survived a hit at 1 health")
	}
	if first.Pos != geom.V(36, 0) {
		t.Fatalf("first enemy at %+v, want (36,0)", first.Pos)
	}
	if second.Pos != geom.V(-30, 0) {
		t.Fatalf("enemy moved against a dead player: %+v", second.Pos)
	}
}
