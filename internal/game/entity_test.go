package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Circle-Arena/internal/geom"
)

const eps = 1e-9

func TestPlayer_DiagonalInputClampedToUnit(t *testing.T) {
	cfg := DefaultConfig()
	for _, in := range []geom.Vec2{geom.V(1, 1), geom.V(-1, 1), geom.V(1, -1), geom.V(-1, -1)} {
		p := newPlayer(cfg, geom.Zero)
		p.Update(in, cfg.Dt())
		if l := p.Direction().Len(); math.Abs(l-1) > eps {
			t.Fatalf("input %+v: direction length %.12f, want 1", in, l)
		}
		want := cfg.PlayerSpeed * cfg.Dt()
		if d := p.Pos.Len(); math.Abs(d-want) > eps {
			t.Fatalf("input %+v: moved %.6f, want %.6f", in, d, want)
		}
	}
}

func TestPlayer_ShortInputUnchanged(t *testing.T) {
	cfg := DefaultConfig()
	for _, in := range []geom.Vec2{geom.V(1, 0), geom.V(0, -1), geom.V(0.5, 0.5), geom.Zero} {
		p := newPlayer(cfg, geom.Zero)
		p.Update(in, cfg.Dt())
		if p.Direction() != in {
			t.Fatalf("input %+v: direction %+v, want unchanged", in, p.Direction())
		}
	}
}

func TestPlayer_ZeroInputDoesNotMove(t *testing.T) {
	cfg := DefaultConfig()
	p := newPlayer(cfg, geom.V(3, 4))
	p.Update(geom.Zero, cfg.Dt())
	if p.Pos != geom.V(3, 4) {
		t.Fatalf("player drifted to %+v with zero input", p.Pos)
	}
}

func TestPlayer_InvulnerabilityWindow(t *testing.T) {
	cfg := DefaultConfig()
	p := newPlayer(cfg, geom.Zero)

	if !p.Damage() {
		t.Fatal("first damage should apply")
	}
	if p.Health != cfg.PlayerHealth-1 {
		t.Fatalf("health %d, want %d", p.Health, cfg.PlayerHealth-1)
	}
	if p.Invulnerable != cfg.InvulnerabilityTicks {
		t.Fatalf("invulnerable %d, want %d", p.Invulnerable, cfg.InvulnerabilityTicks)
	}

	for i := 0; i < cfg.InvulnerabilityTicks-1; i++ {
		p.Update(geom.Zero, cfg.Dt())
		if p.Damage() {
			t.Fatalf("damage applied during i-frames at tick %d", i+1)
		}
		if p.Health != cfg.PlayerHealth-1 {
			t.Fatalf("health changed during i-frames: %d", p.Health)
		}
	}

	p.Update(geom.Zero, cfg.Dt())
	if !p.Vulnerable() {
		t.Fatalf("player still invulnerable after the full window (%d left)", p.Invulnerable)
	}
	if !p.Damage() || p.Health != cfg.PlayerHealth-2 {
		t.Fatalf("damage after window should apply, health=%d", p.Health)
	}
}

func TestPlayer_DamageWhenDeadIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InvulnerabilityTicks = 0
	p := newPlayer(cfg, geom.Zero)
	for p.Alive() {
		p.Damage()
	}
	if p.Damage() || p.Health != 0 {
		t.Fatalf("dead player took damage, health=%d", p.Health)
	}
}

func TestBullet_LivesExactlyItsLife(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BulletLifeTicks = 5
	b := newBullet(cfg, geom.Zero, geom.V(0, 1))
	for i := 1; i <= cfg.BulletLifeTicks; i++ {
		b.Update(cfg.Dt())
		if alive := b.Alive(); alive != (i < cfg.BulletLifeTicks) {
			t.Fatalf("after %d updates alive=%v (life=%d)", i, alive, b.Life())
		}
	}
}

func TestBullet_DirectionNormalizedAtCreation(t *testing.T) {
	cfg := DefaultConfig()
	b := newBullet(cfg, geom.Zero, geom.V(3, 4))
	if math.Abs(b.Direction().Len()-1) > eps {
		t.Fatalf("bullet direction %+v not unit", b.Direction())
	}
	b.Update(cfg.Dt())
	want := cfg.BulletSpeed * cfg.Dt()
	if math.Abs(b.Pos.Len()-want) > eps {
		t.Fatalf("bullet moved %.6f, want %.6f", b.Pos.Len(), want)
	}
}

func TestEnemy_TurnsGradually(t *testing.T) {
	cfg := DefaultConfig()
	e := newEnemy(cfg, geom.V(100, 0))

	e.Update(geom.Zero, cfg.Dt())
	if d := e.Direction(); math.Abs(d.X+1) > eps || math.Abs(d.Y) > eps {
		t.Fatalf("fresh enemy should head straight at the target, got %+v", d)
	}

	// Target jumps perpendicular: the heading must only partly follow.
	e.Update(geom.V(100, 100), cfg.Dt())
	d := e.Direction()
	if d.X > -0.9 || d.Y <= 0 {
		t.Fatalf("heading %+v turned too far or not at all", d)
	}
	if math.Abs(d.Len()-1) > eps {
		t.Fatalf("heading %+v not unit", d)
	}
}

func TestTouching_Symmetric(t *testing.T) {
	cfg := DefaultConfig()
	p := newPlayer(cfg, geom.Zero)
	cases := []*Entity{
		&newEnemy(cfg, geom.V(35.9, 0)).Entity,
		&newEnemy(cfg, geom.V(36, 0)).Entity,
		&newBullet(cfg, geom.V(0, 20.9), geom.V(1, 0)).Entity,
		&newBullet(cfg, geom.V(-30, -30), geom.V(1, 0)).Entity,
	}
	for _, e := range cases {
		if e.Touching(&p.Entity) != p.Touching(e) {
			t.Fatalf("touching not symmetric for %s at %+v", e.Kind, e.Pos)
		}
	}
	if !cases[0].Touching(&p.Entity) || cases[1].Touching(&p.Entity) {
		t.Fatal("touching must be strict: overlap touches, tangency does not")
	}
}

func TestEntity_DamageClampsAtZero(t *testing.T) {
	e := newEnemy(DefaultConfig(), geom.Zero)
	e.Damage(5)
	if e.Health != 0 || e.Alive() {
		t.Fatalf("health %d alive=%v after overkill", e.Health, e.Alive())
	}
}
