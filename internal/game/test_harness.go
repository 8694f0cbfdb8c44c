package game

import (
	"log/slog"

	"github.com/Garsondee/Circle-Arena/internal/geom"
)

// TestSim is a headless harness around a Session used by tests and the
// headless report. It has no Ebiten dependency, seeds deterministically and
// records every event in Log.
type TestSim struct {
	Session *Session
	Log     *EventLog
	Input   func(*Session) Input

	cfg       Config
	seed      int64
	logger    *slog.Logger
	noStarter bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // config, seed: applied before the session exists
	simOptEntity                      // enemies, bullets: applied after the reset
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithConfig replaces the default tuning.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg = cfg
	}}
}

// WithSimSeed sets the RNG seed for deterministic runs.
func WithSimSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithSimLogger routes the session's structured logging to l.
func WithSimLogger(l *slog.Logger) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.logger = l
	}}
}

// WithoutStartingEnemies clears the staggered starting enemies after reset.
func WithoutStartingEnemies() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.noStarter = true
	}}
}

// WithInput drives the player from fn every tick. The default is idle input.
func WithInput(fn func(*Session) Input) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Input = fn
	}}
}

// WithBot drives the player with the scripted Bot.
func WithBot(b Bot) SimOption {
	return WithInput(b.Input)
}

// WithEnemyAt places an enemy at (x, y) with the configured stats.
func WithEnemyAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		s := ts.Session
		s.enemies = append(s.enemies, newEnemy(s.cfg, geom.V(x, y)))
	}}
}

// WithBulletAt places a bullet at (x, y) flying along (dx, dy).
func WithBulletAt(x, y, dx, dy float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		s := ts.Session
		s.bullets = append(s.bullets, newBullet(s.cfg, geom.V(x, y), geom.V(dx, dy)))
	}}
}

// NewTestSim constructs a TestSim from the given options in two passes:
//  1. Infrastructure (config, seed, input, starting enemies)
//  2. Entities placed on top of the fresh session
//
// It panics on an invalid config; harness configs are programmer input.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg:  DefaultConfig(),
		seed: 1,
		Log:  NewEventLog(),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	sessOpts := []Option{WithSeed(ts.seed), WithEventLog(ts.Log)}
	if ts.logger != nil {
		sessOpts = append(sessOpts, WithLogger(ts.logger))
	}
	s, err := NewSession(ts.cfg, sessOpts...)
	if err != nil {
		panic(err)
	}
	ts.Session = s
	if ts.noStarter {
		clear(s.enemies)
		s.enemies = s.enemies[:0]
	}
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	if ts.Input == nil {
		ts.Input = func(*Session) Input { return Input{} }
	}
	return ts
}

// RunTicks advances the session n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Session.Step(ts.Input(ts.Session))
	}
}

// RunUntil advances up to maxTicks, stopping early once predicate returns
// true. It returns the session tick at which the predicate held, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Session.Step(ts.Input(ts.Session))
		if predicate(ts) {
			return ts.Session.Tick()
		}
	}
	return -1
}

// SimSnapshot is a lightweight copy of the simulation at a tick.
type SimSnapshot struct {
	Tick      int
	State     State
	PlayerPos geom.Vec2
	Health    int
	Ammo      int
	Cooldown  int
	Reload    int
	Enemies   []geom.Vec2
	Bullets   []geom.Vec2
}

// Snapshot captures positions and timers for before/after comparisons.
func (ts *TestSim) Snapshot() SimSnapshot {
	s := ts.Session
	cd, rl := s.weapon.Timers()
	snap := SimSnapshot{
		Tick:      s.tick,
		State:     s.state,
		PlayerPos: s.player.Pos,
		Health:    s.player.Health,
		Ammo:      s.weapon.Ammo,
		Cooldown:  cd,
		Reload:    rl,
	}
	for _, e := range s.enemies {
		snap.Enemies = append(snap.Enemies, e.Pos)
	}
	for _, b := range s.bullets {
		snap.Bullets = append(snap.Bullets, b.Pos)
	}
	return snap
}
