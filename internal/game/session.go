package game

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Garsondee/Circle-Arena/internal/geom"
	"github.com/google/uuid"
)

// State is the session phase.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input is one tick of decoded player intent.
type Input struct {
	// Move holds -1, 0 or 1 per axis, combined but not normalized.
	Move geom.Vec2
	Fire bool
	// Aim is the aim point, in screen space unless AimWorld is set.
	Aim      geom.Vec2
	AimWorld bool
}

// Session owns all simulation state: the player, the bullet and enemy
// collections, the weapon, the spawner, the camera and the stats. Nothing
// else holds references to them across ticks.
type Session struct {
	cfg   Config
	id    string
	state State
	tick  int

	player  *Player
	bullets []*Bullet
	enemies []*Enemy
	weapon  *Weapon
	spawner *Spawner
	camera  *Camera
	stats   Stats

	aim    geom.Vec2
	input  Input
	events []Event
	feed   Feed

	eventLog *EventLog
	logger   *slog.Logger
	rng      *rand.Rand
}

// Option configures a Session at construction.
type Option func(*Session)

// WithSeed makes spawn positions deterministic.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay only
	}
}

// WithLogger routes state-transition logging to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithEventLog records every event into l.
func WithEventLog(l *EventLog) Option {
	return func(s *Session) {
		s.eventLog = l
	}
}

// NewSession validates cfg and starts a fresh running session.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, err := NewWeapon(cfg.MaxAmmo, cfg.CooldownTicks, cfg.ReloadTicks)
	if err != nil {
		return nil, err
	}
	s := &Session{
		cfg:    cfg,
		weapon: w,
		camera: NewCamera(cfg.CameraSpeed),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- gameplay only
	}
	s.spawner = NewSpawner(cfg, s.rng)
	s.Reset()
	return s, nil
}

// Reset starts a new game: full health at the origin, no bullets, a full
// magazine, zeroed stats, a centred camera and the staggered starting enemies.
func (s *Session) Reset() {
	s.id = uuid.NewString()
	s.state = StateRunning
	s.tick = 0
	s.player = newPlayer(s.cfg, geom.Zero)
	clear(s.bullets)
	s.bullets = s.bullets[:0]
	clear(s.enemies)
	s.enemies = s.enemies[:0]
	s.weapon.Reset()
	s.stats = Stats{}
	s.aim = geom.Zero
	s.input = Input{}
	s.events = s.events[:0]
	s.feed.Reset()
	s.camera.Center(s.player.Pos, s.viewportCenter())
	s.spawner.Reset()

	scale := s.cfg.StartingDistanceScale
	for i := 0; i < s.cfg.StartingEnemies; i++ {
		s.enemies = append(s.enemies, newEnemy(s.cfg, s.spawner.SpawnPoint(s.player.Pos, scale)))
		scale += s.cfg.StartingDistanceStep
	}

	s.emit(EventReset, s.player.Pos, float64(len(s.enemies)))
	s.logger.Info("session reset", "session_id", s.id, "enemies", len(s.enemies))
}

// Step runs one fixed tick. Outside the running state it records the input
// and returns without touching the simulation.
func (s *Session) Step(in Input) {
	s.events = s.events[:0]
	s.input = in
	if s.state != StateRunning {
		return
	}
	s.tick++
	dt := s.cfg.Dt()

	// 1. Weapon: countdowns first, so a shot can land on the tick a timer ends.
	if s.weapon.Tick() {
		s.emit(EventReloaded, s.player.Pos, float64(s.weapon.Ammo))
	}
	if dir := s.AimDirection(in); !dir.IsZero() {
		s.aim = dir
	}
	if in.Fire {
		s.fire()
	}

	// 2. Player.
	prev := s.player.Pos
	s.player.Update(in.Move, dt)
	s.stats.Distance += s.player.Pos.Dist(prev)

	// 3. Enemies pursue.
	for _, e := range s.enemies {
		e.Update(s.player.Pos, dt)
	}

	// 4. Bullets fly.
	for _, b := range s.bullets {
		b.Update(dt)
	}

	// 5. Collisions, then compaction.
	res := ResolveCollisions(s.player, s.bullets, s.enemies, s.cfg.WeaponDamage, s.emit)
	s.stats.Hits += res.Hits
	s.bullets = purgeBullets(s.bullets)
	var kills int
	s.enemies, kills = purgeEnemies(s.enemies, s.emit)
	s.stats.Kills += kills

	// 6. Spawn and cull.
	spawnAt, spawned, enemies := s.spawner.Tick(s.player.Pos, s.enemies, s.emit)
	s.enemies = enemies
	if spawned {
		s.enemies = append(s.enemies, newEnemy(s.cfg, spawnAt))
		s.emit(EventSpawn, spawnAt, float64(len(s.enemies)))
	}

	// 7. Camera.
	s.camera.Follow(s.player.Pos, s.viewportCenter())

	if !s.player.Alive() {
		s.setState(StateGameOver)
		s.emit(EventGameOver, s.player.Pos, float64(s.stats.Kills))
	}
}

// fire spawns one bullet along the current aim if every precondition holds.
func (s *Session) fire() bool {
	if s.state != StateRunning || !s.player.Alive() || s.aim.IsZero() {
		return false
	}
	if !s.weapon.Fire() {
		return false
	}
	s.stats.Shots++
	muzzle := s.player.Pos.Add(s.aim.Scale(s.player.Radius + s.cfg.BulletRadius))
	s.bullets = append(s.bullets, newBullet(s.cfg, muzzle, s.aim))
	s.emit(EventShot, muzzle, float64(s.weapon.Ammo))
	if s.weapon.State() == WeaponReloading {
		s.emit(EventReloadStart, s.player.Pos, 0)
	}
	return true
}

// AimDirection converts the input's aim point to a unit direction from the
// player. It is zero when the aim point sits on the player.
func (s *Session) AimDirection(in Input) geom.Vec2 {
	target := in.Aim
	if !in.AimWorld {
		target = s.camera.ToWorld(in.Aim)
	}
	return target.Sub(s.player.Pos).Normalize()
}

// TogglePause flips between running and paused while the player is alive.
func (s *Session) TogglePause() bool {
	if !s.player.Alive() {
		return false
	}
	switch s.state {
	case StateRunning:
		s.setState(StatePaused)
	case StatePaused:
		s.setState(StateRunning)
	default:
		return false
	}
	return true
}

// FocusLost pauses a running session. It never resumes one.
func (s *Session) FocusLost() bool {
	if s.state != StateRunning {
		return false
	}
	s.setState(StatePaused)
	return true
}

// Restart resets the session, but only from game over.
func (s *Session) Restart() bool {
	if s.state != StateGameOver {
		return false
	}
	s.Reset()
	return true
}

// Resize adopts a new viewport: derived spawn distances follow it, the camera
// is re-anchored on the player, and a running session pauses.
func (s *Session) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.cfg.ViewportWidth && height == s.cfg.ViewportHeight {
		return
	}
	s.cfg.ViewportWidth = width
	s.cfg.ViewportHeight = height
	s.spawner.SetDistances(s.cfg.EffectiveSpawnDistance(), s.cfg.EffectiveDespawnDistance())
	s.camera.Center(s.player.Pos, s.viewportCenter())
	s.logger.Debug("viewport resized", "width", width, "height", height)
	s.FocusLost()
}

func (s *Session) setState(next State) {
	if next == s.state {
		return
	}
	s.logger.Debug("session state", "session_id", s.id, "from", s.state, "to", next, "tick", s.tick)
	switch next {
	case StatePaused:
		s.emit(EventPaused, s.player.Pos, 0)
	case StateRunning:
		s.emit(EventResumed, s.player.Pos, 0)
	case StateGameOver:
		s.logger.Info("game over", "session_id", s.id, "tick", s.tick,
			"kills", s.stats.Kills, "accuracy", s.stats.Accuracy())
	}
	s.state = next
}

func (s *Session) emit(kind EventKind, pos geom.Vec2, value float64) {
	e := Event{Tick: s.tick, Kind: kind, Pos: pos, Value: value}
	s.events = append(s.events, e)
	s.feed.Add(e)
	if s.eventLog != nil {
		s.eventLog.Add(e)
	}
}

func (s *Session) viewportCenter() geom.Vec2 {
	return geom.V(s.cfg.ViewportCenter())
}

// Render emits the player, enemies and bullets in that order. While
// invulnerable the player is only emitted on even ticks so it blinks.
func (s *Session) Render(r Renderer) {
	if s.player.Invulnerable%2 == 0 {
		req := s.player.drawRequest()
		if !s.aim.IsZero() {
			req.Facing = s.aim
			req.HasFacing = true
		}
		r.DrawEntity(req)
	}
	for _, e := range s.enemies {
		r.DrawEntity(e.drawRequest())
	}
	for _, b := range s.bullets {
		r.DrawEntity(b.drawRequest())
	}
}

// Snapshot captures everything the UI layer shows.
func (s *Session) Snapshot() Snapshot {
	cd, rl := s.weapon.Timers()
	snap := Snapshot{
		ID:             s.id,
		Tick:           s.tick,
		State:          s.state,
		Health:         s.player.Health,
		MaxHealth:      s.player.MaxHealth,
		Invulnerable:   s.player.Invulnerable,
		PlayerPos:      s.player.Pos,
		PlayerDir:      s.player.Direction(),
		Aim:            s.aim,
		Ammo:           s.weapon.Ammo,
		MaxAmmo:        s.weapon.MaxAmmo,
		Weapon:         s.weapon.State(),
		WeaponProgress: s.weapon.Progress(),
		CooldownTicks:  cd,
		ReloadTicks:    rl,
		Stats:          s.stats,
		Accuracy:       s.stats.Accuracy(),
		Grade:          LetterGrade(s.stats.Score(s.tick, s.cfg.TickRate)),
		Enemies:        len(s.enemies),
		Bullets:        len(s.bullets),
		SpawnTimer:     s.spawner.SpawnTimer,
		DespawnTimer:   s.spawner.DespawnTimer,
		CameraOffset:   s.camera.Offset,
		Input:          s.input,
	}
	switch s.state {
	case StatePaused:
		snap.Overlay = OverlayPause
	case StateGameOver:
		snap.Overlay = OverlayGameOver
	}
	return snap
}

// Report returns the plain-text summary of this session.
func (s *Session) Report() string {
	return Report(s.id, s.tick, s.cfg.TickRate, s.stats)
}

// ID returns the uuid assigned at the last reset.
func (s *Session) ID() string { return s.id }

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Tick returns the number of simulated ticks since the last reset.
func (s *Session) Tick() int { return s.tick }

// Config returns the session tuning.
func (s *Session) Config() Config { return s.cfg }

// Player returns the controlled entity.
func (s *Session) Player() *Player { return s.player }

// Bullets returns the live bullets.
func (s *Session) Bullets() []*Bullet { return s.bullets }

// Enemies returns the live enemies.
func (s *Session) Enemies() []*Enemy { return s.enemies }

// Weapon returns the player's weapon state.
func (s *Session) Weapon() *Weapon { return s.weapon }

// Stats returns the session counters.
func (s *Session) Stats() Stats { return s.stats }

// Camera returns the follow camera.
func (s *Session) Camera() *Camera { return s.camera }

// Events returns the events emitted by the last Step.
func (s *Session) Events() []Event { return s.events }

// Feed returns the most recent events, oldest first.
func (s *Session) Feed() []Event { return s.feed.Recent() }

// Aim returns the last non-zero aim direction.
func (s *Session) Aim() geom.Vec2 { return s.aim }

// Spawner returns the spawn and despawn scheduler.
func (s *Session) Spawner() *Spawner { return s.spawner }
