package game

import (
	"github.com/Garsondee/Circle-Arena/internal/geom"
)

// Kind tags the closed set of entity variants.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is the state shared by every variant. An entity is alive while
// Health > 0; for bullets Health is the remaining life in ticks.
type Entity struct {
	Kind   Kind
	Pos    geom.Vec2
	Radius float64
	Speed  float64 // units per second
	Health int

	// dir is a unit vector or zero. The player's direction may also be a
	// shorter vector when it is steered by partial (analog) input.
	dir geom.Vec2
}

// Direction returns the current heading.
func (e *Entity) Direction() geom.Vec2 {
	return e.dir
}

func (e *Entity) setDirection(d geom.Vec2) {
	e.dir = d.Normalize()
}

// Alive reports whether the entity still has health.
func (e *Entity) Alive() bool {
	return e.Health > 0
}

// Touching reports whether the two collision circles overlap.
func (e *Entity) Touching(o *Entity) bool {
	return geom.Touching(e.Pos, e.Radius, o.Pos, o.Radius)
}

// Damage removes n health, clamped at zero.
func (e *Entity) Damage(n int) {
	e.Health -= n
	if e.Health < 0 {
		e.Health = 0
	}
}

// move advances the position by one fixed tick of dt seconds.
func (e *Entity) move(dt float64) {
	e.Pos = e.Pos.Add(e.dir.Scale(e.Speed * dt))
}

// --- Player ---

// Player is the controllable entity.
type Player struct {
	Entity
	MaxHealth int

	// Invulnerable counts down the ticks of damage immunity left.
	Invulnerable int
	invulnTicks  int
}

func newPlayer(cfg Config, pos geom.Vec2) *Player {
	return &Player{
		Entity: Entity{
			Kind:   KindPlayer,
			Pos:    pos,
			Radius: cfg.PlayerRadius,
			Speed:  cfg.PlayerSpeed,
			Health: cfg.PlayerHealth,
		},
		MaxHealth:   cfg.PlayerHealth,
		invulnTicks: cfg.InvulnerabilityTicks,
	}
}

// Vulnerable reports whether the player can take damage this tick.
func (p *Player) Vulnerable() bool {
	return p.Invulnerable == 0
}

// Update steers the player by the combined movement input and advances one
// tick. Inputs longer than 1 are normalized; shorter ones are used as is.
func (p *Player) Update(move geom.Vec2, dt float64) {
	p.dir = move.ClampUnit()
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
	p.move(dt)
}

// Damage takes one health and starts the invulnerability window. It returns
// false and does nothing while the player is invulnerable or already dead.
func (p *Player) Damage() bool {
	if !p.Vulnerable() || !p.Alive() {
		return false
	}
	p.Entity.Damage(1)
	p.Invulnerable = p.invulnTicks
	return true
}

// --- Bullet ---

// Bullet flies in a straight line until its life runs out or it hits an enemy.
type Bullet struct {
	Entity
	spent bool // struck an enemy this tick
}

func newBullet(cfg Config, pos, dir geom.Vec2) *Bullet {
	b := &Bullet{Entity: Entity{
		Kind:   KindBullet,
		Pos:    pos,
		Radius: cfg.BulletRadius,
		Speed:  cfg.BulletSpeed,
		Health: cfg.BulletLifeTicks,
	}}
	b.setDirection(dir)
	return b
}

// Life returns the remaining ticks of flight.
func (b *Bullet) Life() int {
	return b.Health
}

// Update spends one tick of life and moves. A bullet whose life reaches zero
// still finishes this tick and is purged at the end of it.
func (b *Bullet) Update(dt float64) {
	b.Health--
	b.move(dt)
}

// Kill ends the bullet's flight. A killed bullet can no longer hit.
func (b *Bullet) Kill() {
	b.Health = 0
	b.spent = true
}

// Spent reports whether the bullet has already struck an enemy.
func (b *Bullet) Spent() bool {
	return b.spent
}

// --- Enemy ---

// Enemy pursues the player with a smoothed heading.
type Enemy struct {
	Entity
	tracking float64
}

func newEnemy(cfg Config, pos geom.Vec2) *Enemy {
	return &Enemy{
		Entity: Entity{
			Kind:   KindEnemy,
			Pos:    pos,
			Radius: cfg.EnemyRadius,
			Speed:  cfg.EnemySpeed,
			Health: cfg.EnemyHealth,
		},
		tracking: cfg.TrackingFactor,
	}
}

// Update turns the heading a fixed fraction of the way toward target and
// advances one tick.
func (e *Enemy) Update(target geom.Vec2, dt float64) {
	toTarget := target.Sub(e.Pos).Normalize()
	e.setDirection(e.dir.Lerp(toTarget, e.tracking))
	e.move(dt)
}
