package game

import "github.com/Garsondee/Circle-Arena/internal/geom"

// emitFunc receives resolver events; a nil emitFunc is allowed.
type emitFunc func(kind EventKind, pos geom.Vec2, value float64)

func (f emitFunc) emit(kind EventKind, pos geom.Vec2, value float64) {
	if f != nil {
		f(kind, pos, value)
	}
}

// CollisionResult counts what one resolver run did.
type CollisionResult struct {
	Hits        int // bullets that struck an enemy
	PlayerHurts int // successful hits on the player (0 or 1)
	Separations int // enemy repositions from enemy/enemy overlap
}

// ResolveCollisions runs the three passes in order: bullet/enemy,
// enemy/player, enemy/enemy. It only marks entities dead; compaction happens
// afterwards so that no pass sees a half-purged collection.
func ResolveCollisions(p *Player, bullets []*Bullet, enemies []*Enemy, damage int, on emitFunc) CollisionResult {
	var res CollisionResult
	res.Hits = resolveBulletHits(bullets, enemies, damage, on)
	res.PlayerHurts = resolvePlayerContact(p, enemies, on)
	res.Separations = separateEnemies(enemies)
	return res
}

// resolveBulletHits lets each bullet damage at most one live enemy. A bullet
// whose life ran out during this tick's move still takes part; only a bullet
// that already struck something is skipped.
func resolveBulletHits(bullets []*Bullet, enemies []*Enemy, damage int, on emitFunc) int {
	hits := 0
	for _, b := range bullets {
		if b.Spent() {
			continue
		}
		for _, e := range enemies {
			if !e.Alive() || !b.Touching(&e.Entity) {
				continue
			}
			b.Kill()
			e.Damage(damage)
			hits++
			on.emit(EventHit, e.Pos, float64(e.Health))
			break
		}
	}
	return hits
}

// resolvePlayerContact pushes touching enemies back onto the player's edge
// and applies contact damage, which the invulnerability window may absorb.
func resolvePlayerContact(p *Player, enemies []*Enemy, on emitFunc) int {
	if !p.Alive() {
		return 0
	}
	hurts := 0
	for _, e := range enemies {
		if !e.Alive() || !e.Touching(&p.Entity) {
			continue
		}
		e.Pos = geom.SeparateFrom(e.Pos, e.Radius, p.Pos, p.Radius)
		if p.Damage() {
			hurts++
			on.emit(EventPlayerHurt, p.Pos, float64(p.Health))
			if !p.Alive() {
				break
			}
		}
	}
	return hurts
}

// separateEnemies moves the first enemy of every overlapping ordered pair
// onto the other's edge. It is a positional correction, repeated every tick,
// so dense crowds relax over several ticks instead of all at once.
func separateEnemies(enemies []*Enemy) int {
	moved := 0
	for i, a := range enemies {
		if !a.Alive() {
			continue
		}
		for j, b := range enemies {
			if i == j || !b.Alive() || !a.Touching(&b.Entity) {
				continue
			}
			a.Pos = geom.SeparateFrom(a.Pos, a.Radius, b.Pos, b.Radius)
			moved++
		}
	}
	return moved
}

// purgeBullets drops dead bullets in place.
func purgeBullets(bullets []*Bullet) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if b.Alive() {
			kept = append(kept, b)
		}
	}
	clear(bullets[len(kept):])
	return kept
}

// purgeEnemies drops dead enemies in place and returns how many were killed.
func purgeEnemies(enemies []*Enemy, on emitFunc) ([]*Enemy, int) {
	kept := enemies[:0]
	kills := 0
	for _, e := range enemies {
		if e.Alive() {
			kept = append(kept, e)
			continue
		}
		kills++
		on.emit(EventKill, e.Pos, 1)
	}
	clear(enemies[len(kept):])
	return kept, kills
}
