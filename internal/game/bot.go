package game

import (
	"math"

	"github.com/Garsondee/Circle-Arena/internal/geom"
)

// Bot is a scripted player for headless runs: it aims at the nearest enemy,
// fires when that enemy is within bullet range, and backs away from anything
// closer than Danger while otherwise strafing around the nearest threat.
type Bot struct {
	Danger float64 // retreat radius; 0 uses six player radii
}

// Input decides the next tick's input for s.
func (b Bot) Input(s *Session) Input {
	p := s.Player()
	cfg := s.Config()
	nearest, dist := nearestEnemy(p.Pos, s.Enemies())
	if nearest == nil {
		return Input{}
	}

	danger := b.Danger
	if danger <= 0 {
		danger = p.Radius * 6
	}
	rangeLimit := cfg.BulletSpeed * float64(cfg.BulletLifeTicks) * cfg.Dt()

	away := p.Pos.Sub(nearest.Pos).Normalize()
	var move geom.Vec2
	if dist < danger {
		move = away
	} else {
		// Strafe: perpendicular to the threat axis.
		move = geom.V(-away.Y, away.X)
	}
	return Input{
		Move:     snapAxes(move),
		Fire:     dist <= rangeLimit,
		Aim:      nearest.Pos,
		AimWorld: true,
	}
}

func nearestEnemy(from geom.Vec2, enemies []*Enemy) (*Enemy, float64) {
	var best *Enemy
	bestDist := math.Inf(1)
	for _, e := range enemies {
		if d := e.Pos.Dist(from); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist
}

// snapAxes quantizes a direction to the -1/0/1 per-axis form a keyboard
// produces.
func snapAxes(v geom.Vec2) geom.Vec2 {
	snap := func(c float64) float64 {
		switch {
		case c > 0.38:
			return 1
		case c < -0.38:
			return -1
		default:
			return 0
		}
	}
	return geom.V(snap(v.X), snap(v.Y))
}
