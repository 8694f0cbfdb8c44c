// Package geom holds the 2D vector math shared by the simulation and the
// renderers. Vectors are small values and are passed by copy.
package geom

import (
	"math"
	"math/rand"
)

// Vec2 is a point or direction on the unbounded play plane.
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec2{}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns v scaled to length 1. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 || l == 1 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampUnit normalizes v only when its magnitude exceeds 1, so a diagonal
// input cannot outrun a single-axis one while partial inputs pass through.
func (v Vec2) ClampUnit() Vec2 {
	if v.Len() > 1 {
		return v.Normalize()
	}
	return v
}

// Lerp moves v toward o by fraction t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// FromAngle returns the unit vector at angle a (radians, +X is 0).
func FromAngle(a float64) Vec2 {
	return Vec2{math.Cos(a), math.Sin(a)}
}

// RandomUnit draws a unit vector at a uniformly random angle in [0, 2π).
func RandomUnit(rng *rand.Rand) Vec2 {
	return FromAngle(rng.Float64() * 2 * math.Pi)
}

// Touching reports whether two circles overlap. Tangent circles do not touch.
func Touching(a Vec2, ra float64, b Vec2, rb float64) bool {
	return a.Dist(b) < ra+rb
}

// SeparateFrom returns the position for a circle of radius r centred at p so
// that it sits exactly outside a circle of radius or centred at o, along the
// axis from o to p. Coincident centres separate along +X.
func SeparateFrom(p Vec2, r float64, o Vec2, or float64) Vec2 {
	axis := p.Sub(o).Normalize()
	if axis.IsZero() {
		axis = Vec2{X: 1}
	}
	return o.Add(axis.Scale(r + or))
}
