package game

import "github.com/Garsondee/Circle-Arena/internal/geom"

// Camera is the view-space translation renderers subtract from world
// positions. It trails the player with exponential smoothing.
type Camera struct {
	Offset geom.Vec2
	speed  float64
}

// NewCamera returns a camera that closes speed of the gap per tick.
func NewCamera(speed float64) *Camera {
	return &Camera{speed: speed}
}

// Center snaps the offset so target sits at the viewport centre.
func (c *Camera) Center(target, viewportCenter geom.Vec2) {
	c.Offset = target.Sub(viewportCenter)
}

// Follow moves the offset one tick toward centring target.
func (c *Camera) Follow(target, viewportCenter geom.Vec2) {
	c.Offset = c.Offset.Lerp(target.Sub(viewportCenter), c.speed)
}

// ToScreen converts a world position to screen space.
func (c *Camera) ToScreen(p geom.Vec2) geom.Vec2 {
	return p.Sub(c.Offset)
}

// ToWorld converts a screen position to world space.
func (c *Camera) ToWorld(p geom.Vec2) geom.Vec2 {
	return p.Add(c.Offset)
}
