package game

import "github.com/Garsondee/Circle-Arena/internal/geom"

// ColorTag selects a palette entry; renderers own the actual colours.
type ColorTag int

const (
	ColorPlayer ColorTag = iota
	ColorBullet
	ColorEnemy
)

// DrawRequest is one entity as the renderer sees it. Pos is in world space;
// renderers apply the camera offset.
type DrawRequest struct {
	Kind      Kind
	Pos       geom.Vec2
	Radius    float64
	Color     ColorTag
	Facing    geom.Vec2
	HasFacing bool
}

// Renderer consumes draw requests emitted by Session.Render.
//
//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer
type Renderer interface {
	DrawEntity(req DrawRequest)
}

// drawRequest dispatches on the variant tag.
func (e *Entity) drawRequest() DrawRequest {
	req := DrawRequest{Kind: e.Kind, Pos: e.Pos, Radius: e.Radius}
	switch e.Kind {
	case KindPlayer:
		req.Color = ColorPlayer
	case KindBullet:
		req.Color = ColorBullet
	case KindEnemy:
		req.Color = ColorEnemy
		req.Facing = e.dir
		req.HasFacing = !e.dir.IsZero()
	}
	return req
}

// Overlay tells the UI layer which full-screen panel, if any, to draw.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayPause
	OverlayGameOver
)

// Snapshot is the read-only view the UI layer renders from.
type Snapshot struct {
	ID      string
	Tick    int
	State   State
	Overlay Overlay

	Health       int
	MaxHealth    int
	Invulnerable int
	PlayerPos    geom.Vec2
	PlayerDir    geom.Vec2
	Aim          geom.Vec2

	Ammo           int
	MaxAmmo        int
	Weapon         WeaponState
	WeaponProgress float64
	CooldownTicks  int
	ReloadTicks    int

	Stats    Stats
	Accuracy float64
	Grade    string

	Enemies      int
	Bullets      int
	SpawnTimer   int
	DespawnTimer int

	CameraOffset geom.Vec2
	Input        Input
}
