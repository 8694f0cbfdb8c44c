package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Circle-Arena/internal/game"
	"github.com/Garsondee/Circle-Arena/internal/geom"
)

// tileSize is the edge of one background checker tile in pixels.
const tileSize = 64

// aimLineLength is how far the aim line reaches past its start.
const aimLineLength = 220

// Screen draws session entities onto an ebiten image. It implements
// game.Renderer; world positions are shifted by the camera offset.
type Screen struct {
	dst       *ebiten.Image
	offset    geom.Vec2
	antiAlias bool
}

// NewScreen targets dst with the given camera offset.
func NewScreen(dst *ebiten.Image, offset geom.Vec2, antiAlias bool) *Screen {
	return &Screen{dst: dst, offset: offset, antiAlias: antiAlias}
}

// DrawEntity draws one circle, plus a facing marker when the request has one.
func (s *Screen) DrawEntity(req game.DrawRequest) {
	p := req.Pos.Sub(s.offset)
	x, y, r := float32(p.X), float32(p.Y), float32(req.Radius)
	vector.FillCircle(s.dst, x, y, r, entityColor(req.Color), s.antiAlias)
	if !req.HasFacing {
		return
	}
	switch req.Kind {
	case game.KindPlayer:
		tip := p.Add(req.Facing.Scale(req.Radius * 1.4))
		vector.StrokeLine(s.dst, x, y, float32(tip.X), float32(tip.Y), 3, colPlayer, s.antiAlias)
	case game.KindEnemy:
		eye := p.Add(req.Facing.Scale(req.Radius * 0.55))
		vector.FillCircle(s.dst, float32(eye.X), float32(eye.Y), r*0.25, colFacing, s.antiAlias)
	}
}

// DrawAimLine draws the aim guide from two radii in front of the player.
func (s *Screen) DrawAimLine(player geom.Vec2, radius float64, aim geom.Vec2) {
	if aim.IsZero() {
		return
	}
	from := player.Add(aim.Scale(radius * 2)).Sub(s.offset)
	to := from.Add(aim.Scale(aimLineLength))
	vector.StrokeLine(s.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, colAim, s.antiAlias)
}

// DrawTiles fills the viewport with a checkerboard that scrolls with the
// camera.
func (s *Screen) DrawTiles() {
	s.dst.Fill(colBackground)
	b := s.dst.Bounds()
	w, h := b.Dx(), b.Dy()
	startX, col0 := tileStart(s.offset.X, tileSize)
	startY, row0 := tileStart(s.offset.Y, tileSize)
	for row, y := row0, startY; y < float64(h); row, y = row+1, y+tileSize {
		for col, x := col0, startX; x < float64(w); col, x = col+1, x+tileSize {
			c := colTileDark
			if (row+col)%2 == 0 {
				c = colTileLight
			}
			vector.FillRect(s.dst, float32(x), float32(y), tileSize, tileSize, c, false)
		}
	}
}

// tileStart returns the screen coordinate of the first tile edge at or left
// of zero for a camera offset, and that tile's world index.
func tileStart(offset float64, size int) (float64, int) {
	idx := int(math.Floor(offset / float64(size)))
	return float64(idx*size) - offset, idx
}
