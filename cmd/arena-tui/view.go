package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Circle-Arena/internal/game"
	"github.com/Garsondee/Circle-Arena/internal/geom"
)

// One terminal cell covers cellW x cellH world units; cells are about twice
// as tall as they are wide.
const (
	cellW = 8.0
	cellH = 16.0

	gridEvery = 8 // background dot spacing in cells
)

var (
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 200, 250)).Bold(true)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 230, 120))
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 70, 70)).Bold(true)
	styleGrid    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 64, 72))
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHeart   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(235, 60, 80))
	styleAmmo    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(240, 210, 110))
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// cellView draws session entities as characters. It implements game.Renderer.
type cellView struct {
	screen tcell.Screen
	offset geom.Vec2
}

// toCell maps a world position to a cell for camera offset off.
func toCell(p, off geom.Vec2) (int, int) {
	s := p.Sub(off)
	return int(math.Floor(s.X / cellW)), int(math.Floor(s.Y / cellH))
}

// viewportSize is the world-unit size of a cols x rows terminal.
func viewportSize(cols, rows int) (float64, float64) {
	return float64(cols) * cellW, float64(rows) * cellH
}

func (v *cellView) DrawEntity(req game.DrawRequest) {
	x, y := toCell(req.Pos, v.offset)
	switch req.Kind {
	case game.KindPlayer:
		v.screen.SetContent(x, y, '@', nil, stylePlayer)
		if req.HasFacing {
			fx, fy := toCell(req.Pos.Add(req.Facing.Scale(req.Radius*1.5)), v.offset)
			if fx != x || fy != y {
				v.screen.SetContent(fx, fy, facingRune(req.Facing), nil, stylePlayer)
			}
		}
	case game.KindEnemy:
		v.screen.SetContent(x, y, 'O', nil, styleEnemy)
	case game.KindBullet:
		v.screen.SetContent(x, y, '*', nil, styleBullet)
	}
}

// facingRune picks the line character closest to direction d.
func facingRune(d geom.Vec2) rune {
	a := math.Atan2(d.Y, d.X)
	oct := int(math.Round(a/(math.Pi/4))+8) % 8
	return [...]rune{'-', '\\', '|', '/', '-', '\\', '|', '/'}[oct]
}

// drawGrid scatters dots that scroll with the camera.
func (v *cellView) drawGrid(cols, rows int) {
	ox, oy := toCell(geom.Zero, v.offset)
	for y := 0; y < rows; y++ {
		if (y-oy)%gridEvery != 0 {
			continue
		}
		for x := 0; x < cols; x++ {
			if (x-ox)%(gridEvery*2) == 0 {
				v.screen.SetContent(x, y, '.', nil, styleGrid)
			}
		}
	}
}

func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentred(s tcell.Screen, y int, str string, style tcell.Style) {
	cols, _ := s.Size()
	drawString(s, (cols-len([]rune(str)))/2, y, str, style)
}

// drawFrame renders one full frame of the session.
func drawFrame(screen tcell.Screen, s *game.Session, status string) {
	screen.Clear()
	cols, rows := screen.Size()
	snap := s.Snapshot()

	v := &cellView{screen: screen, offset: snap.CameraOffset}
	v.drawGrid(cols, rows)
	s.Render(v)

	for i := 0; i < snap.MaxHealth; i++ {
		r := '♡'
		if i < snap.Health {
			r = '♥'
		}
		screen.SetContent(1+i*2, 0, r, nil, styleHeart)
	}
	hud := fmt.Sprintf("kills %d  %s", snap.Stats.Kills, snap.Weapon)
	drawCentred(screen, 0, hud, styleHUD)
	for i := 0; i < snap.MaxAmmo; i++ {
		r := '·'
		if i < snap.Ammo {
			r = '|'
		}
		screen.SetContent(cols-2-i, rows-1, r, nil, styleAmmo)
	}
	if status != "" {
		drawString(screen, 1, rows-1, status, styleHUD)
	}

	switch snap.Overlay {
	case game.OverlayPause:
		drawCentred(screen, rows/2, "PAUSED", styleOverlay)
		drawCentred(screen, rows/2+1, "p to resume", styleHUD)
	case game.OverlayGameOver:
		drawCentred(screen, rows/2-1, "GAME OVER", styleEnemy)
		drawCentred(screen, rows/2, fmt.Sprintf("Accuracy: %.3f", snap.Accuracy), styleHUD)
		drawCentred(screen, rows/2+1, fmt.Sprintf("Kills: %d", snap.Stats.Kills), styleHUD)
		drawCentred(screen, rows/2+3, "space to restart", styleHUD)
	}
	screen.Show()
}
