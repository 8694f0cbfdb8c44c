package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Circle-Arena/internal/game"
)

const (
	hudBorder   = 12
	heartRadius = 9
	ammoW       = 5
	ammoH       = 14
	barW        = 160
	barH        = 6
)

// DrawHUD renders health hearts, ammo icons and the weapon timer bar.
func DrawHUD(dst *ebiten.Image, snap game.Snapshot, antiAlias bool) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()

	// Hearts, top-left.
	for i := 0; i < snap.MaxHealth; i++ {
		c := colHeartEmpty
		if i < snap.Health {
			c = colHeart
		}
		cx := float32(hudBorder + heartRadius + i*(heartRadius*2+6))
		vector.FillCircle(dst, cx, hudBorder+heartRadius, heartRadius, c, antiAlias)
	}

	// Ammo, bottom-right, newest round on the left.
	for i := 0; i < snap.MaxAmmo; i++ {
		c := colAmmoEmpty
		if i < snap.Ammo {
			c = colAmmo
		}
		x := float32(w - hudBorder - (i+1)*(ammoW+3))
		vector.FillRect(dst, x, float32(h-hudBorder-ammoH), ammoW, ammoH, c, false)
	}

	// Weapon bar centred under the player while a timer runs.
	if snap.Weapon != game.WeaponIdle && snap.State == game.StateRunning {
		bx := float32(w-barW) / 2
		by := float32(h)/2 + 40
		c := colBarCool
		if snap.Weapon == game.WeaponReloading {
			c = colBarReload
		}
		vector.FillRect(dst, bx, by, barW, barH, colBarBack, false)
		vector.FillRect(dst, bx, by, float32(snap.WeaponProgress)*barW, barH, c, false)
	}

	drawText(dst, fmt.Sprintf("kills %d", snap.Stats.Kills), float64(w)/2, hudBorder, 1, true, colStatsText)
}

// DrawPause dims the screen and names the paused state.
func DrawPause(dst *ebiten.Image) {
	b := dst.Bounds()
	vector.FillRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), colShade, false)
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	drawText(dst, "PAUSED", cx, cy-textHeight(4), 4, true, colTitle)
	drawText(dst, "Esc to resume", cx, cy+textHeight(1), 1, true, colStatsText)
}

// DrawGameOver shows the final stats and how to restart.
func DrawGameOver(dst *ebiten.Image, snap game.Snapshot, copied bool) {
	b := dst.Bounds()
	vector.FillRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), colShade, false)
	cx := float64(b.Dx()) / 2
	y := float64(b.Dy())/2 - textHeight(5)

	drawText(dst, "GAME OVER", cx, y, 5, true, colGameOver)
	y += textHeight(5)
	drawText(dst, fmt.Sprintf("Accuracy: %.3f", snap.Accuracy), cx, y, 2, true, colStatsText)
	y += textHeight(2)
	drawText(dst, fmt.Sprintf("Kills: %d", snap.Stats.Kills), cx, y, 2, true, colStatsText)
	y += textHeight(2)
	drawText(dst, "Grade: "+snap.Grade, cx, y, 2, true, colStatsText)
	y += textHeight(4)
	drawText(dst, "Space to restart", cx, y, 2, true, colRestartTip)
	y += textHeight(2) * 1.5
	tip := "C to copy report"
	if copied {
		tip = "report copied"
	}
	drawText(dst, tip, cx, y, 1, true, colStatsText)
}
