package render

import (
	"image/color"

	"github.com/Garsondee/Circle-Arena/internal/game"
)

var (
	colBackground = color.RGBA{R: 18, G: 20, B: 24, A: 255}
	colTileDark   = color.RGBA{R: 26, G: 28, B: 34, A: 255}
	colTileLight  = color.RGBA{R: 32, G: 35, B: 42, A: 255}

	colPlayer = color.RGBA{R: 90, G: 200, B: 250, A: 255}
	colBullet = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	colEnemy  = color.RGBA{R: 230, G: 70, B: 70, A: 255}
	colFacing = color.RGBA{R: 20, G: 20, B: 24, A: 220}
	colAim    = color.RGBA{R: 255, G: 255, B: 255, A: 70}

	colHeart      = color.RGBA{R: 235, G: 60, B: 80, A: 255}
	colHeartEmpty = color.RGBA{R: 70, G: 40, B: 45, A: 255}
	colAmmo       = color.RGBA{R: 240, G: 210, B: 110, A: 255}
	colAmmoEmpty  = color.RGBA{R: 70, G: 64, B: 50, A: 255}
	colBarBack    = color.RGBA{R: 40, G: 44, B: 52, A: 220}
	colBarCool    = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	colBarReload  = color.RGBA{R: 240, G: 170, B: 60, A: 255}

	colPanel      = color.RGBA{R: 8, G: 10, B: 12, A: 210}
	colPanelEdge  = color.RGBA{R: 70, G: 90, B: 110, A: 180}
	colShade      = color.RGBA{R: 0, G: 0, B: 0, A: 150}
	colTitle      = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	colGameOver   = color.RGBA{R: 240, G: 80, B: 80, A: 255}
	colStatsText  = color.RGBA{R: 210, G: 210, B: 220, A: 255}
	colRestartTip = color.RGBA{R: 150, G: 200, B: 150, A: 255}
)

// entityColor resolves a draw request's palette tag.
func entityColor(tag game.ColorTag) color.RGBA {
	switch tag {
	case game.ColorPlayer:
		return colPlayer
	case game.ColorBullet:
		return colBullet
	default:
		return colEnemy
	}
}
