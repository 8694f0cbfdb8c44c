package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var uiFace = text.NewGoXFace(basicfont.Face7x13)

// drawText draws s with its top-left (or top-centre when centred) at x, y,
// scaled by scale.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, centred bool, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = uiFace.Metrics().HLineGap + uiFace.Metrics().HAscent + uiFace.Metrics().HDescent
	if centred {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, uiFace, op)
}

// textHeight is the height of one line at scale.
func textHeight(scale float64) float64 {
	_, h := text.Measure("M", uiFace, 0)
	return h * scale
}
