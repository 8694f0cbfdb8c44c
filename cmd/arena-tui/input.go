package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Circle-Arena/internal/game"
	"github.com/Garsondee/Circle-Arena/internal/geom"
)

// holdTicks is how long a key press counts as held. Terminals report presses
// and auto-repeats but never releases.
const holdTicks = 12

// heldInput turns discrete terminal key presses into continuous tick input.
type heldInput struct {
	move     [4]int // ticks left for up, down, left, right
	fire     int
	fireDir  geom.Vec2
	mouse    geom.Vec2 // screen position in world units
	mouseSet bool
	mouseBtn bool
}

// press records a movement or fire key. It returns false for keys it does
// not handle.
func (h *heldInput) press(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		h.shoot(geom.V(0, -1))
	case tcell.KeyDown:
		h.shoot(geom.V(0, 1))
	case tcell.KeyLeft:
		h.shoot(geom.V(-1, 0))
	case tcell.KeyRight:
		h.shoot(geom.V(1, 0))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			h.move[0], h.move[1] = holdTicks, 0
		case 's', 'S':
			h.move[1], h.move[0] = holdTicks, 0
		case 'a', 'A':
			h.move[2], h.move[3] = holdTicks, 0
		case 'd', 'D':
			h.move[3], h.move[2] = holdTicks, 0
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (h *heldInput) shoot(dir geom.Vec2) {
	h.fire = holdTicks
	h.fireDir = dir
	h.mouseSet = false
}

// mouseAt records a mouse event in cell coordinates.
func (h *heldInput) mouseAt(col, row int, left bool) {
	h.mouse = geom.V((float64(col)+0.5)*cellW, (float64(row)+0.5)*cellH)
	h.mouseSet = true
	h.mouseBtn = left
}

// next returns this tick's input and ages every held key by one tick.
func (h *heldInput) next(s *game.Session) game.Input {
	var in game.Input
	if h.move[0] > 0 {
		in.Move.Y--
	}
	if h.move[1] > 0 {
		in.Move.Y++
	}
	if h.move[2] > 0 {
		in.Move.X--
	}
	if h.move[3] > 0 {
		in.Move.X++
	}
	switch {
	case h.mouseSet:
		in.Aim = h.mouse
		in.Fire = h.mouseBtn
	case !h.fireDir.IsZero():
		in.Aim = s.Player().Pos.Add(h.fireDir.Scale(100))
		in.AimWorld = true
		in.Fire = h.fire > 0
	}
	for i := range h.move {
		h.move[i] = max(h.move[i]-1, 0)
	}
	h.fire = max(h.fire-1, 0)
	return in
}
