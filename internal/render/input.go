package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Circle-Arena/internal/game"
	"github.com/Garsondee/Circle-Arena/internal/geom"
)

// Command is an edge-triggered frontend action outside the simulation.
type Command int

const (
	CmdTogglePause Command = iota
	CmdRestart
	CmdMinimize
	CmdQuit
	CmdToggleAntiAliasing
	CmdToggleDebug
	CmdToggleAimLine
	CmdCopyReport
	CmdToggleMute
)

var keyBindings = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyEscape, CmdTogglePause},
	{ebiten.KeySpace, CmdRestart},
	{ebiten.KeyPageDown, CmdMinimize},
	{ebiten.KeyEnd, CmdQuit},
	{ebiten.KeyF1, CmdToggleAntiAliasing},
	{ebiten.KeyF12, CmdToggleDebug},
	{ebiten.KeyC, CmdCopyReport},
	{ebiten.KeyM, CmdToggleMute},
}

// DecodeInput reads this frame's movement keys and mouse into a tick input.
// The aim point is in screen space.
func DecodeInput() game.Input {
	mx, my := ebiten.CursorPosition()
	return game.Input{
		Move: moveAxes(
			ebiten.IsKeyPressed(ebiten.KeyW),
			ebiten.IsKeyPressed(ebiten.KeyS),
			ebiten.IsKeyPressed(ebiten.KeyA),
			ebiten.IsKeyPressed(ebiten.KeyD),
		),
		Fire: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Aim:  geom.V(float64(mx), float64(my)),
	}
}

// DecodeCommands returns the commands whose key or button went down this
// frame, in binding order.
func DecodeCommands() []Command {
	var cmds []Command
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		cmds = append(cmds, CmdToggleAimLine)
	}
	return cmds
}

// moveAxes combines held direction keys into -1/0/1 per axis. Opposite keys
// cancel. The result is not normalized; the player clamps it.
func moveAxes(up, down, left, right bool) geom.Vec2 {
	var v geom.Vec2
	if up {
		v.Y--
	}
	if down {
		v.Y++
	}
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	return v
}
