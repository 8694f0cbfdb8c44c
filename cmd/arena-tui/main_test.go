package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Circle-Arena/internal/game"
	"github.com/Garsondee/Circle-Arena/internal/geom"
)

func TestToCell_CentredPlayer(t *testing.T) {
	w, h := viewportSize(80, 24)
	cam := game.NewCamera(0.1)
	cam.Center(geom.Zero, geom.V(w/2, h/2))
	if x, y := toCell(geom.Zero, cam.Offset); x != 40 || y != 12 {
		t.Fatalf("player cell (%d,%d), want (40,12)", x, y)
	}
	if x, y := toCell(geom.V(-1, -1), geom.Zero); x != -1 || y != -1 {
		t.Fatalf("negative positions must floor, got (%d,%d)", x, y)
	}
}

func TestFacingRune(t *testing.T) {
	cases := map[geom.Vec2]rune{
		geom.V(1, 0):  '-',
		geom.V(0, 1):  '|',
		geom.V(1, 1):  '\\',
		geom.V(1, -1): '/',
		geom.V(-1, 0): '-',
	}
	for d, want := range cases {
		if got := facingRune(d.Normalize()); got != want {
			t.Fatalf("facingRune(%+v)=%q, want %q", d, got, want)
		}
	}
}

func TestHeldInput_DecaysAfterHold(t *testing.T) {
	ts := game.NewTestSim(game.WithoutStartingEnemies())
	var h heldInput
	h.press(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	h.press(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))

	in := h.next(ts.Session)
	if in.Move != geom.V(1, 0) || !in.Fire || !in.AimWorld {
		t.Fatalf("first tick input %+v", in)
	}
	if in.Aim.Y >= 0 {
		t.Fatalf("arrow up should aim up, aim=%+v", in.Aim)
	}
	for i := 1; i < holdTicks; i++ {
		h.next(ts.Session)
	}
	if in := h.next(ts.Session); !in.Move.IsZero() || in.Fire {
		t.Fatalf("held keys did not expire: %+v", in)
	}
}

func TestHeldInput_OppositeKeyReplaces(t *testing.T) {
	var h heldInput
	h.press(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	h.press(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	ts := game.NewTestSim(game.WithoutStartingEnemies())
	if in := h.next(ts.Session); in.Move != geom.V(1, 0) {
		t.Fatalf("move %+v, want (1,0)", in.Move)
	}
	if h.press(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)) {
		t.Fatal("unbound key reported as handled")
	}
}

func TestHeldInput_MouseAimsInScreenSpace(t *testing.T) {
	var h heldInput
	h.mouseAt(10, 2, true)
	ts := game.NewTestSim(game.WithoutStartingEnemies())
	in := h.next(ts.Session)
	if in.AimWorld || !in.Fire || in.Aim != geom.V(84, 40) {
		t.Fatalf("mouse input %+v", in)
	}
}
