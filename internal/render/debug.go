package render

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Circle-Arena/internal/game"
)

const (
	debugLineH = 16 // debug font line height
	debugCharW = 6  // debug font char width
	debugPad   = 5
)

// debugLines formats the numbers shown in the debug panel.
func debugLines(snap game.Snapshot, tps float64, viewW, viewH int) []string {
	in := snap.Input
	cam := math.Hypot(
		snap.CameraOffset.X+float64(viewW)/2-snap.PlayerPos.X,
		snap.CameraOffset.Y+float64(viewH)/2-snap.PlayerPos.Y,
	)
	return []string{
		fmt.Sprintf("tps: %.1f  tick: %d", tps, snap.Tick),
		fmt.Sprintf("screen: %dx%d", viewW, viewH),
		fmt.Sprintf("session: %.8s  state: %s", snap.ID, snap.State),
		fmt.Sprintf("pos: (%.1f, %.1f)", snap.PlayerPos.X, snap.PlayerPos.Y),
		fmt.Sprintf("dir: (%.2f, %.2f)", snap.PlayerDir.X, snap.PlayerDir.Y),
		fmt.Sprintf("aim: (%.2f, %.2f)", snap.Aim.X, snap.Aim.Y),
		fmt.Sprintf("input: (%.0f, %.0f)  fire: %v", in.Move.X, in.Move.Y, in.Fire),
		fmt.Sprintf("health: %d/%d  invuln: %d", snap.Health, snap.MaxHealth, snap.Invulnerable),
		fmt.Sprintf("weapon: %s  ammo: %d/%d", snap.Weapon, snap.Ammo, snap.MaxAmmo),
		fmt.Sprintf("cooldown: %d  reload: %d", snap.CooldownTicks, snap.ReloadTicks),
		fmt.Sprintf("enemies: %d  bullets: %d", snap.Enemies, snap.Bullets),
		fmt.Sprintf("spawn in: %d  despawn in: %d", snap.SpawnTimer, snap.DespawnTimer),
		fmt.Sprintf("camera lag: %.1f", cam),
		fmt.Sprintf("shots: %d  hits: %d  kills: %d", snap.Stats.Shots, snap.Stats.Hits, snap.Stats.Kills),
	}
}

// DrawDebug renders the debug panel top-left, below the hearts, followed by
// the most recent session events.
func DrawDebug(dst *ebiten.Image, snap game.Snapshot, feed []game.Event, tps float64) {
	b := dst.Bounds()
	lines := debugLines(snap, tps, b.Dx(), b.Dy())
	if len(feed) > 0 {
		lines = append(lines, "-- events --")
		for _, e := range feed {
			lines = append(lines, e.String())
		}
	}

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	bx := float32(hudBorder)
	by := float32(hudBorder + heartRadius*2 + 8)
	boxW := float32(maxLen*debugCharW + debugPad*2)
	boxH := float32(len(lines)*debugLineH + debugPad*2)

	vector.FillRect(dst, bx, by, boxW, boxH, colPanel, false)
	vector.StrokeRect(dst, bx, by, boxW, boxH, 1, colPanelEdge, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, int(bx)+debugPad, int(by)+debugPad+i*debugLineH)
	}
}
