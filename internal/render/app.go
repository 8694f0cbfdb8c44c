package render

import (
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Circle-Arena/internal/audio"
	"github.com/Garsondee/Circle-Arena/internal/game"
	"github.com/Garsondee/Circle-Arena/internal/settings"
)

// Game adapts a Session to ebiten's Update/Draw/Layout loop. Ebiten runs
// Update at the session tick rate, so every Update is exactly one Step.
type Game struct {
	session  *game.Session
	settings *settings.Settings
	audio    *audio.Player
	log      *slog.Logger

	width, height int
	copied        bool
}

// NewGame wires a session to the window. sound may be nil.
func NewGame(s *game.Session, st *settings.Settings, sound *audio.Player, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	cfg := s.Config()
	return &Game{
		session:  s,
		settings: st,
		audio:    sound,
		log:      log,
		width:    int(cfg.ViewportWidth),
		height:   int(cfg.ViewportHeight),
	}
}

// Update handles frontend commands, then advances the session one tick.
func (g *Game) Update() error {
	s := g.session
	if !ebiten.IsFocused() {
		s.FocusLost()
	}
	cfg := s.Config()
	if g.width != int(cfg.ViewportWidth) || g.height != int(cfg.ViewportHeight) {
		s.Resize(float64(g.width), float64(g.height))
		g.settings.ScreenWidth, g.settings.ScreenHeight = g.width, g.height
	}

	for _, cmd := range DecodeCommands() {
		if err := g.apply(cmd); err != nil {
			return err
		}
	}

	s.Step(DecodeInput())
	if g.audio != nil {
		g.audio.Handle(s.Events())
	}
	return nil
}

func (g *Game) apply(cmd Command) error {
	s := g.session
	switch cmd {
	case CmdQuit:
		return ebiten.Termination
	case CmdTogglePause:
		s.TogglePause()
	case CmdRestart:
		if s.Restart() {
			g.copied = false
		}
	case CmdMinimize:
		s.FocusLost()
		ebiten.MinimizeWindow()
	case CmdToggleAntiAliasing:
		g.toggle(settings.KeyAntiAliasing)
	case CmdToggleDebug:
		g.toggle(settings.KeyShowDebugInfo)
	case CmdToggleAimLine:
		g.toggle(settings.KeyShowAimLine)
	case CmdCopyReport:
		if s.State() != game.StateGameOver {
			return nil
		}
		if err := clipboard.WriteAll(s.Report()); err != nil {
			g.log.Warn("copy report failed", "err", err)
			return nil
		}
		g.copied = true
	case CmdToggleMute:
		if g.audio != nil {
			g.audio.SetMuted(!g.audio.Muted())
		}
	}
	return nil
}

func (g *Game) toggle(k settings.Key) {
	on, err := g.settings.Toggle(k)
	if err != nil {
		g.log.Warn("toggle failed", "setting", string(k), "err", err)
		return
	}
	g.log.Info("toggled setting", "setting", string(k), "value", on)
}

// Draw renders the background, entities, aim line, HUD and overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	snap := s.Snapshot()
	aa := g.settings.AntiAliasing

	sc := NewScreen(screen, snap.CameraOffset, aa)
	sc.DrawTiles()
	s.Render(sc)
	if g.settings.ShowAimLine && snap.State == game.StateRunning {
		sc.DrawAimLine(snap.PlayerPos, s.Player().Radius, snap.Aim)
	}

	DrawHUD(screen, snap, aa)
	if g.settings.ShowDebugInfo {
		DrawDebug(screen, snap, s.Feed(), ebiten.ActualTPS())
	}
	switch snap.Overlay {
	case game.OverlayPause:
		DrawPause(screen)
	case game.OverlayGameOver:
		DrawGameOver(screen, snap, g.copied)
	}
}

// Layout tracks the window size; Update applies changes to the session.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
