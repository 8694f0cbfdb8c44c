package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Circle-Arena/internal/audio"
	"github.com/Garsondee/Circle-Arena/internal/game"
	"github.com/Garsondee/Circle-Arena/internal/render"
	"github.com/Garsondee/Circle-Arena/internal/settings"
)

func main() {
	var settingsPath string
	var rate int
	var volume float64
	var mute bool
	var verbose bool

	flag.StringVar(&settingsPath, "settings", settings.DefaultPath, "settings file")
	flag.IntVar(&rate, "rate", game.NominalTickRate, "simulation ticks per second")
	flag.Float64Var(&volume, "volume", 0.6, "sound volume 0..1")
	flag.BoolVar(&mute, "mute", false, "start with sound off")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	st, err := settings.Load(settingsPath, logger)
	if err != nil {
		logger.Warn("using default settings", "err", err)
	}

	cfg := game.DefaultConfigAt(rate)
	cfg.ViewportWidth = float64(st.ScreenWidth)
	cfg.ViewportHeight = float64(st.ScreenHeight)
	session, err := game.NewSession(cfg, game.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	sound := audio.NewPlayer(volume, logger)
	if err := sound.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	sound.SetMuted(mute)
	defer sound.Close()

	ebiten.SetWindowTitle("Circle Arena")
	ebiten.SetWindowSize(st.ScreenWidth, st.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(cfg.TickRate)

	runErr := ebiten.RunGame(render.NewGame(session, &st, sound, logger))
	if err := st.Save(settingsPath); err != nil {
		logger.Error("save settings", "err", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
