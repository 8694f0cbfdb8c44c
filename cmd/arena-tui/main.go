// Command arena-tui plays the arena in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Circle-Arena/internal/game"
)

func main() {
	var rate int
	var logPath string

	flag.IntVar(&rate, "rate", game.NominalTickRate, "simulation ticks per second")
	flag.StringVar(&logPath, "log", "", "write debug log to this file")
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	cols, rows := screen.Size()
	cfg := game.DefaultConfigAt(rate)
	cfg.ViewportWidth, cfg.ViewportHeight = viewportSize(cols, rows)
	session, err := game.NewSession(cfg, game.WithLogger(logger))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	report := run(screen, session, logger)
	screen.Fini()
	if report != "" {
		fmt.Print(report)
	}
}

// run drives the session at its tick rate until the player quits. It returns
// the report of the last session.
func run(screen tcell.Screen, s *game.Session, logger *slog.Logger) string {
	ticker := time.NewTicker(time.Second / time.Duration(s.Config().TickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	var held heldInput
	status := "wasd move  arrows/mouse shoot  p pause  q quit"
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return s.Report()
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEnd ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return s.Report()
				}
				if held.press(ev) {
					continue
				}
				switch {
				case ev.Key() == tcell.KeyEscape:
					s.TogglePause()
				case ev.Key() != tcell.KeyRune:
				case ev.Rune() == 'p':
					s.TogglePause()
				case ev.Rune() == ' ':
					s.Restart()
				case ev.Rune() == 'c' && s.State() == game.StateGameOver:
					if err := clipboard.WriteAll(s.Report()); err != nil {
						logger.Warn("copy report failed", "err", err)
						status = "clipboard unavailable"
					} else {
						status = "report copied"
					}
				}
			case *tcell.EventMouse:
				x, y := ev.Position()
				held.mouseAt(x, y, ev.Buttons()&tcell.Button1 != 0)
			case *tcell.EventResize:
				cols, rows := ev.Size()
				s.Resize(viewportSize(cols, rows))
				screen.Sync()
			case *tcell.EventFocus:
				if !ev.Focused {
					s.FocusLost()
				}
			}

		case <-ticker.C:
			s.Step(held.next(s))
			drawFrame(screen, s, status)
		}
	}
}
