// Package audio turns session events into short synthesized sound cues.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/Circle-Arena/internal/game"
)

// Player mixes cue streamers into the speaker. Until Init succeeds every
// call is a no-op, so the game runs unchanged without an audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	log         *slog.Logger
}

// NewPlayer returns an uninitialized player at volume (0..1).
func NewPlayer(volume float64, log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
		log:    log,
	}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Debug("audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// Handle plays the cues for one tick's events. Each cue sounds at most once
// per call however many events map to it.
func (p *Player) Handle(events []game.Event) {
	var seen [CueGameOver + 1]bool
	for _, e := range events {
		c := CueFor(e.Kind)
		if c == CueNone || seen[c] {
			continue
		}
		seen[c] = true
		p.Play(c)
	}
}

// Play queues one cue.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := Sound(c, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences future cues.
func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	p.muted = m
	p.mu.Unlock()
}

// Muted reports whether cues are silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
