package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/Garsondee/Circle-Arena/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue is one sound the game can play.
type Cue int

const (
	CueNone Cue = iota
	CueShot
	CueHit
	CueKill
	CueHurt
	CueReload
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueHit:
		return "hit"
	case CueKill:
		return "kill"
	case CueHurt:
		return "hurt"
	case CueReload:
		return "reload"
	case CueGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// CueFor maps a session event to its sound, or CueNone.
func CueFor(k game.EventKind) Cue {
	switch k {
	case game.EventShot:
		return CueShot
	case game.EventHit:
		return CueHit
	case game.EventKill:
		return CueKill
	case game.EventPlayerHurt:
		return CueHurt
	case game.EventReloaded:
		return CueReload
	case game.EventGameOver:
		return CueGameOver
	default:
		return CueNone
	}
}

// Sound builds a fresh, finite streamer for c at volume vol (0..1).
func Sound(c Cue, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueShot:
		d := 60 * time.Millisecond
		s = NewEnvelope(newSweep(900, -6000, d, WaveSquare, sampleRate), d, 2*time.Millisecond, 40*time.Millisecond, sampleRate)
		vol *= 0.25
	case CueHit:
		d := 50 * time.Millisecond
		s = NewEnvelope(NewOscillator(0, d, WaveNoise, sampleRate), d, time.Millisecond, 40*time.Millisecond, sampleRate)
		vol *= 0.3
	case CueKill:
		d := 120 * time.Millisecond
		tone, err := generators.SineTone(sampleRate, 660)
		if err != nil {
			return nil
		}
		s = NewEnvelope(beep.Take(sampleRate.N(d), tone), d, 5*time.Millisecond, 80*time.Millisecond, sampleRate)
		vol *= 0.4
	case CueHurt:
		d := 250 * time.Millisecond
		s = NewEnvelope(newSweep(220, -400, d, WaveSaw, sampleRate), d, 5*time.Millisecond, 150*time.Millisecond, sampleRate)
		vol *= 0.4
	case CueReload:
		n1 := NewEnvelope(NewOscillator(500, 40*time.Millisecond, WaveSquare, sampleRate),
			40*time.Millisecond, time.Millisecond, 20*time.Millisecond, sampleRate)
		n2 := NewEnvelope(NewOscillator(750, 60*time.Millisecond, WaveSquare, sampleRate),
			60*time.Millisecond, time.Millisecond, 40*time.Millisecond, sampleRate)
		s = beep.Seq(n1, n2)
		vol *= 0.2
	case CueGameOver:
		d := 900 * time.Millisecond
		s = NewEnvelope(newSweep(440, -300, d, WaveSine, sampleRate), d, 10*time.Millisecond, 600*time.Millisecond, sampleRate)
		vol *= 0.5
	default:
		return nil
	}
	return withVolume(s, vol)
}
