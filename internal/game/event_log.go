package game

import (
	"fmt"

	"github.com/Garsondee/Circle-Arena/internal/geom"
)

// EventKind names something that happened during a tick.
type EventKind int

const (
	EventShot EventKind = iota
	EventHit
	EventKill
	EventPlayerHurt
	EventReloadStart
	EventReloaded
	EventSpawn
	EventDespawn
	EventPaused
	EventResumed
	EventGameOver
	EventReset
)

var eventNames = [...]string{
	EventShot:        "shot",
	EventHit:         "hit",
	EventKill:        "kill",
	EventPlayerHurt:  "player_hurt",
	EventReloadStart: "reload_start",
	EventReloaded:    "reloaded",
	EventSpawn:       "spawn",
	EventDespawn:     "despawn",
	EventPaused:      "paused",
	EventResumed:     "resumed",
	EventGameOver:    "game_over",
	EventReset:       "reset",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is one recorded occurrence. Value carries a kind-specific number:
// remaining health for player_hurt, ammo for shot, enemy count for spawn.
type Event struct {
	Tick  int
	Kind  EventKind
	Pos   geom.Vec2
	Value float64
}

// String formats the event as a fixed-width log line.
//
//	[T=0420] kill          (  -312.4,   88.0)  1
func (e Event) String() string {
	return fmt.Sprintf("[T=%04d] %-13s (%8.1f,%7.1f)  %g", e.Tick, e.Kind, e.Pos.X, e.Pos.Y, e.Value)
}

// EventLog collects every event of a session for tests and headless reports.
// Unlike Feed it is unbounded.
type EventLog struct {
	entries []Event
}

// NewEventLog returns an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add records an event.
func (l *EventLog) Add(e Event) {
	l.entries = append(l.entries, e)
}

// Entries returns all recorded events in order.
func (l *EventLog) Entries() []Event {
	return l.entries
}

// Filter returns the events of the given kind.
func (l *EventLog) Filter(kind EventKind) []Event {
	var out []Event
	for _, e := range l.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events of the given kind were recorded.
func (l *EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range l.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Clear drops all entries.
func (l *EventLog) Clear() {
	l.entries = l.entries[:0]
}

// FirstTick returns the tick of the first event of kind, or -1.
func (l *EventLog) FirstTick(kind EventKind) int {
	for _, e := range l.entries {
		if e.Kind == kind {
			return e.Tick
		}
	}
	return -1
}

// --- Feed ---

const feedCapacity = 12

// Feed is a small ring buffer of the most recent events for the debug panel.
type Feed struct {
	entries [feedCapacity]Event
	head    int
	count   int
}

// Add appends an event, overwriting the oldest once full.
func (f *Feed) Add(e Event) {
	f.entries[f.head] = e
	f.head = (f.head + 1) % feedCapacity
	if f.count < feedCapacity {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *Feed) Recent() []Event {
	out := make([]Event, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedCapacity) % feedCapacity
		out[i] = f.entries[idx]
	}
	return out
}

// Reset empties the feed.
func (f *Feed) Reset() {
	f.head = 0
	f.count = 0
}
