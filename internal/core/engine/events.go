package engine

import "time"

// Phase is the active interval kind.
type Phase string

const (
	PhaseWork Phase = "work"
	PhaseRest Phase = "rest"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventSessionEnd  EventType = "session_end"
)

// Snapshot is a copy of the observable engine state.
type Snapshot struct {
	Phase          Phase
	Active         bool
	Preparing      bool
	PrepRemaining  int
	PhaseRemaining int
	SessionElapsed int
	SessionTotal   int
	Progress       float64
}

// Event represents an engine update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
