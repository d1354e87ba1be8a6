package timekeeper

import (
	"time"

	"pomotask/internal/core/session"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventExpired     EventType = "expired"
	EventSettings    EventType = "settings"
	EventCueError    EventType = "cue_error"
)

// Event carries a full state snapshot so observers never need to merge
// partial updates; a dropped event is repaired by the next one.
type Event struct {
	Type EventType
	// From is the phase that just ended on EventExpired.
	From    session.Phase
	State   session.State
	Sound   bool
	Message string
	At      time.Time
}
