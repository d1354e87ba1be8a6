package session

import "pomotask/internal/core/model"

// IntentKind names a requested state change.
type IntentKind int

const (
	IntentToggle IntentKind = iota
	IntentReset
	IntentTick
	IntentSkipBreak
	IntentSetDuration
	IntentSetDurations
	IntentStart
	IntentPause
)

// Intent is a user- or clock-triggered request.
type Intent struct {
	Kind      IntentKind
	Phase     Phase
	Minutes   int
	Durations model.Durations
}

// Outcome describes side effects the caller owes after Apply.
type Outcome struct {
	// Expired is set when a phase ran out; From holds the phase that ended.
	Expired bool
	From    Phase
	Changed bool
	Err     error
}

// Apply is the single entry point for transitions.
func Apply(state State, intent Intent) (State, Outcome) {
	previous := state
	var outcome Outcome

	switch intent.Kind {
	case IntentToggle:
		state = state.ToggleRunning()
	case IntentStart:
		state = state.WithRunning(true)
	case IntentPause:
		state = state.WithRunning(false)
	case IntentReset:
		state = state.Reset()
	case IntentTick:
		var expired bool
		state, expired = state.Tick()
		if expired {
			outcome.Expired = true
			outcome.From = previous.Phase
		}
	case IntentSkipBreak:
		state = state.SkipBreak()
	case IntentSetDuration:
		state, outcome.Err = state.WithDuration(intent.Phase, intent.Minutes)
	case IntentSetDurations:
		state, outcome.Err = state.WithDurations(intent.Durations)
	}

	outcome.Changed = state != previous
	return state, outcome
}
