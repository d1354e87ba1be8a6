// Package session holds the Pomodoro phase machine as pure transitions over
// an owned State value.
package session

import (
	"fmt"

	"pomotask/internal/core/model"
)

// Phase identifies the active countdown.
type Phase string

const (
	PhaseWork      Phase = "work"
	PhaseBreak     Phase = "break"
	PhaseLongBreak Phase = "long_break"
)

// SessionsPerCycle is the number of work sessions that end in a long break.
const SessionsPerCycle = 4

// Label returns a human-readable phase name.
func (phase Phase) Label() string {
	switch phase {
	case PhaseWork:
		return "Work"
	case PhaseBreak:
		return "Break"
	case PhaseLongBreak:
		return "Long break"
	default:
		return "Unknown"
	}
}

// IsBreak reports whether phase is a short or long break.
func (phase Phase) IsBreak() bool {
	return phase == PhaseBreak || phase == PhaseLongBreak
}

// State is the complete timer state. Transitions return a new value.
type State struct {
	Phase     Phase
	Remaining int
	Running   bool
	// CycleSessions counts work sessions finished since the last long break.
	CycleSessions int
	// Completed counts every finished work session and is never reset.
	Completed int
	Durations model.Durations
}

// New returns the initial state: a paused work phase at full length.
// Non-positive durations fall back to the defaults.
func New(durations model.Durations) State {
	durations = model.DefaultDurations().Merge(durations)
	return State{
		Phase:     PhaseWork,
		Remaining: durations.Work * 60,
		Durations: durations,
	}
}

// MinutesFor returns the configured length of phase in minutes.
func (state State) MinutesFor(phase Phase) int {
	switch phase {
	case PhaseBreak:
		return state.Durations.Break
	case PhaseLongBreak:
		return state.Durations.LongBreak
	default:
		return state.Durations.Work
	}
}

// SecondsFor returns the configured length of phase in seconds.
func (state State) SecondsFor(phase Phase) int {
	return state.MinutesFor(phase) * 60
}

// ToggleRunning flips the running flag and nothing else.
func (state State) ToggleRunning() State {
	state.Running = !state.Running
	return state
}

// WithRunning sets the running flag; it is a no-op when already set.
func (state State) WithRunning(running bool) State {
	state.Running = running
	return state
}

// Reset returns to a paused, full-length work phase at the start of a cycle.
// Completed is kept.
func (state State) Reset() State {
	state.Running = false
	state.Phase = PhaseWork
	state.CycleSessions = 0
	state.Remaining = state.SecondsFor(PhaseWork)
	return state
}

// Tick advances the countdown by one second while running. It reports true
// when the tick ended the phase, in which case the returned state has
// already moved to the next phase.
func (state State) Tick() (State, bool) {
	if !state.Running {
		return state, false
	}
	if state.Remaining > 0 {
		state.Remaining--
	}
	if state.Remaining > 0 {
		return state, false
	}
	return state.Expire(), true
}

// Expire ends the current phase and starts the next one at full length.
// The long break is chosen from the cycle count before it is incremented,
// so it follows the fourth work session.
func (state State) Expire() State {
	if state.Phase == PhaseWork {
		state.Completed++
		if state.CycleSessions == SessionsPerCycle-1 {
			state.Phase = PhaseLongBreak
		} else {
			state.Phase = PhaseBreak
		}
		state.CycleSessions++
		state.Remaining = state.SecondsFor(state.Phase)
		return state
	}

	if state.Phase == PhaseLongBreak {
		state.CycleSessions = 0
	}
	state.Phase = PhaseWork
	state.Remaining = state.SecondsFor(PhaseWork)
	return state
}

// SkipBreak ends a running break early. Work phases are left untouched.
func (state State) SkipBreak() State {
	if !state.Phase.IsBreak() {
		return state
	}
	return state.Expire()
}

// WithDuration changes the configured length of phase. The in-progress
// countdown is not adjusted; the value applies from the next transition.
func (state State) WithDuration(phase Phase, minutes int) (State, error) {
	if minutes < 1 {
		return state, fmt.Errorf("set %s duration to %d: %w", phase, minutes, model.ErrInvalidDuration)
	}
	switch phase {
	case PhaseWork:
		state.Durations.Work = minutes
	case PhaseBreak:
		state.Durations.Break = minutes
	case PhaseLongBreak:
		state.Durations.LongBreak = minutes
	default:
		return state, fmt.Errorf("set duration: unknown phase %q", phase)
	}
	return state, nil
}

// WithDurations replaces every phase length at once, rejecting the whole
// set if any value is invalid.
func (state State) WithDurations(durations model.Durations) (State, error) {
	if err := durations.Validate(); err != nil {
		return state, fmt.Errorf("set durations: %w", err)
	}
	state.Durations = durations
	return state, nil
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (state State) Progress() float64 {
	total := state.SecondsFor(state.Phase)
	if total <= 0 {
		return 1
	}
	progress := float64(total-state.Remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Clock returns the remaining time as MM:SS.
func (state State) Clock() string {
	return FormatRemaining(state.Remaining)
}

// FormatRemaining renders seconds as MM:SS. Minutes are not capped at 59.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
