package app

import (
	"fmt"
	"time"

	"pomotask/internal/core/model"
	"pomotask/internal/core/session"
	"pomotask/internal/core/tasks"
)

// Snapshot is everything a front end needs to render. It is rebuilt after
// every change and never shares memory with the controller.
type Snapshot struct {
	Clock            string
	Remaining        int
	Phase            session.Phase
	PhaseLabel       string
	Running          bool
	Progress         float64
	CycleSessions    int
	SessionsPerCycle int
	// CompletedPomodoros counts finished work sessions since launch.
	CompletedPomodoros int
	Durations          model.Durations
	SoundEnabled       bool

	Tasks     []model.Task
	TaskStats tasks.Stats

	// Expired marks the snapshot published right after a phase ran out.
	Expired bool
	At      time.Time
}

func buildSnapshot(state session.State, sound bool, list []model.Task, at time.Time) Snapshot {
	return Snapshot{
		Clock:              state.Clock(),
		Remaining:          state.Remaining,
		Phase:              state.Phase,
		PhaseLabel:         state.Phase.Label(),
		Running:            state.Running,
		Progress:           state.Progress(),
		CycleSessions:      state.CycleSessions,
		SessionsPerCycle:   session.SessionsPerCycle,
		CompletedPomodoros: state.Completed,
		Durations:          state.Durations,
		SoundEnabled:       sound,
		Tasks:              list,
		TaskStats:          tasks.Summarize(list),
		At:                 at,
	}
}

// CompletedTasks is the number of checked-off tasks.
func (snapshot Snapshot) CompletedTasks() int {
	return snapshot.TaskStats.Completed
}

// CycleLabel renders the position within the current cycle, e.g. "2/4".
func (snapshot Snapshot) CycleLabel() string {
	return fmt.Sprintf("%d/%d", snapshot.CycleSessions, snapshot.SessionsPerCycle)
}

// StatusLine is a one-line summary used by the tray and window title.
func (snapshot Snapshot) StatusLine() string {
	status := snapshot.PhaseLabel + " " + snapshot.Clock
	if !snapshot.Running {
		status += " (paused)"
	}
	return status
}
