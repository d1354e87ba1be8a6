// Package app wires the timer and the task list behind one controller that
// front ends dispatch intents into and render snapshots from.
package app

import (
	"sync"
	"time"

	"pomotask/internal/core/model"
	"pomotask/internal/core/session"
	"pomotask/internal/core/tasks"
	"pomotask/internal/core/timekeeper"
)

// Options configures a Controller.
type Options struct {
	Durations    model.Durations
	SoundEnabled bool
	TickInterval time.Duration
	NewTicker    func(time.Duration) timekeeper.Ticker
}

// Controller owns all application state.
type Controller struct {
	keeper *timekeeper.TimeKeeper
	store  *tasks.Store

	mu          sync.Mutex
	subscribers []chan Snapshot
	closed      bool
	forwardDone chan struct{}
	now         func() time.Time
}

// New builds a controller with a paused timer and an empty task list.
func New(options Options) *Controller {
	keeper := timekeeper.New(options.Durations, timekeeper.Config{
		TickInterval: options.TickInterval,
		SoundEnabled: options.SoundEnabled,
		NewTicker:    options.NewTicker,
	})
	controller := &Controller{
		keeper:      keeper,
		store:       tasks.NewStore(),
		forwardDone: make(chan struct{}),
		now:         time.Now,
	}
	go controller.forward(keeper.Subscribe(64))
	return controller
}

// SetNotifier injects the completion cue.
func (controller *Controller) SetNotifier(notifier timekeeper.Notifier) {
	controller.keeper.SetNotifier(notifier)
}

// Subscribe returns a channel that always holds the latest snapshot. Older
// undelivered snapshots are replaced, never queued.
func (controller *Controller) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		close(ch)
		return ch
	}
	ch <- controller.snapshotLocked(false)
	controller.subscribers = append(controller.subscribers, ch)
	return ch
}

// Snapshot returns the current state.
func (controller *Controller) Snapshot() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.snapshotLocked(false)
}

// ToggleRunning starts or pauses the countdown.
func (controller *Controller) ToggleRunning() {
	controller.keeper.Toggle()
}

// Start resumes the countdown if paused.
func (controller *Controller) Start() {
	controller.keeper.Start()
}

// Pause freezes the countdown if running.
func (controller *Controller) Pause() {
	controller.keeper.Pause()
}

// Reset returns to a paused work phase at the start of a cycle.
func (controller *Controller) Reset() {
	controller.keeper.Reset()
}

// SkipBreak ends the current break early.
func (controller *Controller) SkipBreak() {
	controller.keeper.SkipBreak()
}

// SetPhaseDuration changes one phase length. Values below one minute are
// rejected and the previous value is kept.
func (controller *Controller) SetPhaseDuration(phase session.Phase, minutes int) error {
	return controller.keeper.SetDuration(phase, minutes)
}

// UpdateDurations replaces all phase lengths.
func (controller *Controller) UpdateDurations(durations model.Durations) error {
	return controller.keeper.UpdateDurations(durations)
}

// SetSoundEnabled gates the completion cue.
func (controller *Controller) SetSoundEnabled(enabled bool) {
	controller.keeper.SetSoundEnabled(enabled)
}

// ToggleSound flips the completion cue on or off.
func (controller *Controller) ToggleSound() {
	controller.keeper.ToggleSoundEnabled()
}

// AddTask appends a task; blank text is ignored.
func (controller *Controller) AddTask(text string, category model.Category, priority model.Priority) (model.Task, bool) {
	task, ok := controller.store.Add(text, category, priority)
	if ok {
		controller.publish(false)
	}
	return task, ok
}

// ToggleTask flips completion of the task with id; unknown ids are ignored.
func (controller *Controller) ToggleTask(id string) bool {
	ok := controller.store.Toggle(id)
	if ok {
		controller.publish(false)
	}
	return ok
}

// RemoveTask deletes the task with id; unknown ids are ignored.
func (controller *Controller) RemoveTask(id string) bool {
	ok := controller.store.Remove(id)
	if ok {
		controller.publish(false)
	}
	return ok
}

// Close stops the timer and closes every subscriber channel.
func (controller *Controller) Close() {
	controller.keeper.Close()
	<-controller.forwardDone

	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	controller.closed = true
	for _, ch := range controller.subscribers {
		close(ch)
	}
	controller.subscribers = nil
}

func (controller *Controller) forward(events <-chan timekeeper.Event) {
	defer close(controller.forwardDone)
	for event := range events {
		controller.publish(event.Type == timekeeper.EventExpired)
	}
}

// publish builds and delivers under one lock so subscribers observe
// snapshots in the order they were taken.
func (controller *Controller) publish(expired bool) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	snapshot := controller.snapshotLocked(expired)
	for _, ch := range controller.subscribers {
		select {
		case ch <- snapshot:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}

func (controller *Controller) snapshotLocked(expired bool) Snapshot {
	snapshot := buildSnapshot(controller.keeper.State(), controller.keeper.SoundEnabled(), controller.store.Tasks(), controller.now())
	snapshot.Expired = expired
	return snapshot
}
