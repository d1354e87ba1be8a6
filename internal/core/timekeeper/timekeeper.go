package timekeeper

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"pomotask/internal/core/model"
	"pomotask/internal/core/session"
)

// ErrClosed is returned by operations on a closed TimeKeeper.
var ErrClosed = errors.New("timekeeper closed")

// Notifier plays the completion cue.
type Notifier interface {
	Play() error
}

// Ticker is the clock that drives the countdown.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	SoundEnabled bool
	// NewTicker defaults to a time.Ticker.
	NewTicker func(interval time.Duration) Ticker
}

type systemTicker struct {
	*time.Ticker
}

func (ticker systemTicker) Chan() <-chan time.Time {
	return ticker.C
}

func newSystemTicker(interval time.Duration) Ticker {
	return systemTicker{time.NewTicker(interval)}
}

// TimeKeeper owns the session state and the one-second ticker that drives it.
// A ticker goroutine exists only while the timer is running.
type TimeKeeper struct {
	mu       sync.Mutex
	options  Config
	state    session.State
	sound    bool
	notifier Notifier
	events   []chan Event
	stopCh   chan struct{}
	closed   bool
	now      func() time.Time
}

// New creates a paused TimeKeeper at the start of a work phase.
func New(durations model.Durations, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.NewTicker == nil {
		options.NewTicker = newSystemTicker
	}

	return &TimeKeeper{
		options: options,
		state:   session.New(durations),
		sound:   options.SoundEnabled,
		now:     time.Now,
	}
}

// SetNotifier injects the completion cue.
func (keeper *TimeKeeper) SetNotifier(notifier Notifier) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.notifier = notifier
}

// Subscribe registers a new observer channel. Channels are closed by Close.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	if keeper.closed {
		close(ch)
	} else {
		keeper.events = append(keeper.events, ch)
	}
	keeper.mu.Unlock()
	return ch
}

// State returns the current state.
func (keeper *TimeKeeper) State() session.State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// Running reports whether the countdown is active.
func (keeper *TimeKeeper) Running() bool {
	return keeper.State().Running
}

// Toggle starts a paused timer or pauses a running one.
func (keeper *TimeKeeper) Toggle() {
	keeper.apply(session.Intent{Kind: session.IntentToggle})
}

// Start resumes the countdown if it is paused.
func (keeper *TimeKeeper) Start() {
	keeper.apply(session.Intent{Kind: session.IntentStart})
}

// Pause freezes the countdown if it is running.
func (keeper *TimeKeeper) Pause() {
	keeper.apply(session.Intent{Kind: session.IntentPause})
}

// Reset stops the timer and returns to a fresh work phase.
func (keeper *TimeKeeper) Reset() {
	keeper.apply(session.Intent{Kind: session.IntentReset})
}

// SkipBreak ends the current break and returns to work state.
func (keeper *TimeKeeper) SkipBreak() {
	keeper.apply(session.Intent{Kind: session.IntentSkipBreak})
}

// SetDuration changes one phase length; it applies from the next transition.
func (keeper *TimeKeeper) SetDuration(phase session.Phase, minutes int) error {
	return keeper.apply(session.Intent{Kind: session.IntentSetDuration, Phase: phase, Minutes: minutes})
}

// UpdateDurations replaces all phase lengths at once.
func (keeper *TimeKeeper) UpdateDurations(durations model.Durations) error {
	return keeper.apply(session.Intent{Kind: session.IntentSetDurations, Durations: durations})
}

// SetSoundEnabled gates the completion cue.
func (keeper *TimeKeeper) SetSoundEnabled(enabled bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.setSoundLocked(enabled)
}

// ToggleSoundEnabled flips the cue gate in one step and returns the new
// value.
func (keeper *TimeKeeper) ToggleSoundEnabled() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.setSoundLocked(!keeper.sound)
	return keeper.sound
}

func (keeper *TimeKeeper) setSoundLocked(enabled bool) {
	if keeper.closed || keeper.sound == enabled {
		return
	}
	keeper.sound = enabled
	keeper.emitLocked(Event{
		Type:  EventSettings,
		State: keeper.state,
		Sound: enabled,
		At:    keeper.now(),
	})
}

// SoundEnabled reports whether the completion cue is played.
func (keeper *TimeKeeper) SoundEnabled() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.sound
}

// Close stops the ticker and closes observers. It is safe to call twice.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.stopLoopLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) apply(intent session.Intent) error {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return ErrClosed
	}

	next, outcome := session.Apply(keeper.state, intent)
	if outcome.Err != nil {
		keeper.mu.Unlock()
		return outcome.Err
	}
	keeper.state = next
	keeper.syncLoopLocked()

	if outcome.Changed {
		eventType := EventStateChange
		switch intent.Kind {
		case session.IntentSetDuration, session.IntentSetDurations:
			eventType = EventSettings
		}
		keeper.emitLocked(Event{
			Type:  eventType,
			State: next,
			Sound: keeper.sound,
			At:    keeper.now(),
		})
	}
	keeper.mu.Unlock()
	return nil
}

// syncLoopLocked keeps exactly one ticker goroutine alive while running and
// none while paused.
func (keeper *TimeKeeper) syncLoopLocked() {
	if keeper.state.Running && keeper.stopCh == nil {
		keeper.stopCh = make(chan struct{})
		go keeper.run(keeper.stopCh)
		return
	}
	if !keeper.state.Running {
		keeper.stopLoopLocked()
	}
}

func (keeper *TimeKeeper) stopLoopLocked() {
	if keeper.stopCh != nil {
		close(keeper.stopCh)
		keeper.stopCh = nil
	}
}

func (keeper *TimeKeeper) run(stopCh chan struct{}) {
	ticker := keeper.options.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.Chan():
			keeper.tick(stopCh, tickTime)
		}
	}
}

// tick ignores ticks from a loop that has already been replaced or stopped.
func (keeper *TimeKeeper) tick(loop chan struct{}, tickTime time.Time) {
	keeper.mu.Lock()
	if keeper.closed || loop == nil || keeper.stopCh != loop {
		keeper.mu.Unlock()
		return
	}

	next, outcome := session.Apply(keeper.state, session.Intent{Kind: session.IntentTick})
	keeper.state = next
	keeper.syncLoopLocked()

	if !outcome.Expired {
		keeper.emitLocked(Event{
			Type:  EventTick,
			State: next,
			Sound: keeper.sound,
			At:    tickTime,
		})
		keeper.mu.Unlock()
		return
	}

	keeper.emitLocked(Event{
		Type:  EventExpired,
		From:  outcome.From,
		State: next,
		Sound: keeper.sound,
		At:    tickTime,
	})
	notifier := keeper.notifier
	sound := keeper.sound
	keeper.mu.Unlock()

	if sound && notifier != nil {
		keeper.playCue(notifier, next, tickTime)
	}
}

// playCue never lets a failing notifier reach the countdown.
func (keeper *TimeKeeper) playCue(notifier Notifier, state session.State, at time.Time) {
	err := func() (err error) {
		defer func() {
			if recovered := recover(); recovered != nil {
				err = fmt.Errorf("notifier panic: %v", recovered)
			}
		}()
		return notifier.Play()
	}()
	if err == nil {
		return
	}

	log.Printf("completion cue: %v", err)
	keeper.emit(Event{
		Type:    EventCueError,
		State:   state,
		Message: err.Error(),
		At:      at,
	})
}

func (keeper *TimeKeeper) emit(event Event) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	event.Sound = keeper.sound
	keeper.emitLocked(event)
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	events := append([]chan Event(nil), keeper.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
