package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains pulse timing values.
type Config struct {
	Flashes     int
	OnDuration  Range
	OffDuration Range
}

// Engine flashes the timer display when a phase ends. Starting a new pulse
// cancels the one in progress.
type Engine struct {
	mu        sync.Mutex
	config    Config
	highlight func(bool)
	cancel    context.CancelFunc
	done      chan struct{}
	rng       *rand.Rand
}

// New creates a pulse engine that reports each frame to highlight.
func New(config Config, highlight func(bool)) *Engine {
	return &Engine{
		config:    config,
		highlight: highlight,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Play starts a pulse; it satisfies the completion cue contract.
func (engine *Engine) Play() error {
	engine.Pulse(context.Background())
	return nil
}

// Pulse starts a flash sequence that ends early when ctx is cancelled.
// The display is always left un-highlighted.
func (engine *Engine) Pulse(ctx context.Context) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	previous := engine.done
	done := make(chan struct{})
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		if previous != nil {
			<-previous
		}
		engine.run(runCtx)
	}()
}

// Stop terminates any active pulse.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

// Wait blocks until the latest pulse has finished.
func (engine *Engine) Wait() {
	engine.mu.Lock()
	done := engine.done
	engine.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (engine *Engine) run(ctx context.Context) {
	defer engine.highlight(false)
	for flash := 0; flash < engine.config.Flashes; flash++ {
		engine.highlight(true)
		if !sleepWithContext(ctx, engine.sample(engine.config.OnDuration)) {
			return
		}
		engine.highlight(false)
		if !sleepWithContext(ctx, engine.sample(engine.config.OffDuration)) {
			return
		}
	}
}

// sample guards the shared rng, which is not safe for concurrent use.
func (engine *Engine) sample(value Range) time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return value.Random(engine.rng)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
