package animation

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"
)

type frameRecorder struct {
	mu     sync.Mutex
	frames []bool
}

func (recorder *frameRecorder) record(on bool) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.frames = append(recorder.frames, on)
}

func (recorder *frameRecorder) snapshot() []bool {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]bool(nil), recorder.frames...)
}

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fixed := Range{Min: time.Second, Max: time.Second}
	if fixed.Random(rng) != time.Second {
		t.Error("expected fixed range to return Min")
	}
	value := Range{Min: 10 * time.Millisecond, Max: 20 * time.Millisecond}
	for i := 0; i < 100; i++ {
		got := value.Random(rng)
		if got < value.Min || got >= value.Max {
			t.Fatalf("sample %v outside [%v, %v)", got, value.Min, value.Max)
		}
	}
}

func TestPulseAlternatesAndEndsOff(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(Config{
		Flashes:     3,
		OnDuration:  Range{Min: time.Millisecond},
		OffDuration: Range{Min: time.Millisecond},
	}, recorder.record)

	if err := engine.Play(); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	engine.Wait()

	frames := recorder.snapshot()
	want := []bool{true, false, true, false, true, false, false}
	if len(frames) != len(want) {
		t.Fatalf("expected %v, got %v", want, frames)
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, frames)
		}
	}
}

func TestStopLeavesDisplayOff(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(Config{
		Flashes:     100,
		OnDuration:  Range{Min: time.Hour},
		OffDuration: Range{Min: time.Hour},
	}, recorder.record)

	engine.Pulse(context.Background())
	engine.Stop()
	engine.Wait()

	frames := recorder.snapshot()
	if len(frames) == 0 || frames[len(frames)-1] {
		t.Errorf("expected final frame off, got %v", frames)
	}
}

func TestNewPulseReplacesRunningOne(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(Config{
		Flashes:     1,
		OnDuration:  Range{Min: time.Hour},
		OffDuration: Range{Min: time.Millisecond},
	}, recorder.record)

	engine.Pulse(context.Background())
	engine.Pulse(context.Background())
	engine.Stop()

	done := make(chan struct{})
	go func() {
		engine.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("second pulse did not cancel the first")
	}
}
