package cue

import (
	"bytes"
	"errors"
	"testing"

	"pomotask/resources"

	"github.com/gopxl/beep/v2"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestBellWritesBEL(t *testing.T) {
	var out bytes.Buffer
	if err := NewBell(&out).Play(); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if out.String() != "\a" {
		t.Errorf("expected BEL, got %q", out.String())
	}
}

func TestBellErrors(t *testing.T) {
	if err := NewBell(nil).Play(); !errors.Is(err, ErrNoOutput) {
		t.Errorf("expected ErrNoOutput, got %v", err)
	}
	if err := NewBell(failingWriter{}).Play(); err == nil {
		t.Error("expected write error")
	}
}

func TestMultiPlaysAllAndJoinsErrors(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	multi := Multi{
		Func(func() error { calls++; return boom }),
		nil,
		Func(func() error { calls++; return nil }),
	}

	err := multi.Play()
	if calls != 2 {
		t.Errorf("expected both notifiers to play, got %d", calls)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected joined error to wrap boom, got %v", err)
	}
}

func TestEmptyMultiReportsNoOutput(t *testing.T) {
	if err := (Multi{}).Play(); !errors.Is(err, ErrNoOutput) {
		t.Errorf("expected ErrNoOutput for empty Multi, got %v", err)
	}
	if err := (Multi{nil, nil}).Play(); !errors.Is(err, ErrNoOutput) {
		t.Errorf("expected ErrNoOutput for nil members, got %v", err)
	}
}

func TestNilFunc(t *testing.T) {
	var fn Func
	if err := fn.Play(); !errors.Is(err, ErrNoOutput) {
		t.Errorf("expected ErrNoOutput, got %v", err)
	}
}

func TestDesktopWithoutApp(t *testing.T) {
	var desktop *Desktop
	if err := desktop.Play(); !errors.Is(err, ErrNoOutput) {
		t.Errorf("expected ErrNoOutput, got %v", err)
	}
}

func countSamples(streamer beep.Streamer) int {
	total := 0
	samples := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(samples)
		total += n
		if !ok {
			return total
		}
	}
}

func TestChimeOpensSpeakerOnceAndPlaysEveryTime(t *testing.T) {
	chime := NewChime(resources.Chime())
	inits := 0
	chime.initSpeaker = func(rate beep.SampleRate, bufferSize int) error {
		inits++
		if rate != 22050 {
			t.Errorf("expected 22050 Hz, got %d", rate)
		}
		if bufferSize <= 0 {
			t.Errorf("expected positive buffer size, got %d", bufferSize)
		}
		return nil
	}
	var played []beep.Streamer
	chime.play = func(streamers ...beep.Streamer) {
		played = append(played, streamers...)
	}

	for i := 0; i < 2; i++ {
		if err := chime.Play(); err != nil {
			t.Fatalf("Play %d failed: %v", i, err)
		}
	}

	if inits != 1 {
		t.Errorf("expected speaker opened once, got %d", inits)
	}
	if len(played) != 2 {
		t.Fatalf("expected two plays, got %d", len(played))
	}
	first, second := countSamples(played[0]), countSamples(played[1])
	if first == 0 || first != second {
		t.Errorf("expected both plays to stream the full clip, got %d and %d", first, second)
	}
}

func TestChimeReportsDecodeAndSpeakerErrors(t *testing.T) {
	broken := NewChime([]byte("not a wav file"))
	broken.initSpeaker = func(beep.SampleRate, int) error {
		t.Error("speaker must not open for an undecodable clip")
		return nil
	}
	broken.play = func(...beep.Streamer) { t.Error("nothing should play") }
	if err := broken.Play(); err == nil {
		t.Error("expected decode error")
	}

	noDevice := errors.New("no audio device")
	silent := NewChime(resources.Chime())
	silent.initSpeaker = func(beep.SampleRate, int) error { return noDevice }
	silent.play = func(...beep.Streamer) { t.Error("nothing should play") }
	if err := silent.Play(); !errors.Is(err, noDevice) {
		t.Errorf("expected speaker error, got %v", err)
	}
	if err := silent.Play(); !errors.Is(err, noDevice) {
		t.Errorf("expected the error to stick, got %v", err)
	}

	var missing *Chime
	if err := missing.Play(); !errors.Is(err, ErrNoOutput) {
		t.Errorf("expected ErrNoOutput, got %v", err)
	}
}
