// Package cue implements the completion cue played when a phase runs out.
package cue

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrNoOutput indicates a cue with nowhere to play.
var ErrNoOutput = errors.New("cue has no output")

// Notifier plays the completion cue once per call.
type Notifier interface {
	Play() error
}

// Func adapts a plain function to Notifier.
type Func func() error

// Play calls fn.
func (fn Func) Play() error {
	if fn == nil {
		return ErrNoOutput
	}
	return fn()
}

// Multi plays every notifier and joins their errors. A failing member does
// not stop the rest.
type Multi []Notifier

// Play runs each member in order. A Multi with no members reports
// ErrNoOutput rather than a silent success.
func (multi Multi) Play() error {
	var errs []error
	played := 0
	for index, notifier := range multi {
		if notifier == nil {
			continue
		}
		played++
		if err := notifier.Play(); err != nil {
			errs = append(errs, fmt.Errorf("cue %d: %w", index, err))
		}
	}
	if played == 0 {
		return ErrNoOutput
	}
	return errors.Join(errs...)
}

// Bell rings the terminal bell.
type Bell struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBell returns a bell writing to out.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

// Play writes the BEL control character.
func (bell *Bell) Play() error {
	if bell == nil || bell.out == nil {
		return ErrNoOutput
	}
	bell.mu.Lock()
	defer bell.mu.Unlock()
	if _, err := bell.out.Write([]byte("\a")); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}
