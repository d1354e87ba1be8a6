package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDuration indicates a phase duration below one minute.
var ErrInvalidDuration = errors.New("duration must be a positive number of minutes")

// Durations holds the configured length of each phase in whole minutes.
type Durations struct {
	Work      int
	Break     int
	LongBreak int
}

// DefaultDurations returns the classic 25/5/15 schedule.
func DefaultDurations() Durations {
	return Durations{
		Work:      25,
		Break:     5,
		LongBreak: 15,
	}
}

// Validate reports the first non-positive duration.
func (durations Durations) Validate() error {
	if durations.Work < 1 {
		return fmt.Errorf("work: %w", ErrInvalidDuration)
	}
	if durations.Break < 1 {
		return fmt.Errorf("break: %w", ErrInvalidDuration)
	}
	if durations.LongBreak < 1 {
		return fmt.Errorf("long break: %w", ErrInvalidDuration)
	}
	return nil
}

// Merge returns durations with every positive field of override applied.
func (durations Durations) Merge(override Durations) Durations {
	if override.Work > 0 {
		durations.Work = override.Work
	}
	if override.Break > 0 {
		durations.Break = override.Break
	}
	if override.LongBreak > 0 {
		durations.LongBreak = override.LongBreak
	}
	return durations
}

// Minutes converts a minute count to a time.Duration.
func Minutes(minutes int) time.Duration {
	return time.Duration(minutes) * time.Minute
}
