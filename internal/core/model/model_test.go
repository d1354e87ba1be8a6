package model

import (
	"errors"
	"testing"
)

func TestDurationsValidate(t *testing.T) {
	if err := DefaultDurations().Validate(); err != nil {
		t.Fatalf("default durations invalid: %v", err)
	}

	bad := Durations{Work: 25, Break: 0, LongBreak: 15}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestDurationsMergeKeepsPositiveOnly(t *testing.T) {
	merged := DefaultDurations().Merge(Durations{Work: 50, Break: -3})
	if merged.Work != 50 {
		t.Errorf("expected work 50, got %d", merged.Work)
	}
	if merged.Break != 5 {
		t.Errorf("expected break to stay 5, got %d", merged.Break)
	}
	if merged.LongBreak != 15 {
		t.Errorf("expected long break to stay 15, got %d", merged.LongBreak)
	}
}

func TestParseCategory(t *testing.T) {
	category, err := ParseCategory(" Study ")
	if err != nil {
		t.Fatalf("ParseCategory failed: %v", err)
	}
	if category != CategoryStudy {
		t.Errorf("expected study, got %s", category)
	}
	if _, err := ParseCategory("errands"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestParsePriority(t *testing.T) {
	priority, err := ParsePriority("HIGH")
	if err != nil {
		t.Fatalf("ParsePriority failed: %v", err)
	}
	if priority != PriorityHigh {
		t.Errorf("expected high, got %s", priority)
	}
	if Priority("urgent").Valid() {
		t.Error("expected urgent to be invalid")
	}
}

func TestNextWraps(t *testing.T) {
	if CategoryOther.Next() != CategoryWork {
		t.Errorf("expected other to wrap to work, got %s", CategoryOther.Next())
	}
	if PriorityHigh.Next() != PriorityLow {
		t.Errorf("expected high to wrap to low, got %s", PriorityHigh.Next())
	}
}
