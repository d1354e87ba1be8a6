package tray

import (
	"testing"

	"pomotask/internal/app"
	"pomotask/internal/core/session"
)

func TestRenderUpdatesLabels(t *testing.T) {
	manager := New(nil, Callbacks{})

	manager.Render(app.Snapshot{
		PhaseLabel:         "Break",
		Phase:              session.PhaseBreak,
		Clock:              "04:12",
		Running:            true,
		CompletedPomodoros: 3,
		SoundEnabled:       true,
	})

	if manager.statusItem.Label != "Status: Break 04:12" {
		t.Errorf("unexpected status %q", manager.statusItem.Label)
	}
	if manager.toggleItem.Label != "Pause" {
		t.Errorf("expected Pause, got %q", manager.toggleItem.Label)
	}
	if manager.skipItem.Disabled {
		t.Error("expected skip enabled during break")
	}
	if !manager.soundItem.Checked {
		t.Error("expected sound checked")
	}

	manager.Render(app.Snapshot{PhaseLabel: "Work", Phase: session.PhaseWork, Clock: "25:00"})
	if manager.toggleItem.Label != "Start" || !manager.skipItem.Disabled {
		t.Errorf("unexpected paused work menu: %q, skip disabled %v", manager.toggleItem.Label, manager.skipItem.Disabled)
	}
}

func TestMenuItemsInvokeCallbacks(t *testing.T) {
	toggles := 0
	manager := New(nil, Callbacks{OnToggle: func() { toggles++ }})

	manager.toggleItem.Action()
	manager.skipItem.Action()
	if toggles != 1 {
		t.Errorf("expected one toggle, got %d", toggles)
	}

	manager.callbacks.OnToggle = func() { toggles += 10 }
	manager.toggleItem.Action()
	if toggles != 11 {
		t.Errorf("expected replaced callback to run, got %d", toggles)
	}
}
