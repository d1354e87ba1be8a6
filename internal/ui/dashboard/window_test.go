package dashboard

import (
	"testing"

	"pomotask/internal/app"
	"pomotask/internal/core/model"
	"pomotask/internal/core/session"
	"pomotask/internal/core/tasks"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

type recordingIntents struct {
	toggles int
	resets  int
	skips   int
	sounds  int
	added   []model.Task
	toggled []string
	removed []string
}

func (intents *recordingIntents) ToggleRunning() { intents.toggles++ }
func (intents *recordingIntents) Reset()         { intents.resets++ }
func (intents *recordingIntents) SkipBreak()     { intents.skips++ }
func (intents *recordingIntents) ToggleSound()   { intents.sounds++ }

func (intents *recordingIntents) AddTask(text string, category model.Category, priority model.Priority) (model.Task, bool) {
	if text == "" {
		return model.Task{}, false
	}
	task := model.Task{ID: text, Text: text, Category: category, Priority: priority}
	intents.added = append(intents.added, task)
	return task, true
}

func (intents *recordingIntents) ToggleTask(id string) bool {
	intents.toggled = append(intents.toggled, id)
	return true
}

func (intents *recordingIntents) RemoveTask(id string) bool {
	intents.removed = append(intents.removed, id)
	return true
}

func sampleSnapshot() app.Snapshot {
	list := []model.Task{
		{ID: "a", Text: "write report", Category: model.CategoryWork, Priority: model.PriorityHigh},
		{ID: "b", Text: "read chapter", Completed: true, Category: model.CategoryStudy, Priority: model.PriorityLow},
	}
	return app.Snapshot{
		Clock:              "04:59",
		Phase:              session.PhaseBreak,
		PhaseLabel:         session.PhaseBreak.Label(),
		Running:            true,
		Progress:           0.2,
		CycleSessions:      1,
		SessionsPerCycle:   session.SessionsPerCycle,
		CompletedPomodoros: 1,
		SoundEnabled:       true,
		Tasks:              list,
		TaskStats:          tasks.Summarize(list),
	}
}

func TestRenderShowsSnapshot(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	intents := &recordingIntents{}
	dash := New(fyneApp, intents)
	dash.renderUnsafe(sampleSnapshot())

	if dash.clock.Text != "04:59" {
		t.Errorf("expected clock 04:59, got %q", dash.clock.Text)
	}
	if dash.phase.Text != "Break" {
		t.Errorf("expected phase Break, got %q", dash.phase.Text)
	}
	if dash.toggle.Text != "Pause" {
		t.Errorf("expected Pause while running, got %q", dash.toggle.Text)
	}
	if dash.skip.Disabled() {
		t.Error("expected skip enabled during break")
	}
	if !dash.sound.Checked {
		t.Error("expected sound checked")
	}
	if dash.summary.Text != "1 of 2 tasks completed" {
		t.Errorf("unexpected summary %q", dash.summary.Text)
	}
	if dash.taskList.Length() != 2 {
		t.Errorf("expected 2 rows, got %d", dash.taskList.Length())
	}
	if intents.sounds != 0 {
		t.Error("rendering the sound flag must not dispatch a toggle")
	}

	work := sampleSnapshot()
	work.Phase = session.PhaseWork
	work.Running = false
	dash.renderUnsafe(work)
	if dash.toggle.Text != "Start" {
		t.Errorf("expected Start while paused, got %q", dash.toggle.Text)
	}
	if !dash.skip.Disabled() {
		t.Error("expected skip disabled during work")
	}
}

func TestKeyboardShortcuts(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	intents := &recordingIntents{}
	dash := New(fyneApp, intents)

	dash.handleKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	dash.handleKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	dash.handleKey(&fyne.KeyEvent{Name: fyne.KeyR})
	dash.handleKey(&fyne.KeyEvent{Name: fyne.KeyX})

	if intents.toggles != 2 || intents.resets != 1 {
		t.Errorf("expected 2 toggles and 1 reset, got %d and %d", intents.toggles, intents.resets)
	}
}

func TestSubmitTask(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	intents := &recordingIntents{}
	dash := New(fyneApp, intents)

	dash.submitTask()
	if len(intents.added) != 0 {
		t.Fatalf("blank entry should not add, got %d", len(intents.added))
	}

	dash.taskEntry.SetText("plan sprint")
	dash.category.SetSelected(string(model.CategoryPersonal))
	dash.priority.SetSelected(string(model.PriorityHigh))
	dash.submitTask()

	if len(intents.added) != 1 {
		t.Fatalf("expected one task, got %d", len(intents.added))
	}
	added := intents.added[0]
	if added.Category != model.CategoryPersonal || added.Priority != model.PriorityHigh {
		t.Errorf("unexpected task %+v", added)
	}
	if dash.taskEntry.Text != "" {
		t.Errorf("expected entry cleared, got %q", dash.taskEntry.Text)
	}
}

func TestTaskRowBindDispatchesByID(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	intents := &recordingIntents{}
	row := newTaskRow()
	row.bind(model.Task{ID: "a", Text: "first", Category: model.CategoryWork, Priority: model.PriorityLow}, intents)
	row.bind(model.Task{ID: "b", Text: "second", Completed: true, Category: model.CategoryOther, Priority: model.PriorityHigh}, intents)

	if len(intents.toggled) != 0 {
		t.Fatalf("binding must not toggle, got %v", intents.toggled)
	}
	if !row.check.Checked {
		t.Error("expected completed task checked")
	}
	if row.meta.Text != "other · !!!" {
		t.Errorf("unexpected meta %q", row.meta.Text)
	}

	row.check.SetChecked(false)
	row.remove.OnTapped()
	if len(intents.toggled) != 1 || intents.toggled[0] != "b" {
		t.Errorf("expected toggle of b, got %v", intents.toggled)
	}
	if len(intents.removed) != 1 || intents.removed[0] != "b" {
		t.Errorf("expected removal of b, got %v", intents.removed)
	}
}
