package preferences

import (
	"testing"

	"pomotask/internal/core/model"

	"fyne.io/fyne/v2/test"
)

func TestParsePositiveInt(t *testing.T) {
	cases := map[string]struct {
		value int
		ok    bool
	}{
		"25":   {25, true},
		" 7 ":  {7, true},
		"0":    {0, false},
		"-3":   {0, false},
		"abc":  {0, false},
		"":     {0, false},
		"1.5":  {0, false},
		"9999": {9999, true},
	}
	for input, want := range cases {
		value, ok := parsePositiveInt(input)
		if value != want.value || ok != want.ok {
			t.Errorf("parsePositiveInt(%q) = %d, %v; want %d, %v", input, value, ok, want.value, want.ok)
		}
	}
}

func TestSaveKeepsPreviousInvalidValues(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	prefs.work.SetText("50")
	prefs.shortBreak.SetText("zero")
	prefs.longBreak.SetText("-1")
	prefs.sound.SetChecked(false)
	prefs.handleSave()

	if len(saved) != 1 {
		t.Fatalf("expected one save, got %d", len(saved))
	}
	want := model.Durations{Work: 50, Break: 5, LongBreak: 15}
	if saved[0].Durations != want {
		t.Errorf("expected %+v, got %+v", want, saved[0].Durations)
	}
	if saved[0].SoundEnabled {
		t.Error("expected sound disabled")
	}
	if prefs.shortBreak.Text != "5" {
		t.Errorf("expected rejected field restored, got %q", prefs.shortBreak.Text)
	}
	if !prefs.hint.Visible() {
		t.Error("expected hint about rejected fields")
	}
	if prefs.Settings() != saved[0] {
		t.Error("window settings out of sync with saved settings")
	}
}

func TestSaveAfterSoundToggledElsewhere(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	if !prefs.SyncCore(model.DefaultDurations(), false) {
		t.Fatal("expected sound change to be reported")
	}
	if prefs.sound.Checked {
		t.Error("expected sound check cleared")
	}

	prefs.Show()
	prefs.handleSave()

	if len(saved) != 1 {
		t.Fatalf("expected one save, got %d", len(saved))
	}
	if saved[0].SoundEnabled {
		t.Error("save wrote back a stale sound flag")
	}
}

func TestSyncCoreLeavesEditsAlone(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, DefaultSettings(), nil)
	prefs.work.SetText("40")

	if prefs.SyncCore(model.DefaultDurations(), true) {
		t.Error("expected no change for identical values")
	}
	if prefs.work.Text != "40" {
		t.Errorf("expected edit kept, got %q", prefs.work.Text)
	}

	longer := model.Durations{Work: 50, Break: 10, LongBreak: 20}
	if !prefs.SyncCore(longer, true) {
		t.Fatal("expected duration change to be reported")
	}
	if prefs.work.Text != "50" || prefs.Settings().Durations != longer {
		t.Errorf("expected durations adopted, got %q and %+v", prefs.work.Text, prefs.Settings().Durations)
	}
}

func TestShowDiscardsUnsavedEdits(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, DefaultSettings(), nil)
	prefs.work.SetText("99")
	prefs.Show()

	if prefs.work.Text != "25" {
		t.Errorf("expected stored value on show, got %q", prefs.work.Text)
	}
}
