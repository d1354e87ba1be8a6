package preferences

import (
	"strconv"
	"strings"

	"pomotask/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	work          *widget.Entry
	shortBreak    *widget.Entry
	longBreak     *widget.Entry
	sound         *widget.Check
	notifications *widget.Check
	flash         *widget.Check
	hint          *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("PomoTask Settings")

	work := widget.NewEntry()
	shortBreak := widget.NewEntry()
	longBreak := widget.NewEntry()

	sound := widget.NewCheck("Play a cue when a phase ends", nil)
	notifications := widget.NewCheck("Desktop notification", nil)
	flash := widget.NewCheck("Flash the timer", nil)

	hint := widget.NewLabel("")
	hint.Hide()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), work, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break"), shortBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longBreak, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Completion cue", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		notifications,
		flash,
		hint,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 360))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		work:          work,
		shortBreak:    shortBreak,
		longBreak:     longBreak,
		sound:         sound,
		notifications: notifications,
		flash:         flash,
		hint:          hint,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window. Unsaved edits from a previous
// visit are discarded.
func (prefs *Window) Show() {
	prefs.UpdateSettings(prefs.settings)
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// SyncCore adopts the durations and sound flag the controller currently
// holds, so a later Save never writes back a stale value. Duration entries
// are rewritten only when the stored value changed, leaving edits in
// progress alone. It reports whether anything changed.
func (prefs *Window) SyncCore(durations model.Durations, soundEnabled bool) bool {
	changed := false
	if prefs.settings.Durations != durations {
		prefs.settings.Durations = durations
		prefs.work.SetText(strconv.Itoa(durations.Work))
		prefs.shortBreak.SetText(strconv.Itoa(durations.Break))
		prefs.longBreak.SetText(strconv.Itoa(durations.LongBreak))
		changed = true
	}
	if prefs.settings.SoundEnabled != soundEnabled {
		prefs.settings.SoundEnabled = soundEnabled
		prefs.sound.SetChecked(soundEnabled)
		changed = true
	}
	return changed
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.work.SetText(strconv.Itoa(settings.Durations.Work))
	prefs.shortBreak.SetText(strconv.Itoa(settings.Durations.Break))
	prefs.longBreak.SetText(strconv.Itoa(settings.Durations.LongBreak))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.notifications.SetChecked(settings.DesktopNotifications)
	prefs.flash.SetChecked(settings.FlashTimer)
	prefs.hint.Hide()
}

// handleSave keeps the previous value of any duration that is not a
// positive whole number and tells the user which fields were ignored.
func (prefs *Window) handleSave() {
	settings := prefs.settings
	var rejected []string

	if minutes, ok := parsePositiveInt(prefs.work.Text); ok {
		settings.Durations.Work = minutes
	} else {
		rejected = append(rejected, "work")
	}
	if minutes, ok := parsePositiveInt(prefs.shortBreak.Text); ok {
		settings.Durations.Break = minutes
	} else {
		rejected = append(rejected, "break")
	}
	if minutes, ok := parsePositiveInt(prefs.longBreak.Text); ok {
		settings.Durations.LongBreak = minutes
	} else {
		rejected = append(rejected, "long break")
	}

	settings.SoundEnabled = prefs.sound.Checked
	settings.DesktopNotifications = prefs.notifications.Checked
	settings.FlashTimer = prefs.flash.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}

	if len(rejected) > 0 {
		prefs.hint.SetText("Kept previous " + strings.Join(rejected, ", ") + ": use whole minutes above zero")
		prefs.hint.Show()
		return
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
