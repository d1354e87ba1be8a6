// Package dashboard is the desktop window: timer, controls and the task
// list. It keeps no state of its own beyond the last rendered snapshot.
package dashboard

import (
	"fmt"
	"image/color"

	"pomotask/internal/app"
	"pomotask/internal/core/model"
	"pomotask/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Intents is what the window forwards user actions to.
type Intents interface {
	ToggleRunning()
	Reset()
	SkipBreak()
	ToggleSound()
	AddTask(text string, category model.Category, priority model.Priority) (model.Task, bool)
	ToggleTask(id string) bool
	RemoveTask(id string) bool
}

var (
	workColor      = color.NRGBA{R: 229, G: 83, B: 61, A: 255}
	breakColor     = color.NRGBA{R: 74, G: 155, B: 229, A: 255}
	longBreakColor = color.NRGBA{R: 63, G: 155, B: 74, A: 255}
	highlightColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
)

// Window manages the main timer window.
type Window struct {
	window    fyne.Window
	intents   Intents
	phase     *canvas.Text
	clock     *canvas.Text
	progress  *widget.ProgressBar
	counters  *widget.Label
	toggle    *widget.Button
	skip      *widget.Button
	sound     *widget.Check
	taskEntry *widget.Entry
	category  *widget.Select
	priority  *widget.Select
	taskList  *widget.List
	summary   *widget.Label

	snapshot    app.Snapshot
	highlighted bool
	onClose     func()
}

// New creates the main window. Call Render before showing it.
func New(fyneApp fyne.App, intents Intents) *Window {
	dash := &Window{
		window:  fyneApp.NewWindow("PomoTask"),
		intents: intents,
	}
	if fyneApp.Icon() != nil {
		dash.window.SetIcon(fyneApp.Icon())
	}

	dash.phase = canvas.NewText("Work", workColor)
	dash.phase.Alignment = fyne.TextAlignCenter
	dash.phase.TextStyle = fyne.TextStyle{Bold: true}
	dash.phase.TextSize = 18

	dash.clock = canvas.NewText("--:--", workColor)
	dash.clock.Alignment = fyne.TextAlignCenter
	dash.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	dash.clock.TextSize = 56

	dash.progress = widget.NewProgressBar()
	dash.progress.TextFormatter = func() string { return "" }
	dash.counters = widget.NewLabel("")
	dash.counters.Alignment = fyne.TextAlignCenter

	dash.toggle = widget.NewButton("Start", intents.ToggleRunning)
	dash.toggle.Importance = widget.HighImportance
	reset := widget.NewButton("Reset", intents.Reset)
	dash.skip = widget.NewButton("Skip break", intents.SkipBreak)
	dash.sound = widget.NewCheck("Sound", nil)

	controls := container.NewHBox(layout.NewSpacer(), dash.toggle, reset, dash.skip, dash.sound, layout.NewSpacer())
	timer := container.NewVBox(dash.phase, dash.clock, dash.progress, dash.counters, controls)

	dash.taskEntry = widget.NewEntry()
	dash.taskEntry.SetPlaceHolder("Add a task...")
	dash.taskEntry.OnSubmitted = func(string) { dash.submitTask() }
	dash.category = widget.NewSelect(categoryOptions(), nil)
	dash.category.SetSelected(string(model.CategoryWork))
	dash.priority = widget.NewSelect(priorityOptions(), nil)
	dash.priority.SetSelected(string(model.PriorityMedium))
	add := widget.NewButton("Add", dash.submitTask)
	entryRow := container.NewBorder(nil, nil, nil, container.NewHBox(dash.category, dash.priority, add), dash.taskEntry)

	dash.taskList = widget.NewList(
		func() int { return len(dash.snapshot.Tasks) },
		func() fyne.CanvasObject { return newTaskRow() },
		dash.updateRow,
	)
	dash.summary = widget.NewLabel("")

	tasksPane := container.NewBorder(entryRow, dash.summary, nil, nil, dash.taskList)
	dash.window.SetContent(container.NewBorder(timer, nil, nil, nil, tasksPane))
	dash.window.Resize(fyne.NewSize(520, 620))
	dash.window.Canvas().SetOnTypedKey(dash.handleKey)
	dash.window.SetCloseIntercept(func() {
		if dash.onClose != nil {
			dash.onClose()
			return
		}
		dash.window.Hide()
	})

	return dash
}

// Show displays the window.
func (dash *Window) Show() {
	dash.window.Show()
	dash.window.RequestFocus()
}

// Hide hides the window without stopping the timer.
func (dash *Window) Hide() {
	dash.window.Hide()
}

// SetOnClose replaces the default close behaviour of hiding the window.
func (dash *Window) SetOnClose(handler func()) {
	dash.onClose = handler
}

// Render schedules a redraw from snapshot on the UI thread.
func (dash *Window) Render(snapshot app.Snapshot) {
	fyne.Do(func() {
		dash.renderUnsafe(snapshot)
	})
}

// SetHighlight swaps the clock colour while the expiry pulse is on.
func (dash *Window) SetHighlight(on bool) {
	fyne.Do(func() {
		dash.highlighted = on
		dash.applyClockColorUnsafe()
	})
}

func (dash *Window) renderUnsafe(snapshot app.Snapshot) {
	dash.snapshot = snapshot

	dash.phase.Text = snapshot.PhaseLabel
	dash.phase.Color = phaseColor(snapshot.Phase)
	dash.phase.Refresh()
	dash.clock.Text = snapshot.Clock
	dash.applyClockColorUnsafe()

	dash.progress.SetValue(snapshot.Progress)
	dash.counters.SetText(fmt.Sprintf("Session %s in cycle  |  %d pomodoros completed",
		snapshot.CycleLabel(), snapshot.CompletedPomodoros))

	if snapshot.Running {
		dash.toggle.SetText("Pause")
	} else {
		dash.toggle.SetText("Start")
	}
	if snapshot.Phase.IsBreak() {
		dash.skip.Enable()
	} else {
		dash.skip.Disable()
	}

	dash.sound.OnChanged = nil
	dash.sound.SetChecked(snapshot.SoundEnabled)
	dash.sound.OnChanged = func(bool) { dash.intents.ToggleSound() }

	dash.summary.SetText(fmt.Sprintf("%d of %d tasks completed", snapshot.TaskStats.Completed, snapshot.TaskStats.Total))
	dash.taskList.Refresh()
	dash.window.SetTitle("PomoTask - " + snapshot.StatusLine())
}

func (dash *Window) applyClockColorUnsafe() {
	if dash.highlighted {
		dash.clock.Color = highlightColor
	} else {
		dash.clock.Color = phaseColor(dash.snapshot.Phase)
	}
	dash.clock.Refresh()
}

func (dash *Window) submitTask() {
	category, err := model.ParseCategory(dash.category.Selected)
	if err != nil {
		category = model.CategoryOther
	}
	priority, err := model.ParsePriority(dash.priority.Selected)
	if err != nil {
		priority = model.PriorityMedium
	}
	if _, ok := dash.intents.AddTask(dash.taskEntry.Text, category, priority); ok {
		dash.taskEntry.SetText("")
	}
}

func (dash *Window) handleKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeySpace:
		dash.intents.ToggleRunning()
	case fyne.KeyR:
		dash.intents.Reset()
	}
}

func (dash *Window) updateRow(id widget.ListItemID, object fyne.CanvasObject) {
	if id < 0 || id >= len(dash.snapshot.Tasks) {
		return
	}
	task := dash.snapshot.Tasks[id]
	row := object.(*taskRow)
	row.bind(task, dash.intents)
}

func phaseColor(phase session.Phase) color.Color {
	switch phase {
	case session.PhaseBreak:
		return breakColor
	case session.PhaseLongBreak:
		return longBreakColor
	default:
		return workColor
	}
}

func categoryOptions() []string {
	options := make([]string, 0, len(model.Categories))
	for _, category := range model.Categories {
		options = append(options, string(category))
	}
	return options
}

func priorityOptions() []string {
	options := make([]string, 0, len(model.Priorities))
	for _, priority := range model.Priorities {
		options = append(options, string(priority))
	}
	return options
}
