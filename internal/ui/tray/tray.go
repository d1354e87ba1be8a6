package tray

import (
	"fmt"

	"pomotask/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnSkipBreak   func()
	OnToggleSound func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	countItem  *fyne.MenuItem
	toggleItem *fyne.MenuItem
	skipItem   *fyne.MenuItem
	soundItem  *fyne.MenuItem
	callbacks  Callbacks
	last       string
}

// New creates a tray manager with the provided callbacks.
func New(desktopApp desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       desktopApp,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.countItem = fyne.NewMenuItem("Pomodoros: 0", nil)
	manager.countItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnToggle))
	manager.skipItem = fyne.NewMenuItem("Skip break", invoke(&manager.callbacks.OnSkipBreak))
	manager.skipItem.Disabled = true
	manager.soundItem = fyne.NewMenuItem("Sound", invoke(&manager.callbacks.OnToggleSound))

	manager.menu = fyne.NewMenu("PomoTask",
		manager.statusItem,
		manager.countItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show timer", invoke(&manager.callbacks.OnShow)),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset)),
		manager.skipItem,
		manager.soundItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	)
	if desktopApp != nil {
		desktopApp.SetSystemTrayMenu(manager.menu)
	}

	return manager
}

// Render updates menu items from a controller snapshot. The tray menu is
// only rebuilt when a label actually changed.
func (manager *Manager) Render(snapshot app.Snapshot) {
	manager.statusItem.Label = "Status: " + snapshot.StatusLine()
	manager.countItem.Label = fmt.Sprintf("Pomodoros: %d  Tasks done: %d/%d",
		snapshot.CompletedPomodoros, snapshot.TaskStats.Completed, snapshot.TaskStats.Total)

	if snapshot.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.skipItem.Disabled = !snapshot.Phase.IsBreak()
	manager.soundItem.Checked = snapshot.SoundEnabled

	key := fmt.Sprintf("%s|%s|%s|%t|%t",
		manager.statusItem.Label, manager.countItem.Label, manager.toggleItem.Label,
		manager.skipItem.Disabled, manager.soundItem.Checked)
	if key == manager.last {
		return
	}
	manager.last = key
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}

// invoke reads the callback at tap time so callbacks may be replaced later.
func invoke(callback *func()) func() {
	return func() {
		if *callback != nil {
			(*callback)()
		}
	}
}
