package cue

import (
	"fyne.io/fyne/v2"
)

// Desktop sends a system notification through the fyne app.
type Desktop struct {
	app   fyne.App
	title string
	body  func() string
}

// NewDesktop returns a notifier whose body is computed at play time.
func NewDesktop(app fyne.App, title string, body func() string) *Desktop {
	return &Desktop{app: app, title: title, body: body}
}

// Play posts the notification on the UI thread.
func (desktop *Desktop) Play() error {
	if desktop == nil || desktop.app == nil {
		return ErrNoOutput
	}
	content := ""
	if desktop.body != nil {
		content = desktop.body()
	}
	notification := fyne.NewNotification(desktop.title, content)
	fyne.Do(func() {
		desktop.app.SendNotification(notification)
	})
	return nil
}
