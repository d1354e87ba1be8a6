package preferences

import (
	"pomotask/internal/app"
	"pomotask/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Durations model.Durations

	SoundEnabled         bool
	DesktopNotifications bool
	FlashTimer           bool
}

// DefaultSettings returns default settings for PomoTask.
func DefaultSettings() Settings {
	return Settings{
		Durations:            model.DefaultDurations(),
		SoundEnabled:         true,
		DesktopNotifications: true,
		FlashTimer:           true,
	}
}

// ControllerOptions converts settings to controller options.
func (settings Settings) ControllerOptions() app.Options {
	return app.Options{
		Durations:    settings.Durations,
		SoundEnabled: settings.SoundEnabled,
	}
}
