package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"pomotask/internal/app"
	"pomotask/internal/cue"
	"pomotask/internal/platform"
	"pomotask/internal/storage"
	"pomotask/internal/ui/animation"
	"pomotask/internal/ui/dashboard"
	"pomotask/internal/ui/preferences"
	"pomotask/internal/ui/tray"
	"pomotask/resources"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

func runGUI(settings preferences.Settings) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			if err := platform.ActivateExisting(appName, time.Second); err != nil {
				log.Printf("activate running instance: %v", err)
			}
			return nil
		}
		return fmt.Errorf("acquire single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := fyneapp.NewWithID("com.pomotask.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconActive))

	controller := app.New(settings.ControllerOptions())
	defer controller.Close()

	dash := dashboard.New(fyneApp, controller)
	guard.OnActivate(func() {
		fyne.Do(dash.Show)
	})
	pulse := animation.New(animation.DefaultConfig(), dash.SetHighlight)
	defer pulse.Stop()

	chime := cue.NewChime(resources.Chime())
	notification := cue.NewDesktop(fyneApp, appName, func() string {
		snapshot := controller.Snapshot()
		return fmt.Sprintf("%s started (%s)", snapshot.PhaseLabel, snapshot.Clock)
	})
	controller.SetNotifier(completionCue(settings, chime, notification, pulse))

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := controller.UpdateDurations(updated.Durations); err != nil {
			log.Printf("update durations: %v", err)
		}
		controller.SetSoundEnabled(updated.SoundEnabled)
		controller.SetNotifier(completionCue(updated, chime, notification, pulse))
		persistSettings(updated)
	})

	quit := func() {
		pulse.Stop()
		controller.Close()
		fyneApp.Quit()
	}

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        dash.Show,
			OnToggle:      controller.ToggleRunning,
			OnReset:       controller.Reset,
			OnSkipBreak:   controller.SkipBreak,
			OnToggleSound: controller.ToggleSound,
			OnPreferences: prefsWindow.Show,
			OnQuit:        quit,
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.IconPaused))
	} else {
		log.Printf("system tray unsupported on this platform")
		dash.SetOnClose(quit)
	}

	snapshots := controller.Subscribe()
	go func() {
		lastIcon := ""
		for snapshot := range snapshots {
			dash.Render(snapshot)
			icon := trayIcon(snapshot)
			fyne.Do(func() {
				// Sound can be toggled from the dashboard or tray.
				if prefsWindow.SyncCore(snapshot.Durations, snapshot.SoundEnabled) {
					persistSettings(prefsWindow.Settings())
				}
				if trayManager == nil {
					return
				}
				trayManager.Render(snapshot)
				if icon != lastIcon {
					lastIcon = icon
					if desktopApp, ok := fyneApp.(desktop.App); ok {
						desktopApp.SetSystemTrayIcon(resources.MustIcon(icon))
					}
				}
			})
		}
	}()

	dash.Show()
	fyneApp.Run()
	return nil
}

// completionCue builds the notifier played when the timekeeper's sound flag
// is on. The chime always plays; the preference flags add channels.
func completionCue(settings preferences.Settings, chime, notification, pulse cue.Notifier) cue.Multi {
	notifiers := cue.Multi{chime}
	if settings.DesktopNotifications {
		notifiers = append(notifiers, notification)
	}
	if settings.FlashTimer {
		notifiers = append(notifiers, pulse)
	}
	return notifiers
}

func trayIcon(snapshot app.Snapshot) string {
	switch {
	case !snapshot.Running:
		return resources.IconPaused
	case snapshot.Phase.IsBreak():
		return resources.IconBreak
	default:
		return resources.IconActive
	}
}

func persistSettings(settings preferences.Settings) {
	if err := storage.SaveSettings(appName, settings); err != nil {
		log.Printf("save settings: %v", err)
	}
}
