package main

import (
	"fmt"
	"log"
	"os"

	"pomotask/internal/core/model"
	"pomotask/internal/storage"
	"pomotask/internal/ui/preferences"

	"github.com/spf13/cobra"
)

const appName = "PomoTask"

var Version = "dev"

// overrides holds per-run flag values. Zero means "not set".
type overrides struct {
	work      int
	breakTime int
	longBreak int
	mute      bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	flags := &overrides{}

	cmd := &cobra.Command{
		Use:     "pomotask",
		Short:   "Pomodoro timer with a task list",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			return runGUI(settings)
		},
	}

	cmd.PersistentFlags().IntVar(&flags.work, "work", 0, "Work session length in minutes for this run")
	cmd.PersistentFlags().IntVar(&flags.breakTime, "break", 0, "Short break length in minutes for this run")
	cmd.PersistentFlags().IntVar(&flags.longBreak, "long-break", 0, "Long break length in minutes for this run")
	cmd.PersistentFlags().BoolVar(&flags.mute, "mute", false, "Disable the completion cue for this run")

	cmd.AddCommand(tuiCmd(flags))
	cmd.AddCommand(configCmd(flags))

	return cmd
}

// loadSettings reads the settings file and applies flag overrides. Bad
// stored values are logged and fall back per key; bad flags are errors.
func loadSettings(flags *overrides) (preferences.Settings, error) {
	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v", err)
	}
	return flags.apply(settings)
}

func (flags *overrides) apply(settings preferences.Settings) (preferences.Settings, error) {
	override := model.Durations{Work: flags.work, Break: flags.breakTime, LongBreak: flags.longBreak}
	checks := []struct {
		name    string
		minutes int
	}{
		{"--work", flags.work},
		{"--break", flags.breakTime},
		{"--long-break", flags.longBreak},
	}
	for _, check := range checks {
		if check.minutes < 0 {
			return settings, fmt.Errorf("%s %d: %w", check.name, check.minutes, model.ErrInvalidDuration)
		}
	}

	settings.Durations = settings.Durations.Merge(override)
	if flags.mute {
		settings.SoundEnabled = false
	}
	return settings, nil
}
