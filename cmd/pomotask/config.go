package main

import (
	"fmt"

	"pomotask/internal/storage"

	"github.com/spf13/cobra"
)

func configCmd(flags *overrides) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the settings file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print where settings are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := storage.SettingsPath(appName)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings for this run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "work:                  %d min\n", settings.Durations.Work)
			fmt.Fprintf(out, "break:                 %d min\n", settings.Durations.Break)
			fmt.Fprintf(out, "long break:            %d min\n", settings.Durations.LongBreak)
			fmt.Fprintf(out, "sound:                 %t\n", settings.SoundEnabled)
			fmt.Fprintf(out, "desktop notifications: %t\n", settings.DesktopNotifications)
			fmt.Fprintf(out, "flash timer:           %t\n", settings.FlashTimer)
			return nil
		},
	})

	return cmd
}
