package main

import (
	"io"
	"log"
	"os"

	"pomotask/internal/app"
	"pomotask/internal/cue"
	"pomotask/internal/ui/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func tuiCmd(flags *overrides) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would tear the alternate screen.
			if logFile != "" {
				file, err := tea.LogToFile(logFile, "pomotask")
				if err != nil {
					return err
				}
				defer file.Close()
			} else {
				log.SetOutput(io.Discard)
			}

			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}

			controller := app.New(settings.ControllerOptions())
			defer controller.Close()
			controller.SetNotifier(cue.NewBell(os.Stderr))

			return tui.Run(controller)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while the terminal UI runs")

	return cmd
}
