package main

import (
	"github.com/spf13/cobra"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/app"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run one reminder dispatch and exit",
	Long: `Sends every responsible professional one email listing their projects with
one-click advance links, then exits. Meant to be run from cron or a
scheduler; the HTTP job endpoint does the same thing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.New(app.LoadConfig())
		if err != nil {
			return err
		}
		return application.RunReminders(cmd.Context())
	},
}
