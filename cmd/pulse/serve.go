package main

import (
	"github.com/spf13/cobra"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.New(app.LoadConfig())
		if err != nil {
			return err
		}
		return application.Run()
	},
}
