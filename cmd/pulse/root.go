package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Progressive Pulse - client progress tracking service",
	Long: `Progressive Pulse tracks client projects through fixed ordered milestones.
Clients follow along through a link carrying an access token; professionals
advance steps from one-click email links or the authenticated dashboard.

Configuration comes from the environment (a .env file is loaded when
present); run "pulse serve" to start the HTTP service.`,

	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(mintSessionCmd)
}
