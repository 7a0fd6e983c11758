package main

import (
	"warden/config"

	"github.com/spf13/cobra"
)

// loadConfig reads config/config.yaml plus environment overrides.
var loadConfig = config.New

// NewRootCmd creates the root command for the warden operator CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wardenctl",
		Short: "wardenctl - operator tooling for the warden credential service",
		Long: `wardenctl hashes passwords, issues and inspects bearer tokens and
applies database migrations using the same configuration as the server.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewHashPasswordCmd())
	cmd.AddCommand(NewIssueTokenCmd())
	cmd.AddCommand(NewVerifyTokenCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
