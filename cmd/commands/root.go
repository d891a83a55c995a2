// Package commands defines the notes CLI.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notes",
		Short: "A REST API service for user notes with cursor pagination",
	}

	rootCmd.AddCommand(
		NewServeCommand(),
		NewSeedCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}
