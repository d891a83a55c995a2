package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ncobase/notes/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetVersionInfo()
			fmt.Printf("notes %s\n", info.Version)
			fmt.Printf("  revision:   %s\n", info.Revision)
			fmt.Printf("  built at:   %s\n", info.BuiltAt)
			fmt.Printf("  go version: %s\n", info.GoVersion)
		},
	}
}
