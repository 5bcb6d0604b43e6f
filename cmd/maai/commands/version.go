package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/server"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the maai version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("maai v%s\n", server.Version)
		},
	}
}
