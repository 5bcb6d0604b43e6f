package commands

import (
	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/tui"
)

// NewBrowseCommand creates the browse command.
func NewBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse projects and their documents interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return tui.Browse(d.store)
		},
	}
}
