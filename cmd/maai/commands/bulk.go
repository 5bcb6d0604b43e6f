package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/agent"
)

// NewBulkCommand creates the bulk command.
func NewBulkCommand() *cobra.Command {
	var wild bool

	cmd := &cobra.Command{
		Use:   "bulk <ideas-file>",
		Short: "Develop one idea per line of a text file",
		Long: `Reads project names from <ideas-file> (one per line, blank lines and
#-comments skipped) and develops each into its own project. A failed
line is skipped with a warning so the rest of the batch still lands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			gen, err := d.generator()
			if err != nil {
				return err
			}

			innovator := agent.NewInnovator(d.store, gen, d.render)
			started := time.Now()
			results, err := agent.NewBulk(innovator).Run(cmd.Context(), args[0], wild)
			recordAgentRun("bulk", "", "", len(results), started, err)
			if err != nil {
				return err
			}

			for _, res := range results {
				printResult(res)
			}
			fmt.Printf("\n%d project(s) created.\n", len(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&wild, "wild", false, "Ask for an unconventional take on each idea")
	return cmd
}
