package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/agent"
)

// NewPlanCommand creates the plan command.
func NewPlanCommand() *cobra.Command {
	var modify string

	cmd := &cobra.Command{
		Use:   "plan <project>",
		Short: "Plan the implementation of a project",
		Long: `Turns the project's idea document into an implementation plan stored as
docs/impl.md. With --modify the existing plan is revised per the given
instruction instead of being written from scratch.`,
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

			started := time.Now()
			res, err := agent.NewArchitect(d.store, gen, d.render).Run(cmd.Context(), args[0], modify)
			recordAgentRun("plan", args[0], "", len(res.Paths), started, err)
			if err != nil {
				return err
			}

			printResult(res)
			fmt.Println(dimStyle.Render("Next: maai code " + res.Slug))
			return nil
		},
	}

	cmd.Flags().StringVar(&modify, "modify", "", "Revise the existing plan with this instruction")
	return cmd
}
