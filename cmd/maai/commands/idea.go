package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/agent"
	"github.com/maai-dev/maai/internal/project"
)

// NewIdeaCommand creates the idea command.
func NewIdeaCommand() *cobra.Command {
	var wild bool

	cmd := &cobra.Command{
		Use:   "idea <name>",
		Short: "Develop a project idea document from a name",
		Long: `Develops the named idea into a full concept document and stores it as
docs/idea.md in a new project directory named after the slug of <name>.`,
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
			res, err := agent.NewInnovator(d.store, gen, d.render).Run(cmd.Context(), args[0], wild)
			recordAgentRun("idea", project.Slugify(args[0]), "", len(res.Paths), started, err)
			if err != nil {
				return err
			}

			printResult(res)
			fmt.Println(dimStyle.Render("Next: maai plan " + res.Slug))
			return nil
		},
	}

	cmd.Flags().BoolVar(&wild, "wild", false, "Ask for an unconventional take on the idea")
	return cmd
}
