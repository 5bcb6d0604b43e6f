package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/agent"
	"github.com/maai-dev/maai/internal/project"
)

// NewSubjectCommand creates the subject command.
func NewSubjectCommand() *cobra.Command {
	var (
		name  string
		count int
		wild  bool
	)

	cmd := &cobra.Command{
		Use:   "subject <topic>",
		Short: "Generate a batch of project ideas about a topic",
		Long: `Generates a numbered list of project ideas about <topic> and stores them
as a JSON document. The ideas land in a project named after the topic
unless --name picks a different one; feed any entry to 'maai idea' to
develop it further.`,
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

			slug := args[0]
			if name != "" {
				slug = name
			}
			started := time.Now()
			res, ideas, err := agent.NewIdeaGen(d.store, gen, d.render).Run(cmd.Context(), args[0], name, count, wild)
			recordAgentRun("subject", project.Slugify(slug), "", len(res.Paths), started, err)
			if err != nil {
				return err
			}

			printResult(res)
			fmt.Println()
			for i, idea := range ideas {
				fmt.Printf("%d. %s\n", i+1, idea.Name)
				fmt.Println(dimStyle.Render("   " + idea.Description))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project to store the ideas in (defaults to the topic)")
	cmd.Flags().IntVar(&count, "count", 0, "Number of ideas to request (default 10)")
	cmd.Flags().BoolVar(&wild, "wild", false, "Ask for unconventional ideas")
	return cmd
}
