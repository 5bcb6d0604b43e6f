package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/agent"
)

// NewReviewCommand creates the review command.
func NewReviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review <project>",
		Short: "Review the project's source code",
		Long: `Reviews the generated sources against the implementation plan and stores
the feedback as docs/review.md. While that file exists the next coding
run applies it as fix feedback.`,
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
			res, err := agent.NewReviewer(d.store, gen, d.render).Run(cmd.Context(), args[0])
			recordAgentRun("review", args[0], "", len(res.Paths), started, err)
			if err != nil {
				return err
			}

			printResult(res)
			fmt.Println(dimStyle.Render("Run 'maai code " + res.Slug + "' to apply the feedback."))
			return nil
		},
	}
}
