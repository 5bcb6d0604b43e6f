package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/agent"
)

// NewTestsCommand creates the tests command.
func NewTestsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tests <project>",
		Short: "Generate tests for the project's source code",
		Long: `Generates test files for the existing sources and writes them under the
project's tests/ directory.`,
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
			res, err := agent.NewTester(d.store, gen, d.render).Run(cmd.Context(), args[0])
			recordAgentRun("tests", args[0], "", len(res.Paths), started, err)
			if err != nil {
				return err
			}

			printResult(res)
			return nil
		},
	}
}
