package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/agent"
)

// NewAnalyzeCommand creates the analyze command (market analysis).
func NewAnalyzeCommand() *cobra.Command {
	return newAnalysisCommand("analyze", "Analyze the market for the project idea", agent.AnalysisMarket)
}

// NewBusinessCommand creates the business command.
func NewBusinessCommand() *cobra.Command {
	return newAnalysisCommand("business", "Draft a business model for the project idea", agent.AnalysisBusiness)
}

// NewScoringCommand creates the scoring command.
func NewScoringCommand() *cobra.Command {
	return newAnalysisCommand("scoring", "Score the project idea against its market analysis", agent.AnalysisScoring)
}

// NewResearchCommand creates the research command.
func NewResearchCommand() *cobra.Command {
	return newAnalysisCommand("research", "Summarize research directions for the project idea", agent.AnalysisResearch)
}

// newAnalysisCommand builds one analysis command; the four analysis kinds
// differ only in prompt and output document.
func newAnalysisCommand(use, short string, kind agent.Analysis) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <project>",
		Short: short,
		Args:  cobra.ExactArgs(1),
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
			res, err := agent.NewAnalyst(d.store, gen, d.render).Run(cmd.Context(), args[0], kind)
			recordAgentRun(use, args[0], "", len(res.Paths), started, err)
			if err != nil {
				return err
			}

			printResult(res)
			return nil
		},
	}
}
