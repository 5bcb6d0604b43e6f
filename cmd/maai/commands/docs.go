package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/agent"
)

// NewDocsCommand creates the docs command.
func NewDocsCommand() *cobra.Command {
	var docType string

	cmd := &cobra.Command{
		Use:   "docs <project>",
		Short: "Generate a documentation artifact for the project",
		Long: `Generates one documentation artifact from the project's plan and sources
and stores it under docs/. The --type flag picks which document: sdd,
srs, api, user_manual or project_overview.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ := agent.DocType(docType)
			if err := agent.ValidateDocType(typ); err != nil {
				return err
			}

			d, err := newDeps()
			if err != nil {
				return err
			}
			gen, err := d.generator()
			if err != nil {
				return err
			}

			started := time.Now()
			res, err := agent.NewDocumenter(d.store, gen, d.render).Run(cmd.Context(), args[0], typ)
			recordAgentRun("docs", args[0], "", len(res.Paths), started, err)
			if err != nil {
				return err
			}

			printResult(res)
			return nil
		},
	}

	cmd.Flags().StringVar(&docType, "type", string(agent.DocOverview), "Document type to generate")
	return cmd
}
