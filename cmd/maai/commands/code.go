package commands

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/agent"
	"github.com/maai-dev/maai/internal/artifact"
	"github.com/maai-dev/maai/internal/llm"
)

// NewCodeCommand creates the code command.
func NewCodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "code <project>",
		Short: "Generate or revise the project's source tree",
		Long: `Runs one coding pass over the project. A project without source files
gets a scaffolded tree and content for every file; a project with
sources gets a revision, applying docs/review.md as fix feedback when
one exists. The pass runs once and stops, even when warnings remain.`,
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
			res, err := agent.NewCoder(d.store, gen, d.render).Run(cmd.Context(), args[0])
			mode, files := "", 0
			if res != nil {
				mode, files = string(res.Mode), len(res.Written)
			}
			recordAgentRun("code", args[0], mode, files, started, err)
			if err != nil {
				return err
			}

			fmt.Printf("Mode: %s\n", res.Mode)
			if res.Mode == agent.ModeCreate {
				fmt.Printf("Scaffolded %d dir(s), %d file(s)\n", len(res.Scaffold.Dirs), len(res.Scaffold.Files))
			}
			printWarnings(res.Warnings)
			printPaths(res.Written)
			printStats(res.Stats)

			// A fix changes the code the plan describes, so the plan
			// gets a follow-up revision. Its failure never undoes the fix.
			if res.Mode == agent.ModeFix && res.Review != "" {
				updatePlanAfterFix(cmd, d, gen, args[0], res.Review)
			}
			return nil
		},
	}
}

func printStats(stats map[string]artifact.ChangeStats) {
	paths := make([]string, 0, len(stats))
	for p := range stats {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Printf("  %s %s\n", p, dimStyle.Render(fmt.Sprintf("+%d -%d", stats[p].Added, stats[p].Removed)))
	}
}

func updatePlanAfterFix(cmd *cobra.Command, d *deps, gen llm.Generator, slug, review string) {
	modification := "The review feedback below was just applied to the source code. " +
		"Revise the plan wherever it no longer matches the fixed code.\n\n" + review
	if _, err := agent.NewArchitect(d.store, gen, d.render).Run(cmd.Context(), slug, modification); err != nil {
		log.Printf("WARNING: updating plan after fix: %v", err)
		return
	}
	fmt.Println(dimStyle.Render("Plan revised to match the fixed code."))
}
