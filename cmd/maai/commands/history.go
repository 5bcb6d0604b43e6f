package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/config"
	"github.com/maai-dev/maai/internal/history"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [project]",
		Short: "Show recent command runs",
		Long: `Shows recent runs from the history database, newest first, optionally
filtered to one project.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.HistoryPath()
			if err != nil {
				return err
			}
			store, err := history.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			project := ""
			if len(args) > 0 {
				project = args[0]
			}
			runs, err := store.List(project, limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}

			for _, r := range runs {
				printRun(r)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	return cmd
}

func printRun(r history.Run) {
	status := okStyle.Render(r.Status)
	if r.Status != history.StatusOK {
		status = warnStyle.Render(r.Status)
	}
	fmt.Printf("%s  %-8s %-24s %s\n",
		r.StartedAt.Local().Format("2006-01-02 15:04"), r.Command, r.Project, status)

	var details []string
	if r.Mode != "" {
		details = append(details, r.Mode)
	}
	if r.Files > 0 {
		details = append(details, fmt.Sprintf("%d file(s)", r.Files))
	}
	if r.Duration > 0 {
		details = append(details, r.Duration.Round(100*time.Millisecond).String())
	}
	if r.Detail != "" {
		details = append(details, r.Detail)
	}
	if len(details) > 0 {
		fmt.Println(dimStyle.Render("  " + strings.Join(details, ", ")))
	}
}
