// Package commands implements the maai command tree. Every command builds
// its dependencies from the loaded configuration, runs one agent or view,
// and prints what was written; agent runs are recorded in the run history.
package commands

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/agent"
	"github.com/maai-dev/maai/internal/config"
	"github.com/maai-dev/maai/internal/history"
	"github.com/maai-dev/maai/internal/llm"
	"github.com/maai-dev/maai/internal/project"
	"github.com/maai-dev/maai/internal/prompt"
	"github.com/maai-dev/maai/internal/server"
)

var configPath string

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "maai",
		Short: "Generate software projects with AI agents",
		Long: `maai sequences calls to a text-generation service to produce project
artifacts: ideas, implementation plans, source code, reviews, tests,
documentation, and business analyses. Every project lives in its own
directory under the configured projects directory.`,
		Version:       server.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file")

	rootCmd.AddCommand(NewIdeaCommand())
	rootCmd.AddCommand(NewSubjectCommand())
	rootCmd.AddCommand(NewBulkCommand())
	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewCodeCommand())
	rootCmd.AddCommand(NewReviewCommand())
	rootCmd.AddCommand(NewTestsCommand())
	rootCmd.AddCommand(NewDocsCommand())
	rootCmd.AddCommand(NewAnalyzeCommand())
	rootCmd.AddCommand(NewBusinessCommand())
	rootCmd.AddCommand(NewScoringCommand())
	rootCmd.AddCommand(NewResearchCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewBrowseCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewUpdateCommand())
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// --- Dependencies ---

// deps bundles what most commands need. The generation client is built
// separately so commands that never call the service work without an
// API key.
type deps struct {
	cfg    config.Config
	store  *project.Store
	render *prompt.EmbedRenderer
}

func newDeps() (*deps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	render, err := prompt.NewRenderer()
	if err != nil {
		return nil, err
	}
	return &deps{cfg: cfg, store: project.NewStore(cfg.ProjectsDir), render: render}, nil
}

func (d *deps) generator() (llm.Generator, error) {
	key := d.cfg.APIKey()
	if key == "" {
		return nil, fmt.Errorf("no API key: set %s for provider %q (or run 'maai config init' and edit the file)",
			d.cfg.APIKeyEnv(), d.cfg.LLM.Provider)
	}
	return llm.New(llm.Config{
		BaseURL:         d.cfg.BaseURL(),
		APIKey:          key,
		Model:           d.cfg.LLM.Model,
		Temperature:     d.cfg.LLM.Temperature,
		ReasoningEffort: string(d.cfg.LLM.ReasoningEffort),
	})
}

// --- Output ---

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printResult(res agent.Result) {
	printWarnings(res.Warnings)
	printPaths(res.Paths)
}

func printPaths(paths []string) {
	for _, p := range paths {
		fmt.Println(okStyle.Render("✓ wrote ") + p)
	}
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Println(warnStyle.Render("! " + w))
	}
}

// --- Run history ---

// recordAgentRun appends one run to the history database. Recording is
// best-effort: a failure is logged and the command result stands.
func recordAgentRun(command, slug, mode string, files int, started time.Time, runErr error) {
	run := history.Run{
		Command:   command,
		Project:   slug,
		Mode:      mode,
		Files:     files,
		Status:    history.StatusOK,
		StartedAt: started,
		Duration:  time.Since(started),
	}
	if runErr != nil {
		run.Status = history.StatusError
		run.Detail = runErr.Error()
	}

	path, err := config.HistoryPath()
	if err != nil {
		log.Printf("WARNING: recording %s run: %v", command, err)
		return
	}
	store, err := history.Open(path)
	if err != nil {
		log.Printf("WARNING: recording %s run: %v", command, err)
		return
	}
	defer store.Close()
	if _, err := store.Record(run); err != nil {
		log.Printf("WARNING: recording %s run: %v", command, err)
	}
}
