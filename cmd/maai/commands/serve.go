package commands

import (
	"fmt"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/maai-dev/maai/internal/server"
	"github.com/maai-dev/maai/internal/updater"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Expose the project stores as an MCP server (stdio)",
		Long: `Serves the project and history stores over the Model Context Protocol on
stdio, so MCP clients (Claude Code, Cursor, ...) can scaffold projects
and read or write their files directly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			s, cleanup, err := server.New(d.cfg)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			defer cleanup()

			// Background version check. Prints to stderr so it doesn't
			// interfere with MCP's stdio transport on stdout.
			go checkForUpdates()

			return mcpserver.ServeStdio(s)
		},
	}
}

// checkForUpdates runs a non-blocking version check and prints a notice
// to stderr if an update is available. Network failures are silently
// ignored.
func checkForUpdates() {
	result := updater.CheckVersion(server.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  📦 Update available: v%s → v%s\n"+
				"     Run: maai update\n"+
				"     Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}
