// Package mcptools implements the MCP surface of maai: tool, prompt,
// and resource handlers served over stdio.
//
// Each tool is a struct with its dependencies injected via constructor;
// Definition() returns the mcp.Tool schema and Handle() processes the
// request. The tools are storage tools: the host AI generates structure
// listings and code blocks itself, and maai parses and persists them
// with the same pipeline the CLI commands use.
package mcptools

import (
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/maai-dev/maai/internal/history"
	"github.com/maai-dev/maai/internal/project"
)

// requireProject extracts the project argument as a slug, returning a
// tool error result when it is missing or blank.
func requireProject(req mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	name := req.GetString("project", "")
	if strings.TrimSpace(name) == "" {
		return "", mcp.NewToolResultError("'project' is required")
	}
	return project.Slugify(name), nil
}

// recordRun logs one run to the history store. A nil store disables
// recording; a failed write is logged and never fails the tool call.
func recordRun(runs *history.Store, command, slug string, files int) {
	if runs == nil {
		return
	}
	if _, err := runs.Record(history.Run{
		Command: command,
		Project: slug,
		Files:   files,
		Status:  history.StatusOK,
	}); err != nil {
		log.Printf("WARNING: recording %s run: %v", command, err)
	}
}

// warningsSection renders recovered problems as a markdown list, empty
// when there are none.
func warningsSection(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n## Warnings\n\n")
	for _, w := range warnings {
		b.WriteString("- ")
		b.WriteString(w)
		b.WriteByte('\n')
	}
	return b.String()
}
