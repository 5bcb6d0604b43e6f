// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools, prompts, and resources that depend on them.
// No business logic lives here — only wiring.
package server

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/maai-dev/maai/internal/config"
	"github.com/maai-dev/maai/internal/history"
	"github.com/maai-dev/maai/internal/mcptools"
	"github.com/maai-dev/maai/internal/project"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts, and
// resources registered.
//
// The returned cleanup function closes the run-history database and must be
// called on shutdown (typically via defer). It is always non-nil and safe to
// call even if history init failed.
func New(cfg config.Config) (*server.MCPServer, func(), error) {
	store := project.NewStore(cfg.ProjectsDir)

	// Run history is an independent subsystem: when it fails to open, the
	// storage tools keep working and runs simply go unrecorded.
	cleanup := noop
	var runs *history.Store
	if path, err := config.HistoryPath(); err != nil {
		log.Printf("WARNING: run history disabled: %v", err)
	} else if runs, err = history.Open(path); err != nil {
		log.Printf("WARNING: run history disabled: %v", err)
		runs = nil
	} else {
		cleanup = func() {
			if err := runs.Close(); err != nil {
				log.Printf("WARNING: closing run history: %v", err)
			}
		}
	}

	s := server.NewMCPServer(
		"maai",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	scaffoldTool := mcptools.NewScaffoldTool(store, runs)
	s.AddTool(scaffoldTool.Definition(), scaffoldTool.Handle)

	writeFilesTool := mcptools.NewWriteFilesTool(store, runs)
	s.AddTool(writeFilesTool.Definition(), writeFilesTool.Handle)

	readContextTool := mcptools.NewReadContextTool(store)
	s.AddTool(readContextTool.Definition(), readContextTool.Handle)

	listProjectsTool := mcptools.NewListProjectsTool(store)
	s.AddTool(listProjectsTool.Definition(), listProjectsTool.Handle)

	createPrompt := mcptools.NewCreatePrompt()
	s.AddPrompt(createPrompt.Definition(), createPrompt.Handle)

	fixPrompt := mcptools.NewFixPrompt()
	s.AddPrompt(fixPrompt.Definition(), fixPrompt.Handle)

	resourceHandler := mcptools.NewResourceHandler(store)
	s.AddResource(resourceHandler.ProjectsResource(), resourceHandler.HandleProjects)

	return s, cleanup, nil
}

// noop is the default cleanup when run history is disabled.
func noop() {}

// serverInstructions returns the system instructions that tell the AI how
// to use the maai tools effectively.
func serverInstructions() string {
	return `You have access to maai, a project-generation MCP server.

## CRITICAL: How Tools Work
maai tools are STORAGE tools, not AI tools. They persist content YOU generate.
YOU design the project structure and write the code; the tools parse your
output and lay it down on disk under a per-project directory.

## Project Layout
Every project lives in its own directory with three subdirectories:
- docs/   generated documents (ideas, plans, reviews)
- src/    source files
- tests/  test files

## Tools
- maai_scaffold_project: turn an indented structure listing into directories
  and empty files. Use 4 spaces per nesting level and a trailing slash for
  directories. Scaffolding is idempotent and never overwrites anything.
- maai_write_files: write source files from fenced code blocks. Each block
  opens with a fence of the form ` + "```" + `<language> filename=<relative/path> and
  carries the COMPLETE file content. Existing files are replaced.
- maai_read_context: read a project's plan documents and current sources
  before updating or fixing code.
- maai_list_projects: list every generated project with file counts.

## Creating a Project
1. Discuss the idea with the user and design the file structure yourself
2. Call maai_scaffold_project with the structure listing
3. Write EVERY scaffolded file with maai_write_files — complete content,
   never placeholders or "TODO" bodies
4. Summarize what was created and where

## Updating or Fixing a Project
1. Call maai_read_context to load the plans and current sources
2. Generate the changed files in full — partial snippets cannot be applied
3. Call maai_write_files with only the files that changed

## Important Rules
- File paths are relative to the project; absolute paths and ".." are rejected
- When the same path appears in two blocks, the last content wins
- NEVER call a tool with placeholder text — generate real, complete content`
}
