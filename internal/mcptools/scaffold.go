package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/maai-dev/maai/internal/artifact"
	"github.com/maai-dev/maai/internal/history"
	"github.com/maai-dev/maai/internal/project"
)

// ScaffoldTool handles the maai_scaffold_project MCP tool.
// It turns an indented structure listing into directories and empty files.
type ScaffoldTool struct {
	store *project.Store
	runs  *history.Store // optional, nil disables run recording
}

// NewScaffoldTool creates a ScaffoldTool.
func NewScaffoldTool(store *project.Store, runs *history.Store) *ScaffoldTool {
	return &ScaffoldTool{store: store, runs: runs}
}

// Definition returns the MCP tool definition for registration.
func (t *ScaffoldTool) Definition() mcp.Tool {
	return mcp.NewTool("maai_scaffold_project",
		mcp.WithDescription(
			"Create a project's directory skeleton from an indented structure listing. "+
				"Use 4 spaces per nesting level and mark directories with a trailing slash. "+
				"Scaffolding is idempotent: existing entries of the right type are left "+
				"untouched and nothing is ever overwritten or deleted.",
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project name or slug; created under the projects directory when missing"),
		),
		mcp.WithString("structure",
			mcp.Required(),
			mcp.Description("Structure listing, one entry per line, e.g.:\nsrc/\n    main.py\ntests/\n    test_main.py"),
		),
	)
}

// Handle processes the maai_scaffold_project tool call.
func (t *ScaffoldTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, errResult := requireProject(req)
	if errResult != nil {
		return errResult, nil
	}
	structure := req.GetString("structure", "")
	if strings.TrimSpace(structure) == "" {
		return mcp.NewToolResultError("'structure' is required"), nil
	}

	items, warnings := artifact.ParseStructure(structure)
	if len(items) == 0 {
		return mcp.NewToolResultError("structure contained no usable entries"), nil
	}

	if _, err := t.store.Ensure(slug); err != nil {
		return nil, err
	}
	res, err := artifact.Scaffold(t.store.Dir(slug), items)
	if err != nil {
		return nil, fmt.Errorf("scaffolding %s: %w", slug, err)
	}
	recordRun(t.runs, "scaffold", slug, len(res.Files))

	var b strings.Builder
	fmt.Fprintf(&b, "# Scaffolded %s\n\n", slug)
	fmt.Fprintf(&b, "**Directories:** %d\n**Files:** %d\n", len(res.Dirs), len(res.Files))
	if len(res.Files) > 0 {
		b.WriteString("\n")
		for _, f := range res.Files {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}
	if len(res.Conflicts) > 0 {
		b.WriteString("\n## Skipped\n\n")
		for _, c := range res.Conflicts {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}
	b.WriteString(warningsSection(warnings))
	b.WriteString("\nUse `maai_write_files` to fill the files with content.\n")

	return mcp.NewToolResultText(b.String()), nil
}
