package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/maai-dev/maai/internal/project"
)

// ReadContextTool handles the maai_read_context MCP tool.
// It returns a project's plan documents and source files as one prompt-
// ready context string, the same view the CLI agents work from.
type ReadContextTool struct {
	store *project.Store
}

// NewReadContextTool creates a ReadContextTool.
func NewReadContextTool(store *project.Store) *ReadContextTool {
	return &ReadContextTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ReadContextTool) Definition() mcp.Tool {
	return mcp.NewTool("maai_read_context",
		mcp.WithDescription(
			"Read a project's context: its implementation plan documents and its "+
				"current source files rendered as fenced code blocks. Use this before "+
				"updating or fixing a project so changes build on what exists.",
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project name or slug"),
		),
		mcp.WithString("include",
			mcp.Description("Which context to return. Defaults to 'all'."),
			mcp.DefaultString("all"),
			mcp.Enum("plans", "sources", "all"),
		),
	)
}

// Handle processes the maai_read_context tool call.
func (t *ReadContextTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, errResult := requireProject(req)
	if errResult != nil {
		return errResult, nil
	}
	include := req.GetString("include", "all")

	if !t.store.Exists(slug) {
		return mcp.NewToolResultError(fmt.Sprintf("project %q not found", slug)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Context: %s\n", slug)

	if include == "plans" || include == "all" {
		b.WriteString("\n## Plans\n\n")
		plans, err := t.store.ReadPlans(slug)
		if err != nil {
			b.WriteString("(no implementation plan documents)\n")
		} else {
			b.WriteString(plans)
			b.WriteByte('\n')
		}
	}

	if include == "sources" || include == "all" {
		b.WriteString("\n## Sources\n\n")
		files, err := t.store.ReadSources(slug)
		if err != nil {
			return nil, fmt.Errorf("reading sources of %s: %w", slug, err)
		}
		if len(files) == 0 {
			b.WriteString("(no source files)\n")
		} else {
			b.WriteString(project.FormatSources(files))
			b.WriteByte('\n')
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}
