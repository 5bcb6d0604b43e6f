package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/maai-dev/maai/internal/project"
)

// ListProjectsTool handles the maai_list_projects MCP tool.
type ListProjectsTool struct {
	store *project.Store
}

// NewListProjectsTool creates a ListProjectsTool.
func NewListProjectsTool(store *project.Store) *ListProjectsTool {
	return &ListProjectsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ListProjectsTool) Definition() mcp.Tool {
	return mcp.NewTool("maai_list_projects",
		mcp.WithDescription(
			"List every generated project with its document and source file counts "+
				"and the time of its last change.",
		),
	)
}

// Handle processes the maai_list_projects tool call.
func (t *ListProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos, err := t.store.List()
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return mcp.NewToolResultText("No projects yet. Use `maai_scaffold_project` to create one."), nil
	}

	var b strings.Builder
	b.WriteString("| Project | Docs | Sources | Modified |\n")
	b.WriteString("|---------|------|---------|----------|\n")
	for _, info := range infos {
		modified := "-"
		if !info.Modified.IsZero() {
			modified = info.Modified.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "| %s | %d | %d | %s |\n", info.Slug, info.Docs, info.Sources, modified)
	}

	return mcp.NewToolResultText(b.String()), nil
}
