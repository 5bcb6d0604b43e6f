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

// WriteFilesTool handles the maai_write_files MCP tool.
// It extracts fenced file blocks from text and writes them into a project.
type WriteFilesTool struct {
	store *project.Store
	runs  *history.Store // optional, nil disables run recording
}

// NewWriteFilesTool creates a WriteFilesTool.
func NewWriteFilesTool(store *project.Store, runs *history.Store) *WriteFilesTool {
	return &WriteFilesTool{store: store, runs: runs}
}

// Definition returns the MCP tool definition for registration.
func (t *WriteFilesTool) Definition() mcp.Tool {
	return mcp.NewTool("maai_write_files",
		mcp.WithDescription(
			"Write source files into a project from fenced code blocks. Each block "+
				"must use the format ```<language> filename=<relative/path> followed by the "+
				"complete file content. Paths outside the project are rejected; when the "+
				"same path appears twice the last content wins. Existing files are replaced.",
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project name or slug; created under the projects directory when missing"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Text containing one fenced code block per file"),
		),
	)
}

// Handle processes the maai_write_files tool call.
func (t *WriteFilesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, errResult := requireProject(req)
	if errResult != nil {
		return errResult, nil
	}
	content := req.GetString("content", "")
	if strings.TrimSpace(content) == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	blocks, warnings := artifact.ParseBlocks(content)
	if len(blocks) == 0 {
		return mcp.NewToolResultError(
			"content contained no file blocks (expected ```<language> filename=<path> fences)",
		), nil
	}

	if _, err := t.store.Ensure(slug); err != nil {
		return nil, err
	}
	written := artifact.WriteFiles(t.store.Dir(slug), blocks)
	recordRun(t.runs, "write_files", slug, len(written))

	var b strings.Builder
	fmt.Fprintf(&b, "# Wrote %d file(s) to %s\n\n", len(written), slug)
	for _, p := range written {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	b.WriteString(warningsSection(warnings))

	return mcp.NewToolResultText(b.String()), nil
}
