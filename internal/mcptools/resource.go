package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/maai-dev/maai/internal/project"
)

// ResourceHandler serves read-only project data under maai:// URIs.
type ResourceHandler struct {
	store *project.Store
}

// NewResourceHandler creates a ResourceHandler.
func NewResourceHandler(store *project.Store) *ResourceHandler {
	return &ResourceHandler{store: store}
}

// ProjectsResource returns the MCP resource definition for the project
// listing.
func (h *ResourceHandler) ProjectsResource() mcp.Resource {
	return mcp.NewResource(
		"maai://projects",
		"Generated Projects",
		mcp.WithResourceDescription("Every generated project with document and source counts"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleProjects returns the project listing as JSON.
func (h *ResourceHandler) HandleProjects(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	infos, err := h.store.List()
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	if infos == nil {
		infos = []project.Info{}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling projects: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
