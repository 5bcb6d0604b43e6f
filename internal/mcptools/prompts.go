package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// CreatePrompt handles the maai-create MCP prompt. It instructs the host
// AI to design a structure, scaffold it, and fill in every file.
type CreatePrompt struct{}

// NewCreatePrompt creates a CreatePrompt.
func NewCreatePrompt() *CreatePrompt {
	return &CreatePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *CreatePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("maai-create",
		mcp.WithPromptDescription(
			"Build a new project end to end: design its file structure, scaffold it, "+
				"and write complete content for every file.",
		),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Name of the project to create"),
		),
	)
}

// Handle processes the maai-create prompt request.
func (p *CreatePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := "my-project"
	if args := req.Params.Arguments; args != nil {
		if n, ok := args["project_name"]; ok && n != "" {
			name = n
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Create project: %s", name),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to build a project called '%s'.\n\n"+
						"Please:\n"+
						"1. Ask me what the project should do, then design a complete file structure for it\n"+
						"2. Call `maai_scaffold_project` with project='%s' and the structure listing "+
						"(4-space indentation, directories with a trailing slash)\n"+
						"3. Write complete content for EVERY scaffolded file and call `maai_write_files` "+
						"with one fenced block per file (```<language> filename=<relative/path>)\n"+
						"4. Summarize what was created and how to run it",
					name, name,
				)),
			},
		},
	}, nil
}

// FixPrompt handles the maai-fix MCP prompt. It instructs the host AI to
// read a project's context, find problems, and write corrected files.
type FixPrompt struct{}

// NewFixPrompt creates a FixPrompt.
func NewFixPrompt() *FixPrompt {
	return &FixPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *FixPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("maai-fix",
		mcp.WithPromptDescription(
			"Review an existing project against its plans and write fixed versions "+
				"of the files that have problems.",
		),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Name of the project to fix"),
		),
	)
}

// Handle processes the maai-fix prompt request.
func (p *FixPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := "my-project"
	if args := req.Params.Arguments; args != nil {
		if n, ok := args["project_name"]; ok && n != "" {
			name = n
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Fix project: %s", name),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please review and fix the project '%s'.\n\n"+
						"1. Call `maai_read_context` with project='%s' to read its plans and sources\n"+
						"2. Check the code against the plans: correctness first, then missing pieces\n"+
						"3. Tell me what you found before changing anything\n"+
						"4. Call `maai_write_files` with the COMPLETE corrected content of every file "+
						"that needs to change (one fenced block per file), leaving the others out",
					name, name,
				)),
			},
		},
	}, nil
}
