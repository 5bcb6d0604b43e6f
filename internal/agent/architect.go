package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/maai-dev/maai/internal/llm"
	"github.com/maai-dev/maai/internal/project"
	"github.com/maai-dev/maai/internal/prompt"
)

// Architect turns an idea into an implementation plan, and revises an
// existing plan on request.
type Architect struct {
	store  *project.Store
	gen    llm.Generator
	render prompt.Renderer
}

// NewArchitect returns an architect agent.
func NewArchitect(store *project.Store, gen llm.Generator, render prompt.Renderer) *Architect {
	return &Architect{store: store, gen: gen, render: render}
}

// Run writes docs/impl.md. With an empty modification the plan is derived
// from the idea document; otherwise the existing plan is revised according
// to the modification text.
func (a *Architect) Run(ctx context.Context, slug, modification string) (Result, error) {
	rendered, err := a.buildPrompt(slug, modification)
	if err != nil {
		return Result{}, err
	}
	generated, err := a.gen.Generate(ctx, rendered)
	if err != nil {
		return Result{}, fmt.Errorf("generating plan: %w", err)
	}
	path, err := a.store.WriteDoc(slug, project.PlanFile, strings.TrimSpace(generated))
	if err != nil {
		return Result{}, err
	}
	return Result{Slug: slug, Paths: []string{path}}, nil
}

func (a *Architect) buildPrompt(slug, modification string) (string, error) {
	if modification == "" {
		idea, err := a.store.ReadDoc(slug, project.IdeaFile)
		if err != nil {
			return "", fmt.Errorf("no idea document for %s (run 'maai idea' first): %w", slug, err)
		}
		return a.render.Render(prompt.PlanCreate, prompt.PlanCreateData{Idea: idea})
	}

	current, err := a.store.ReadDoc(slug, project.PlanFile)
	if err != nil {
		return "", fmt.Errorf("no implementation plan for %s to update (run 'maai plan' first): %w", slug, err)
	}
	return a.render.Render(prompt.PlanUpdate, prompt.PlanUpdateData{Plan: current, Modification: modification})
}
