package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/maai-dev/maai/internal/llm"
	"github.com/maai-dev/maai/internal/project"
	"github.com/maai-dev/maai/internal/prompt"
)

// Innovator elaborates a project name into an idea document.
type Innovator struct {
	store  *project.Store
	gen    llm.Generator
	render prompt.Renderer
}

// NewInnovator returns an innovator agent.
func NewInnovator(store *project.Store, gen llm.Generator, render prompt.Renderer) *Innovator {
	return &Innovator{store: store, gen: gen, render: render}
}

// Run creates the project for the given name and writes docs/idea.md.
// Wild loosens the prompt toward unconventional concepts.
func (a *Innovator) Run(ctx context.Context, name string, wild bool) (Result, error) {
	slug := project.Slugify(name)
	if _, err := a.store.Ensure(slug); err != nil {
		return Result{}, err
	}

	rendered, err := a.render.Render(prompt.Idea, prompt.IdeaData{Name: name, Wild: wild})
	if err != nil {
		return Result{}, err
	}
	generated, err := a.gen.Generate(ctx, rendered)
	if err != nil {
		return Result{}, fmt.Errorf("generating idea: %w", err)
	}

	content := fmt.Sprintf("# Project Idea: %s\n\n## Initial Concept\n\n%s", name, strings.TrimSpace(generated))
	path, err := a.store.WriteDoc(slug, project.IdeaFile, content)
	if err != nil {
		return Result{}, err
	}
	return Result{Slug: slug, Paths: []string{path}}, nil
}
