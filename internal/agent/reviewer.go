package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/maai-dev/maai/internal/llm"
	"github.com/maai-dev/maai/internal/project"
	"github.com/maai-dev/maai/internal/prompt"
)

// Reviewer writes a code review of the project against its plans.
type Reviewer struct {
	store  *project.Store
	gen    llm.Generator
	render prompt.Renderer
}

// NewReviewer returns a reviewer agent.
func NewReviewer(store *project.Store, gen llm.Generator, render prompt.Renderer) *Reviewer {
	return &Reviewer{store: store, gen: gen, render: render}
}

// Run reviews the project sources and writes docs/review.md. The next
// coding run will pick the review up as fix feedback.
func (a *Reviewer) Run(ctx context.Context, slug string) (Result, error) {
	plans, err := a.store.ReadPlans(slug)
	if err != nil {
		return Result{}, err
	}
	files, err := a.store.ReadSources(slug)
	if err != nil {
		return Result{}, err
	}
	if len(files) == 0 {
		return Result{}, fmt.Errorf("no source files to review in %s (run 'maai code' first)", slug)
	}

	rendered, err := a.render.Render(prompt.Review, prompt.ReviewData{
		Plans:   plans,
		Sources: project.FormatSources(files),
	})
	if err != nil {
		return Result{}, err
	}
	generated, err := a.gen.Generate(ctx, rendered)
	if err != nil {
		return Result{}, fmt.Errorf("generating review: %w", err)
	}

	path, err := a.store.WriteDoc(slug, project.ReviewFile, strings.TrimSpace(generated))
	if err != nil {
		return Result{}, err
	}
	return Result{Slug: slug, Paths: []string{path}}, nil
}
