package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maai-dev/maai/internal/llm"
	"github.com/maai-dev/maai/internal/project"
	"github.com/maai-dev/maai/internal/prompt"
)

const defaultIdeaCount = 10

// GeneratedIdea is one entry of a batch idea run.
type GeneratedIdea struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IdeaGen generates a batch of project ideas about a subject and stores
// them as a JSON document.
type IdeaGen struct {
	store  *project.Store
	gen    llm.Generator
	render prompt.Renderer
}

// NewIdeaGen returns an idea-generation agent.
func NewIdeaGen(store *project.Store, gen llm.Generator, render prompt.Renderer) *IdeaGen {
	return &IdeaGen{store: store, gen: gen, render: render}
}

// Run generates count ideas about the subject and writes them to
// docs/<subject-slug>.json in the project named by name (the subject when
// name is empty). The parsed ideas are returned alongside the result.
func (a *IdeaGen) Run(ctx context.Context, subject, name string, count int, wild bool) (Result, []GeneratedIdea, error) {
	if count <= 0 {
		count = defaultIdeaCount
	}
	if name == "" {
		name = subject
	}
	slug := project.Slugify(name)
	if _, err := a.store.Ensure(slug); err != nil {
		return Result{}, nil, err
	}

	rendered, err := a.render.Render(prompt.Ideas, prompt.IdeasData{Subject: subject, Count: count, Wild: wild})
	if err != nil {
		return Result{}, nil, err
	}
	answer, err := a.gen.Generate(ctx, rendered)
	if err != nil {
		return Result{}, nil, fmt.Errorf("generating ideas: %w", err)
	}

	ideas, err := parseIdeas(answer)
	if err != nil {
		return Result{}, nil, err
	}

	data, err := json.MarshalIndent(ideas, "", "  ")
	if err != nil {
		return Result{}, nil, fmt.Errorf("encoding ideas: %w", err)
	}
	path, err := a.store.WriteDoc(slug, project.Slugify(subject)+".json", string(data))
	if err != nil {
		return Result{}, nil, err
	}
	return Result{Slug: slug, Paths: []string{path}}, ideas, nil
}

// parseIdeas decodes the idea array, tolerating a markdown fence around
// the JSON since models add one despite instructions.
func parseIdeas(answer string) ([]GeneratedIdea, error) {
	cleaned := strings.TrimSpace(answer)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}

	var ideas []GeneratedIdea
	if err := json.Unmarshal([]byte(cleaned), &ideas); err != nil {
		return nil, fmt.Errorf("response is not a JSON idea array: %w", err)
	}
	if len(ideas) == 0 {
		return nil, fmt.Errorf("response contained no ideas")
	}
	return ideas, nil
}
