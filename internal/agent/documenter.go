package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/maai-dev/maai/internal/llm"
	"github.com/maai-dev/maai/internal/project"
	"github.com/maai-dev/maai/internal/prompt"
)

// DocType selects which project document to generate.
type DocType string

const (
	DocSDD        DocType = "sdd"
	DocSRS        DocType = "srs"
	DocAPI        DocType = "api"
	DocUserManual DocType = "user_manual"
	DocOverview   DocType = "project_overview"
)

var validDocTypes = map[DocType]bool{
	DocSDD:        true,
	DocSRS:        true,
	DocAPI:        true,
	DocUserManual: true,
	DocOverview:   true,
}

// ValidateDocType checks if a document type is recognized.
func ValidateDocType(t DocType) error {
	if !validDocTypes[t] {
		return fmt.Errorf("invalid document type: %q (valid: sdd, srs, api, user_manual, project_overview)", t)
	}
	return nil
}

var docFiles = map[DocType]string{
	DocSDD:        "sdd.md",
	DocSRS:        "srs.md",
	DocAPI:        "api.md",
	DocUserManual: "user_manual.md",
	DocOverview:   "project_docs.md",
}

var docTemplates = map[DocType]string{
	DocSDD:        prompt.DocSDD,
	DocSRS:        prompt.DocSRS,
	DocAPI:        prompt.DocAPI,
	DocUserManual: prompt.DocUserManual,
	DocOverview:   prompt.DocOverview,
}

// Documenter generates project documents from the idea and the plan.
type Documenter struct {
	store  *project.Store
	gen    llm.Generator
	render prompt.Renderer
}

// NewDocumenter returns a documenter agent.
func NewDocumenter(store *project.Store, gen llm.Generator, render prompt.Renderer) *Documenter {
	return &Documenter{store: store, gen: gen, render: render}
}

// Run generates one document of the given type under docs/. Missing idea
// or plan documents are tolerated with placeholder context so docs can be
// produced at any project stage.
func (a *Documenter) Run(ctx context.Context, slug string, typ DocType) (Result, error) {
	if err := ValidateDocType(typ); err != nil {
		return Result{}, err
	}

	idea, err := a.store.ReadDoc(slug, project.IdeaFile)
	if err != nil {
		log.Printf("WARNING: no idea document for %s, continuing without it", slug)
		idea = "(idea document not available)"
	}
	plan, err := a.store.ReadDoc(slug, project.PlanFile)
	if err != nil {
		log.Printf("WARNING: no implementation plan for %s, continuing without it", slug)
		plan = "(implementation plan not available)"
	}

	var sources string
	if files, err := a.store.ReadSources(slug); err == nil && len(files) > 0 {
		sources = project.FormatSources(files)
	}

	rendered, err := a.render.Render(docTemplates[typ], prompt.DocData{
		Idea:    idea,
		Plan:    plan,
		Sources: sources,
	})
	if err != nil {
		return Result{}, err
	}
	generated, err := a.gen.Generate(ctx, rendered)
	if err != nil {
		return Result{}, fmt.Errorf("generating %s document: %w", typ, err)
	}

	path, err := a.store.WriteDoc(slug, docFiles[typ], strings.TrimSpace(generated))
	if err != nil {
		return Result{}, err
	}
	return Result{Slug: slug, Paths: []string{path}}, nil
}
