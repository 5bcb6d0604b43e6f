package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/maai-dev/maai/internal/artifact"
	"github.com/maai-dev/maai/internal/llm"
	"github.com/maai-dev/maai/internal/project"
	"github.com/maai-dev/maai/internal/prompt"
)

// Coder orchestrates a full coding run over a project.
//
// The run's mode is decided once from the files on disk (see DecideMode).
// Create runs ask for a file structure, scaffold it, then request content
// for every file. Update and fix runs skip scaffolding, feed the existing
// files back as context, and request only the files that change. Either
// way the run ends after one write pass; re-reviewing or re-testing the
// result is a separate command, never automatic.
type Coder struct {
	store  *project.Store
	gen    llm.Generator
	render prompt.Renderer
}

// NewCoder returns a coder agent.
func NewCoder(store *project.Store, gen llm.Generator, render prompt.Renderer) *Coder {
	return &Coder{store: store, gen: gen, render: render}
}

// CodeResult reports one coding run.
type CodeResult struct {
	Mode     Mode
	Written  []string                        // absolute paths written
	Warnings []string                        // recovered parse and scaffold problems
	Scaffold artifact.ScaffoldResult         // create mode only
	Stats    map[string]artifact.ChangeStats // update/fix: change size per file
	Review   string                          // fix mode: the feedback that was applied
}

// Run executes one coding run. It requires at least one implementation
// plan document; everything else is derived from the project state.
func (c *Coder) Run(ctx context.Context, slug string) (*CodeResult, error) {
	plans, err := c.store.ReadPlans(slug)
	if err != nil {
		return nil, err
	}

	res := &CodeResult{Mode: DecideMode(c.store, slug)}
	if res.Mode == ModeCreate {
		err = c.create(ctx, slug, plans, res)
	} else {
		err = c.revise(ctx, slug, plans, res)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Coder) create(ctx context.Context, slug, plans string, res *CodeResult) error {
	structPrompt, err := c.render.Render(prompt.Structure, prompt.StructureData{Plans: plans})
	if err != nil {
		return err
	}
	answer, err := c.gen.Generate(ctx, structPrompt)
	if err != nil {
		return fmt.Errorf("generating structure: %w", err)
	}

	items, warnings := artifact.ParseStructure(answer)
	res.Warnings = append(res.Warnings, warnings...)
	if len(items) == 0 {
		return fmt.Errorf("structure response contained no usable entries")
	}

	scaffolded, err := artifact.Scaffold(c.store.Dir(slug), items)
	if err != nil {
		return err
	}
	res.Scaffold = scaffolded
	res.Warnings = append(res.Warnings, scaffolded.Conflicts...)

	codePrompt, err := c.render.Render(prompt.CodeCreate, prompt.CodeCreateData{
		Plans:     plans,
		Structure: formatStructure(items),
	})
	if err != nil {
		return err
	}
	answer, err = c.gen.Generate(ctx, codePrompt)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	blocks, blockWarnings := artifact.ParseBlocks(answer)
	res.Warnings = append(res.Warnings, blockWarnings...)
	if len(blocks) == 0 {
		log.Printf("WARNING: code response contained no file blocks")
		return nil
	}
	res.Written = artifact.WriteFiles(c.store.Dir(slug), blocks)
	return nil
}

func (c *Coder) revise(ctx context.Context, slug, plans string, res *CodeResult) error {
	files, err := c.store.ReadSources(slug)
	if err != nil {
		return err
	}
	prior := make(map[string]string, len(files))
	for _, f := range files {
		prior[f.Path] = f.Content
	}
	sources := project.FormatSources(files)

	rendered, err := c.revisePrompt(slug, plans, sources, res)
	if err != nil {
		return err
	}
	answer, err := c.gen.Generate(ctx, rendered)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	blocks, warnings := artifact.ParseBlocks(answer)
	res.Warnings = append(res.Warnings, warnings...)
	if len(blocks) == 0 {
		log.Printf("WARNING: code response contained no file blocks")
		return nil
	}

	res.Written = artifact.WriteFiles(c.store.Dir(slug), blocks)
	res.Stats = make(map[string]artifact.ChangeStats, len(blocks))
	for _, b := range blocks {
		res.Stats[b.Path] = artifact.DiffStats(prior[b.Path], b.Content)
	}
	return nil
}

func (c *Coder) revisePrompt(slug, plans, sources string, res *CodeResult) (string, error) {
	if res.Mode == ModeFix {
		review, err := c.store.ReadReview(slug)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(review) == "" {
			log.Printf("WARNING: review file for %s is empty, proceeding without feedback", slug)
		} else {
			res.Review = review
			return c.render.Render(prompt.CodeFix, prompt.CodeFixData{
				Plans:   plans,
				Sources: sources,
				Review:  review,
			})
		}
	}
	return c.render.Render(prompt.CodeUpdate, prompt.CodeUpdateData{Plans: plans, Sources: sources})
}
