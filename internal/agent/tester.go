package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/maai-dev/maai/internal/artifact"
	"github.com/maai-dev/maai/internal/llm"
	"github.com/maai-dev/maai/internal/project"
	"github.com/maai-dev/maai/internal/prompt"
)

// Tester writes unit tests for the project's source files.
type Tester struct {
	store  *project.Store
	gen    llm.Generator
	render prompt.Renderer
}

// NewTester returns a tester agent.
func NewTester(store *project.Store, gen llm.Generator, render prompt.Renderer) *Tester {
	return &Tester{store: store, gen: gen, render: render}
}

// Run generates test files for the project. The service answers in the
// <<<FILENAME: envelope format; fenced blocks are accepted as a fallback
// since models drift back to them.
func (a *Tester) Run(ctx context.Context, slug string) (Result, error) {
	files, err := a.store.ReadSources(slug)
	if err != nil {
		return Result{}, err
	}
	if len(files) == 0 {
		return Result{}, fmt.Errorf("no source files to test in %s (run 'maai code' first)", slug)
	}

	rendered, err := a.render.Render(prompt.Tests, prompt.TestsData{Sources: project.FormatSources(files)})
	if err != nil {
		return Result{}, err
	}
	answer, err := a.gen.Generate(ctx, rendered)
	if err != nil {
		return Result{}, fmt.Errorf("generating tests: %w", err)
	}

	blocks, warnings := artifact.ParseTaggedBlocks(answer)
	if len(blocks) == 0 {
		var fencedWarnings []string
		blocks, fencedWarnings = artifact.ParseBlocks(answer)
		warnings = append(warnings, fencedWarnings...)
	}

	res := Result{Slug: slug, Warnings: warnings}
	if len(blocks) == 0 {
		log.Printf("WARNING: test response contained no file blocks")
		return res, nil
	}
	res.Paths = artifact.WriteFiles(a.store.Dir(slug), blocks)
	return res, nil
}
