package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/maai-dev/maai/internal/llm"
	"github.com/maai-dev/maai/internal/project"
	"github.com/maai-dev/maai/internal/prompt"
)

// Analysis selects which business analysis to run.
type Analysis string

const (
	AnalysisMarket   Analysis = "market"
	AnalysisBusiness Analysis = "business"
	AnalysisScoring  Analysis = "scoring"
	AnalysisResearch Analysis = "research"
)

var validAnalyses = map[Analysis]bool{
	AnalysisMarket:   true,
	AnalysisBusiness: true,
	AnalysisScoring:  true,
	AnalysisResearch: true,
}

// ValidateAnalysis checks if an analysis kind is recognized.
func ValidateAnalysis(kind Analysis) error {
	if !validAnalyses[kind] {
		return fmt.Errorf("invalid analysis: %q (valid: market, business, scoring, research)", kind)
	}
	return nil
}

var analysisFiles = map[Analysis]string{
	AnalysisMarket:   "market_analysis.md",
	AnalysisBusiness: "business.md",
	AnalysisScoring:  "scoring.md",
	AnalysisResearch: "research_summary.md",
}

var analysisTemplates = map[Analysis]string{
	AnalysisMarket:   prompt.Market,
	AnalysisBusiness: prompt.Business,
	AnalysisResearch: prompt.Research,
}

// Analyst runs market, business, scoring, and research analyses on a
// project idea.
type Analyst struct {
	store  *project.Store
	gen    llm.Generator
	render prompt.Renderer
}

// NewAnalyst returns an analyst agent.
func NewAnalyst(store *project.Store, gen llm.Generator, render prompt.Renderer) *Analyst {
	return &Analyst{store: store, gen: gen, render: render}
}

// Run writes one analysis document under docs/. Scoring builds on the
// business plan; the other analyses build on the idea document.
func (a *Analyst) Run(ctx context.Context, slug string, kind Analysis) (Result, error) {
	if err := ValidateAnalysis(kind); err != nil {
		return Result{}, err
	}

	rendered, err := a.buildPrompt(slug, kind)
	if err != nil {
		return Result{}, err
	}
	generated, err := a.gen.Generate(ctx, rendered)
	if err != nil {
		return Result{}, fmt.Errorf("generating %s analysis: %w", kind, err)
	}

	path, err := a.store.WriteDoc(slug, analysisFiles[kind], strings.TrimSpace(generated))
	if err != nil {
		return Result{}, err
	}
	return Result{Slug: slug, Paths: []string{path}}, nil
}

func (a *Analyst) buildPrompt(slug string, kind Analysis) (string, error) {
	if kind == AnalysisScoring {
		business, err := a.store.ReadDoc(slug, analysisFiles[AnalysisBusiness])
		if err != nil {
			return "", fmt.Errorf("no business plan for %s (run 'maai business' first): %w", slug, err)
		}
		return a.render.Render(prompt.Scoring, prompt.ScoringData{Business: business})
	}

	idea, err := a.store.ReadDoc(slug, project.IdeaFile)
	if err != nil {
		return "", fmt.Errorf("no idea document for %s (run 'maai idea' first): %w", slug, err)
	}
	return a.render.Render(analysisTemplates[kind], prompt.AnalysisData{Idea: idea})
}
