// Package prompt renders the instruction templates sent to the generation
// service.
//
// Templates are embedded at build time, so the binary is self-contained.
// Each template has a name constant and a matching data struct; agents
// never assemble prompt strings by hand.
package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

// Template names, one per generation task.
const (
	Structure  = "structure.tmpl"
	CodeCreate = "code_create.tmpl"
	CodeUpdate = "code_update.tmpl"
	CodeFix    = "code_fix.tmpl"
	Idea       = "idea.tmpl"
	Ideas      = "ideas.tmpl"
	PlanCreate = "plan_create.tmpl"
	PlanUpdate = "plan_update.tmpl"
	Review     = "review.tmpl"
	Tests      = "tests.tmpl"

	DocSDD        = "doc_sdd.tmpl"
	DocSRS        = "doc_srs.tmpl"
	DocAPI        = "doc_api.tmpl"
	DocUserManual = "doc_user_manual.tmpl"
	DocOverview   = "doc_overview.tmpl"

	Market   = "market.tmpl"
	Business = "business.tmpl"
	Scoring  = "scoring.tmpl"
	Research = "research.tmpl"
)

// StructureData drives the file-structure prompt.
type StructureData struct {
	Plans string
}

// CodeCreateData drives first-time code generation.
type CodeCreateData struct {
	Plans     string
	Structure string // one path per line, directories with a trailing slash
}

// CodeUpdateData drives regeneration over an existing code base.
type CodeUpdateData struct {
	Plans   string
	Sources string // existing files rendered as fenced blocks
}

// CodeFixData drives review-driven fixing.
type CodeFixData struct {
	Plans   string
	Sources string
	Review  string
}

// IdeaData drives single-idea elaboration. Wild loosens the prompt toward
// unconventional concepts.
type IdeaData struct {
	Name string
	Wild bool
}

// IdeasData drives bulk idea generation on a subject.
type IdeasData struct {
	Subject string
	Count   int
	Wild    bool
}

// PlanCreateData drives implementation-plan creation from an idea.
type PlanCreateData struct {
	Idea string
}

// PlanUpdateData drives plan revision.
type PlanUpdateData struct {
	Plan         string
	Modification string
}

// ReviewData drives the code review.
type ReviewData struct {
	Plans   string
	Sources string
}

// TestsData drives test generation.
type TestsData struct {
	Sources string
}

// DocData drives every document template. Sources is optional; when set it
// is appended as extra context.
type DocData struct {
	Idea    string
	Plan    string
	Sources string
}

// AnalysisData drives the idea-centric analysis templates.
type AnalysisData struct {
	Idea string
}

// ScoringData drives business-plan scoring.
type ScoringData struct {
	Business string
}

// Renderer produces a prompt from a named template. Agents depend on this
// interface so tests can substitute fixed prompts.
type Renderer interface {
	Render(name string, data interface{}) (string, error)
}

//go:embed templates/*.tmpl
var templateFS embed.FS

// EmbedRenderer renders the embedded template set.
type EmbedRenderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*EmbedRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing prompt templates: %w", err)
	}
	return &EmbedRenderer{tmpl: tmpl}, nil
}

// Render executes the named template.
func (r *EmbedRenderer) Render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
