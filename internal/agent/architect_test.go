package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/maai-dev/maai/internal/project"
)

func TestArchitect_CreatesPlanFromIdea(t *testing.T) {
	store, render := testDeps(t)
	idea := "# Project Idea: Notes\n\nA terminal notes app."
	if _, err := store.WriteDoc("notes", project.IdeaFile, idea); err != nil {
		t.Fatalf("WriteDoc failed: %v", err)
	}
	gen := newFakeGen("## Architecture\n\nOne module.\n")

	res, err := NewArchitect(store, gen, render).Run(context.Background(), "notes", "")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Slug != "notes" || len(res.Paths) != 1 {
		t.Errorf("unexpected result: %+v", res)
	}

	plan, err := store.ReadDoc("notes", project.PlanFile)
	if err != nil {
		t.Fatalf("ReadDoc failed: %v", err)
	}
	if plan != "## Architecture\n\nOne module." {
		t.Errorf("plan = %q, want trimmed generated text", plan)
	}
	if !strings.Contains(gen.lastPrompt(), "terminal notes app") {
		t.Errorf("prompt is missing the idea:\n%s", gen.lastPrompt())
	}
}

func TestArchitect_MissingIdea(t *testing.T) {
	store, render := testDeps(t)
	gen := newFakeGen()

	_, err := NewArchitect(store, gen, render).Run(context.Background(), "ghost", "")
	if err == nil || !strings.Contains(err.Error(), "no idea document for ghost") {
		t.Errorf("expected missing-idea error, got %v", err)
	}
	if len(gen.prompts) != 0 {
		t.Errorf("expected no generation calls, got %d", len(gen.prompts))
	}
}

func TestArchitect_UpdatesExistingPlan(t *testing.T) {
	store, render := testDeps(t)
	if _, err := store.WriteDoc("notes", project.PlanFile, "## Plan v1"); err != nil {
		t.Fatalf("WriteDoc failed: %v", err)
	}
	gen := newFakeGen("## Plan v2")

	_, err := NewArchitect(store, gen, render).Run(context.Background(), "notes", "add tagging support")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	p := gen.lastPrompt()
	if !strings.Contains(p, "## Plan v1") || !strings.Contains(p, "add tagging support") {
		t.Errorf("update prompt is missing plan or modification:\n%s", p)
	}
	plan, err := store.ReadDoc("notes", project.PlanFile)
	if err != nil {
		t.Fatalf("ReadDoc failed: %v", err)
	}
	if plan != "## Plan v2" {
		t.Errorf("plan = %q, want the revised plan", plan)
	}
}

func TestArchitect_UpdateWithoutPlan(t *testing.T) {
	store, render := testDeps(t)
	if _, err := store.WriteDoc("notes", project.IdeaFile, "idea"); err != nil {
		t.Fatalf("WriteDoc failed: %v", err)
	}
	gen := newFakeGen()

	_, err := NewArchitect(store, gen, render).Run(context.Background(), "notes", "change it")
	if err == nil || !strings.Contains(err.Error(), "no implementation plan for notes to update") {
		t.Errorf("expected missing-plan error, got %v", err)
	}
}
