package agent

import "github.com/maai-dev/maai/internal/project"

// Mode is how a coding run treats the existing project. It is decided once
// per run from what is on disk and never changes mid-run.
type Mode string

const (
	ModeCreate Mode = "create" // no source files yet: scaffold, then write everything
	ModeUpdate Mode = "update" // sources exist, no review: regenerate what changed
	ModeFix    Mode = "fix"    // sources and a review exist: apply the feedback
)

// DecideMode classifies a project for the next coding run. An empty src/
// means create; otherwise the presence of docs/review.md selects fix over
// update.
func DecideMode(store *project.Store, slug string) Mode {
	if !store.HasSources(slug) {
		return ModeCreate
	}
	if store.HasReview(slug) {
		return ModeFix
	}
	return ModeUpdate
}
