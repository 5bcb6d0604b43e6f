// Package agent implements the generation agents that drive a project
// through its lifecycle: idea, plan, code, review, tests, documents, and
// analyses.
//
// Every agent follows the same shape: gather context from the project
// store, render a prompt, call the generation service once, and persist
// the answer. Agents never retry a failed generation and never call each
// other mid-run; sequencing lives in the command layer, so each run stays
// a single observable step.
package agent

import (
	"strings"

	"github.com/maai-dev/maai/internal/artifact"
)

// Result reports what an agent run produced.
type Result struct {
	Slug     string   // project the run wrote into
	Paths    []string // files written
	Warnings []string // recovered problems worth showing the user
}

// formatStructure renders structure items one path per line, directories
// with a trailing slash.
func formatStructure(items []artifact.Item) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.Path)
		if it.IsDir {
			b.WriteByte('/')
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
