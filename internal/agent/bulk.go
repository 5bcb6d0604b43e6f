package agent

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// Bulk elaborates one idea per line of a text file, each into its own
// project.
type Bulk struct {
	innovator *Innovator
}

// NewBulk returns a bulk agent running the given innovator per line.
func NewBulk(innovator *Innovator) *Bulk {
	return &Bulk{innovator: innovator}
}

// Run reads project names from the file (one per line, blank lines and
// #-comments skipped) and runs the innovator for each. A failed line is
// logged and skipped so the rest of the batch still lands; only a batch
// with zero successes is an error.
func (a *Bulk) Run(ctx context.Context, path string, wild bool) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ideas file: %w", err)
	}

	var results []Result
	for _, line := range strings.Split(string(data), "\n") {
		name := strings.TrimSpace(line)
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		res, err := a.innovator.Run(ctx, name, wild)
		if err != nil {
			log.Printf("WARNING: idea %q failed: %v", name, err)
			continue
		}
		results = append(results, res)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no ideas were generated from %s", path)
	}
	return results, nil
}
