// Package project manages the on-disk workspace of generated projects.
//
// Every project lives under a common base directory in its own slug-named
// folder with a fixed layout: docs/ for generated documents, src/ for
// code, tests/ for test files. The Store type owns all path construction
// and file access so callers never assemble project paths by hand.
package project

import (
	"regexp"
	"strings"
)

const maxSlugLen = 50

var (
	nonWordChars = regexp.MustCompile(`[^\w\s-]`)
	dashRuns     = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts a project name into a filesystem-friendly slug:
// lowercase, non-word characters stripped, whitespace and dash runs
// collapsed to single dashes, max 50 chars.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonWordChars.ReplaceAllString(slug, "")
	slug = dashRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-_")

	if len(slug) > maxSlugLen {
		truncated := slug[:maxSlugLen]
		// Prefer cutting at a word boundary when one is reasonably close.
		if idx := strings.LastIndex(truncated, "-"); idx > maxSlugLen/2 {
			truncated = truncated[:idx]
		}
		slug = truncated
	}

	if slug == "" {
		return "unnamed-project"
	}
	return slug
}
