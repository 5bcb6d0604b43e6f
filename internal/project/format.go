package project

import (
	"fmt"
	"strings"

	"github.com/maai-dev/maai/internal/artifact"
)

// FormatSources renders project files as fenced blocks, the same format
// the generation service is asked to answer in.
func FormatSources(files []SourceFile) string {
	sections := make([]string, 0, len(files))
	for _, f := range files {
		sections = append(sections, fmt.Sprintf("```%s filename=%s\n%s\n```",
			artifact.LangForPath(f.Path), f.Path, strings.TrimRight(f.Content, "\n")))
	}
	return strings.Join(sections, "\n\n")
}
