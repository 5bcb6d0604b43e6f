// Package artifact turns generation-service text into files on disk.
//
// It covers the four stages between "the model answered" and "the project
// changed": parsing an indented directory tree into structure items,
// scaffolding that structure under a project root, extracting named code
// blocks from a response, and writing those blocks to disk.
//
// All parsing is best-effort: malformed lines and unsafe paths are skipped
// and reported, never fatal. Filesystem operations are idempotent and
// partial-failure tolerant, so an interrupted run can simply be repeated.
package artifact

import (
	"fmt"
	"math"
	"path"
	"regexp"
	"strings"
)

// Item is one parsed entry of a structure tree: a path relative to the
// project root, classified as directory or file.
type Item struct {
	Path  string
	IsDir bool
}

// treeChars matches tree-drawing prefixes (│ ├ └ ─ |) that models sometimes
// emit despite being asked for plain indentation.
var treeChars = regexp.MustCompile(`^[\s│├└─|]+`)

const defaultIndentUnit = 4

// ParseStructure parses an indented directory tree into structure items,
// in declaration order, plus a warning per recovered parse problem.
//
// Format: one entry per line, indentation encodes nesting depth, a trailing
// "/" marks a directory. The indent unit is taken from the first indented
// line (4 spaces when none exists). A line is skipped with a warning when:
//   - its name is empty after stripping tree characters,
//   - its depth exceeds the available directory ancestry (indentation jumped
//     more than one level, or it nests under a file),
//   - its name contains a ".." segment or is absolute.
//
// Empty input yields no items and no warnings. Duplicate paths are not
// detected here.
func ParseStructure(text string) ([]Item, []string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	lines := strings.Split(trimmed, "\n")

	unit := detectIndentUnit(lines)

	var items []Item
	var warnings []string
	var stack []string // ancestor directory paths, stack[i] is the directory at depth i

	for i, raw := range lines {
		line := strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		depth := 0
		if unit > 0 {
			depth = int(math.Round(float64(leadingSpaces(line)) / float64(unit)))
		}

		name := strings.TrimSpace(treeChars.ReplaceAllString(line, ""))
		isDir := strings.HasSuffix(name, "/")
		name = strings.TrimRight(name, "/")

		if name == "" {
			warnings = append(warnings, fmt.Sprintf("line %d: no entry name in %q, skipped", i+1, raw))
			continue
		}
		if depth > len(stack) {
			warnings = append(warnings, fmt.Sprintf("line %d: %q indented past its ancestry (depth %d, known ancestors %d), skipped", i+1, name, depth, len(stack)))
			continue
		}
		if unsafe, reason := unsafeRelPath(name); unsafe {
			warnings = append(warnings, fmt.Sprintf("line %d: %q %s, skipped", i+1, name, reason))
			continue
		}

		stack = stack[:depth]
		rel := name
		if depth > 0 {
			rel = path.Join(stack[depth-1], name)
		}

		items = append(items, Item{Path: rel, IsDir: isDir})

		if isDir {
			stack = append(stack, rel)
		}
	}

	return items, warnings
}

// detectIndentUnit returns the leading-space count of the first indented,
// non-blank line, or the default unit when every line starts at column zero.
func detectIndentUnit(lines []string) int {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == ' ' {
			return leadingSpaces(line)
		}
	}
	return defaultIndentUnit
}

func leadingSpaces(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// unsafeRelPath reports whether a parsed path must be rejected: absolute
// (including drive-letter forms) or containing a parent-directory segment.
func unsafeRelPath(p string) (bool, string) {
	normalized := strings.ReplaceAll(p, "\\", "/")
	if strings.HasPrefix(normalized, "/") || driveLetter.MatchString(normalized) {
		return true, "is absolute"
	}
	for _, seg := range strings.Split(normalized, "/") {
		if seg == ".." {
			return true, "contains a parent-directory segment"
		}
	}
	return false, ""
}

var driveLetter = regexp.MustCompile(`^[a-zA-Z]:`)
