package artifact

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// Block is one extracted code block: a project-relative POSIX path, the
// declared language (lowercased, may be empty), and the trimmed content.
type Block struct {
	Path    string
	Lang    string
	Content string
}

// fencedBlock matches ```lang filename=path ... ``` blocks. The language
// is optional, the filename stops at whitespace or a backtick, and the
// body runs to the next closing fence.
var fencedBlock = regexp.MustCompile(`(?is)` + "```" + `(\w+)?[ \t]+filename=([^\s` + "`" + `]+)[ \t\r]*\n(.*?)\n` + "```")

// taggedBlock matches <<<FILENAME: path ... >>> envelopes, an alternative
// format that survives responses where the body itself contains fences.
var taggedBlock = regexp.MustCompile(`(?is)<<<FILENAME:[ \t]*([^\n]+?)[ \t\r]*\n(.*?)\n[ \t]*>>>`)

// ParseBlocks extracts fenced code blocks carrying a filename= marker.
//
// Each block's path is normalized to forward slashes and stripped of
// surrounding slashes. Blocks are dropped with a warning when the path is
// empty, absolute, or contains a ".." segment, or when the content is empty
// after trimming. When several blocks declare the same path the last
// content wins but the block keeps its first position in the result.
func ParseBlocks(text string) ([]Block, []string) {
	var raws []rawBlock
	for _, m := range fencedBlock.FindAllStringSubmatch(text, -1) {
		raws = append(raws, rawBlock{path: m[2], lang: m[1], content: m[3]})
	}
	return collect(raws)
}

// ParseTaggedBlocks extracts <<<FILENAME: path>>> envelopes, applying the
// same path rules and last-write-wins handling as ParseBlocks. Tagged
// blocks carry no language marker.
func ParseTaggedBlocks(text string) ([]Block, []string) {
	var raws []rawBlock
	for _, m := range taggedBlock.FindAllStringSubmatch(text, -1) {
		raws = append(raws, rawBlock{path: m[1], content: m[2]})
	}
	return collect(raws)
}

type rawBlock struct {
	path    string
	lang    string
	content string
}

func collect(raws []rawBlock) ([]Block, []string) {
	var blocks []Block
	var warnings []string
	idx := make(map[string]int)

	for _, r := range raws {
		p := strings.ReplaceAll(strings.TrimSpace(r.path), "\\", "/")
		if strings.HasPrefix(p, "/") || driveLetter.MatchString(p) {
			warnings = append(warnings, fmt.Sprintf("block %q: absolute path, dropped", r.path))
			continue
		}
		p = strings.Trim(p, "/")
		if p == "" {
			warnings = append(warnings, fmt.Sprintf("block %q: empty filename, dropped", r.path))
			continue
		}
		if unsafe, reason := unsafeRelPath(p); unsafe {
			warnings = append(warnings, fmt.Sprintf("block %q: %s, dropped", p, reason))
			continue
		}
		content := strings.TrimSpace(r.content)
		if content == "" {
			warnings = append(warnings, fmt.Sprintf("block %q: empty content, dropped", p))
			continue
		}

		lang := strings.ToLower(r.lang)
		if j, ok := idx[p]; ok {
			blocks[j].Lang = lang
			blocks[j].Content = content
			continue
		}
		idx[p] = len(blocks)
		blocks = append(blocks, Block{Path: p, Lang: lang, Content: content})
	}

	return blocks, warnings
}

// --- Language Inference ---

var langByExt = map[string]string{
	".py":   "python",
	".go":   "go",
	".js":   "javascript",
	".ts":   "typescript",
	".jsx":  "jsx",
	".tsx":  "tsx",
	".rb":   "ruby",
	".rs":   "rust",
	".java": "java",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".cs":   "csharp",
	".sh":   "bash",
	".sql":  "sql",
	".html": "html",
	".css":  "css",
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
	".md":   "markdown",
	".txt":  "text",
}

var langByName = map[string]string{
	"dockerfile": "dockerfile",
	"makefile":   "makefile",
}

// LangForPath guesses a fence language from a file path, for rendering
// existing files back into prompts. Unknown extensions map to "text".
func LangForPath(p string) string {
	base := strings.ToLower(path.Base(p))
	if lang, ok := langByName[base]; ok {
		return lang
	}
	if lang, ok := langByExt[path.Ext(base)]; ok {
		return lang
	}
	return "text"
}
