package artifact

import (
	"strings"
	"testing"
)

func TestParseBlocks_SingleBlock(t *testing.T) {
	input := "Here is the file:\n\n```python filename=src/main.py\nprint('hello')\n```\n"

	blocks, warnings := ParseBlocks(input)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.Path != "src/main.py" || b.Lang != "python" || b.Content != "print('hello')" {
		t.Errorf("unexpected block: %+v", b)
	}
}

func TestParseBlocks_LastWriteWinsKeepsFirstPosition(t *testing.T) {
	input := "```python filename=src/main.py\nversion_one = 1\n```\n" +
		"```python filename=src/other.py\nother = True\n```\n" +
		"```python filename=src/main.py\nversion_two = 2\n```\n"

	blocks, _ := ParseBlocks(input)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Path != "src/main.py" {
		t.Errorf("duplicate path should keep its first position, got %q first", blocks[0].Path)
	}
	if blocks[0].Content != "version_two = 2" {
		t.Errorf("expected last content to win, got %q", blocks[0].Content)
	}
	if blocks[1].Path != "src/other.py" {
		t.Errorf("expected second block src/other.py, got %q", blocks[1].Path)
	}
}

func TestParseBlocks_MultilineContent(t *testing.T) {
	input := "```go filename=main.go\npackage main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n```"

	blocks, _ := ParseBlocks(input)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if !strings.Contains(blocks[0].Content, "func main()") {
		t.Errorf("content lost lines: %q", blocks[0].Content)
	}
}

func TestParseBlocks_UnsafePathsDropped(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"absolute", "```python filename=/etc/passwd\nboom\n```"},
		{"drive letter", "```python filename=C:/Windows/evil.py\nboom\n```"},
		{"parent traversal", "```python filename=../../escape.py\nboom\n```"},
		{"inner traversal", "```python filename=src/../../escape.py\nboom\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, warnings := ParseBlocks(tt.input)
			if len(blocks) != 0 {
				t.Errorf("expected block to be dropped, got %v", blocks)
			}
			if len(warnings) != 1 {
				t.Errorf("expected 1 warning, got %v", warnings)
			}
		})
	}
}

func TestParseBlocks_EmptyContentDropped(t *testing.T) {
	input := "```python filename=src/empty.py\n   \n```"

	blocks, warnings := ParseBlocks(input)
	if len(blocks) != 0 {
		t.Errorf("expected no blocks, got %v", blocks)
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", warnings)
	}
}

func TestParseBlocks_NoMarkerIgnored(t *testing.T) {
	input := "```python\nprint('no filename marker')\n```"

	blocks, warnings := ParseBlocks(input)
	if len(blocks) != 0 || len(warnings) != 0 {
		t.Errorf("plain fences should be ignored silently, got blocks=%v warnings=%v", blocks, warnings)
	}
}

func TestParseBlocks_PathNormalization(t *testing.T) {
	input := "```python filename=src\\app.py\na = 1\n```\n" +
		"```python filename=src/pkg/\nb = 2\n```"

	blocks, warnings := ParseBlocks(input)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Path != "src/app.py" {
		t.Errorf("backslashes should normalize, got %q", blocks[0].Path)
	}
	if blocks[1].Path != "src/pkg" {
		t.Errorf("surrounding slashes should be trimmed, got %q", blocks[1].Path)
	}
}

func TestParseBlocks_MarkerCaseInsensitive(t *testing.T) {
	input := "```PYTHON FILENAME=src/main.py\nx = 1\n```"

	blocks, _ := ParseBlocks(input)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Lang != "python" {
		t.Errorf("language should be lowercased, got %q", blocks[0].Lang)
	}
}

func TestParseBlocks_NoLanguage(t *testing.T) {
	input := "``` filename=Makefile\nall:\n\tgo build ./...\n```"

	blocks, _ := ParseBlocks(input)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Path != "Makefile" || blocks[0].Lang != "" {
		t.Errorf("unexpected block: %+v", blocks[0])
	}
}

func TestParseBlocks_CRLFInput(t *testing.T) {
	input := "```python filename=src/main.py\r\nprint('hi')\r\n```"

	blocks, _ := ParseBlocks(input)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Content != "print('hi')" {
		t.Errorf("content should be trimmed of carriage returns, got %q", blocks[0].Content)
	}
}

func TestParseTaggedBlocks_Basic(t *testing.T) {
	input := "<<<FILENAME: tests/test_main.py\nimport unittest\n\nclass TestMain(unittest.TestCase):\n    pass\n>>>"

	blocks, warnings := ParseTaggedBlocks(input)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Path != "tests/test_main.py" {
		t.Errorf("unexpected path %q", blocks[0].Path)
	}
	if !strings.Contains(blocks[0].Content, "class TestMain") {
		t.Errorf("content truncated: %q", blocks[0].Content)
	}
	if blocks[0].Lang != "" {
		t.Errorf("tagged blocks carry no language, got %q", blocks[0].Lang)
	}
}

func TestParseTaggedBlocks_FencedBodySurvives(t *testing.T) {
	input := "<<<FILENAME: docs/usage.md\n# Usage\n\n```bash\nmaai --help\n```\n>>>"

	blocks, _ := ParseTaggedBlocks(input)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if !strings.Contains(blocks[0].Content, "```bash") {
		t.Errorf("inner fence should be preserved, got %q", blocks[0].Content)
	}
}

func TestParseTaggedBlocks_LastWriteWins(t *testing.T) {
	input := "<<<FILENAME: tests/test_a.py\nfirst = 1\n>>>\n<<<FILENAME: tests/test_a.py\nsecond = 2\n>>>"

	blocks, _ := ParseTaggedBlocks(input)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Content != "second = 2" {
		t.Errorf("expected last content to win, got %q", blocks[0].Content)
	}
}

func TestLangForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"src/main.py", "python"},
		{"cmd/app/main.go", "go"},
		{"web/index.html", "html"},
		{"config.yaml", "yaml"},
		{"Dockerfile", "dockerfile"},
		{"src/Makefile", "makefile"},
		{"README.md", "markdown"},
		{"strange.xyz", "text"},
		{"LICENSE", "text"},
	}

	for _, tt := range tests {
		if got := LangForPath(tt.path); got != tt.want {
			t.Errorf("LangForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
